package handlers

import (
	"seniorwork_backend/internal/middleware"
	"seniorwork_backend/internal/services"
	"seniorwork_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	apps := r.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.POST("", h.Submit)
		apps.GET("", h.List)
		apps.GET("/:id", h.Get)
		apps.PUT("/:id/status", h.UpdateStatus)
		apps.DELETE("/:id", h.Withdraw)
	}
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Submit(caller, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, app)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var query dto.ListApplicationsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.PageSize = h.ParsePagination(c)

	items, pagination, err := h.applicationService.List(caller, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, dto.ListResponse[dto.ApplicationResponse]{Items: items, Pagination: pagination})
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	app, err := h.applicationService.Get(caller, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, app)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.UpdateStatus(caller, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, app)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	if err := h.applicationService.Withdraw(caller, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}
