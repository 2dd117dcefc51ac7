package handlers

import (
	"seniorwork_backend/internal/middleware"
	"seniorwork_backend/internal/repositories"
	"seniorwork_backend/internal/services"
	"seniorwork_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		// Public listing and detail, with per-caller annotations when a
		// valid token is present.
		jobs.GET("", middleware.OptionalAuthMiddleware(), h.List)

		authed := jobs.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/saved", h.ListSaved)
			authed.POST("", h.Create)
			authed.PUT("/:id", h.Update)
			authed.DELETE("/:id", h.Delete)
			authed.POST("/:id/save", h.Save)
			authed.DELETE("/:id/save", h.Unsave)
		}

		jobs.GET("/:id", middleware.OptionalAuthMiddleware(), h.Get)
	}

	employer := r.Group("/employer")
	employer.Use(middleware.AuthMiddleware())
	{
		employer.GET("/jobs", h.ListMine)
	}
}

func (h *JobHandler) List(c *gin.Context) {
	var criteria repositories.JobFilter
	if err := c.ShouldBindQuery(&criteria); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	criteria.Page, criteria.PageSize = h.ParsePagination(c)

	items, pagination, err := h.jobService.List(middleware.GetUserID(c), criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, dto.ListResponse[dto.JobResponse]{Items: items, Pagination: pagination})
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.Get(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(caller, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(caller, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(caller, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	page, pageSize := h.ParsePagination(c)
	items, pagination, err := h.jobService.ListByEmployer(userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, dto.ListResponse[dto.JobResponse]{Items: items, Pagination: pagination})
}

func (h *JobHandler) Save(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	if err := h.jobService.Save(caller, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *JobHandler) Unsave(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	if err := h.jobService.Unsave(caller, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *JobHandler) ListSaved(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	page, pageSize := h.ParsePagination(c)
	items, pagination, err := h.jobService.ListSaved(caller, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, dto.ListResponse[dto.JobResponse]{Items: items, Pagination: pagination})
}
