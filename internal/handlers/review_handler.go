package handlers

import (
	"seniorwork_backend/internal/middleware"
	"seniorwork_backend/internal/services"
	"seniorwork_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	BaseHandler
	reviewService *services.ReviewService
}

func NewReviewHandler(base BaseHandler, reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{BaseHandler: base, reviewService: reviewService}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	reviews := r.Group("/reviews")
	{
		authed := reviews.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("", h.Create)
			authed.DELETE("/:id", h.Delete)
		}
	}

	// Reviews of a user are public.
	r.GET("/users/:id/reviews", h.ListBySubject)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.Create(caller, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, review)
}

func (h *ReviewHandler) ListBySubject(c *gin.Context) {
	page, pageSize := h.ParsePagination(c)
	resp, err := h.reviewService.ListBySubject(c.Param("id"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	if err := h.reviewService.Delete(caller, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}
