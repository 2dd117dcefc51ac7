package handlers

import (
	"net/http"
	"strconv"

	"seniorwork_backend/internal/auth"
	"seniorwork_backend/internal/middleware"
	"seniorwork_backend/internal/services"
	"seniorwork_backend/internal/validator"
	"seniorwork_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// BaseHandler carries the helpers every handler shares: binding with
// validation, caller resolution, pagination parsing and uniform error
// responses.
type BaseHandler struct {
	validator   *validator.Validator
	userService *services.UserService
}

func NewBaseHandler(v *validator.Validator, userService *services.UserService) BaseHandler {
	return BaseHandler{validator: v, userService: userService}
}

// LoadCaller resolves the authenticated caller with the account status read
// from the database. On failure the error response is already written.
func (h *BaseHandler) LoadCaller(c *gin.Context) (auth.Caller, bool) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return auth.Caller{}, false
	}

	caller, err := h.userService.LoadCaller(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return auth.Caller{}, false
	}
	return caller, true
}

// BindAndValidateJSON binds the JSON body into obj and runs validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

// BindAndValidateQuery binds query parameters into obj and runs validation.
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError writes the error response for a failed service call.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// GetAuthenticatedUserID returns the caller's user id, writing a 401 when
// the request is anonymous.
func (h *BaseHandler) GetAuthenticatedUserID(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	return userID, true
}

// ParsePagination reads page and page_size from the query string, applying
// the defaults and the hard upper bound.
func (h *BaseHandler) ParsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// OK writes a 200 with the given payload.
func (h *BaseHandler) OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created writes a 201 with the given payload.
func (h *BaseHandler) Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// NoContent writes a 204.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
