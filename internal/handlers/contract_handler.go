package handlers

import (
	"seniorwork_backend/internal/middleware"
	"seniorwork_backend/internal/services"
	"seniorwork_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	BaseHandler
	contractService *services.ContractService
}

func NewContractHandler(base BaseHandler, contractService *services.ContractService) *ContractHandler {
	return &ContractHandler{BaseHandler: base, contractService: contractService}
}

func (h *ContractHandler) RegisterRoutes(r *gin.RouterGroup) {
	contracts := r.Group("/contracts")
	contracts.Use(middleware.AuthMiddleware())
	{
		contracts.POST("", h.Create)
		contracts.GET("", h.List)
		contracts.GET("/:id", h.Get)
		contracts.PUT("/:id", h.Update)
		contracts.PUT("/:id/status", h.UpdateStatus)

		contracts.POST("/:id/invoices", h.CreateInvoice)
		contracts.GET("/:id/invoices", h.ListInvoices)
		contracts.PUT("/:id/invoices/:invoice_id/status", h.UpdateInvoiceStatus)

		contracts.POST("/:id/time-entries", h.LogTimeEntry)
		contracts.GET("/:id/time-entries", h.ListTimeEntries)
		contracts.PUT("/:id/time-entries/:entry_id/status", h.ReviewTimeEntry)
	}
}

func (h *ContractHandler) Create(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var req dto.CreateContractRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	contract, err := h.contractService.Create(caller, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, contract)
}

func (h *ContractHandler) List(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	page, pageSize := h.ParsePagination(c)
	items, pagination, err := h.contractService.List(caller, c.Query("status"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, dto.ListResponse[dto.ContractResponse]{Items: items, Pagination: pagination})
}

func (h *ContractHandler) Get(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	contract, err := h.contractService.Get(caller, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, contract)
}

func (h *ContractHandler) Update(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateContractRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	contract, err := h.contractService.Update(caller, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, contract)
}

func (h *ContractHandler) UpdateStatus(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateContractStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	contract, err := h.contractService.UpdateStatus(caller, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, contract)
}

func (h *ContractHandler) CreateInvoice(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	invoice, err := h.contractService.CreateInvoice(caller, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, invoice)
}

func (h *ContractHandler) ListInvoices(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	page, pageSize := h.ParsePagination(c)
	items, pagination, err := h.contractService.ListInvoices(caller, c.Param("id"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, dto.ListResponse[dto.InvoiceResponse]{Items: items, Pagination: pagination})
}

func (h *ContractHandler) UpdateInvoiceStatus(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	invoice, err := h.contractService.UpdateInvoiceStatus(caller, c.Param("id"), c.Param("invoice_id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, invoice)
}

func (h *ContractHandler) LogTimeEntry(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var req dto.LogTimeEntryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.contractService.LogTimeEntry(caller, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, entry)
}

func (h *ContractHandler) ListTimeEntries(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	page, pageSize := h.ParsePagination(c)
	items, pagination, err := h.contractService.ListTimeEntries(caller, c.Param("id"), c.Query("status"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, dto.ListResponse[dto.TimeEntryResponse]{Items: items, Pagination: pagination})
}

func (h *ContractHandler) ReviewTimeEntry(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var req dto.ReviewTimeEntryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.contractService.ReviewTimeEntry(caller, c.Param("id"), c.Param("entry_id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, entry)
}
