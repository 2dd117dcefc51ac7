package services

import (
	"fmt"
	"time"

	"seniorwork_backend/internal/auth"
	"seniorwork_backend/internal/models"
	"seniorwork_backend/internal/repositories"
	"seniorwork_backend/internal/services/dto"
	"seniorwork_backend/pkg/apperrors"
)

type ContractService struct {
	contractRepo        repositories.ContractRepository
	userRepo            repositories.UserRepository
	notificationService *NotificationService
}

func NewContractService(
	contractRepo repositories.ContractRepository,
	userRepo repositories.UserRepository,
	notificationService *NotificationService,
) *ContractService {
	return &ContractService{
		contractRepo:        contractRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

func (s *ContractService) Create(caller auth.Caller, req dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if err := auth.Authorize(caller, auth.ActionContractCreate); err != nil {
		return nil, err
	}

	candidate, err := s.userRepo.FindByID(req.CandidateID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if candidate.Role != models.UserRoleCandidate {
		return nil, apperrors.ErrInvalidOperation("contract", "Contracts can only be offered to candidates")
	}
	if candidate.Status != models.UserStatusApproved {
		return nil, apperrors.ErrInvalidOperation("contract", "Candidate account is not approved")
	}

	contract := &models.Contract{
		EmployerID:  caller.ID,
		CandidateID: req.CandidateID,
		JobID:       req.JobID,
		Title:       req.Title,
		HourlyRate:  req.HourlyRate,
		Status:      models.ContractStatusDraft,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if req.Terms != nil {
		contract.Terms = *req.Terms
	}

	if err := s.contractRepo.Create(contract); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notificationService.NotifyUser(req.CandidateID, models.NotificationTypeInfo,
		"New contract offer",
		"You received a contract offer: "+contract.Title+".",
		"/contracts/"+contract.ID, "View contract")

	resp := dto.NewContractResponse(contract)
	return &resp, nil
}

func (s *ContractService) Get(caller auth.Caller, contractID string) (*dto.ContractResponse, error) {
	contract, err := s.loadForParticipant(caller, contractID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewContractResponse(contract)
	return &resp, nil
}

func (s *ContractService) List(caller auth.Caller, status string, page, pageSize int) ([]dto.ContractResponse, dto.Pagination, error) {
	contracts, total, err := s.contractRepo.ListByUser(caller.ID, status, page, pageSize)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	items := make([]dto.ContractResponse, 0, len(contracts))
	for i := range contracts {
		items = append(items, dto.NewContractResponse(&contracts[i]))
	}
	return items, dto.NewPagination(page, pageSize, total), nil
}

// Update edits terms while the contract is still a draft. Once active, the
// terms are frozen.
func (s *ContractService) Update(caller auth.Caller, contractID string, req dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	contract, err := s.loadForParticipant(caller, contractID)
	if err != nil {
		return nil, err
	}
	if contract.EmployerID != caller.ID && caller.Role != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if contract.Status != models.ContractStatusDraft {
		return nil, apperrors.ErrInvalidContractStatus
	}

	if req.Title != nil {
		contract.Title = *req.Title
	}
	if req.Terms != nil {
		contract.Terms = *req.Terms
	}
	if req.HourlyRate != nil {
		contract.HourlyRate = *req.HourlyRate
	}
	if req.StartDate != nil {
		contract.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		contract.EndDate = req.EndDate
	}

	if err := s.contractRepo.Update(contract); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewContractResponse(contract)
	return &resp, nil
}

// UpdateStatus walks the contract lifecycle. The candidate activates a
// draft (accepting the offer); either party can cancel; the employer
// completes an active contract.
func (s *ContractService) UpdateStatus(caller auth.Caller, contractID string, req dto.UpdateContractStatusRequest) (*dto.ContractResponse, error) {
	contract, err := s.loadForParticipant(caller, contractID)
	if err != nil {
		return nil, err
	}

	newStatus := models.ContractStatus(req.Status)
	if err := s.authorizeTransition(caller, contract, newStatus); err != nil {
		return nil, err
	}

	if err := s.contractRepo.UpdateStatus(contractID, newStatus); err != nil {
		return nil, apperrors.InternalError(err)
	}
	contract.Status = newStatus

	peerID := contract.CandidateID
	if caller.ID == contract.CandidateID {
		peerID = contract.EmployerID
	}
	s.notificationService.NotifyUser(peerID, models.NotificationTypeInfo,
		"Contract "+string(newStatus),
		"Contract "+contract.Title+" is now "+string(newStatus)+".",
		"/contracts/"+contract.ID, "View contract")

	resp := dto.NewContractResponse(contract)
	return &resp, nil
}

func (s *ContractService) authorizeTransition(caller auth.Caller, contract *models.Contract, to models.ContractStatus) error {
	if caller.Role == models.UserRoleAdmin {
		if !validContractTransition(contract.Status, to) {
			return apperrors.ErrInvalidContractStatus
		}
		return nil
	}

	switch to {
	case models.ContractStatusActive:
		// Accepting the offer is the candidate's move.
		if contract.Status != models.ContractStatusDraft || caller.ID != contract.CandidateID {
			return apperrors.ErrInvalidContractStatus
		}
	case models.ContractStatusCompleted:
		if contract.Status != models.ContractStatusActive || caller.ID != contract.EmployerID {
			return apperrors.ErrInvalidContractStatus
		}
	case models.ContractStatusCancelled:
		if contract.Status == models.ContractStatusCompleted || contract.Status == models.ContractStatusCancelled {
			return apperrors.ErrInvalidContractStatus
		}
	default:
		return apperrors.ErrInvalidContractStatus
	}
	return nil
}

func validContractTransition(from, to models.ContractStatus) bool {
	switch from {
	case models.ContractStatusDraft:
		return to == models.ContractStatusActive || to == models.ContractStatusCancelled
	case models.ContractStatusActive:
		return to == models.ContractStatusCompleted || to == models.ContractStatusCancelled
	default:
		return false
	}
}

// --- invoices ---

// CreateInvoice issues an invoice for the approved hours in the period.
// Only the candidate bills; the amount is computed, never client-supplied.
func (s *ContractService) CreateInvoice(caller auth.Caller, contractID string, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := auth.Authorize(caller, auth.ActionInvoiceIssue); err != nil {
		return nil, err
	}

	contract, err := s.loadForParticipant(caller, contractID)
	if err != nil {
		return nil, err
	}
	if contract.CandidateID != caller.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if contract.Status != models.ContractStatusActive && contract.Status != models.ContractStatusCompleted {
		return nil, apperrors.ErrInvalidContractStatus
	}

	hours, err := s.contractRepo.SumApprovedHours(contractID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if hours == 0 {
		return nil, apperrors.ErrInvalidOperation("invoice", "No approved hours in the given period")
	}

	seq, err := s.contractRepo.CountInvoicesForContract(contractID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	invoice := &models.Invoice{
		ContractID: contractID,
		Number:     invoiceNumber(contractID, seq+1),
		Amount:     hours * contract.HourlyRate,
		Status:     models.InvoiceStatusSent,
		DueDate:    &req.DueDate,
	}

	if err := s.contractRepo.CreateInvoice(invoice); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notificationService.NotifyUser(contract.EmployerID, models.NotificationTypeInfo,
		"New invoice",
		fmt.Sprintf("Invoice %s for %.2f %s was issued for %s.", invoice.Number, invoice.Amount, invoiceCurrency(invoice), contract.Title),
		"/contracts/"+contractID+"/invoices", "View invoices")

	resp := dto.NewInvoiceResponse(invoice)
	return &resp, nil
}

func (s *ContractService) ListInvoices(caller auth.Caller, contractID string, page, pageSize int) ([]dto.InvoiceResponse, dto.Pagination, error) {
	if _, err := s.loadForParticipant(caller, contractID); err != nil {
		return nil, dto.Pagination{}, err
	}

	invoices, total, err := s.contractRepo.ListInvoices(contractID, page, pageSize)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, dto.NewInvoiceResponse(&invoices[i]))
	}
	return items, dto.NewPagination(page, pageSize, total), nil
}

// UpdateInvoiceStatus settles or voids an invoice. The employer marks paid;
// the issuing candidate may void an unpaid invoice.
func (s *ContractService) UpdateInvoiceStatus(caller auth.Caller, contractID, invoiceID string, req dto.UpdateInvoiceStatusRequest) (*dto.InvoiceResponse, error) {
	contract, err := s.loadForParticipant(caller, contractID)
	if err != nil {
		return nil, err
	}

	invoice, err := s.contractRepo.FindInvoiceByID(invoiceID)
	if err != nil {
		if err == repositories.ErrInvoiceNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if invoice.ContractID != contractID {
		return nil, apperrors.ErrNotFound(repositories.ErrInvoiceNotFound)
	}

	newStatus := models.InvoiceStatus(req.Status)
	var paidAt *time.Time

	switch newStatus {
	case models.InvoiceStatusPaid:
		if err := auth.Authorize(caller, auth.ActionInvoiceSettle); err != nil {
			return nil, err
		}
		if caller.ID != contract.EmployerID && caller.Role != models.UserRoleAdmin {
			return nil, apperrors.ErrInsufficientPermissions
		}
		if invoice.Status != models.InvoiceStatusSent {
			return nil, apperrors.ErrInvalidInvoiceStatus
		}
		now := time.Now()
		paidAt = &now
	case models.InvoiceStatusVoid:
		if caller.ID != contract.CandidateID && caller.Role != models.UserRoleAdmin {
			return nil, apperrors.ErrInsufficientPermissions
		}
		if invoice.Status == models.InvoiceStatusPaid {
			return nil, apperrors.ErrInvalidInvoiceStatus
		}
	default:
		return nil, apperrors.ErrInvalidInvoiceStatus
	}

	if err := s.contractRepo.UpdateInvoiceStatus(invoiceID, newStatus, paidAt); err != nil {
		return nil, apperrors.InternalError(err)
	}
	invoice.Status = newStatus
	invoice.PaidAt = paidAt

	if newStatus == models.InvoiceStatusPaid {
		s.notificationService.NotifyUser(contract.CandidateID, models.NotificationTypeSuccess,
			"Invoice paid",
			"Invoice "+invoice.Number+" was marked as paid.",
			"/contracts/"+contractID+"/invoices", "")
	}

	resp := dto.NewInvoiceResponse(invoice)
	return &resp, nil
}

// --- time entries ---

func (s *ContractService) LogTimeEntry(caller auth.Caller, contractID string, req dto.LogTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	if err := auth.Authorize(caller, auth.ActionTimeEntryLog); err != nil {
		return nil, err
	}

	contract, err := s.loadForParticipant(caller, contractID)
	if err != nil {
		return nil, err
	}
	if contract.CandidateID != caller.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if contract.Status != models.ContractStatusActive {
		return nil, apperrors.ErrInvalidContractStatus
	}

	entry := &models.TimeEntry{
		ContractID:  contractID,
		CandidateID: caller.ID,
		Date:        req.Date,
		Hours:       req.Hours,
		Description: req.Description,
		Status:      models.TimeEntryStatusPending,
	}

	if err := s.contractRepo.CreateTimeEntry(entry); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewTimeEntryResponse(entry)
	return &resp, nil
}

func (s *ContractService) ListTimeEntries(caller auth.Caller, contractID, status string, page, pageSize int) ([]dto.TimeEntryResponse, dto.Pagination, error) {
	if _, err := s.loadForParticipant(caller, contractID); err != nil {
		return nil, dto.Pagination{}, err
	}

	entries, total, err := s.contractRepo.ListTimeEntries(contractID, status, page, pageSize)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	items := make([]dto.TimeEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.NewTimeEntryResponse(&entries[i]))
	}
	return items, dto.NewPagination(page, pageSize, total), nil
}

// ReviewTimeEntry resolves a pending entry. Resolved entries are final so
// billed hours cannot change under an issued invoice.
func (s *ContractService) ReviewTimeEntry(caller auth.Caller, contractID, entryID string, req dto.ReviewTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	if err := auth.Authorize(caller, auth.ActionTimeEntryReview); err != nil {
		return nil, err
	}

	contract, err := s.loadForParticipant(caller, contractID)
	if err != nil {
		return nil, err
	}
	if contract.EmployerID != caller.ID && caller.Role != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	entry, err := s.contractRepo.FindTimeEntryByID(entryID)
	if err != nil {
		if err == repositories.ErrTimeEntryNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if entry.ContractID != contractID {
		return nil, apperrors.ErrNotFound(repositories.ErrTimeEntryNotFound)
	}
	if entry.Status != models.TimeEntryStatusPending {
		return nil, apperrors.ErrInvalidTimeEntryStatus
	}

	newStatus := models.TimeEntryStatus(req.Status)
	if err := s.contractRepo.UpdateTimeEntryStatus(entryID, newStatus); err != nil {
		return nil, apperrors.InternalError(err)
	}
	entry.Status = newStatus

	resp := dto.NewTimeEntryResponse(entry)
	return &resp, nil
}

func (s *ContractService) loadForParticipant(caller auth.Caller, contractID string) (*models.Contract, error) {
	contract, err := s.contractRepo.FindByID(contractID)
	if err != nil {
		if err == repositories.ErrContractNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.IsParticipant(caller, contract.EmployerID, contract.CandidateID) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return contract, nil
}

func invoiceNumber(contractID string, seq int64) string {
	prefix := contractID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("INV-%s-%04d", prefix, seq)
}

func invoiceCurrency(inv *models.Invoice) string {
	if inv.Currency == "" {
		return "EUR"
	}
	return inv.Currency
}
