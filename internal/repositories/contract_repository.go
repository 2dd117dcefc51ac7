package repositories

import (
	"errors"
	"time"

	"seniorwork_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrContractNotFound  = errors.New("contract not found")
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrTimeEntryNotFound = errors.New("time entry not found")
)

type ContractRepository interface {
	Create(contract *models.Contract) error
	FindByID(id string) (*models.Contract, error)
	Update(contract *models.Contract) error
	UpdateStatus(id string, status models.ContractStatus) error
	ListByUser(userID string, status string, page, pageSize int) ([]models.Contract, int64, error)

	CreateInvoice(invoice *models.Invoice) error
	FindInvoiceByID(id string) (*models.Invoice, error)
	UpdateInvoiceStatus(id string, status models.InvoiceStatus, paidAt *time.Time) error
	ListInvoices(contractID string, page, pageSize int) ([]models.Invoice, int64, error)
	CountInvoicesForContract(contractID string) (int64, error)

	CreateTimeEntry(entry *models.TimeEntry) error
	FindTimeEntryByID(id string) (*models.TimeEntry, error)
	UpdateTimeEntryStatus(id string, status models.TimeEntryStatus) error
	ListTimeEntries(contractID string, status string, page, pageSize int) ([]models.TimeEntry, int64, error)
	SumApprovedHours(contractID string, from, to time.Time) (float64, error)
}

type ContractRepositoryImpl struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &ContractRepositoryImpl{db: db}
}

func (r *ContractRepositoryImpl) Create(contract *models.Contract) error {
	return r.db.Create(contract).Error
}

func (r *ContractRepositoryImpl) FindByID(id string) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.Preload("Employer").Preload("Candidate").Where("id = ?", id).First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	return &contract, nil
}

func (r *ContractRepositoryImpl) Update(contract *models.Contract) error {
	result := r.db.Model(contract).Updates(map[string]interface{}{
		"title":       contract.Title,
		"terms":       contract.Terms,
		"hourly_rate": contract.HourlyRate,
		"start_date":  contract.StartDate,
		"end_date":    contract.EndDate,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContractNotFound
	}
	return nil
}

func (r *ContractRepositoryImpl) UpdateStatus(id string, status models.ContractStatus) error {
	result := r.db.Model(&models.Contract{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContractNotFound
	}
	return nil
}

// ListByUser returns contracts where the user is either party.
func (r *ContractRepositoryImpl) ListByUser(userID string, status string, page, pageSize int) ([]models.Contract, int64, error) {
	var contracts []models.Contract
	query := r.db.Model(&models.Contract{}).
		Where("employer_id = ? OR candidate_id = ?", userID, userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Employer").Preload("Candidate").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&contracts).Error
	return contracts, total, err
}

func (r *ContractRepositoryImpl) CreateInvoice(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

func (r *ContractRepositoryImpl) FindInvoiceByID(id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.Where("id = ?", id).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *ContractRepositoryImpl) UpdateInvoiceStatus(id string, status models.InvoiceStatus, paidAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if paidAt != nil {
		updates["paid_at"] = paidAt
	}
	result := r.db.Model(&models.Invoice{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

func (r *ContractRepositoryImpl) ListInvoices(contractID string, page, pageSize int) ([]models.Invoice, int64, error) {
	var invoices []models.Invoice
	query := r.db.Model(&models.Invoice{}).Where("contract_id = ?", contractID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&invoices).Error
	return invoices, total, err
}

// CountInvoicesForContract feeds sequential invoice numbering.
func (r *ContractRepositoryImpl) CountInvoicesForContract(contractID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).Where("contract_id = ?", contractID).Count(&count).Error
	return count, err
}

func (r *ContractRepositoryImpl) CreateTimeEntry(entry *models.TimeEntry) error {
	return r.db.Create(entry).Error
}

func (r *ContractRepositoryImpl) FindTimeEntryByID(id string) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *ContractRepositoryImpl) UpdateTimeEntryStatus(id string, status models.TimeEntryStatus) error {
	result := r.db.Model(&models.TimeEntry{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTimeEntryNotFound
	}
	return nil
}

func (r *ContractRepositoryImpl) ListTimeEntries(contractID string, status string, page, pageSize int) ([]models.TimeEntry, int64, error) {
	var entries []models.TimeEntry
	query := r.db.Model(&models.TimeEntry{}).Where("contract_id = ?", contractID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("date DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&entries).Error
	return entries, total, err
}

func (r *ContractRepositoryImpl) SumApprovedHours(contractID string, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.TimeEntry{}).
		Where("contract_id = ? AND status = ? AND date >= ? AND date <= ?",
			contractID, models.TimeEntryStatusApproved, from, to).
		Select("COALESCE(SUM(hours), 0)").
		Scan(&total).Error
	return total, err
}
