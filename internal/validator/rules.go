package validator

import (
	"log"

	"seniorwork_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain enum rules. Empty values pass so
// that optional fields stay optional; 'required' handles presence.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A broken rule registration is a startup error, not a
			// request error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-user-status", validateUserStatus)
	mustRegister("is-job-type", validateJobType)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-contract-status", validateContractStatus)
	mustRegister("is-invoice-status", validateInvoiceStatus)
	mustRegister("is-notification-type", validateNotificationType)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleAdmin, models.UserRoleCandidate, models.UserRoleEmployer:
		return true
	default:
		return false
	}
}

func validateUserStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserStatus(value) {
	case models.UserStatusPending, models.UserStatusApproved, models.UserStatusRejected:
		return true
	default:
		return false
	}
}

func validateJobType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobType(value) {
	case models.JobTypeFullTime, models.JobTypePartTime, models.JobTypeContract, models.JobTypeTemporary:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusPending, models.ApplicationStatusReviewed,
		models.ApplicationStatusAccepted, models.ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

func validateContractStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ContractStatus(value) {
	case models.ContractStatusDraft, models.ContractStatusActive,
		models.ContractStatusCompleted, models.ContractStatusCancelled:
		return true
	default:
		return false
	}
}

func validateInvoiceStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.InvoiceStatus(value) {
	case models.InvoiceStatusDraft, models.InvoiceStatusSent,
		models.InvoiceStatusPaid, models.InvoiceStatusVoid:
		return true
	default:
		return false
	}
}

func validateNotificationType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.NotificationType(value) {
	case models.NotificationTypeInfo, models.NotificationTypeSuccess,
		models.NotificationTypeWarning, models.NotificationTypeError:
		return true
	default:
		return false
	}
}
