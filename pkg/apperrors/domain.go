package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the business domains. Repository
// sentinel errors get wrapped through the factory functions; static rules
// use the predefined vars directly.

// --- factory functions ---

// ErrNotFound wraps a repository not-found error (e.g. gorm.ErrRecordNotFound).
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// --- auth & account ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrAccountNotApproved is the status gate: privileged actions require an
// admin-approved account.
var ErrAccountNotApproved = New(
	CodeForbidden,
	"auth",
	"Account is not approved yet",
	http.StatusForbidden,
)

var ErrAccountRejected = New(
	CodeForbidden,
	"auth",
	"Account has been rejected",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrCannotModifySelf = New(
	CodeForbidden,
	"business_logic",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

// --- jobs & applications ---

var ErrJobInactive = New(
	CodeInvalidStatus,
	"job",
	"Job is no longer active",
	http.StatusConflict,
)

var ErrJobDeadlinePassed = New(
	CodeInvalidStatus,
	"job",
	"Job application deadline has passed",
	http.StatusConflict,
)

var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Operation not allowed for the current application status",
	http.StatusConflict,
)

var ErrAlreadySaved = New(
	CodeAlreadyExists,
	"job",
	"Job is already saved",
	http.StatusConflict,
)

// --- contracts & billing ---

var ErrInvalidContractStatus = New(
	CodeInvalidStatus,
	"contract",
	"Operation not allowed for the current contract status",
	http.StatusConflict,
)

var ErrInvalidInvoiceStatus = New(
	CodeInvalidStatus,
	"invoice",
	"Operation not allowed for the current invoice status",
	http.StatusConflict,
)

var ErrInvalidTimeEntryStatus = New(
	CodeInvalidStatus,
	"time_entry",
	"Time entry has already been resolved",
	http.StatusConflict,
)

// --- reviews ---

var ErrAlreadyReviewed = New(
	CodeAlreadyExists,
	"review",
	"You have already reviewed this user for this contract",
	http.StatusConflict,
)

var ErrContractNotCompleted = New(
	CodeInvalidStatus,
	"review",
	"Reviews are only allowed for completed contracts",
	http.StatusConflict,
)
