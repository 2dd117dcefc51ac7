package auth

import (
	"seniorwork_backend/internal/models"
	"seniorwork_backend/pkg/apperrors"
)

// Caller is the authenticated principal a request acts as. Role comes from
// the token; Status is loaded from the database by the service so that a
// moderation decision takes effect immediately.
type Caller struct {
	ID     string
	Role   models.UserRole
	Status models.UserStatus
}

func CallerFromUser(u *models.User) Caller {
	return Caller{ID: u.ID, Role: u.Role, Status: u.Status}
}

type Action string

const (
	ActionJobCreate Action = "jobs:create"
	ActionJobUpdate Action = "jobs:update"
	ActionJobDelete Action = "jobs:delete"
	ActionJobSave   Action = "jobs:save"

	ActionApplicationCreate   Action = "applications:create"
	ActionApplicationModerate Action = "applications:moderate"
	ActionApplicationWithdraw Action = "applications:withdraw"

	ActionMessageSend Action = "messages:send"

	ActionContractCreate  Action = "contracts:create"
	ActionContractManage  Action = "contracts:manage"
	ActionInvoiceIssue    Action = "invoices:issue"
	ActionInvoiceSettle   Action = "invoices:settle"
	ActionTimeEntryLog    Action = "time_entries:log"
	ActionTimeEntryReview Action = "time_entries:review"

	ActionReviewCreate Action = "reviews:create"

	ActionAdminUsers         Action = "admin:users"
	ActionAdminStats         Action = "admin:stats"
	ActionAdminNotifications Action = "admin:notifications"
)

type rule struct {
	roles           []models.UserRole
	requireApproved bool
}

// Every privileged operation is declared here once; handlers and services
// never re-implement role or status checks route by route.
var policy = map[Action]rule{
	ActionJobCreate: {roles: []models.UserRole{models.UserRoleEmployer}, requireApproved: true},
	ActionJobUpdate: {roles: []models.UserRole{models.UserRoleEmployer, models.UserRoleAdmin}, requireApproved: true},
	ActionJobDelete: {roles: []models.UserRole{models.UserRoleEmployer, models.UserRoleAdmin}, requireApproved: true},
	ActionJobSave:   {roles: []models.UserRole{models.UserRoleCandidate}, requireApproved: true},

	ActionApplicationCreate:   {roles: []models.UserRole{models.UserRoleCandidate}, requireApproved: true},
	ActionApplicationModerate: {roles: []models.UserRole{models.UserRoleEmployer, models.UserRoleAdmin}, requireApproved: true},
	ActionApplicationWithdraw: {roles: []models.UserRole{models.UserRoleCandidate}, requireApproved: true},

	ActionMessageSend: {roles: []models.UserRole{models.UserRoleCandidate, models.UserRoleEmployer, models.UserRoleAdmin}, requireApproved: true},

	ActionContractCreate:  {roles: []models.UserRole{models.UserRoleEmployer}, requireApproved: true},
	ActionContractManage:  {roles: []models.UserRole{models.UserRoleCandidate, models.UserRoleEmployer, models.UserRoleAdmin}, requireApproved: true},
	ActionInvoiceIssue:    {roles: []models.UserRole{models.UserRoleCandidate}, requireApproved: true},
	ActionInvoiceSettle:   {roles: []models.UserRole{models.UserRoleEmployer, models.UserRoleAdmin}, requireApproved: true},
	ActionTimeEntryLog:    {roles: []models.UserRole{models.UserRoleCandidate}, requireApproved: true},
	ActionTimeEntryReview: {roles: []models.UserRole{models.UserRoleEmployer, models.UserRoleAdmin}, requireApproved: true},

	ActionReviewCreate: {roles: []models.UserRole{models.UserRoleCandidate, models.UserRoleEmployer}, requireApproved: true},

	ActionAdminUsers:         {roles: []models.UserRole{models.UserRoleAdmin}},
	ActionAdminStats:         {roles: []models.UserRole{models.UserRoleAdmin}},
	ActionAdminNotifications: {roles: []models.UserRole{models.UserRoleAdmin}},
}

// Authorize decides whether the caller may perform the action. It returns
// nil on allow, or an AppError carrying the right HTTP status on deny.
func Authorize(caller Caller, action Action) error {
	r, ok := policy[action]
	if !ok {
		return apperrors.ErrInsufficientPermissions
	}

	allowed := false
	for _, role := range r.roles {
		if caller.Role == role {
			allowed = true
			break
		}
	}
	if !allowed {
		return apperrors.ErrInsufficientPermissions
	}

	// Admins are approved by construction (seeded or promoted).
	if r.requireApproved && caller.Role != models.UserRoleAdmin {
		switch caller.Status {
		case models.UserStatusApproved:
		case models.UserStatusRejected:
			return apperrors.ErrAccountRejected
		default:
			return apperrors.ErrAccountNotApproved
		}
	}

	return nil
}

// AuthorizeOwner allows the action only for the resource owner or an admin.
func AuthorizeOwner(caller Caller, action Action, ownerID string) error {
	if err := Authorize(caller, action); err != nil {
		return err
	}
	if caller.Role == models.UserRoleAdmin {
		return nil
	}
	if caller.ID != ownerID {
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}

// IsParticipant reports whether the caller is one of the given parties or
// an admin. Used for two-sided resources (contracts, messages, applications).
func IsParticipant(caller Caller, partyIDs ...string) bool {
	if caller.Role == models.UserRoleAdmin {
		return true
	}
	for _, id := range partyIDs {
		if caller.ID == id {
			return true
		}
	}
	return false
}
