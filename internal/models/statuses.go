package models

type UserRole string
type UserStatus string
type JobType string
type ApplicationStatus string
type ContractStatus string
type InvoiceStatus string
type TimeEntryStatus string
type NotificationType string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleCandidate UserRole = "candidate"
	UserRoleEmployer  UserRole = "employer"

	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
	UserStatusRejected UserStatus = "rejected"

	JobTypeFullTime  JobType = "full_time"
	JobTypePartTime  JobType = "part_time"
	JobTypeContract  JobType = "contract"
	JobTypeTemporary JobType = "temporary"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	ContractStatusDraft     ContractStatus = "draft"
	ContractStatusActive    ContractStatus = "active"
	ContractStatusCompleted ContractStatus = "completed"
	ContractStatusCancelled ContractStatus = "cancelled"

	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
	InvoiceStatusVoid  InvoiceStatus = "void"

	TimeEntryStatusPending  TimeEntryStatus = "pending"
	TimeEntryStatusApproved TimeEntryStatus = "approved"
	TimeEntryStatusRejected TimeEntryStatus = "rejected"

	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
)
