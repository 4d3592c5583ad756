package models

type UserRole string
type RequestStatus string
type TaskStatus string

const (
	UserRoleUser            UserRole = "user"
	UserRoleServiceProvider UserRole = "serviceProvider"

	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"

	TaskStatusOpen   TaskStatus = "open"
	TaskStatusClosed TaskStatus = "closed"
)

// IsDecided сообщает, находится ли заявка в терминальном статусе.
// Из терминального статуса переходы accept/reject запрещены.
func (s RequestStatus) IsDecided() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected
}
