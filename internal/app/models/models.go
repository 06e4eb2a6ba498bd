package models

// Role defines the user role type. Exactly one canonical representation is
// used everywhere; handlers and middleware must never compare against raw
// strings or numbers.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStaff   Role = "STAFF"
	RoleStudent Role = "STUDENT"
)

// Known reports whether r is one of the three recognized roles.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleStudent:
		return true
	}
	return false
}

// LeaveStatus tracks the lifecycle of a leave request.
type LeaveStatus int

const (
	LeavePending  LeaveStatus = 0
	LeaveApproved LeaveStatus = 1
	LeaveRejected LeaveStatus = 2
)
