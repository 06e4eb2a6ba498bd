package models

import "time"

// StudentLeave is a leave request filed by a student. Status is mutated
// only by an administrator.
type StudentLeave struct {
	ID        int64       `json:"id" db:"id"`
	StudentID int64       `json:"studentId" db:"student_id"`
	Date      string      `json:"date" db:"leave_date"`
	Message   string      `json:"message" db:"message"`
	Status    LeaveStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`

	StudentName string `json:"studentName,omitempty"`
}

// StaffLeave is a leave request filed by a staff member.
type StaffLeave struct {
	ID        int64       `json:"id" db:"id"`
	StaffID   int64       `json:"staffId" db:"staff_id"`
	Date      string      `json:"date" db:"leave_date"`
	Message   string      `json:"message" db:"message"`
	Status    LeaveStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`

	StaffName string `json:"staffName,omitempty"`
}
