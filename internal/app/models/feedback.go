package models

import "time"

// StudentFeedback is a free-text message from a student with an optional
// administrator reply (empty until replied).
type StudentFeedback struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Message   string    `json:"message" db:"message"`
	Reply     string    `json:"reply" db:"reply"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	StudentName string `json:"studentName,omitempty"`
}

// StaffFeedback is the staff variant of StudentFeedback.
type StaffFeedback struct {
	ID        int64     `json:"id" db:"id"`
	StaffID   int64     `json:"staffId" db:"staff_id"`
	Message   string    `json:"message" db:"message"`
	Reply     string    `json:"reply" db:"reply"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	StaffName string `json:"staffName,omitempty"`
}
