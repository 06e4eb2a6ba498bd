package models

import "time"

// Course represents a course students enroll in.
type Course struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" binding:"required"`
}

// SessionYear represents an academic session window.
type SessionYear struct {
	ID        int64     `json:"id" db:"id"`
	StartDate time.Time `json:"startDate" db:"start_date"`
	EndDate   time.Time `json:"endDate" db:"end_date"`
}

// Subject represents a taught subject, owned by a course and assigned to
// one staff identity.
type Subject struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	CourseID int64  `json:"courseId" db:"course_id"`
	StaffID  int64  `json:"staffId" db:"staff_id"`

	// Relations (populated when needed)
	Course *Course   `json:"course,omitempty"`
	Staff  *Identity `json:"staff,omitempty"`

	// StaffName is populated by listing queries that join the identity.
	StaffName string `json:"staffName,omitempty"`
}
