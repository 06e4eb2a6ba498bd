package models

import "time"

// Attendance represents one taken roll-call for a subject on a date.
type Attendance struct {
	ID            int64     `json:"id" db:"id"`
	SubjectID     int64     `json:"subjectId" db:"subject_id"`
	SessionYearID int64     `json:"sessionYearId" db:"session_year_id"`
	Date          time.Time `json:"date" db:"date"`
}

// AttendanceReport is one student's present/absent mark for one Attendance.
type AttendanceReport struct {
	ID           int64 `json:"id" db:"id"`
	AttendanceID int64 `json:"attendanceId" db:"attendance_id"`
	StudentID    int64 `json:"studentId" db:"student_id"`
	Present      bool  `json:"present" db:"present"`

	// StudentName is populated by listing queries that join the identity.
	StudentName string `json:"studentName,omitempty"`
}

// AttendanceSummary aggregates a student's marks.
type AttendanceSummary struct {
	Total   int64 `json:"total"`
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
}
