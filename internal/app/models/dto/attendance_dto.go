package dto

// AttendanceDatesRequest asks for the taken-attendance dates of a subject
// within a session year
type AttendanceDatesRequest struct {
	SubjectID     int64 `form:"subject" json:"subject" binding:"required"`
	SessionYearID int64 `form:"session_year_id" json:"session_year_id" binding:"required"`
}

// AttendanceDateItem is the legacy wire shape of one taken-attendance date
type AttendanceDateItem struct {
	ID             int64  `json:"id"`
	AttendanceDate string `json:"attendance_date"`
	SessionYearID  int64  `json:"session_year_id"`
}

// AttendanceStudentsRequest asks for the per-student marks of one attendance
type AttendanceStudentsRequest struct {
	AttendanceID int64 `form:"attendance_date_id" json:"attendance_date_id" binding:"required"`
}

// AttendanceStudentItem is the legacy wire shape of one student mark
type AttendanceStudentItem struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status bool   `json:"status"`
}

// FetchStudentsRequest asks for the students enrolled in a subject's course
// for a session year, before attendance is taken
type FetchStudentsRequest struct {
	SubjectID     int64 `form:"subject" json:"subject" binding:"required"`
	SessionYearID int64 `form:"session_year" json:"session_year" binding:"required"`
}

// StudentMark is one student's mark inside a take or update payload
type StudentMark struct {
	StudentID int64 `json:"studentId" binding:"required"`
	Present   bool  `json:"present"`
}

// TakeAttendanceRequest creates an attendance and its per-student reports
type TakeAttendanceRequest struct {
	SubjectID     int64         `json:"subjectId" binding:"required"`
	SessionYearID int64         `json:"sessionYearId" binding:"required"`
	Date          string        `json:"date" binding:"required" example:"2025-10-03"`
	Students      []StudentMark `json:"students" binding:"required"`
}

// UpdateAttendanceRequest edits the marks of an existing attendance
type UpdateAttendanceRequest struct {
	AttendanceID int64         `json:"attendanceId" binding:"required"`
	Students     []StudentMark `json:"students" binding:"required"`
}

// StudentAttendanceQuery filters a student's own attendance reports
type StudentAttendanceQuery struct {
	SubjectID int64  `json:"subjectId" binding:"required"`
	StartDate string `json:"startDate" binding:"required" example:"2025-09-01"`
	EndDate   string `json:"endDate" binding:"required" example:"2025-12-31"`
}

// AttendanceReportItem is one dated mark in a student's own history
type AttendanceReportItem struct {
	Date    string `json:"date" example:"2025-10-03"`
	Present bool   `json:"present"`
}

// AttendanceResponse represents one attendance header
type AttendanceResponse struct {
	ID            int64  `json:"id"`
	SubjectID     int64  `json:"subjectId"`
	SessionYearID int64  `json:"sessionYearId"`
	Date          string `json:"date"`
}
