package dto

// CreateCourseRequest represents a course creation payload
type CreateCourseRequest struct {
	Name string `json:"name" binding:"required" example:"Computer Science"`
}

// UpdateCourseRequest represents a course rename payload
type UpdateCourseRequest struct {
	Name string `json:"name" binding:"required"`
}

// CourseResponse represents a course in responses
type CourseResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Computer Science"`
}

// CreateSessionYearRequest represents a session year creation payload.
// Dates use the YYYY-MM-DD format.
type CreateSessionYearRequest struct {
	StartDate string `json:"startDate" binding:"required" example:"2025-09-01"`
	EndDate   string `json:"endDate" binding:"required" example:"2026-06-30"`
}

// UpdateSessionYearRequest represents a session year update payload
type UpdateSessionYearRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// SessionYearResponse represents a session year in responses
type SessionYearResponse struct {
	ID        int64  `json:"id" example:"1"`
	StartDate string `json:"startDate" example:"2025-09-01"`
	EndDate   string `json:"endDate" example:"2026-06-30"`
}

// CreateSubjectRequest represents a subject creation payload
type CreateSubjectRequest struct {
	Name     string `json:"name" binding:"required" example:"Algorithms"`
	CourseID int64  `json:"courseId" binding:"required" example:"1"`
	StaffID  int64  `json:"staffId" binding:"required" example:"7"`
}

// UpdateSubjectRequest represents a subject update payload
type UpdateSubjectRequest struct {
	Name     string `json:"name" binding:"required"`
	CourseID int64  `json:"courseId" binding:"required"`
	StaffID  int64  `json:"staffId" binding:"required"`
}

// SubjectResponse represents a subject in responses
type SubjectResponse struct {
	ID         int64  `json:"id" example:"1"`
	Name       string `json:"name" example:"Algorithms"`
	CourseID   int64  `json:"courseId" example:"1"`
	CourseName string `json:"courseName,omitempty"`
	StaffID    int64  `json:"staffId" example:"7"`
	StaffName  string `json:"staffName,omitempty"`
}
