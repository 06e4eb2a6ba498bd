package dto

// SaveResultRequest inserts or updates a student's marks for a subject
type SaveResultRequest struct {
	StudentID       int64 `json:"studentId" binding:"required"`
	SubjectID       int64 `json:"subjectId" binding:"required"`
	AssignmentMarks int   `json:"assignmentMarks" binding:"min=0,max=100"`
	ExamMarks       int   `json:"examMarks" binding:"min=0,max=100"`
}

// ResultResponse represents one saved result row
type ResultResponse struct {
	ID              int64  `json:"id"`
	StudentID       int64  `json:"studentId"`
	SubjectID       int64  `json:"subjectId"`
	SubjectName     string `json:"subjectName,omitempty"`
	AssignmentMarks int    `json:"assignmentMarks"`
	ExamMarks       int    `json:"examMarks"`
}
