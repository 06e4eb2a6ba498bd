package models

// Result holds a student's marks for one subject. One row per
// (student, subject) pair; saving again overwrites the marks.
type Result struct {
	ID              int64 `json:"id" db:"id"`
	StudentID       int64 `json:"studentId" db:"student_id"`
	SubjectID       int64 `json:"subjectId" db:"subject_id"`
	AssignmentMarks int   `json:"assignmentMarks" db:"assignment_marks"`
	ExamMarks       int   `json:"examMarks" db:"exam_marks"`

	// Relations (populated when needed)
	Subject *Subject `json:"subject,omitempty"`
}
