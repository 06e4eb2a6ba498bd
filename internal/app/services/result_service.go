package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
	"github.com/Marcelo-Uk/student-management/internal/pkg/validation"
)

// ResultStore is the result persistence surface.
type ResultStore interface {
	Upsert(ctx context.Context, result *models.Result) error
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Result, error)
	ListByStaff(ctx context.Context, staffUserID int64) ([]*models.Result, error)
}

// ResultService manages per-subject marks.
type ResultService struct {
	results  ResultStore
	profiles ProfileReader
	logger   zerolog.Logger
}

// NewResultService creates a new ResultService
func NewResultService(results ResultStore, profiles ProfileReader, logger zerolog.Logger) *ResultService {
	return &ResultService{
		results:  results,
		profiles: profiles,
		logger:   logger,
	}
}

// Save records a student's marks for a subject. A second save for the
// same (student, subject) pair overwrites the first.
func (s *ResultService) Save(ctx context.Context, studentID, subjectID int64, assignmentMarks, examMarks int) (*models.Result, error) {
	if !validation.IsValidMarks(assignmentMarks) || !validation.IsValidMarks(examMarks) {
		return nil, apperrors.NewBadRequestError("marks must be between 0 and 100")
	}

	result := &models.Result{
		StudentID:       studentID,
		SubjectID:       subjectID,
		AssignmentMarks: assignmentMarks,
		ExamMarks:       examMarks,
	}
	if err := s.results.Upsert(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListForStudent lists one student user's results
func (s *ResultService) ListForStudent(ctx context.Context, userID int64) ([]*models.Result, error) {
	profile, err := s.profiles.GetStudentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.results.ListByStudent(ctx, profile.ID)
}

// ListForStaff lists the results recorded in one staff member's subjects
func (s *ResultService) ListForStaff(ctx context.Context, staffUserID int64) ([]*models.Result, error) {
	return s.results.ListByStaff(ctx, staffUserID)
}
