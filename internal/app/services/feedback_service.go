package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
)

// FeedbackStore is the feedback persistence surface.
type FeedbackStore interface {
	CreateStudentFeedback(ctx context.Context, feedback *models.StudentFeedback) error
	CreateStaffFeedback(ctx context.Context, feedback *models.StaffFeedback) error
	ListStudentFeedback(ctx context.Context, studentID int64) ([]*models.StudentFeedback, error)
	ListStaffFeedback(ctx context.Context, staffID int64) ([]*models.StaffFeedback, error)
	ReplyStudentFeedback(ctx context.Context, id int64, reply string) error
	ReplyStaffFeedback(ctx context.Context, id int64, reply string) error
}

// FeedbackService manages feedback messages and administrator replies.
type FeedbackService struct {
	feedbacks FeedbackStore
	profiles  ProfileReader
	logger    zerolog.Logger
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbacks FeedbackStore, profiles ProfileReader, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{
		feedbacks: feedbacks,
		profiles:  profiles,
		logger:    logger,
	}
}

// SubmitStudentFeedback stores a feedback message from the student user
func (s *FeedbackService) SubmitStudentFeedback(ctx context.Context, userID int64, message string) (*models.StudentFeedback, error) {
	profile, err := s.profiles.GetStudentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	feedback := &models.StudentFeedback{StudentID: profile.ID, Message: message}
	if err := s.feedbacks.CreateStudentFeedback(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// SubmitStaffFeedback stores a feedback message from the staff user
func (s *FeedbackService) SubmitStaffFeedback(ctx context.Context, userID int64, message string) (*models.StaffFeedback, error) {
	profile, err := s.profiles.GetStaffByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	feedback := &models.StaffFeedback{StaffID: profile.ID, Message: message}
	if err := s.feedbacks.CreateStaffFeedback(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// ListStudentFeedback lists all student feedback (admin view)
func (s *FeedbackService) ListStudentFeedback(ctx context.Context) ([]*models.StudentFeedback, error) {
	return s.feedbacks.ListStudentFeedback(ctx, 0)
}

// ListStaffFeedback lists all staff feedback (admin view)
func (s *FeedbackService) ListStaffFeedback(ctx context.Context) ([]*models.StaffFeedback, error) {
	return s.feedbacks.ListStaffFeedback(ctx, 0)
}

// ListOwnStudentFeedback lists one student user's feedback entries
func (s *FeedbackService) ListOwnStudentFeedback(ctx context.Context, userID int64) ([]*models.StudentFeedback, error) {
	profile, err := s.profiles.GetStudentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.feedbacks.ListStudentFeedback(ctx, profile.ID)
}

// ListOwnStaffFeedback lists one staff user's feedback entries
func (s *FeedbackService) ListOwnStaffFeedback(ctx context.Context, userID int64) ([]*models.StaffFeedback, error) {
	profile, err := s.profiles.GetStaffByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.feedbacks.ListStaffFeedback(ctx, profile.ID)
}

// ReplyStudentFeedback records the administrator's reply on a student
// feedback entry and reports whether it was applied.
func (s *FeedbackService) ReplyStudentFeedback(ctx context.Context, id int64, reply string) bool {
	if err := s.feedbacks.ReplyStudentFeedback(ctx, id, reply); err != nil {
		s.logger.Warn().Err(err).Int64("feedbackId", id).Msg("Student feedback reply failed")
		return false
	}
	return true
}

// ReplyStaffFeedback records the administrator's reply on a staff feedback
// entry and reports whether it was applied.
func (s *FeedbackService) ReplyStaffFeedback(ctx context.Context, id int64, reply string) bool {
	if err := s.feedbacks.ReplyStaffFeedback(ctx, id, reply); err != nil {
		s.logger.Warn().Err(err).Int64("feedbackId", id).Msg("Staff feedback reply failed")
		return false
	}
	return true
}
