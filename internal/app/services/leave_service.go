package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
)

// LeaveStore is the leave request persistence surface.
type LeaveStore interface {
	CreateStudentLeave(ctx context.Context, leave *models.StudentLeave) error
	CreateStaffLeave(ctx context.Context, leave *models.StaffLeave) error
	ListStudentLeaves(ctx context.Context, studentID int64) ([]*models.StudentLeave, error)
	ListStaffLeaves(ctx context.Context, staffID int64) ([]*models.StaffLeave, error)
	SetStudentLeaveStatus(ctx context.Context, id int64, status models.LeaveStatus) error
	SetStaffLeaveStatus(ctx context.Context, id int64, status models.LeaveStatus) error
}

// LeaveService manages leave requests and their approval lifecycle.
type LeaveService struct {
	leaves   LeaveStore
	profiles ProfileReader
	logger   zerolog.Logger
}

// NewLeaveService creates a new LeaveService
func NewLeaveService(leaves LeaveStore, profiles ProfileReader, logger zerolog.Logger) *LeaveService {
	return &LeaveService{
		leaves:   leaves,
		profiles: profiles,
		logger:   logger,
	}
}

// ApplyStudentLeave files a pending leave request for the student user
func (s *LeaveService) ApplyStudentLeave(ctx context.Context, userID int64, date, message string) (*models.StudentLeave, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetStudentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	leave := &models.StudentLeave{
		StudentID: profile.ID,
		Date:      date,
		Message:   message,
		Status:    models.LeavePending,
	}
	if err := s.leaves.CreateStudentLeave(ctx, leave); err != nil {
		return nil, err
	}
	return leave, nil
}

// ApplyStaffLeave files a pending leave request for the staff user
func (s *LeaveService) ApplyStaffLeave(ctx context.Context, userID int64, date, message string) (*models.StaffLeave, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetStaffByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	leave := &models.StaffLeave{
		StaffID: profile.ID,
		Date:    date,
		Message: message,
		Status:  models.LeavePending,
	}
	if err := s.leaves.CreateStaffLeave(ctx, leave); err != nil {
		return nil, err
	}
	return leave, nil
}

// ListStudentLeaves lists every student leave request (admin view)
func (s *LeaveService) ListStudentLeaves(ctx context.Context) ([]*models.StudentLeave, error) {
	return s.leaves.ListStudentLeaves(ctx, 0)
}

// ListStaffLeaves lists every staff leave request (admin view)
func (s *LeaveService) ListStaffLeaves(ctx context.Context) ([]*models.StaffLeave, error) {
	return s.leaves.ListStaffLeaves(ctx, 0)
}

// ListOwnStudentLeaves lists one student user's leave requests
func (s *LeaveService) ListOwnStudentLeaves(ctx context.Context, userID int64) ([]*models.StudentLeave, error) {
	profile, err := s.profiles.GetStudentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.leaves.ListStudentLeaves(ctx, profile.ID)
}

// ListOwnStaffLeaves lists one staff user's leave requests
func (s *LeaveService) ListOwnStaffLeaves(ctx context.Context, userID int64) ([]*models.StaffLeave, error) {
	profile, err := s.profiles.GetStaffByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.leaves.ListStaffLeaves(ctx, profile.ID)
}

// SetStudentLeaveStatus approves or rejects a student leave request
func (s *LeaveService) SetStudentLeaveStatus(ctx context.Context, id int64, status models.LeaveStatus) error {
	if status != models.LeaveApproved && status != models.LeaveRejected {
		return apperrors.NewBadRequestError("leave status must be approved or rejected")
	}
	return s.leaves.SetStudentLeaveStatus(ctx, id, status)
}

// SetStaffLeaveStatus approves or rejects a staff leave request
func (s *LeaveService) SetStaffLeaveStatus(ctx context.Context, id int64, status models.LeaveStatus) error {
	if status != models.LeaveApproved && status != models.LeaveRejected {
		return apperrors.NewBadRequestError("leave status must be approved or rejected")
	}
	return s.leaves.SetStaffLeaveStatus(ctx, id, status)
}
