package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
)

type fakeFeedbackStore struct {
	studentFeedback map[int64]*models.StudentFeedback
	staffFeedback   map[int64]*models.StaffFeedback
	nextID          int64
}

func newFakeFeedbackStore() *fakeFeedbackStore {
	return &fakeFeedbackStore{
		studentFeedback: make(map[int64]*models.StudentFeedback),
		staffFeedback:   make(map[int64]*models.StaffFeedback),
	}
}

func (f *fakeFeedbackStore) CreateStudentFeedback(ctx context.Context, feedback *models.StudentFeedback) error {
	f.nextID++
	feedback.ID = f.nextID
	clone := *feedback
	f.studentFeedback[feedback.ID] = &clone
	return nil
}

func (f *fakeFeedbackStore) CreateStaffFeedback(ctx context.Context, feedback *models.StaffFeedback) error {
	f.nextID++
	feedback.ID = f.nextID
	clone := *feedback
	f.staffFeedback[feedback.ID] = &clone
	return nil
}

func (f *fakeFeedbackStore) ListStudentFeedback(ctx context.Context, studentID int64) ([]*models.StudentFeedback, error) {
	var out []*models.StudentFeedback
	for _, feedback := range f.studentFeedback {
		if studentID > 0 && feedback.StudentID != studentID {
			continue
		}
		out = append(out, feedback)
	}
	return out, nil
}

func (f *fakeFeedbackStore) ListStaffFeedback(ctx context.Context, staffID int64) ([]*models.StaffFeedback, error) {
	var out []*models.StaffFeedback
	for _, feedback := range f.staffFeedback {
		if staffID > 0 && feedback.StaffID != staffID {
			continue
		}
		out = append(out, feedback)
	}
	return out, nil
}

func (f *fakeFeedbackStore) ReplyStudentFeedback(ctx context.Context, id int64, reply string) error {
	feedback, ok := f.studentFeedback[id]
	if !ok {
		return apperrors.ErrFeedbackNotFound
	}
	feedback.Reply = reply
	return nil
}

func (f *fakeFeedbackStore) ReplyStaffFeedback(ctx context.Context, id int64, reply string) error {
	feedback, ok := f.staffFeedback[id]
	if !ok {
		return apperrors.ErrFeedbackNotFound
	}
	feedback.Reply = reply
	return nil
}

func TestSubmitStudentFeedback(t *testing.T) {
	accounts := newFakeAccountStore()
	userID, profileID := seedStudent(accounts)
	store := newFakeFeedbackStore()
	svc := NewFeedbackService(store, accounts, zerolog.Nop())

	feedback, err := svc.SubmitStudentFeedback(context.Background(), userID, "more library hours please")
	require.NoError(t, err)
	assert.Equal(t, profileID, feedback.StudentID)
	assert.Equal(t, "", feedback.Reply)
}

func TestSubmitFeedbackUnknownUser(t *testing.T) {
	accounts := newFakeAccountStore()
	store := newFakeFeedbackStore()
	svc := NewFeedbackService(store, accounts, zerolog.Nop())

	_, err := svc.SubmitStudentFeedback(context.Background(), 42, "hello")
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestReplyFeedbackReportsOutcome(t *testing.T) {
	accounts := newFakeAccountStore()
	userID, _ := seedStaff(accounts)
	store := newFakeFeedbackStore()
	svc := NewFeedbackService(store, accounts, zerolog.Nop())

	feedback, err := svc.SubmitStaffFeedback(context.Background(), userID, "projector is broken")
	require.NoError(t, err)

	assert.True(t, svc.ReplyStaffFeedback(context.Background(), feedback.ID, "replacement ordered"))
	assert.Equal(t, "replacement ordered", store.staffFeedback[feedback.ID].Reply)

	// Unknown id reports false instead of an error.
	assert.False(t, svc.ReplyStaffFeedback(context.Background(), 9999, "nope"))
	assert.False(t, svc.ReplyStudentFeedback(context.Background(), 9999, "nope"))
}

func TestListOwnFeedbackFiltersByProfile(t *testing.T) {
	accounts := newFakeAccountStore()
	firstUser, _ := seedStudent(accounts)
	secondUser, _ := seedStudent(accounts)
	store := newFakeFeedbackStore()
	svc := NewFeedbackService(store, accounts, zerolog.Nop())

	_, err := svc.SubmitStudentFeedback(context.Background(), firstUser, "first")
	require.NoError(t, err)
	_, err = svc.SubmitStudentFeedback(context.Background(), secondUser, "second")
	require.NoError(t, err)

	own, err := svc.ListOwnStudentFeedback(context.Background(), firstUser)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "first", own[0].Message)

	all, err := svc.ListStudentFeedback(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
