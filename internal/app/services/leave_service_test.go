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

type fakeLeaveStore struct {
	studentLeaves map[int64]*models.StudentLeave
	staffLeaves   map[int64]*models.StaffLeave
	nextID        int64
}

func newFakeLeaveStore() *fakeLeaveStore {
	return &fakeLeaveStore{
		studentLeaves: make(map[int64]*models.StudentLeave),
		staffLeaves:   make(map[int64]*models.StaffLeave),
	}
}

func (f *fakeLeaveStore) CreateStudentLeave(ctx context.Context, leave *models.StudentLeave) error {
	f.nextID++
	leave.ID = f.nextID
	clone := *leave
	f.studentLeaves[leave.ID] = &clone
	return nil
}

func (f *fakeLeaveStore) CreateStaffLeave(ctx context.Context, leave *models.StaffLeave) error {
	f.nextID++
	leave.ID = f.nextID
	clone := *leave
	f.staffLeaves[leave.ID] = &clone
	return nil
}

func (f *fakeLeaveStore) ListStudentLeaves(ctx context.Context, studentID int64) ([]*models.StudentLeave, error) {
	var out []*models.StudentLeave
	for _, leave := range f.studentLeaves {
		if studentID > 0 && leave.StudentID != studentID {
			continue
		}
		out = append(out, leave)
	}
	return out, nil
}

func (f *fakeLeaveStore) ListStaffLeaves(ctx context.Context, staffID int64) ([]*models.StaffLeave, error) {
	var out []*models.StaffLeave
	for _, leave := range f.staffLeaves {
		if staffID > 0 && leave.StaffID != staffID {
			continue
		}
		out = append(out, leave)
	}
	return out, nil
}

func (f *fakeLeaveStore) SetStudentLeaveStatus(ctx context.Context, id int64, status models.LeaveStatus) error {
	leave, ok := f.studentLeaves[id]
	if !ok {
		return apperrors.ErrLeaveNotFound
	}
	leave.Status = status
	return nil
}

func (f *fakeLeaveStore) SetStaffLeaveStatus(ctx context.Context, id int64, status models.LeaveStatus) error {
	leave, ok := f.staffLeaves[id]
	if !ok {
		return apperrors.ErrLeaveNotFound
	}
	leave.Status = status
	return nil
}

// seedStudent inserts an identity with a student profile directly and
// returns (userID, profileID).
func seedStudent(store *fakeAccountStore) (int64, int64) {
	store.nextID++
	userID := store.nextID
	store.identities[userID] = &models.Identity{ID: userID, Role: models.RoleStudent}
	store.nextID++
	profileID := store.nextID
	store.studentProfiles[profileID] = &models.StudentProfile{
		ID: profileID, UserID: userID, CourseID: 1, SessionYearID: 1,
	}
	return userID, profileID
}

func seedStaff(store *fakeAccountStore) (int64, int64) {
	store.nextID++
	userID := store.nextID
	store.identities[userID] = &models.Identity{ID: userID, Role: models.RoleStaff}
	store.nextID++
	profileID := store.nextID
	store.staffProfiles[profileID] = &models.StaffProfile{ID: profileID, UserID: userID}
	return userID, profileID
}

func TestApplyStudentLeave(t *testing.T) {
	accounts := newFakeAccountStore()
	userID, profileID := seedStudent(accounts)
	leaves := newFakeLeaveStore()
	svc := NewLeaveService(leaves, accounts, zerolog.Nop())

	leave, err := svc.ApplyStudentLeave(context.Background(), userID, "2026-09-10", "family event")
	require.NoError(t, err)
	assert.Equal(t, profileID, leave.StudentID)
	assert.Equal(t, models.LeavePending, leave.Status)

	_, err = svc.ApplyStudentLeave(context.Background(), userID, "10/09/2026", "bad date")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestApplyStaffLeave(t *testing.T) {
	accounts := newFakeAccountStore()
	userID, profileID := seedStaff(accounts)
	leaves := newFakeLeaveStore()
	svc := NewLeaveService(leaves, accounts, zerolog.Nop())

	leave, err := svc.ApplyStaffLeave(context.Background(), userID, "2026-09-12", "conference")
	require.NoError(t, err)
	assert.Equal(t, profileID, leave.StaffID)
	assert.Equal(t, models.LeavePending, leave.Status)
}

func TestSetLeaveStatusTransitions(t *testing.T) {
	accounts := newFakeAccountStore()
	userID, _ := seedStudent(accounts)
	leaves := newFakeLeaveStore()
	svc := NewLeaveService(leaves, accounts, zerolog.Nop())

	leave, err := svc.ApplyStudentLeave(context.Background(), userID, "2026-09-10", "msg")
	require.NoError(t, err)

	require.NoError(t, svc.SetStudentLeaveStatus(context.Background(), leave.ID, models.LeaveApproved))
	assert.Equal(t, models.LeaveApproved, leaves.studentLeaves[leave.ID].Status)

	require.NoError(t, svc.SetStudentLeaveStatus(context.Background(), leave.ID, models.LeaveRejected))
	assert.Equal(t, models.LeaveRejected, leaves.studentLeaves[leave.ID].Status)

	// Pending is not a reachable target state.
	err = svc.SetStudentLeaveStatus(context.Background(), leave.ID, models.LeavePending)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	err = svc.SetStudentLeaveStatus(context.Background(), 9999, models.LeaveApproved)
	assert.ErrorIs(t, err, apperrors.ErrLeaveNotFound)
}

func TestListOwnLeavesFiltersByProfile(t *testing.T) {
	accounts := newFakeAccountStore()
	firstUser, _ := seedStudent(accounts)
	secondUser, _ := seedStudent(accounts)
	leaves := newFakeLeaveStore()
	svc := NewLeaveService(leaves, accounts, zerolog.Nop())

	_, err := svc.ApplyStudentLeave(context.Background(), firstUser, "2026-09-10", "one")
	require.NoError(t, err)
	_, err = svc.ApplyStudentLeave(context.Background(), secondUser, "2026-09-11", "two")
	require.NoError(t, err)

	own, err := svc.ListOwnStudentLeaves(context.Background(), firstUser)
	require.NoError(t, err)
	assert.Len(t, own, 1)
	assert.Equal(t, "one", own[0].Message)

	all, err := svc.ListStudentLeaves(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
