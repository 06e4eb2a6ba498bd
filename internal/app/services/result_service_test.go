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

type resultKey struct {
	studentID int64
	subjectID int64
}

type fakeResultStore struct {
	results map[resultKey]*models.Result
	nextID  int64
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{results: make(map[resultKey]*models.Result)}
}

func (f *fakeResultStore) Upsert(ctx context.Context, result *models.Result) error {
	key := resultKey{result.StudentID, result.SubjectID}
	if existing, ok := f.results[key]; ok {
		existing.AssignmentMarks = result.AssignmentMarks
		existing.ExamMarks = result.ExamMarks
		result.ID = existing.ID
		return nil
	}
	f.nextID++
	result.ID = f.nextID
	clone := *result
	f.results[key] = &clone
	return nil
}

func (f *fakeResultStore) ListByStudent(ctx context.Context, studentID int64) ([]*models.Result, error) {
	var out []*models.Result
	for _, result := range f.results {
		if result.StudentID == studentID {
			out = append(out, result)
		}
	}
	return out, nil
}

func (f *fakeResultStore) ListByStaff(ctx context.Context, staffUserID int64) ([]*models.Result, error) {
	var out []*models.Result
	for _, result := range f.results {
		out = append(out, result)
	}
	return out, nil
}

func TestSaveResultInsertThenOverwrite(t *testing.T) {
	accounts := newFakeAccountStore()
	store := newFakeResultStore()
	svc := NewResultService(store, accounts, zerolog.Nop())

	first, err := svc.Save(context.Background(), 7, 3, 60, 70)
	require.NoError(t, err)

	// Saving the same pair again overwrites instead of adding a row.
	second, err := svc.Save(context.Background(), 7, 3, 85, 90)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, store.results, 1)
	saved := store.results[resultKey{7, 3}]
	assert.Equal(t, 85, saved.AssignmentMarks)
	assert.Equal(t, 90, saved.ExamMarks)

	// A different subject for the same student is a new row.
	_, err = svc.Save(context.Background(), 7, 4, 50, 55)
	require.NoError(t, err)
	assert.Len(t, store.results, 2)
}

func TestSaveResultRejectsOutOfRangeMarks(t *testing.T) {
	accounts := newFakeAccountStore()
	svc := NewResultService(newFakeResultStore(), accounts, zerolog.Nop())

	_, err := svc.Save(context.Background(), 7, 3, -1, 50)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Save(context.Background(), 7, 3, 50, 101)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	// Boundary values are fine.
	_, err = svc.Save(context.Background(), 7, 3, 0, 100)
	assert.NoError(t, err)
}

func TestListResultsForStudent(t *testing.T) {
	accounts := newFakeAccountStore()
	userID, profileID := seedStudent(accounts)
	store := newFakeResultStore()
	svc := NewResultService(store, accounts, zerolog.Nop())

	_, err := svc.Save(context.Background(), profileID, 3, 40, 60)
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), profileID+100, 3, 10, 20)
	require.NoError(t, err)

	results, err := svc.ListForStudent(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, profileID, results[0].StudentID)
}
