package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/app/repositories"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
)

// fakeAccountStore keeps everything in maps and copies its state before
// each transaction so a failed one leaves nothing behind.
type fakeAccountStore struct {
	identities      map[int64]*models.Identity
	adminProfiles   map[int64]*models.AdminProfile
	staffProfiles   map[int64]*models.StaffProfile
	studentProfiles map[int64]*models.StudentProfile
	courses         map[int64]*models.Course
	sessions        map[int64]*models.SessionYear
	nextID          int64
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{
		identities:      make(map[int64]*models.Identity),
		adminProfiles:   make(map[int64]*models.AdminProfile),
		staffProfiles:   make(map[int64]*models.StaffProfile),
		studentProfiles: make(map[int64]*models.StudentProfile),
		courses:         make(map[int64]*models.Course),
		sessions:        make(map[int64]*models.SessionYear),
	}
}

func (f *fakeAccountStore) seedDefaults() {
	f.courses[1] = &models.Course{ID: 1, Name: "General"}
	f.sessions[1] = &models.SessionYear{ID: 1}
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (f *fakeAccountStore) snapshot() *fakeAccountStore {
	return &fakeAccountStore{
		identities:      copyMap(f.identities),
		adminProfiles:   copyMap(f.adminProfiles),
		staffProfiles:   copyMap(f.staffProfiles),
		studentProfiles: copyMap(f.studentProfiles),
		courses:         copyMap(f.courses),
		sessions:        copyMap(f.sessions),
		nextID:          f.nextID,
	}
}

func (f *fakeAccountStore) restore(snap *fakeAccountStore) {
	f.identities = snap.identities
	f.adminProfiles = snap.adminProfiles
	f.staffProfiles = snap.staffProfiles
	f.studentProfiles = snap.studentProfiles
	f.courses = snap.courses
	f.sessions = snap.sessions
	f.nextID = snap.nextID
}

func (f *fakeAccountStore) InTx(ctx context.Context, fn func(tx repositories.AccountTx) error) error {
	snap := f.snapshot()
	if err := fn(&fakeAccountTx{store: f}); err != nil {
		f.restore(snap)
		return err
	}
	return nil
}

// IdentityReader

func (f *fakeAccountStore) GetByID(ctx context.Context, id int64) (*models.Identity, error) {
	identity, ok := f.identities[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *identity
	return &clone, nil
}

func (f *fakeAccountStore) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	for _, identity := range f.identities {
		if identity.Email == email {
			clone := *identity
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeAccountStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeAccountStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	for _, identity := range f.identities {
		if identity.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountStore) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	var count int64
	for _, identity := range f.identities {
		if identity.Role == role {
			count++
		}
	}
	return count, nil
}

// ProfileReader

func (f *fakeAccountStore) GetStaffByUserID(ctx context.Context, userID int64) (*models.StaffProfile, error) {
	for _, profile := range f.staffProfiles {
		if profile.UserID == userID {
			clone := *profile
			return &clone, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (f *fakeAccountStore) GetStudentByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	for _, profile := range f.studentProfiles {
		if profile.UserID == userID {
			clone := *profile
			return &clone, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (f *fakeAccountStore) ListStaff(ctx context.Context) ([]*models.StaffProfile, error) {
	var out []*models.StaffProfile
	for _, profile := range f.staffProfiles {
		out = append(out, profile)
	}
	return out, nil
}

func (f *fakeAccountStore) ListStudents(ctx context.Context, courseID, sessionYearID int64) ([]*models.StudentProfile, error) {
	var out []*models.StudentProfile
	for _, profile := range f.studentProfiles {
		if courseID > 0 && profile.CourseID != courseID {
			continue
		}
		if sessionYearID > 0 && profile.SessionYearID != sessionYearID {
			continue
		}
		out = append(out, profile)
	}
	return out, nil
}

// fakeAccountTx writes straight into the store; InTx handles rollback.
type fakeAccountTx struct {
	store *fakeAccountStore
}

func (t *fakeAccountTx) CreateIdentity(ctx context.Context, identity *models.Identity) error {
	for _, existing := range t.store.identities {
		if existing.Email == identity.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if existing.Username == identity.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
	}
	t.store.nextID++
	identity.ID = t.store.nextID
	clone := *identity
	t.store.identities[identity.ID] = &clone
	return nil
}

func (t *fakeAccountTx) UpdateIdentity(ctx context.Context, identity *models.Identity) error {
	if _, ok := t.store.identities[identity.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	clone := *identity
	t.store.identities[identity.ID] = &clone
	return nil
}

func (t *fakeAccountTx) DeleteIdentity(ctx context.Context, id int64) error {
	if _, ok := t.store.identities[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(t.store.identities, id)
	for pid, profile := range t.store.studentProfiles {
		if profile.UserID == id {
			delete(t.store.studentProfiles, pid)
		}
	}
	for pid, profile := range t.store.staffProfiles {
		if profile.UserID == id {
			delete(t.store.staffProfiles, pid)
		}
	}
	for pid, profile := range t.store.adminProfiles {
		if profile.UserID == id {
			delete(t.store.adminProfiles, pid)
		}
	}
	return nil
}

func (t *fakeAccountTx) CreateAdminProfile(ctx context.Context, profile *models.AdminProfile) error {
	t.store.nextID++
	profile.ID = t.store.nextID
	clone := *profile
	t.store.adminProfiles[profile.ID] = &clone
	return nil
}

func (t *fakeAccountTx) CreateStaffProfile(ctx context.Context, profile *models.StaffProfile) error {
	t.store.nextID++
	profile.ID = t.store.nextID
	clone := *profile
	t.store.staffProfiles[profile.ID] = &clone
	return nil
}

func (t *fakeAccountTx) CreateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	if _, ok := t.store.courses[profile.CourseID]; !ok {
		return apperrors.ErrProfileDependencyMissing
	}
	if _, ok := t.store.sessions[profile.SessionYearID]; !ok {
		return apperrors.ErrProfileDependencyMissing
	}
	t.store.nextID++
	profile.ID = t.store.nextID
	clone := *profile
	t.store.studentProfiles[profile.ID] = &clone
	return nil
}

func (t *fakeAccountTx) UpdateStaffProfile(ctx context.Context, profile *models.StaffProfile) error {
	for id, existing := range t.store.staffProfiles {
		if existing.UserID == profile.UserID {
			next := *profile
			next.ID = id
			t.store.staffProfiles[id] = &next
			return nil
		}
	}
	return apperrors.ErrProfileNotFound
}

func (t *fakeAccountTx) UpdateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	for id, existing := range t.store.studentProfiles {
		if existing.UserID == profile.UserID {
			next := *profile
			next.ID = id
			t.store.studentProfiles[id] = &next
			return nil
		}
	}
	return apperrors.ErrProfileNotFound
}

func (t *fakeAccountTx) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	course, ok := t.store.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (t *fakeAccountTx) GetSessionYear(ctx context.Context, id int64) (*models.SessionYear, error) {
	session, ok := t.store.sessions[id]
	if !ok {
		return nil, apperrors.ErrSessionYearNotFound
	}
	return session, nil
}

func newTestAccountService(store *fakeAccountStore) *AccountService {
	return NewAccountService(store, store, store, zerolog.Nop())
}

func newIdentity(role models.Role) *models.Identity {
	return &models.Identity{
		Username:  "jdoe",
		Email:     "jdoe@school.edu",
		Password:  "plaintext-pw",
		FirstName: "John",
		LastName:  "Doe",
		Role:      role,
	}
}

func TestCreateIdentityAdminCascade(t *testing.T) {
	store := newFakeAccountStore()
	store.seedDefaults()
	svc := newTestAccountService(store)

	created, err := svc.CreateIdentity(context.Background(), newIdentity(models.RoleAdmin), ProfileOptions{})
	require.NoError(t, err)

	assert.Len(t, store.adminProfiles, 1)
	assert.Empty(t, store.staffProfiles)
	assert.Empty(t, store.studentProfiles)
	for _, profile := range store.adminProfiles {
		assert.Equal(t, created.ID, profile.UserID)
	}

	// Password stored hashed, never plaintext.
	assert.NotEqual(t, "plaintext-pw", store.identities[created.ID].Password)
}

func TestCreateIdentityStaffCascade(t *testing.T) {
	store := newFakeAccountStore()
	store.seedDefaults()
	svc := newTestAccountService(store)

	created, err := svc.CreateIdentity(context.Background(), newIdentity(models.RoleStaff),
		ProfileOptions{Address: "12 North Street"})
	require.NoError(t, err)

	require.Len(t, store.staffProfiles, 1)
	for _, profile := range store.staffProfiles {
		assert.Equal(t, created.ID, profile.UserID)
		assert.Equal(t, "12 North Street", profile.Address)
	}
	assert.Empty(t, store.adminProfiles)
	assert.Empty(t, store.studentProfiles)
}

func TestCreateIdentityStudentCascadeDefaults(t *testing.T) {
	store := newFakeAccountStore()
	store.seedDefaults()
	svc := newTestAccountService(store)

	created, err := svc.CreateIdentity(context.Background(), newIdentity(models.RoleStudent), ProfileOptions{})
	require.NoError(t, err)

	require.Len(t, store.studentProfiles, 1)
	for _, profile := range store.studentProfiles {
		assert.Equal(t, created.ID, profile.UserID)
		assert.Equal(t, DefaultCourseID, profile.CourseID)
		assert.Equal(t, DefaultSessionYearID, profile.SessionYearID)
		assert.Equal(t, "", profile.Address)
		assert.Equal(t, "", profile.Gender)
		assert.Equal(t, "", profile.ProfilePic)
	}
}

func TestCreateIdentityStudentAppliesChosenCourse(t *testing.T) {
	store := newFakeAccountStore()
	store.seedDefaults()
	store.courses[2] = &models.Course{ID: 2, Name: "Physics"}
	svc := newTestAccountService(store)

	_, err := svc.CreateIdentity(context.Background(), newIdentity(models.RoleStudent),
		ProfileOptions{CourseID: 2, Gender: "Female"})
	require.NoError(t, err)

	require.Len(t, store.studentProfiles, 1)
	for _, profile := range store.studentProfiles {
		assert.Equal(t, int64(2), profile.CourseID)
		assert.Equal(t, DefaultSessionYearID, profile.SessionYearID)
		assert.Equal(t, "Female", profile.Gender)
	}
}

func TestCreateIdentityStudentMissingDefaultsRollsBack(t *testing.T) {
	tests := []struct {
		name string
		seed func(store *fakeAccountStore)
	}{
		{"no default course", func(store *fakeAccountStore) {
			store.sessions[1] = &models.SessionYear{ID: 1}
		}},
		{"no default session year", func(store *fakeAccountStore) {
			store.courses[1] = &models.Course{ID: 1, Name: "General"}
		}},
		{"neither default", func(store *fakeAccountStore) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeAccountStore()
			tt.seed(store)
			svc := newTestAccountService(store)

			_, err := svc.CreateIdentity(context.Background(), newIdentity(models.RoleStudent), ProfileOptions{})
			require.ErrorIs(t, err, apperrors.ErrProfileDependencyMissing)

			// Nothing persisted, not even the identity.
			assert.Empty(t, store.identities)
			assert.Empty(t, store.studentProfiles)
		})
	}
}

func TestCreateIdentityUnknownRoleRejected(t *testing.T) {
	store := newFakeAccountStore()
	store.seedDefaults()
	svc := newTestAccountService(store)

	_, err := svc.CreateIdentity(context.Background(), newIdentity(models.Role("99")), ProfileOptions{})
	require.ErrorIs(t, err, apperrors.ErrUnknownRole)
	assert.Empty(t, store.identities)
}

func TestCreateIdentityDuplicateEmailRollsBack(t *testing.T) {
	store := newFakeAccountStore()
	store.seedDefaults()
	svc := newTestAccountService(store)

	_, err := svc.CreateIdentity(context.Background(), newIdentity(models.RoleStaff), ProfileOptions{})
	require.NoError(t, err)

	dup := newIdentity(models.RoleStaff)
	dup.Username = "other"
	_, err = svc.CreateIdentity(context.Background(), dup, ProfileOptions{})
	require.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	assert.Len(t, store.identities, 1)
	assert.Len(t, store.staffProfiles, 1)
}

func TestUpdateStaffNeverRunsCascade(t *testing.T) {
	store := newFakeAccountStore()
	store.seedDefaults()
	svc := newTestAccountService(store)

	created, err := svc.CreateIdentity(context.Background(), newIdentity(models.RoleStaff), ProfileOptions{})
	require.NoError(t, err)
	require.Len(t, store.staffProfiles, 1)

	update := &models.Identity{
		Username:  "jdoe",
		Email:     "jdoe@school.edu",
		FirstName: "Johnny",
		LastName:  "Doe",
	}
	err = svc.UpdateStaff(context.Background(), created.ID, update, "New Address")
	require.NoError(t, err)

	// Still exactly one profile, updated in place.
	require.Len(t, store.staffProfiles, 1)
	for _, profile := range store.staffProfiles {
		assert.Equal(t, "New Address", profile.Address)
	}
	assert.Equal(t, "Johnny", store.identities[created.ID].FirstName)
}

func TestUpdateStaffKeepsPasswordWhenEmpty(t *testing.T) {
	store := newFakeAccountStore()
	store.seedDefaults()
	svc := newTestAccountService(store)

	created, err := svc.CreateIdentity(context.Background(), newIdentity(models.RoleStaff), ProfileOptions{})
	require.NoError(t, err)
	hashed := store.identities[created.ID].Password

	update := &models.Identity{
		Username: "jdoe", Email: "jdoe@school.edu",
		FirstName: "John", LastName: "Doe",
	}
	require.NoError(t, svc.UpdateStaff(context.Background(), created.ID, update, ""))
	assert.Equal(t, hashed, store.identities[created.ID].Password)
}

func TestUpdateStudentNeverRunsCascade(t *testing.T) {
	store := newFakeAccountStore()
	store.seedDefaults()
	store.courses[3] = &models.Course{ID: 3, Name: "History"}
	svc := newTestAccountService(store)

	created, err := svc.CreateIdentity(context.Background(), newIdentity(models.RoleStudent), ProfileOptions{})
	require.NoError(t, err)
	require.Len(t, store.studentProfiles, 1)

	update := &models.Identity{
		Username: "jdoe", Email: "jdoe@school.edu",
		FirstName: "John", LastName: "Doe",
	}
	err = svc.UpdateStudent(context.Background(), created.ID, update,
		ProfileOptions{CourseID: 3, Address: "Elsewhere", Gender: "Male"})
	require.NoError(t, err)

	require.Len(t, store.studentProfiles, 1)
	for _, profile := range store.studentProfiles {
		assert.Equal(t, int64(3), profile.CourseID)
		assert.Equal(t, "Elsewhere", profile.Address)
	}
}

func TestDeleteIdentityRemovesProfile(t *testing.T) {
	store := newFakeAccountStore()
	store.seedDefaults()
	svc := newTestAccountService(store)

	created, err := svc.CreateIdentity(context.Background(), newIdentity(models.RoleStudent), ProfileOptions{})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteIdentity(context.Background(), created.ID))
	assert.Empty(t, store.identities)
	assert.Empty(t, store.studentProfiles)
}

func TestExistenceChecks(t *testing.T) {
	store := newFakeAccountStore()
	store.seedDefaults()
	svc := newTestAccountService(store)

	_, err := svc.CreateIdentity(context.Background(), newIdentity(models.RoleAdmin), ProfileOptions{})
	require.NoError(t, err)

	taken, err := svc.EmailExists(context.Background(), "jdoe@school.edu")
	require.NoError(t, err)
	assert.True(t, taken)

	free, err := svc.EmailExists(context.Background(), "nobody@school.edu")
	require.NoError(t, err)
	assert.False(t, free)

	taken, err = svc.UsernameExists(context.Background(), "jdoe")
	require.NoError(t, err)
	assert.True(t, taken)
}
