package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/db"
)

// AccountTx is the write surface available inside one account transaction.
// Identity creation and its profile cascade run entirely through it, so
// either everything commits or nothing does.
type AccountTx interface {
	CreateIdentity(ctx context.Context, identity *models.Identity) error
	UpdateIdentity(ctx context.Context, identity *models.Identity) error
	DeleteIdentity(ctx context.Context, id int64) error

	CreateAdminProfile(ctx context.Context, profile *models.AdminProfile) error
	CreateStaffProfile(ctx context.Context, profile *models.StaffProfile) error
	CreateStudentProfile(ctx context.Context, profile *models.StudentProfile) error
	UpdateStaffProfile(ctx context.Context, profile *models.StaffProfile) error
	UpdateStudentProfile(ctx context.Context, profile *models.StudentProfile) error

	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	GetSessionYear(ctx context.Context, id int64) (*models.SessionYear, error)
}

// AccountStore runs account units of work inside database transactions.
type AccountStore struct {
	pg *db.PostgresDB
}

// NewAccountStore creates a new account store
func NewAccountStore(pg *db.PostgresDB) *AccountStore {
	return &AccountStore{pg: pg}
}

// InTx runs fn inside one transaction. Any error from fn rolls the whole
// unit of work back.
func (s *AccountStore) InTx(ctx context.Context, fn func(tx AccountTx) error) error {
	return s.pg.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(&accountTx{
			identities: NewIdentityRepository(tx),
			profiles:   NewProfileRepository(tx),
			courses:    NewCourseRepository(tx),
			sessions:   NewSessionYearRepository(tx),
		})
	})
}

// accountTx binds the account repositories to one open transaction.
type accountTx struct {
	identities *IdentityRepository
	profiles   *ProfileRepository
	courses    *CourseRepository
	sessions   *SessionYearRepository
}

func (t *accountTx) CreateIdentity(ctx context.Context, identity *models.Identity) error {
	return t.identities.Create(ctx, identity)
}

func (t *accountTx) UpdateIdentity(ctx context.Context, identity *models.Identity) error {
	return t.identities.Update(ctx, identity)
}

func (t *accountTx) DeleteIdentity(ctx context.Context, id int64) error {
	return t.identities.Delete(ctx, id)
}

func (t *accountTx) CreateAdminProfile(ctx context.Context, profile *models.AdminProfile) error {
	return t.profiles.CreateAdminProfile(ctx, profile)
}

func (t *accountTx) CreateStaffProfile(ctx context.Context, profile *models.StaffProfile) error {
	return t.profiles.CreateStaffProfile(ctx, profile)
}

func (t *accountTx) CreateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	return t.profiles.CreateStudentProfile(ctx, profile)
}

func (t *accountTx) UpdateStaffProfile(ctx context.Context, profile *models.StaffProfile) error {
	return t.profiles.UpdateStaffProfile(ctx, profile)
}

func (t *accountTx) UpdateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	return t.profiles.UpdateStudentProfile(ctx, profile)
}

func (t *accountTx) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return t.courses.GetByID(ctx, id)
}

func (t *accountTx) GetSessionYear(ctx context.Context, id int64) (*models.SessionYear, error) {
	return t.sessions.GetByID(ctx, id)
}
