package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/app/repositories"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
	"github.com/Marcelo-Uk/student-management/internal/pkg/auth"
	"github.com/Marcelo-Uk/student-management/internal/pkg/validation"
)

// Default rows every student profile depends on. Seeded at startup;
// student creation fails hard when they are missing.
const (
	DefaultCourseID      int64 = 1
	DefaultSessionYearID int64 = 1
)

// AccountStore runs account units of work transactionally.
type AccountStore interface {
	InTx(ctx context.Context, fn func(tx repositories.AccountTx) error) error
}

// IdentityReader serves the account reads that happen outside a transaction.
type IdentityReader interface {
	GetByID(ctx context.Context, id int64) (*models.Identity, error)
	GetByEmail(ctx context.Context, email string) (*models.Identity, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
}

// ProfileReader serves profile reads and listings.
type ProfileReader interface {
	GetStaffByUserID(ctx context.Context, userID int64) (*models.StaffProfile, error)
	GetStudentByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
	ListStaff(ctx context.Context) ([]*models.StaffProfile, error)
	ListStudents(ctx context.Context, courseID, sessionYearID int64) ([]*models.StudentProfile, error)
}

// ProfileOptions carries the role-specific fields applied when an
// identity is created.
type ProfileOptions struct {
	Address       string
	Gender        string
	ProfilePic    string
	CourseID      int64
	SessionYearID int64
}

// AccountService owns identity lifecycle and the profile cascade.
type AccountService struct {
	store      AccountStore
	identities IdentityReader
	profiles   ProfileReader
	logger     zerolog.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(store AccountStore, identities IdentityReader, profiles ProfileReader, logger zerolog.Logger) *AccountService {
	return &AccountService{
		store:      store,
		identities: identities,
		profiles:   profiles,
		logger:     logger,
	}
}

// CreateIdentity creates an identity and, in the same transaction, exactly
// one role profile. The password is hashed here; identity.Password must be
// the plaintext. On any failure nothing is persisted.
func (s *AccountService) CreateIdentity(ctx context.Context, identity *models.Identity, opts ProfileOptions) (*models.Identity, error) {
	if !identity.Role.Known() {
		s.logger.Warn().Str("role", string(identity.Role)).Msg("Rejecting identity with unknown role")
		return nil, apperrors.ErrUnknownRole
	}
	if !validation.IsValidUsername(identity.Username) {
		return nil, apperrors.NewBadRequestError("invalid username format")
	}

	hashed, err := auth.HashPassword(identity.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	identity.Password = hashed

	err = s.store.InTx(ctx, func(tx repositories.AccountTx) error {
		if err := tx.CreateIdentity(ctx, identity); err != nil {
			return err
		}
		return s.cascadeProfile(ctx, tx, identity, opts)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("userId", identity.ID).
		Str("role", string(identity.Role)).
		Msg("Identity created with role profile")
	return identity, nil
}

// cascadeProfile provisions the single role profile for a fresh identity.
// Runs only at creation time, inside the creation transaction.
func (s *AccountService) cascadeProfile(ctx context.Context, tx repositories.AccountTx, identity *models.Identity, opts ProfileOptions) error {
	switch identity.Role {
	case models.RoleAdmin:
		return tx.CreateAdminProfile(ctx, &models.AdminProfile{UserID: identity.ID})

	case models.RoleStaff:
		return tx.CreateStaffProfile(ctx, &models.StaffProfile{
			UserID:  identity.ID,
			Address: opts.Address,
		})

	case models.RoleStudent:
		// The defaults must exist before any student can. Their absence is
		// a deployment fault and aborts the whole creation.
		if _, err := tx.GetCourse(ctx, DefaultCourseID); err != nil {
			if errors.Is(err, apperrors.ErrCourseNotFound) {
				return apperrors.ErrProfileDependencyMissing
			}
			return err
		}
		if _, err := tx.GetSessionYear(ctx, DefaultSessionYearID); err != nil {
			if errors.Is(err, apperrors.ErrSessionYearNotFound) {
				return apperrors.ErrProfileDependencyMissing
			}
			return err
		}

		profile := &models.StudentProfile{
			UserID:        identity.ID,
			CourseID:      DefaultCourseID,
			SessionYearID: DefaultSessionYearID,
			Address:       opts.Address,
			Gender:        opts.Gender,
			ProfilePic:    opts.ProfilePic,
		}
		if err := tx.CreateStudentProfile(ctx, profile); err != nil {
			return err
		}

		// Apply the chosen course and session, still inside the creation
		// transaction.
		changed := false
		if opts.CourseID > 0 && opts.CourseID != profile.CourseID {
			if _, err := tx.GetCourse(ctx, opts.CourseID); err != nil {
				return err
			}
			profile.CourseID = opts.CourseID
			changed = true
		}
		if opts.SessionYearID > 0 && opts.SessionYearID != profile.SessionYearID {
			if _, err := tx.GetSessionYear(ctx, opts.SessionYearID); err != nil {
				return err
			}
			profile.SessionYearID = opts.SessionYearID
			changed = true
		}
		if changed {
			return tx.UpdateStudentProfile(ctx, profile)
		}
		return nil
	}

	return apperrors.ErrUnknownRole
}

// UpdateStaff updates a staff identity and its profile fields. The cascade
// never runs here; no profile row is ever created by an update.
func (s *AccountService) UpdateStaff(ctx context.Context, userID int64, identity *models.Identity, address string) error {
	current, err := s.identities.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if current.Role != models.RoleStaff {
		return apperrors.ErrProfileNotFound
	}

	password := current.Password
	if identity.Password != "" {
		password, err = auth.HashPassword(identity.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
	}

	return s.store.InTx(ctx, func(tx repositories.AccountTx) error {
		updated := *current
		updated.Username = identity.Username
		updated.Email = identity.Email
		updated.FirstName = identity.FirstName
		updated.LastName = identity.LastName
		updated.Password = password
		if err := tx.UpdateIdentity(ctx, &updated); err != nil {
			return err
		}
		return tx.UpdateStaffProfile(ctx, &models.StaffProfile{
			UserID:  userID,
			Address: address,
		})
	})
}

// UpdateStudent updates a student identity and its profile fields.
func (s *AccountService) UpdateStudent(ctx context.Context, userID int64, identity *models.Identity, opts ProfileOptions) error {
	current, err := s.identities.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if current.Role != models.RoleStudent {
		return apperrors.ErrProfileNotFound
	}

	profile, err := s.profiles.GetStudentByUserID(ctx, userID)
	if err != nil {
		return err
	}

	password := current.Password
	if identity.Password != "" {
		password, err = auth.HashPassword(identity.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
	}

	return s.store.InTx(ctx, func(tx repositories.AccountTx) error {
		updated := *current
		updated.Username = identity.Username
		updated.Email = identity.Email
		updated.FirstName = identity.FirstName
		updated.LastName = identity.LastName
		updated.Password = password
		if err := tx.UpdateIdentity(ctx, &updated); err != nil {
			return err
		}

		next := *profile
		if opts.CourseID > 0 {
			next.CourseID = opts.CourseID
		}
		if opts.SessionYearID > 0 {
			next.SessionYearID = opts.SessionYearID
		}
		next.Address = opts.Address
		next.Gender = opts.Gender
		if opts.ProfilePic != "" {
			next.ProfilePic = opts.ProfilePic
		}
		return tx.UpdateStudentProfile(ctx, &next)
	})
}

// UpdateOwnProfile lets a signed-in user change names, password and,
// for staff and students, address.
func (s *AccountService) UpdateOwnProfile(ctx context.Context, userID int64, firstName, lastName, password, address string) error {
	current, err := s.identities.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	hashed := current.Password
	if password != "" {
		hashed, err = auth.HashPassword(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
	}

	return s.store.InTx(ctx, func(tx repositories.AccountTx) error {
		updated := *current
		updated.FirstName = firstName
		updated.LastName = lastName
		updated.Password = hashed
		if err := tx.UpdateIdentity(ctx, &updated); err != nil {
			return err
		}

		switch current.Role {
		case models.RoleStaff:
			profile, err := s.profiles.GetStaffByUserID(ctx, userID)
			if err != nil {
				return err
			}
			profile.Address = address
			return tx.UpdateStaffProfile(ctx, profile)
		case models.RoleStudent:
			profile, err := s.profiles.GetStudentByUserID(ctx, userID)
			if err != nil {
				return err
			}
			profile.Address = address
			return tx.UpdateStudentProfile(ctx, profile)
		}
		return nil
	})
}

// DeleteIdentity removes an identity; its profile follows by cascade.
func (s *AccountService) DeleteIdentity(ctx context.Context, userID int64) error {
	return s.store.InTx(ctx, func(tx repositories.AccountTx) error {
		return tx.DeleteIdentity(ctx, userID)
	})
}

// GetIdentity loads one identity
func (s *AccountService) GetIdentity(ctx context.Context, userID int64) (*models.Identity, error) {
	return s.identities.GetByID(ctx, userID)
}

// GetStaffProfile loads the staff profile of a user
func (s *AccountService) GetStaffProfile(ctx context.Context, userID int64) (*models.StaffProfile, error) {
	return s.profiles.GetStaffByUserID(ctx, userID)
}

// GetStudentProfile loads the student profile of a user
func (s *AccountService) GetStudentProfile(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	return s.profiles.GetStudentByUserID(ctx, userID)
}

// ListStaff lists all staff profiles with identities
func (s *AccountService) ListStaff(ctx context.Context) ([]*models.StaffProfile, error) {
	return s.profiles.ListStaff(ctx)
}

// ListStudents lists student profiles, optionally filtered
func (s *AccountService) ListStudents(ctx context.Context, courseID, sessionYearID int64) ([]*models.StudentProfile, error) {
	return s.profiles.ListStudents(ctx, courseID, sessionYearID)
}

// EmailExists reports whether an email is taken
func (s *AccountService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.identities.EmailExists(ctx, email)
}

// UsernameExists reports whether a username is taken
func (s *AccountService) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.identities.UsernameExists(ctx, username)
}

// CountByRole counts identities per role
func (s *AccountService) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	return s.identities.CountByRole(ctx, role)
}
