package repositories

import (
	"context"
	"fmt"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
	"github.com/Marcelo-Uk/student-management/internal/pkg/dberrors"
)

// Unique constraint names from the users table
const (
	usersEmailConstraint    = "users_email_key"
	usersUsernameConstraint = "users_username_key"
)

// IdentityRepository handles database operations for identities
type IdentityRepository struct {
	db DB
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(db DB) *IdentityRepository {
	return &IdentityRepository{
		db: db,
	}
}

// WithDB returns a copy of the repository bound to another query surface,
// typically a transaction.
func (r *IdentityRepository) WithDB(db DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

// Create inserts a new identity and fills in its id and timestamps
func (r *IdentityRepository) Create(ctx context.Context, identity *models.Identity) error {
	query := `
		INSERT INTO users (username, email, password, first_name, last_name, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		identity.Username, identity.Email, identity.Password,
		identity.FirstName, identity.LastName, identity.Role).
		Scan(&identity.ID, &identity.CreatedAt, &identity.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, usersEmailConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, usersUsernameConstraint) {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error creating identity: %w", err)
	}

	return nil
}

// GetByID retrieves an identity by id
func (r *IdentityRepository) GetByID(ctx context.Context, id int64) (*models.Identity, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByEmail retrieves an identity by email
func (r *IdentityRepository) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	return r.getOne(ctx, "email = $1", email)
}

// GetByUsername retrieves an identity by username
func (r *IdentityRepository) GetByUsername(ctx context.Context, username string) (*models.Identity, error) {
	return r.getOne(ctx, "username = $1", username)
}

func (r *IdentityRepository) getOne(ctx context.Context, where string, arg any) (*models.Identity, error) {
	query := `
		SELECT id, username, email, password, first_name, last_name, role, created_at, updated_at
		FROM users
		WHERE ` + where

	identity := &models.Identity{}
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&identity.ID, &identity.Username, &identity.Email, &identity.Password,
		&identity.FirstName, &identity.LastName, &identity.Role,
		&identity.CreatedAt, &identity.UpdatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving identity: %w", err)
	}

	return identity, nil
}

// Update persists username, email, names, role and password of an identity
func (r *IdentityRepository) Update(ctx context.Context, identity *models.Identity) error {
	query := `
		UPDATE users
		SET username = $1, email = $2, password = $3, first_name = $4, last_name = $5, updated_at = now()
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		identity.Username, identity.Email, identity.Password,
		identity.FirstName, identity.LastName, identity.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, usersEmailConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, usersUsernameConstraint) {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error updating identity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes an identity. Profile rows are removed by FK cascade.
func (r *IdentityRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting identity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// EmailExists checks whether an email is already registered
func (r *IdentityRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// UsernameExists checks whether a username is already registered
func (r *IdentityRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}
	return exists, nil
}

// CountByRole returns how many identities carry the given role
func (r *IdentityRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM users WHERE role = $1`, role).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting identities: %w", err)
	}
	return count, nil
}
