package repositories

import (
	"context"
	"fmt"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
	"github.com/Marcelo-Uk/student-management/internal/pkg/dberrors"
)

// SessionYearRepository handles database operations for session years
type SessionYearRepository struct {
	db DB
}

// NewSessionYearRepository creates a new session year repository
func NewSessionYearRepository(db DB) *SessionYearRepository {
	return &SessionYearRepository{
		db: db,
	}
}

// WithDB returns a copy of the repository bound to another query surface
func (r *SessionYearRepository) WithDB(db DB) *SessionYearRepository {
	return &SessionYearRepository{db: db}
}

// Create inserts a new session year
func (r *SessionYearRepository) Create(ctx context.Context, session *models.SessionYear) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO session_years (start_date, end_date) VALUES ($1, $2) RETURNING id`,
		session.StartDate, session.EndDate).Scan(&session.ID)
	if err != nil {
		return fmt.Errorf("error creating session year: %w", err)
	}
	return nil
}

// GetByID retrieves a session year by id
func (r *SessionYearRepository) GetByID(ctx context.Context, id int64) (*models.SessionYear, error) {
	session := &models.SessionYear{}
	err := r.db.QueryRow(ctx,
		`SELECT id, start_date, end_date FROM session_years WHERE id = $1`,
		id).Scan(&session.ID, &session.StartDate, &session.EndDate)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrSessionYearNotFound
		}
		return nil, fmt.Errorf("error retrieving session year: %w", err)
	}
	return session, nil
}

// GetAll retrieves all session years
func (r *SessionYearRepository) GetAll(ctx context.Context) ([]*models.SessionYear, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, start_date, end_date FROM session_years ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.SessionYear
	for rows.Next() {
		session := &models.SessionYear{}
		if err := rows.Scan(&session.ID, &session.StartDate, &session.EndDate); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

// Update changes the dates of a session year
func (r *SessionYearRepository) Update(ctx context.Context, session *models.SessionYear) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE session_years SET start_date = $1, end_date = $2 WHERE id = $3`,
		session.StartDate, session.EndDate, session.ID)
	if err != nil {
		return fmt.Errorf("error updating session year: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSessionYearNotFound
	}
	return nil
}

// Delete removes a session year
func (r *SessionYearRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM session_years WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting session year: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSessionYearNotFound
	}
	return nil
}
