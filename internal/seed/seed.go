// Package seed provisions the rows the portal cannot run without.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/app/services"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
)

// Default admin credentials, meant to be changed after first login.
const (
	defaultAdminEmail    = "admin@school.edu"
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin12345"
)

// CreateDefaultData inserts the default course and session year the
// student cascade depends on, then a bootstrap admin account if no admin
// identity exists yet. Idempotent across restarts.
func CreateDefaultData(ctx context.Context, pool *pgxpool.Pool, accounts *services.AccountService, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")

	// The cascade requires course id 1 and session year id 1 to exist.
	// Insert them with explicit ids and keep the sequences ahead.
	_, err := pool.Exec(ctx, `
		INSERT INTO courses (id, name) VALUES ($1, 'General')
		ON CONFLICT (id) DO NOTHING`, services.DefaultCourseID)
	if err != nil {
		return err
	}

	now := time.Now()
	start := time.Date(now.Year(), time.September, 1, 0, 0, 0, 0, time.UTC)
	if now.Before(start) {
		start = start.AddDate(-1, 0, 0)
	}
	end := start.AddDate(0, 10, 0)
	_, err = pool.Exec(ctx, `
		INSERT INTO session_years (id, start_date, end_date) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING`, services.DefaultSessionYearID, start, end)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		SELECT setval('courses_id_seq', GREATEST((SELECT MAX(id) FROM courses), 1))`)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		SELECT setval('session_years_id_seq', GREATEST((SELECT MAX(id) FROM session_years), 1))`)
	if err != nil {
		return err
	}

	return createDefaultAdmin(ctx, accounts, lgr)
}

func createDefaultAdmin(ctx context.Context, accounts *services.AccountService, lgr zerolog.Logger) error {
	adminCount, err := accounts.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if adminCount > 0 {
		return nil
	}

	_, err = accounts.CreateIdentity(ctx, &models.Identity{
		Username:  defaultAdminUsername,
		Email:     defaultAdminEmail,
		Password:  defaultAdminPassword,
		FirstName: "Portal",
		LastName:  "Admin",
		Role:      models.RoleAdmin,
	}, services.ProfileOptions{})
	if err != nil {
		// A concurrent instance may have won the race.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
