package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
	"github.com/Marcelo-Uk/student-management/internal/pkg/dberrors"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ProfileRepository handles database operations for role profiles
type ProfileRepository struct {
	db DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db DB) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

// WithDB returns a copy of the repository bound to another query surface
func (r *ProfileRepository) WithDB(db DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// CreateAdminProfile inserts an admin profile for the user
func (r *ProfileRepository) CreateAdminProfile(ctx context.Context, profile *models.AdminProfile) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO admin_profiles (user_id) VALUES ($1) RETURNING id`,
		profile.UserID).Scan(&profile.ID)
	if err != nil {
		return fmt.Errorf("error creating admin profile: %w", err)
	}
	return nil
}

// CreateStaffProfile inserts a staff profile for the user
func (r *ProfileRepository) CreateStaffProfile(ctx context.Context, profile *models.StaffProfile) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO staff_profiles (user_id, address) VALUES ($1, $2) RETURNING id`,
		profile.UserID, profile.Address).Scan(&profile.ID)
	if err != nil {
		return fmt.Errorf("error creating staff profile: %w", err)
	}
	return nil
}

// CreateStudentProfile inserts a student profile for the user
func (r *ProfileRepository) CreateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO student_profiles (user_id, course_id, session_year_id, address, gender, profile_pic)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		profile.UserID, profile.CourseID, profile.SessionYearID,
		profile.Address, profile.Gender, profile.ProfilePic).Scan(&profile.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProfileDependencyMissing
		}
		return fmt.Errorf("error creating student profile: %w", err)
	}
	return nil
}

// GetStaffByUserID retrieves a staff profile by the owning user id
func (r *ProfileRepository) GetStaffByUserID(ctx context.Context, userID int64) (*models.StaffProfile, error) {
	profile := &models.StaffProfile{}
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, address FROM staff_profiles WHERE user_id = $1`,
		userID).Scan(&profile.ID, &profile.UserID, &profile.Address)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving staff profile: %w", err)
	}
	return profile, nil
}

// GetStudentByUserID retrieves a student profile by the owning user id
func (r *ProfileRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	profile := &models.StudentProfile{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, course_id, session_year_id, address, gender, profile_pic
		FROM student_profiles
		WHERE user_id = $1`,
		userID).Scan(&profile.ID, &profile.UserID, &profile.CourseID,
		&profile.SessionYearID, &profile.Address, &profile.Gender, &profile.ProfilePic)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}
	return profile, nil
}

// GetStudentByID retrieves a student profile by its own id
func (r *ProfileRepository) GetStudentByID(ctx context.Context, id int64) (*models.StudentProfile, error) {
	profile := &models.StudentProfile{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, course_id, session_year_id, address, gender, profile_pic
		FROM student_profiles
		WHERE id = $1`,
		id).Scan(&profile.ID, &profile.UserID, &profile.CourseID,
		&profile.SessionYearID, &profile.Address, &profile.Gender, &profile.ProfilePic)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}
	return profile, nil
}

// UpdateStaffProfile persists the mutable staff profile fields
func (r *ProfileRepository) UpdateStaffProfile(ctx context.Context, profile *models.StaffProfile) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE staff_profiles SET address = $1 WHERE user_id = $2`,
		profile.Address, profile.UserID)
	if err != nil {
		return fmt.Errorf("error updating staff profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}

// UpdateStudentProfile persists the mutable student profile fields
func (r *ProfileRepository) UpdateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE student_profiles
		SET course_id = $1, session_year_id = $2, address = $3, gender = $4, profile_pic = $5
		WHERE user_id = $6`,
		profile.CourseID, profile.SessionYearID, profile.Address,
		profile.Gender, profile.ProfilePic, profile.UserID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProfileDependencyMissing
		}
		return fmt.Errorf("error updating student profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}

// ListStaff retrieves all staff profiles joined with their identities
func (r *ProfileRepository) ListStaff(ctx context.Context) ([]*models.StaffProfile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT sp.id, sp.user_id, sp.address,
		       u.id, u.username, u.email, u.first_name, u.last_name, u.role
		FROM staff_profiles sp
		JOIN users u ON u.id = sp.user_id
		ORDER BY sp.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.StaffProfile
	for rows.Next() {
		profile := &models.StaffProfile{User: &models.Identity{}}
		if err := rows.Scan(
			&profile.ID, &profile.UserID, &profile.Address,
			&profile.User.ID, &profile.User.Username, &profile.User.Email,
			&profile.User.FirstName, &profile.User.LastName, &profile.User.Role,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}

// ListStudents retrieves student profiles joined with their identities,
// optionally filtered by course and session year.
func (r *ProfileRepository) ListStudents(ctx context.Context, courseID, sessionYearID int64) ([]*models.StudentProfile, error) {
	builder := psql.Select(
		"sp.id", "sp.user_id", "sp.course_id", "sp.session_year_id",
		"sp.address", "sp.gender", "sp.profile_pic",
		"u.id", "u.username", "u.email", "u.first_name", "u.last_name", "u.role").
		From("student_profiles sp").
		Join("users u ON u.id = sp.user_id").
		OrderBy("sp.id")

	if courseID > 0 {
		builder = builder.Where(squirrel.Eq{"sp.course_id": courseID})
	}
	if sessionYearID > 0 {
		builder = builder.Where(squirrel.Eq{"sp.session_year_id": sessionYearID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building student list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.StudentProfile
	for rows.Next() {
		profile := &models.StudentProfile{User: &models.Identity{}}
		if err := rows.Scan(
			&profile.ID, &profile.UserID, &profile.CourseID, &profile.SessionYearID,
			&profile.Address, &profile.Gender, &profile.ProfilePic,
			&profile.User.ID, &profile.User.Username, &profile.User.Email,
			&profile.User.FirstName, &profile.User.LastName, &profile.User.Role,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}

// CountStudentsByCourse returns the number of students enrolled per course
func (r *ProfileRepository) CountStudentsByCourse(ctx context.Context, courseID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM student_profiles WHERE course_id = $1`, courseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
