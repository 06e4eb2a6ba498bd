package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
	"github.com/Marcelo-Uk/student-management/internal/pkg/dberrors"
)

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db DB
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db DB) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

// Create inserts a new subject
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO subjects (name, course_id, staff_id) VALUES ($1, $2, $3) RETURNING id`,
		subject.Name, subject.CourseID, subject.StaffID).Scan(&subject.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating subject: %w", err)
	}
	return nil
}

const subjectSelect = `
	SELECT s.id, s.name, s.course_id, s.staff_id,
	       c.name, u.first_name || ' ' || u.last_name
	FROM subjects s
	JOIN courses c ON c.id = s.course_id
	JOIN users u ON u.id = s.staff_id
`

func scanSubjects(rows pgx.Rows) ([]*models.Subject, error) {
	var subjects []*models.Subject
	for rows.Next() {
		subject := &models.Subject{Course: &models.Course{}}
		var staffName string
		if err := rows.Scan(
			&subject.ID, &subject.Name, &subject.CourseID, &subject.StaffID,
			&subject.Course.Name, &staffName,
		); err != nil {
			return nil, err
		}
		subject.Course.ID = subject.CourseID
		subject.StaffName = staffName
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

// GetByID retrieves a subject with its course and staff names
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	subject := &models.Subject{Course: &models.Course{}}
	var staffName string
	err := r.db.QueryRow(ctx, subjectSelect+` WHERE s.id = $1`, id).Scan(
		&subject.ID, &subject.Name, &subject.CourseID, &subject.StaffID,
		&subject.Course.Name, &staffName)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}
	subject.Course.ID = subject.CourseID
	subject.StaffName = staffName
	return subject, nil
}

// GetAll retrieves all subjects
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, subjectSelect+` ORDER BY s.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubjects(rows)
}

// GetByStaffID retrieves the subjects taught by one staff member
func (r *SubjectRepository) GetByStaffID(ctx context.Context, staffUserID int64) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, subjectSelect+` WHERE s.staff_id = $1 ORDER BY s.id`, staffUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubjects(rows)
}

// Update persists name, course and staff of a subject
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE subjects SET name = $1, course_id = $2, staff_id = $3 WHERE id = $4`,
		subject.Name, subject.CourseID, subject.StaffID, subject.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error updating subject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}

// Delete removes a subject
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}

// Count returns the number of subjects
func (r *SubjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM subjects`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting subjects: %w", err)
	}
	return count, nil
}

// CountByStaffID returns the number of subjects taught by one staff member
func (r *SubjectRepository) CountByStaffID(ctx context.Context, staffUserID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM subjects WHERE staff_id = $1`, staffUserID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting subjects: %w", err)
	}
	return count, nil
}

// CountByCourseID returns the number of subjects belonging to one course
func (r *SubjectRepository) CountByCourseID(ctx context.Context, courseID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM subjects WHERE course_id = $1`, courseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting subjects: %w", err)
	}
	return count, nil
}
