package repositories

import (
	"context"
	"fmt"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
	"github.com/Marcelo-Uk/student-management/internal/pkg/dberrors"
)

// ResultRepository handles database operations for subject results
type ResultRepository struct {
	db DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db DB) *ResultRepository {
	return &ResultRepository{
		db: db,
	}
}

// Upsert inserts a result or, when one already exists for the
// (student, subject) pair, overwrites its marks.
func (r *ResultRepository) Upsert(ctx context.Context, result *models.Result) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO results (student_id, subject_id, assignment_marks, exam_marks)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_id, subject_id)
		DO UPDATE SET assignment_marks = EXCLUDED.assignment_marks,
		              exam_marks = EXCLUDED.exam_marks
		RETURNING id`,
		result.StudentID, result.SubjectID,
		result.AssignmentMarks, result.ExamMarks).Scan(&result.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSubjectNotFound
		}
		return fmt.Errorf("error saving result: %w", err)
	}
	return nil
}

// ListByStudent lists one student's results with subject names
func (r *ResultRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Result, error) {
	rows, err := r.db.Query(ctx, `
		SELECT res.id, res.student_id, res.subject_id, res.assignment_marks, res.exam_marks,
		       s.id, s.name, s.course_id, s.staff_id
		FROM results res
		JOIN subjects s ON s.id = res.subject_id
		WHERE res.student_id = $1
		ORDER BY res.id`,
		studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		result := &models.Result{Subject: &models.Subject{}}
		if err := rows.Scan(
			&result.ID, &result.StudentID, &result.SubjectID,
			&result.AssignmentMarks, &result.ExamMarks,
			&result.Subject.ID, &result.Subject.Name,
			&result.Subject.CourseID, &result.Subject.StaffID,
		); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// ListByStaff lists the results recorded in subjects taught by one
// staff member
func (r *ResultRepository) ListByStaff(ctx context.Context, staffUserID int64) ([]*models.Result, error) {
	rows, err := r.db.Query(ctx, `
		SELECT res.id, res.student_id, res.subject_id, res.assignment_marks, res.exam_marks,
		       s.id, s.name, s.course_id, s.staff_id
		FROM results res
		JOIN subjects s ON s.id = res.subject_id
		WHERE s.staff_id = $1
		ORDER BY res.id`,
		staffUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		result := &models.Result{Subject: &models.Subject{}}
		if err := rows.Scan(
			&result.ID, &result.StudentID, &result.SubjectID,
			&result.AssignmentMarks, &result.ExamMarks,
			&result.Subject.ID, &result.Subject.Name,
			&result.Subject.CourseID, &result.Subject.StaffID,
		); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}
