package repositories

import (
	"context"
	"fmt"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
)

// FeedbackRepository handles database operations for student and staff
// feedback messages
type FeedbackRepository struct {
	db DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db DB) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

// CreateStudentFeedback stores a new feedback message from a student
func (r *FeedbackRepository) CreateStudentFeedback(ctx context.Context, feedback *models.StudentFeedback) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO feedback_student (student_id, message, reply)
		VALUES ($1, $2, '')
		RETURNING id, created_at`,
		feedback.StudentID, feedback.Message).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating student feedback: %w", err)
	}
	feedback.Reply = ""
	return nil
}

// CreateStaffFeedback stores a new feedback message from a staff member
func (r *FeedbackRepository) CreateStaffFeedback(ctx context.Context, feedback *models.StaffFeedback) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO feedback_staff (staff_id, message, reply)
		VALUES ($1, $2, '')
		RETURNING id, created_at`,
		feedback.StaffID, feedback.Message).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating staff feedback: %w", err)
	}
	feedback.Reply = ""
	return nil
}

// ListStudentFeedback lists student feedback, all of it or one student's
// own when studentID > 0
func (r *FeedbackRepository) ListStudentFeedback(ctx context.Context, studentID int64) ([]*models.StudentFeedback, error) {
	query := `
		SELECT f.id, f.student_id, f.message, f.reply, f.created_at,
		       u.first_name || ' ' || u.last_name
		FROM feedback_student f
		JOIN student_profiles sp ON sp.id = f.student_id
		JOIN users u ON u.id = sp.user_id`
	args := []any{}
	if studentID > 0 {
		query += ` WHERE f.student_id = $1`
		args = append(args, studentID)
	}
	query += ` ORDER BY f.id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []*models.StudentFeedback
	for rows.Next() {
		feedback := &models.StudentFeedback{}
		if err := rows.Scan(&feedback.ID, &feedback.StudentID, &feedback.Message,
			&feedback.Reply, &feedback.CreatedAt, &feedback.StudentName); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, feedback)
	}

	return feedbacks, rows.Err()
}

// ListStaffFeedback lists staff feedback, all of it or one staff member's
// own when staffID > 0
func (r *FeedbackRepository) ListStaffFeedback(ctx context.Context, staffID int64) ([]*models.StaffFeedback, error) {
	query := `
		SELECT f.id, f.staff_id, f.message, f.reply, f.created_at,
		       u.first_name || ' ' || u.last_name
		FROM feedback_staff f
		JOIN staff_profiles sp ON sp.id = f.staff_id
		JOIN users u ON u.id = sp.user_id`
	args := []any{}
	if staffID > 0 {
		query += ` WHERE f.staff_id = $1`
		args = append(args, staffID)
	}
	query += ` ORDER BY f.id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []*models.StaffFeedback
	for rows.Next() {
		feedback := &models.StaffFeedback{}
		if err := rows.Scan(&feedback.ID, &feedback.StaffID, &feedback.Message,
			&feedback.Reply, &feedback.CreatedAt, &feedback.StaffName); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, feedback)
	}

	return feedbacks, rows.Err()
}

// ReplyStudentFeedback sets the administrator's reply on a student
// feedback entry
func (r *FeedbackRepository) ReplyStudentFeedback(ctx context.Context, id int64, reply string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE feedback_student SET reply = $1 WHERE id = $2`, reply, id)
	if err != nil {
		return fmt.Errorf("error replying to student feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFeedbackNotFound
	}
	return nil
}

// ReplyStaffFeedback sets the administrator's reply on a staff feedback entry
func (r *FeedbackRepository) ReplyStaffFeedback(ctx context.Context, id int64, reply string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE feedback_staff SET reply = $1 WHERE id = $2`, reply, id)
	if err != nil {
		return fmt.Errorf("error replying to staff feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFeedbackNotFound
	}
	return nil
}
