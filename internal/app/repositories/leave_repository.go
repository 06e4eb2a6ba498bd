package repositories

import (
	"context"
	"fmt"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
)

// LeaveRepository handles database operations for student and staff
// leave requests
type LeaveRepository struct {
	db DB
}

// NewLeaveRepository creates a new leave repository
func NewLeaveRepository(db DB) *LeaveRepository {
	return &LeaveRepository{
		db: db,
	}
}

// CreateStudentLeave files a pending leave request for a student
func (r *LeaveRepository) CreateStudentLeave(ctx context.Context, leave *models.StudentLeave) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO leave_requests_student (student_id, leave_date, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		leave.StudentID, leave.Date, leave.Message, leave.Status).
		Scan(&leave.ID, &leave.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating student leave: %w", err)
	}
	return nil
}

// CreateStaffLeave files a pending leave request for a staff member
func (r *LeaveRepository) CreateStaffLeave(ctx context.Context, leave *models.StaffLeave) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO leave_requests_staff (staff_id, leave_date, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		leave.StaffID, leave.Date, leave.Message, leave.Status).
		Scan(&leave.ID, &leave.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating staff leave: %w", err)
	}
	return nil
}

// ListStudentLeaves lists student leave requests, all of them or one
// student's own when studentID > 0
func (r *LeaveRepository) ListStudentLeaves(ctx context.Context, studentID int64) ([]*models.StudentLeave, error) {
	query := `
		SELECT l.id, l.student_id, l.leave_date, l.message, l.status, l.created_at,
		       u.first_name || ' ' || u.last_name
		FROM leave_requests_student l
		JOIN student_profiles sp ON sp.id = l.student_id
		JOIN users u ON u.id = sp.user_id`
	args := []any{}
	if studentID > 0 {
		query += ` WHERE l.student_id = $1`
		args = append(args, studentID)
	}
	query += ` ORDER BY l.id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []*models.StudentLeave
	for rows.Next() {
		leave := &models.StudentLeave{}
		if err := rows.Scan(&leave.ID, &leave.StudentID, &leave.Date, &leave.Message,
			&leave.Status, &leave.CreatedAt, &leave.StudentName); err != nil {
			return nil, err
		}
		leaves = append(leaves, leave)
	}

	return leaves, rows.Err()
}

// ListStaffLeaves lists staff leave requests, all of them or one staff
// member's own when staffID > 0
func (r *LeaveRepository) ListStaffLeaves(ctx context.Context, staffID int64) ([]*models.StaffLeave, error) {
	query := `
		SELECT l.id, l.staff_id, l.leave_date, l.message, l.status, l.created_at,
		       u.first_name || ' ' || u.last_name
		FROM leave_requests_staff l
		JOIN staff_profiles sp ON sp.id = l.staff_id
		JOIN users u ON u.id = sp.user_id`
	args := []any{}
	if staffID > 0 {
		query += ` WHERE l.staff_id = $1`
		args = append(args, staffID)
	}
	query += ` ORDER BY l.id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []*models.StaffLeave
	for rows.Next() {
		leave := &models.StaffLeave{}
		if err := rows.Scan(&leave.ID, &leave.StaffID, &leave.Date, &leave.Message,
			&leave.Status, &leave.CreatedAt, &leave.StaffName); err != nil {
			return nil, err
		}
		leaves = append(leaves, leave)
	}

	return leaves, rows.Err()
}

// SetStudentLeaveStatus approves or rejects a student leave request
func (r *LeaveRepository) SetStudentLeaveStatus(ctx context.Context, id int64, status models.LeaveStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE leave_requests_student SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating student leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLeaveNotFound
	}
	return nil
}

// SetStaffLeaveStatus approves or rejects a staff leave request
func (r *LeaveRepository) SetStaffLeaveStatus(ctx context.Context, id int64, status models.LeaveStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE leave_requests_staff SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating staff leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLeaveNotFound
	}
	return nil
}

// CountStaffLeaves returns the number of leave requests filed by one
// staff member
func (r *LeaveRepository) CountStaffLeaves(ctx context.Context, staffID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM leave_requests_staff WHERE staff_id = $1`, staffID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting staff leaves: %w", err)
	}
	return count, nil
}
