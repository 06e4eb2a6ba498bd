package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
	"github.com/Marcelo-Uk/student-management/internal/pkg/dberrors"
)

// AttendanceRepository handles database operations for attendances and
// their per-student reports
type AttendanceRepository struct {
	db DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db DB) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// WithDB returns a copy of the repository bound to another query surface
func (r *AttendanceRepository) WithDB(db DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create inserts a new attendance header
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO attendances (subject_id, session_year_id, date)
		VALUES ($1, $2, $3)
		RETURNING id`,
		attendance.SubjectID, attendance.SessionYearID, attendance.Date).Scan(&attendance.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSubjectNotFound
		}
		return fmt.Errorf("error creating attendance: %w", err)
	}
	return nil
}

// GetByID retrieves one attendance header
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	attendance := &models.Attendance{}
	err := r.db.QueryRow(ctx, `
		SELECT id, subject_id, session_year_id, date
		FROM attendances
		WHERE id = $1`,
		id).Scan(&attendance.ID, &attendance.SubjectID,
		&attendance.SessionYearID, &attendance.Date)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}
	return attendance, nil
}

// ListDates lists the attendances taken for a subject within a session year
func (r *AttendanceRepository) ListDates(ctx context.Context, subjectID, sessionYearID int64) ([]*models.Attendance, error) {
	query, args, err := psql.Select("id", "subject_id", "session_year_id", "date").
		From("attendances").
		Where(squirrel.Eq{"subject_id": subjectID, "session_year_id": sessionYearID}).
		OrderBy("date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building attendance dates query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attendances []*models.Attendance
	for rows.Next() {
		attendance := &models.Attendance{}
		if err := rows.Scan(&attendance.ID, &attendance.SubjectID,
			&attendance.SessionYearID, &attendance.Date); err != nil {
			return nil, err
		}
		attendances = append(attendances, attendance)
	}

	return attendances, rows.Err()
}

// CreateReport inserts one student's mark for an attendance
func (r *AttendanceRepository) CreateReport(ctx context.Context, report *models.AttendanceReport) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO attendance_reports (attendance_id, student_id, present)
		VALUES ($1, $2, $3)
		RETURNING id`,
		report.AttendanceID, report.StudentID, report.Present).Scan(&report.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("attendance already recorded for student")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAttendanceNotFound
		}
		return fmt.Errorf("error creating attendance report: %w", err)
	}
	return nil
}

// UpdateReport changes one student's mark on an existing attendance
func (r *AttendanceRepository) UpdateReport(ctx context.Context, attendanceID, studentID int64, present bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE attendance_reports
		SET present = $1
		WHERE attendance_id = $2 AND student_id = $3`,
		present, attendanceID, studentID)
	if err != nil {
		return fmt.Errorf("error updating attendance report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}
	return nil
}

// ListReports lists the per-student marks of one attendance, joined with
// the students' names
func (r *AttendanceRepository) ListReports(ctx context.Context, attendanceID int64) ([]*models.AttendanceReport, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ar.id, ar.attendance_id, ar.student_id, ar.present,
		       u.first_name || ' ' || u.last_name
		FROM attendance_reports ar
		JOIN student_profiles sp ON sp.id = ar.student_id
		JOIN users u ON u.id = sp.user_id
		WHERE ar.attendance_id = $1
		ORDER BY ar.id`,
		attendanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*models.AttendanceReport
	for rows.Next() {
		report := &models.AttendanceReport{}
		if err := rows.Scan(&report.ID, &report.AttendanceID, &report.StudentID,
			&report.Present, &report.StudentName); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

// ListStudentReports lists one student's dated marks for a subject within
// a date range
func (r *AttendanceRepository) ListStudentReports(ctx context.Context, studentID, subjectID int64, start, end time.Time) ([]*models.AttendanceReport, []time.Time, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ar.id, ar.attendance_id, ar.student_id, ar.present, a.date
		FROM attendance_reports ar
		JOIN attendances a ON a.id = ar.attendance_id
		WHERE ar.student_id = $1 AND a.subject_id = $2 AND a.date BETWEEN $3 AND $4
		ORDER BY a.date`,
		studentID, subjectID, start, end)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var reports []*models.AttendanceReport
	var dates []time.Time
	for rows.Next() {
		report := &models.AttendanceReport{}
		var date time.Time
		if err := rows.Scan(&report.ID, &report.AttendanceID, &report.StudentID,
			&report.Present, &date); err != nil {
			return nil, nil, err
		}
		reports = append(reports, report)
		dates = append(dates, date)
	}

	return reports, dates, rows.Err()
}

// SummaryForStudent aggregates one student's marks across all subjects
func (r *AttendanceRepository) SummaryForStudent(ctx context.Context, studentID int64) (*models.AttendanceSummary, error) {
	summary := &models.AttendanceSummary{}
	err := r.db.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE present),
		       count(*) FILTER (WHERE NOT present)
		FROM attendance_reports
		WHERE student_id = $1`,
		studentID).Scan(&summary.Total, &summary.Present, &summary.Absent)
	if err != nil {
		return nil, fmt.Errorf("error aggregating attendance: %w", err)
	}
	return summary, nil
}

// SubjectSummariesForStudent aggregates one student's marks per subject
func (r *AttendanceRepository) SubjectSummariesForStudent(ctx context.Context, studentID int64) (map[int64]*models.AttendanceSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.subject_id,
		       count(*),
		       count(*) FILTER (WHERE ar.present),
		       count(*) FILTER (WHERE NOT ar.present)
		FROM attendance_reports ar
		JOIN attendances a ON a.id = ar.attendance_id
		WHERE ar.student_id = $1
		GROUP BY a.subject_id`,
		studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make(map[int64]*models.AttendanceSummary)
	for rows.Next() {
		var subjectID int64
		summary := &models.AttendanceSummary{}
		if err := rows.Scan(&subjectID, &summary.Total, &summary.Present, &summary.Absent); err != nil {
			return nil, err
		}
		summaries[subjectID] = summary
	}

	return summaries, rows.Err()
}

// CountBySubjectIDs returns how many attendances exist for a set of subjects
func (r *AttendanceRepository) CountBySubjectIDs(ctx context.Context, subjectIDs []int64) (int64, error) {
	if len(subjectIDs) == 0 {
		return 0, nil
	}

	query, args, err := psql.Select("count(*)").
		From("attendances").
		Where(squirrel.Eq{"subject_id": subjectIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building attendance count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting attendances: %w", err)
	}
	return count, nil
}

// CountBySubjectID returns how many attendances exist for one subject
func (r *AttendanceRepository) CountBySubjectID(ctx context.Context, subjectID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM attendances WHERE subject_id = $1`, subjectID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting attendances: %w", err)
	}
	return count, nil
}
