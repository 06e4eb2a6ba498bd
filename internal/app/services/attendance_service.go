package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
)

// AttendanceStore is the attendance persistence surface.
type AttendanceStore interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	GetByID(ctx context.Context, id int64) (*models.Attendance, error)
	ListDates(ctx context.Context, subjectID, sessionYearID int64) ([]*models.Attendance, error)
	CreateReport(ctx context.Context, report *models.AttendanceReport) error
	UpdateReport(ctx context.Context, attendanceID, studentID int64, present bool) error
	ListReports(ctx context.Context, attendanceID int64) ([]*models.AttendanceReport, error)
	ListStudentReports(ctx context.Context, studentID, subjectID int64, start, end time.Time) ([]*models.AttendanceReport, []time.Time, error)
	SummaryForStudent(ctx context.Context, studentID int64) (*models.AttendanceSummary, error)
	SubjectSummariesForStudent(ctx context.Context, studentID int64) (map[int64]*models.AttendanceSummary, error)
}

// StudentMarkInput is one student's mark in a take or update request.
type StudentMarkInput struct {
	StudentID int64
	Present   bool
}

// AttendanceService manages roll calls and their per-student reports.
type AttendanceService struct {
	attendances AttendanceStore
	subjects    SubjectStore
	profiles    ProfileReader
	logger      zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(attendances AttendanceStore, subjects SubjectStore, profiles ProfileReader, logger zerolog.Logger) *AttendanceService {
	return &AttendanceService{
		attendances: attendances,
		subjects:    subjects,
		profiles:    profiles,
		logger:      logger,
	}
}

// Take records one roll call: an attendance header plus one report per
// student.
func (s *AttendanceService) Take(ctx context.Context, subjectID, sessionYearID int64, date string, marks []StudentMarkInput) (*models.Attendance, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	if len(marks) == 0 {
		return nil, apperrors.NewBadRequestError("no student marks supplied")
	}

	if _, err := s.subjects.GetByID(ctx, subjectID); err != nil {
		return nil, err
	}

	attendance := &models.Attendance{
		SubjectID:     subjectID,
		SessionYearID: sessionYearID,
		Date:          day,
	}
	if err := s.attendances.Create(ctx, attendance); err != nil {
		return nil, err
	}

	for _, mark := range marks {
		report := &models.AttendanceReport{
			AttendanceID: attendance.ID,
			StudentID:    mark.StudentID,
			Present:      mark.Present,
		}
		if err := s.attendances.CreateReport(ctx, report); err != nil {
			return nil, err
		}
	}

	s.logger.Info().
		Int64("attendanceId", attendance.ID).
		Int64("subjectId", subjectID).
		Int("students", len(marks)).
		Msg("Attendance taken")
	return attendance, nil
}

// Update overwrites the marks of an existing attendance
func (s *AttendanceService) Update(ctx context.Context, attendanceID int64, marks []StudentMarkInput) error {
	if _, err := s.attendances.GetByID(ctx, attendanceID); err != nil {
		return err
	}
	if len(marks) == 0 {
		return apperrors.NewBadRequestError("no student marks supplied")
	}

	for _, mark := range marks {
		if err := s.attendances.UpdateReport(ctx, attendanceID, mark.StudentID, mark.Present); err != nil {
			return err
		}
	}
	return nil
}

// Dates lists the attendances taken for a subject within a session year
func (s *AttendanceService) Dates(ctx context.Context, subjectID, sessionYearID int64) ([]*models.Attendance, error) {
	return s.attendances.ListDates(ctx, subjectID, sessionYearID)
}

// Reports lists the per-student marks of one attendance
func (s *AttendanceService) Reports(ctx context.Context, attendanceID int64) ([]*models.AttendanceReport, error) {
	if _, err := s.attendances.GetByID(ctx, attendanceID); err != nil {
		return nil, err
	}
	return s.attendances.ListReports(ctx, attendanceID)
}

// StudentsForSubject lists the students a roll call for the subject would
// cover: those enrolled in the subject's course for the session year.
func (s *AttendanceService) StudentsForSubject(ctx context.Context, subjectID, sessionYearID int64) ([]*models.StudentProfile, error) {
	subject, err := s.subjects.GetByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	return s.profiles.ListStudents(ctx, subject.CourseID, sessionYearID)
}

// StudentReports lists one student's own dated marks for a subject within
// a date range
func (s *AttendanceService) StudentReports(ctx context.Context, studentID, subjectID int64, startDate, endDate string) ([]*models.AttendanceReport, []time.Time, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, nil, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, nil, err
	}
	return s.attendances.ListStudentReports(ctx, studentID, subjectID, start, end)
}

// StudentSummary aggregates a student's marks overall
func (s *AttendanceService) StudentSummary(ctx context.Context, studentID int64) (*models.AttendanceSummary, error) {
	return s.attendances.SummaryForStudent(ctx, studentID)
}

// StudentSubjectSummaries aggregates a student's marks per subject
func (s *AttendanceService) StudentSubjectSummaries(ctx context.Context, studentID int64) (map[int64]*models.AttendanceSummary, error) {
	return s.attendances.SubjectSummariesForStudent(ctx, studentID)
}
