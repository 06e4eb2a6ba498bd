package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
)

// CourseStore is the course persistence surface.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// SessionYearStore is the session year persistence surface.
type SessionYearStore interface {
	Create(ctx context.Context, session *models.SessionYear) error
	GetByID(ctx context.Context, id int64) (*models.SessionYear, error)
	GetAll(ctx context.Context) ([]*models.SessionYear, error)
	Update(ctx context.Context, session *models.SessionYear) error
	Delete(ctx context.Context, id int64) error
}

// SubjectStore is the subject persistence surface.
type SubjectStore interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAll(ctx context.Context) ([]*models.Subject, error)
	GetByStaffID(ctx context.Context, staffUserID int64) ([]*models.Subject, error)
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD value
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError("invalid date, expected YYYY-MM-DD")
	}
	return t, nil
}

// AcademicService manages courses, session years and subjects.
type AcademicService struct {
	courses  CourseStore
	sessions SessionYearStore
	subjects SubjectStore
	logger   zerolog.Logger
}

// NewAcademicService creates a new AcademicService
func NewAcademicService(courses CourseStore, sessions SessionYearStore, subjects SubjectStore, logger zerolog.Logger) *AcademicService {
	return &AcademicService{
		courses:  courses,
		sessions: sessions,
		subjects: subjects,
		logger:   logger,
	}
}

// CreateCourse adds a course
func (s *AcademicService) CreateCourse(ctx context.Context, name string) (*models.Course, error) {
	course := &models.Course{Name: name}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// ListCourses lists all courses
func (s *AcademicService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses.GetAll(ctx)
}

// UpdateCourse renames a course
func (s *AcademicService) UpdateCourse(ctx context.Context, id int64, name string) (*models.Course, error) {
	course := &models.Course{ID: id, Name: name}
	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes a course
func (s *AcademicService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courses.Delete(ctx, id)
}

// CreateSessionYear adds a session year from YYYY-MM-DD bounds
func (s *AcademicService) CreateSessionYear(ctx context.Context, startDate, endDate string) (*models.SessionYear, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, apperrors.NewBadRequestError("session end date precedes start date")
	}

	session := &models.SessionYear{StartDate: start, EndDate: end}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ListSessionYears lists all session years
func (s *AcademicService) ListSessionYears(ctx context.Context) ([]*models.SessionYear, error) {
	return s.sessions.GetAll(ctx)
}

// UpdateSessionYear changes a session year's bounds
func (s *AcademicService) UpdateSessionYear(ctx context.Context, id int64, startDate, endDate string) (*models.SessionYear, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, apperrors.NewBadRequestError("session end date precedes start date")
	}

	session := &models.SessionYear{ID: id, StartDate: start, EndDate: end}
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteSessionYear removes a session year
func (s *AcademicService) DeleteSessionYear(ctx context.Context, id int64) error {
	return s.sessions.Delete(ctx, id)
}

// CreateSubject adds a subject after checking its course exists
func (s *AcademicService) CreateSubject(ctx context.Context, name string, courseID, staffID int64) (*models.Subject, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	subject := &models.Subject{Name: name, CourseID: courseID, StaffID: staffID}
	if err := s.subjects.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// GetSubject loads one subject
func (s *AcademicService) GetSubject(ctx context.Context, id int64) (*models.Subject, error) {
	return s.subjects.GetByID(ctx, id)
}

// ListSubjects lists all subjects
func (s *AcademicService) ListSubjects(ctx context.Context) ([]*models.Subject, error) {
	return s.subjects.GetAll(ctx)
}

// ListSubjectsByStaff lists the subjects one staff member teaches
func (s *AcademicService) ListSubjectsByStaff(ctx context.Context, staffUserID int64) ([]*models.Subject, error) {
	return s.subjects.GetByStaffID(ctx, staffUserID)
}

// UpdateSubject updates a subject's name, course and staff
func (s *AcademicService) UpdateSubject(ctx context.Context, id int64, name string, courseID, staffID int64) (*models.Subject, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	subject := &models.Subject{ID: id, Name: name, CourseID: courseID, StaffID: staffID}
	if err := s.subjects.Update(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// DeleteSubject removes a subject
func (s *AcademicService) DeleteSubject(ctx context.Context, id int64) error {
	return s.subjects.Delete(ctx, id)
}
