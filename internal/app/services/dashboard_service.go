package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
)

// SubjectCounter serves the per-course and total subject counts.
type SubjectCounter interface {
	Count(ctx context.Context) (int64, error)
	CountByCourseID(ctx context.Context, courseID int64) (int64, error)
	CountByStaffID(ctx context.Context, staffUserID int64) (int64, error)
}

// ProfileCounter serves the enrollment counts.
type ProfileCounter interface {
	CountStudentsByCourse(ctx context.Context, courseID int64) (int64, error)
}

// AttendanceCounter serves the attendance counts.
type AttendanceCounter interface {
	CountBySubjectID(ctx context.Context, subjectID int64) (int64, error)
	CountBySubjectIDs(ctx context.Context, subjectIDs []int64) (int64, error)
}

// StaffLeaveCounter serves one staff member's leave request count.
type StaffLeaveCounter interface {
	CountStaffLeaves(ctx context.Context, staffID int64) (int64, error)
}

// CourseAggregate is one course's dashboard row.
type CourseAggregate struct {
	Course       *models.Course
	StudentCount int64
	SubjectCount int64
}

// SubjectAggregate is one subject's dashboard row.
type SubjectAggregate struct {
	Subject         *models.Subject
	StudentCount    int64
	AttendanceCount int64
}

// AdminDashboard is the admin home payload.
type AdminDashboard struct {
	StudentCount int64
	StaffCount   int64
	CourseCount  int64
	SubjectCount int64
	Courses      []CourseAggregate
	Subjects     []SubjectAggregate
}

// StaffDashboard is the staff home payload.
type StaffDashboard struct {
	StudentCount    int64
	AttendanceCount int64
	LeaveCount      int64
	SubjectCount    int64
}

// SubjectAttendance is one subject's split in a student dashboard.
type SubjectAttendance struct {
	Subject *models.Subject
	Present int64
	Absent  int64
}

// StudentDashboard is the student home payload.
type StudentDashboard struct {
	Summary  *models.AttendanceSummary
	Subjects []SubjectAttendance
}

// DashboardService aggregates the per-role home screens.
type DashboardService struct {
	identities  IdentityReader
	profiles    ProfileReader
	counters    ProfileCounter
	courses     CourseStore
	subjects    SubjectStore
	subCounts   SubjectCounter
	attendances AttendanceStore
	attCounts   AttendanceCounter
	leaves      StaffLeaveCounter
	logger      zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	identities IdentityReader,
	profiles ProfileReader,
	counters ProfileCounter,
	courses CourseStore,
	subjects SubjectStore,
	subCounts SubjectCounter,
	attendances AttendanceStore,
	attCounts AttendanceCounter,
	leaves StaffLeaveCounter,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		identities:  identities,
		profiles:    profiles,
		counters:    counters,
		courses:     courses,
		subjects:    subjects,
		subCounts:   subCounts,
		attendances: attendances,
		attCounts:   attCounts,
		leaves:      leaves,
		logger:      logger,
	}
}

// AdminHome builds the admin dashboard
func (s *DashboardService) AdminHome(ctx context.Context) (*AdminDashboard, error) {
	dash := &AdminDashboard{}

	var err error
	if dash.StudentCount, err = s.identities.CountByRole(ctx, models.RoleStudent); err != nil {
		return nil, err
	}
	if dash.StaffCount, err = s.identities.CountByRole(ctx, models.RoleStaff); err != nil {
		return nil, err
	}
	if dash.CourseCount, err = s.courses.Count(ctx); err != nil {
		return nil, err
	}
	if dash.SubjectCount, err = s.subCounts.Count(ctx); err != nil {
		return nil, err
	}

	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, course := range courses {
		students, err := s.counters.CountStudentsByCourse(ctx, course.ID)
		if err != nil {
			return nil, err
		}
		subjects, err := s.subCounts.CountByCourseID(ctx, course.ID)
		if err != nil {
			return nil, err
		}
		dash.Courses = append(dash.Courses, CourseAggregate{
			Course:       course,
			StudentCount: students,
			SubjectCount: subjects,
		})
	}

	subjects, err := s.subjects.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, subject := range subjects {
		students, err := s.counters.CountStudentsByCourse(ctx, subject.CourseID)
		if err != nil {
			return nil, err
		}
		attendances, err := s.attCounts.CountBySubjectID(ctx, subject.ID)
		if err != nil {
			return nil, err
		}
		dash.Subjects = append(dash.Subjects, SubjectAggregate{
			Subject:         subject,
			StudentCount:    students,
			AttendanceCount: attendances,
		})
	}

	return dash, nil
}

// StaffHome builds the staff dashboard for one staff user
func (s *DashboardService) StaffHome(ctx context.Context, userID int64) (*StaffDashboard, error) {
	profile, err := s.profiles.GetStaffByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	subjects, err := s.subjects.GetByStaffID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dash := &StaffDashboard{SubjectCount: int64(len(subjects))}

	// Students across the distinct courses this staff member teaches in.
	seen := make(map[int64]bool)
	subjectIDs := make([]int64, 0, len(subjects))
	for _, subject := range subjects {
		subjectIDs = append(subjectIDs, subject.ID)
		if seen[subject.CourseID] {
			continue
		}
		seen[subject.CourseID] = true
		students, err := s.counters.CountStudentsByCourse(ctx, subject.CourseID)
		if err != nil {
			return nil, err
		}
		dash.StudentCount += students
	}

	if dash.AttendanceCount, err = s.attCounts.CountBySubjectIDs(ctx, subjectIDs); err != nil {
		return nil, err
	}
	if dash.LeaveCount, err = s.leaves.CountStaffLeaves(ctx, profile.ID); err != nil {
		return nil, err
	}

	return dash, nil
}

// StudentHome builds the student dashboard for one student user
func (s *DashboardService) StudentHome(ctx context.Context, userID int64) (*StudentDashboard, error) {
	profile, err := s.profiles.GetStudentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary, err := s.attendances.SummaryForStudent(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	perSubject, err := s.attendances.SubjectSummariesForStudent(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	dash := &StudentDashboard{Summary: summary}

	subjects, err := s.subjects.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, subject := range subjects {
		if subject.CourseID != profile.CourseID {
			continue
		}
		item := SubjectAttendance{Subject: subject}
		if sum, ok := perSubject[subject.ID]; ok {
			item.Present = sum.Present
			item.Absent = sum.Absent
		}
		dash.Subjects = append(dash.Subjects, item)
	}

	return dash, nil
}
