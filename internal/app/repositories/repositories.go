package repositories

import (
	"github.com/Marcelo-Uk/student-management/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	IdentityRepository    *IdentityRepository
	ProfileRepository     *ProfileRepository
	CourseRepository      *CourseRepository
	SessionYearRepository *SessionYearRepository
	SubjectRepository     *SubjectRepository
	AttendanceRepository  *AttendanceRepository
	LeaveRepository       *LeaveRepository
	FeedbackRepository    *FeedbackRepository
	ResultRepository      *ResultRepository
	AccountStore          *AccountStore
}

// NewRepositories initializes all repositories
func NewRepositories(pg *db.PostgresDB) *Repositories {
	pool := pg.Pool
	return &Repositories{
		IdentityRepository:    NewIdentityRepository(pool),
		ProfileRepository:     NewProfileRepository(pool),
		CourseRepository:      NewCourseRepository(pool),
		SessionYearRepository: NewSessionYearRepository(pool),
		SubjectRepository:     NewSubjectRepository(pool),
		AttendanceRepository:  NewAttendanceRepository(pool),
		LeaveRepository:       NewLeaveRepository(pool),
		FeedbackRepository:    NewFeedbackRepository(pool),
		ResultRepository:      NewResultRepository(pool),
		AccountStore:          NewAccountStore(pg),
	}
}
