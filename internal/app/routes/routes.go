// Package routes declares the HTTP surface and binds every route to its
// access realm.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Marcelo-Uk/student-management/internal/app/access"
	"github.com/Marcelo-Uk/student-management/internal/app/controllers"
	"github.com/Marcelo-Uk/student-management/internal/metrics"
	"github.com/Marcelo-Uk/student-management/internal/middleware"
)

// Controllers bundles the handlers wired into the router.
type Controllers struct {
	Auth    *controllers.AuthController
	Admin   *controllers.AdminController
	Staff   *controllers.StaffController
	Student *controllers.StudentController
	Profile *controllers.ProfileController
}

// registrar records each route's realm in the access table at the same
// time the handler is attached, so a route can never exist without one.
type registrar struct {
	group *gin.RouterGroup
	table *access.Table
	err   error
}

func (r *registrar) handle(method, relativePath string, realm access.Realm, handler gin.HandlerFunc) {
	full := joinPath(r.group.BasePath(), relativePath)
	if err := r.table.Register(method, full, realm); err != nil && r.err == nil {
		r.err = err
	}
	r.group.Handle(method, relativePath, handler)
}

func joinPath(base, relative string) string {
	if relative == "" || relative == "/" {
		return base
	}
	if base == "" || base == "/" {
		return relative
	}
	return base + relative
}

// SetupRouter attaches every route to the engine and returns the
// populated access table. The caller must run table.Validate over the
// engine's routes before serving.
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	session *middleware.SessionMiddleware,
	targets access.Targets,
) (*access.Table, error) {
	table := access.NewTable()

	router.Use(metrics.Instrument())
	router.Use(session.Resolve())
	router.Use(access.NewPolicy(table, targets).Enforce())

	root := &registrar{group: &router.RouterGroup, table: table}

	// Public surface
	root.handle(http.MethodGet, "/login", access.RealmPublic, ctrl.Auth.LoginPage)
	root.handle(http.MethodPost, "/login", access.RealmLogin, ctrl.Auth.Login)
	root.handle(http.MethodGet, "/logout", access.RealmLogin, ctrl.Auth.Logout)
	root.handle(http.MethodGet, "/healthz", access.RealmLogin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	root.handle(http.MethodGet, "/metrics", access.RealmLogin, metrics.Handler())

	// Admin realm
	admin := &registrar{group: router.Group("/admin"), table: table}
	admin.handle(http.MethodGet, "/home", access.RealmAdmin, ctrl.Admin.Home)

	admin.handle(http.MethodPost, "/staff", access.RealmAdmin, ctrl.Admin.CreateStaff)
	admin.handle(http.MethodGet, "/staff", access.RealmAdmin, ctrl.Admin.ListStaff)
	admin.handle(http.MethodPut, "/staff/:id", access.RealmAdmin, ctrl.Admin.UpdateStaff)
	admin.handle(http.MethodDelete, "/staff/:id", access.RealmAdmin, ctrl.Admin.DeleteStaff)

	admin.handle(http.MethodPost, "/students", access.RealmAdmin, ctrl.Admin.CreateStudent)
	admin.handle(http.MethodGet, "/students", access.RealmAdmin, ctrl.Admin.ListStudents)
	admin.handle(http.MethodPut, "/students/:id", access.RealmAdmin, ctrl.Admin.UpdateStudent)
	admin.handle(http.MethodDelete, "/students/:id", access.RealmAdmin, ctrl.Admin.DeleteStudent)

	admin.handle(http.MethodPost, "/courses", access.RealmAdmin, ctrl.Admin.CreateCourse)
	admin.handle(http.MethodGet, "/courses", access.RealmAdmin, ctrl.Admin.ListCourses)
	admin.handle(http.MethodPut, "/courses/:id", access.RealmAdmin, ctrl.Admin.UpdateCourse)
	admin.handle(http.MethodDelete, "/courses/:id", access.RealmAdmin, ctrl.Admin.DeleteCourse)

	admin.handle(http.MethodPost, "/sessions", access.RealmAdmin, ctrl.Admin.CreateSessionYear)
	admin.handle(http.MethodGet, "/sessions", access.RealmAdmin, ctrl.Admin.ListSessionYears)
	admin.handle(http.MethodPut, "/sessions/:id", access.RealmAdmin, ctrl.Admin.UpdateSessionYear)
	admin.handle(http.MethodDelete, "/sessions/:id", access.RealmAdmin, ctrl.Admin.DeleteSessionYear)

	admin.handle(http.MethodPost, "/subjects", access.RealmAdmin, ctrl.Admin.CreateSubject)
	admin.handle(http.MethodGet, "/subjects", access.RealmAdmin, ctrl.Admin.ListSubjects)
	admin.handle(http.MethodPut, "/subjects/:id", access.RealmAdmin, ctrl.Admin.UpdateSubject)
	admin.handle(http.MethodDelete, "/subjects/:id", access.RealmAdmin, ctrl.Admin.DeleteSubject)

	admin.handle(http.MethodGet, "/attendance", access.RealmAdmin, ctrl.Admin.AttendanceOverview)
	admin.handle(http.MethodPost, "/attendance/dates", access.RealmAdmin, ctrl.Admin.AttendanceDates)
	admin.handle(http.MethodPost, "/attendance/students", access.RealmAdmin, ctrl.Admin.AttendanceStudents)

	admin.handle(http.MethodGet, "/leaves/student", access.RealmAdmin, ctrl.Admin.ListStudentLeaves)
	admin.handle(http.MethodGet, "/leaves/staff", access.RealmAdmin, ctrl.Admin.ListStaffLeaves)
	admin.handle(http.MethodPost, "/leaves/student/:id/approve", access.RealmAdmin, ctrl.Admin.ApproveStudentLeave)
	admin.handle(http.MethodPost, "/leaves/student/:id/reject", access.RealmAdmin, ctrl.Admin.RejectStudentLeave)
	admin.handle(http.MethodPost, "/leaves/staff/:id/approve", access.RealmAdmin, ctrl.Admin.ApproveStaffLeave)
	admin.handle(http.MethodPost, "/leaves/staff/:id/reject", access.RealmAdmin, ctrl.Admin.RejectStaffLeave)

	admin.handle(http.MethodGet, "/feedback/student", access.RealmAdmin, ctrl.Admin.ListStudentFeedback)
	admin.handle(http.MethodGet, "/feedback/staff", access.RealmAdmin, ctrl.Admin.ListStaffFeedback)
	admin.handle(http.MethodPost, "/feedback/student/reply", access.RealmAdmin, ctrl.Admin.ReplyStudentFeedback)
	admin.handle(http.MethodPost, "/feedback/staff/reply", access.RealmAdmin, ctrl.Admin.ReplyStaffFeedback)

	admin.handle(http.MethodPost, "/check-email", access.RealmAdmin, ctrl.Admin.CheckEmail)
	admin.handle(http.MethodPost, "/check-username", access.RealmAdmin, ctrl.Admin.CheckUsername)

	admin.handle(http.MethodGet, "/profile", access.RealmAdmin, ctrl.Profile.Show)
	admin.handle(http.MethodPost, "/profile", access.RealmAdmin, ctrl.Profile.Update)

	// Staff realm
	staff := &registrar{group: router.Group("/staff"), table: table}
	staff.handle(http.MethodGet, "/home", access.RealmStaff, ctrl.Staff.Home)

	staff.handle(http.MethodGet, "/attendance", access.RealmStaff, ctrl.Staff.AttendanceOverview)
	staff.handle(http.MethodPost, "/attendance", access.RealmStaff, ctrl.Staff.TakeAttendance)
	staff.handle(http.MethodPost, "/attendance/students", access.RealmStaff, ctrl.Staff.FetchStudents)
	staff.handle(http.MethodPost, "/attendance/dates", access.RealmStaff, ctrl.Staff.AttendanceDates)
	staff.handle(http.MethodPost, "/attendance/reports", access.RealmStaff, ctrl.Staff.AttendanceReports)
	staff.handle(http.MethodPost, "/attendance/update", access.RealmStaff, ctrl.Staff.UpdateAttendance)

	staff.handle(http.MethodGet, "/leaves", access.RealmStaff, ctrl.Staff.ListLeaves)
	staff.handle(http.MethodPost, "/leaves", access.RealmStaff, ctrl.Staff.ApplyLeave)

	staff.handle(http.MethodGet, "/feedback", access.RealmStaff, ctrl.Staff.ListFeedback)
	staff.handle(http.MethodPost, "/feedback", access.RealmStaff, ctrl.Staff.SubmitFeedback)

	staff.handle(http.MethodGet, "/results", access.RealmStaff, ctrl.Staff.ListResults)
	staff.handle(http.MethodPost, "/results", access.RealmStaff, ctrl.Staff.SaveResult)

	staff.handle(http.MethodGet, "/profile", access.RealmStaff, ctrl.Profile.Show)
	staff.handle(http.MethodPost, "/profile", access.RealmStaff, ctrl.Profile.Update)

	// Student realm
	student := &registrar{group: router.Group("/student"), table: table}
	student.handle(http.MethodGet, "/home", access.RealmStudent, ctrl.Student.Home)

	student.handle(http.MethodGet, "/attendance", access.RealmStudent, ctrl.Student.AttendanceOverview)
	student.handle(http.MethodPost, "/attendance", access.RealmStudent, ctrl.Student.AttendanceHistory)

	student.handle(http.MethodGet, "/leaves", access.RealmStudent, ctrl.Student.ListLeaves)
	student.handle(http.MethodPost, "/leaves", access.RealmStudent, ctrl.Student.ApplyLeave)

	student.handle(http.MethodGet, "/feedback", access.RealmStudent, ctrl.Student.ListFeedback)
	student.handle(http.MethodPost, "/feedback", access.RealmStudent, ctrl.Student.SubmitFeedback)

	student.handle(http.MethodGet, "/results", access.RealmStudent, ctrl.Student.ListResults)

	student.handle(http.MethodGet, "/profile", access.RealmStudent, ctrl.Profile.Show)
	student.handle(http.MethodPost, "/profile", access.RealmStudent, ctrl.Profile.Update)

	for _, r := range []*registrar{root, admin, staff, student} {
		if r.err != nil {
			return nil, r.err
		}
	}

	// Every gin route must carry a realm.
	infos := make([]access.RouteInfo, 0, len(router.Routes()))
	for _, route := range router.Routes() {
		infos = append(infos, access.RouteInfo{Method: route.Method, Path: route.Path})
	}
	if err := table.Validate(infos); err != nil {
		return nil, err
	}

	return table, nil
}
