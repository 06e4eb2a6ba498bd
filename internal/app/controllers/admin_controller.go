package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/app/models/dto"
	"github.com/Marcelo-Uk/student-management/internal/app/services"
	"github.com/Marcelo-Uk/student-management/internal/middleware"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
)

// AdminController handles the administrator surface: staff and student
// management, courses, session years, subjects, attendance review,
// leave approval and feedback replies.
type AdminController struct {
	accounts    *services.AccountService
	academics   *services.AcademicService
	attendances *services.AttendanceService
	leaves      *services.LeaveService
	feedbacks   *services.FeedbackService
	dashboards  *services.DashboardService
	logger      zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(
	accounts *services.AccountService,
	academics *services.AcademicService,
	attendances *services.AttendanceService,
	leaves *services.LeaveService,
	feedbacks *services.FeedbackService,
	dashboards *services.DashboardService,
	logger zerolog.Logger,
) *AdminController {
	return &AdminController{
		accounts:    accounts,
		academics:   academics,
		attendances: attendances,
		leaves:      leaves,
		feedbacks:   feedbacks,
		dashboards:  dashboards,
		logger:      logger,
	}
}

func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid id"))
		return 0, false
	}
	return id, true
}

// Home builds the admin dashboard
func (c *AdminController) Home(ctx *gin.Context) {
	dashboard, err := c.dashboards.AdminHome(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.AdminHomeResponse{
		StudentCount: dashboard.StudentCount,
		StaffCount:   dashboard.StaffCount,
		CourseCount:  dashboard.CourseCount,
		SubjectCount: dashboard.SubjectCount,
		Courses:      make([]dto.CourseAggregate, 0, len(dashboard.Courses)),
		Subjects:     make([]dto.SubjectAggregate, 0, len(dashboard.Subjects)),
	}
	for _, agg := range dashboard.Courses {
		resp.Courses = append(resp.Courses, dto.CourseAggregate{
			CourseID:     agg.Course.ID,
			CourseName:   agg.Course.Name,
			StudentCount: agg.StudentCount,
			SubjectCount: agg.SubjectCount,
		})
	}
	for _, agg := range dashboard.Subjects {
		resp.Subjects = append(resp.Subjects, dto.SubjectAggregate{
			SubjectID:       agg.Subject.ID,
			SubjectName:     agg.Subject.Name,
			StudentCount:    agg.StudentCount,
			AttendanceCount: agg.AttendanceCount,
		})
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Admin dashboard"))
}

// CreateStaff registers a new staff identity with its profile
func (c *AdminController) CreateStaff(ctx *gin.Context) {
	var req dto.CreateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	identity := &models.Identity{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleStaff,
	}
	created, err := c.accounts.CreateIdentity(ctx.Request.Context(), identity,
		services.ProfileOptions{Address: req.Address})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	profile, err := c.accounts.GetStaffProfile(ctx.Request.Context(), created.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	profile.User = created
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(staffResponse(profile), "Staff created"))
}

// ListStaff lists every staff member
func (c *AdminController) ListStaff(ctx *gin.Context) {
	profiles, err := c.accounts.ListStaff(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(staffResponses(profiles), "Staff list"))
}

// UpdateStaff updates a staff identity and profile
func (c *AdminController) UpdateStaff(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.UpdateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	identity := &models.Identity{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := c.accounts.UpdateStaff(ctx.Request.Context(), userID, identity, req.Address); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Staff updated"}, "Staff updated"))
}

// DeleteStaff removes a staff identity and its profile
func (c *AdminController) DeleteStaff(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.accounts.DeleteIdentity(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Staff deleted"}, "Staff deleted"))
}

// CreateStudent registers a new student. The profile is provisioned with
// the default course and session year and the chosen values are applied
// in the same transaction.
func (c *AdminController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	identity := &models.Identity{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleStudent,
	}
	created, err := c.accounts.CreateIdentity(ctx.Request.Context(), identity, services.ProfileOptions{
		Address:       req.Address,
		Gender:        req.Gender,
		ProfilePic:    req.ProfilePic,
		CourseID:      req.CourseID,
		SessionYearID: req.SessionYearID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	profile, err := c.accounts.GetStudentProfile(ctx.Request.Context(), created.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	profile.User = created
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(studentResponse(profile), "Student created"))
}

// ListStudents lists students, optionally filtered by course and session year
func (c *AdminController) ListStudents(ctx *gin.Context) {
	courseID, _ := strconv.ParseInt(ctx.Query("course"), 10, 64)
	sessionYearID, _ := strconv.ParseInt(ctx.Query("session_year"), 10, 64)

	profiles, err := c.accounts.ListStudents(ctx.Request.Context(), courseID, sessionYearID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(studentResponses(profiles), "Student list"))
}

// UpdateStudent updates a student identity and profile
func (c *AdminController) UpdateStudent(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	identity := &models.Identity{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	err := c.accounts.UpdateStudent(ctx.Request.Context(), userID, identity, services.ProfileOptions{
		Address:       req.Address,
		Gender:        req.Gender,
		ProfilePic:    req.ProfilePic,
		CourseID:      req.CourseID,
		SessionYearID: req.SessionYearID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Student updated"}, "Student updated"))
}

// DeleteStudent removes a student identity and its profile
func (c *AdminController) DeleteStudent(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.accounts.DeleteIdentity(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Student deleted"}, "Student deleted"))
}

// CreateCourse adds a course
func (c *AdminController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}
	course, err := c.academics.CreateCourse(ctx.Request.Context(), req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(courseResponse(course), "Course created"))
}

// ListCourses lists every course
func (c *AdminController) ListCourses(ctx *gin.Context) {
	courses, err := c.academics.ListCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courseResponses(courses), "Course list"))
}

// UpdateCourse renames a course
func (c *AdminController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}
	course, err := c.academics.UpdateCourse(ctx.Request.Context(), id, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courseResponse(course), "Course updated"))
}

// DeleteCourse removes a course
func (c *AdminController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.academics.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Course deleted"}, "Course deleted"))
}

// CreateSessionYear adds a session year
func (c *AdminController) CreateSessionYear(ctx *gin.Context) {
	var req dto.CreateSessionYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}
	session, err := c.academics.CreateSessionYear(ctx.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(sessionYearResponse(session), "Session year created"))
}

// ListSessionYears lists every session year
func (c *AdminController) ListSessionYears(ctx *gin.Context) {
	sessions, err := c.academics.ListSessionYears(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(sessionYearResponses(sessions), "Session year list"))
}

// UpdateSessionYear updates a session year's window
func (c *AdminController) UpdateSessionYear(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.UpdateSessionYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}
	session, err := c.academics.UpdateSessionYear(ctx.Request.Context(), id, req.StartDate, req.EndDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(sessionYearResponse(session), "Session year updated"))
}

// DeleteSessionYear removes a session year
func (c *AdminController) DeleteSessionYear(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.academics.DeleteSessionYear(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Session year deleted"}, "Session year deleted"))
}

// CreateSubject adds a subject under a course, assigned to a staff identity
func (c *AdminController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}
	subject, err := c.academics.CreateSubject(ctx.Request.Context(), req.Name, req.CourseID, req.StaffID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(subjectResponse(subject), "Subject created"))
}

// ListSubjects lists every subject
func (c *AdminController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.academics.ListSubjects(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subjectResponses(subjects), "Subject list"))
}

// UpdateSubject updates a subject's name, course and staff assignment
func (c *AdminController) UpdateSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}
	subject, err := c.academics.UpdateSubject(ctx.Request.Context(), id, req.Name, req.CourseID, req.StaffID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subjectResponse(subject), "Subject updated"))
}

// DeleteSubject removes a subject
func (c *AdminController) DeleteSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.academics.DeleteSubject(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Subject deleted"}, "Subject deleted"))
}

// AttendanceOverview returns the subjects and session years used to
// drive the attendance review form
func (c *AdminController) AttendanceOverview(ctx *gin.Context) {
	subjects, err := c.academics.ListSubjects(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sessions, err := c.academics.ListSessionYears(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{
		"subjects":     subjectResponses(subjects),
		"sessionYears": sessionYearResponses(sessions),
	}, "Attendance overview"))
}

// AttendanceDates returns the taken-attendance dates of a subject within
// a session year, in the legacy wire shape
func (c *AdminController) AttendanceDates(ctx *gin.Context) {
	var req dto.AttendanceDatesRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}
	attendances, err := c.attendances.Dates(ctx.Request.Context(), req.SubjectID, req.SessionYearID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attendanceDateItems(attendances))
}

// AttendanceStudents returns the per-student marks of one attendance,
// in the legacy wire shape
func (c *AdminController) AttendanceStudents(ctx *gin.Context) {
	var req dto.AttendanceStudentsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}
	reports, err := c.attendances.Reports(ctx.Request.Context(), req.AttendanceID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attendanceStudentItems(reports))
}

// ListStudentLeaves lists every student leave request
func (c *AdminController) ListStudentLeaves(ctx *gin.Context) {
	leaves, err := c.leaves.ListStudentLeaves(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(studentLeaveResponses(leaves), "Student leave list"))
}

// ListStaffLeaves lists every staff leave request
func (c *AdminController) ListStaffLeaves(ctx *gin.Context) {
	leaves, err := c.leaves.ListStaffLeaves(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(staffLeaveResponses(leaves), "Staff leave list"))
}

// ApproveStudentLeave marks a student leave request approved
func (c *AdminController) ApproveStudentLeave(ctx *gin.Context) {
	c.setStudentLeaveStatus(ctx, models.LeaveApproved)
}

// RejectStudentLeave marks a student leave request rejected
func (c *AdminController) RejectStudentLeave(ctx *gin.Context) {
	c.setStudentLeaveStatus(ctx, models.LeaveRejected)
}

func (c *AdminController) setStudentLeaveStatus(ctx *gin.Context, status models.LeaveStatus) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.leaves.SetStudentLeaveStatus(ctx.Request.Context(), id, status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Leave updated"}, "Leave updated"))
}

// ApproveStaffLeave marks a staff leave request approved
func (c *AdminController) ApproveStaffLeave(ctx *gin.Context) {
	c.setStaffLeaveStatus(ctx, models.LeaveApproved)
}

// RejectStaffLeave marks a staff leave request rejected
func (c *AdminController) RejectStaffLeave(ctx *gin.Context) {
	c.setStaffLeaveStatus(ctx, models.LeaveRejected)
}

func (c *AdminController) setStaffLeaveStatus(ctx *gin.Context, status models.LeaveStatus) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.leaves.SetStaffLeaveStatus(ctx.Request.Context(), id, status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Leave updated"}, "Leave updated"))
}

// ListStudentFeedback lists every student feedback entry
func (c *AdminController) ListStudentFeedback(ctx *gin.Context) {
	entries, err := c.feedbacks.ListStudentFeedback(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(studentFeedbackResponses(entries), "Student feedback list"))
}

// ListStaffFeedback lists every staff feedback entry
func (c *AdminController) ListStaffFeedback(ctx *gin.Context) {
	entries, err := c.feedbacks.ListStaffFeedback(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(staffFeedbackResponses(entries), "Staff feedback list"))
}

// ReplyStudentFeedback records a reply on a student feedback entry.
// Responds with the literal text "True" or "False".
func (c *AdminController) ReplyStudentFeedback(ctx *gin.Context) {
	var req dto.FeedbackReplyRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.String(http.StatusOK, "False")
		return
	}
	if c.feedbacks.ReplyStudentFeedback(ctx.Request.Context(), req.ID, req.Reply) {
		ctx.String(http.StatusOK, "True")
		return
	}
	ctx.String(http.StatusOK, "False")
}

// ReplyStaffFeedback records a reply on a staff feedback entry.
// Responds with the literal text "True" or "False".
func (c *AdminController) ReplyStaffFeedback(ctx *gin.Context) {
	var req dto.FeedbackReplyRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.String(http.StatusOK, "False")
		return
	}
	if c.feedbacks.ReplyStaffFeedback(ctx.Request.Context(), req.ID, req.Reply) {
		ctx.String(http.StatusOK, "True")
		return
	}
	ctx.String(http.StatusOK, "False")
}

// CheckEmail reports whether an email is already taken as literal text
// "True" or "False"
func (c *AdminController) CheckEmail(ctx *gin.Context) {
	var req dto.CheckEmailRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.String(http.StatusOK, "False")
		return
	}
	taken, err := c.accounts.EmailExists(ctx.Request.Context(), req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if taken {
		ctx.String(http.StatusOK, "True")
		return
	}
	ctx.String(http.StatusOK, "False")
}

// CheckUsername reports whether a username is already taken as literal
// text "True" or "False"
func (c *AdminController) CheckUsername(ctx *gin.Context) {
	var req dto.CheckUsernameRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.String(http.StatusOK, "False")
		return
	}
	taken, err := c.accounts.UsernameExists(ctx.Request.Context(), req.Username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if taken {
		ctx.String(http.StatusOK, "True")
		return
	}
	ctx.String(http.StatusOK, "False")
}
