package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Marcelo-Uk/student-management/internal/app/models/dto"
	"github.com/Marcelo-Uk/student-management/internal/app/services"
	"github.com/Marcelo-Uk/student-management/internal/middleware"
)

// StaffController handles the staff surface: taking and editing
// attendance for own subjects, leave requests, feedback and results.
type StaffController struct {
	academics   *services.AcademicService
	attendances *services.AttendanceService
	leaves      *services.LeaveService
	feedbacks   *services.FeedbackService
	results     *services.ResultService
	dashboards  *services.DashboardService
	logger      zerolog.Logger
}

// NewStaffController creates a new StaffController
func NewStaffController(
	academics *services.AcademicService,
	attendances *services.AttendanceService,
	leaves *services.LeaveService,
	feedbacks *services.FeedbackService,
	results *services.ResultService,
	dashboards *services.DashboardService,
	logger zerolog.Logger,
) *StaffController {
	return &StaffController{
		academics:   academics,
		attendances: attendances,
		leaves:      leaves,
		feedbacks:   feedbacks,
		results:     results,
		dashboards:  dashboards,
		logger:      logger,
	}
}

// Home builds the staff dashboard
func (c *StaffController) Home(ctx *gin.Context) {
	userID := middleware.SessionUserID(ctx)
	dashboard, err := c.dashboards.StaffHome(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.StaffHomeResponse{
		StudentCount:    dashboard.StudentCount,
		AttendanceCount: dashboard.AttendanceCount,
		LeaveCount:      dashboard.LeaveCount,
		SubjectCount:    dashboard.SubjectCount,
	}, "Staff dashboard"))
}

// AttendanceOverview returns the caller's own subjects and the session
// years used to drive the take-attendance form
func (c *StaffController) AttendanceOverview(ctx *gin.Context) {
	userID := middleware.SessionUserID(ctx)
	subjects, err := c.academics.ListSubjectsByStaff(ctx.Request.Context(), userID)
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

// FetchStudents returns the students enrolled in a subject's course for
// a session year, before attendance is taken
func (c *StaffController) FetchStudents(ctx *gin.Context) {
	var req dto.FetchStudentsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}
	profiles, err := c.attendances.StudentsForSubject(ctx.Request.Context(), req.SubjectID, req.SessionYearID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.AttendanceStudentItem, 0, len(profiles))
	for _, profile := range profiles {
		item := dto.AttendanceStudentItem{ID: profile.ID}
		if profile.User != nil {
			item.Name = profile.User.FullName()
		}
		items = append(items, item)
	}
	ctx.JSON(http.StatusOK, items)
}

// TakeAttendance creates one attendance and its per-student reports
func (c *StaffController) TakeAttendance(ctx *gin.Context) {
	var req dto.TakeAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	marks := make([]services.StudentMarkInput, 0, len(req.Students))
	for _, mark := range req.Students {
		marks = append(marks, services.StudentMarkInput{StudentID: mark.StudentID, Present: mark.Present})
	}
	attendance, err := c.attendances.Take(ctx.Request.Context(), req.SubjectID, req.SessionYearID, req.Date, marks)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.AttendanceResponse{
		ID:            attendance.ID,
		SubjectID:     attendance.SubjectID,
		SessionYearID: attendance.SessionYearID,
		Date:          attendance.Date.Format(services.DateLayout),
	}, "Attendance saved"))
}

// AttendanceDates returns the taken-attendance dates of a subject within
// a session year, in the legacy wire shape
func (c *StaffController) AttendanceDates(ctx *gin.Context) {
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

// AttendanceReports returns the per-student marks of one attendance,
// in the legacy wire shape
func (c *StaffController) AttendanceReports(ctx *gin.Context) {
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

// UpdateAttendance edits the marks of an existing attendance
func (c *StaffController) UpdateAttendance(ctx *gin.Context) {
	var req dto.UpdateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	marks := make([]services.StudentMarkInput, 0, len(req.Students))
	for _, mark := range req.Students {
		marks = append(marks, services.StudentMarkInput{StudentID: mark.StudentID, Present: mark.Present})
	}
	if err := c.attendances.Update(ctx.Request.Context(), req.AttendanceID, marks); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Attendance updated"}, "Attendance updated"))
}

// ListLeaves lists the caller's own leave requests
func (c *StaffController) ListLeaves(ctx *gin.Context) {
	userID := middleware.SessionUserID(ctx)
	leaves, err := c.leaves.ListOwnStaffLeaves(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(staffLeaveResponses(leaves), "Leave list"))
}

// ApplyLeave files a pending leave request
func (c *StaffController) ApplyLeave(ctx *gin.Context) {
	var req dto.ApplyLeaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}
	userID := middleware.SessionUserID(ctx)
	leave, err := c.leaves.ApplyStaffLeave(ctx.Request.Context(), userID, req.Date, req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.LeaveResponse{
		ID:      leave.ID,
		Date:    leave.Date,
		Message: leave.Message,
		Status:  int(leave.Status),
	}, "Leave applied"))
}

// ListFeedback lists the caller's own feedback entries
func (c *StaffController) ListFeedback(ctx *gin.Context) {
	userID := middleware.SessionUserID(ctx)
	entries, err := c.feedbacks.ListOwnStaffFeedback(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(staffFeedbackResponses(entries), "Feedback list"))
}

// SubmitFeedback stores a feedback message
func (c *StaffController) SubmitFeedback(ctx *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}
	userID := middleware.SessionUserID(ctx)
	feedback, err := c.feedbacks.SubmitStaffFeedback(ctx.Request.Context(), userID, req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FeedbackResponse{
		ID:      feedback.ID,
		Message: feedback.Message,
		Reply:   feedback.Reply,
	}, "Feedback submitted"))
}

// ListResults lists the results recorded in the caller's subjects
func (c *StaffController) ListResults(ctx *gin.Context) {
	userID := middleware.SessionUserID(ctx)
	results, err := c.results.ListForStaff(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resultResponses(results), "Result list"))
}

// SaveResult inserts or overwrites a student's marks for a subject
func (c *StaffController) SaveResult(ctx *gin.Context) {
	var req dto.SaveResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}
	result, err := c.results.Save(ctx.Request.Context(), req.StudentID, req.SubjectID,
		req.AssignmentMarks, req.ExamMarks)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ResultResponse{
		ID:              result.ID,
		StudentID:       result.StudentID,
		SubjectID:       result.SubjectID,
		AssignmentMarks: result.AssignmentMarks,
		ExamMarks:       result.ExamMarks,
	}, "Result saved"))
}
