package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Marcelo-Uk/student-management/internal/app/models/dto"
	"github.com/Marcelo-Uk/student-management/internal/app/services"
	"github.com/Marcelo-Uk/student-management/internal/middleware"
)

// StudentController handles the student surface: own attendance history,
// leave requests, feedback and results.
type StudentController struct {
	accounts    *services.AccountService
	academics   *services.AcademicService
	attendances *services.AttendanceService
	leaves      *services.LeaveService
	feedbacks   *services.FeedbackService
	results     *services.ResultService
	dashboards  *services.DashboardService
	logger      zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	accounts *services.AccountService,
	academics *services.AcademicService,
	attendances *services.AttendanceService,
	leaves *services.LeaveService,
	feedbacks *services.FeedbackService,
	results *services.ResultService,
	dashboards *services.DashboardService,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		accounts:    accounts,
		academics:   academics,
		attendances: attendances,
		leaves:      leaves,
		feedbacks:   feedbacks,
		results:     results,
		dashboards:  dashboards,
		logger:      logger,
	}
}

// Home builds the student dashboard
func (c *StudentController) Home(ctx *gin.Context) {
	userID := middleware.SessionUserID(ctx)
	dashboard, err := c.dashboards.StudentHome(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.StudentHomeResponse{
		Subjects: make([]dto.SubjectAttendanceItem, 0, len(dashboard.Subjects)),
	}
	if dashboard.Summary != nil {
		resp.TotalAttendance = dashboard.Summary.Total
		resp.Present = dashboard.Summary.Present
		resp.Absent = dashboard.Summary.Absent
	}
	for _, item := range dashboard.Subjects {
		resp.Subjects = append(resp.Subjects, dto.SubjectAttendanceItem{
			SubjectID:   item.Subject.ID,
			SubjectName: item.Subject.Name,
			Present:     item.Present,
			Absent:      item.Absent,
		})
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Student dashboard"))
}

// AttendanceOverview returns the subjects of the caller's course, used
// to drive the view-attendance form
func (c *StudentController) AttendanceOverview(ctx *gin.Context) {
	userID := middleware.SessionUserID(ctx)
	profile, err := c.accounts.GetStudentProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	subjects, err := c.academics.ListSubjects(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	own := make([]dto.SubjectResponse, 0)
	for _, subject := range subjects {
		if subject.CourseID == profile.CourseID {
			own = append(own, subjectResponse(subject))
		}
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"subjects": own}, "Attendance overview"))
}

// AttendanceHistory returns the caller's own marks for a subject within
// a date range
func (c *StudentController) AttendanceHistory(ctx *gin.Context) {
	var req dto.StudentAttendanceQuery
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	userID := middleware.SessionUserID(ctx)
	profile, err := c.accounts.GetStudentProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	reports, dates, err := c.attendances.StudentReports(ctx.Request.Context(),
		profile.ID, req.SubjectID, req.StartDate, req.EndDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.AttendanceReportItem, 0, len(reports))
	for i, report := range reports {
		items = append(items, dto.AttendanceReportItem{
			Date:    dates[i].Format(services.DateLayout),
			Present: report.Present,
		})
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(items, "Attendance history"))
}

// ListLeaves lists the caller's own leave requests
func (c *StudentController) ListLeaves(ctx *gin.Context) {
	userID := middleware.SessionUserID(ctx)
	leaves, err := c.leaves.ListOwnStudentLeaves(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(studentLeaveResponses(leaves), "Leave list"))
}

// ApplyLeave files a pending leave request
func (c *StudentController) ApplyLeave(ctx *gin.Context) {
	var req dto.ApplyLeaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}
	userID := middleware.SessionUserID(ctx)
	leave, err := c.leaves.ApplyStudentLeave(ctx.Request.Context(), userID, req.Date, req.Message)
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
func (c *StudentController) ListFeedback(ctx *gin.Context) {
	userID := middleware.SessionUserID(ctx)
	entries, err := c.feedbacks.ListOwnStudentFeedback(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(studentFeedbackResponses(entries), "Feedback list"))
}

// SubmitFeedback stores a feedback message
func (c *StudentController) SubmitFeedback(ctx *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}
	userID := middleware.SessionUserID(ctx)
	feedback, err := c.feedbacks.SubmitStudentFeedback(ctx.Request.Context(), userID, req.Message)
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

// ListResults lists the caller's own results
func (c *StudentController) ListResults(ctx *gin.Context) {
	userID := middleware.SessionUserID(ctx)
	results, err := c.results.ListForStudent(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resultResponses(results), "Result list"))
}
