package controllers

import (
	"time"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/app/models/dto"
	"github.com/Marcelo-Uk/student-management/internal/app/services"
)

func staffResponse(profile *models.StaffProfile) dto.StaffResponse {
	resp := dto.StaffResponse{
		ID:      profile.ID,
		UserID:  profile.UserID,
		Address: profile.Address,
	}
	if profile.User != nil {
		resp.Username = profile.User.Username
		resp.Email = profile.User.Email
		resp.FirstName = profile.User.FirstName
		resp.LastName = profile.User.LastName
	}
	return resp
}

func staffResponses(profiles []*models.StaffProfile) []dto.StaffResponse {
	out := make([]dto.StaffResponse, 0, len(profiles))
	for _, profile := range profiles {
		out = append(out, staffResponse(profile))
	}
	return out
}

func studentResponse(profile *models.StudentProfile) dto.StudentResponse {
	resp := dto.StudentResponse{
		ID:            profile.ID,
		UserID:        profile.UserID,
		CourseID:      profile.CourseID,
		SessionYearID: profile.SessionYearID,
		Address:       profile.Address,
		Gender:        profile.Gender,
		ProfilePic:    profile.ProfilePic,
	}
	if profile.User != nil {
		resp.Username = profile.User.Username
		resp.Email = profile.User.Email
		resp.FirstName = profile.User.FirstName
		resp.LastName = profile.User.LastName
	}
	return resp
}

func studentResponses(profiles []*models.StudentProfile) []dto.StudentResponse {
	out := make([]dto.StudentResponse, 0, len(profiles))
	for _, profile := range profiles {
		out = append(out, studentResponse(profile))
	}
	return out
}

func courseResponse(course *models.Course) dto.CourseResponse {
	return dto.CourseResponse{ID: course.ID, Name: course.Name}
}

func courseResponses(courses []*models.Course) []dto.CourseResponse {
	out := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, courseResponse(course))
	}
	return out
}

func sessionYearResponse(session *models.SessionYear) dto.SessionYearResponse {
	return dto.SessionYearResponse{
		ID:        session.ID,
		StartDate: session.StartDate.Format(services.DateLayout),
		EndDate:   session.EndDate.Format(services.DateLayout),
	}
}

func sessionYearResponses(sessions []*models.SessionYear) []dto.SessionYearResponse {
	out := make([]dto.SessionYearResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, sessionYearResponse(session))
	}
	return out
}

func subjectResponse(subject *models.Subject) dto.SubjectResponse {
	resp := dto.SubjectResponse{
		ID:        subject.ID,
		Name:      subject.Name,
		CourseID:  subject.CourseID,
		StaffID:   subject.StaffID,
		StaffName: subject.StaffName,
	}
	if subject.Course != nil {
		resp.CourseName = subject.Course.Name
	}
	return resp
}

func subjectResponses(subjects []*models.Subject) []dto.SubjectResponse {
	out := make([]dto.SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		out = append(out, subjectResponse(subject))
	}
	return out
}

func studentLeaveResponses(leaves []*models.StudentLeave) []dto.LeaveResponse {
	out := make([]dto.LeaveResponse, 0, len(leaves))
	for _, leave := range leaves {
		out = append(out, dto.LeaveResponse{
			ID:        leave.ID,
			Name:      leave.StudentName,
			Date:      leave.Date,
			Message:   leave.Message,
			Status:    int(leave.Status),
			CreatedAt: leave.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}

func staffLeaveResponses(leaves []*models.StaffLeave) []dto.LeaveResponse {
	out := make([]dto.LeaveResponse, 0, len(leaves))
	for _, leave := range leaves {
		out = append(out, dto.LeaveResponse{
			ID:        leave.ID,
			Name:      leave.StaffName,
			Date:      leave.Date,
			Message:   leave.Message,
			Status:    int(leave.Status),
			CreatedAt: leave.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}

func studentFeedbackResponses(entries []*models.StudentFeedback) []dto.FeedbackResponse {
	out := make([]dto.FeedbackResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.FeedbackResponse{
			ID:        entry.ID,
			Name:      entry.StudentName,
			Message:   entry.Message,
			Reply:     entry.Reply,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}

func staffFeedbackResponses(entries []*models.StaffFeedback) []dto.FeedbackResponse {
	out := make([]dto.FeedbackResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.FeedbackResponse{
			ID:        entry.ID,
			Name:      entry.StaffName,
			Message:   entry.Message,
			Reply:     entry.Reply,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}

func resultResponses(results []*models.Result) []dto.ResultResponse {
	out := make([]dto.ResultResponse, 0, len(results))
	for _, result := range results {
		resp := dto.ResultResponse{
			ID:              result.ID,
			StudentID:       result.StudentID,
			SubjectID:       result.SubjectID,
			AssignmentMarks: result.AssignmentMarks,
			ExamMarks:       result.ExamMarks,
		}
		if result.Subject != nil {
			resp.SubjectName = result.Subject.Name
		}
		out = append(out, resp)
	}
	return out
}

func attendanceDateItems(attendances []*models.Attendance) []dto.AttendanceDateItem {
	out := make([]dto.AttendanceDateItem, 0, len(attendances))
	for _, attendance := range attendances {
		out = append(out, dto.AttendanceDateItem{
			ID:             attendance.ID,
			AttendanceDate: attendance.Date.Format(services.DateLayout),
			SessionYearID:  attendance.SessionYearID,
		})
	}
	return out
}

func attendanceStudentItems(reports []*models.AttendanceReport) []dto.AttendanceStudentItem {
	out := make([]dto.AttendanceStudentItem, 0, len(reports))
	for _, report := range reports {
		out = append(out, dto.AttendanceStudentItem{
			ID:     report.StudentID,
			Name:   report.StudentName,
			Status: report.Present,
		})
	}
	return out
}
