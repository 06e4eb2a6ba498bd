package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/app/repositories"
	"github.com/Marcelo-Uk/student-management/internal/app/services"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
)

type noopAccountStore struct{}

func (noopAccountStore) InTx(ctx context.Context, fn func(tx repositories.AccountTx) error) error {
	return nil
}

type fakeProfileReader struct{}

func (fakeProfileReader) GetStaffByUserID(ctx context.Context, userID int64) (*models.StaffProfile, error) {
	return nil, apperrors.ErrProfileNotFound
}

func (fakeProfileReader) GetStudentByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	return nil, apperrors.ErrProfileNotFound
}

func (fakeProfileReader) ListStaff(ctx context.Context) ([]*models.StaffProfile, error) {
	return nil, nil
}

func (fakeProfileReader) ListStudents(ctx context.Context, courseID, sessionYearID int64) ([]*models.StudentProfile, error) {
	return nil, nil
}

type fakeFeedbackStore struct {
	studentReplies map[int64]string
	staffReplies   map[int64]string
}

func (f *fakeFeedbackStore) CreateStudentFeedback(ctx context.Context, feedback *models.StudentFeedback) error {
	return nil
}

func (f *fakeFeedbackStore) CreateStaffFeedback(ctx context.Context, feedback *models.StaffFeedback) error {
	return nil
}

func (f *fakeFeedbackStore) ListStudentFeedback(ctx context.Context, studentID int64) ([]*models.StudentFeedback, error) {
	return nil, nil
}

func (f *fakeFeedbackStore) ListStaffFeedback(ctx context.Context, staffID int64) ([]*models.StaffFeedback, error) {
	return nil, nil
}

func (f *fakeFeedbackStore) ReplyStudentFeedback(ctx context.Context, id int64, reply string) error {
	if _, ok := f.studentReplies[id]; !ok {
		return apperrors.ErrFeedbackNotFound
	}
	f.studentReplies[id] = reply
	return nil
}

func (f *fakeFeedbackStore) ReplyStaffFeedback(ctx context.Context, id int64, reply string) error {
	if _, ok := f.staffReplies[id]; !ok {
		return apperrors.ErrFeedbackNotFound
	}
	f.staffReplies[id] = reply
	return nil
}

func setupAdminRouter(t *testing.T) (*gin.Engine, *fakeFeedbackStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	identities := &fakeIdentityReader{identities: map[string]*models.Identity{
		"taken@school.edu": {ID: 1, Username: "taken", Email: "taken@school.edu", Role: models.RoleStaff},
	}}
	accounts := services.NewAccountService(noopAccountStore{}, identities, fakeProfileReader{}, zerolog.Nop())

	feedbackStore := &fakeFeedbackStore{
		studentReplies: map[int64]string{10: ""},
		staffReplies:   map[int64]string{20: ""},
	}
	feedbacks := services.NewFeedbackService(feedbackStore, fakeProfileReader{}, zerolog.Nop())

	controller := NewAdminController(accounts, nil, nil, nil, feedbacks, nil, zerolog.Nop())

	router := gin.New()
	router.POST("/admin/check-email", controller.CheckEmail)
	router.POST("/admin/check-username", controller.CheckUsername)
	router.POST("/admin/feedback/student/reply", controller.ReplyStudentFeedback)
	router.POST("/admin/feedback/staff/reply", controller.ReplyStaffFeedback)
	return router, feedbackStore
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckEmailReturnsLiteralText(t *testing.T) {
	router, _ := setupAdminRouter(t)

	w := postForm(router, "/admin/check-email", url.Values{"email": {"taken@school.edu"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "True", w.Body.String())

	w = postForm(router, "/admin/check-email", url.Values{"email": {"free@school.edu"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "False", w.Body.String())
}

func TestCheckUsernameReturnsLiteralText(t *testing.T) {
	router, _ := setupAdminRouter(t)

	w := postForm(router, "/admin/check-username", url.Values{"username": {"taken"}})
	assert.Equal(t, "True", w.Body.String())

	w = postForm(router, "/admin/check-username", url.Values{"username": {"free"}})
	assert.Equal(t, "False", w.Body.String())
}

func TestReplyFeedbackReturnsLiteralText(t *testing.T) {
	router, store := setupAdminRouter(t)

	w := postForm(router, "/admin/feedback/student/reply",
		url.Values{"id": {"10"}, "reply": {"noted"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "True", w.Body.String())
	assert.Equal(t, "noted", store.studentReplies[10])

	// Unknown feedback id fails soft.
	w = postForm(router, "/admin/feedback/student/reply",
		url.Values{"id": {"999"}, "reply": {"noted"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "False", w.Body.String())

	w = postForm(router, "/admin/feedback/staff/reply",
		url.Values{"id": {"20"}, "reply": {"done"}})
	assert.Equal(t, "True", w.Body.String())

	// Missing reply field fails binding.
	w = postForm(router, "/admin/feedback/staff/reply", url.Values{"id": {"20"}})
	assert.Equal(t, "False", w.Body.String())
}
