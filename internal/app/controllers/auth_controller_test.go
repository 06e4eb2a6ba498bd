package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcelo-Uk/student-management/internal/app/access"
	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/app/services"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
	"github.com/Marcelo-Uk/student-management/internal/pkg/auth"
)

const testCookieName = "portal_session"

type fakeIdentityReader struct {
	identities map[string]*models.Identity
}

func (f *fakeIdentityReader) GetByID(ctx context.Context, id int64) (*models.Identity, error) {
	for _, identity := range f.identities {
		if identity.ID == id {
			return identity, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeIdentityReader) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	identity, ok := f.identities[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return identity, nil
}

func (f *fakeIdentityReader) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.identities[email]
	return ok, nil
}

func (f *fakeIdentityReader) UsernameExists(ctx context.Context, username string) (bool, error) {
	for _, identity := range f.identities {
		if identity.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeIdentityReader) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	var count int64
	for _, identity := range f.identities {
		if identity.Role == role {
			count++
		}
	}
	return count, nil
}

func setupAuthRouter(t *testing.T, roles ...models.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	identities := &fakeIdentityReader{identities: make(map[string]*models.Identity)}
	for i, role := range roles {
		email := strings.ToLower(string(role)) + "@school.edu"
		identities.identities[email] = &models.Identity{
			ID:       int64(i + 1),
			Username: strings.ToLower(string(role)),
			Email:    email,
			Password: hashed,
			Role:     role,
		}
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "controller-test-secret",
		SessionExp:  time.Hour,
		TokenIssuer: "portal-test",
	})
	authService := services.NewAuthService(identities, jwtService, zerolog.Nop())
	controller := NewAuthController(authService, jwtService, testCookieName, access.DefaultTargets, zerolog.Nop())

	router := gin.New()
	router.GET("/login", controller.LoginPage)
	router.POST("/login", controller.Login)
	router.GET("/logout", controller.Logout)
	return router
}

func postLogin(router *gin.Engine, email, password string) *httptest.ResponseRecorder {
	form := url.Values{"email": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSetsCookieAndRedirectsPerRole(t *testing.T) {
	tests := []struct {
		role models.Role
		home string
	}{
		{models.RoleAdmin, "/admin/home"},
		{models.RoleStaff, "/staff/home"},
		{models.RoleStudent, "/student/home"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			router := setupAuthRouter(t, tt.role)
			email := strings.ToLower(string(tt.role)) + "@school.edu"

			w := postLogin(router, email, "secret123")
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tt.home, w.Header().Get("Location"))

			var sessionCookie *http.Cookie
			for _, cookie := range w.Result().Cookies() {
				if cookie.Name == testCookieName {
					sessionCookie = cookie
				}
			}
			require.NotNil(t, sessionCookie, "session cookie must be set")
			assert.NotEmpty(t, sessionCookie.Value)
			assert.True(t, sessionCookie.HttpOnly)
		})
	}
}

func TestLoginBadCredentialsRedirectsToLogin(t *testing.T) {
	router := setupAuthRouter(t, models.RoleAdmin)

	w := postLogin(router, "admin@school.edu", "wrong-password")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Empty(t, w.Result().Cookies())

	w = postLogin(router, "nobody@school.edu", "secret123")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLogoutClearsCookie(t *testing.T) {
	router := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestLoginPageDescriptor(t *testing.T) {
	router := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"action":"/login"`)
}
