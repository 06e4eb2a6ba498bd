package access

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
)

var testTargets = Targets{
	Login:       "/login",
	AdminHome:   "/admin/home",
	StaffHome:   "/staff/home",
	StudentHome: "/student/home",
}

func TestDecideLoginRealmAlwaysAllowed(t *testing.T) {
	roles := []models.Role{models.RoleAdmin, models.RoleStaff, models.RoleStudent, models.Role("99"), models.Role("")}
	for _, role := range roles {
		for _, authed := range []bool{true, false} {
			d := Decide(authed, role, RealmLogin, testTargets)
			assert.True(t, d.Allow, "role=%s authed=%v", role, authed)
		}
	}
}

func TestDecideUnauthenticated(t *testing.T) {
	tests := []struct {
		realm      Realm
		allow      bool
		redirectTo string
	}{
		{RealmPublic, true, ""},
		{RealmAdmin, false, "/login"},
		{RealmStaff, false, "/login"},
		{RealmStudent, false, "/login"},
	}

	for _, tt := range tests {
		d := Decide(false, "", tt.realm, testTargets)
		assert.Equal(t, tt.allow, d.Allow, "realm=%s", tt.realm)
		assert.Equal(t, tt.redirectTo, d.RedirectTo, "realm=%s", tt.realm)
	}
}

func TestDecideAuthenticatedCrossProduct(t *testing.T) {
	homes := map[models.Role]string{
		models.RoleAdmin:   "/admin/home",
		models.RoleStaff:   "/staff/home",
		models.RoleStudent: "/student/home",
	}
	ownRealm := map[models.Role]Realm{
		models.RoleAdmin:   RealmAdmin,
		models.RoleStaff:   RealmStaff,
		models.RoleStudent: RealmStudent,
	}

	for role, home := range homes {
		for _, realm := range []Realm{RealmPublic, RealmAdmin, RealmStaff, RealmStudent} {
			d := Decide(true, role, realm, testTargets)
			if realm == ownRealm[role] {
				assert.True(t, d.Allow, "role=%s realm=%s", role, realm)
			} else {
				assert.False(t, d.Allow, "role=%s realm=%s", role, realm)
				assert.Equal(t, home, d.RedirectTo, "role=%s realm=%s", role, realm)
			}
		}
	}
}

func TestDecideUnknownRoleFailsClosed(t *testing.T) {
	for _, role := range []models.Role{"99", "HOD", ""} {
		for _, realm := range []Realm{RealmPublic, RealmAdmin, RealmStaff, RealmStudent} {
			d := Decide(true, role, realm, testTargets)
			assert.False(t, d.Allow, "role=%s realm=%s", role, realm)
			assert.Equal(t, "/login", d.RedirectTo, "role=%s realm=%s", role, realm)
		}
	}
}

func TestTableRegisterRejectsConflicts(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Register(http.MethodGet, "/admin/home", RealmAdmin))

	// Same realm again is idempotent.
	require.NoError(t, table.Register(http.MethodGet, "/admin/home", RealmAdmin))

	err := table.Register(http.MethodGet, "/admin/home", RealmStaff)
	assert.Error(t, err)

	err = table.Register(http.MethodGet, "/other", Realm("BOGUS"))
	assert.Error(t, err)
}

func TestTableValidate(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Register(http.MethodGet, "/login", RealmPublic))

	err := table.Validate([]RouteInfo{{Method: http.MethodGet, Path: "/login"}})
	assert.NoError(t, err)

	err = table.Validate([]RouteInfo{
		{Method: http.MethodGet, Path: "/login"},
		{Method: http.MethodGet, Path: "/admin/home"},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "/admin/home")
}

func setupGateRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	table := NewTable()
	require.NoError(t, table.Register(http.MethodGet, "/login", RealmPublic))
	require.NoError(t, table.Register(http.MethodGet, "/admin/home", RealmAdmin))
	require.NoError(t, table.Register(http.MethodGet, "/staff/home", RealmStaff))

	policy := NewPolicy(table, testTargets)

	router := gin.New()
	// Test stand-in for the session middleware: role comes from a header.
	router.Use(func(c *gin.Context) {
		if role := c.GetHeader("X-Test-Role"); role != "" {
			c.Set(ContextRole, role)
			c.Set(ContextUserID, int64(1))
		}
		c.Next()
	})
	router.Use(policy.Enforce())

	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	router.GET("/login", ok)
	router.GET("/admin/home", ok)
	router.GET("/staff/home", ok)
	return router
}

func doGet(router *gin.Engine, path, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if role != "" {
		req.Header.Set("X-Test-Role", role)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEnforceRedirectsUnauthenticatedToLogin(t *testing.T) {
	router := setupGateRouter(t)

	w := doGet(router, "/admin/home", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestEnforceAllowsOwnRealm(t *testing.T) {
	router := setupGateRouter(t)

	w := doGet(router, "/admin/home", string(models.RoleAdmin))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEnforceRedirectsWrongRealmToOwnHome(t *testing.T) {
	router := setupGateRouter(t)

	w := doGet(router, "/staff/home", string(models.RoleAdmin))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/home", w.Header().Get("Location"))

	w = doGet(router, "/login", string(models.RoleStaff))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/staff/home", w.Header().Get("Location"))
}

func TestEnforceUnknownRoleRedirectsToLogin(t *testing.T) {
	router := setupGateRouter(t)

	w := doGet(router, "/admin/home", "99")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
