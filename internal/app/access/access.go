package access

import (
	"fmt"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
)

// Realm classifies a route by who may reach it.
type Realm string

const (
	// RealmLogin covers routes that are always reachable, authenticated or not
	// (login submission, logout, health, metrics).
	RealmLogin Realm = "LOGIN"
	// RealmPublic covers routes reachable only while unauthenticated (the login page).
	RealmPublic Realm = "PUBLIC"
	// RealmAdmin covers the admin area.
	RealmAdmin Realm = "ADMIN"
	// RealmStaff covers the staff area.
	RealmStaff Realm = "STAFF"
	// RealmStudent covers the student area.
	RealmStudent Realm = "STUDENT"
)

// Known reports whether the realm is one of the defined values.
func (r Realm) Known() bool {
	switch r {
	case RealmLogin, RealmPublic, RealmAdmin, RealmStaff, RealmStudent:
		return true
	}
	return false
}

// Targets holds the redirect destinations used by gate decisions.
type Targets struct {
	Login       string
	AdminHome   string
	StaffHome   string
	StudentHome string
}

// DefaultTargets matches the route layout registered in routes.SetupRoutes.
var DefaultTargets = Targets{
	Login:       "/login",
	AdminHome:   "/admin/home",
	StaffHome:   "/staff/home",
	StudentHome: "/student/home",
}

// Decision is the outcome of classifying one request.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(to string) Decision {
	return Decision{RedirectTo: to}
}

// HomeFor returns the home target for a known role.
func (t Targets) HomeFor(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return t.AdminHome
	case models.RoleStaff:
		return t.StaffHome
	case models.RoleStudent:
		return t.StudentHome
	}
	return t.Login
}

// realmFor returns the realm a known role belongs to.
func realmFor(role models.Role) Realm {
	switch role {
	case models.RoleAdmin:
		return RealmAdmin
	case models.RoleStaff:
		return RealmStaff
	case models.RoleStudent:
		return RealmStudent
	}
	return RealmPublic
}

// Decide classifies one request. It is pure and total: every combination of
// authentication state, role and realm produces either an allow or a redirect,
// never an error. Unknown roles fall through to the login redirect.
func Decide(authenticated bool, role models.Role, realm Realm, targets Targets) Decision {
	// Login submission and logout are reachable regardless of state.
	if realm == RealmLogin {
		return allow()
	}

	if !authenticated {
		if realm == RealmPublic {
			return allow()
		}
		return redirect(targets.Login)
	}

	// Fail closed on roles the gate does not recognize.
	if !role.Known() {
		return redirect(targets.Login)
	}

	if realm == realmFor(role) {
		return allow()
	}

	// Authenticated users never see the login page or another role's area;
	// they are sent to their own home.
	return redirect(targets.HomeFor(role))
}

// Table maps route patterns (METHOD + full path) to realms. Realms are attached
// where routes are registered, never inferred from path naming.
type Table struct {
	entries map[string]Realm
}

// NewTable creates an empty route table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Realm)}
}

func key(method, path string) string {
	return method + " " + path
}

// Register records the realm for a route pattern. Registering the same route
// twice with different realms is a programming error.
func (t *Table) Register(method, path string, realm Realm) error {
	k := key(method, path)
	if existing, ok := t.entries[k]; ok && existing != realm {
		return fmt.Errorf("route %s already registered with realm %s", k, existing)
	}
	if !realm.Known() {
		return fmt.Errorf("route %s registered with unknown realm %q", k, realm)
	}
	t.entries[k] = realm
	return nil
}

// Lookup returns the realm of a registered route.
func (t *Table) Lookup(method, path string) (Realm, bool) {
	realm, ok := t.entries[key(method, path)]
	return realm, ok
}

// RouteInfo identifies one registered route for validation.
type RouteInfo struct {
	Method string
	Path   string
}

// Validate checks that every route the router exposes has a realm entry.
// Run at startup; a gap here means a handler would be unreachable or,
// worse, unguarded.
func (t *Table) Validate(routes []RouteInfo) error {
	for _, r := range routes {
		if _, ok := t.entries[key(r.Method, r.Path)]; !ok {
			return fmt.Errorf("route %s %s has no realm entry", r.Method, r.Path)
		}
	}
	return nil
}
