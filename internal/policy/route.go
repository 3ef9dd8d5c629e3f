// Package policy implements the decision rules of the reservation
// service: which routes a session may reach, whether submitted
// credentials are well-formed, and whether a booking may proceed.
// Everything in this package is pure (no I/O, no clocks beyond the
// one injected into the booking engine), so each rule is unit-testable
// in isolation.
package policy

import (
	"strings"

	"github.com/studyspaces/classroom-reservation/internal/model"
)

// Decision is the outcome of evaluating a route request.  Either the
// route is allowed, or the client must navigate to RedirectTo instead.
type Decision struct {
	Allow      bool   `json:"allow"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

func allow() Decision             { return Decision{Allow: true} }
func redirect(to string) Decision { return Decision{RedirectTo: to} }

// SessionView is the slice of session state the route policy needs.
// Identity is nil for anonymous sessions.
type SessionView struct {
	OnboardingDone bool
	Identity       *model.User
}

// RouteTable partitions the application's named routes.  Patterns may
// contain ":param" segments which match any single path segment, e.g.
// "/detail/:id" matches "/detail/3".
type RouteTable struct {
	Onboarding      string   // first-run introduction route
	SignIn          string   // anonymous landing route
	Public          []string // reachable without an identity
	Student         []string // student-only routes
	Assigner        []string // assigner-only routes
	StudentHome     string   // default landing for students
	AssignerHome    string   // default landing for assigners
	StudentProfile  string   // redirect target of the assigner profile for students
	AssignerProfile string   // redirect target of the student profile for assigners
}

// DefaultRoutes is the route table of the mobile client.
func DefaultRoutes() RouteTable {
	return RouteTable{
		Onboarding: "/onboarding",
		SignIn:     "/signin",
		Public:     []string{"/signin", "/signup", "/forgot-password", "/onboarding"},
		Student: []string{
			"/", "/filter", "/results", "/detail/:id",
			"/confirmation", "/reservations", "/profile",
		},
		Assigner: []string{
			"/assigner-dashboard", "/allocation/:id", "/assigner-profile",
		},
		StudentHome:     "/",
		AssignerHome:    "/assigner-dashboard",
		StudentProfile:  "/profile",
		AssignerProfile: "/assigner-profile",
	}
}

// Evaluate decides whether the session may reach the requested route.
// Rules apply in priority order:
//
//  1. Until onboarding completes, everything redirects to the
//     onboarding route.
//  2. Anonymous sessions may only reach public routes; everything
//     else redirects to sign-in.
//  3. Students reach student routes (and public ones); assigner-only
//     routes redirect to the student home, except the assigner
//     profile, which redirects to the student profile.
//  4. Assigners reach assigner routes (and public ones); student-only
//     routes redirect to the assigner home, except the student
//     profile, which redirects to the assigner profile.
//  5. Anything unmatched redirects to the role's default landing.
//
// The profile cross-redirects are deliberate: switching roles on the
// profile tab should land on the equivalent screen, not the dashboard.
func (t RouteTable) Evaluate(sess SessionView, route string) Decision {
	route = normalize(route)

	if !sess.OnboardingDone && route != t.Onboarding {
		return redirect(t.Onboarding)
	}
	if sess.Identity == nil {
		if matchAny(t.Public, route) {
			return allow()
		}
		return redirect(t.SignIn)
	}

	switch sess.Identity.Role {
	case model.RoleStudent:
		if matchAny(t.Student, route) || matchAny(t.Public, route) {
			return allow()
		}
		if match(t.AssignerProfile, route) {
			return redirect(t.StudentProfile)
		}
		return redirect(t.StudentHome)
	case model.RoleAssigner:
		if matchAny(t.Assigner, route) || matchAny(t.Public, route) {
			return allow()
		}
		if match(t.StudentProfile, route) {
			return redirect(t.AssignerProfile)
		}
		return redirect(t.AssignerHome)
	}
	// Unreachable with a valid role; treat like an anonymous session.
	return redirect(t.SignIn)
}

// normalize trims a trailing slash so "/filter/" and "/filter" are the
// same route.  The root path stays "/".
func normalize(route string) string {
	if route == "" {
		return "/"
	}
	if len(route) > 1 {
		route = strings.TrimRight(route, "/")
		if route == "" {
			route = "/"
		}
	}
	return route
}

func matchAny(patterns []string, route string) bool {
	for _, p := range patterns {
		if match(p, route) {
			return true
		}
	}
	return false
}

// match compares a route against a pattern segment by segment.
// ":param" segments match any non-empty segment.
func match(pattern, route string) bool {
	if pattern == route {
		return true
	}
	ps := strings.Split(pattern, "/")
	rs := strings.Split(route, "/")
	if len(ps) != len(rs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			if rs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != rs[i] {
			return false
		}
	}
	return true
}
