// Package router resolves navigation paths against the client's route
// table and runs the auth guard before every navigation commits.
package router

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/zhiqi-health/wellness-client/internal/models"
)

// Route describes one entry of the route table. Path segments starting
// with ':' capture parameters.
type Route struct {
	Path string
	// Name identifies the view the route renders.
	Name          string
	RequiresAuth  bool
	RequiresAdmin bool
}

// Well-known redirect targets used by the guard.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// ErrNoRoute is returned when a path matches nothing in the table.
var ErrNoRoute = errors.New("router: no matching route")

// AuthState is the slice of the app store the guard consults. The
// store is the single authority; the guard never reads durable storage
// directly, so in-memory state and persisted state cannot diverge here.
type AuthState interface {
	Token() string
	UserRole() string
}

// Notifier surfaces guard warnings to the user.
type Notifier interface {
	Notify(n models.Notification) int64
}

// Navigation is the outcome of a navigation attempt.
type Navigation struct {
	// Route is the route that actually renders, after any redirect.
	Route *Route
	// Params holds captured path parameters such as :id.
	Params map[string]string
	// Redirected is true when the guard abandoned the requested path.
	// The original target is not queued for after login.
	Redirected bool
	// From is the requested path when Redirected is true.
	From string
	// Reason states why the guard redirected, empty otherwise.
	Reason string
}

// Denial reasons reported on redirected navigations.
const (
	ReasonAuthRequired  = "authentication required"
	ReasonAdminRequired = "administrator access required"
)

// Router matches paths and enforces the navigation guard.
type Router struct {
	routes []Route
	auth   AuthState
	notify Notifier
	log    *zap.Logger
}

// New builds a Router over the default route table. notify may be nil.
func New(auth AuthState, notify Notifier, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{routes: Routes(), auth: auth, notify: notify, log: log}
}

// Navigate runs the guard and resolves the path. The guard
// short-circuits: an unauthenticated hit on a protected route redirects
// to the login route before the admin check is ever consulted.
func (r *Router) Navigate(path string) (Navigation, error) {
	route, params := r.match(path)
	if route == nil {
		return Navigation{}, ErrNoRoute
	}

	if route.RequiresAuth && r.auth.Token() == "" {
		r.log.Info("navigation requires auth, redirecting to login",
			zap.String("path", path))
		return r.redirect(path, LoginPath, ReasonAuthRequired)
	}

	if route.RequiresAdmin && r.auth.UserRole() != "admin" {
		r.log.Warn("navigation requires admin role, redirecting home",
			zap.String("path", path),
			zap.String("role", r.auth.UserRole()))
		if r.notify != nil {
			r.notify.Notify(models.Notification{
				Kind:    models.NoticeWarning,
				Message: ReasonAdminRequired,
			})
		}
		return r.redirect(path, HomePath, ReasonAdminRequired)
	}

	return Navigation{Route: route, Params: params}, nil
}

// redirect resolves the guard's target route. Redirect targets are
// unguarded entries of the table, so resolution cannot loop.
func (r *Router) redirect(from, to, reason string) (Navigation, error) {
	route, params := r.match(to)
	if route == nil {
		return Navigation{}, ErrNoRoute
	}
	return Navigation{Route: route, Params: params, Redirected: true, From: from, Reason: reason}, nil
}

// match finds the route for path, preferring literal segments over
// parameter captures ("/activities/create" beats "/activities/:id").
func (r *Router) match(path string) (*Route, map[string]string) {
	segments := splitPath(path)

	var (
		best       *Route
		bestParams map[string]string
		bestScore  = -1
	)
	for i := range r.routes {
		params, score, ok := matchSegments(r.routes[i].Path, segments)
		if ok && score > bestScore {
			best = &r.routes[i]
			bestParams = params
			bestScore = score
		}
	}
	return best, bestParams
}

// matchSegments reports whether the pattern accepts the path segments,
// the captured parameters, and a score counting literal matches.
func matchSegments(pattern string, segments []string) (map[string]string, int, bool) {
	patSegments := splitPath(pattern)
	if len(patSegments) != len(segments) {
		return nil, 0, false
	}
	params := make(map[string]string)
	score := 0
	for i, pat := range patSegments {
		if strings.HasPrefix(pat, ":") {
			params[pat[1:]] = segments[i]
			continue
		}
		if pat != segments[i] {
			return nil, 0, false
		}
		score++
	}
	return params, score, true
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
