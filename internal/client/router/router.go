// Package router decides which dashboard is mounted for the current session.
package router

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/linkdash/internal/client/dashboard"
	"github.com/dmitrijs2005/linkdash/internal/client/models"
	"github.com/dmitrijs2005/linkdash/internal/logging"
)

// Store persists the session across restarts.
type Store interface {
	Save(ctx context.Context, identity models.Identity, token string) error
	Load(ctx context.Context) (models.Session, bool)
	Clear(ctx context.Context) error
}

// Binder returns an API client authenticated with token.
type Binder func(token string) dashboard.API

// Router is the session state machine. It cycles between
// StateUnauthenticated and one authenticated state for the life of the
// process and owns the mounted dashboard.
type Router struct {
	store  Store
	bind   Binder
	notify dashboard.Notifier
	logger logging.Logger

	mu        sync.RWMutex
	started   bool
	state     State
	session   models.Session
	dashboard *dashboard.Dashboard
}

func New(store Store, bind Binder, notify dashboard.Notifier, logger logging.Logger) *Router {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Router{store: store, bind: bind, notify: notify, logger: logger}
}

// Start consults the store once. A persisted session mounts its dashboard;
// otherwise the router stays unauthenticated. Later calls return the current
// state without touching the store.
func (r *Router) Start(ctx context.Context) State {
	r.mu.Lock()
	if r.started {
		s := r.state
		r.mu.Unlock()
		return s
	}
	r.started = true
	r.mu.Unlock()

	sess, ok := r.store.Load(ctx)
	if !ok {
		r.logger.Debug(ctx, "no persisted session")
		return StateUnauthenticated
	}
	r.logger.Info(ctx, "session restored", "user", sess.Identity.Username, "role", sess.Identity.Role)
	return r.enter(ctx, sess)
}

// SignIn persists sess and mounts its dashboard. If the session cannot be
// saved the router ends up unauthenticated and the error is returned.
func (r *Router) SignIn(ctx context.Context, sess models.Session) (State, error) {
	if err := r.store.Save(ctx, sess.Identity, sess.Token); err != nil {
		r.logger.Error(ctx, "failed to persist session", "err", err)
		r.reset()
		return StateUnauthenticated, err
	}
	r.logger.Info(ctx, "signed in", "user", sess.Identity.Username, "role", sess.Identity.Role)
	return r.enter(ctx, sess), nil
}

// SignOut clears the store and unmounts the dashboard. The transition
// happens even if clearing fails; that error is returned.
func (r *Router) SignOut(ctx context.Context) error {
	err := r.store.Clear(ctx)
	if err != nil {
		r.logger.Error(ctx, "failed to clear session", "err", err)
	}
	r.reset()
	r.logger.Info(ctx, "signed out")
	return err
}

func (r *Router) Current() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Session returns the active session, if any.
func (r *Router) Session() (models.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.session, r.state.Authenticated()
}

// Dashboard returns the mounted dashboard or nil when unauthenticated.
func (r *Router) Dashboard() *dashboard.Dashboard {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dashboard
}

func (r *Router) enter(ctx context.Context, sess models.Session) State {
	state := StateFor(sess.Identity.Role)
	d := r.mount(state, sess)

	r.mu.Lock()
	r.started = true
	r.state = state
	r.session = sess
	r.dashboard = d
	r.mu.Unlock()

	if d != nil {
		d.Mount(ctx)
	}
	return state
}

func (r *Router) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = StateUnauthenticated
	r.session = models.Session{}
	r.dashboard = nil
}

// mount builds the dashboard for state. Unknown roles get an inert view.
func (r *Router) mount(state State, sess models.Session) *dashboard.Dashboard {
	var profile dashboard.Profile
	switch state {
	case StateUnauthenticated:
		return nil
	case StateAdmin:
		profile = dashboard.AdminProfile()
	case StateAdmin2:
		profile = dashboard.Admin2Profile()
	case StateBusiness:
		profile = dashboard.BusinessProfile()
	case StateMember:
		profile = dashboard.MemberProfile()
	case StateWorker:
		profile = dashboard.WorkerProfile()
	case StateUnknownRole:
		profile = dashboard.UnknownProfile(sess.Identity.Role)
	default:
		profile = dashboard.UnknownProfile(sess.Identity.Role)
	}
	return dashboard.New(profile, sess.Identity, r.bind(sess.Token), r.notify, r.logger)
}
