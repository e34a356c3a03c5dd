package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/linkdash/internal/client/dashboard"
	"github.com/dmitrijs2005/linkdash/internal/client/router"
)

func (a *App) getStatus() string {
	var parts []string
	if sess, ok := a.router.Session(); ok {
		parts = append(parts, sess.Identity.Username, string(sess.Identity.Role))
	}
	if m := a.currentMode(); m != "" {
		parts = append(parts, string(m))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

func (a *App) commands() []string {
	var profile *dashboard.Profile
	if d := a.router.Dashboard(); d != nil {
		p := d.Profile()
		profile = &p
	}
	return availableCommands(a.isLoggedIn(), profile)
}

// Root restores the persisted session, starts the connectivity watcher and
// runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to linkdash (type 'help' for commands)")

	if state := a.router.Start(ctx); state != router.StateUnauthenticated {
		a.announce(state)
	} else {
		printlnFn("Not signed in. Use 'login' or 'register'.")
	}

	a.probe(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.HealthCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// announce prints the view that was mounted for state.
func (a *App) announce(state router.State) {
	sess, _ := a.router.Session()
	if state == router.StateUnknownRole {
		printlnFn(fmt.Sprintf("Signed in as %s with unrecognised role %q: nothing to show.",
			sess.Identity.Username, sess.Identity.Role))
		return
	}
	title := state.String()
	if d := a.router.Dashboard(); d != nil {
		title = d.Profile().Title
	}
	printlnFn(fmt.Sprintf("Signed in as %s. %s", sess.Identity.Username, title))
}
