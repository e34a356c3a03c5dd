package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/linkdash/internal/buildinfo"
	"github.com/dmitrijs2005/linkdash/internal/client/client"
	"github.com/dmitrijs2005/linkdash/internal/client/config"
	"github.com/dmitrijs2005/linkdash/internal/client/dashboard"
	"github.com/dmitrijs2005/linkdash/internal/client/models"
	"github.com/dmitrijs2005/linkdash/internal/client/router"
	"github.com/dmitrijs2005/linkdash/internal/client/services"
	"github.com/dmitrijs2005/linkdash/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// sessionRouter is the part of router.Router the REPL drives.
type sessionRouter interface {
	Start(ctx context.Context) router.State
	SignIn(ctx context.Context, sess models.Session) (router.State, error)
	SignOut(ctx context.Context) error
	Current() router.State
	Session() (models.Session, bool)
	Dashboard() *dashboard.Dashboard
}

type App struct {
	config   *config.Config
	auth     services.AuthService
	router   sessionRouter
	identify func(ctx context.Context, token string) (models.Identity, error)
	gatherer prometheus.Gatherer
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	db       *sql.DB

	mu   sync.RWMutex
	mode Mode
}

// NewApp opens the session database and wires the REST client, the session
// store and the router according to c.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	db, err := client.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.SessionDBPath, "err", err)
		return nil, err
	}

	registry := prometheus.NewRegistry()
	if err := registry.Register(buildinfo.Collector()); err != nil {
		db.Close()
		return nil, fmt.Errorf("metrics: %w", err)
	}
	metrics, err := client.NewMetrics(registry)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("metrics: %w", err)
	}

	api := client.New(c.APIBaseURL, &http.Client{Timeout: c.RequestTimeout}, metrics, logger)
	store := services.NewSessionStore(db, logger)
	auth := services.NewAuthService(func(token string) services.AuthClient { return api.WithToken(token) })

	out := io.Writer(os.Stdout)
	r := router.New(store,
		func(token string) dashboard.API { return api.WithToken(token) },
		newConsoleNotifier(out), logger)

	return &App{
		config: c,
		auth:   auth,
		router: r,
		identify: func(ctx context.Context, token string) (models.Identity, error) {
			return api.WithToken(token).Me(ctx)
		},
		gatherer: registry,
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
		out:      out,
		db:       db,
	}, nil
}

// Run starts the REPL and blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.db != nil {
			if err := a.db.Close(); err != nil {
				a.logger.Warn(ctx, "closing session database", "err", err)
			}
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.router.Current().Authenticated()
}

func (a *App) currentMode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

// StartOnlineStatusWatcher probes GET /health every interval and flips the
// connectivity mode shown in the prompt. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := a.auth.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
