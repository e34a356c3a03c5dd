package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/linkdash/internal/client/config"
	"github.com/dmitrijs2005/linkdash/internal/client/dashboard"
	"github.com/dmitrijs2005/linkdash/internal/client/models"
	"github.com/dmitrijs2005/linkdash/internal/client/router"
	"github.com/dmitrijs2005/linkdash/internal/logging"
)

// ------------ output / input seams ------------

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

// stubPasswords makes getPassword answer with pws in order, then empty.
func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if len(pws) == 0 {
			return []byte{}, nil
		}
		pw := pws[0]
		pws = pws[1:]
		return []byte(pw), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func contains(lines []string, sub string) bool {
	for _, l := range lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

// ------------ fakes ------------

type memStore struct {
	sess  models.Session
	saved bool
}

func (m *memStore) Save(_ context.Context, identity models.Identity, token string) error {
	m.sess, m.saved = models.Session{Identity: identity, Token: token}, true
	return nil
}

func (m *memStore) Load(context.Context) (models.Session, bool) { return m.sess, m.saved }

func (m *memStore) Clear(context.Context) error {
	m.sess, m.saved = models.Session{}, false
	return nil
}

type fakeAuth struct {
	loginUser string
	loginPass string
	loginSess models.Session
	loginErr  error

	regArgs []string
	regMsg  string
	regErr  error

	pwToken string
	pwOld   string
	pwNew   string
	pwMsg   string
	pwErr   error

	health  models.Health
	pingErr error
	pings   int
}

func (f *fakeAuth) Login(_ context.Context, username string, password []byte) (models.Session, error) {
	f.loginUser, f.loginPass = username, string(password)
	return f.loginSess, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, username, email string, password []byte) (string, error) {
	f.regArgs = []string{username, email, string(password)}
	return f.regMsg, f.regErr
}

func (f *fakeAuth) ChangePassword(_ context.Context, token string, oldPassword, newPassword []byte) (string, error) {
	f.pwToken, f.pwOld, f.pwNew = token, string(oldPassword), string(newPassword)
	return f.pwMsg, f.pwErr
}

func (f *fakeAuth) Ping(context.Context) (models.Health, error) {
	f.pings++
	return f.health, f.pingErr
}

// stubAPI serves fixed data and records calls.
type stubAPI struct {
	mu    sync.Mutex
	calls []string

	users     []models.Identity
	campaigns []models.Campaign
	geo       []models.GeoRow
	tasks     []models.Task
	mutateErr error

	campaignReqs []models.CampaignRequest
	statusIDs    []models.ID
	statuses     []models.Status
}

func (s *stubAPI) rec(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
}

func (s *stubAPI) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *stubAPI) Register(context.Context, models.RegisterRequest) (models.MessageResponse, error) {
	s.rec("register")
	return models.MessageResponse{}, s.mutateErr
}
func (s *stubAPI) ListUsers(context.Context) ([]models.Identity, error) {
	s.rec("users")
	return s.users, nil
}
func (s *stubAPI) ApproveUser(context.Context, models.ID) (models.MessageResponse, error) {
	s.rec("approve")
	return models.MessageResponse{}, s.mutateErr
}
func (s *stubAPI) UpdateUserRole(context.Context, models.ID, models.Role) (models.MessageResponse, error) {
	s.rec("role")
	return models.MessageResponse{}, s.mutateErr
}
func (s *stubAPI) UpdateUserStatus(_ context.Context, id models.ID, st models.Status) (models.MessageResponse, error) {
	s.rec("status")
	s.mu.Lock()
	s.statusIDs, s.statuses = append(s.statusIDs, id), append(s.statuses, st)
	s.mu.Unlock()
	return models.MessageResponse{}, s.mutateErr
}
func (s *stubAPI) ListCampaigns(context.Context) ([]models.Campaign, error) {
	s.rec("campaigns")
	return s.campaigns, nil
}
func (s *stubAPI) CreateCampaign(_ context.Context, req models.CampaignRequest) (models.CreatedResponse, error) {
	s.rec("campaigns.create")
	s.mu.Lock()
	s.campaignReqs = append(s.campaignReqs, req)
	s.mu.Unlock()
	return models.CreatedResponse{}, s.mutateErr
}
func (s *stubAPI) ListTrackingLinks(context.Context) ([]models.TrackingLink, error) {
	s.rec("links")
	return nil, nil
}
func (s *stubAPI) CreateTrackingLink(context.Context, models.TrackingLinkRequest) (models.CreatedResponse, error) {
	s.rec("links.create")
	return models.CreatedResponse{}, s.mutateErr
}
func (s *stubAPI) AnalyticsSummary(context.Context) (models.AnalyticsSummary, error) {
	s.rec("analytics")
	return models.AnalyticsSummary{TotalLinks: 2, TotalClicks: 7, UniqueClicks: 5}, nil
}
func (s *stubAPI) ClickAnalytics(context.Context) ([]models.ClickEvent, error) {
	s.rec("clicks")
	return nil, nil
}
func (s *stubAPI) Geography(context.Context) ([]models.GeoRow, error) {
	s.rec("geography")
	return s.geo, nil
}
func (s *stubAPI) WorkerCampaigns(context.Context) ([]models.Campaign, error) {
	s.rec("worker.campaigns")
	return s.campaigns, nil
}
func (s *stubAPI) WorkerTrackingLinks(context.Context) ([]models.TrackingLink, error) {
	s.rec("worker.links")
	return nil, nil
}
func (s *stubAPI) WorkerAnalytics(context.Context) (models.AnalyticsSummary, error) {
	s.rec("worker.analytics")
	return models.AnalyticsSummary{}, nil
}
func (s *stubAPI) WorkerTasks(context.Context) ([]models.Task, error) {
	s.rec("worker.tasks")
	return s.tasks, nil
}

// ------------ app builder ------------

type testApp struct {
	*App
	api   *stubAPI
	fauth *fakeAuth
	store *memStore
	buf   *bytes.Buffer
}

// newTestApp builds an App over fakes; input feeds both prompts and the REPL.
func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()
	buf := &bytes.Buffer{}
	api := &stubAPI{}
	auth := &fakeAuth{}
	store := &memStore{}
	r := router.New(store, func(string) dashboard.API { return api }, newConsoleNotifier(buf), nil)

	return &testApp{
		App: &App{
			config:   &config.Config{},
			auth:     auth,
			router:   r,
			logger:   logging.Discard(),
			reader:   bufio.NewReader(strings.NewReader(input)),
			out:      buf,
			identify: func(context.Context, string) (models.Identity, error) { return models.Identity{}, nil },
		},
		api:   api,
		fauth: auth,
		store: store,
		buf:   buf,
	}
}

// signIn mounts a dashboard for role without going through prompts.
func (ta *testApp) signIn(t *testing.T, role models.Role) {
	t.Helper()
	sess := models.Session{Token: "tok", Identity: models.Identity{ID: "7", Username: "alice", Role: role}}
	if _, err := ta.router.SignIn(context.Background(), sess); err != nil {
		t.Fatalf("sign in: %v", err)
	}
}

func identityFor(role models.Role) models.Identity {
	return models.Identity{ID: "7", Username: "alice", Role: role}
}
