package dashboard

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/linkdash/internal/client/models"
)

// fakeAPI records calls by name and answers from its preset fields.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	users     []models.Identity
	campaigns []models.Campaign
	links     []models.TrackingLink
	summary   models.AnalyticsSummary
	clicks    []models.ClickEvent
	geo       []models.GeoRow
	tasks     []models.Task

	listErr   error
	mutateErr error

	lastRegister models.RegisterRequest
	lastCampaign models.CampaignRequest
	lastLink     models.TrackingLinkRequest
	lastRole     models.Role
	lastStatus   models.Status
	lastID       models.ID
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) count(name string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeAPI) Register(ctx context.Context, req models.RegisterRequest) (models.MessageResponse, error) {
	f.record("Register")
	f.lastRegister = req
	return models.MessageResponse{}, f.mutateErr
}

func (f *fakeAPI) ListUsers(ctx context.Context) ([]models.Identity, error) {
	f.record("ListUsers")
	return f.users, f.listErr
}

func (f *fakeAPI) ApproveUser(ctx context.Context, id models.ID) (models.MessageResponse, error) {
	f.record("ApproveUser")
	f.lastID = id
	return models.MessageResponse{}, f.mutateErr
}

func (f *fakeAPI) UpdateUserRole(ctx context.Context, id models.ID, role models.Role) (models.MessageResponse, error) {
	f.record("UpdateUserRole")
	f.lastID, f.lastRole = id, role
	return models.MessageResponse{}, f.mutateErr
}

func (f *fakeAPI) UpdateUserStatus(ctx context.Context, id models.ID, status models.Status) (models.MessageResponse, error) {
	f.record("UpdateUserStatus")
	f.lastID, f.lastStatus = id, status
	return models.MessageResponse{}, f.mutateErr
}

func (f *fakeAPI) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	f.record("ListCampaigns")
	return f.campaigns, f.listErr
}

func (f *fakeAPI) CreateCampaign(ctx context.Context, req models.CampaignRequest) (models.CreatedResponse, error) {
	f.record("CreateCampaign")
	f.lastCampaign = req
	return models.CreatedResponse{}, f.mutateErr
}

func (f *fakeAPI) ListTrackingLinks(ctx context.Context) ([]models.TrackingLink, error) {
	f.record("ListTrackingLinks")
	return f.links, f.listErr
}

func (f *fakeAPI) CreateTrackingLink(ctx context.Context, req models.TrackingLinkRequest) (models.CreatedResponse, error) {
	f.record("CreateTrackingLink")
	f.lastLink = req
	return models.CreatedResponse{}, f.mutateErr
}

func (f *fakeAPI) AnalyticsSummary(ctx context.Context) (models.AnalyticsSummary, error) {
	f.record("AnalyticsSummary")
	return f.summary, f.listErr
}

func (f *fakeAPI) ClickAnalytics(ctx context.Context) ([]models.ClickEvent, error) {
	f.record("ClickAnalytics")
	return f.clicks, f.listErr
}

func (f *fakeAPI) Geography(ctx context.Context) ([]models.GeoRow, error) {
	f.record("Geography")
	return f.geo, f.listErr
}

func (f *fakeAPI) WorkerCampaigns(ctx context.Context) ([]models.Campaign, error) {
	f.record("WorkerCampaigns")
	return f.campaigns, f.listErr
}

func (f *fakeAPI) WorkerTrackingLinks(ctx context.Context) ([]models.TrackingLink, error) {
	f.record("WorkerTrackingLinks")
	return f.links, f.listErr
}

func (f *fakeAPI) WorkerAnalytics(ctx context.Context) (models.AnalyticsSummary, error) {
	f.record("WorkerAnalytics")
	return f.summary, f.listErr
}

func (f *fakeAPI) WorkerTasks(ctx context.Context) ([]models.Task, error) {
	f.record("WorkerTasks")
	return f.tasks, f.listErr
}

type note struct {
	ok  bool
	msg string
}

type recordingNotifier struct {
	mu    sync.Mutex
	notes []note
}

func (r *recordingNotifier) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, note{true, msg})
}

func (r *recordingNotifier) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, note{false, msg})
}

func (r *recordingNotifier) last() note {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notes) == 0 {
		return note{}
	}
	return r.notes[len(r.notes)-1]
}

func (r *recordingNotifier) all() []note {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]note(nil), r.notes...)
}
