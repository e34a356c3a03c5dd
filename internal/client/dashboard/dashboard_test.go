package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/linkdash/internal/client/client"
	"github.com/dmitrijs2005/linkdash/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idPtr(id models.ID) *models.ID { return &id }

func sampleUsers() []models.Identity {
	return []models.Identity{
		{ID: "1", Username: "root", Role: models.RoleAdmin, Status: models.StatusActive},
		{ID: "2", Username: "deputy", Role: models.RoleAdmin2, Status: models.StatusActive},
		{ID: "3", Username: "acme", Role: models.RoleBusiness, Status: models.StatusActive},
		{ID: "4", Username: "ann", Role: models.RoleMember, Status: models.StatusPending},
		{ID: "5", Username: "wally", Role: models.RoleWorker, Status: models.StatusActive, ParentID: idPtr("3")},
		{ID: "6", Username: "wendy", Role: models.RoleWorker, Status: models.StatusSuspended, ParentID: idPtr("3")},
		{ID: "7", Username: "other", Role: models.RoleWorker, Status: models.StatusActive, ParentID: idPtr("9")},
		{ID: "8", Username: "ops", Role: models.RoleAdmin, Status: models.StatusActive},
	}
}

func mounted(t *testing.T, p Profile, self models.Identity, api *fakeAPI) (*Dashboard, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	d := New(p, self, api, n, nil)
	d.Mount(context.Background())
	return d, n
}

func ids(users []models.Identity) []models.ID {
	out := make([]models.ID, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func TestProfiles_CapabilityTable(t *testing.T) {
	tests := []struct {
		profile Profile
		panels  []PanelID
		actions []Action
	}{
		{AdminProfile(), []PanelID{PanelUsers, PanelCampaigns, PanelLinks, PanelAnalytics, PanelClicks, PanelGeography}, userAdminActions},
		{Admin2Profile(), []PanelID{PanelUsers, PanelCampaigns, PanelLinks, PanelAnalytics, PanelClicks, PanelGeography}, userAdminActions},
		{BusinessProfile(), []PanelID{PanelWorkers, PanelCampaigns, PanelLinks, PanelAnalytics, PanelGeography},
			[]Action{ActionCreateWorker, ActionSetWorkerStatus, ActionCreateCampaign, ActionCreateLink}},
		{MemberProfile(), []PanelID{PanelCampaigns, PanelLinks, PanelAnalytics, PanelGeography},
			[]Action{ActionCreateCampaign, ActionCreateLink}},
		{WorkerProfile(), []PanelID{PanelCampaigns, PanelLinks, PanelAnalytics, PanelTasks}, nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.profile.Role), func(t *testing.T) {
			assert.Equal(t, tt.panels, tt.profile.Panels)
			assert.ElementsMatch(t, tt.actions, tt.profile.Actions)
			assert.False(t, tt.profile.Inert())
		})
	}

	unknown := UnknownProfile("superuser")
	assert.True(t, unknown.Inert())
	assert.False(t, unknown.Allows(ActionCreateCampaign))
}

func TestUnknownDashboard_IsInert(t *testing.T) {
	api := &fakeAPI{}
	d, n := mounted(t, UnknownProfile("boss"), models.Identity{ID: "9", Role: "boss"}, api)

	assert.Empty(t, api.Calls(), "no panel may fetch")
	for _, act := range []func(context.Context) bool{d.CreateUser, d.CreateWorker, d.CreateCampaign, d.CreateTrackingLink} {
		assert.False(t, act(context.Background()))
	}
	assert.False(t, d.ApproveUser(context.Background(), "1"))
	assert.Empty(t, api.Calls(), "no request may be issued")
	for _, nt := range n.all() {
		assert.Equal(t, note{false, MsgNotPermitted}, nt)
	}
}

func TestWorkerDashboard_UsesWorkerEndpointsOnly(t *testing.T) {
	api := &fakeAPI{
		campaigns: []models.Campaign{{ID: "c1", Name: "Spring"}},
		tasks:     []models.Task{{ID: "t1", Title: "Share link", Status: "pending"}},
	}
	d, n := mounted(t, WorkerProfile(), models.Identity{ID: "5", Role: models.RoleWorker}, api)

	assert.ElementsMatch(t, []string{"WorkerCampaigns", "WorkerTrackingLinks", "WorkerAnalytics", "WorkerTasks"}, api.Calls())

	campaigns, ok := d.Campaigns()
	require.True(t, ok)
	assert.Len(t, campaigns, 1)
	tasks, ok := d.Tasks()
	require.True(t, ok)
	assert.Len(t, tasks, 1)

	d.NewCampaign.Set(CampaignDraft{Name: "x", TargetURL: "https://example.com"})
	assert.False(t, d.CreateCampaign(context.Background()))
	assert.False(t, d.CreateTrackingLink(context.Background()))
	assert.Equal(t, note{false, MsgNotPermitted}, n.last())
	assert.Zero(t, api.count("CreateCampaign"))
	assert.Zero(t, api.count("CreateTrackingLink"))
	assert.Equal(t, "x", d.NewCampaign.Get().Name, "refused draft stays")
}

func TestAdmin2_HidesPrimaryAdmin(t *testing.T) {
	api := &fakeAPI{users: sampleUsers()}
	self := models.Identity{ID: "2", Role: models.RoleAdmin2}
	d, _ := mounted(t, Admin2Profile(), self, api)

	users, ok := d.Users()
	require.True(t, ok)
	assert.NotContains(t, ids(users), models.ID("1"))
	assert.Contains(t, ids(users), models.ID("8"), "other admins stay visible")

	assert.Equal(t, UserStats{Total: 7, Pending: 1, Active: 5, Members: 1, Workers: 3}, d.Stats())

	managed := ids(d.ManagedUsers())
	assert.NotContains(t, managed, models.ID("1"))
	assert.NotContains(t, managed, models.ID("2"), "self is not manageable")
	assert.NotContains(t, managed, models.ID("8"), "admin rows are not manageable")
	assert.Contains(t, managed, models.ID("4"))

	assert.False(t, d.ApproveUser(context.Background(), "1"))
	assert.False(t, d.UpdateUserRole(context.Background(), "8", models.RoleMember))
	assert.Zero(t, api.count("ApproveUser"))
	assert.Zero(t, api.count("UpdateUserRole"))

	assert.False(t, d.UpdateUserRole(context.Background(), "4", models.RoleAdmin), "admin2 cannot grant admin")
	assert.True(t, d.UpdateUserRole(context.Background(), "4", models.RoleBusiness))
	assert.Equal(t, models.RoleBusiness, api.lastRole)
}

func TestAdmin_SeesEveryone(t *testing.T) {
	api := &fakeAPI{users: sampleUsers()}
	d, _ := mounted(t, AdminProfile(), models.Identity{ID: "1", Role: models.RoleAdmin}, api)

	users, ok := d.Users()
	require.True(t, ok)
	assert.Len(t, users, len(sampleUsers()))
	assert.Len(t, d.ManagedUsers(), len(sampleUsers()))
	assert.Equal(t, 8, d.Stats().Total)
}

func TestApprove_ServerMessageLeavesListUntouched(t *testing.T) {
	api := &fakeAPI{users: sampleUsers()}
	d, n := mounted(t, AdminProfile(), models.Identity{ID: "1", Role: models.RoleAdmin}, api)
	before, _ := d.Users()
	fetches := api.count("ListUsers")

	api.mutateErr = &client.ApplicationError{Endpoint: "users.approve", StatusCode: 400, Message: "X"}
	assert.False(t, d.ApproveUser(context.Background(), "4"))

	assert.Equal(t, note{false, "X"}, n.last())
	after, _ := d.Users()
	assert.Equal(t, before, after)
	assert.Equal(t, fetches, api.count("ListUsers"), "failure must not re-fetch")
}

func TestApprove_FailureTexts(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"generic body", &client.ApplicationError{StatusCode: 500, Message: client.GenericFailureMessage, Generic: true}, "Failed to approve user"},
		{"network", &client.NetworkError{Endpoint: "users.approve", Err: errors.New("connection refused")}, MsgNetworkError},
		{"unexpected", errors.New("boom"), "Failed to approve user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{users: sampleUsers(), mutateErr: tt.err}
			d, n := mounted(t, AdminProfile(), models.Identity{ID: "1", Role: models.RoleAdmin}, api)

			require.NotPanics(t, func() { d.ApproveUser(context.Background(), "4") })
			assert.Equal(t, note{false, tt.want}, n.last())
		})
	}
}

func TestApprove_SuccessRefetches(t *testing.T) {
	api := &fakeAPI{users: sampleUsers()}
	d, n := mounted(t, AdminProfile(), models.Identity{ID: "1", Role: models.RoleAdmin}, api)
	fetches := api.count("ListUsers")

	assert.True(t, d.ApproveUser(context.Background(), "4"))
	assert.Equal(t, models.ID("4"), api.lastID)
	assert.Equal(t, note{true, "User approved successfully"}, n.last())
	assert.Equal(t, fetches+1, api.count("ListUsers"))
}

func TestCreateCampaign_DraftLifecycle(t *testing.T) {
	api := &fakeAPI{}
	d, n := mounted(t, MemberProfile(), models.Identity{ID: "4", Role: models.RoleMember}, api)
	ctx := context.Background()

	d.NewCampaign.Set(CampaignDraft{Name: "Launch"})
	assert.False(t, d.CreateCampaign(ctx))
	assert.Equal(t, note{false, MsgRequiredFields}, n.last())
	assert.Zero(t, api.count("CreateCampaign"))

	d.NewCampaign.Update(func(c *CampaignDraft) { c.TargetURL = "https://example.com/launch" })
	api.mutateErr = &client.ApplicationError{StatusCode: 400, Message: client.GenericFailureMessage, Generic: true}
	assert.False(t, d.CreateCampaign(ctx))
	assert.Equal(t, note{false, "Failed to create campaign"}, n.last())
	assert.Equal(t, "Launch", d.NewCampaign.Get().Name, "draft survives failure")

	api.mutateErr = nil
	fetches := api.count("ListCampaigns")
	assert.True(t, d.CreateCampaign(ctx))
	assert.Equal(t, note{true, "Campaign created successfully"}, n.last())
	assert.Equal(t, "https://example.com/launch", api.lastCampaign.TargetURL)
	assert.Equal(t, CampaignDraft{}, d.NewCampaign.Get(), "draft reset on success")
	assert.Equal(t, fetches+1, api.count("ListCampaigns"))
}

func TestCreateTrackingLink(t *testing.T) {
	api := &fakeAPI{}
	d, n := mounted(t, MemberProfile(), models.Identity{ID: "4", Role: models.RoleMember}, api)

	d.NewLink.Set(LinkDraft{OriginalURL: "https://example.com/x", RecipientEmail: "r@example.com"})
	assert.True(t, d.CreateTrackingLink(context.Background()))
	assert.Equal(t, note{true, "Tracking link created successfully"}, n.last())
	assert.Equal(t, "r@example.com", api.lastLink.RecipientEmail)
}

func TestCreateUser(t *testing.T) {
	api := &fakeAPI{users: sampleUsers()}
	d, n := mounted(t, Admin2Profile(), models.Identity{ID: "2", Role: models.RoleAdmin2}, api)
	ctx := context.Background()

	d.NewUser.Set(UserDraft{Username: "neo", Email: "neo@example.com", Password: "pw"})
	assert.False(t, d.CreateUser(ctx))
	assert.Equal(t, note{false, MsgRequiredFields}, n.last(), "role is required")

	d.NewUser.Update(func(u *UserDraft) { u.Role = models.RoleAdmin })
	assert.False(t, d.CreateUser(ctx))
	assert.Equal(t, note{false, MsgNotPermitted}, n.last())
	assert.Zero(t, api.count("Register"))

	d.NewUser.Update(func(u *UserDraft) { u.Role = models.RoleMember })
	assert.True(t, d.CreateUser(ctx))
	assert.Equal(t, models.RoleMember, api.lastRegister.Role)
	assert.Equal(t, UserDraft{}, d.NewUser.Get())
}

func TestBusiness_Workers(t *testing.T) {
	api := &fakeAPI{users: sampleUsers()}
	self := models.Identity{ID: "3", Role: models.RoleBusiness}
	d, n := mounted(t, BusinessProfile(), self, api)
	ctx := context.Background()

	workers, ok := d.Users()
	require.True(t, ok)
	assert.Equal(t, []models.ID{"5", "6"}, ids(workers))
	assert.Equal(t, UserStats{Total: 2, Active: 1, Workers: 2}, d.Stats())

	assert.True(t, d.SetWorkerStatus(ctx, "6", models.StatusActive))
	assert.Equal(t, note{true, "Worker active successfully"}, n.last())
	assert.True(t, d.SetWorkerStatus(ctx, "5", models.StatusSuspended))
	assert.Equal(t, note{true, "Worker suspended successfully"}, n.last())

	calls := api.count("UpdateUserStatus")
	assert.False(t, d.SetWorkerStatus(ctx, "7", models.StatusSuspended), "not our worker")
	assert.False(t, d.SetWorkerStatus(ctx, "5", models.StatusPending), "only active/suspended")
	assert.Equal(t, calls, api.count("UpdateUserStatus"))

	assert.False(t, d.ApproveUser(ctx, "5"), "user management is not exposed")

	d.NewWorker.Set(WorkerDraft{Username: "wes", Email: "wes@example.com", Password: "pw"})
	assert.True(t, d.CreateWorker(ctx))
	assert.Equal(t, models.RoleWorker, api.lastRegister.Role)
	assert.Equal(t, models.StatusActive, api.lastRegister.Status)
	require.NotNil(t, api.lastRegister.ParentID)
	assert.Equal(t, models.ID("3"), *api.lastRegister.ParentID)
	assert.Equal(t, WorkerDraft{}, d.NewWorker.Get())
}

func TestRefresh_FailureNotifiesAndKeepsSnapshot(t *testing.T) {
	api := &fakeAPI{users: sampleUsers()}
	d, n := mounted(t, AdminProfile(), models.Identity{ID: "1", Role: models.RoleAdmin}, api)

	api.listErr = &client.NetworkError{Endpoint: "users.list", Err: errors.New("refused")}
	assert.False(t, d.Refresh(context.Background(), PanelUsers))
	assert.Equal(t, note{false, MsgNetworkError}, n.last())

	users, ok := d.Users()
	require.True(t, ok)
	assert.Len(t, users, len(sampleUsers()))

	api.listErr = &client.ApplicationError{StatusCode: 403, Message: client.GenericFailureMessage, Generic: true}
	d.Refresh(context.Background(), PanelLinks)
	assert.Equal(t, note{false, "Failed to fetch tracking links"}, n.last())

	assert.False(t, d.Refresh(context.Background(), PanelTasks), "admin has no task panel")
}

func TestMount_LoadingPlaceholder(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("down")}
	d, _ := mounted(t, MemberProfile(), models.Identity{ID: "4", Role: models.RoleMember}, api)

	_, ok := d.Campaigns()
	assert.False(t, ok, "nothing fetched yet")
	_, ok = d.Users()
	assert.False(t, ok, "member has no user panel")
}

func TestGeography_Search(t *testing.T) {
	api := &fakeAPI{geo: []models.GeoRow{
		{Country: "Latvia", City: "Riga", Clicks: 4},
		{Country: "Germany", Region: "Bavaria", City: "Munich", Clicks: 2},
		{Country: "United States", Region: "Georgia", City: "Atlanta", Clicks: 9},
	}}
	d, _ := mounted(t, MemberProfile(), models.Identity{ID: "4", Role: models.RoleMember}, api)

	all, ok := d.Geography("")
	require.True(t, ok)
	assert.Len(t, all, 3)

	got, _ := d.Geography("  RIGA ")
	require.Len(t, got, 1)
	assert.Equal(t, "Latvia", got[0].Country)

	got, _ = d.Geography("ger")
	assert.Len(t, got, 2, "Germany by country, Georgia by region")

	got, _ = d.Geography("nowhere")
	assert.Empty(t, got)
}
