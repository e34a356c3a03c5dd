package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/linkdash/internal/client/client"
	"github.com/dmitrijs2005/linkdash/internal/client/models"
	"github.com/dmitrijs2005/linkdash/internal/logging"
)

// Notification texts shared by every view.
const (
	MsgNotPermitted   = "Action not permitted"
	MsgRequiredFields = "Please fill in required fields"
	MsgNetworkError   = "Network error"
)

// Dashboard is a view bound to one session. A new sign-in builds a new
// Dashboard; the token never changes for the lifetime of one.
type Dashboard struct {
	profile Profile
	self    models.Identity
	api     API
	notify  Notifier
	logger  logging.Logger

	users     *Panel[[]models.Identity]
	campaigns *Panel[[]models.Campaign]
	links     *Panel[[]models.TrackingLink]
	analytics *Panel[models.AnalyticsSummary]
	clicks    *Panel[[]models.ClickEvent]
	geography *Panel[[]models.GeoRow]
	tasks     *Panel[[]models.Task]

	panels map[PanelID]refresher

	NewUser     Draft[UserDraft]
	NewWorker   Draft[WorkerDraft]
	NewCampaign Draft[CampaignDraft]
	NewLink     Draft[LinkDraft]
}

// New builds the dashboard described by profile for self. api must already
// carry the session token.
func New(profile Profile, self models.Identity, api API, notify Notifier, logger logging.Logger) *Dashboard {
	if logger == nil {
		logger = logging.Discard()
	}
	d := &Dashboard{
		profile: profile,
		self:    self,
		api:     api,
		notify:  notify,
		logger:  logger.With("view", string(profile.Role)),
		panels:  make(map[PanelID]refresher),
	}

	campaigns, links, analytics := api.ListCampaigns, api.ListTrackingLinks, api.AnalyticsSummary
	if profile.WorkerScoped {
		campaigns, links, analytics = api.WorkerCampaigns, api.WorkerTrackingLinks, api.WorkerAnalytics
	}

	for _, id := range profile.Panels {
		switch id {
		case PanelUsers, PanelWorkers:
			if d.users == nil {
				d.users = NewPanel(string(id), api.ListUsers)
			}
			d.panels[id] = d.users
		case PanelCampaigns:
			d.campaigns = NewPanel(string(id), campaigns)
			d.panels[id] = d.campaigns
		case PanelLinks:
			d.links = NewPanel(string(id), links)
			d.panels[id] = d.links
		case PanelAnalytics:
			d.analytics = NewPanel(string(id), analytics)
			d.panels[id] = d.analytics
		case PanelClicks:
			d.clicks = NewPanel(string(id), api.ClickAnalytics)
			d.panels[id] = d.clicks
		case PanelGeography:
			d.geography = NewPanel(string(id), api.Geography)
			d.panels[id] = d.geography
		case PanelTasks:
			d.tasks = NewPanel(string(id), api.WorkerTasks)
			d.panels[id] = d.tasks
		}
	}
	return d
}

func (d *Dashboard) Profile() Profile { return d.profile }

func (d *Dashboard) Self() models.Identity { return d.self }

// Mount refreshes every panel of the view concurrently and waits for all of
// them to settle.
func (d *Dashboard) Mount(ctx context.Context) {
	var wg sync.WaitGroup
	for _, id := range d.profile.Panels {
		wg.Add(1)
		go func(id PanelID) {
			defer wg.Done()
			d.Refresh(ctx, id)
		}(id)
	}
	wg.Wait()
}

// Refresh re-fetches one panel. A failure is notified and leaves the previous
// snapshot in place. It returns false for failures and for panels the view
// does not mount.
func (d *Dashboard) Refresh(ctx context.Context, id PanelID) bool {
	p, ok := d.panels[id]
	if !ok {
		return false
	}
	if err := p.Refresh(ctx); err != nil {
		d.logger.Warn(ctx, "panel fetch failed", "panel", id, "err", err)
		d.notifyError(err, fetchFailure(id))
		return false
	}
	return true
}

func fetchFailure(id PanelID) string {
	switch id {
	case PanelLinks:
		return "Failed to fetch tracking links"
	case PanelGeography:
		return "Failed to fetch geography data"
	case PanelAnalytics:
		return "Failed to fetch analytics"
	default:
		return "Failed to fetch " + string(id)
	}
}

// FailureText maps an API error to the text shown to the user: the server
// message when there is one, fallback when the message is generic, and
// MsgNetworkError when the server could not be reached.
func FailureText(err error, fallback string) string {
	var appErr *client.ApplicationError
	if errors.As(err, &appErr) {
		if appErr.Generic || appErr.Message == "" {
			return fallback
		}
		return appErr.Message
	}
	var netErr *client.NetworkError
	if errors.As(err, &netErr) {
		return MsgNetworkError
	}
	return fallback
}

func (d *Dashboard) notifyError(err error, fallback string) {
	if d.notify != nil {
		d.notify.Error(FailureText(err, fallback))
	}
}

func (d *Dashboard) notifyText(ok bool, msg string) {
	if d.notify == nil {
		return
	}
	if ok {
		d.notify.Success(msg)
	} else {
		d.notify.Error(msg)
	}
}
