package dashboard

import (
	"context"

	"github.com/dmitrijs2005/linkdash/internal/client/models"
)

// API is the part of the REST client used by dashboards. The implementation
// is expected to be bound to the session token already.
type API interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.MessageResponse, error)

	ListUsers(ctx context.Context) ([]models.Identity, error)
	ApproveUser(ctx context.Context, id models.ID) (models.MessageResponse, error)
	UpdateUserRole(ctx context.Context, id models.ID, role models.Role) (models.MessageResponse, error)
	UpdateUserStatus(ctx context.Context, id models.ID, status models.Status) (models.MessageResponse, error)

	ListCampaigns(ctx context.Context) ([]models.Campaign, error)
	CreateCampaign(ctx context.Context, req models.CampaignRequest) (models.CreatedResponse, error)
	ListTrackingLinks(ctx context.Context) ([]models.TrackingLink, error)
	CreateTrackingLink(ctx context.Context, req models.TrackingLinkRequest) (models.CreatedResponse, error)

	AnalyticsSummary(ctx context.Context) (models.AnalyticsSummary, error)
	ClickAnalytics(ctx context.Context) ([]models.ClickEvent, error)
	Geography(ctx context.Context) ([]models.GeoRow, error)

	WorkerCampaigns(ctx context.Context) ([]models.Campaign, error)
	WorkerTrackingLinks(ctx context.Context) ([]models.TrackingLink, error)
	WorkerAnalytics(ctx context.Context) (models.AnalyticsSummary, error)
	WorkerTasks(ctx context.Context) ([]models.Task, error)
}

// Notifier shows transient messages to the user. Implementations must be
// safe for concurrent use.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}
