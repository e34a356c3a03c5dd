package client

import (
	"context"

	"github.com/dmitrijs2005/linkdash/internal/client/models"
)

// Client is the REST API contract consumed by the rest of the application.
// HTTPClient is the only production implementation.
type Client interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.MessageResponse, error)
	Me(ctx context.Context) (models.Identity, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.MessageResponse, error)
	Health(ctx context.Context) (models.Health, error)

	AnalyticsSummary(ctx context.Context) (models.AnalyticsSummary, error)
	ClickAnalytics(ctx context.Context) ([]models.ClickEvent, error)
	Geography(ctx context.Context) ([]models.GeoRow, error)

	ListCampaigns(ctx context.Context) ([]models.Campaign, error)
	CreateCampaign(ctx context.Context, req models.CampaignRequest) (models.CreatedResponse, error)
	ListTrackingLinks(ctx context.Context) ([]models.TrackingLink, error)
	CreateTrackingLink(ctx context.Context, req models.TrackingLinkRequest) (models.CreatedResponse, error)

	ListUsers(ctx context.Context) ([]models.Identity, error)
	ApproveUser(ctx context.Context, id models.ID) (models.MessageResponse, error)
	UpdateUserRole(ctx context.Context, id models.ID, role models.Role) (models.MessageResponse, error)
	UpdateUserStatus(ctx context.Context, id models.ID, status models.Status) (models.MessageResponse, error)

	WorkerCampaigns(ctx context.Context) ([]models.Campaign, error)
	WorkerTrackingLinks(ctx context.Context) ([]models.TrackingLink, error)
	WorkerAnalytics(ctx context.Context) (models.AnalyticsSummary, error)
	WorkerTasks(ctx context.Context) ([]models.Task, error)
}

var _ Client = (*HTTPClient)(nil)
