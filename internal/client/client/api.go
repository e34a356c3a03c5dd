package client

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/linkdash/internal/client/models"
)

func idParam(id models.ID) map[string]string {
	return map[string]string{"id": id.String()}
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse
	err := c.do(ctx, EndpointLogin, nil, req, decodeInto(&out))
	return out, err
}

// Register creates an account. A bound token is sent along, which is how a
// business account registers its own workers.
func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, EndpointRegister, nil, req, decodeInto(&out))
	return out, err
}

// Me returns the identity behind the bound token. Both {"user": {...}} and a
// bare user object are accepted.
func (c *HTTPClient) Me(ctx context.Context) (models.Identity, error) {
	var out models.Identity
	err := c.do(ctx, EndpointMe, nil, nil, func(data []byte) error {
		var wrapped struct {
			User *models.Identity `json:"user"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return err
		}
		if wrapped.User != nil {
			out = *wrapped.User
			return nil
		}
		return json.Unmarshal(data, &out)
	})
	return out, err
}

func (c *HTTPClient) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, EndpointChangePassword, nil, req, decodeInto(&out))
	return out, err
}

func (c *HTTPClient) AnalyticsSummary(ctx context.Context) (models.AnalyticsSummary, error) {
	var out models.AnalyticsSummary
	err := c.do(ctx, EndpointAnalyticsSummary, nil, nil, decodeInto(&out))
	return out, err
}

func (c *HTTPClient) ClickAnalytics(ctx context.Context) ([]models.ClickEvent, error) {
	out := []models.ClickEvent{}
	err := c.do(ctx, EndpointAnalyticsClicks, nil, nil, decodeList("clicks", &out))
	return out, err
}

func (c *HTTPClient) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	out := []models.Campaign{}
	err := c.do(ctx, EndpointCampaignsList, nil, nil, decodeList("campaigns", &out))
	return out, err
}

func (c *HTTPClient) CreateCampaign(ctx context.Context, req models.CampaignRequest) (models.CreatedResponse, error) {
	var out models.CreatedResponse
	err := c.do(ctx, EndpointCampaignsCreate, nil, req, decodeInto(&out))
	return out, err
}

func (c *HTTPClient) ListTrackingLinks(ctx context.Context) ([]models.TrackingLink, error) {
	out := []models.TrackingLink{}
	err := c.do(ctx, EndpointLinksList, nil, nil, decodeList("links", &out))
	return out, err
}

func (c *HTTPClient) CreateTrackingLink(ctx context.Context, req models.TrackingLinkRequest) (models.CreatedResponse, error) {
	var out models.CreatedResponse
	err := c.do(ctx, EndpointLinksCreate, nil, req, decodeInto(&out))
	return out, err
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.Identity, error) {
	out := []models.Identity{}
	err := c.do(ctx, EndpointUsersList, nil, nil, decodeList("users", &out))
	return out, err
}

func (c *HTTPClient) ApproveUser(ctx context.Context, id models.ID) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, EndpointUsersApprove, idParam(id), nil, decodeInto(&out))
	return out, err
}

func (c *HTTPClient) UpdateUserRole(ctx context.Context, id models.ID, role models.Role) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, EndpointUsersRole, idParam(id), models.RoleUpdate{Role: role}, decodeInto(&out))
	return out, err
}

func (c *HTTPClient) UpdateUserStatus(ctx context.Context, id models.ID, status models.Status) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, EndpointUsersStatus, idParam(id), models.StatusUpdate{Status: status}, decodeInto(&out))
	return out, err
}

func (c *HTTPClient) Geography(ctx context.Context) ([]models.GeoRow, error) {
	out := []models.GeoRow{}
	err := c.do(ctx, EndpointGeography, nil, nil, decodeList("geo_data", &out))
	return out, err
}

func (c *HTTPClient) Health(ctx context.Context) (models.Health, error) {
	var out models.Health
	err := c.do(ctx, EndpointHealth, nil, nil, decodeInto(&out))
	return out, err
}

func (c *HTTPClient) WorkerCampaigns(ctx context.Context) ([]models.Campaign, error) {
	out := []models.Campaign{}
	err := c.do(ctx, EndpointWorkerCampaigns, nil, nil, decodeList("campaigns", &out))
	return out, err
}

func (c *HTTPClient) WorkerTrackingLinks(ctx context.Context) ([]models.TrackingLink, error) {
	out := []models.TrackingLink{}
	err := c.do(ctx, EndpointWorkerLinks, nil, nil, decodeList("links", &out))
	return out, err
}

func (c *HTTPClient) WorkerAnalytics(ctx context.Context) (models.AnalyticsSummary, error) {
	var out models.AnalyticsSummary
	err := c.do(ctx, EndpointWorkerAnalytics, nil, nil, decodeInto(&out))
	return out, err
}

func (c *HTTPClient) WorkerTasks(ctx context.Context) ([]models.Task, error) {
	out := []models.Task{}
	err := c.do(ctx, EndpointWorkerTasks, nil, nil, decodeList("tasks", &out))
	return out, err
}
