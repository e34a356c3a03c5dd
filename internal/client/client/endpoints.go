package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Endpoint is one named entry of the REST API. Path may contain {param}
// placeholders filled by URL.
type Endpoint struct {
	Name   string
	Method string
	Path   string
}

var (
	EndpointLogin          = Endpoint{"auth.login", http.MethodPost, "/auth/login"}
	EndpointRegister       = Endpoint{"auth.register", http.MethodPost, "/auth/register"}
	EndpointMe             = Endpoint{"auth.me", http.MethodGet, "/auth/me"}
	EndpointChangePassword = Endpoint{"auth.change_password", http.MethodPost, "/auth/change_password"}

	EndpointAnalyticsSummary = Endpoint{"analytics.summary", http.MethodGet, "/analytics/summary"}
	EndpointAnalyticsClicks  = Endpoint{"analytics.clicks", http.MethodGet, "/analytics/clicks"}

	EndpointCampaignsList   = Endpoint{"campaigns.list", http.MethodGet, "/campaigns"}
	EndpointCampaignsCreate = Endpoint{"campaigns.create", http.MethodPost, "/campaigns"}
	EndpointLinksList       = Endpoint{"links.list", http.MethodGet, "/tracking_links"}
	EndpointLinksCreate     = Endpoint{"links.create", http.MethodPost, "/tracking_links"}

	EndpointUsersList    = Endpoint{"users.list", http.MethodGet, "/admin/users"}
	EndpointUsersApprove = Endpoint{"users.approve", http.MethodPost, "/admin/users/{id}/approve"}
	EndpointUsersRole    = Endpoint{"users.role", http.MethodPut, "/admin/users/{id}/role"}
	EndpointUsersStatus  = Endpoint{"users.status", http.MethodPut, "/admin/users/{id}/status"}

	EndpointGeography = Endpoint{"geography", http.MethodGet, "/geography"}
	EndpointHealth    = Endpoint{"health", http.MethodGet, "/health"}

	EndpointWorkerCampaigns = Endpoint{"worker.campaigns", http.MethodGet, "/worker/campaigns"}
	EndpointWorkerLinks     = Endpoint{"worker.links", http.MethodGet, "/worker/tracking-links"}
	EndpointWorkerAnalytics = Endpoint{"worker.analytics", http.MethodGet, "/worker/analytics"}
	EndpointWorkerTasks     = Endpoint{"worker.tasks", http.MethodGet, "/worker/tasks"}
)

// Endpoints is the fixed endpoint table.
var Endpoints = []Endpoint{
	EndpointLogin, EndpointRegister, EndpointMe, EndpointChangePassword,
	EndpointAnalyticsSummary, EndpointAnalyticsClicks,
	EndpointCampaignsList, EndpointCampaignsCreate,
	EndpointLinksList, EndpointLinksCreate,
	EndpointUsersList, EndpointUsersApprove, EndpointUsersRole, EndpointUsersStatus,
	EndpointGeography, EndpointHealth,
	EndpointWorkerCampaigns, EndpointWorkerLinks, EndpointWorkerAnalytics, EndpointWorkerTasks,
}

// URL joins base and the endpoint path, substituting every {param} with the
// path-escaped value from params. A missing or empty parameter yields
// ErrInvalidRequest.
func (e Endpoint) URL(base string, params map[string]string) (string, error) {
	segments := strings.Split(e.Path, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
			continue
		}
		name := seg[1 : len(seg)-1]
		v := params[name]
		if v == "" {
			return "", fmt.Errorf("%w: %s: missing path parameter %q", ErrInvalidRequest, e.Name, name)
		}
		segments[i] = url.PathEscape(v)
	}
	return strings.TrimRight(base, "/") + strings.Join(segments, "/"), nil
}
