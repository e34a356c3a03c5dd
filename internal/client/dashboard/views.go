package dashboard

import (
	"strings"

	"github.com/dmitrijs2005/linkdash/internal/client/models"
)

// Users returns the user rows this view may see: everyone for admin, all but
// the primary admin for admin2, own workers for business. The second result
// is false until the first fetch succeeds or when the view has no user panel.
func (d *Dashboard) Users() ([]models.Identity, bool) {
	if d.users == nil {
		return nil, false
	}
	all, ok := d.users.Snapshot()
	if !ok {
		return nil, false
	}
	out := make([]models.Identity, 0, len(all))
	for _, u := range all {
		if d.profile.visible(d.self, u) {
			out = append(out, u)
		}
	}
	return out, true
}

// CanManage reports whether actions may target u from this view.
func (d *Dashboard) CanManage(u models.Identity) bool {
	return d.profile.manageable(d.self, u)
}

// ManagedUsers returns the visible rows that actions may target.
func (d *Dashboard) ManagedUsers() []models.Identity {
	users, _ := d.Users()
	out := make([]models.Identity, 0, len(users))
	for _, u := range users {
		if d.CanManage(u) {
			out = append(out, u)
		}
	}
	return out
}

func (d *Dashboard) findUser(id models.ID) (models.Identity, bool) {
	users, _ := d.Users()
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return models.Identity{}, false
}

// UserStats are counters over the visible user rows.
type UserStats struct {
	Total   int
	Pending int
	Active  int
	Members int
	Workers int
}

func (d *Dashboard) Stats() UserStats {
	users, _ := d.Users()
	var s UserStats
	for _, u := range users {
		s.Total++
		switch u.Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusActive:
			s.Active++
		}
		switch u.Role {
		case models.RoleMember:
			s.Members++
		case models.RoleWorker:
			s.Workers++
		}
	}
	return s
}

func snapshotOf[T any](p *Panel[T]) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return p.Snapshot()
}

func (d *Dashboard) Campaigns() ([]models.Campaign, bool) { return snapshotOf(d.campaigns) }

func (d *Dashboard) Links() ([]models.TrackingLink, bool) { return snapshotOf(d.links) }

func (d *Dashboard) Analytics() (models.AnalyticsSummary, bool) { return snapshotOf(d.analytics) }

func (d *Dashboard) Clicks() ([]models.ClickEvent, bool) { return snapshotOf(d.clicks) }

func (d *Dashboard) Tasks() ([]models.Task, bool) { return snapshotOf(d.tasks) }

// Geography returns the rows whose country, region or city contains term,
// ignoring case. An empty term matches everything.
func (d *Dashboard) Geography(term string) ([]models.GeoRow, bool) {
	rows, ok := snapshotOf(d.geography)
	if !ok {
		return nil, false
	}
	return FilterGeo(rows, term), true
}

func FilterGeo(rows []models.GeoRow, term string) []models.GeoRow {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return rows
	}
	out := make([]models.GeoRow, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Country), term) ||
			strings.Contains(strings.ToLower(r.Region), term) ||
			strings.Contains(strings.ToLower(r.City), term) {
			out = append(out, r)
		}
	}
	return out
}
