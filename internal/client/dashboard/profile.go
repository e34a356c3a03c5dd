package dashboard

import (
	"slices"

	"github.com/dmitrijs2005/linkdash/internal/client/models"
)

type PanelID string

const (
	PanelUsers     PanelID = "users"
	PanelWorkers   PanelID = "workers"
	PanelCampaigns PanelID = "campaigns"
	PanelLinks     PanelID = "links"
	PanelAnalytics PanelID = "analytics"
	PanelClicks    PanelID = "clicks"
	PanelGeography PanelID = "geography"
	PanelTasks     PanelID = "tasks"
)

type Action string

const (
	ActionCreateUser      Action = "create-user"
	ActionApproveUser     Action = "approve-user"
	ActionUpdateRole      Action = "update-role"
	ActionUpdateStatus    Action = "update-status"
	ActionCreateWorker    Action = "create-worker"
	ActionSetWorkerStatus Action = "set-worker-status"
	ActionCreateCampaign  Action = "create-campaign"
	ActionCreateLink      Action = "create-link"
)

// PrimaryAdminID is the id of the designated primary admin account, which
// admin2 can neither see nor alter.
const PrimaryAdminID models.ID = "1"

// Profile is one row of the capability table.
type Profile struct {
	Role    models.Role
	Title   string
	Panels  []PanelID
	Actions []Action

	// AssignableRoles lists the roles create-user and update-role may set.
	AssignableRoles []models.Role

	// WorkerScoped switches reads to the /worker endpoints.
	WorkerScoped bool

	// Visible selects the user rows shown in listings and statistics.
	Visible func(self, u models.Identity) bool
	// Manageable selects the visible rows that actions may target.
	Manageable func(self, u models.Identity) bool
}

func (p Profile) HasPanel(id PanelID) bool { return slices.Contains(p.Panels, id) }

func (p Profile) Allows(a Action) bool { return slices.Contains(p.Actions, a) }

func (p Profile) CanAssign(r models.Role) bool { return slices.Contains(p.AssignableRoles, r) }

// Inert reports whether the profile mounts nothing and exposes nothing.
func (p Profile) Inert() bool { return len(p.Panels) == 0 && len(p.Actions) == 0 }

func (p Profile) visible(self, u models.Identity) bool {
	return p.Visible != nil && p.Visible(self, u)
}

func (p Profile) manageable(self, u models.Identity) bool {
	return p.visible(self, u) && p.Manageable != nil && p.Manageable(self, u)
}

var userAdminActions = []Action{
	ActionCreateUser, ActionApproveUser, ActionUpdateRole, ActionUpdateStatus,
	ActionCreateCampaign, ActionCreateLink,
}

func everyone(_, _ models.Identity) bool { return true }

func isPrimaryAdmin(u models.Identity) bool {
	return u.Role == models.RoleAdmin && u.ID == PrimaryAdminID
}

func ownWorker(self, u models.Identity) bool {
	return u.Role == models.RoleWorker && u.ChildOf(self.ID)
}

func AdminProfile() Profile {
	return Profile{
		Role:            models.RoleAdmin,
		Title:           "Admin Dashboard",
		Panels:          []PanelID{PanelUsers, PanelCampaigns, PanelLinks, PanelAnalytics, PanelClicks, PanelGeography},
		Actions:         userAdminActions,
		AssignableRoles: models.Roles,
		Visible:         everyone,
		Manageable:      everyone,
	}
}

func Admin2Profile() Profile {
	return Profile{
		Role:    models.RoleAdmin2,
		Title:   "Admin2 Dashboard",
		Panels:  []PanelID{PanelUsers, PanelCampaigns, PanelLinks, PanelAnalytics, PanelClicks, PanelGeography},
		Actions: userAdminActions,
		AssignableRoles: []models.Role{
			models.RoleAdmin2, models.RoleBusiness, models.RoleMember, models.RoleWorker,
		},
		Visible: func(_, u models.Identity) bool { return !isPrimaryAdmin(u) },
		Manageable: func(self, u models.Identity) bool {
			return u.ID != self.ID && u.Role != models.RoleAdmin
		},
	}
}

func BusinessProfile() Profile {
	return Profile{
		Role:   models.RoleBusiness,
		Title:  "Business Dashboard",
		Panels: []PanelID{PanelWorkers, PanelCampaigns, PanelLinks, PanelAnalytics, PanelGeography},
		Actions: []Action{
			ActionCreateWorker, ActionSetWorkerStatus, ActionCreateCampaign, ActionCreateLink,
		},
		Visible:    ownWorker,
		Manageable: ownWorker,
	}
}

func MemberProfile() Profile {
	return Profile{
		Role:    models.RoleMember,
		Title:   "Member Dashboard",
		Panels:  []PanelID{PanelCampaigns, PanelLinks, PanelAnalytics, PanelGeography},
		Actions: []Action{ActionCreateCampaign, ActionCreateLink},
	}
}

func WorkerProfile() Profile {
	return Profile{
		Role:         models.RoleWorker,
		Title:        "Worker Dashboard",
		Panels:       []PanelID{PanelCampaigns, PanelLinks, PanelAnalytics, PanelTasks},
		WorkerScoped: true,
	}
}

// UnknownProfile is mounted for roles outside the known set.
func UnknownProfile(role models.Role) Profile {
	return Profile{Role: role, Title: "Unknown role"}
}
