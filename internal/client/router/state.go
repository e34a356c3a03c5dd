package router

import "github.com/dmitrijs2005/linkdash/internal/client/models"

// State is the top-level view currently mounted.
type State int

const (
	StateUnauthenticated State = iota
	StateAdmin
	StateAdmin2
	StateBusiness
	StateMember
	StateWorker
	StateUnknownRole
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAdmin:
		return "admin"
	case StateAdmin2:
		return "admin2"
	case StateBusiness:
		return "business"
	case StateMember:
		return "member"
	case StateWorker:
		return "worker"
	case StateUnknownRole:
		return "unknown-role"
	}
	return "invalid"
}

// Authenticated reports whether s mounts a dashboard.
func (s State) Authenticated() bool { return s != StateUnauthenticated }

// StateFor maps a role to its view by exact match; anything else is
// StateUnknownRole.
func StateFor(role models.Role) State {
	switch role {
	case models.RoleAdmin:
		return StateAdmin
	case models.RoleAdmin2:
		return StateAdmin2
	case models.RoleBusiness:
		return StateBusiness
	case models.RoleMember:
		return StateMember
	case models.RoleWorker:
		return StateWorker
	default:
		return StateUnknownRole
	}
}
