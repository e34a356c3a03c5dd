package models

// Role selects the dashboard and capabilities of an identity.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAdmin2   Role = "admin2"
	RoleBusiness Role = "business"
	RoleMember   Role = "member"
	RoleWorker   Role = "worker"
)

// Roles lists every known role in display order.
var Roles = []Role{RoleAdmin, RoleAdmin2, RoleBusiness, RoleMember, RoleWorker}

// Known reports whether r is one of the five recognised roles. Matching is
// exact: "Admin" is not known.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleAdmin2, RoleBusiness, RoleMember, RoleWorker:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// Status is the account status maintained by the backend.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

func (s Status) String() string { return string(s) }
