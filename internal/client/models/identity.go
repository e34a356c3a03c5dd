package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a backend-assigned identifier. The API emits numbers, older
// deployments strings; both decode to the same value.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes canonical integers as JSON numbers and everything else,
// "007" and "+5" included, as strings, so every id round-trips unchanged.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

// Identity is the authenticated principal as returned by the backend.
// Timestamps are kept verbatim.
type Identity struct {
	ID                  ID     `json:"id"`
	Username            string `json:"username"`
	Email               string `json:"email,omitempty"`
	Role                Role   `json:"role"`
	Status              Status `json:"status,omitempty"`
	ParentID            *ID    `json:"parent_id,omitempty"`
	CreatedAt           string `json:"created_at,omitempty"`
	LastLogin           string `json:"last_login,omitempty"`
	SubscriptionStatus  string `json:"subscription_status,omitempty"`
	SubscriptionExpires string `json:"subscription_expires,omitempty"`
}

// ChildOf reports whether i is owned by parent.
func (i Identity) ChildOf(parent ID) bool {
	return i.ParentID != nil && parent != "" && *i.ParentID == parent
}

// Session pairs an identity with its bearer token.
type Session struct {
	Identity Identity
	Token    string
}

// Complete reports whether both halves of the session are set.
func (s Session) Complete() bool {
	return s.Token != "" && s.Identity.ID != ""
}
