package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/linkdash/internal/client/dashboard"
	"github.com/dmitrijs2005/linkdash/internal/client/models"
	"github.com/dmitrijs2005/linkdash/internal/common"
)

// Act runs an action command against the mounted dashboard. The dashboard
// reports the outcome through the notifier; only prompt I/O errors are
// returned.
func (a *App) Act(ctx context.Context, cmd string, args []string) error {
	d := a.router.Dashboard()
	if d == nil {
		return nil
	}

	switch cmd {
	case "adduser":
		return a.addUser(ctx, d)
	case "addworker":
		return a.addWorker(ctx, d)
	case "addcampaign":
		return a.addCampaign(ctx, d)
	case "addlink":
		return a.addLink(ctx, d)
	}

	want := 1
	if cmd == "role" || cmd == "status" {
		want = 2
	}
	if len(args) < want {
		printlnFn("Usage:", actionUsage(cmd))
		return nil
	}
	id := models.ID(args[0])

	switch cmd {
	case "approve":
		d.ApproveUser(ctx, id)
	case "role":
		d.UpdateUserRole(ctx, id, models.Role(args[1]))
	case "status":
		d.UpdateUserStatus(ctx, id, models.Status(args[1]))
	case "activate":
		d.SetWorkerStatus(ctx, id, models.StatusActive)
	case "suspend":
		d.SetWorkerStatus(ctx, id, models.StatusSuspended)
	}
	return nil
}

// secretOrKeep reads a password for a draft. An empty answer keeps current.
func (a *App) secretOrKeep(label, current string) (string, error) {
	if current != "" {
		label += " (empty keeps current)"
	}
	pw, err := getPassword(label, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	if len(pw) == 0 {
		return current, nil
	}
	return string(pw), nil
}

func (a *App) addUser(ctx context.Context, d *dashboard.Dashboard) error {
	draft := d.NewUser.Get()
	var err error

	if draft.Username, err = getOrKeep(a.reader, "Username", draft.Username, a.out); err != nil {
		return err
	}
	if draft.Email, err = getOrKeep(a.reader, "Email", draft.Email, a.out); err != nil {
		return err
	}
	if draft.Password, err = a.secretOrKeep("Password", draft.Password); err != nil {
		return err
	}

	roles := make([]string, 0, len(d.Profile().AssignableRoles))
	for _, r := range d.Profile().AssignableRoles {
		roles = append(roles, string(r))
	}
	role, err := getOrKeep(a.reader, fmt.Sprintf("Role (%s)", strings.Join(roles, ", ")), string(draft.Role), a.out)
	if err != nil {
		return err
	}
	draft.Role = models.Role(role)

	d.NewUser.Set(draft)
	d.CreateUser(ctx)
	return nil
}

func (a *App) addWorker(ctx context.Context, d *dashboard.Dashboard) error {
	draft := d.NewWorker.Get()
	var err error

	if draft.Username, err = getOrKeep(a.reader, "Worker username", draft.Username, a.out); err != nil {
		return err
	}
	if draft.Email, err = getOrKeep(a.reader, "Worker email", draft.Email, a.out); err != nil {
		return err
	}
	if draft.Password, err = a.secretOrKeep("Worker password", draft.Password); err != nil {
		return err
	}

	d.NewWorker.Set(draft)
	d.CreateWorker(ctx)
	return nil
}

func (a *App) addCampaign(ctx context.Context, d *dashboard.Dashboard) error {
	draft := d.NewCampaign.Get()
	var err error

	if draft.Name, err = getOrKeep(a.reader, "Campaign name", draft.Name, a.out); err != nil {
		return err
	}
	if draft.Description, err = getOrKeep(a.reader, "Description (optional)", draft.Description, a.out); err != nil {
		return err
	}
	if draft.TargetURL, err = getOrKeep(a.reader, "Target URL", draft.TargetURL, a.out); err != nil {
		return err
	}

	d.NewCampaign.Set(draft)
	d.CreateCampaign(ctx)
	return nil
}

func (a *App) addLink(ctx context.Context, d *dashboard.Dashboard) error {
	draft := d.NewLink.Get()
	var err error

	if draft.OriginalURL, err = getOrKeep(a.reader, "Original URL", draft.OriginalURL, a.out); err != nil {
		return err
	}

	current := ""
	if draft.CampaignID != nil {
		current = string(*draft.CampaignID)
	}
	campaign, err := getOrKeep(a.reader, "Campaign ID (optional)", current, a.out)
	if err != nil {
		return err
	}
	if campaign != "" {
		id := models.ID(campaign)
		draft.CampaignID = &id
	}

	if draft.RecipientEmail, err = getOrKeep(a.reader, "Recipient email (optional)", draft.RecipientEmail, a.out); err != nil {
		return err
	}
	if draft.RecipientName, err = getOrKeep(a.reader, "Recipient name (optional)", draft.RecipientName, a.out); err != nil {
		return err
	}

	d.NewLink.Set(draft)
	d.CreateTrackingLink(ctx)
	return nil
}
