package dashboard

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/linkdash/internal/client/models"
)

// permit refuses actions the view does not expose. No request is made.
func (d *Dashboard) permit(ctx context.Context, a Action) bool {
	if d.profile.Allows(a) {
		return true
	}
	d.logger.Info(ctx, "action refused", "action", a)
	d.notifyText(false, MsgNotPermitted)
	return false
}

// target resolves a user row the action may act on.
func (d *Dashboard) target(ctx context.Context, a Action, id models.ID) (models.Identity, bool) {
	u, ok := d.findUser(id)
	if !ok || !d.CanManage(u) {
		d.logger.Info(ctx, "action refused", "action", a, "user_id", id)
		d.notifyText(false, MsgNotPermitted)
		return models.Identity{}, false
	}
	return u, true
}

// finish notifies the outcome of a mutating call and re-fetches panel on
// success.
func (d *Dashboard) finish(ctx context.Context, a Action, err error, success, fallback string, panel PanelID) bool {
	if err != nil {
		d.logger.Warn(ctx, "action failed", "action", a, "err", err)
		d.notifyError(err, fallback)
		return false
	}
	d.logger.Info(ctx, "action succeeded", "action", a)
	d.notifyText(true, success)
	d.Refresh(ctx, panel)
	return true
}

// CreateUser registers the account described by NewUser. The role must be
// assignable from this view.
func (d *Dashboard) CreateUser(ctx context.Context) bool {
	if !d.permit(ctx, ActionCreateUser) {
		return false
	}
	draft := d.NewUser.Get()
	req := models.RegisterRequest{
		Username: draft.Username,
		Email:    draft.Email,
		Password: draft.Password,
		Role:     draft.Role,
	}
	if draft.Role == "" || models.Validate(req) != nil {
		d.notifyText(false, MsgRequiredFields)
		return false
	}
	if !d.profile.CanAssign(draft.Role) {
		d.notifyText(false, MsgNotPermitted)
		return false
	}

	_, err := d.api.Register(ctx, req)
	if err == nil {
		d.NewUser.Reset()
	}
	return d.finish(ctx, ActionCreateUser, err, "User created successfully", "Failed to create user", d.userPanel())
}

func (d *Dashboard) ApproveUser(ctx context.Context, id models.ID) bool {
	if !d.permit(ctx, ActionApproveUser) {
		return false
	}
	if _, ok := d.target(ctx, ActionApproveUser, id); !ok {
		return false
	}
	_, err := d.api.ApproveUser(ctx, id)
	return d.finish(ctx, ActionApproveUser, err, "User approved successfully", "Failed to approve user", d.userPanel())
}

func (d *Dashboard) UpdateUserRole(ctx context.Context, id models.ID, role models.Role) bool {
	if !d.permit(ctx, ActionUpdateRole) {
		return false
	}
	if !d.profile.CanAssign(role) {
		d.notifyText(false, MsgNotPermitted)
		return false
	}
	if _, ok := d.target(ctx, ActionUpdateRole, id); !ok {
		return false
	}
	_, err := d.api.UpdateUserRole(ctx, id, role)
	return d.finish(ctx, ActionUpdateRole, err, "User role updated successfully", "Failed to update user role", d.userPanel())
}

func (d *Dashboard) UpdateUserStatus(ctx context.Context, id models.ID, status models.Status) bool {
	if !d.permit(ctx, ActionUpdateStatus) {
		return false
	}
	if models.Validate(models.StatusUpdate{Status: status}) != nil {
		d.notifyText(false, MsgRequiredFields)
		return false
	}
	if _, ok := d.target(ctx, ActionUpdateStatus, id); !ok {
		return false
	}
	_, err := d.api.UpdateUserStatus(ctx, id, status)
	return d.finish(ctx, ActionUpdateStatus, err, "User status updated successfully", "Failed to update user status", d.userPanel())
}

// CreateWorker registers NewWorker as an active worker owned by this
// business account.
func (d *Dashboard) CreateWorker(ctx context.Context) bool {
	if !d.permit(ctx, ActionCreateWorker) {
		return false
	}
	draft := d.NewWorker.Get()
	parent := d.self.ID
	req := models.RegisterRequest{
		Username: draft.Username,
		Email:    draft.Email,
		Password: draft.Password,
		Role:     models.RoleWorker,
		ParentID: &parent,
		Status:   models.StatusActive,
	}
	if models.Validate(req) != nil {
		d.notifyText(false, MsgRequiredFields)
		return false
	}

	_, err := d.api.Register(ctx, req)
	if err == nil {
		d.NewWorker.Reset()
	}
	return d.finish(ctx, ActionCreateWorker, err, "Worker created successfully", "Failed to create worker", PanelWorkers)
}

// SetWorkerStatus activates or suspends one of this account's workers.
func (d *Dashboard) SetWorkerStatus(ctx context.Context, id models.ID, status models.Status) bool {
	if !d.permit(ctx, ActionSetWorkerStatus) {
		return false
	}
	if status != models.StatusActive && status != models.StatusSuspended {
		d.notifyText(false, MsgNotPermitted)
		return false
	}
	if _, ok := d.target(ctx, ActionSetWorkerStatus, id); !ok {
		return false
	}
	_, err := d.api.UpdateUserStatus(ctx, id, status)
	return d.finish(ctx, ActionSetWorkerStatus, err,
		fmt.Sprintf("Worker %s successfully", status), "Failed to update worker status", PanelWorkers)
}

func (d *Dashboard) CreateCampaign(ctx context.Context) bool {
	if !d.permit(ctx, ActionCreateCampaign) {
		return false
	}
	req := d.NewCampaign.Get()
	if models.Validate(req) != nil {
		d.notifyText(false, MsgRequiredFields)
		return false
	}

	_, err := d.api.CreateCampaign(ctx, req)
	if err == nil {
		d.NewCampaign.Reset()
	}
	return d.finish(ctx, ActionCreateCampaign, err, "Campaign created successfully", "Failed to create campaign", PanelCampaigns)
}

func (d *Dashboard) CreateTrackingLink(ctx context.Context) bool {
	if !d.permit(ctx, ActionCreateLink) {
		return false
	}
	req := d.NewLink.Get()
	if models.Validate(req) != nil {
		d.notifyText(false, MsgRequiredFields)
		return false
	}

	_, err := d.api.CreateTrackingLink(ctx, req)
	if err == nil {
		d.NewLink.Reset()
	}
	return d.finish(ctx, ActionCreateLink, err, "Tracking link created successfully", "Failed to create tracking link", PanelLinks)
}

func (d *Dashboard) userPanel() PanelID {
	if d.profile.HasPanel(PanelWorkers) {
		return PanelWorkers
	}
	return PanelUsers
}
