package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/linkdash/internal/client/dashboard"
	"github.com/dmitrijs2005/linkdash/internal/client/models"
)

const noDataText = "No data yet. Try 'refresh'."

// hydrate returns the panel data, fetching once if nothing has loaded yet.
func hydrate[T any](ctx context.Context, d *dashboard.Dashboard, id dashboard.PanelID, get func() (T, bool)) (T, bool) {
	if v, ok := get(); ok {
		return v, true
	}
	d.Refresh(ctx, id)
	return get()
}

// Show renders one panel of the mounted dashboard. geo accepts an optional
// search term.
func (a *App) Show(ctx context.Context, panel dashboard.PanelID, args []string) error {
	d := a.router.Dashboard()
	if d == nil || !d.Profile().HasPanel(panel) {
		return nil
	}

	switch panel {
	case dashboard.PanelUsers, dashboard.PanelWorkers:
		users, ok := hydrate(ctx, d, panel, d.Users)
		if !ok {
			printlnFn(noDataText)
			return nil
		}
		return renderUsers(a.out, users, d.Stats(), panel == dashboard.PanelUsers)

	case dashboard.PanelCampaigns:
		campaigns, ok := hydrate(ctx, d, panel, d.Campaigns)
		if !ok {
			printlnFn(noDataText)
			return nil
		}
		return renderCampaigns(a.out, campaigns)

	case dashboard.PanelLinks:
		links, ok := hydrate(ctx, d, panel, d.Links)
		if !ok {
			printlnFn(noDataText)
			return nil
		}
		return renderLinks(a.out, links)

	case dashboard.PanelAnalytics:
		summary, ok := hydrate(ctx, d, panel, d.Analytics)
		if !ok {
			printlnFn(noDataText)
			return nil
		}
		return renderAnalytics(a.out, summary)

	case dashboard.PanelClicks:
		clicks, ok := hydrate(ctx, d, panel, d.Clicks)
		if !ok {
			printlnFn(noDataText)
			return nil
		}
		return renderClicks(a.out, clicks)

	case dashboard.PanelGeography:
		term := strings.Join(args, " ")
		rows, ok := hydrate(ctx, d, panel, func() ([]models.GeoRow, bool) { return d.Geography(term) })
		if !ok {
			printlnFn(noDataText)
			return nil
		}
		return renderGeography(a.out, rows)

	case dashboard.PanelTasks:
		tasks, ok := hydrate(ctx, d, panel, d.Tasks)
		if !ok {
			printlnFn(noDataText)
			return nil
		}
		return renderTasks(a.out, tasks)
	}
	return nil
}

// Refresh re-fetches one panel, or every panel of the view without args.
func (a *App) Refresh(ctx context.Context, args []string) error {
	d := a.router.Dashboard()
	if d == nil {
		return nil
	}
	if len(args) == 0 {
		d.Mount(ctx)
		printlnFn("Refreshed")
		return nil
	}

	panel, ok := panelCommand(args[0])
	if !ok || !d.Profile().HasPanel(panel) {
		printlnFn("Unknown panel:", args[0])
		return nil
	}
	if d.Refresh(ctx, panel) {
		printlnFn("Refreshed", string(panel))
	}
	return nil
}

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func idOrDash(id *models.ID) string {
	if id == nil {
		return "-"
	}
	return orDash(string(*id))
}

func renderUsers(out io.Writer, users []models.Identity, stats dashboard.UserStats, withStats bool) error {
	if withStats {
		fmt.Fprintf(out, "Total: %d  Pending: %d  Active: %d  Members: %d  Workers: %d\n",
			stats.Total, stats.Pending, stats.Active, stats.Members, stats.Workers)
	}
	if len(users) == 0 {
		_, err := fmt.Fprintln(out, "No users")
		return err
	}
	w := table(out)
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLE\tSTATUS\tPARENT\tCREATED")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Username, orDash(u.Email), u.Role, orDash(string(u.Status)), idOrDash(u.ParentID), orDash(u.CreatedAt))
	}
	return w.Flush()
}

func renderCampaigns(out io.Writer, campaigns []models.Campaign) error {
	if len(campaigns) == 0 {
		_, err := fmt.Fprintln(out, "No campaigns")
		return err
	}
	w := table(out)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tTARGET\tCREATED")
	for _, c := range campaigns {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, orDash(c.Status), orDash(c.TargetURL), orDash(c.CreatedAt))
	}
	return w.Flush()
}

func renderLinks(out io.Writer, links []models.TrackingLink) error {
	if len(links) == 0 {
		_, err := fmt.Fprintln(out, "No tracking links")
		return err
	}
	w := table(out)
	fmt.Fprintln(w, "ID\tCAMPAIGN\tTOKEN\tURL\tRECIPIENT\tSTATUS\tCLICKS")
	for _, l := range links {
		campaign := orDash(l.CampaignName)
		if l.CampaignName == "" {
			campaign = idOrDash(l.CampaignID)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			l.ID, campaign, orDash(l.TrackingToken), l.OriginalURL, orDash(l.RecipientEmail), orDash(l.State()), l.ClickCount)
	}
	return w.Flush()
}

func renderAnalytics(out io.Writer, s models.AnalyticsSummary) error {
	w := table(out)
	fmt.Fprintf(w, "Total links:\t%d\n", s.TotalLinks)
	fmt.Fprintf(w, "Total clicks:\t%d\n", s.TotalClicks)
	fmt.Fprintf(w, "Unique clicks:\t%d\n", s.UniqueClicks)
	return w.Flush()
}

func renderClicks(out io.Writer, clicks []models.ClickEvent) error {
	if len(clicks) == 0 {
		_, err := fmt.Fprintln(out, "No clicks")
		return err
	}
	w := table(out)
	fmt.Fprintln(w, "TIME\tTOKEN\tEVENT\tCOUNTRY\tCITY\tDEVICE\tBROWSER\tBOT")
	for _, c := range clicks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			orDash(c.Timestamp), orDash(c.TrackingToken), orDash(c.EventType), orDash(c.Country),
			orDash(c.City), orDash(c.DeviceType), orDash(c.Browser), strconv.FormatBool(c.IsBot))
	}
	return w.Flush()
}

func renderGeography(out io.Writer, rows []models.GeoRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, "No locations")
		return err
	}
	w := table(out)
	fmt.Fprintln(w, "COUNTRY\tREGION\tCITY\tCLICKS\tUNIQUE")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", orDash(r.Country), orDash(r.Region), orDash(r.City), r.TotalClicks(), r.UniqueVisitors)
	}
	return w.Flush()
}

func renderTasks(out io.Writer, tasks []models.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(out, "No tasks")
		return err
	}
	w := table(out)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPRIORITY\tDUE\tASSIGNED BY")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, orDash(t.Status), orDash(t.Priority), orDash(t.DueDate), orDash(t.AssignedBy))
	}
	return w.Flush()
}
