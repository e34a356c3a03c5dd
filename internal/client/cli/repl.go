package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dmitrijs2005/linkdash/internal/client/dashboard"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	// commands lists what the current view accepts, in help order.
	commands() []string

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Health(ctx context.Context) error

	WhoAmI(ctx context.Context) error
	Me(ctx context.Context) error
	Refresh(ctx context.Context, args []string) error
	ChangePassword(ctx context.Context) error
	Stats(ctx context.Context) error
	Logout(ctx context.Context) error

	Show(ctx context.Context, panel dashboard.PanelID, args []string) error
	Act(ctx context.Context, cmd string, args []string) error
}

var (
	baseCommands    = []string{"help", "login", "register", "health", "exit"}
	sessionCommands = []string{"whoami", "me", "refresh", "passwd", "stats", "logout"}
)

// panelCommands and actionCommands are kept in help order.
var panelCommands = []struct {
	name  string
	panel dashboard.PanelID
}{
	{"users", dashboard.PanelUsers},
	{"workers", dashboard.PanelWorkers},
	{"campaigns", dashboard.PanelCampaigns},
	{"links", dashboard.PanelLinks},
	{"analytics", dashboard.PanelAnalytics},
	{"clicks", dashboard.PanelClicks},
	{"geo", dashboard.PanelGeography},
	{"tasks", dashboard.PanelTasks},
}

var actionCommands = []struct {
	name   string
	action dashboard.Action
	usage  string
}{
	{"adduser", dashboard.ActionCreateUser, "adduser"},
	{"approve", dashboard.ActionApproveUser, "approve <id>"},
	{"role", dashboard.ActionUpdateRole, "role <id> <role>"},
	{"status", dashboard.ActionUpdateStatus, "status <id> <status>"},
	{"addworker", dashboard.ActionCreateWorker, "addworker"},
	{"activate", dashboard.ActionSetWorkerStatus, "activate <id>"},
	{"suspend", dashboard.ActionSetWorkerStatus, "suspend <id>"},
	{"addcampaign", dashboard.ActionCreateCampaign, "addcampaign"},
	{"addlink", dashboard.ActionCreateLink, "addlink"},
}

// availableCommands derives the command set from the mounted profile.
func availableCommands(signedIn bool, profile *dashboard.Profile) []string {
	cmds := slices.Clone(baseCommands)
	if !signedIn {
		return cmds
	}
	cmds = append(cmds, sessionCommands...)
	if profile == nil {
		return cmds
	}
	for _, c := range panelCommands {
		if profile.HasPanel(c.panel) {
			cmds = append(cmds, c.name)
		}
	}
	for _, c := range actionCommands {
		if profile.Allows(c.action) {
			cmds = append(cmds, c.name)
		}
	}
	return cmds
}

// commandAliases maps alternative spellings to the listed command name.
var commandAliases = map[string]string{
	"geography": "geo",
}

func canonical(cmd string) string {
	if name, ok := commandAliases[cmd]; ok {
		return name
	}
	return cmd
}

func panelCommand(name string) (dashboard.PanelID, bool) {
	name = canonical(name)
	for _, c := range panelCommands {
		if c.name == name {
			return c.panel, true
		}
	}
	return "", false
}

func actionUsage(name string) string {
	for _, c := range actionCommands {
		if c.name == name {
			return c.usage
		}
	}
	return name
}

func knownCommand(cmd string) bool {
	if slices.Contains(baseCommands, cmd) || slices.Contains(sessionCommands, cmd) {
		return true
	}
	if _, ok := panelCommand(cmd); ok {
		return true
	}
	for _, c := range actionCommands {
		if c.name == cmd {
			return true
		}
	}
	return false
}

// runREPL starts a simple read–eval–print loop for the linkdash CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Commands the current view does not offer are
// refused without calling anything. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn). Always available:
//
//	help, login, register, health, exit | quit
//
// Signed in:
//
//	whoami, me, refresh [panel], passwd, stats, logout
//
// Depending on the role's dashboard:
//
//	users, workers, campaigns, links, analytics, clicks, geo [term], tasks
//	adduser, approve <id>, role <id> <role>, status <id> <status>,
//	addworker, activate <id>, suspend <id>, addcampaign, addlink
//
// Handler errors are printed and never stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("linkdash %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := canonical(parts[0]), parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		available := a.commands()
		if !slices.Contains(available, cmd) {
			if knownCommand(cmd) {
				printlnFn("Command not available:", cmd)
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands:", strings.Join(available, ", "))
		case "register":
			report(a.Register(ctx))
		case "login":
			report(a.Login(ctx))
		case "health":
			report(a.Health(ctx))
		case "whoami":
			report(a.WhoAmI(ctx))
		case "me":
			report(a.Me(ctx))
		case "refresh":
			report(a.Refresh(ctx, args))
		case "passwd":
			report(a.ChangePassword(ctx))
		case "stats":
			report(a.Stats(ctx))
		case "logout":
			report(a.Logout(ctx))
		default:
			if panel, ok := panelCommand(cmd); ok {
				report(a.Show(ctx, panel, args))
			} else {
				report(a.Act(ctx, cmd, args))
			}
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}
