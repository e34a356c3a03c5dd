package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/linkdash/internal/client/client"
	"github.com/dmitrijs2005/linkdash/internal/client/dashboard"
	"github.com/dmitrijs2005/linkdash/internal/client/models"
	"github.com/dmitrijs2005/linkdash/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// authFailure maps an auth workflow error to the line shown to the user.
func authFailure(err error, fallback string) string {
	if errors.Is(err, client.ErrInvalidRequest) {
		return dashboard.MsgRequiredFields
	}
	return dashboard.FailureText(err, fallback)
}

// Register prompts for username, email and password and submits a
// registration. The account starts pending, so no session is created; the
// server message is printed.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	msg, err := a.auth.Register(ctx, username, email, password)
	if err != nil {
		printlnFn(authFailure(err, "Registration failed"))
		return nil
	}
	if msg == "" {
		msg = "Registration successful"
	}
	printlnFn(msg)
	return nil
}

// Login prompts for credentials, authenticates and hands the session to the
// router, which persists it and mounts the role's dashboard.
func (a *App) Login(ctx context.Context) error {
	if sess, ok := a.router.Session(); ok {
		printlnFn(fmt.Sprintf("Already signed in as %s. Use 'logout' first.", sess.Identity.Username))
		return nil
	}

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.auth.Login(ctx, username, password)
	if err != nil {
		a.logger.Info(ctx, "login unsuccessful", "user", username, "err", err)
		printlnFn(authFailure(err, "Login failed"))
		return nil
	}

	state, err := a.router.SignIn(ctx, sess)
	if err != nil {
		printlnFn("Login failed: the session could not be saved")
		return nil
	}
	a.announce(state)
	return nil
}

// Logout clears the persisted session and unmounts the dashboard. The
// client is signed out even when clearing the store fails; that error is
// returned.
func (a *App) Logout(ctx context.Context) error {
	err := a.router.SignOut(ctx)
	printlnFn("Signed out")
	return err
}

// ChangePassword prompts for the current and a new password (twice) and
// submits the change for the signed-in account.
func (a *App) ChangePassword(ctx context.Context) error {
	sess, ok := a.router.Session()
	if !ok {
		return nil
	}

	current, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	confirm, err := getPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(next, confirm) {
		printlnFn("Passwords do not match")
		return nil
	}

	msg, err := a.auth.ChangePassword(ctx, sess.Token, current, next)
	if err != nil {
		printlnFn(authFailure(err, "Failed to change password"))
		return nil
	}
	if msg == "" {
		msg = "Password changed successfully"
	}
	printlnFn(msg)
	return nil
}

// Health queries GET /health and updates the connectivity mode.
func (a *App) Health(ctx context.Context) error {
	h, err := a.auth.Ping(ctx)
	if err != nil {
		a.setMode(ModeOffline)
		printlnFn(dashboard.FailureText(err, "Health check failed"))
		return nil
	}
	a.setMode(ModeOnline)

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Status:\t%s\n", h.Status)
	if h.Message != "" {
		fmt.Fprintf(w, "Message:\t%s\n", h.Message)
	}
	if h.Version != "" {
		fmt.Fprintf(w, "Version:\t%s\n", h.Version)
	}
	if h.Database != "" {
		fmt.Fprintf(w, "Database:\t%s\n", h.Database)
	}
	return w.Flush()
}

// WhoAmI prints the identity stored with the session.
func (a *App) WhoAmI(ctx context.Context) error {
	sess, ok := a.router.Session()
	if !ok {
		return nil
	}
	return a.printIdentity(sess.Identity)
}

// Me fetches the current identity from the server.
func (a *App) Me(ctx context.Context) error {
	sess, ok := a.router.Session()
	if !ok {
		return nil
	}
	id, err := a.identify(ctx, sess.Token)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			printlnFn("The server rejected the session. Use 'logout' and sign in again.")
			return nil
		}
		printlnFn(dashboard.FailureText(err, "Failed to fetch profile"))
		return nil
	}
	return a.printIdentity(id)
}

func (a *App) printIdentity(u models.Identity) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", u.ID)
	fmt.Fprintf(w, "Username:\t%s\n", u.Username)
	fmt.Fprintf(w, "Email:\t%s\n", u.Email)
	fmt.Fprintf(w, "Role:\t%s\n", u.Role)
	fmt.Fprintf(w, "Status:\t%s\n", u.Status)
	if u.ParentID != nil {
		fmt.Fprintf(w, "Parent:\t%s\n", *u.ParentID)
	}
	if u.SubscriptionStatus != "" {
		fmt.Fprintf(w, "Subscription:\t%s %s\n", u.SubscriptionStatus, u.SubscriptionExpires)
	}
	if u.LastLogin != "" {
		fmt.Fprintf(w, "Last login:\t%s\n", u.LastLogin)
	}
	return w.Flush()
}
