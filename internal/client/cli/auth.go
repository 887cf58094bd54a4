package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/azhukov/campus-navigator/internal/client/models"
	"github.com/azhukov/campus-navigator/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register prompts for credentials and creates an account. The session is
// live immediately afterwards; the profile may briefly show the assumed
// student role until the server confirms it.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Register(ctx, email, password)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s! You are signed in as %s.", user.Email, user.Role))
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Signed in as %s (%s).", user.Email, user.Role))
	return nil
}

// Logout discards the saved token and the in-memory profile.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Signed out.")
	return nil
}

// WhoAmI prints the current profile.
func (a *App) WhoAmI(ctx context.Context) error {
	st := a.session.Snapshot()
	if !st.LoggedIn() {
		printlnFn("Not signed in.")
		return nil
	}
	u := st.User
	line := fmt.Sprintf("%s  role=%s", u.Email, u.Role)
	if u.Department != "" {
		line += "  department=" + u.Department
	}
	if u.ManagerType != "" {
		line += "  manager_type=" + u.ManagerType
	}
	printlnFn(line)
	return nil
}

// SetRole prompts for the desired role and submits the change. Elevated
// roles go through an admin-approved request; the printed outcome reflects
// what the server decided.
func (a *App) SetRole(ctx context.Context) error {
	roleText, err := getSimpleText(a.reader, "Role (student/lecturer/manager)", os.Stdout)
	if err != nil {
		return err
	}
	role := models.Role(roleText)
	if !role.Valid() {
		return fmt.Errorf("unknown role %q", roleText)
	}

	var reason, managerType string
	if role == models.RoleLecturer || role == models.RoleManager {
		reason, err = getMultiline(a.reader, "Why do you need this role?", os.Stdout)
		if err != nil {
			return err
		}
	}
	if role == models.RoleManager {
		managerType, err = getSimpleText(a.reader, "Manager type (library/lab/classroom)", os.Stdout)
		if err != nil {
			return err
		}
	}

	user, err := a.session.SetRole(ctx, role, reason, managerType)
	if err != nil {
		if errors.Is(err, session.ErrSessionExpired) {
			printlnFn("Your session expired, please log in again.")
		}
		return err
	}

	if user.Role == role {
		printlnFn(fmt.Sprintf("Role changed to %s.", user.Role))
	} else {
		printlnFn(fmt.Sprintf("Request submitted; your role stays %s until it is approved.", user.Role))
	}
	return nil
}
