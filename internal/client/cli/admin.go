package cli

import (
	"context"
	"fmt"
)

// ListUsers prints the admin user directory.
func (a *App) ListUsers(ctx context.Context) error {
	users, err := a.admin.Users(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		printlnFn("No users.")
		return nil
	}

	for _, u := range users {
		line := fmt.Sprintf("#%-3d %-30s %-8s", u.ID, u.Email, u.Role)
		if u.Department != "" {
			line += " " + u.Department
		}
		if u.ManagerType != "" {
			line += " (" + u.ManagerType + ")"
		}
		if !u.DateJoined.IsZero() {
			line += "  joined " + u.DateJoined.Format("2006-01-02")
		}
		printlnFn(line)
	}
	return nil
}

// ShowStats prints the admin console overview.
func (a *App) ShowStats(ctx context.Context) error {
	stats, err := a.admin.Stats(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Users: %d (students %d, lecturers %d, managers %d, admins %d)",
		stats.Users.Total, stats.Users.Students, stats.Users.Lecturers,
		stats.Users.Managers, stats.Users.Admins))
	printlnFn(fmt.Sprintf("Faults: %d total, %d open", stats.Faults.Total, stats.Faults.Open))
	printlnFn(fmt.Sprintf("Pending role requests: %d", stats.PendingRoleRequests))
	return nil
}

// ShowRecurring prints locations with repeated faults or overloads.
func (a *App) ShowRecurring(ctx context.Context) error {
	report, err := a.admin.RecurringIssues(ctx)
	if err != nil {
		return err
	}
	if len(report.Faults) == 0 && len(report.Overloads) == 0 {
		printlnFn("No recurring issues.")
		return nil
	}

	if len(report.Faults) > 0 {
		printlnFn("Recurring faults:")
		for _, f := range report.Faults {
			printlnFn(fmt.Sprintf("  %dx %-12s %s %s", f.Count, f.Category, f.Building, f.Room))
		}
	}
	if len(report.Overloads) > 0 {
		printlnFn("Recurring overloads:")
		for _, o := range report.Overloads {
			printlnFn(fmt.Sprintf("  %dx %-12s %s %s", o.Count, o.ResourceType, o.Building, o.Room))
		}
	}
	return nil
}
