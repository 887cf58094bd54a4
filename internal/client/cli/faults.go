package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/azhukov/campus-navigator/internal/client/models"
)

// ReportFault walks the user through a new fault report.
func (a *App) ReportFault(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	building, err := getSimpleText(a.reader, "Building", os.Stdout)
	if err != nil {
		return err
	}
	room, err := getSimpleText(a.reader, "Room number", os.Stdout)
	if err != nil {
		return err
	}
	severity, err := getSimpleText(a.reader, "Severity (low/medium/high/critical)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category (electrical/plumbing/equipment/other)", os.Stdout)
	if err != nil {
		return err
	}

	fault, err := a.faults.Report(ctx, models.FaultDraft{
		Title:       title,
		Description: description,
		Building:    building,
		RoomNumber:  room,
		Severity:    models.Severity(severity),
		Category:    category,
	})
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Fault #%d reported.", fault.ID))
	return nil
}

// ListFaults prints the reports visible to the current user.
func (a *App) ListFaults(ctx context.Context) error {
	faults, err := a.faults.List(ctx)
	if err != nil {
		return err
	}
	if len(faults) == 0 {
		printlnFn("No fault reports.")
		return nil
	}

	for _, f := range faults {
		line := fmt.Sprintf("#%-3d [%-11s] %-8s %-30s %s",
			f.ID, f.Status, f.Severity, f.Title, f.Location)
		if f.AssignedTo != "" {
			line += "  assigned: " + f.AssignedTo
		}
		printlnFn(line)
	}
	return nil
}

// TriageFault handles: triage <id>. The new status, assignee and severity
// are prompted for; empty answers leave the field unchanged.
func (a *App) TriageFault(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: triage <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad fault id %q", args[0])
	}

	var patch models.FaultPatch

	statusText, err := getSimpleText(a.reader, "New status (open/in_progress/resolved/closed, empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if statusText != "" {
		status := models.FaultStatus(statusText)
		patch.Status = &status
	}

	assignee, err := getSimpleText(a.reader, "Assign to (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if assignee != "" {
		patch.AssignedTo = &assignee
	}

	severityText, err := getSimpleText(a.reader, "Severity (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if severityText != "" {
		severity := models.Severity(severityText)
		patch.Severity = &severity
	}

	fault, err := a.faults.Triage(ctx, id, patch)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Fault #%d updated.", fault.ID))
	return nil
}
