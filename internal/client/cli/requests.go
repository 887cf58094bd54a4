package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/azhukov/campus-navigator/internal/client/models"
	"github.com/azhukov/campus-navigator/internal/client/schedule"
)

// Book walks the user through a room booking request.
func (a *App) Book(ctx context.Context) error {
	kindText, err := getSimpleText(a.reader, "Room type (classroom/lab)", os.Stdout)
	if err != nil {
		return err
	}
	kind, err := parseKind(kindText)
	if err != nil {
		return err
	}
	idText, err := getSimpleText(a.reader, "Room id", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		return fmt.Errorf("bad room id %q", idText)
	}
	date, err := getSimpleText(a.reader, "Date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	start, err := getSimpleText(a.reader, "Start time (HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	end, err := getSimpleText(a.reader, "End time (HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	purpose, err := getSimpleText(a.reader, "Purpose", os.Stdout)
	if err != nil {
		return err
	}
	attendeesText, err := getSimpleText(a.reader, "Expected attendees", os.Stdout)
	if err != nil {
		return err
	}
	attendees, _ := strconv.Atoi(attendeesText)

	req, err := a.requests.Book(ctx, models.RoomRequestDraft{
		RoomType:          kind,
		RoomID:            id,
		Purpose:           purpose,
		ExpectedAttendees: attendees,
		Date:              date,
		StartTime:         start,
		EndTime:           end,
	})
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Booking request #%d submitted (%s).", req.ID, req.Status))
	return nil
}

// ListBookings prints the user's booking requests.
func (a *App) ListBookings(ctx context.Context) error {
	bookings, err := a.requests.ListBookings(ctx)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		printlnFn("No booking requests.")
		return nil
	}

	for _, b := range bookings {
		printlnFn(fmt.Sprintf("#%-3d [%-8s] %s %s-%s %-9s %-20s %s",
			b.ID, b.Status, b.Date, b.StartTime, b.EndTime, b.RoomType, b.RoomName, b.Purpose))
	}
	return nil
}

// ShowSchedule renders the current week as an hour-by-day grid. Slots show
// the booking status initial (A/P/R) or stay blank.
func (a *App) ShowSchedule(ctx context.Context) error {
	bookings, err := a.requests.ListBookings(ctx)
	if err != nil {
		return err
	}

	days := schedule.WeekOf(time.Now())

	header := "       "
	for _, d := range days {
		header += fmt.Sprintf("%-7s", d.Format("Mon 02"))
	}
	printlnFn(header)

	for _, hour := range schedule.Hours() {
		row := fmt.Sprintf("%02d:00  ", hour)
		for _, day := range days {
			cell := "."
			if req := schedule.RequestAt(bookings, day, hour); req != nil {
				cell = strings.ToUpper(string(req.Status[0]))
			}
			row += fmt.Sprintf("%-7s", cell)
		}
		printlnFn(row)
	}
	printlnFn("A=approved P=pending R=rejected")
	return nil
}

// ResolveBooking handles approve-booking/reject-booking <id> [reason...].
func (a *App) ResolveBooking(ctx context.Context, approve bool, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: approve-booking|reject-booking <id> [reason]")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad request id %q", args[0])
	}

	if err := a.requests.ResolveBooking(ctx, id, approve, joinTail(args[1:])); err != nil {
		return err
	}
	printlnFn(verdictWord(approve) + ".")
	return nil
}

// ListRoleRequests prints pending role elevations (admin only).
func (a *App) ListRoleRequests(ctx context.Context) error {
	reqs, err := a.requests.ListRoleRequests(ctx)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		printlnFn("No role requests.")
		return nil
	}

	for _, r := range reqs {
		line := fmt.Sprintf("#%-3d %-30s wants %-8s", r.ID, r.Email, r.RequestedRole)
		if r.ManagerType != "" {
			line += " (" + r.ManagerType + ")"
		}
		if r.Reason != "" {
			line += "  reason: " + r.Reason
		}
		printlnFn(line)
	}
	return nil
}

// ResolveRoleRequest handles approve-role/reject-role <id> [reason...].
func (a *App) ResolveRoleRequest(ctx context.Context, approve bool, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: approve-role|reject-role <id> [reason]")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad request id %q", args[0])
	}

	if err := a.requests.ResolveRoleRequest(ctx, id, approve, joinTail(args[1:])); err != nil {
		return err
	}
	printlnFn(verdictWord(approve) + ".")
	return nil
}
