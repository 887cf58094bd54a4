package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/azhukov/campus-navigator/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	SetRole(ctx context.Context) error

	ListFacilities(ctx context.Context, kind models.FacilityKind) error
	UpdateOccupancy(ctx context.Context, args []string) error
	PendingUpdates(ctx context.Context) error
	ResolveUpdate(ctx context.Context, approve bool, args []string) error

	ReportFault(ctx context.Context) error
	ListFaults(ctx context.Context) error
	TriageFault(ctx context.Context, args []string) error

	Book(ctx context.Context) error
	ListBookings(ctx context.Context) error
	ShowSchedule(ctx context.Context) error
	ResolveBooking(ctx context.Context, approve bool, args []string) error

	ListRoleRequests(ctx context.Context) error
	ResolveRoleRequest(ctx context.Context, approve bool, args []string) error

	ListUsers(ctx context.Context) error
	ShowStats(ctx context.Context) error
	ShowRecurring(ctx context.Context) error

	Inbox(ctx context.Context) error
	MarkRead(ctx context.Context, args []string) error
	MarkAllRead(ctx context.Context) error
}

const helpLoggedOut = "Available commands: register, login, exit"

const helpLoggedIn = `Available commands:
  whoami, setrole, logout, exit
  libraries | labs | classrooms      occupancy panels
  occupancy <kind> <id> <n> [open|closed]
  pending, approve-update <kind> <id>, reject-update <kind> <id> [reason]
  report, faults, triage <id>
  book, bookings, schedule
  approve-booking <id>, reject-booking <id> [reason]
  role-requests, approve-role <id>, reject-role <id> [reason]
  users, stats, recurring
  inbox, read <id>, read-all`

// runREPL reads commands from the scanner and dispatches to a until EOF or
// "exit". Errors from command handlers are printed, never fatal: the loop
// stays alive so the user can retry or course-correct.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("campus %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return nil

	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.WhoAmI(ctx)
	case "setrole":
		return a.SetRole(ctx)

	case "libraries":
		return a.ListFacilities(ctx, models.FacilityLibrary)
	case "labs":
		return a.ListFacilities(ctx, models.FacilityLab)
	case "classrooms":
		return a.ListFacilities(ctx, models.FacilityClassroom)
	case "occupancy":
		return a.UpdateOccupancy(ctx, args)
	case "pending":
		return a.PendingUpdates(ctx)
	case "approve-update":
		return a.ResolveUpdate(ctx, true, args)
	case "reject-update":
		return a.ResolveUpdate(ctx, false, args)

	case "report":
		return a.ReportFault(ctx)
	case "faults":
		return a.ListFaults(ctx)
	case "triage":
		return a.TriageFault(ctx, args)

	case "book":
		return a.Book(ctx)
	case "bookings":
		return a.ListBookings(ctx)
	case "schedule":
		return a.ShowSchedule(ctx)
	case "approve-booking":
		return a.ResolveBooking(ctx, true, args)
	case "reject-booking":
		return a.ResolveBooking(ctx, false, args)

	case "role-requests":
		return a.ListRoleRequests(ctx)
	case "approve-role":
		return a.ResolveRoleRequest(ctx, true, args)
	case "reject-role":
		return a.ResolveRoleRequest(ctx, false, args)

	case "users":
		return a.ListUsers(ctx)
	case "stats":
		return a.ShowStats(ctx)
	case "recurring":
		return a.ShowRecurring(ctx)

	case "inbox":
		return a.Inbox(ctx)
	case "read":
		return a.MarkRead(ctx, args)
	case "read-all":
		return a.MarkAllRead(ctx)

	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}
