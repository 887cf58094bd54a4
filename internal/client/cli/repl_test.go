package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/azhukov/campus-navigator/internal/client/models"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	kinds    []models.FacilityKind
	args     [][]string
	verdicts []bool
	err      error
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error  { return f.record("whoami") }
func (f *fakeExec) SetRole(ctx context.Context) error { return f.record("setrole") }

func (f *fakeExec) ListFacilities(ctx context.Context, kind models.FacilityKind) error {
	f.kinds = append(f.kinds, kind)
	return f.record("facilities")
}
func (f *fakeExec) UpdateOccupancy(ctx context.Context, args []string) error {
	f.args = append(f.args, args)
	return f.record("occupancy")
}
func (f *fakeExec) PendingUpdates(ctx context.Context) error { return f.record("pending") }
func (f *fakeExec) ResolveUpdate(ctx context.Context, approve bool, args []string) error {
	f.verdicts = append(f.verdicts, approve)
	f.args = append(f.args, args)
	return f.record("resolve-update")
}

func (f *fakeExec) ReportFault(ctx context.Context) error { return f.record("report") }
func (f *fakeExec) ListFaults(ctx context.Context) error  { return f.record("faults") }
func (f *fakeExec) TriageFault(ctx context.Context, args []string) error {
	f.args = append(f.args, args)
	return f.record("triage")
}

func (f *fakeExec) Book(ctx context.Context) error         { return f.record("book") }
func (f *fakeExec) ListBookings(ctx context.Context) error { return f.record("bookings") }
func (f *fakeExec) ShowSchedule(ctx context.Context) error { return f.record("schedule") }
func (f *fakeExec) ResolveBooking(ctx context.Context, approve bool, args []string) error {
	f.verdicts = append(f.verdicts, approve)
	return f.record("resolve-booking")
}

func (f *fakeExec) ListRoleRequests(ctx context.Context) error { return f.record("role-requests") }
func (f *fakeExec) ResolveRoleRequest(ctx context.Context, approve bool, args []string) error {
	f.verdicts = append(f.verdicts, approve)
	return f.record("resolve-role")
}

func (f *fakeExec) ListUsers(ctx context.Context) error     { return f.record("users") }
func (f *fakeExec) ShowStats(ctx context.Context) error     { return f.record("stats") }
func (f *fakeExec) ShowRecurring(ctx context.Context) error { return f.record("recurring") }

func (f *fakeExec) Inbox(ctx context.Context) error { return f.record("inbox") }
func (f *fakeExec) MarkRead(ctx context.Context, args []string) error {
	f.args = append(f.args, args)
	return f.record("read")
}
func (f *fakeExec) MarkAllRead(ctx context.Context) error { return f.record("read-all") }

func muteOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = strings.TrimSpace(strings.Trim(strings.TrimSpace(sprint(v)), "\n"))
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func sprint(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if e, ok := v.(error); ok {
		return e.Error()
	}
	return ""
}

func runLines(t *testing.T, exec *fakeExec, lines ...string) {
	t.Helper()
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "(test)" }, sc)
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	muteOutput(t)
	exec := &fakeExec{}

	runLines(t, exec,
		"help",
		"login",
		"libraries",
		"labs",
		"classrooms",
		"occupancy lab 2 15 open",
		"report",
		"schedule",
		"users",
		"stats",
		"recurring",
		"read 7",
		"exit",
	)

	want := []string{"login", "facilities", "facilities", "facilities", "occupancy", "report", "schedule", "users", "stats", "recurring", "read"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls[%d] = %q, want %q (all: %v)", i, exec.calls[i], want[i], exec.calls)
		}
	}

	wantKinds := []models.FacilityKind{models.FacilityLibrary, models.FacilityLab, models.FacilityClassroom}
	for i, k := range wantKinds {
		if exec.kinds[i] != k {
			t.Fatalf("kinds[%d] = %q, want %q", i, exec.kinds[i], k)
		}
	}

	if got := exec.args[0]; len(got) != 4 || got[0] != "lab" || got[3] != "open" {
		t.Fatalf("occupancy args = %v", got)
	}
	if got := exec.args[1]; len(got) != 1 || got[0] != "7" {
		t.Fatalf("read args = %v", got)
	}
}

func TestRunREPL_ApproveRejectVerdicts(t *testing.T) {
	muteOutput(t)
	exec := &fakeExec{loggedIn: true}

	runLines(t, exec,
		"approve-update lab 1",
		"reject-update lab 2 too crowded",
		"approve-booking 3",
		"reject-role 4 not qualified",
		"exit",
	)

	want := []bool{true, false, true, false}
	if len(exec.verdicts) != len(want) {
		t.Fatalf("verdicts = %v", exec.verdicts)
	}
	for i := range want {
		if exec.verdicts[i] != want[i] {
			t.Fatalf("verdicts[%d] = %v, want %v", i, exec.verdicts[i], want[i])
		}
	}
}

func TestRunREPL_CommandErrorsAreReportedNotFatal(t *testing.T) {
	lines := muteOutput(t)
	exec := &fakeExec{err: errors.New("backend said no")}

	runLines(t, exec, "faults", "inbox", "exit")

	if len(exec.calls) != 2 {
		t.Fatalf("loop must survive errors, calls = %v", exec.calls)
	}
	found := false
	for _, l := range *lines {
		if strings.Contains(l, "backend said no") {
			found = true
		}
	}
	if !found {
		t.Fatalf("error was not reported: %v", *lines)
	}
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	lines := muteOutput(t)
	exec := &fakeExec{}

	runLines(t, exec, "frobnicate", "exit")

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected dispatch: %v", exec.calls)
	}
	found := false
	for _, l := range *lines {
		if strings.Contains(l, "Unknown command") {
			found = true
		}
	}
	if !found {
		t.Fatalf("unknown command not reported: %v", *lines)
	}
}

func TestRunREPL_HelpTracksLoginState(t *testing.T) {
	lines := muteOutput(t)
	exec := &fakeExec{}

	runLines(t, exec, "help", "login", "help", "exit")

	var sawLoggedOut, sawLoggedIn bool
	for _, l := range *lines {
		if strings.Contains(l, "register, login, exit") {
			sawLoggedOut = true
		}
		if strings.Contains(l, "whoami") {
			sawLoggedIn = true
		}
	}
	if !sawLoggedOut || !sawLoggedIn {
		t.Fatalf("help output wrong: %v", *lines)
	}
}
