package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/azhukov/campus-navigator/internal/client/api"
	"github.com/azhukov/campus-navigator/internal/client/config"
	"github.com/azhukov/campus-navigator/internal/client/guard"
	"github.com/azhukov/campus-navigator/internal/client/models"
	"github.com/azhukov/campus-navigator/internal/client/poll"
	"github.com/azhukov/campus-navigator/internal/client/repositories"
	"github.com/azhukov/campus-navigator/internal/client/services"
	"github.com/azhukov/campus-navigator/internal/client/session"
	"github.com/azhukov/campus-navigator/internal/client/storage"
	"github.com/azhukov/campus-navigator/internal/logging"
)

// Mode reflects the last known connectivity state.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App owns the wired client: session, services, pollers and the REPL state.
type App struct {
	config        *config.Config
	session       *session.Manager
	occupancy     services.OccupancyService
	faults        services.FaultService
	requests      services.RequestService
	notifications services.NotificationService
	admin         services.AdminService
	poller        *poll.Poller
	pinger        interface {
		Ping(ctx context.Context) error
	}
	repos  *repositories.Repositories
	log    logging.Logger
	reader *bufio.Reader

	// mode and unread are written by the watcher goroutines and read by
	// the REPL goroutine.
	mode   atomic.Value
	unread atomic.Int64
}

// NewApp wires the full client from the config: cache database, API client,
// token store, session manager, guard and services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	repos, err := repositories.InitDatabase(ctx, c.CacheDB)
	if err != nil {
		return nil, fmt.Errorf("error initializing cache database: %w", err)
	}

	apiClient := api.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	tokens := storage.NewFileStore(c.TokenFile)

	sess := session.New(apiClient, tokens,
		session.WithLogger(log),
		session.WithGraceWindow(c.GraceWindow),
		session.WithRetryDelay(c.SetRoleRetryDelay),
		session.WithIdentityTimeout(c.IdentityTimeout),
	)
	g := guard.New(sess)
	poller := poll.New(log)

	app := &App{
		config:        c,
		session:       sess,
		occupancy:     services.NewOccupancyService(apiClient, sess, repos.Occupancy, g, log),
		faults:        services.NewFaultService(apiClient, sess, g),
		requests:      services.NewRequestService(apiClient, sess, g),
		notifications: services.NewNotificationService(apiClient, sess, g, poller),
		admin:         services.NewAdminService(apiClient, sess, g),
		poller:        poller,
		pinger:        apiClient,
		repos:         repos,
		log:           log,
		reader:        bufio.NewReader(os.Stdin),
	}
	app.mode.Store(ModeOnline)
	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().LoggedIn()
}

func (a *App) currentMode() Mode {
	return a.mode.Load().(Mode)
}

func (a *App) setMode(mode Mode) {
	if a.mode.Swap(mode) != mode {
		printlnFn(fmt.Sprintf("Switched to %s mode", mode))
	}
}

// status renders the REPL prompt decoration: user, connectivity, unread count.
func (a *App) status() string {
	s := ""
	if st := a.session.Snapshot(); st.LoggedIn() {
		s = st.User.Email
		if st.User.Role != "" {
			s += "/" + string(st.User.Role)
		}
		s += " "
	}
	s += string(a.currentMode())
	if n := a.unread.Load(); n > 0 {
		s += fmt.Sprintf(" [%d unread]", n)
	}
	return "(" + s + ")"
}

// startConnectivityWatcher pings the server on an interval and flips the
// mode between online and offline.
func (a *App) startConnectivityWatcher(ctx context.Context) *poll.Subscription {
	return a.poller.Subscribe(ctx, "connectivity", a.config.OnlineCheckInterval, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()

		if err := a.pinger.Ping(pingCtx); err != nil {
			a.setMode(ModeOffline)
			return nil
		}
		a.setMode(ModeOnline)
		return nil
	})
}

// startNotificationWatcher keeps the unread counter in the prompt fresh.
func (a *App) startNotificationWatcher(ctx context.Context) *poll.Subscription {
	return a.notifications.Watch(ctx, a.config.NotifyPollInterval, func(items []models.Notification) {
		a.unread.Store(int64(services.Unread(items)))
	})
}

// Run restores the session, starts the background watchers and blocks in
// the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.repos.Close()

	if err := a.session.Bootstrap(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Campus Navigator CLI (type 'help' for commands)")

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		scanner := bufio.NewScanner(os.Stdin)
		runREPL(ctx, a, a.status, scanner)
		cancel()
		return nil
	})
	group.Go(func() error {
		sub := a.startConnectivityWatcher(ctx)
		<-ctx.Done()
		sub.Stop()
		return nil
	})
	group.Go(func() error {
		sub := a.startNotificationWatcher(ctx)
		<-ctx.Done()
		sub.Stop()
		return nil
	})

	return group.Wait()
}
