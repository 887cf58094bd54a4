package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/azhukov/campus-navigator/internal/client/api"
	"github.com/azhukov/campus-navigator/internal/client/models"
	"github.com/azhukov/campus-navigator/internal/client/storage"
	"github.com/azhukov/campus-navigator/internal/logging"
)

// ErrSessionExpired is returned when the backend definitively rejected the
// stored token and the session has been destroyed. The caller should send
// the user back to login.
var ErrSessionExpired = errors.New("session expired, please log in again")

const (
	defaultGraceWindow = 5 * time.Second
	defaultRetryDelay  = 1500 * time.Millisecond
	defaultMeTimeout   = 5 * time.Second
)

// State is a read-only snapshot of the session. User is a copy; mutating it
// does not affect the Manager.
type State struct {
	User           *models.User
	Loading        bool
	JustRegistered bool
}

// LoggedIn reports whether a profile is currently known.
func (s State) LoggedIn() bool { return s.User != nil }

// Manager owns the session state. One instance per application run;
// Bootstrap is called once, the other operations on explicit user action.
// Safe for concurrent use: background watchers may call Snapshot while the
// REPL mutates through the operations.
type Manager struct {
	auth   api.AuthAPI
	tokens storage.TokenStore
	log    logging.Logger

	graceWindow time.Duration
	retryDelay  time.Duration
	meTimeout   time.Duration
	grace       *gracePolicy

	mu           sync.Mutex
	user         *models.User
	loading      bool
	bootstrapped bool
}

// Option customizes a Manager.
type Option func(*Manager)

// WithLogger attaches a structured logger.
func WithLogger(log logging.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// WithGraceWindow overrides the 5s post-registration tolerance window.
func WithGraceWindow(d time.Duration) Option {
	return func(m *Manager) { m.graceWindow = d }
}

// WithRetryDelay overrides the 1.5s delay before the single set-role retry.
func WithRetryDelay(d time.Duration) Option {
	return func(m *Manager) { m.retryDelay = d }
}

// WithIdentityTimeout overrides the 5s upper bound on identity resolution.
func WithIdentityTimeout(d time.Duration) Option {
	return func(m *Manager) { m.meTimeout = d }
}

// WithClock injects the time source used by the grace window (tests).
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.grace = newGracePolicy(m.graceWindow, now) }
}

// New builds a Manager around the auth API and the token store. The session
// starts empty and loading until Bootstrap completes.
func New(auth api.AuthAPI, tokens storage.TokenStore, opts ...Option) *Manager {
	m := &Manager{
		auth:        auth,
		tokens:      tokens,
		log:         logging.Nop(),
		graceWindow: defaultGraceWindow,
		retryDelay:  defaultRetryDelay,
		meTimeout:   defaultMeTimeout,
		loading:     true,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.grace == nil {
		m.grace = newGracePolicy(m.graceWindow, nil)
	} else {
		// WithClock ran before a later WithGraceWindow could apply.
		m.grace.window = m.graceWindow
	}
	return m
}

// Snapshot returns a copy of the current session state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := State{Loading: m.loading, JustRegistered: m.grace.Active()}
	if m.user != nil {
		u := *m.user
		st.User = &u
	}
	return st
}

// Token returns the persisted bearer token, or "" when none is stored.
func (m *Manager) Token() string {
	token, err := m.tokens.Load()
	if err != nil {
		m.log.Warn(context.Background(), "token load failed", "err", err)
		return ""
	}
	return token
}

func (m *Manager) setUser(u *models.User) {
	m.mu.Lock()
	m.user = u
	m.loading = false
	m.mu.Unlock()
}

// Bootstrap resolves the persisted token into a user profile. It runs at
// most once per Manager; repeat calls are no-ops. Whatever happens, loading
// ends false.
func (m *Manager) Bootstrap(ctx context.Context) error {
	m.mu.Lock()
	if m.bootstrapped {
		m.mu.Unlock()
		return nil
	}
	m.bootstrapped = true
	m.mu.Unlock()

	token, err := m.tokens.Load()
	if err != nil {
		m.setUser(nil)
		return fmt.Errorf("bootstrap: %w", err)
	}
	if token == "" {
		m.log.Debug(ctx, "bootstrap: no stored token")
		m.setUser(nil)
		return nil
	}

	m.log.Debug(ctx, "bootstrap: resolving stored token")
	return m.resolveIdentity(ctx, token, m.grace.Active())
}

// resolveIdentity exchanges token for a profile, applying the failure
// policy: adopt the profile on success; on 401 clear the session unless
// skipOnError is set; on anything else leave the session untouched.
// loading always ends false.
func (m *Manager) resolveIdentity(ctx context.Context, token string, skipOnError bool) error {
	mctx, cancel := context.WithTimeout(ctx, m.meTimeout)
	defer cancel()

	user, err := m.auth.Me(mctx, token)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false

	switch {
	case err == nil:
		m.user = user
		return nil

	case errors.Is(err, api.ErrUnauthorized):
		if skipOnError {
			// Registration grace: the backend may not have committed the
			// fresh session yet. Keep token and user as they are.
			m.log.Warn(ctx, "identity check got 401 inside grace window, keeping session", "err", err)
			return err
		}
		m.log.Warn(ctx, "token rejected, clearing session", "err", err)
		if cerr := m.tokens.Clear(); cerr != nil {
			m.log.Error(ctx, "token clear failed", "err", cerr)
		}
		m.user = nil
		m.grace.Disarm()
		return err

	default:
		// Timeout, network failure, 5xx: the token may still be valid.
		m.log.Warn(ctx, "identity check failed transiently, keeping session", "err", err)
		return err
	}
}

// Login authenticates and adopts the returned credentials. On failure
// nothing changes.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	creds, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := storage.SaveVerified(m.tokens, creds.Token); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	m.setUser(creds.User)
	m.log.Info(ctx, "logged in", "email", email)
	return creds.User, nil
}

// Register creates an account, persists and verifies the returned token,
// arms the grace window, and resolves a profile: taken from the response
// when present, fetched once under the grace policy otherwise, and
// synthesized as a minimal student placeholder when even that fails.
// On success the returned user is never nil.
func (m *Manager) Register(ctx context.Context, email, password string) (*models.User, error) {
	creds, err := m.auth.Register(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if err := storage.SaveVerified(m.tokens, creds.Token); err != nil {
		// A corrupt stored token would break every follow-up call; fail
		// loudly instead of limping on.
		return nil, fmt.Errorf("register: %w", err)
	}

	// Armed before the user is set so any concurrent identity check already
	// sees the grace flag.
	m.grace.Arm()
	m.log.Info(ctx, "registered, grace window armed", "email", email)

	user := creds.User
	if user == nil {
		// One grace-protected identity attempt with the fresh token.
		if rerr := m.resolveIdentity(ctx, creds.Token, true); rerr != nil {
			m.log.Warn(ctx, "post-registration identity check failed", "err", rerr)
		}
		m.mu.Lock()
		user = m.user
		m.mu.Unlock()
	}
	if user == nil {
		// Placeholder so the UI can proceed to role selection instead of
		// dead-ending; ID stays zero until a later resolution fills it in.
		user = &models.User{Email: email, Role: models.RoleStudent}
	}
	m.setUser(user)
	return user, nil
}

// SetRole submits the role choice. A 401 inside the grace window is retried
// exactly once after the configured delay; a 401 outside it destroys the
// session and returns ErrSessionExpired.
func (m *Manager) SetRole(ctx context.Context, role models.Role, reason, managerType string) (*models.User, error) {
	token := m.Token()
	if token == "" {
		return nil, fmt.Errorf("set role: %w", ErrSessionExpired)
	}

	graceActive := m.grace.Active()

	var user *models.User
	backoff := retry.WithMaxRetries(1, retry.NewConstant(m.retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		u, err := m.auth.SetRole(ctx, token, role, reason, managerType)
		if err != nil {
			if errors.Is(err, api.ErrUnauthorized) && graceActive {
				m.log.Warn(ctx, "set-role got 401 inside grace window, retrying once", "err", err)
				return retry.RetryableError(err)
			}
			return err
		}
		user = u
		return nil
	})

	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			if graceActive {
				// Retry also failed; surface the failure but keep the
				// session, the token may still become valid.
				return nil, fmt.Errorf("set role: %w", err)
			}
			m.log.Warn(ctx, "set-role rejected outside grace window, clearing session")
			if cerr := m.tokens.Clear(); cerr != nil {
				m.log.Error(ctx, "token clear failed", "err", cerr)
			}
			m.setUser(nil)
			m.grace.Disarm()
			return nil, fmt.Errorf("set role: %w", ErrSessionExpired)
		}
		return nil, fmt.Errorf("set role: %w", err)
	}

	if user != nil {
		m.setUser(user)
		return user, nil
	}

	// Backend did not echo the profile; refresh it under the current grace
	// state.
	if rerr := m.resolveIdentity(ctx, token, graceActive); rerr != nil {
		m.log.Warn(ctx, "post-set-role identity refresh failed", "err", rerr)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, fmt.Errorf("set role: %w", api.ErrServer)
	}
	u := *m.user
	return &u, nil
}

// Logout destroys the token and the in-memory profile. Idempotent.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.tokens.Clear(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	m.setUser(nil)
	m.grace.Disarm()
	m.log.Info(ctx, "logged out")
	return nil
}
