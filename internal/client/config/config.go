package config

import (
	"path/filepath"
	"time"

	"github.com/azhukov/campus-navigator/internal/filex"
)

// Config holds runtime settings for the Campus Navigator CLI.
//
// Durations: IdentityTimeout bounds a single identity resolution,
// GraceWindow and SetRoleRetryDelay parameterize the post-registration
// tolerance policy, NotifyPollInterval and OnlineCheckInterval drive the
// background pollers.
type Config struct {
	ServerURL           string
	RequestTimeout      time.Duration
	IdentityTimeout     time.Duration
	GraceWindow         time.Duration
	SetRoleRetryDelay   time.Duration
	NotifyPollInterval  time.Duration
	OnlineCheckInterval time.Duration
	TokenFile           string
	CacheDB             string
}

const (
	defaultNotifyPollInterval  = 60 * time.Second
	defaultOnlineCheckInterval = 30 * time.Second
)

// LoadDefaults populates c with sensible defaults. Token and cache paths
// land in the per-user state directory when resolvable, next to the
// binary's working directory otherwise.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 15 * time.Second
	c.IdentityTimeout = 5 * time.Second
	c.GraceWindow = 5 * time.Second
	c.SetRoleRetryDelay = 1500 * time.Millisecond
	c.NotifyPollInterval = defaultNotifyPollInterval
	c.OnlineCheckInterval = defaultOnlineCheckInterval

	dir, err := filex.StateDir("campus-navigator")
	if err != nil {
		dir = "."
	}
	c.TokenFile = filepath.Join(dir, "token")
	c.CacheDB = filepath.Join(dir, "cache.db")
}

// Load constructs a Config, applies defaults, then overlays JSON file,
// environment and command-line flags. Later sources win.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	cfg.clampIntervals()
	return cfg
}

// clampIntervals restores the default poll intervals when an overlay set a
// non-positive value; the pollers hand these straight to time.NewTicker,
// which panics on anything below 1ns.
func (c *Config) clampIntervals() {
	if c.NotifyPollInterval <= 0 {
		c.NotifyPollInterval = defaultNotifyPollInterval
	}
	if c.OnlineCheckInterval <= 0 {
		c.OnlineCheckInterval = defaultOnlineCheckInterval
	}
}
