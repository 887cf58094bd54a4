package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config for the environment stage. Pointer fields stay
// nil when the variable is unset, so the overlay only touches what the
// environment actually provides.
type envConfig struct {
	ServerURL           *string        `env:"CAMPUSNAV_SERVER_URL"`
	RequestTimeout      *time.Duration `env:"CAMPUSNAV_REQUEST_TIMEOUT"`
	IdentityTimeout     *time.Duration `env:"CAMPUSNAV_IDENTITY_TIMEOUT"`
	GraceWindow         *time.Duration `env:"CAMPUSNAV_GRACE_WINDOW"`
	SetRoleRetryDelay   *time.Duration `env:"CAMPUSNAV_SET_ROLE_RETRY_DELAY"`
	NotifyPollInterval  *time.Duration `env:"CAMPUSNAV_NOTIFY_POLL_INTERVAL"`
	OnlineCheckInterval *time.Duration `env:"CAMPUSNAV_ONLINE_CHECK_INTERVAL"`
	TokenFile           *string        `env:"CAMPUSNAV_TOKEN_FILE"`
	CacheDB             *string        `env:"CAMPUSNAV_CACHE_DB"`
}

func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerURL != nil {
		cfg.ServerURL = *ec.ServerURL
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	if ec.IdentityTimeout != nil {
		cfg.IdentityTimeout = *ec.IdentityTimeout
	}
	if ec.GraceWindow != nil {
		cfg.GraceWindow = *ec.GraceWindow
	}
	if ec.SetRoleRetryDelay != nil {
		cfg.SetRoleRetryDelay = *ec.SetRoleRetryDelay
	}
	if ec.NotifyPollInterval != nil {
		cfg.NotifyPollInterval = *ec.NotifyPollInterval
	}
	if ec.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = *ec.OnlineCheckInterval
	}
	if ec.TokenFile != nil {
		cfg.TokenFile = *ec.TokenFile
	}
	if ec.CacheDB != nil {
		cfg.CacheDB = *ec.CacheDB
	}
}
