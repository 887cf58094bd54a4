package config

import (
	"encoding/json"
	"os"

	"github.com/azhukov/campus-navigator/internal/flagx"
	"github.com/azhukov/campus-navigator/internal/timex"
)

// jsonConfig is the DTO for the optional JSON config file. timex.Duration
// lets intervals be written as "5s" or as integer nanoseconds. Pointer
// fields distinguish "absent" from zero so partial files only override what
// they mention.
type jsonConfig struct {
	ServerURL           *string         `json:"server_url"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	IdentityTimeout     *timex.Duration `json:"identity_timeout"`
	GraceWindow         *timex.Duration `json:"grace_window"`
	SetRoleRetryDelay   *timex.Duration `json:"set_role_retry_delay"`
	NotifyPollInterval  *timex.Duration `json:"notify_poll_interval"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	TokenFile           *string         `json:"token_file"`
	CacheDB             *string         `json:"cache_db"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// No flag, no file, nothing happens. Read or syntax errors panic: a config
// file that was explicitly pointed at must not be half-applied silently.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.IdentityTimeout != nil {
		cfg.IdentityTimeout = jc.IdentityTimeout.Duration
	}
	if jc.GraceWindow != nil {
		cfg.GraceWindow = jc.GraceWindow.Duration
	}
	if jc.SetRoleRetryDelay != nil {
		cfg.SetRoleRetryDelay = jc.SetRoleRetryDelay.Duration
	}
	if jc.NotifyPollInterval != nil {
		cfg.NotifyPollInterval = jc.NotifyPollInterval.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.TokenFile != nil {
		cfg.TokenFile = *jc.TokenFile
	}
	if jc.CacheDB != nil {
		cfg.CacheDB = *jc.CacheDB
	}
}
