package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", cfg.ServerURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.IdentityTimeout)
	assert.Equal(t, 5*time.Second, cfg.GraceWindow)
	assert.Equal(t, 1500*time.Millisecond, cfg.SetRoleRetryDelay)
	assert.Equal(t, 60*time.Second, cfg.NotifyPollInterval)
	assert.Equal(t, 30*time.Second, cfg.OnlineCheckInterval)
	assert.NotEmpty(t, cfg.TokenFile)
	assert.NotEmpty(t, cfg.CacheDB)
}

func TestParseJSONOverlaysOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"server_url": "https://campus.example.edu", "grace_window": "7s"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	origArgs := os.Args
	os.Args = []string{"navigator", "-c", path}
	defer func() { os.Args = origArgs }()

	var cfg Config
	cfg.LoadDefaults()
	parseJSON(&cfg)

	assert.Equal(t, "https://campus.example.edu", cfg.ServerURL)
	assert.Equal(t, 7*time.Second, cfg.GraceWindow)
	// untouched fields keep their defaults
	assert.Equal(t, 1500*time.Millisecond, cfg.SetRoleRetryDelay)
	assert.Equal(t, 60*time.Second, cfg.NotifyPollInterval)
}

func TestParseJSONNoFlagIsNoop(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"navigator"}
	defer func() { os.Args = origArgs }()

	var cfg Config
	cfg.LoadDefaults()
	before := cfg
	parseJSON(&cfg)

	assert.Equal(t, before, cfg)
}

func TestParseEnvOverlays(t *testing.T) {
	t.Setenv("CAMPUSNAV_SERVER_URL", "https://env.example.edu")
	t.Setenv("CAMPUSNAV_NOTIFY_POLL_INTERVAL", "90s")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "https://env.example.edu", cfg.ServerURL)
	assert.Equal(t, 90*time.Second, cfg.NotifyPollInterval)
	assert.Equal(t, 5*time.Second, cfg.IdentityTimeout)
}

func TestParseFlagsWinOverDefaults(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"navigator", "-s", "https://flag.example.edu", "-token-file", "/tmp/tok"}
	defer func() { os.Args = origArgs }()

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "https://flag.example.edu", cfg.ServerURL)
	assert.Equal(t, "/tmp/tok", cfg.TokenFile)
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"server_url": "https://file.example.edu", "token_file": "/tmp/file-tok"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	t.Setenv("CAMPUSNAV_SERVER_URL", "https://env.example.edu")

	origArgs := os.Args
	os.Args = []string{"navigator", "-c", path}
	defer func() { os.Args = origArgs }()

	cfg := Load()

	// env beats file, file beats defaults
	assert.Equal(t, "https://env.example.edu", cfg.ServerURL)
	assert.Equal(t, "/tmp/file-tok", cfg.TokenFile)
}

func TestLoadRejectsNonPositivePollIntervals(t *testing.T) {
	t.Setenv("CAMPUSNAV_NOTIFY_POLL_INTERVAL", "0")
	t.Setenv("CAMPUSNAV_ONLINE_CHECK_INTERVAL", "-5s")

	origArgs := os.Args
	os.Args = []string{"navigator"}
	defer func() { os.Args = origArgs }()

	cfg := Load()

	// the pollers feed these to time.NewTicker; zero or negative would panic
	assert.Equal(t, 60*time.Second, cfg.NotifyPollInterval)
	assert.Equal(t, 30*time.Second, cfg.OnlineCheckInterval)
}
