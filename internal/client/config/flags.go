package config

import (
	"flag"
	"os"

	"github.com/azhukov/campus-navigator/internal/flagx"
)

// parseFlags applies command-line overrides. Flags win over the file and
// the environment. Only the flags this stage owns are picked out of
// os.Args, so -c/-config (consumed by the JSON stage) passes through
// untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-s", "-server",
		"-t", "-token-file",
		"-d", "-cache-db",
	})

	fs := flag.NewFlagSet("navigator", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "campus server base URL")
	fs.StringVar(&cfg.ServerURL, "s", cfg.ServerURL, "campus server base URL (short)")
	fs.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to the saved session token")
	fs.StringVar(&cfg.TokenFile, "t", cfg.TokenFile, "path to the saved session token (short)")
	fs.StringVar(&cfg.CacheDB, "cache-db", cfg.CacheDB, "path to the local occupancy cache")
	fs.StringVar(&cfg.CacheDB, "d", cfg.CacheDB, "path to the local occupancy cache (short)")

	_ = fs.Parse(args)
}
