package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/homeboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   auth service base URL
//	-f string   files service base URL
//	-p string   profile service base URL
//	-u string   user-data service base URL
//	-m string   contact service base URL
//	-d string   local data directory
//	-t int      request timeout in seconds
//
// Args are filtered through flagx.FilterArgs so this stage ignores flags
// owned by other stages (-c/-config).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-p", "-u", "-m", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthEndpoint, "a", cfg.AuthEndpoint, "auth service base URL")
	fs.StringVar(&cfg.FilesEndpoint, "f", cfg.FilesEndpoint, "files service base URL")
	fs.StringVar(&cfg.ProfileEndpoint, "p", cfg.ProfileEndpoint, "profile service base URL")
	fs.StringVar(&cfg.UserDataEndpoint, "u", cfg.UserDataEndpoint, "user-data service base URL")
	fs.StringVar(&cfg.ContactEndpoint, "m", cfg.ContactEndpoint, "contact service base URL")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "local data directory")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
