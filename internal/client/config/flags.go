package config

import (
	"flag"
	"os"

	"github.com/researchhub/hubcli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-u string   base URL of the API
//	-d string   session database path
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs so -c/-config (handled by
// parseJson) do not trip this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "u", cfg.APIURL, "base URL of the ResearchHub API")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "path of the local session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
