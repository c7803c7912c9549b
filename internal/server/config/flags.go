package config

import (
	"flag"
	"os"
	"time"

	"github.com/dberestov/taskdeck/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   data directory for the JSON documents
//	-w string   static web assets directory ("" disables serving)
//	-s string   token signing secret
//	-t int      token validity, hours
//
// Args are first filtered to the flags handled here via flagx.FilterArgs,
// avoiding collisions with flags owned by other components.
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-w", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DataDir, "d", config.DataDir, "data directory")
	fs.StringVar(&config.StaticDir, "w", config.StaticDir, "static web assets directory")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token signing secret")

	tokenValidity := fs.Int("t", int(config.TokenValidity.Hours()), "token validity (in hours)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// The whole-hour conversion applies only when -t was actually passed;
	// earlier layers may have set a sub-hour validity it would truncate.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenValidity = time.Duration(*tokenValidity) * time.Hour
		}
	})
	return nil
}
