package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/flagx"
)

// parseFlags overlays cfg with the flags it owns. Intervals are given in
// whole seconds.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-i", "-s", "-t"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the remote store")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	onlineCheck := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "reachability check interval (in seconds)")
	syncEvery := fs.Int("s", int(cfg.SyncInterval.Seconds()), "periodic sync interval (in seconds)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "remote request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheck) * time.Second
	cfg.SyncInterval = time.Duration(*syncEvery) * time.Second
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
