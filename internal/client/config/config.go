package config

import (
	"os"
	"time"
)

// Config holds runtime settings of the client side sync engine.
type Config struct {
	ServerEndpointAddr  string
	DatabasePath        string
	OnlineCheckInterval time.Duration
	SyncInterval        time.Duration
	RequestTimeout      time.Duration
	// CatalogTTL bounds how long a pulled exercises response is reused.
	CatalogTTL time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "wellsync.db"
	c.OnlineCheckInterval = 3 * time.Second
	c.SyncInterval = time.Minute
	c.RequestTimeout = 10 * time.Second
	c.CatalogTTL = 15 * time.Minute
}

// LoadConfig applies defaults, then the JSON file and flags found in args
// (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is LoadConfig over os.Args that panics on malformed input.
func MustLoad() *Config {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}
