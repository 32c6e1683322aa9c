// Package config loads runtime configuration for the WellSync client.
//
// Sources, later ones override earlier ones:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags.
//
// Supported flags
//
//	-a string   address:port of the remote store gRPC endpoint
//	-d string   path of the embedded SQLite database
//	-i int      reachability check interval (seconds)
//	-s int      periodic sync interval (seconds)
//	-t int      per-call remote request timeout (seconds)
//
// JSON durations accept "3s" style strings or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "wellsync.db",
//	  "online_check_interval": "3s",
//	  "sync_interval": "1m",
//	  "request_timeout": "10s",
//	  "catalog_ttl": "15m"
//	}
package config
