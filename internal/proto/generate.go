// Package proto holds the wellsync.v1.SyncService contract generated from
// wellsync.proto. The standard grpc.health.v1 service runs next to it on
// the same server.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative wellsync.proto
