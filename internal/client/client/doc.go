// Package client is the client side of the WellSync transport.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) for the
//     backend: Register/Login, Ping, the idempotent Create* calls used by
//     the push pass and the Get* calls used by the pull pass.
//  2. A gRPC implementation (see GRPCClient) that manages a connection,
//     injects the access token via an interceptor, transparently refreshes
//     an expired token once per expiry and maps gRPC status codes to
//     sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized (the same value as
// common.ErrorUnauthorized). Rejected payloads map to
// common.ErrorValidation.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation; a per-call timeout can be set
// with WithRequestTimeout.
package client
