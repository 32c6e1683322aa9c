// Package common contains shared constants, sentinel errors and the typed
// error taxonomy used across WellSync components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// MaxSessionTitleLength bounds the server-computed chat session title.
const MaxSessionTitleLength = 40

// DefaultSessionTitle is assigned to sessions created without a title until
// the first user message arrives.
const DefaultSessionTitle = "New conversation"
