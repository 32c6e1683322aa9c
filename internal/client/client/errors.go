package client

import (
	"errors"

	"github.com/dmitrijs2005/wellsync/internal/common"
)

var (
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is the shared sentinel, so callers may match either name.
	ErrUnauthorized = common.ErrorUnauthorized

	// ErrLocalDataNotAvailable is returned by offline login before any
	// successful online login on this device.
	ErrLocalDataNotAvailable = errors.New("no local credentials, log in online first")
)
