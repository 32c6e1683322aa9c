package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageError_UnwrapAndAs(t *testing.T) {
	base := errors.New("disk full")
	err := fmt.Errorf("record mood: %w", NewStorageError("insert", base))

	var se *StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "insert", se.Op)
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "storage insert: disk full")
}

func TestNewStorageError_NilAndNoDoubleWrap(t *testing.T) {
	assert.NoError(t, NewStorageError("x", nil))

	inner := NewStorageError("inner", errors.New("boom"))
	outer := NewStorageError("outer", inner)
	assert.Same(t, inner, outer)
}

func TestTransportError_Unwrap(t *testing.T) {
	err := &TransportError{Op: "CreateMood", Err: ErrorUnauthorized}
	assert.ErrorIs(t, err, ErrorUnauthorized)
	assert.Equal(t, "transport CreateMood: unauthorized", err.Error())
}

func TestReconciliationError_Message(t *testing.T) {
	err := &ReconciliationError{EntityType: "mood", LocalID: "l1", ServerID: "s1", Reason: "unknown local id"}
	var re *ReconciliationError
	require.True(t, errors.As(fmt.Errorf("ack: %w", err), &re))
	assert.Equal(t, `reconcile mood local="l1" server="s1": unknown local id`, err.Error())
}
