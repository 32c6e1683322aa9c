package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/client/netmon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatus(t *testing.T) {
	assert.Equal(t, "", (&App{}).getStatus())
	assert.Equal(t, "(alice )", (&App{userName: "alice"}).getStatus())

	ta := newTestApp(t)
	assert.Equal(t, "(online)", ta.getStatus())

	ta.userName = "alice"
	ta.monitor.SetReachability(netmon.Unreachable)
	assert.Equal(t, "(alice offline)", ta.getStatus())
}

func TestRoot_LoginThenREPL(t *testing.T) {
	silencePrintln(t)
	ta := newTestApp(t, "today", "exit")
	stubInputs(t, "alice", []byte("pw"))

	ta.Run(context.Background())

	assert.True(t, ta.isLoggedIn())
	assert.Contains(t, ta.out.String(), "Welcome to WellSync CLI")
	assert.Contains(t, ta.out.String(), "No mood recorded today")
	assert.Equal(t, 1, ta.engine.cleanups)
}

func TestGetStatus_PendingFollowsBridge(t *testing.T) {
	ctx := context.Background()
	ta := newTestApp(t)
	ta.login(t)
	unsubscribe := ta.store.Bridge().Subscribe(ta.invalidateStatus)
	assert.Equal(t, "(alice online)", ta.getStatus())

	_, err := ta.store.RecordMood(ctx, models.Mood{Mood: "calm", Intensity: 5, RecordedAt: t0})
	require.NoError(t, err)
	assert.Equal(t, "(alice online, 1 pending)", ta.getStatus())

	// Without a notification the cached count is kept.
	unsubscribe()
	_, err = ta.store.RecordMood(ctx, models.Mood{Mood: "tired", Intensity: 3, RecordedAt: t0})
	require.NoError(t, err)
	assert.Equal(t, "(alice online, 1 pending)", ta.getStatus())

	ta.invalidateStatus()
	assert.Equal(t, "(alice online, 2 pending)", ta.getStatus())
}

func TestRoot_PromptShowsPendingAfterWrite(t *testing.T) {
	var prompts []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		prompts = append(prompts, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	ta := newTestApp(t, "mood", "7", "exit")
	stubInputs(t, "alice", []byte("pw"))

	ta.Run(context.Background())

	assert.Contains(t, prompts, "ws (alice online)> ")
	assert.Contains(t, prompts, "ws (alice online, 1 pending)> ")
	assert.Equal(t, 1, ta.engine.cleanups)
}
