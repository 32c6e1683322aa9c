package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/client"
	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/client/netmon"
	"github.com/dmitrijs2005/wellsync/internal/client/store"
	"github.com/dmitrijs2005/wellsync/internal/client/syncmanager"
	"github.com/dmitrijs2005/wellsync/internal/logging"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 7, 1, 9, 30, 0, 0, time.UTC)

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

type fakeAuth struct {
	regUser string
	regPass []byte
	regErr  error

	onlineUser string
	onlinePass []byte
	onlineID   string
	onlineErr  error

	offlineUser string
	offlineID   string
	offlineErr  error

	saved []client.Tokens

	clearCalled bool
	clearErr    error
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}
func (f *fakeAuth) OnlineLogin(_ context.Context, user string, pass []byte) (string, error) {
	f.onlineUser, f.onlinePass = user, append([]byte(nil), pass...)
	return f.onlineID, f.onlineErr
}
func (f *fakeAuth) OfflineLogin(_ context.Context, user string, _ []byte) (string, error) {
	f.offlineUser = user
	return f.offlineID, f.offlineErr
}
func (f *fakeAuth) SaveTokens(_ context.Context, t client.Tokens) error {
	f.saved = append(f.saved, t)
	return nil
}
func (f *fakeAuth) ClearOfflineData(context.Context) error {
	f.clearCalled = true
	return f.clearErr
}
func (f *fakeAuth) Close(context.Context) error { return nil }
func (f *fakeAuth) Ping(context.Context) error  { return nil }

// fakeEngine attaches the real store like the sync manager does, without
// any remote.
type fakeEngine struct {
	st *store.Store

	initialized []string
	cleanups    int

	result syncmanager.Result
	synced int
}

func (f *fakeEngine) Initialize(ctx context.Context, userID string) error {
	f.initialized = append(f.initialized, userID)
	return f.st.Initialize(ctx, userID)
}
func (f *fakeEngine) Cleanup() {
	f.cleanups++
	f.st.Cleanup()
}
func (f *fakeEngine) SyncAll(context.Context) (syncmanager.Result, error) {
	f.synced++
	return f.result, nil
}
func (f *fakeEngine) GetSyncStatus(ctx context.Context) (models.SyncStatusReport, error) {
	counts, err := f.st.Counters(ctx)
	if err != nil {
		return models.SyncStatusReport{}, err
	}
	rep := models.SyncStatusReport{PendingCounts: map[models.Category]int{}, FailedCounts: map[models.Category]int{}}
	for c, n := range counts {
		rep.PendingCounts[c] = n.Pending
		rep.FailedCounts[c] = n.Failed
	}
	return rep, nil
}

type testApp struct {
	*App
	auth    *fakeAuth
	engine  *fakeEngine
	monitor *netmon.Monitor
	out     *bytes.Buffer
}

func newTestApp(t *testing.T, lines ...string) *testApp {
	t.Helper()
	st, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "cli.db"), nil,
		store.WithClock(func() time.Time { return t0 }))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	ta := &testApp{
		auth:    &fakeAuth{onlineID: "u-1"},
		engine:  &fakeEngine{st: st},
		monitor: netmon.New(nil, 0, nil),
		out:     &bytes.Buffer{},
	}
	ta.App = &App{
		authService: ta.auth,
		store:       st,
		engine:      ta.engine,
		network:     ta.monitor,
		logger:      logging.NewDiscardLogger(),
		reader:      readerFromLines(lines...),
		out:         ta.out,
		now:         func() time.Time { return t0 },
	}
	return ta
}

// login attaches user u-1 without touching the input reader.
func (ta *testApp) login(t *testing.T) {
	t.Helper()
	require.NoError(t, ta.engine.Initialize(context.Background(), "u-1"))
	ta.userID, ta.userName = "u-1", "alice"
}

func stubInputs(t *testing.T, username string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}
