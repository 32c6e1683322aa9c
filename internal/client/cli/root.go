package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if m := a.mode(); m != "" {
		s = s + string(m)
	}
	if n := a.pendingCount(); n > 0 {
		s = fmt.Sprintf("%s, %d pending", s, n)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root asks for credentials, starts the reachability watcher and serves the
// REPL until the user quits or input ends.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to WellSync CLI (type 'help' for commands)")

	if err := a.Login(ctx); err != nil {
		a.logger.Warn(ctx, "login failed", "error", err)
	}

	unsubscribe := a.store.Bridge().Subscribe(a.invalidateStatus)
	defer unsubscribe()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.network.Watch(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// invalidateStatus is the bridge subscriber. It runs on whichever goroutine
// committed the change, so it only marks the cached counts stale.
func (a *App) invalidateStatus() {
	a.countsFresh.Store(false)
}

// pendingCount returns the number of records not yet synced for the logged
// in user, re-reading the store only after a change was announced.
func (a *App) pendingCount() int {
	if a.store == nil || a.userID == "" {
		return 0
	}
	if a.countsFresh.Swap(true) && a.pendingUser == a.userID {
		return a.pending
	}

	counts, err := a.store.Counters(context.Background())
	if err != nil {
		a.countsFresh.Store(false)
		a.logger.Warn(context.Background(), "failed to read sync counters", "error", err)
		return 0
	}
	a.pending, a.pendingUser = 0, a.userID
	for _, c := range counts {
		a.pending += c.Pending
	}
	return a.pending
}
