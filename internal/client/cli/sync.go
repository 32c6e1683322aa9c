package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
)

// Sync runs a full pass now. Offline the pass is skipped.
func (a *App) Sync(ctx context.Context) error {
	res, err := a.engine.SyncAll(ctx)
	if err != nil {
		return err
	}
	if res.Skipped {
		fmt.Fprintln(a.out, "Offline, nothing was sent")
		return nil
	}

	fmt.Fprintf(a.out, "Synced: %d processed, %d errors\n", res.Processed, res.Errors)
	for _, c := range models.Categories {
		r, ok := res.Categories[c]
		if !ok || (r.Pushed == 0 && r.Pulled == 0 && r.Errors() == 0 && r.Deferred == 0) {
			continue
		}
		line := fmt.Sprintf("  %-14s pushed %d, pulled %d", c, r.Pushed, r.Pulled)
		if r.Failed > 0 {
			line += fmt.Sprintf(", failed %d", r.Failed)
		}
		if r.Deferred > 0 {
			line += fmt.Sprintf(", waiting %d", r.Deferred)
		}
		if r.Err != nil {
			line += fmt.Sprintf(" (%v)", r.Err)
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// Status prints the sync status surface and the network state.
func (a *App) Status(ctx context.Context) error {
	rep, err := a.engine.GetSyncStatus(ctx)
	if err != nil {
		return err
	}

	st := a.network.State()
	fmt.Fprintf(a.out, "Network: connected=%t reachability=%s (%s)\n", st.Connected, st.Reachability, a.mode())
	for _, c := range models.Categories {
		fmt.Fprintf(a.out, "  %-14s pending %d, failed %d\n", c, rep.PendingCounts[c], rep.FailedCounts[c])
	}
	last := "never"
	if rep.LastSyncAt != nil {
		last = rep.LastSyncAt.Local().Format(time.DateTime)
	}
	fmt.Fprintf(a.out, "Last sync: %s\n", last)
	return nil
}

// SetOnline flips the connected flag. Going online starts a sync in the
// background.
func (a *App) SetOnline(_ context.Context, online bool) error {
	a.network.SetConnected(online)
	fmt.Fprintf(a.out, "Now %s\n", a.mode())
	return nil
}
