package syncmanager

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/client/store"
	"github.com/dmitrijs2005/wellsync/internal/common"
	"golang.org/x/sync/errgroup"
)

// CategoryResult describes one category pass.
type CategoryResult struct {
	Category models.Category
	// Pushed counts acked records, Failed records left failed for retry.
	Pushed int
	Failed int
	// Deferred counts records waiting on a dependency, such as a message
	// whose session is not delivered yet.
	Deferred int
	// Pulled counts server rows that changed the store.
	Pulled int
	// Dropped counts reconciliation errors.
	Dropped int
	// Err is the error that ended the pass early, if any.
	Err error
}

// Errors counts every problem met by the pass.
func (r CategoryResult) Errors() int {
	n := r.Failed + r.Dropped
	if r.Err != nil && !errors.Is(r.Err, common.ErrSyncInProgress) {
		n++
	}
	return n
}

// Result aggregates a SyncAll run.
type Result struct {
	// Skipped is set when the pass did not run because the device is offline.
	Skipped    bool
	Processed  int
	Errors     int
	Categories map[models.Category]CategoryResult
}

// SyncAll runs one pass per category concurrently. A failing category does
// not affect the others. Offline, it returns a skipped result without any
// remote call. The sync time is recorded only when some category completed
// its pass.
func (m *Manager) SyncAll(ctx context.Context) (Result, error) {
	if _, err := m.store.UserID(); err != nil {
		return Result{}, err
	}
	if !m.monitor.Online() {
		m.logger.Debug(ctx, "offline, sync skipped")
		return Result{Skipped: true}, nil
	}

	var (
		g   errgroup.Group
		mu  sync.Mutex
		ok  bool
		res = Result{Categories: make(map[models.Category]CategoryResult, len(models.Categories))}
	)
	for _, c := range models.Categories {
		g.Go(func() error {
			cr := m.SyncCategory(ctx, c)
			mu.Lock()
			res.Categories[c] = cr
			res.Processed += cr.Pushed + cr.Pulled
			res.Errors += cr.Errors()
			ok = ok || cr.Err == nil
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if !ok {
		return res, nil
	}
	if err := m.store.SetLastSyncAt(ctx, m.now()); err != nil {
		m.logger.Error(ctx, "failed to record sync time", "error", err)
	}
	return res, nil
}

// SyncCategory runs a push-then-pull pass for c. It returns at once with
// common.ErrSyncInProgress in Err when c is already in a pass.
func (m *Manager) SyncCategory(ctx context.Context, c models.Category) CategoryResult {
	res := CategoryResult{Category: c}
	st, ok := m.states[c]
	if !ok {
		res.Err = fmt.Errorf("unknown category %q", c)
		return res
	}
	if !st.CompareAndSwap(int32(StateIdle), int32(StatePushing)) {
		res.Err = common.ErrSyncInProgress
		return res
	}
	defer st.Store(int32(StateIdle))

	log := m.logger.With("category", string(c))

	if err := m.pushCategory(ctx, c, &res); err != nil {
		res.Err = err
		log.Error(ctx, "push failed", "error", err)
		return res
	}

	st.Store(int32(StatePulling))
	if err := m.pullCategory(ctx, c, &res); err != nil {
		res.Err = err
		var te *common.TransportError
		if errors.As(err, &te) {
			log.Warn(ctx, "pull failed", "error", err)
		} else {
			log.Error(ctx, "pull failed", "error", err)
		}
	}
	return res
}

func (m *Manager) pushCategory(ctx context.Context, c models.Category, res *CategoryResult) error {
	switch c {
	case models.CategoryMoods:
		return m.push(ctx, models.EntityMood, "", res)
	case models.CategoryUserProgress:
		return m.push(ctx, models.EntityProgress, "", res)
	case models.CategoryExercises:
		return nil
	}
	chatType, ok := models.ChatTypeOf(c)
	if !ok {
		return fmt.Errorf("unknown category %q", c)
	}
	if err := m.push(ctx, models.EntitySession, chatType, res); err != nil {
		return err
	}
	return m.push(ctx, models.EntityMessage, chatType, res)
}

func (m *Manager) pullCategory(ctx context.Context, c models.Category, res *CategoryResult) error {
	switch c {
	case models.CategoryMoods:
		return m.pullMoods(ctx, res)
	case models.CategoryExercises:
		return m.pullExercises(ctx, res)
	case models.CategoryUserProgress:
		return m.pullProgress(ctx, res)
	}
	chatType, ok := models.ChatTypeOf(c)
	if !ok {
		return fmt.Errorf("unknown category %q", c)
	}
	return m.pullChat(ctx, chatType, res)
}

func (res *CategoryResult) addImport(r store.ImportResult) {
	res.Pulled += r.Inserted + r.Updated + r.Bound
	res.Dropped += len(r.Errors)
}
