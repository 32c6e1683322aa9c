package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
)

// ListExercises prints the cached catalog with the user's completions. The
// catalog is filled by sync; offline it shows what the last pull brought.
func (a *App) ListExercises(ctx context.Context) error {
	list, err := a.store.ExercisesWithProgress(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No exercises yet, run 'sync' while online")
		return nil
	}
	for _, e := range list {
		last := "never"
		if e.LastCompletedAt != nil {
			last = e.LastCompletedAt.Local().Format(time.DateTime)
		}
		fmt.Fprintf(a.out, "%s  %-24s %-12s %3d min  done %d, last %s\n",
			e.ServerID, e.Title, e.Category, e.DurationMinutes, e.Completions, last)
	}
	return nil
}

// CompleteExercise records a completion of the exercise given as the first
// argument (or asked for).
func (a *App) CompleteExercise(ctx context.Context, args []string) error {
	var exerciseID string
	if len(args) > 0 {
		exerciseID = args[0]
	} else {
		id, err := getSimpleText(a.reader, "Exercise id", a.out)
		if err != nil {
			return err
		}
		exerciseID = id
	}

	minutes, err := GetInt(a.reader, "Duration, minutes", 10, a.out)
	if err != nil {
		return err
	}
	rating, err := GetInt(a.reader, fmt.Sprintf("Rating 0-%d (0 = skip)", models.MaxRating), 0, a.out)
	if err != nil {
		return err
	}
	note, err := getSimpleText(a.reader, "Note (optional)", a.out)
	if err != nil {
		return err
	}

	id, err := a.store.RecordExerciseCompletion(ctx, models.ExerciseProgress{
		ExerciseID:      exerciseID,
		DurationSeconds: minutes * 60,
		Rating:          rating,
		Note:            note,
		CompletedAt:     a.now(),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Completion saved (%s)\n", id)
	return nil
}
