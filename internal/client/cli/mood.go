package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
)

const (
	defaultMoodListSize = 10
	defaultStatsDays    = 7
)

// RecordMood asks for a mood check-in and stores it locally. Delivery to the
// server happens in the background.
func (a *App) RecordMood(ctx context.Context) error {
	label, err := getSimpleText(a.reader, "How do you feel? (e.g. calm, anxious, happy)", a.out)
	if err != nil {
		return err
	}
	intensity, err := GetInt(a.reader, fmt.Sprintf("Intensity %d-%d", models.MinIntensity, models.MaxIntensity), 5, a.out)
	if err != nil {
		return err
	}
	note, err := getSimpleText(a.reader, "Note (optional)", a.out)
	if err != nil {
		return err
	}
	tags, err := getSimpleText(a.reader, "Tags, comma separated (optional)", a.out)
	if err != nil {
		return err
	}

	id, err := a.store.RecordMood(ctx, models.Mood{
		Mood:       label,
		Intensity:  intensity,
		Note:       note,
		Tags:       splitTags(tags),
		RecordedAt: a.now(),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Mood saved (%s)\n", id)
	return nil
}

func (a *App) ListMoods(ctx context.Context, args []string) error {
	n := defaultMoodListSize
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			return fmt.Errorf("usage: moods [n]")
		}
		n = v
	}
	list, err := a.store.LastMoods(ctx, n)
	if err != nil {
		return err
	}
	a.printMoods(list)
	return nil
}

func (a *App) TodayMood(ctx context.Context) error {
	m, err := a.store.TodayMood(ctx, a.now())
	if err != nil {
		return err
	}
	if m == nil {
		fmt.Fprintln(a.out, "No mood recorded today")
		return nil
	}
	a.printMoods([]models.Mood{*m})
	return nil
}

func (a *App) SearchMoods(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		return fmt.Errorf("usage: search <text>")
	}
	list, err := a.store.SearchMoods(ctx, text)
	if err != nil {
		return err
	}
	a.printMoods(list)
	return nil
}

func (a *App) MoodStats(ctx context.Context, args []string) error {
	days := defaultStatsDays
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			return fmt.Errorf("usage: stats [days]")
		}
		days = v
	}
	// Whole local days, today included.
	y, m, d := a.now().Local().Date()
	to := time.Date(y, m, d, 0, 0, 0, 0, time.Local).AddDate(0, 0, 1)
	st, err := a.store.MoodStats(ctx, to.AddDate(0, 0, -days), to)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Last %d days: %d entries, average intensity %.1f\n", days, st.Count, st.AverageIntensity)
	labels := make([]string, 0, len(st.ByMood))
	for l := range st.ByMood {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for _, l := range labels {
		fmt.Fprintf(a.out, "  %-12s %d\n", l, st.ByMood[l])
	}
	return nil
}

func (a *App) printMoods(list []models.Mood) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No moods")
		return
	}
	for _, m := range list {
		line := fmt.Sprintf("%s  %-12s %2d  [%s]", m.RecordedAt.Local().Format(time.DateTime), m.Mood, m.Intensity, m.Status)
		if len(m.Tags) > 0 {
			line += "  #" + strings.Join(m.Tags, " #")
		}
		if m.Note != "" {
			line += "  " + m.Note
		}
		fmt.Fprintln(a.out, line)
	}
}
