package stats

import (
	"context"
	"sort"
	"time"

	"github.com/2beens/ironlog/internal/records"
	"github.com/2beens/ironlog/internal/telemetry/tracing"
	"github.com/2beens/ironlog/internal/workout"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=stats_test

type historyRepo interface {
	All(ctx context.Context) ([]workout.Entry, error)
}

type recordsLedger interface {
	All(ctx context.Context) (map[string]records.PersonalRecord, error)
}

// Overview is the aggregate summary shown on the stats screen.
type Overview struct {
	TotalWorkouts int `json:"totalWorkouts"`
	TotalSets     int `json:"totalSets"`
	PersonalRecs  int `json:"personalRecords"`
	StreakDays    int `json:"streakDays"`
}

// ProgressionPoint is the best tonnage for one exercise on one date.
type ProgressionPoint struct {
	Date    string  `json:"date"`
	Tonnage float64 `json:"tonnage"`
}

// Analyzer derives read-only aggregates from workout history and the
// personal records ledger.
type Analyzer struct {
	history historyRepo
	ledger  recordsLedger
	now     func() time.Time
}

func NewAnalyzer(history historyRepo, ledger recordsLedger) *Analyzer {
	return NewAnalyzerWithClock(history, ledger, time.Now)
}

func NewAnalyzerWithClock(history historyRepo, ledger recordsLedger, now func() time.Time) *Analyzer {
	return &Analyzer{
		history: history,
		ledger:  ledger,
		now:     now,
	}
}

func (a *Analyzer) Overview(ctx context.Context) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := a.history.All(ctx)
	if err != nil {
		return nil, err
	}
	prs, err := a.ledger.All(ctx)
	if err != nil {
		return nil, err
	}

	totalSets := 0
	for _, e := range entries {
		totalSets += e.TotalVolume
	}

	ov := &Overview{
		TotalWorkouts: len(entries),
		TotalSets:     totalSets,
		PersonalRecs:  len(prs),
		StreakDays:    a.streak(entries),
	}
	span.SetAttributes(attribute.Int("workouts", ov.TotalWorkouts))
	return ov, nil
}

// ProgressionSeries returns the best set tonnage per date for one
// exercise, ascending by date. Duplicate dates collapse to the max.
func (a *Analyzer) ProgressionSeries(ctx context.Context, exerciseName string) (_ []ProgressionPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.progression")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exerciseName))

	entries, err := a.history.All(ctx)
	if err != nil {
		return nil, err
	}

	bestPerDate := make(map[string]float64)
	for _, entry := range entries {
		for _, ex := range entry.Exercises {
			if ex.Name != exerciseName {
				continue
			}
			best, found := workout.BestSet(ex.Sets)
			if !found {
				continue
			}
			if best.Tonnage > bestPerDate[entry.Date] {
				bestPerDate[entry.Date] = best.Tonnage
			}
		}
	}

	points := make([]ProgressionPoint, 0, len(bestPerDate))
	for date, tonnage := range bestPerDate {
		points = append(points, ProgressionPoint{Date: date, Tonnage: tonnage})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points, nil
}

// WorkoutDates returns the distinct dates with at least one logged
// workout, ascending.
func (a *Analyzer) WorkoutDates(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.workoutdates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := a.history.All(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Date]; ok {
			continue
		}
		seen[e.Date] = struct{}{}
		dates = append(dates, e.Date)
	}
	sort.Strings(dates)
	return dates, nil
}

// streak counts consecutive training days ending today or yesterday.
// Multiple workouts on one date count as a single day; a gap of more
// than one calendar day breaks the chain.
func (a *Analyzer) streak(entries []workout.Entry) int {
	if len(entries) == 0 {
		return 0
	}

	seen := make(map[string]struct{})
	dates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Date]; ok {
			continue
		}
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		seen[e.Date] = struct{}{}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return 0
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})

	today := truncateToDay(a.now())
	latest := dates[0]
	daysBack := int(today.Sub(latest).Hours() / 24)
	if daysBack > 1 {
		return 0
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		gap := int(dates[i-1].Sub(dates[i]).Hours() / 24)
		if gap != 1 {
			break
		}
		streak++
	}
	return streak
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
