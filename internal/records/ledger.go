package records

import (
	"context"
	"sort"

	"github.com/2beens/ironlog/internal/storage"
	"github.com/2beens/ironlog/internal/telemetry/tracing"
	"github.com/2beens/ironlog/internal/workout"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// PersonalRecord is the highest-tonnage qualifying set ever logged
// for one exercise name.
type PersonalRecord struct {
	Weight  float64 `json:"weight"`
	Reps    int     `json:"reps"`
	Tonnage float64 `json:"tonnage"`
	E1RM    float64 `json:"e1rm"`
}

// Improvement describes a beaten record, for celebration display. It
// is only reported when a previous record existed - a first-ever
// record is not an "improvement".
type Improvement struct {
	Exercise string         `json:"exercise"`
	Old      PersonalRecord `json:"old"`
	New      PersonalRecord `json:"new"`
}

//go:generate mockgen -source=$GOFILE -destination=ledger_mocks_test.go -package=records_test

type historyRepo interface {
	All(ctx context.Context) ([]workout.Entry, error)
}

// Ledger keeps one personal record per exercise name, derived from
// workout history. Incremental updates run on every save; the full
// recompute is the authoritative reconciliation path after any
// deletion or edit.
type Ledger struct {
	kv      storage.KV
	history historyRepo
}

func NewLedger(kv storage.KV, history historyRepo) *Ledger {
	return &Ledger{
		kv:      kv,
		history: history,
	}
}

// All returns the current ledger, exercise name to record.
func (l *Ledger) All(ctx context.Context) (_ map[string]PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ledger.records.all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	prs := storage.GetJSON(ctx, l.kv, storage.KeyPersonalRecords, map[string]PersonalRecord{})
	span.SetAttributes(attribute.Int("count", len(prs)))
	return prs, nil
}

// UpdateIncremental folds a just-saved exercise list into the ledger:
// a strictly greater tonnage replaces the record; an equal one keeps
// the earlier record. It must run once per save, after the history
// entry is durably appended. Returns the beaten records, measured
// against the ledger as it was before this save.
func (l *Ledger) UpdateIncremental(
	ctx context.Context,
	savedExercises []workout.EntryExercise,
) (_ []Improvement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ledger.records.updateincremental")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	prs, err := l.All(ctx)
	if err != nil {
		return nil, err
	}

	before := make(map[string]PersonalRecord, len(prs))
	for name, pr := range prs {
		before[name] = pr
	}

	for _, ex := range savedExercises {
		foldExercise(prs, ex)
	}

	if !storage.SetJSON(ctx, l.kv, storage.KeyPersonalRecords, prs) {
		log.Errorf("failed to persist personal records")
	}

	var improvements []Improvement
	for _, ex := range savedExercises {
		old, existed := before[ex.Name]
		if !existed {
			continue
		}
		now := prs[ex.Name]
		if now.Tonnage > old.Tonnage {
			improvements = append(improvements, Improvement{
				Exercise: ex.Name,
				Old:      old,
				New:      now,
			})
		}
	}

	span.SetAttributes(attribute.Int("improvements", len(improvements)))
	return improvements, nil
}

// RecomputeFull rebuilds the whole ledger from history and fully
// replaces the stored state. It is idempotent: unchanged history
// always yields an identical ledger. Tonnage and estimated 1RM are
// re-derived for sets saved before those fields existed.
func (l *Ledger) RecomputeFull(ctx context.Context) (_ map[string]PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ledger.records.recomputefull")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := l.history.All(ctx)
	if err != nil {
		return nil, err
	}

	prs := make(map[string]PersonalRecord)
	for _, entry := range entries {
		for _, ex := range entry.Exercises {
			foldExercise(prs, ex)
		}
	}

	if !storage.SetJSON(ctx, l.kv, storage.KeyPersonalRecords, prs) {
		log.Errorf("failed to persist personal records")
	}

	span.SetAttributes(attribute.Int("count", len(prs)))
	return prs, nil
}

// foldExercise applies every qualifying set of the exercise to the
// ledger. Set numbers are visited ascending and only strictly greater
// tonnage replaces, so the earliest-recorded set wins ties.
func foldExercise(prs map[string]PersonalRecord, ex workout.EntryExercise) {
	nums := make([]int, 0, len(ex.Sets))
	for n := range ex.Sets {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	for _, n := range nums {
		set := ex.Sets[n]
		if !set.Qualifying() {
			continue
		}

		tonnage := set.Tonnage
		if tonnage == 0 {
			tonnage = workout.Tonnage(set.Weight, set.Reps)
		}
		e1rm := set.E1RM
		if e1rm == 0 {
			e1rm = workout.Estimated1RM(set.Weight, set.Reps)
		}

		current, exists := prs[ex.Name]
		if !exists || tonnage > current.Tonnage {
			prs[ex.Name] = PersonalRecord{
				Weight:  set.Weight,
				Reps:    set.Reps,
				Tonnage: tonnage,
				E1RM:    e1rm,
			}
		}
	}
}
