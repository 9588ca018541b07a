package lookback

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/ironlog/internal/history"
	"github.com/2beens/ironlog/internal/telemetry/tracing"
	"github.com/2beens/ironlog/internal/workout"

	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrNoHistory  = errors.New("no previous performance for exercise")
	ErrNoSlotData = errors.New("no previous data for this set number")
)

// OverloadStep is the fixed weight increment proposed for progressive
// overload suggestions.
const OverloadStep = 2.5

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=lookback_test

type historyRepo interface {
	MostRecentContaining(ctx context.Context, exerciseName string) (*workout.Entry, error)
}

// Resolver finds "last time" performances in history: the most recent
// entry containing an exercise, its best set, and per-slot data for
// copy and progressive-overload suggestions.
type Resolver struct {
	repo historyRepo
	step float64
}

func NewResolver(repo historyRepo) *Resolver {
	return NewResolverWithStep(repo, OverloadStep)
}

// NewResolverWithStep overrides the default overload increment, e.g.
// from configuration. A non-positive step falls back to the default.
func NewResolverWithStep(repo historyRepo, step float64) *Resolver {
	if step <= 0 {
		step = OverloadStep
	}
	return &Resolver{
		repo: repo,
		step: step,
	}
}

// LastPerformance returns the best set (by tonnage) from the most
// recent history entry containing the exercise.
func (r *Resolver) LastPerformance(ctx context.Context, exerciseName string) (_ *workout.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "lookback.lastperformance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exerciseName))

	lastEx, err := r.lastExercise(ctx, exerciseName)
	if err != nil {
		return nil, err
	}

	best, found := workout.BestSet(lastEx.Sets)
	if !found {
		return nil, ErrNoHistory
	}
	return &best, nil
}

// Suggestion is a progressive-overload proposal for one set slot:
// the previous weight plus the fixed increment, at the same rep count.
type Suggestion struct {
	Weight   float64     `json:"weight"`
	Reps     int         `json:"reps"`
	Previous workout.Set `json:"previous"`
}

// SuggestOverload builds a suggestion from the previous entry's set
// at exactly the given set number. A missing or non-qualifying slot
// yields ErrNoSlotData - the resolver never substitutes data from a
// different slot; deciding how to degrade is the caller's job.
func (r *Resolver) SuggestOverload(ctx context.Context, exerciseName string, setNum int) (_ *Suggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "lookback.suggestoverload")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exerciseName))
	span.SetAttributes(attribute.Int("set", setNum))

	lastEx, err := r.lastExercise(ctx, exerciseName)
	if err != nil {
		return nil, err
	}

	prev, ok := lastEx.Sets[setNum]
	if !ok || !prev.Qualifying() {
		return nil, ErrNoSlotData
	}

	return &Suggestion{
		Weight:   prev.Weight + r.step,
		Reps:     prev.Reps,
		Previous: prev,
	}, nil
}

func (r *Resolver) lastExercise(ctx context.Context, exerciseName string) (*workout.EntryExercise, error) {
	entry, err := r.repo.MostRecentContaining(ctx, exerciseName)
	if err != nil {
		if errors.Is(err, history.ErrEntryNotFound) {
			return nil, ErrNoHistory
		}
		return nil, fmt.Errorf("find most recent entry: %w", err)
	}

	for i := range entry.Exercises {
		if entry.Exercises[i].Name == exerciseName {
			return &entry.Exercises[i], nil
		}
	}
	return nil, ErrNoHistory
}
