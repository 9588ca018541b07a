package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/ironlog/internal/records"
	"github.com/2beens/ironlog/internal/telemetry/tracing"
	"github.com/2beens/ironlog/internal/workout"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrNothingToSave = errors.New("no completed sets to save")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=tracker_test

type historyRepo interface {
	Append(ctx context.Context, entry workout.Entry) (*workout.Entry, error)
	FindByID(ctx context.Context, id int64) (*workout.Entry, error)
	DeleteByID(ctx context.Context, id int64) error
}

type prLedger interface {
	UpdateIncremental(ctx context.Context, savedExercises []workout.EntryExercise) ([]records.Improvement, error)
	RecomputeFull(ctx context.Context) (map[string]records.PersonalRecord, error)
}

// SaveResult is the outcome of finishing a workout: the persisted
// entry plus any personal records it beat.
type SaveResult struct {
	Entry        *workout.Entry        `json:"entry"`
	Improvements []records.Improvement `json:"improvements"`
}

// Service coordinates the write paths that touch both workout history
// and the personal records ledger. Saving updates records
// incrementally; editing and deleting shrink the corpus, so they
// trigger a full recompute instead.
type Service struct {
	history historyRepo
	ledger  prLedger
}

func NewService(history historyRepo, ledger prLedger) *Service {
	return &Service{
		history: history,
		ledger:  ledger,
	}
}

// SaveSession persists the finished session as a history entry and
// folds its sets into the records ledger. Sessions with no completed
// sets are rejected with ErrNothingToSave.
func (s *Service) SaveSession(ctx context.Context, session *workout.Session, day workout.Day) (_ *SaveResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.service.savesession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", session.Day))

	exercises := session.Flatten(day)
	if !hasQualifyingSets(exercises) {
		return nil, ErrNothingToSave
	}

	totalVolume, totalTonnage := totals(exercises)
	entry := workout.Entry{
		Date:         session.Date,
		Day:          session.Day,
		Name:         day.Name,
		Exercises:    exercises,
		TotalVolume:  totalVolume,
		TotalTonnage: totalTonnage,
	}

	saved, err := s.history.Append(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("append workout entry: %w", err)
	}

	improvements, err := s.ledger.UpdateIncremental(ctx, saved.Exercises)
	if err != nil {
		// the workout itself is saved; records will self-heal on the
		// next full recompute
		log.Errorf("update personal records after save: %s", err)
		improvements = nil
	}

	return &SaveResult{
		Entry:        saved,
		Improvements: improvements,
	}, nil
}

// ReplaceEntry swaps a history entry for its edited version: the old
// entry is removed, the new one appended, and the records ledger
// rebuilt from the remaining corpus.
func (s *Service) ReplaceEntry(ctx context.Context, id int64, edited workout.Entry) (_ *workout.Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.service.replaceentry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("entryId", id))

	if err := s.history.DeleteByID(ctx, id); err != nil {
		return nil, fmt.Errorf("delete workout entry %d: %w", id, err)
	}

	edited.ID = 0 // Append assigns a fresh id
	saved, err := s.history.Append(ctx, edited)
	if err != nil {
		return nil, fmt.Errorf("append edited workout entry: %w", err)
	}

	if _, err := s.ledger.RecomputeFull(ctx); err != nil {
		return nil, fmt.Errorf("recompute personal records: %w", err)
	}
	return saved, nil
}

// DeleteEntry removes a history entry and rebuilds the records ledger
// so no record outlives its source workout.
func (s *Service) DeleteEntry(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.service.deleteentry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("entryId", id))

	if err := s.history.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete workout entry %d: %w", id, err)
	}
	if _, err := s.ledger.RecomputeFull(ctx); err != nil {
		return fmt.Errorf("recompute personal records: %w", err)
	}
	return nil
}

// EntryForEdit loads an entry so a session can be rehydrated from it.
func (s *Service) EntryForEdit(ctx context.Context, id int64) (_ *workout.Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.service.entryforedit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entry, err := s.history.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find workout entry %d: %w", id, err)
	}
	return entry, nil
}

func hasQualifyingSets(exercises []workout.EntryExercise) bool {
	for _, ex := range exercises {
		for _, set := range ex.Sets {
			if set.Qualifying() {
				return true
			}
		}
	}
	return false
}

func totals(exercises []workout.EntryExercise) (volume int, tonnage float64) {
	for _, ex := range exercises {
		for _, set := range ex.Sets {
			if !set.Qualifying() {
				continue
			}
			volume++
			tonnage += set.Tonnage
		}
	}
	return volume, tonnage
}
