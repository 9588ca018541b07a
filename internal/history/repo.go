package history

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/ironlog/internal/storage"
	"github.com/2beens/ironlog/internal/telemetry/tracing"
	"github.com/2beens/ironlog/internal/workout"

	"go.opentelemetry.io/otel/attribute"
)

var ErrEntryNotFound = errors.New("workout entry not found")

// Repo is the workout history store: a logically append-only list of
// completed workouts living under a single blob key. Entry identity
// is never mutated after Append.
type Repo struct {
	kv  storage.KV
	now func() time.Time
}

func NewRepo(kv storage.KV) *Repo {
	return &Repo{
		kv:  kv,
		now: time.Now,
	}
}

// NewRepoWithClock is used in tests to pin entry ID assignment.
func NewRepoWithClock(kv storage.KV, now func() time.Time) *Repo {
	return &Repo{
		kv:  kv,
		now: now,
	}
}

// All returns every entry in insertion order. Display ordering (date
// descending) is the caller's concern.
func (r *Repo) All(ctx context.Context) (_ []workout.Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries := storage.GetJSON(ctx, r.kv, storage.KeyWorkoutHistory, []workout.Entry{})
	span.SetAttributes(attribute.Int("count", len(entries)))
	return entries, nil
}

// Append stores the entry with a freshly assigned unique ID and
// returns it. IDs are unix-milli timestamps, bumped past the current
// maximum on collision, so they stay unique and roughly monotonic for
// the lifetime of the device.
func (r *Repo) Append(ctx context.Context, entry workout.Entry) (_ *workout.Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.append")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	entry.ID = r.now().UnixMilli()
	for _, existing := range entries {
		if existing.ID >= entry.ID {
			entry.ID = existing.ID + 1
		}
	}
	span.SetAttributes(attribute.Int64("entry.id", entry.ID))

	entries = append(entries, entry)
	if !storage.SetJSON(ctx, r.kv, storage.KeyWorkoutHistory, entries) {
		return nil, errors.New("failed to persist workout history")
	}
	return &entry, nil
}

func (r *Repo) FindByID(ctx context.Context, id int64) (_ *workout.Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.findbyid")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	entries, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, ErrEntryNotFound
}

// DeleteByID removes the matching entry. Deletion changes the
// best-performance corpus, so the caller must follow up with a full
// PR recompute.
func (r *Repo) DeleteByID(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.deletebyid")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	entries, err := r.All(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range entries {
		if entries[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrEntryNotFound
	}

	entries = append(entries[:idx], entries[idx+1:]...)
	if !storage.SetJSON(ctx, r.kv, storage.KeyWorkoutHistory, entries) {
		return errors.New("failed to persist workout history")
	}
	return nil
}

// AttachFeedback sets the rating and tags of an already saved entry.
// The post-workout modal collects these after the save, so they are
// attached separately and never block the save itself.
func (r *Repo) AttachFeedback(ctx context.Context, id int64, rating int, tags []string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.attachfeedback")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))
	span.SetAttributes(attribute.Int("rating", rating))

	if rating < 0 || rating > 5 {
		return errors.New("rating must be between 0 and 5")
	}

	entries, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		entries[i].Rating = rating
		entries[i].Tags = tags
		if !storage.SetJSON(ctx, r.kv, storage.KeyWorkoutHistory, entries) {
			return errors.New("failed to persist workout history")
		}
		return nil
	}
	return ErrEntryNotFound
}

// MostRecentContaining returns the entry with the maximum date that
// logged the given exercise. Equal dates resolve to the last inserted
// entry, deterministically.
func (r *Repo) MostRecentContaining(ctx context.Context, exerciseName string) (_ *workout.Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.mostrecentcontaining")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exerciseName))

	entries, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	var mostRecent *workout.Entry
	for i := range entries {
		if !entries[i].Contains(exerciseName) {
			continue
		}
		// calendar-day date strings (YYYY-MM-DD) compare lexically;
		// >= makes the last inserted entry win date ties
		if mostRecent == nil || entries[i].Date >= mostRecent.Date {
			mostRecent = &entries[i]
		}
	}
	if mostRecent == nil {
		return nil, ErrEntryNotFound
	}
	return mostRecent, nil
}
