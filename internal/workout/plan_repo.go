package workout

import (
	"context"
	"errors"

	"github.com/2beens/ironlog/internal/storage"
	"github.com/2beens/ironlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var ErrNotEditing = errors.New("plan is not in editing mode")

// PlanRepo persists the workout plan as a single JSON blob. A missing
// or corrupt blob falls back to the default plan.
type PlanRepo struct {
	kv storage.KV
}

func NewPlanRepo(kv storage.KV) *PlanRepo {
	return &PlanRepo{
		kv: kv,
	}
}

func (r *PlanRepo) Load(ctx context.Context) Plan {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plan.load")
	defer span.End()

	plan := storage.GetJSON(ctx, r.kv, storage.KeyWorkoutPlan, DefaultPlan())
	if len(plan.Days) == 0 {
		// stored blob parsed but holds nothing usable
		plan = DefaultPlan()
	}
	return plan
}

func (r *PlanRepo) Save(ctx context.Context, plan Plan) bool {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plan.save")
	defer span.End()
	span.SetAttributes(attribute.Int("days", len(plan.Days)))

	return storage.SetJSON(ctx, r.kv, storage.KeyWorkoutPlan, plan)
}

// PlanEditor holds structural plan edits on a draft until they are
// explicitly committed. Discard throws the draft away. No session may
// be active while a draft is being edited - position-keyed session
// state does not survive a plan mutation.
type PlanEditor struct {
	repo    *PlanRepo
	draft   *Plan
	editing bool
}

func NewPlanEditor(repo *PlanRepo) *PlanEditor {
	return &PlanEditor{
		repo: repo,
	}
}

func (e *PlanEditor) Editing() bool {
	return e.editing
}

// Begin enters editing mode with a draft copy of the persisted plan.
// Calling it while already editing restarts from the stored state.
func (e *PlanEditor) Begin(ctx context.Context) Plan {
	plan := e.repo.Load(ctx).clone()
	e.draft = &plan
	e.editing = true
	return plan
}

func (e *PlanEditor) MoveExercise(dayKey string, index, direction int) error {
	if !e.editing {
		return ErrNotEditing
	}
	e.draft.MoveExercise(dayKey, index, direction)
	return nil
}

func (e *PlanEditor) DeleteExercise(dayKey string, index int) error {
	if !e.editing {
		return ErrNotEditing
	}
	e.draft.DeleteExercise(dayKey, index)
	return nil
}

// Commit persists the draft and leaves editing mode.
func (e *PlanEditor) Commit(ctx context.Context) (Plan, error) {
	if !e.editing {
		return Plan{}, ErrNotEditing
	}
	plan := *e.draft
	if !e.repo.Save(ctx, plan) {
		return Plan{}, errors.New("failed to persist workout plan")
	}
	e.draft = nil
	e.editing = false
	return plan, nil
}

// Discard leaves editing mode without persisting anything.
func (e *PlanEditor) Discard() {
	e.draft = nil
	e.editing = false
}
