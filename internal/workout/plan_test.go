package workout_test

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/ironlog/internal/storage"
	"github.com/2beens/ironlog/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPlan(t *testing.T) {
	plan := workout.DefaultPlan()

	assert.Equal(t, []string{"day1", "day2", "day4", "day5", "day6"}, plan.DayKeys())
	for _, key := range plan.DayKeys() {
		day, ok := plan.Day(key)
		require.True(t, ok)
		assert.NotEmpty(t, day.Name)
		assert.Len(t, day.Exercises, 4)
	}
}

func TestDayForWeekday(t *testing.T) {
	assert.Equal(t, "day1", workout.DayForWeekday(time.Monday))
	assert.Equal(t, "day2", workout.DayForWeekday(time.Tuesday))
	assert.Equal(t, "day4", workout.DayForWeekday(time.Thursday))
	assert.Equal(t, "day5", workout.DayForWeekday(time.Friday))
	assert.Equal(t, "day6", workout.DayForWeekday(time.Saturday))
	// rest days fall back to day1
	assert.Equal(t, "day1", workout.DayForWeekday(time.Wednesday))
	assert.Equal(t, "day1", workout.DayForWeekday(time.Sunday))
}

func TestPlan_MoveExercise(t *testing.T) {
	plan := workout.DefaultPlan()
	day, _ := plan.Day("day1")
	first, second := day.Exercises[0].Name, day.Exercises[1].Name

	plan.MoveExercise("day1", 0, 1)
	day, _ = plan.Day("day1")
	assert.Equal(t, second, day.Exercises[0].Name)
	assert.Equal(t, first, day.Exercises[1].Name)

	t.Run("out of bounds is a no-op", func(t *testing.T) {
		before, _ := plan.Day("day1")
		plan.MoveExercise("day1", 0, -1)
		plan.MoveExercise("day1", len(before.Exercises)-1, 1)
		plan.MoveExercise("day1", 99, 1)
		plan.MoveExercise("nope", 0, 1)
		after, _ := plan.Day("day1")
		assert.Equal(t, before, after)
	})
}

func TestPlan_DeleteExercise(t *testing.T) {
	plan := workout.DefaultPlan()
	day, _ := plan.Day("day2")
	removed := day.Exercises[1].Name

	plan.DeleteExercise("day2", 1)

	day, _ = plan.Day("day2")
	assert.Len(t, day.Exercises, 3)
	for _, ex := range day.Exercises {
		assert.NotEqual(t, removed, ex.Name)
	}

	t.Run("out of bounds is a no-op", func(t *testing.T) {
		plan.DeleteExercise("day2", 99)
		plan.DeleteExercise("nope", 0)
		day, _ = plan.Day("day2")
		assert.Len(t, day.Exercises, 3)
	})
}

func TestPlanRepo_LoadDefaultsWhenEmpty(t *testing.T) {
	store, err := storage.NewInMemoryBadgerStore()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	repo := workout.NewPlanRepo(store)
	plan := repo.Load(context.Background())
	assert.Equal(t, workout.DefaultPlan().DayKeys(), plan.DayKeys())
}

func TestPlanEditor(t *testing.T) {
	store, err := storage.NewInMemoryBadgerStore()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	ctx := context.Background()
	repo := workout.NewPlanRepo(store)
	editor := workout.NewPlanEditor(repo)

	t.Run("mutations require editing mode", func(t *testing.T) {
		assert.ErrorIs(t, editor.MoveExercise("day1", 0, 1), workout.ErrNotEditing)
		assert.ErrorIs(t, editor.DeleteExercise("day1", 0), workout.ErrNotEditing)
		_, err := editor.Commit(ctx)
		assert.ErrorIs(t, err, workout.ErrNotEditing)
	})

	t.Run("commit persists the draft", func(t *testing.T) {
		editor.Begin(ctx)
		require.NoError(t, editor.DeleteExercise("day1", 0))

		committed, err := editor.Commit(ctx)
		require.NoError(t, err)
		day, _ := committed.Day("day1")
		assert.Len(t, day.Exercises, 3)

		reloaded := repo.Load(ctx)
		day, _ = reloaded.Day("day1")
		assert.Len(t, day.Exercises, 3)
		assert.False(t, editor.Editing())
	})

	t.Run("discard leaves the stored plan alone", func(t *testing.T) {
		editor.Begin(ctx)
		require.NoError(t, editor.DeleteExercise("day2", 0))
		editor.Discard()

		reloaded := repo.Load(ctx)
		day, _ := reloaded.Day("day2")
		assert.Len(t, day.Exercises, 4)
		assert.False(t, editor.Editing())
	})

	t.Run("begin does not leak edits into the stored plan", func(t *testing.T) {
		draft := editor.Begin(ctx)
		draft.DeleteExercise("day5", 0)

		reloaded := repo.Load(ctx)
		day, _ := reloaded.Day("day5")
		assert.Len(t, day.Exercises, 4)
		editor.Discard()
	})
}
