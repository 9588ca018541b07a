package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/ironlog/internal/history"
	"github.com/2beens/ironlog/internal/storage"
	"github.com/2beens/ironlog/internal/workout"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRepo(t *testing.T, now func() time.Time) *history.Repo {
	t.Helper()
	store, err := storage.NewInMemoryBadgerStore()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	if now == nil {
		now = time.Now
	}
	return history.NewRepoWithClock(store, now)
}

func benchEntry(date string) workout.Entry {
	return workout.Entry{
		Date: date,
		Day:  "day5",
		Name: "Day 5: Upper Body",
		Exercises: []workout.EntryExercise{
			{
				Name: "Chest Press",
				Sets: map[int]workout.Set{
					1: {Weight: 80, Reps: 10, Tonnage: 800, E1RM: 107},
					2: {Weight: 85, Reps: 8, Tonnage: 680, E1RM: 106},
				},
			},
		},
		TotalVolume:  2,
		TotalTonnage: 1480,
	}
}

func TestRepo_AppendAssignsUniqueIDs(t *testing.T) {
	fixed := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)
	repo := newTestRepo(t, func() time.Time { return fixed })
	ctx := context.Background()

	first, err := repo.Append(ctx, benchEntry("2025-03-10"))
	require.NoError(t, err)
	assert.Equal(t, fixed.UnixMilli(), first.ID)

	// same clock tick: the collision bumps past the existing maximum
	second, err := repo.Append(ctx, benchEntry("2025-03-10"))
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)

	entries, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)
}

func TestRepo_FindByID(t *testing.T) {
	repo := newTestRepo(t, nil)
	ctx := context.Background()

	saved, err := repo.Append(ctx, benchEntry("2025-03-10"))
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Date, found.Date)
	assert.Equal(t, saved.Exercises, found.Exercises)

	_, err = repo.FindByID(ctx, 12345)
	assert.ErrorIs(t, err, history.ErrEntryNotFound)
}

func TestRepo_DeleteByID(t *testing.T) {
	repo := newTestRepo(t, nil)
	ctx := context.Background()

	first, err := repo.Append(ctx, benchEntry("2025-03-10"))
	require.NoError(t, err)
	second, err := repo.Append(ctx, benchEntry("2025-03-12"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, first.ID))

	entries, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, second.ID, entries[0].ID)

	assert.ErrorIs(t, repo.DeleteByID(ctx, first.ID), history.ErrEntryNotFound)
}

func TestRepo_AttachFeedback(t *testing.T) {
	repo := newTestRepo(t, nil)
	ctx := context.Background()

	saved, err := repo.Append(ctx, benchEntry("2025-03-10"))
	require.NoError(t, err)

	require.NoError(t, repo.AttachFeedback(ctx, saved.ID, 4, []string{"strong", "short-on-time"}))

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, found.Rating)
	assert.Equal(t, []string{"strong", "short-on-time"}, found.Tags)

	assert.Error(t, repo.AttachFeedback(ctx, saved.ID, 6, nil))
	assert.Error(t, repo.AttachFeedback(ctx, saved.ID, -1, nil))
	assert.ErrorIs(t, repo.AttachFeedback(ctx, 999, 3, nil), history.ErrEntryNotFound)
}

func TestRepo_MostRecentContaining(t *testing.T) {
	repo := newTestRepo(t, nil)
	ctx := context.Background()

	older := benchEntry("2025-03-03")
	newer := benchEntry("2025-03-10")
	_, err := repo.Append(ctx, older)
	require.NoError(t, err)
	newest, err := repo.Append(ctx, newer)
	require.NoError(t, err)

	found, err := repo.MostRecentContaining(ctx, "Chest Press")
	require.NoError(t, err)
	assert.Equal(t, newest.ID, found.ID)

	_, err = repo.MostRecentContaining(ctx, "Zercher Squat")
	assert.ErrorIs(t, err, history.ErrEntryNotFound)

	t.Run("date tie resolves to the last inserted", func(t *testing.T) {
		tied, err := repo.Append(ctx, benchEntry("2025-03-10"))
		require.NoError(t, err)

		found, err := repo.MostRecentContaining(ctx, "Chest Press")
		require.NoError(t, err)
		assert.Equal(t, tied.ID, found.ID)
	})

	t.Run("skips entries where the exercise was never logged", func(t *testing.T) {
		skipped := benchEntry("2025-03-17")
		skipped.Exercises = []workout.EntryExercise{
			{Name: "Chest Press", Sets: map[int]workout.Set{}},
			{Name: "Lateral Raise", Sets: map[int]workout.Set{1: {Weight: 12}}},
		}
		skippedSaved, err := repo.Append(ctx, skipped)
		require.NoError(t, err)

		found, err := repo.MostRecentContaining(ctx, "Chest Press")
		require.NoError(t, err)
		assert.NotEqual(t, skippedSaved.ID, found.ID)
		assert.Equal(t, "2025-03-10", found.Date)

		_, err = repo.MostRecentContaining(ctx, "Lateral Raise")
		assert.ErrorIs(t, err, history.ErrEntryNotFound)
	})
}

func TestRepo_AppendMany_KeepsOrderAndUniqueIDs(t *testing.T) {
	repo := newTestRepo(t, nil)
	ctx := context.Background()
	faker := gofakeit.New(0)

	const count = 25
	for i := 0; i < count; i++ {
		entry := workout.Entry{
			Date: faker.DateRange(
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			).Format("2006-01-02"),
			Day:  "day1",
			Name: faker.SentenceSimple(),
			Exercises: []workout.EntryExercise{
				{
					Name: faker.HipsterWord(),
					Sets: map[int]workout.Set{
						1: {
							Weight: faker.Float64Range(20, 300),
							Reps:   faker.Number(1, 15),
						},
					},
				},
			},
		}
		_, err := repo.Append(ctx, entry)
		require.NoError(t, err)
	}

	entries, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, count)

	seen := make(map[int64]struct{}, count)
	for _, e := range entries {
		_, dup := seen[e.ID]
		assert.False(t, dup, "duplicate id %d", e.ID)
		seen[e.ID] = struct{}{}
	}
}

func TestRepo_ExportRows(t *testing.T) {
	repo := newTestRepo(t, nil)
	ctx := context.Background()

	entry := benchEntry("2025-03-10")
	entry.Exercises[0].Notes = "slow negatives"
	entry.Exercises = append(entry.Exercises, workout.EntryExercise{
		Name: "Cable Row",
		Sets: map[int]workout.Set{
			1: {Weight: 70, Reps: 0}, // partial, excluded
			2: {Weight: 70, Reps: 12, Tonnage: 840, E1RM: 101},
		},
	})
	_, err := repo.Append(ctx, entry)
	require.NoError(t, err)

	rows, err := repo.ExportRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Chest Press", rows[0].Exercise)
	assert.Equal(t, 1, rows[0].Set)
	assert.Equal(t, "slow negatives", rows[0].Notes)
	assert.Equal(t, 2, rows[1].Set)

	assert.Equal(t, "Cable Row", rows[2].Exercise)
	assert.Equal(t, 2, rows[2].Set, "partial set is skipped, numbering keeps the original slot")
	assert.Equal(t, float64(840), rows[2].Tonnage)
}
