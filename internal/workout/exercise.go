package workout

import "sort"

// ExerciseType can be one of:
//   - isolation
//   - compound
type ExerciseType string

const (
	ExerciseTypeIsolation ExerciseType = "isolation"
	ExerciseTypeCompound  ExerciseType = "compound"
)

func (et ExerciseType) String() string {
	return string(et)
}

func (et ExerciseType) IsValid() bool {
	switch et {
	case ExerciseTypeIsolation, ExerciseTypeCompound:
		return true
	default:
		return false
	}
}

// Exercise is one prescribed exercise in a plan day. The name is the
// join key correlating plan, history and personal records - there is
// no separate exercise identifier, so a rename starts a fresh PR
// lineage.
type Exercise struct {
	Name string       `json:"name"`
	Sets int          `json:"sets"`
	Reps string       `json:"reps"`
	Type ExerciseType `json:"type"`
}

// Set is a single logged set. Weight 0 and reps 0 together are never
// stored - such a slot is removed from its containing map instead.
type Set struct {
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Tonnage   float64 `json:"tonnage"`
	E1RM      float64 `json:"e1rm"`
	Completed bool    `json:"completed"`
}

// Qualifying reports whether the set counts toward totals, progress
// and personal records.
func (s Set) Qualifying() bool {
	return s.Weight > 0 && s.Reps > 0
}

// EntryExercise is the flattened per-exercise performance inside a
// saved history entry. Sets are keyed by 1-based set number.
type EntryExercise struct {
	Name  string      `json:"name"`
	Sets  map[int]Set `json:"sets"`
	Notes string      `json:"notes"`
}

// Entry is one completed workout in history. The ID is assigned once
// at save time and never changes, so edits and deletes can target a
// specific entry regardless of ordering or duplicate dates.
type Entry struct {
	ID           int64           `json:"id"`
	Date         string          `json:"date"`
	Day          string          `json:"day"`
	Name         string          `json:"name"`
	Exercises    []EntryExercise `json:"exercises"`
	TotalVolume  int             `json:"totalVolume"`
	TotalTonnage float64         `json:"totalTonnage"`
	Rating       int             `json:"rating"`
	Tags         []string        `json:"tags"`
}

// Contains reports whether the entry holds actual data for the given
// exercise name. Saved entries list every plan exercise of the day,
// logged or not, so name presence alone is not enough - at least one
// qualifying set must exist.
func (e Entry) Contains(exerciseName string) bool {
	for _, ex := range e.Exercises {
		if ex.Name != exerciseName {
			continue
		}
		for _, set := range ex.Sets {
			if set.Qualifying() {
				return true
			}
		}
	}
	return false
}

// BestSet returns the highest-tonnage qualifying set of the mapping.
// Set numbers are visited in ascending order and only a strictly
// greater tonnage replaces the candidate, so ties keep the lowest
// set number, deterministically.
func BestSet(sets map[int]Set) (Set, bool) {
	nums := make([]int, 0, len(sets))
	for n := range sets {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	var best Set
	found := false
	for _, n := range nums {
		set := sets[n]
		if !set.Qualifying() {
			continue
		}
		if !found || set.Tonnage > best.Tonnage {
			best = set
			found = true
		}
	}
	return best, found
}
