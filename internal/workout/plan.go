package workout

import (
	"sort"
	"time"
)

// Day is one prescribed workout day: a name and an ordered exercise list.
type Day struct {
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

// Plan is the full, user-editable workout plan, keyed by day key
// (day1, day2, ...). Session state is keyed by exercise position
// within a day, so a plan mutation invalidates any session built on
// the previous snapshot - callers must not edit the plan mid-session.
type Plan struct {
	Days map[string]Day `json:"days"`
}

// DefaultPlan is the prescribed five-day split the app ships with.
func DefaultPlan() Plan {
	return Plan{
		Days: map[string]Day{
			"day1": {
				Name: "Day 1: Quad Focus",
				Exercises: []Exercise{
					{Name: "Leg Extension", Sets: 1, Reps: "Failure", Type: ExerciseTypeIsolation},
					{Name: "Hack Squat or Leg Press", Sets: 1, Reps: "Failure", Type: ExerciseTypeCompound},
					{Name: "Bulgarian Split Squat", Sets: 1, Reps: "Failure", Type: ExerciseTypeCompound},
					{Name: "Sissy Squat", Sets: 1, Reps: "Failure", Type: ExerciseTypeIsolation},
				},
			},
			"day2": {
				Name: "Day 2: Hamstring Stretch",
				Exercises: []Exercise{
					{Name: "Lying Hamstring Curl", Sets: 1, Reps: "Failure", Type: ExerciseTypeIsolation},
					{Name: "Romanian Deadlift", Sets: 1, Reps: "Failure", Type: ExerciseTypeCompound},
					{Name: "Seated Hamstring Curl", Sets: 1, Reps: "Failure", Type: ExerciseTypeIsolation},
					{Name: "Glute-Ham Raise", Sets: 1, Reps: "Failure", Type: ExerciseTypeCompound},
				},
			},
			"day4": {
				Name: "Day 4: Glute Focus",
				Exercises: []Exercise{
					{Name: "Hip Thrust", Sets: 1, Reps: "Failure", Type: ExerciseTypeCompound},
					{Name: "Smith Machine Reverse Lunge", Sets: 1, Reps: "Failure", Type: ExerciseTypeCompound},
					{Name: "Cable Kickback", Sets: 1, Reps: "Failure", Type: ExerciseTypeIsolation},
					{Name: "Abductor Machine", Sets: 1, Reps: "Failure", Type: ExerciseTypeIsolation},
				},
			},
			"day5": {
				Name: "Day 5: Upper Body",
				Exercises: []Exercise{
					{Name: "Chest Press", Sets: 1, Reps: "Failure", Type: ExerciseTypeCompound},
					{Name: "Cable Row", Sets: 1, Reps: "Failure", Type: ExerciseTypeCompound},
					{Name: "Shoulder Press", Sets: 1, Reps: "Failure", Type: ExerciseTypeCompound},
					{Name: "Bicep Curl", Sets: 1, Reps: "Failure", Type: ExerciseTypeIsolation},
				},
			},
			"day6": {
				Name: "Day 6: Abs/Core",
				Exercises: []Exercise{
					{Name: "Plank Hold", Sets: 1, Reps: "60s", Type: ExerciseTypeIsolation},
					{Name: "Russian Twists", Sets: 1, Reps: "Failure", Type: ExerciseTypeIsolation},
					{Name: "Hanging Leg Raises", Sets: 1, Reps: "Failure", Type: ExerciseTypeIsolation},
					{Name: "Mountain Climbers", Sets: 1, Reps: "Failure", Type: ExerciseTypeCompound},
				},
			},
		},
	}
}

// DayForWeekday maps a weekday to its plan day, defaulting to day1
// on rest days.
func DayForWeekday(weekday time.Weekday) string {
	switch weekday {
	case time.Monday:
		return "day1"
	case time.Tuesday:
		return "day2"
	case time.Thursday:
		return "day4"
	case time.Friday:
		return "day5"
	case time.Saturday:
		return "day6"
	default:
		return "day1"
	}
}

// Day returns the plan day for the given key.
func (p Plan) Day(key string) (Day, bool) {
	day, ok := p.Days[key]
	return day, ok
}

// DayKeys returns all day keys in lexical order.
func (p Plan) DayKeys() []string {
	keys := make([]string, 0, len(p.Days))
	for k := range p.Days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MoveExercise swaps the exercise at index with its neighbor in the
// given direction (-1 up, +1 down). Out-of-bounds moves are silent
// no-ops, never errors.
func (p *Plan) MoveExercise(dayKey string, index, direction int) {
	day, ok := p.Days[dayKey]
	if !ok {
		return
	}
	target := index + direction
	if index < 0 || index >= len(day.Exercises) {
		return
	}
	if target < 0 || target >= len(day.Exercises) {
		return
	}
	day.Exercises[index], day.Exercises[target] = day.Exercises[target], day.Exercises[index]
	p.Days[dayKey] = day
}

// DeleteExercise removes the exercise at index. Out-of-bounds deletes
// are silent no-ops.
func (p *Plan) DeleteExercise(dayKey string, index int) {
	day, ok := p.Days[dayKey]
	if !ok {
		return
	}
	if index < 0 || index >= len(day.Exercises) {
		return
	}
	day.Exercises = append(day.Exercises[:index], day.Exercises[index+1:]...)
	p.Days[dayKey] = day
}

func (p Plan) clone() Plan {
	days := make(map[string]Day, len(p.Days))
	for k, d := range p.Days {
		exercises := make([]Exercise, len(d.Exercises))
		copy(exercises, d.Exercises)
		days[k] = Day{Name: d.Name, Exercises: exercises}
	}
	return Plan{Days: days}
}
