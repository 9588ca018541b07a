package workout

import "sort"

// SessionEntry holds the logged sets and notes for one exercise of
// the running session. Sets are keyed by 1-based set number; an
// absent key is the canonical "empty" state.
type SessionEntry struct {
	Sets  map[int]Set `json:"sets"`
	Notes string      `json:"notes"`
}

// Session is one in-progress workout attempt, from plan load to save
// or abandonment. It is an explicit context object: every mutation
// goes through it, there is no ambient global state. Entries are
// keyed by exercise position within the day's plan and are only valid
// for that plan snapshot.
type Session struct {
	Day     string
	Date    string
	Index   int
	Entries map[int]*SessionEntry
}

func NewSession(day, date string) *Session {
	return &Session{
		Day:     day,
		Date:    date,
		Entries: make(map[int]*SessionEntry),
	}
}

func (s *Session) entry(exIdx int) *SessionEntry {
	e, ok := s.Entries[exIdx]
	if !ok {
		e = &SessionEntry{Sets: make(map[int]Set)}
		s.Entries[exIdx] = e
	}
	return e
}

// RecordSet stores the given weight and reps for a set slot,
// overwriting any prior value. A set with both values present gets
// tonnage and estimated 1RM derived; a partial input (exactly one of
// the two) is kept visible with zero tonnage but never counts toward
// progress or totals; clearing both removes the slot entirely.
func (s *Session) RecordSet(exIdx, setNum int, weight float64, reps int) {
	entry := s.entry(exIdx)

	switch {
	case weight > 0 && reps > 0:
		entry.Sets[setNum] = Set{
			Weight:    weight,
			Reps:      reps,
			Tonnage:   Tonnage(weight, reps),
			E1RM:      Estimated1RM(weight, reps),
			Completed: false,
		}
	case weight > 0 || reps > 0:
		entry.Sets[setNum] = Set{
			Weight:    weight,
			Reps:      reps,
			Tonnage:   0,
			Completed: false,
		}
	default:
		delete(entry.Sets, setNum)
	}
}

func (s *Session) SetNotes(exIdx int, text string) {
	s.entry(exIdx).Notes = text
}

// MarkExerciseCompleted flips the completed flag on every qualifying
// set of the exercise. It is called when the user advances past the
// exercise, not when a set is first filled in.
func (s *Session) MarkExerciseCompleted(exIdx int) {
	entry, ok := s.Entries[exIdx]
	if !ok {
		return
	}
	for num, set := range entry.Sets {
		if set.Qualifying() {
			set.Completed = true
			entry.Sets[num] = set
		}
	}
}

// Advance marks the current exercise completed and moves to the next
// one. It reports false when already at the last exercise of the day,
// which is the caller's cue to save.
func (s *Session) Advance(exerciseCount int) bool {
	s.MarkExerciseCompleted(s.Index)
	if s.Index < exerciseCount-1 {
		s.Index++
		return true
	}
	return false
}

// Back moves to the previous exercise, staying put at the first one.
func (s *Session) Back() {
	if s.Index > 0 {
		s.Index--
	}
}

// Reset discards all in-progress state and returns to the first
// exercise.
func (s *Session) Reset() {
	s.Index = 0
	s.Entries = make(map[int]*SessionEntry)
}

// HydrateFromEntry rebuilds the session from a saved history entry so
// it can be edited. Every copied set is completed - it was
// historically real - and the estimated 1RM is backfilled for entries
// saved before that field existed.
func (s *Session) HydrateFromEntry(entry Entry) {
	s.Day = entry.Day
	s.Date = entry.Date
	s.Index = 0
	s.Entries = make(map[int]*SessionEntry)

	for idx, ex := range entry.Exercises {
		sessionEntry := &SessionEntry{
			Sets:  make(map[int]Set, len(ex.Sets)),
			Notes: ex.Notes,
		}
		for num, set := range ex.Sets {
			e1rm := set.E1RM
			if e1rm == 0 && set.Qualifying() {
				e1rm = Estimated1RM(set.Weight, set.Reps)
			}
			sessionEntry.Sets[num] = Set{
				Weight:    set.Weight,
				Reps:      set.Reps,
				Tonnage:   set.Tonnage,
				E1RM:      e1rm,
				Completed: true,
			}
		}
		s.Entries[idx] = sessionEntry
	}
}

// Flatten produces the per-exercise performance list for saving, in
// plan order. Exercises without any logged data get an empty mapping
// so the saved entry always mirrors the day's full exercise list.
func (s *Session) Flatten(day Day) []EntryExercise {
	exercises := make([]EntryExercise, 0, len(day.Exercises))
	for idx, ex := range day.Exercises {
		flat := EntryExercise{
			Name: ex.Name,
			Sets: make(map[int]Set),
		}
		if entry, ok := s.Entries[idx]; ok {
			flat.Notes = entry.Notes
			nums := make([]int, 0, len(entry.Sets))
			for n := range entry.Sets {
				nums = append(nums, n)
			}
			sort.Ints(nums)
			for _, n := range nums {
				flat.Sets[n] = entry.Sets[n]
			}
		}
		exercises = append(exercises, flat)
	}
	return exercises
}
