package workout

// ProgressStatus can be one of:
//   - not_started
//   - in_progress
//   - complete
type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressComplete   ProgressStatus = "complete"
)

type Progress struct {
	CompletedSets int            `json:"completedSets"`
	TotalSets     int            `json:"totalSets"`
	Percentage    float64        `json:"percentage"`
	Remaining     int            `json:"remaining"`
	Status        ProgressStatus `json:"status"`
}

// SessionProgress derives completion state from the session against
// the day's prescribed set targets. A set counts as soon as it has
// both weight and reps - the completed flag only drives the visual
// marker, not progress. Extra sets beyond the target are tolerated,
// so completedSets can exceed totalSets.
func SessionProgress(session *Session, day Day) Progress {
	var totalSets, completedSets int
	for idx, ex := range day.Exercises {
		target := ex.Sets
		if target < 1 {
			target = 1
		}
		totalSets += target

		entry, ok := session.Entries[idx]
		if !ok {
			continue
		}
		for _, set := range entry.Sets {
			if set.Qualifying() {
				completedSets++
			}
		}
	}

	progress := Progress{
		CompletedSets: completedSets,
		TotalSets:     totalSets,
	}
	if totalSets > 0 {
		progress.Percentage = float64(completedSets) / float64(totalSets) * 100
	}

	switch {
	case completedSets == 0:
		progress.Status = ProgressNotStarted
	case completedSets >= totalSets:
		progress.Status = ProgressComplete
	default:
		progress.Status = ProgressInProgress
		progress.Remaining = totalSets - completedSets
	}
	return progress
}
