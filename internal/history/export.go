package history

import (
	"context"
	"sort"

	"github.com/2beens/ironlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// ExportRow is the flat row-per-set view of history. This shape and
// its filter (qualifying sets only) are the external export contract;
// any serialization on top must preserve both.
type ExportRow struct {
	Date     string  `json:"date"`
	Workout  string  `json:"workout"`
	Exercise string  `json:"exercise"`
	Set      int     `json:"set"`
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	Tonnage  float64 `json:"tonnage"`
	E1RM     float64 `json:"e1rm"`
	Notes    string  `json:"notes"`
}

// ExportRows flattens the entire history into rows, one per
// qualifying set, in history insertion order with set numbers
// ascending within each exercise.
func (r *Repo) ExportRows(ctx context.Context) (_ []ExportRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.exportrows")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	var rows []ExportRow
	for _, entry := range entries {
		for _, ex := range entry.Exercises {
			nums := make([]int, 0, len(ex.Sets))
			for n := range ex.Sets {
				nums = append(nums, n)
			}
			sort.Ints(nums)

			for _, n := range nums {
				set := ex.Sets[n]
				if !set.Qualifying() {
					continue
				}
				rows = append(rows, ExportRow{
					Date:     entry.Date,
					Workout:  entry.Name,
					Exercise: ex.Name,
					Set:      n,
					Weight:   set.Weight,
					Reps:     set.Reps,
					Tonnage:  set.Tonnage,
					E1RM:     set.E1RM,
					Notes:    ex.Notes,
				})
			}
		}
	}

	span.SetAttributes(attribute.Int("rows", len(rows)))
	return rows, nil
}
