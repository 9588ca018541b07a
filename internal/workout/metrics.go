package workout

import "math"

// Brzycki coefficients, the usual 1RM estimation for sets up to 15 reps.
const (
	brzyckiBase    = 1.0278
	brzyckiPerRep  = 0.0278
	brzyckiMaxReps = 15
)

// Tonnage is weight times reps for a single set, the volume proxy
// used for all PR comparisons.
func Tonnage(weight float64, reps int) float64 {
	return weight * float64(reps)
}

// Estimated1RM estimates the one-rep max from a set via the Brzycki
// relation. A single rep is its own 1RM. Outside the reliable domain
// (no weight, no reps, or more than 15 reps) it returns 0, meaning
// "undefined" - displays are expected to suppress it, never show it
// as a number.
func Estimated1RM(weight float64, reps int) float64 {
	if reps == 1 {
		return weight
	}
	if weight == 0 || reps == 0 || reps > brzyckiMaxReps {
		return 0
	}
	return math.Round(weight / (brzyckiBase - brzyckiPerRep*float64(reps)))
}
