package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/ironlog/internal/lookback"
	"github.com/2beens/ironlog/internal/timer"
	"github.com/2beens/ironlog/internal/tracker"
	"github.com/2beens/ironlog/internal/workout"

	"github.com/spf13/cobra"
)

var (
	flagTrackDay  string
	flagTrackDate string

	trackCmd = &cobra.Command{
		Use:   "track",
		Short: "Log a workout session interactively",
		Long: `Starts an interactive session for today's workout day
(or the day given with --day). Type "help" inside the session
for the list of commands.`,
		RunE: runTrack,
	}
)

func init() {
	trackCmd.Flags().StringVar(&flagTrackDay, "day", "", "plan day to train (day1..day5), defaults by weekday")
	trackCmd.Flags().StringVar(&flagTrackDate, "date", "", "workout date as YYYY-MM-DD, defaults to today")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	plan := a.planRepo.Load(ctx)

	dayKey := flagTrackDay
	if dayKey == "" {
		dayKey = workout.DayForWeekday(time.Now().Weekday())
	}
	day, ok := plan.Day(dayKey)
	if !ok {
		return fmt.Errorf("unknown plan day %q", dayKey)
	}

	date := flagTrackDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}

	session := workout.NewSession(dayKey, date)
	return runTrackLoop(ctx, a, session, day)
}

// runTrackLoop drives the set-by-set REPL until the session is saved
// or abandoned.
func runTrackLoop(ctx context.Context, a *app, session *workout.Session, day workout.Day) error {
	rest := timer.NewCountdown(nil, func() {
		fmt.Println("\n*** rest over, back to work ***")
	})
	defer rest.Stop()
	rest.SetDuration(time.Duration(a.cfg.RestTimerSecs) * time.Second)

	stopwatch := timer.NewStopwatch()
	stopwatch.Start()

	fmt.Printf("== %s (%s) ==\n", day.Name, session.Date)
	printExercise(ctx, a, session, day)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "help", "h":
			printTrackHelp()
		case "set", "s":
			if err := handleSetCommand(session, fields[1:]); err != nil {
				fmt.Println(err)
				continue
			}
			rest.Start()
			printProgress(session, day)
		case "notes":
			session.SetNotes(session.Index, strings.TrimPrefix(line, fields[0]+" "))
		case "done", "d":
			session.MarkExerciseCompleted(session.Index)
			fallthrough
		case "next", "n":
			if !session.Advance(len(day.Exercises)) {
				fmt.Println("last exercise reached, type \"save\" to finish")
				continue
			}
			printExercise(ctx, a, session, day)
		case "back", "b":
			session.Back()
			printExercise(ctx, a, session, day)
		case "progress", "p":
			printProgress(session, day)
		case "save":
			rest.Stop()
			stopwatch.Stop()
			return saveSession(ctx, a, session, day, stopwatch.Elapsed())
		case "quit", "q":
			rest.Stop()
			fmt.Println("session discarded")
			return nil
		default:
			fmt.Printf("unknown command %q, type \"help\"\n", fields[0])
		}
	}
}

// handleSetCommand parses "set <num> <weight>x<reps>" or
// "set <num> <weight> <reps>". Zero for both values clears the slot.
func handleSetCommand(session *workout.Session, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: set <num> <weight>x<reps>")
	}
	setNum, err := strconv.Atoi(args[0])
	if err != nil || setNum < 1 {
		return fmt.Errorf("invalid set number %q", args[0])
	}

	var weightStr, repsStr string
	if len(args) >= 3 {
		weightStr, repsStr = args[1], args[2]
	} else {
		var found bool
		weightStr, repsStr, found = strings.Cut(args[1], "x")
		if !found {
			return errors.New("usage: set <num> <weight>x<reps>")
		}
	}

	weight, err := strconv.ParseFloat(weightStr, 64)
	if err != nil || weight < 0 {
		return fmt.Errorf("invalid weight %q", weightStr)
	}
	reps, err := strconv.Atoi(repsStr)
	if err != nil || reps < 0 {
		return fmt.Errorf("invalid reps %q", repsStr)
	}

	session.RecordSet(session.Index, setNum, weight, reps)
	return nil
}

func printExercise(ctx context.Context, a *app, session *workout.Session, day workout.Day) {
	if session.Index >= len(day.Exercises) {
		return
	}
	ex := day.Exercises[session.Index]
	fmt.Printf("\n[%d/%d] %s - %d sets x %s reps (%s)\n",
		session.Index+1, len(day.Exercises), ex.Name, ex.Sets, ex.Reps, ex.Type)

	last, err := a.resolver.LastPerformance(ctx, ex.Name)
	switch {
	case err == nil:
		fmt.Printf("  last time: %.1f x %d (%.1f %s moved)\n",
			last.Weight, last.Reps, last.Tonnage, a.cfg.WeightUnit)
	case errors.Is(err, lookback.ErrNoHistory):
		fmt.Println("  first time on this one")
	default:
		fmt.Printf("  lookback unavailable: %s\n", err)
	}

	if suggestion, err := a.resolver.SuggestOverload(ctx, ex.Name, 1); err == nil {
		fmt.Printf("  suggestion: %.1f x %d\n", suggestion.Weight, suggestion.Reps)
	}
}

func printProgress(session *workout.Session, day workout.Day) {
	progress := workout.SessionProgress(session, day)
	fmt.Printf("progress: %d/%d sets (%.0f%%) [%s]\n",
		progress.CompletedSets, progress.TotalSets, progress.Percentage, progress.Status)
}

func saveSession(ctx context.Context, a *app, session *workout.Session, day workout.Day, elapsed time.Duration) error {
	result, err := a.svc.SaveSession(ctx, session, day)
	if err != nil {
		if errors.Is(err, tracker.ErrNothingToSave) {
			fmt.Println("nothing logged, nothing saved")
			return nil
		}
		return err
	}

	fmt.Printf("saved workout %d: %d sets, %.1f %s total, %s elapsed\n",
		result.Entry.ID, result.Entry.TotalVolume, result.Entry.TotalTonnage,
		a.cfg.WeightUnit, elapsed.Round(time.Second))
	for _, imp := range result.Improvements {
		fmt.Printf("*** new personal record on %s: %.1f x %d (was %.1f x %d) ***\n",
			imp.Exercise, imp.New.Weight, imp.New.Reps, imp.Old.Weight, imp.Old.Reps)
	}
	return nil
}

func printTrackHelp() {
	fmt.Print(`commands:
  set <num> <weight>x<reps>   log a set (0x0 clears it)
  notes <text>                attach notes to current exercise
  done                        mark exercise complete and advance
  next / back                 move between exercises
  progress                    show completion
  save                        finish and persist the workout
  quit                        abandon the session
`)
}
