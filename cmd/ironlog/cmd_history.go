package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/2beens/ironlog/internal/workout"

	"github.com/spf13/cobra"
)

var (
	flagFeedbackRating int
	flagFeedbackTags   []string

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Browse and manage saved workouts",
	}
	historyListCmd = &cobra.Command{
		Use:   "list",
		Short: "List all saved workouts",
		RunE:  runHistoryList,
	}
	historyShowCmd = &cobra.Command{
		Use:   "show <id>",
		Short: "Show one workout in full",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShow,
	}
	historyDeleteCmd = &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a workout and rebuild personal records",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryDelete,
	}
	historyEditCmd = &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a saved workout's sets interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryEdit,
	}
	historyFeedbackCmd = &cobra.Command{
		Use:   "feedback <id>",
		Short: "Attach a rating and tags to a workout",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryFeedback,
	}
)

func init() {
	historyFeedbackCmd.Flags().IntVar(&flagFeedbackRating, "rating", 0, "workout rating 1-5 (0 leaves it unset)")
	historyFeedbackCmd.Flags().StringSliceVar(&flagFeedbackTags, "tags", nil, "feedback tags, e.g. --tags tired,short-on-time")

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd, historyEditCmd, historyFeedbackCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	entries, err := a.history.All(cmd.Context())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no workouts yet")
		return nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	for _, e := range entries {
		fmt.Printf("%d  %s  %-24s %3d sets  %8.1f %s\n",
			e.ID, e.Date, e.Name, e.TotalVolume, e.TotalTonnage, a.cfg.WeightUnit)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	id, err := parseEntryID(args[0])
	if err != nil {
		return err
	}
	entry, err := a.svc.EntryForEdit(cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s (%s)\n", entry.Date, entry.Name, entry.Day)
	for _, ex := range entry.Exercises {
		fmt.Printf("  %s\n", ex.Name)
		for _, num := range sortedSetNums(ex.Sets) {
			set := ex.Sets[num]
			fmt.Printf("    set %d: %.1f x %d (tonnage %.1f, e1rm %.1f)\n",
				num, set.Weight, set.Reps, set.Tonnage, set.E1RM)
		}
		if ex.Notes != "" {
			fmt.Printf("    notes: %s\n", ex.Notes)
		}
	}
	if entry.Rating > 0 {
		fmt.Printf("rating: %d/5", entry.Rating)
		if len(entry.Tags) > 0 {
			fmt.Printf(" [%s]", strings.Join(entry.Tags, ", "))
		}
		fmt.Println()
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	id, err := parseEntryID(args[0])
	if err != nil {
		return err
	}
	if err := a.svc.DeleteEntry(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("workout %d deleted, personal records rebuilt\n", id)
	return nil
}

func runHistoryEdit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	id, err := parseEntryID(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	entry, err := a.svc.EntryForEdit(ctx, id)
	if err != nil {
		return err
	}

	plan := a.planRepo.Load(ctx)
	day, ok := plan.Day(entry.Day)
	if !ok {
		// the plan changed since this workout; rebuild a day shape
		// from the entry itself so editing still works
		day = dayFromEntry(*entry)
	}

	session := workout.NewSession(entry.Day, entry.Date)
	session.HydrateFromEntry(*entry)
	return runEditLoop(ctx, a, session, day, *entry)
}

func runHistoryFeedback(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	id, err := parseEntryID(args[0])
	if err != nil {
		return err
	}
	if err := a.history.AttachFeedback(cmd.Context(), id, flagFeedbackRating, flagFeedbackTags); err != nil {
		return err
	}
	fmt.Printf("feedback saved on workout %d\n", id)
	return nil
}

// runEditLoop is the reduced REPL for editing a saved workout: set
// changes only, then replace-and-recompute on save.
func runEditLoop(ctx context.Context, a *app, session *workout.Session, day workout.Day, original workout.Entry) error {
	fmt.Printf("== editing workout %d: %s (%s) ==\n", original.ID, day.Name, original.Date)
	printExercise(ctx, a, session, day)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("edit> ")
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
			fmt.Print(`commands:
  set <num> <weight>x<reps>   change a set (0x0 removes it)
  notes <text>                replace the exercise notes
  next / back                 move between exercises
  save                        persist the edit and rebuild records
  quit                        discard changes
`)
		case "set", "s":
			if err := handleSetCommand(session, fields[1:]); err != nil {
				fmt.Println(err)
			}
		case "notes":
			session.SetNotes(session.Index, strings.TrimPrefix(line, fields[0]+" "))
		case "next", "n":
			if !session.Advance(len(day.Exercises)) {
				fmt.Println("last exercise reached, type \"save\" to finish")
				continue
			}
			printExercise(ctx, a, session, day)
		case "back", "b":
			session.Back()
			printExercise(ctx, a, session, day)
		case "save":
			edited := original
			edited.Exercises = session.Flatten(day)
			edited.TotalVolume, edited.TotalTonnage = entryTotals(edited.Exercises)
			saved, err := a.svc.ReplaceEntry(ctx, original.ID, edited)
			if err != nil {
				return err
			}
			fmt.Printf("workout updated (new id %d), personal records rebuilt\n", saved.ID)
			return nil
		case "quit", "q":
			fmt.Println("edit discarded")
			return nil
		default:
			fmt.Printf("unknown command %q, type \"help\"\n", fields[0])
		}
	}
}

func dayFromEntry(entry workout.Entry) workout.Day {
	day := workout.Day{Name: entry.Name}
	for _, ex := range entry.Exercises {
		day.Exercises = append(day.Exercises, workout.Exercise{
			Name: ex.Name,
			Sets: len(ex.Sets),
			Reps: "-",
		})
	}
	return day
}

func entryTotals(exercises []workout.EntryExercise) (volume int, tonnage float64) {
	for _, ex := range exercises {
		for _, set := range ex.Sets {
			if !set.Qualifying() {
				continue
			}
			volume++
			tonnage += set.Tonnage
		}
	}
	return volume, tonnage
}

func parseEntryID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid workout id %q", raw)
	}
	return id, nil
}

func sortedSetNums(sets map[int]workout.Set) []int {
	nums := make([]int, 0, len(sets))
	for num := range sets {
		nums = append(nums, num)
	}
	sort.Ints(nums)
	return nums
}
