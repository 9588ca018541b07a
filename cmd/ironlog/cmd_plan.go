package main

import (
	"fmt"
	"strconv"

	"github.com/2beens/ironlog/internal/workout"

	"github.com/spf13/cobra"
)

var (
	planCmd = &cobra.Command{
		Use:   "plan",
		Short: "Show and edit the workout plan",
	}
	planShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the full plan",
		RunE:  runPlanShow,
	}
	planMoveCmd = &cobra.Command{
		Use:   "move <day> <index> <up|down>",
		Short: "Move an exercise within a day",
		Args:  cobra.ExactArgs(3),
		RunE:  runPlanMove,
	}
	planRemoveCmd = &cobra.Command{
		Use:   "remove <day> <index>",
		Short: "Remove an exercise from a day",
		Args:  cobra.ExactArgs(2),
		RunE:  runPlanRemove,
	}
	planResetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Restore the default plan",
		RunE:  runPlanReset,
	}
)

func init() {
	planCmd.AddCommand(planShowCmd, planMoveCmd, planRemoveCmd, planResetCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlanShow(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	plan := a.planRepo.Load(cmd.Context())
	for _, key := range plan.DayKeys() {
		day, _ := plan.Day(key)
		fmt.Printf("%s: %s\n", key, day.Name)
		for i, ex := range day.Exercises {
			fmt.Printf("  %d. %-28s %d x %s (%s)\n", i, ex.Name, ex.Sets, ex.Reps, ex.Type)
		}
	}
	return nil
}

func runPlanMove(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid exercise index %q", args[1])
	}
	var direction int
	switch args[2] {
	case "up":
		direction = -1
	case "down":
		direction = 1
	default:
		return fmt.Errorf("direction must be up or down, got %q", args[2])
	}

	ctx := cmd.Context()
	editor := workout.NewPlanEditor(a.planRepo)
	editor.Begin(ctx)
	if err := editor.MoveExercise(args[0], index, direction); err != nil {
		editor.Discard()
		return err
	}
	if _, err := editor.Commit(ctx); err != nil {
		return err
	}
	fmt.Println("plan updated")
	return nil
}

func runPlanRemove(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid exercise index %q", args[1])
	}

	ctx := cmd.Context()
	editor := workout.NewPlanEditor(a.planRepo)
	editor.Begin(ctx)
	if err := editor.DeleteExercise(args[0], index); err != nil {
		editor.Discard()
		return err
	}
	if _, err := editor.Commit(ctx); err != nil {
		return err
	}
	fmt.Println("plan updated")
	return nil
}

func runPlanReset(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if !a.planRepo.Save(cmd.Context(), workout.DefaultPlan()) {
		return fmt.Errorf("failed to persist default plan")
	}
	fmt.Println("plan reset to default")
	return nil
}
