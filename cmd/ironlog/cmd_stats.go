package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var (
	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Show workout totals, streak and progression",
		RunE:  runStats,
	}
	statsProgressionCmd = &cobra.Command{
		Use:   "progression <exercise>",
		Short: "Show best tonnage per date for one exercise",
		Args:  cobra.ExactArgs(1),
		RunE:  runStatsProgression,
	}
	prsCmd = &cobra.Command{
		Use:   "prs",
		Short: "List personal records",
		RunE:  runPRs,
	}
)

func init() {
	statsCmd.AddCommand(statsProgressionCmd)
	rootCmd.AddCommand(statsCmd, prsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	overview, err := a.analyzer.Overview(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("workouts:         %d\n", overview.TotalWorkouts)
	fmt.Printf("sets logged:      %d\n", overview.TotalSets)
	fmt.Printf("personal records: %d\n", overview.PersonalRecs)
	fmt.Printf("streak:           %d day(s)\n", overview.StreakDays)
	return nil
}

func runStatsProgression(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	points, err := a.analyzer.ProgressionSeries(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(points) == 0 {
		fmt.Printf("no history for %q\n", args[0])
		return nil
	}

	for _, p := range points {
		fmt.Printf("%s  %8.1f %s\n", p.Date, p.Tonnage, a.cfg.WeightUnit)
	}
	return nil
}

func runPRs(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	prs, err := a.ledger.All(cmd.Context())
	if err != nil {
		return err
	}
	if len(prs) == 0 {
		fmt.Println("no personal records yet")
		return nil
	}

	names := make([]string, 0, len(prs))
	for name := range prs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pr := prs[name]
		fmt.Printf("%-28s %6.1f x %-2d  tonnage %8.1f  e1rm %6.1f\n",
			name, pr.Weight, pr.Reps, pr.Tonnage, pr.E1RM)
	}
	return nil
}
