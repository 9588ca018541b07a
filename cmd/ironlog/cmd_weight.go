package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	weightCmd = &cobra.Command{
		Use:   "weight",
		Short: "Track body weight",
	}
	weightAddCmd = &cobra.Command{
		Use:   "add <weight>",
		Short: "Record today's body weight",
		Args:  cobra.ExactArgs(1),
		RunE:  runWeightAdd,
	}
	weightListCmd = &cobra.Command{
		Use:   "list",
		Short: "List all body weight measurements",
		RunE:  runWeightList,
	}
)

func init() {
	weightCmd.AddCommand(weightAddCmd, weightListCmd)
	rootCmd.AddCommand(weightCmd)
}

func runWeightAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	weight, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid weight %q", args[0])
	}
	if err := a.weights.Add(cmd.Context(), weight); err != nil {
		return err
	}
	fmt.Printf("recorded %.1f %s\n", weight, a.cfg.WeightUnit)
	return nil
}

func runWeightList(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	measurements, err := a.weights.All(cmd.Context())
	if err != nil {
		return err
	}
	if len(measurements) == 0 {
		fmt.Println("no measurements yet")
		return nil
	}

	for _, m := range measurements {
		fmt.Printf("%s  %6.1f %s\n", m.Date, m.Weight, a.cfg.WeightUnit)
	}
	return nil
}
