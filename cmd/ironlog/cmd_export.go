package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	flagExportOut string

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export all completed sets as CSV",
		RunE:  runExport,
	}
)

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) (err error) {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	rows, err := a.history.ExportRows(cmd.Context())
	if err != nil {
		return err
	}

	out := os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"date", "workout", "exercise", "set", "weight", "reps", "tonnage", "e1rm", "notes"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Date,
			row.Workout,
			row.Exercise,
			strconv.Itoa(row.Set),
			strconv.FormatFloat(row.Weight, 'f', -1, 64),
			strconv.Itoa(row.Reps),
			strconv.FormatFloat(row.Tonnage, 'f', -1, 64),
			strconv.FormatFloat(row.E1RM, 'f', -1, 64),
			row.Notes,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if flagExportOut != "" {
		fmt.Printf("%d rows exported to %s\n", len(rows), flagExportOut)
	}
	return nil
}
