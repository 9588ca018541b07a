package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/ironlog/internal/timer"

	"github.com/spf13/cobra"
)

var (
	flagRestSecs int

	restCmd = &cobra.Command{
		Use:   "rest",
		Short: "Run a standalone rest countdown",
		RunE:  runRest,
	}
)

func init() {
	presets := make([]string, 0, len(timer.RestPresets))
	for _, p := range timer.RestPresets {
		presets = append(presets, strconv.Itoa(int(p.Seconds())))
	}
	restCmd.Flags().IntVar(&flagRestSecs, "secs", 0,
		"countdown length in seconds, e.g. "+strings.Join(presets, "/")+" (default from config)")
	rootCmd.AddCommand(restCmd)
}

func runRest(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	secs := flagRestSecs
	if secs <= 0 {
		secs = a.cfg.RestTimerSecs
	}

	done := make(chan struct{})
	countdown := timer.NewCountdown(
		func(remaining time.Duration) {
			fmt.Printf("\r%3d s remaining", int(remaining.Seconds()))
		},
		func() {
			fmt.Println("\nrest over")
			close(done)
		},
	)
	countdown.SetDuration(time.Duration(secs) * time.Second)
	countdown.Start()
	defer countdown.Stop()

	select {
	case <-done:
	case <-cmd.Context().Done():
		return cmd.Context().Err()
	}
	return nil
}
