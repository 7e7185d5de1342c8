package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mtag/internal/library"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show library size and recent import runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := library.Open(cfg)
			if err != nil {
				return fmt.Errorf("open library: %w", err)
			}
			defer store.Close()

			count, err := store.TrackCount(cmd.Context())
			if err != nil {
				return err
			}
			runs, err := store.RecentImports(cmd.Context(), 10)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Library: %s\n", store.Path())
			fmt.Fprintf(out, "Tracks: %d\n", count)
			if len(runs) == 0 {
				fmt.Fprintln(out, "No import runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.FinishedAt.Local().Format("2006-01-02 15:04"),
					run.Root,
					strconv.Itoa(run.TracksAdded),
					strconv.Itoa(run.TracksSkipped),
					strconv.Itoa(run.FilesFailed),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Finished", "Root", "Added", "Skipped", "Failed"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}
}
