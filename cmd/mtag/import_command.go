package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mtag/internal/importer"
	"mtag/internal/library"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <directory>",
		Short: "Import a directory tree of m-tag sidecar files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			store, err := library.Open(cfg)
			if err != nil {
				return fmt.Errorf("open library: %w", err)
			}
			defer store.Close()

			imp := importer.New(cfg, store, logger, importer.WithDryRun(dryRun))
			summary, err := imp.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintln(out, "Dry run; nothing was written")
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Sidecar Files", "Added", "Skipped", "Entry Skips", "Failed Files"},
				[][]string{{
					strconv.Itoa(summary.SidecarFiles),
					strconv.Itoa(summary.TracksAdded),
					strconv.Itoa(summary.TracksSkipped),
					strconv.Itoa(summary.EntriesSkipped),
					strconv.Itoa(summary.FilesFailed),
				}},
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve and convert without writing to the library")
	return cmd
}
