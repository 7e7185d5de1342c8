package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"mtag/internal/config"
	"mtag/internal/logging"
	"mtag/internal/mtag"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <sidecar-file>",
		Short: "Parse one sidecar file and show its resolved entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			logger := logging.NewNop()
			entries := mtag.NewLoader(path, logger).Entries()
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s contains no sidecar entries\n", path)
				return nil
			}

			resolver := mtag.NewResolver(cfg.Import.SidecarExtensions, cfg.Import.MaxResolveDepth, logger)
			dir := filepath.Dir(path)

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				resolved, err := resolver.Resolve(entry.Ref, dir)
				if err != nil {
					resolved = fmt.Sprintf("(unresolved: %v)", err)
				}
				rows = append(rows, []string{
					strconv.Itoa(entry.Index),
					entry.Ref,
					resolved,
					tagString(entry.Tags, "title"),
					tagString(entry.Tags, "artist"),
					strconv.Itoa(len(entry.Tags)),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Reference", "Resolved Path", "Title", "Artist", "Tags"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
}

func tagString(tags mtag.TagSet, key string) string {
	switch v := tags[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		if len(v) > 0 {
			return fmt.Sprint(v[0])
		}
		return ""
	default:
		return fmt.Sprint(v)
	}
}
