package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"notename/internal/config"
	"notename/internal/export"
	"notename/internal/mapstore"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var sourceFlag string
	var destFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Rename and copy exported notes into the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			runCfg, err := overrideSource(cfg, sourceFlag)
			if err != nil {
				return err
			}
			if destFlag != "" {
				expanded, err := config.ExpandPath(destFlag)
				if err != nil {
					return err
				}
				copied := *runCfg
				copied.Paths.OutputDir = expanded
				runCfg = &copied
			}

			runner, err := export.NewRunner(runCfg, logger)
			if err != nil {
				return err
			}
			result, err := runner.Export(cmd.Context())
			if err != nil {
				return err
			}

			if runCfg.Manifest.Enabled {
				if err := writeManifest(cmd, runCfg.Manifest.Path, result); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d notes to %s (run %s)\n",
				len(result.Entries), runCfg.Paths.OutputDir, result.RunID)
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceFlag, "source", "", "Source directory (overrides paths.source_dir)")
	cmd.Flags().StringVar(&destFlag, "dest", "", "Output directory (overrides paths.output_dir)")

	return cmd
}

func writeManifest(cmd *cobra.Command, path string, result *export.Result) error {
	store, err := mapstore.Open(path)
	if err != nil {
		return fmt.Errorf("open manifest: %w", err)
	}
	defer store.Close()

	mappings := make([]mapstore.Mapping, 0, len(result.Entries))
	for _, e := range result.Entries {
		mappings = append(mappings, mapstore.Mapping{
			RunID:    result.RunID,
			Original: e.Source,
			Filename: e.Filename,
		})
	}
	if err := store.RecordRun(cmd.Context(), mappings); err != nil {
		return fmt.Errorf("record manifest: %w", err)
	}
	return nil
}
