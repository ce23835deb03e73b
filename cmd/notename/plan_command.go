package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"notename/internal/config"
	"notename/internal/export"
)

type planRow struct {
	Source   string `json:"source"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
}

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var sourceFlag string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the filenames an export run would produce",
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

			runner, err := export.NewRunner(runCfg, logger)
			if err != nil {
				return err
			}
			result, err := runner.Plan(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([]planRow, 0, len(result.Entries))
			for _, e := range result.Entries {
				rows = append(rows, planRow{
					Source:   filepath.Base(e.Source),
					Title:    e.Title,
					Filename: e.Filename,
				})
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), rows)
			}

			out := cmd.OutOrStdout()
			if isatty.IsTerminal(os.Stdout.Fd()) {
				tableRows := make([][]string, 0, len(rows))
				for _, row := range rows {
					tableRows = append(tableRows, []string{row.Source, row.Title, row.Filename})
				}
				fmt.Fprintln(out, renderTable([]string{"Source", "Title", "Filename"}, tableRows))
				return nil
			}
			for _, row := range rows {
				fmt.Fprintf(out, "%s\t%s\t%s\n", row.Source, row.Title, row.Filename)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceFlag, "source", "", "Source directory (overrides paths.source_dir)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the plan as JSON")

	return cmd
}

// overrideSource returns a copy of cfg with the source directory replaced
// when the flag is set.
func overrideSource(cfg *config.Config, sourceFlag string) (*config.Config, error) {
	if sourceFlag == "" {
		return cfg, nil
	}
	expanded, err := config.ExpandPath(sourceFlag)
	if err != nil {
		return nil, err
	}
	runCfg := *cfg
	runCfg.Paths.SourceDir = expanded
	return &runCfg, nil
}
