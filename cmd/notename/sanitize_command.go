package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"notename/internal/filename"
)

func newSanitizeCommand(ctx *commandContext) *cobra.Command {
	var extension string
	var maxBaseLen int
	var hyphens bool

	cmd := &cobra.Command{
		Use:   "sanitize [title...]",
		Short: "Print safe, unique filenames for the given titles",
		Long: "Sanitize turns each title into a filesystem-safe filename. Titles are\n" +
			"taken from the arguments, or from stdin one per line when no arguments\n" +
			"are given. Duplicate titles receive -v2, -v3, ... suffixes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("ext") {
				extension = cfg.Naming.Extension
			}
			if !cmd.Flags().Changed("max-base-len") {
				maxBaseLen = cfg.Naming.MaxBaseLen
			}
			manager, err := filename.NewManager(filename.Options{
				MaxBaseLen: maxBaseLen,
				UseHyphens: hyphens || !cfg.Naming.UseSpaces,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, title := range args {
					fmt.Fprintln(out, manager.SanitizedName(title, extension))
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				fmt.Fprintln(out, manager.SanitizedName(scanner.Text(), extension))
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&extension, "ext", ".md", "Extension appended to every filename")
	cmd.Flags().IntVar(&maxBaseLen, "max-base-len", filename.DefaultMaxBaseLen, "Length budget before the extension")
	cmd.Flags().BoolVar(&hyphens, "hyphens", false, "Join title words with hyphens instead of spaces")

	return cmd
}
