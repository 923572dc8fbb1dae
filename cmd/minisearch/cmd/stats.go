package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Aman-CERP/minisearch/internal/output"
	"github.com/Aman-CERP/minisearch/internal/ui"
)

func newStatsCmd() *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show corpus statistics",
		Long:  `Load the corpus and print the indexed document count and unique term count.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.New(cmd.OutOrStdout())
			styles := ui.GetStyles(noColor || !isTerminal(cmd.OutOrStdout()))

			eng, err := buildEngine(out, dataFile)
			if err != nil {
				return err
			}

			printStats(out, styles, eng)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataFile, "file", "f", "", "Load corpus from a pipe-delimited batch file instead of the samples")

	return cmd
}
