package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/five82/clusterfav/internal/config"
	"github.com/five82/clusterfav/internal/logtail"
)

func newLogsCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the interactive page's log",
		Long:  "Print the last lines of clusterfav.log, written next to the favorites store while the favorites page runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, _ := cmd.Flags().GetInt("lines")
			match, _ := cmd.Flags().GetString("grep")

			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out, err := logtail.Tail(cfg.LogPath(), logtail.Options{Lines: lines, Match: match})
			if err != nil {
				return err
			}
			if len(out) == 0 {
				pterm.Info.Printfln("No log lines in %s", cfg.LogPath())
				return nil
			}
			for _, line := range out {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().IntP("lines", "n", 50, "Number of lines to show (0 for all)")
	cmd.Flags().String("grep", "", "Only show lines containing this text")
	return cmd
}
