package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/five82/clusterfav/internal/app"
)

// Version is stamped at build time.
var Version = "dev"

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	configPath string
	prefsPath  string
	cluster    string
	url        string
	logLevel   string
}

func (f *rootFlags) options(interactive bool) app.Options {
	return app.Options{
		ConfigPath:  f.configPath,
		PrefsPath:   f.prefsPath,
		Cluster:     f.cluster,
		URL:         f.url,
		LogLevel:    f.logLevel,
		Interactive: interactive,
	}
}

// withSession opens a session for the duration of fn.
func (f *rootFlags) withSession(cmd *cobra.Command, interactive bool, fn func(*app.Session) error) (err error) {
	ctx := cmd.Context()
	s, err := app.Open(ctx, f.options(interactive))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(context.WithoutCancel(ctx)); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(s)
}

// NewRootCommand builds the clusterfav command tree.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "clusterfav",
		Short: "Per-cluster favorites for Kubernetes dashboard pages",
		Long: "clusterfav keeps navigation shortcuts to dashboard resource pages per cluster,\n" +
			"organized into optional groups and stored in the dashboard's extension store.\n" +
			"Without a subcommand it opens the interactive favorites page.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/clusterfav/config.toml)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/clusterfav/prefs.toml)")
	pf.StringVar(&flags.cluster, "cluster", "", "active cluster id, renderer hostname or cluster-<id> element id")
	pf.StringVar(&flags.url, "url", "", "renderer URL to detect the active cluster from")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.MarkFlagsMutuallyExclusive("cluster", "url")

	root.AddCommand(
		newListCommand(flags),
		newAddCommand(flags),
		newRemoveCommand(flags),
		newUpdateCommand(flags),
		newReorderCommand(flags),
		newCheckCommand(flags),
		newGroupCommand(flags),
		newExportCommand(flags),
		newImportCommand(flags),
		newPathCommand(flags),
		newLogsCommand(flags),
		newUICommand(flags),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := fang.Execute(ctx, NewRootCommand(), fang.WithVersion(Version)); err != nil {
		return 1
	}
	return 0
}

func newUICommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive favorites page",
		Long:  "Open the favorites page. Selecting a favorite with enter prints its path and exits.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, flags)
		},
	}
}

func runUI(cmd *cobra.Command, flags *rootFlags) error {
	return flags.withSession(cmd, true, func(s *app.Session) error {
		res, err := s.RunUI(cmd.Context())
		if err != nil {
			return err
		}
		if res.Selected != nil {
			fmt.Fprintln(cmd.OutOrStdout(), res.Selected.Path)
		}
		return nil
	})
}
