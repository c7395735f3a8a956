package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/five82/clusterfav/internal/app"
	"github.com/five82/clusterfav/internal/config"
	"github.com/five82/clusterfav/internal/favorites"
)

// DataCmd handles whole-store operations.
type DataCmd struct {
	store *favorites.Store
}

// Format names an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// parseFormat accepts an explicit format or infers it from a file name.
func parseFormat(format, file string) (Format, error) {
	switch strings.ToLower(format) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "":
		switch strings.ToLower(filepath.Ext(file)) {
		case ".yaml", ".yml":
			return FormatYAML, nil
		}
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown format %q; use json or yaml", format)
}

// Export writes the full snapshot, every cluster included.
func (c DataCmd) Export(ctx context.Context, w io.Writer, format Format) error {
	encode := favorites.Encode
	if format == FormatYAML {
		encode = favorites.EncodeYAML
	}
	data, err := encode(c.store.Snapshot())
	if err != nil {
		return err
	}
	if format == FormatJSON {
		data = append(data, '\n')
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// Import replaces the stored favorites with the snapshot in data.
func (c DataCmd) Import(ctx context.Context, data []byte, format Format) error {
	decode := favorites.Decode
	if format == FormatYAML {
		decode = favorites.DecodeYAML
	}
	snap, err := decode(data)
	if err != nil {
		return fmt.Errorf("decode favorites: %w", err)
	}
	if err := waitSaved(ctx, c.store.Restore(snap)); err != nil {
		return err
	}

	pterm.Success.Printfln("Imported %d favorites and %d groups", c.store.ItemsCount(), c.store.GroupsCount())
	return nil
}

// --- Cobra wiring ---

func newExportCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all favorites",
		Long:  "Print the stored favorites of every cluster in the extension-store JSON format, or as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			formatFlag, _ := cmd.Flags().GetString("format")
			format, err := parseFormat(formatFlag, output)
			if err != nil {
				return err
			}
			return flags.withSession(cmd, false, func(s *app.Session) error {
				c := DataCmd{store: s.Store}
				if output == "" || output == "-" {
					return c.Export(cmd.Context(), cmd.OutOrStdout(), format)
				}
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create export: %w", err)
				}
				if err := c.Export(cmd.Context(), f, format); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("close export: %w", err)
				}
				pterm.Success.Printfln("Exported to %s", output)
				return nil
			})
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().StringP("format", "f", "", "json or yaml (default from the file extension, else json)")
	return cmd
}

func newImportCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all favorites from an export file",
		Long:  "Replace the stored favorites of every cluster with the contents of an export file (\"-\" reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatFlag, _ := cmd.Flags().GetString("format")
			format, err := parseFormat(formatFlag, args[0])
			if err != nil {
				return err
			}
			var data []byte
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}
			return flags.withSession(cmd, false, func(s *app.Session) error {
				return DataCmd{store: s.Store}.Import(cmd.Context(), data, format)
			})
		},
	}
	cmd.Flags().StringP("format", "f", "", "json or yaml (default from the file extension, else json)")
	return cmd
}

func newPathCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the favorites store location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.StorePath())
			return nil
		},
	}
}
