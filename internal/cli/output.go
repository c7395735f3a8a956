package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/five82/clusterfav/internal/favorites"
	"github.com/five82/clusterfav/internal/persist"
)

// ErrNoCluster is returned by commands that need an active cluster.
var ErrNoCluster = errors.New("no active cluster; pass --cluster or --url")

// printTable renders rows with the first row as header.
func printTable(rows pterm.TableData) {
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// waitSaved blocks until the mutation reached the sink.
func waitSaved(ctx context.Context, p *persist.Pending) error {
	if err := p.Wait(ctx); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

func orderText(it favorites.FavoriteItem) string {
	if !it.HasOrder() {
		return "-"
	}
	return strconv.Itoa(*it.Order)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
