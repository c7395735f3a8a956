package cli

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/five82/clusterfav/internal/app"
	"github.com/five82/clusterfav/internal/favorites"
)

// FavoritesCmd handles favorite operations.
type FavoritesCmd struct {
	store *favorites.Store
}

// ListInput holds input for listing favorites.
type ListInput struct {
	All bool
}

// List prints the favorites of the active cluster, or of every cluster.
func (c FavoritesCmd) List(ctx context.Context, in ListInput) error {
	if in.All {
		return c.listAll()
	}

	cluster := c.store.CurrentCluster()
	if cluster == "" {
		pterm.Warning.Println(ErrNoCluster.Error())
		return nil
	}

	groups := c.store.CurrentClusterGroups()
	names := lo.SliceToMap(groups, func(g favorites.FavoriteGroup) (string, string) { return g.ID, g.Name })

	items := c.store.UngroupedFavorites()
	for _, g := range groups {
		items = append(items, c.store.FavoritesByGroup(g.ID)...)
	}
	if len(items) == 0 {
		pterm.Info.Printfln("No favorites in cluster %s", cluster)
		return nil
	}

	rows := pterm.TableData{{"ID", "Title", "Path", "Group", "Order"}}
	for _, it := range items {
		rows = append(rows, []string{it.ID, it.Title, it.Path, dash(names[it.GroupID]), orderText(it)})
	}
	printTable(rows)
	return nil
}

func (c FavoritesCmd) listAll() error {
	snap := c.store.Snapshot()
	if len(snap.Items) == 0 {
		pterm.Info.Println("No favorites stored")
		return nil
	}

	byCluster := lo.GroupBy(snap.Items, func(it favorites.FavoriteItem) string { return it.ClusterID })
	clusters := lo.Keys(byCluster)
	slices.Sort(clusters)

	rows := pterm.TableData{{"Cluster", "ID", "Title", "Path", "Created"}}
	for _, cluster := range clusters {
		for _, it := range favorites.SortItems(byCluster[cluster]) {
			rows = append(rows, []string{dash(cluster), it.ID, it.Title, it.Path, it.CreatedAt.Format(time.RFC3339)})
		}
	}
	printTable(rows)
	return nil
}

// AddInput holds input for adding a favorite.
type AddInput struct {
	Title          string
	Path           string
	Icon           string
	Group          string
	AllowDuplicate bool
}

// Add creates a favorite in the active cluster.
func (c FavoritesCmd) Add(ctx context.Context, in AddInput) error {
	if c.store.CurrentCluster() == "" {
		return ErrNoCluster
	}

	groupID := ""
	if in.Group != "" {
		g, err := findGroup(c.store, in.Group)
		if err != nil {
			return err
		}
		groupID = g.ID
	}

	if !in.AllowDuplicate && c.store.IsFavorited(in.Path) {
		pterm.Warning.Printfln("%s is already a favorite", in.Path)
		return nil
	}

	item, ok, saved := c.store.AddFavorite(favorites.NewFavorite{
		Title:   in.Title,
		Path:    in.Path,
		Icon:    in.Icon,
		GroupID: groupID,
	})
	if !ok {
		return ErrNoCluster
	}
	if err := waitSaved(ctx, saved); err != nil {
		return err
	}

	pterm.Success.Printfln("Added %s (%s)", item.Title, item.ID)
	return nil
}

// RemoveInput holds input for removing a favorite.
type RemoveInput struct {
	ID string
}

// Remove deletes a favorite.
func (c FavoritesCmd) Remove(ctx context.Context, in RemoveInput) error {
	item, ok := c.store.Item(in.ID)
	if !ok {
		return fmt.Errorf("favorite %s not found", in.ID)
	}
	if err := waitSaved(ctx, c.store.RemoveFavorite(in.ID)); err != nil {
		return err
	}

	pterm.Success.Printfln("Removed %s", item.Title)
	return nil
}

// UpdateInput holds input for updating a favorite. Nil fields are left alone.
type UpdateInput struct {
	ID         string
	Title      *string
	Path       *string
	Icon       *string
	Order      *int
	ClearOrder bool
}

// Update changes fields of a favorite.
func (c FavoritesCmd) Update(ctx context.Context, in UpdateInput) error {
	if in.Title == nil && in.Path == nil && in.Icon == nil && in.Order == nil && !in.ClearOrder {
		return fmt.Errorf("nothing to update; pass --title, --path, --icon, --order or --clear-order")
	}
	if _, ok := c.store.Item(in.ID); !ok {
		return fmt.Errorf("favorite %s not found", in.ID)
	}

	saved := c.store.UpdateFavorite(in.ID, favorites.FavoriteUpdate{
		Title:      in.Title,
		Path:       in.Path,
		Icon:       in.Icon,
		Order:      in.Order,
		ClearOrder: in.ClearOrder,
	})
	if err := waitSaved(ctx, saved); err != nil {
		return err
	}

	item, _ := c.store.Item(in.ID)
	rows := pterm.TableData{{"Property", "Value"}}
	rows = append(rows, []string{"ID", item.ID})
	rows = append(rows, []string{"Title", item.Title})
	rows = append(rows, []string{"Path", item.Path})
	rows = append(rows, []string{"Icon", dash(item.Icon)})
	rows = append(rows, []string{"Order", orderText(item)})

	pterm.Success.Println("Favorite updated")
	printTable(rows)
	return nil
}

// ReorderInput holds input for reordering favorites.
type ReorderInput struct {
	IDs []string
}

// Reorder assigns display positions in the given order.
func (c FavoritesCmd) Reorder(ctx context.Context, in ReorderInput) error {
	if c.store.CurrentCluster() == "" {
		return ErrNoCluster
	}
	if err := waitSaved(ctx, c.store.ReorderFavorites(in.IDs)); err != nil {
		return err
	}

	pterm.Success.Printfln("Reordered %d favorites", len(in.IDs))
	return nil
}

// CheckInput holds input for checking a path.
type CheckInput struct {
	Path string
}

// Check reports whether path is a favorite of the active cluster.
func (c FavoritesCmd) Check(ctx context.Context, in CheckInput) error {
	if c.store.CurrentCluster() == "" {
		return ErrNoCluster
	}
	if c.store.IsFavorited(in.Path) {
		pterm.Success.Printfln("%s is a favorite", in.Path)
		return nil
	}
	pterm.Info.Printfln("%s is not a favorite", in.Path)
	return nil
}

// --- Cobra wiring ---

func newListCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List favorites",
		Long:  "List the favorites of the active cluster, ungrouped first, then by group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			return flags.withSession(cmd, false, func(s *app.Session) error {
				return FavoritesCmd{store: s.Store}.List(cmd.Context(), ListInput{All: all})
			})
		},
	}
	cmd.Flags().Bool("all", false, "List favorites of every cluster")
	return cmd
}

func newAddCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title> <path>",
		Short: "Add a favorite",
		Long:  "Add a favorite for a resource page path to the active cluster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			icon, _ := cmd.Flags().GetString("icon")
			group, _ := cmd.Flags().GetString("group")
			allowDup, _ := cmd.Flags().GetBool("allow-duplicate")
			return flags.withSession(cmd, false, func(s *app.Session) error {
				return FavoritesCmd{store: s.Store}.Add(cmd.Context(), AddInput{
					Title:          args[0],
					Path:           args[1],
					Icon:           icon,
					Group:          group,
					AllowDuplicate: allowDup,
				})
			})
		},
	}
	cmd.Flags().String("icon", "", "Icon name shown next to the favorite")
	cmd.Flags().String("group", "", "Group id or name to place the favorite in")
	cmd.Flags().Bool("allow-duplicate", false, "Add even if the path is already a favorite")
	return cmd
}

func newRemoveCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a favorite",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withSession(cmd, false, func(s *app.Session) error {
				return FavoritesCmd{store: s.Store}.Remove(cmd.Context(), RemoveInput{ID: args[0]})
			})
		},
	}
}

func newUpdateCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a favorite",
		Long:  "Change the title, path, icon or display order of a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := UpdateInput{ID: args[0]}
			if cmd.Flags().Changed("title") {
				v, _ := cmd.Flags().GetString("title")
				in.Title = &v
			}
			if cmd.Flags().Changed("path") {
				v, _ := cmd.Flags().GetString("path")
				in.Path = &v
			}
			if cmd.Flags().Changed("icon") {
				v, _ := cmd.Flags().GetString("icon")
				in.Icon = &v
			}
			if cmd.Flags().Changed("order") {
				v, _ := cmd.Flags().GetInt("order")
				in.Order = &v
			}
			in.ClearOrder, _ = cmd.Flags().GetBool("clear-order")
			return flags.withSession(cmd, false, func(s *app.Session) error {
				return FavoritesCmd{store: s.Store}.Update(cmd.Context(), in)
			})
		},
	}
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("path", "", "New resource page path")
	cmd.Flags().String("icon", "", "New icon name")
	cmd.Flags().Int("order", 0, "Explicit display position")
	cmd.Flags().Bool("clear-order", false, "Drop the explicit display position")
	cmd.MarkFlagsMutuallyExclusive("order", "clear-order")
	return cmd
}

func newReorderCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <id>...",
		Short: "Reorder favorites",
		Long:  "Give the listed favorites positions 0..n-1 in the order given; other favorites keep theirs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withSession(cmd, false, func(s *app.Session) error {
				return FavoritesCmd{store: s.Store}.Reorder(cmd.Context(), ReorderInput{IDs: args})
			})
		},
	}
}

func newCheckCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Check whether a path is a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withSession(cmd, false, func(s *app.Session) error {
				return FavoritesCmd{store: s.Store}.Check(cmd.Context(), CheckInput{Path: args[0]})
			})
		},
	}
}
