package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/five82/clusterfav/internal/app"
	"github.com/five82/clusterfav/internal/favorites"
)

// GroupsCmd handles group operations.
type GroupsCmd struct {
	store *favorites.Store
}

// findGroup looks a group of the active cluster up by id, then by name.
func findGroup(store *favorites.Store, idOrName string) (favorites.FavoriteGroup, error) {
	groups := store.CurrentClusterGroups()
	if g, ok := lo.Find(groups, func(g favorites.FavoriteGroup) bool { return g.ID == idOrName }); ok {
		return g, nil
	}
	matches := lo.Filter(groups, func(g favorites.FavoriteGroup, _ int) bool { return g.Name == idOrName })
	switch len(matches) {
	case 0:
		return favorites.FavoriteGroup{}, fmt.Errorf("group %s not found", idOrName)
	case 1:
		return matches[0], nil
	default:
		return favorites.FavoriteGroup{}, fmt.Errorf("group name %q is ambiguous; use its id", idOrName)
	}
}

// Add creates a group in the active cluster.
func (c GroupsCmd) Add(ctx context.Context, name string) error {
	if c.store.CurrentCluster() == "" {
		return ErrNoCluster
	}
	g, saved := c.store.AddGroup(name)
	if err := waitSaved(ctx, saved); err != nil {
		return err
	}

	pterm.Success.Printfln("Created group %s (%s)", g.Name, g.ID)
	return nil
}

// List prints the groups of the active cluster.
func (c GroupsCmd) List(ctx context.Context) error {
	cluster := c.store.CurrentCluster()
	if cluster == "" {
		pterm.Warning.Println(ErrNoCluster.Error())
		return nil
	}
	groups := c.store.CurrentClusterGroups()
	if len(groups) == 0 {
		pterm.Info.Printfln("No groups in cluster %s", cluster)
		return nil
	}

	rows := pterm.TableData{{"ID", "Name", "Items", "Expanded"}}
	for _, g := range groups {
		count := len(c.store.FavoritesByGroup(g.ID))
		rows = append(rows, []string{g.ID, g.Name, strconv.Itoa(count), strconv.FormatBool(g.Expanded)})
	}
	printTable(rows)
	return nil
}

// RemoveGroupInput holds input for deleting a group.
type RemoveGroupInput struct {
	Group       string
	RemoveItems bool
}

// Remove deletes a group, ungrouping or deleting its favorites.
func (c GroupsCmd) Remove(ctx context.Context, in RemoveGroupInput) error {
	g, err := findGroup(c.store, in.Group)
	if err != nil {
		return err
	}
	count := len(c.store.FavoritesByGroup(g.ID))
	if err := waitSaved(ctx, c.store.RemoveGroup(g.ID, in.RemoveItems)); err != nil {
		return err
	}

	if in.RemoveItems {
		pterm.Success.Printfln("Deleted group %s and %d favorites", g.Name, count)
		return nil
	}
	pterm.Success.Printfln("Deleted group %s; %d favorites ungrouped", g.Name, count)
	return nil
}

// Toggle flips the expanded state of a group.
func (c GroupsCmd) Toggle(ctx context.Context, group string) error {
	g, err := findGroup(c.store, group)
	if err != nil {
		return err
	}
	if err := waitSaved(ctx, c.store.ToggleGroupExpanded(g.ID)); err != nil {
		return err
	}

	state := "collapsed"
	if !g.Expanded {
		state = "expanded"
	}
	pterm.Success.Printfln("Group %s %s", g.Name, state)
	return nil
}

// Assign moves a favorite into a group.
func (c GroupsCmd) Assign(ctx context.Context, itemID, group string) error {
	item, ok := c.store.Item(itemID)
	if !ok {
		return fmt.Errorf("favorite %s not found", itemID)
	}
	g, err := findGroup(c.store, group)
	if err != nil {
		return err
	}
	if err := waitSaved(ctx, c.store.AddItemToGroup(item.ID, g.ID)); err != nil {
		return err
	}

	pterm.Success.Printfln("Moved %s to %s", item.Title, g.Name)
	return nil
}

// Unassign moves a favorite out of its group.
func (c GroupsCmd) Unassign(ctx context.Context, itemID string) error {
	item, ok := c.store.Item(itemID)
	if !ok {
		return fmt.Errorf("favorite %s not found", itemID)
	}
	if err := waitSaved(ctx, c.store.RemoveItemFromGroup(item.ID)); err != nil {
		return err
	}

	pterm.Success.Printfln("Ungrouped %s", item.Title)
	return nil
}

// --- Cobra wiring ---

func newGroupCommand(flags *rootFlags) *cobra.Command {
	group := &cobra.Command{
		Use:     "group",
		Aliases: []string{"groups"},
		Short:   "Manage favorite groups",
		Long:    "Commands for organizing favorites of the active cluster into groups",
	}

	run := func(fn func(cmd *cobra.Command, c GroupsCmd, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			return flags.withSession(cmd, false, func(s *app.Session) error {
				return fn(cmd, GroupsCmd{store: s.Store}, args)
			})
		}
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a group",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, c GroupsCmd, args []string) error {
			return c.Add(cmd.Context(), args[0])
		}),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List groups",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, c GroupsCmd, args []string) error {
			return c.List(cmd.Context())
		}),
	}

	remove := &cobra.Command{
		Use:     "remove <id-or-name>",
		Aliases: []string{"rm"},
		Short:   "Delete a group",
		Long:    "Delete a group. Its favorites become ungrouped unless --items is given",
		Args:    cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, c GroupsCmd, args []string) error {
			items, _ := cmd.Flags().GetBool("items")
			return c.Remove(cmd.Context(), RemoveGroupInput{Group: args[0], RemoveItems: items})
		}),
	}
	remove.Flags().Bool("items", false, "Also delete the group's favorites")

	toggle := &cobra.Command{
		Use:   "toggle <id-or-name>",
		Short: "Expand or collapse a group",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, c GroupsCmd, args []string) error {
			return c.Toggle(cmd.Context(), args[0])
		}),
	}

	assign := &cobra.Command{
		Use:   "assign <favorite-id> <group-id-or-name>",
		Short: "Move a favorite into a group",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, c GroupsCmd, args []string) error {
			return c.Assign(cmd.Context(), args[0], args[1])
		}),
	}

	unassign := &cobra.Command{
		Use:   "unassign <favorite-id>",
		Short: "Move a favorite out of its group",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, c GroupsCmd, args []string) error {
			return c.Unassign(cmd.Context(), args[0])
		}),
	}

	group.AddCommand(add, list, remove, toggle, assign, unassign)
	return group
}
