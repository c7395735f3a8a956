package ui

import (
	"github.com/samber/lo"

	"github.com/five82/clusterfav/internal/favorites"
)

// moveItem shifts the item with the given id by delta positions among its
// siblings (the ungrouped items, or the members of its group) and returns the
// id order of every cluster item to hand to ReorderFavorites. It reports
// false when the item is unknown or already at the edge.
func moveItem(items []favorites.FavoriteItem, groups []favorites.FavoriteGroup, id string, delta int) ([]string, bool) {
	lists := make([][]favorites.FavoriteItem, 0, len(groups)+1)
	lists = append(lists, favorites.Ungrouped(items, groups))
	for _, g := range groups {
		lists = append(lists, favorites.ByGroup(items, g.ID))
	}

	moved := false
	for _, list := range lists {
		idx := lo.IndexOf(lo.Map(list, func(it favorites.FavoriteItem, _ int) string { return it.ID }), id)
		if idx < 0 {
			continue
		}
		target := idx + delta
		if target < 0 || target >= len(list) {
			return nil, false
		}
		list[idx], list[target] = list[target], list[idx]
		moved = true
		break
	}
	if !moved {
		return nil, false
	}

	return lo.FlatMap(lists, func(list []favorites.FavoriteItem, _ int) []string {
		return lo.Map(list, func(it favorites.FavoriteItem, _ int) string { return it.ID })
	}), true
}

// nextGroupID returns the group after current in groups, wrapping around.
// An empty current selects the first group.
func nextGroupID(groups []favorites.FavoriteGroup, current string) string {
	if len(groups) == 0 {
		return ""
	}
	_, idx, found := lo.FindIndexOf(groups, func(g favorites.FavoriteGroup) bool { return g.ID == current })
	if !found {
		return groups[0].ID
	}
	return groups[(idx+1)%len(groups)].ID
}
