package favorites

import (
	"sort"

	"github.com/samber/lo"
)

// SortItems returns items ordered by Order ascending (unset last), then by
// CreatedAt, then by ID. The input is not modified.
func SortItems(items []FavoriteItem) []FavoriteItem {
	sorted := cloneItems(items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return itemLess(sorted[i], sorted[j])
	})
	return sorted
}

func itemLess(a, b FavoriteItem) bool {
	switch {
	case a.Order != nil && b.Order != nil && *a.Order != *b.Order:
		return *a.Order < *b.Order
	case a.Order != nil && b.Order == nil:
		return true
	case a.Order == nil && b.Order != nil:
		return false
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

// ClusterItems returns the sorted items of clusterID. An empty clusterID
// matches nothing.
func ClusterItems(items []FavoriteItem, clusterID string) []FavoriteItem {
	if clusterID == "" {
		return []FavoriteItem{}
	}
	return SortItems(lo.Filter(items, func(it FavoriteItem, _ int) bool {
		return it.ClusterID == clusterID
	}))
}

// ClusterGroups returns the groups of clusterID in insertion order.
func ClusterGroups(groups []FavoriteGroup, clusterID string) []FavoriteGroup {
	if clusterID == "" {
		return []FavoriteGroup{}
	}
	return lo.Filter(groups, func(g FavoriteGroup, _ int) bool {
		return g.ClusterID == clusterID
	})
}

// Ungrouped returns the items without a group or whose group is not among
// groups. Dangling references count as ungrouped.
func Ungrouped(items []FavoriteItem, groups []FavoriteGroup) []FavoriteItem {
	live := lo.SliceToMap(groups, func(g FavoriteGroup) (string, struct{}) {
		return g.ID, struct{}{}
	})
	return lo.Filter(items, func(it FavoriteItem, _ int) bool {
		if it.GroupID == "" {
			return true
		}
		_, ok := live[it.GroupID]
		return !ok
	})
}

// ByGroup returns the items referencing groupID.
func ByGroup(items []FavoriteItem, groupID string) []FavoriteItem {
	return lo.Filter(items, func(it FavoriteItem, _ int) bool {
		return it.GroupID == groupID
	})
}

// Menu is the sidebar dropdown layout: loose items first, then one section
// per group.
type Menu struct {
	Ungrouped []FavoriteItem
	Sections  []MenuSection
}

// MenuSection is one group with its items. Items is empty when the group is
// collapsed; Count always holds the number of items in the group.
type MenuSection struct {
	Group FavoriteGroup
	Items []FavoriteItem
	Count int
}

// RowKind distinguishes the entries of Menu.Rows.
type RowKind int

const (
	RowItem RowKind = iota
	RowGroup
)

// MenuRow is one selectable line of a rendered menu.
type MenuRow struct {
	Kind    RowKind
	Item    FavoriteItem
	Group   FavoriteGroup
	Count   int
	Grouped bool // item row nested under a group header
}

// BuildMenu lays out already cluster-filtered and sorted items and groups.
func BuildMenu(items []FavoriteItem, groups []FavoriteGroup) Menu {
	menu := Menu{Ungrouped: Ungrouped(items, groups)}
	for _, g := range groups {
		members := ByGroup(items, g.ID)
		section := MenuSection{Group: g, Count: len(members), Items: []FavoriteItem{}}
		if g.Expanded {
			section.Items = members
		}
		menu.Sections = append(menu.Sections, section)
	}
	return menu
}

// Rows flattens the menu into display order.
func (m Menu) Rows() []MenuRow {
	rows := make([]MenuRow, 0, len(m.Ungrouped)+len(m.Sections))
	for _, it := range m.Ungrouped {
		rows = append(rows, MenuRow{Kind: RowItem, Item: it})
	}
	for _, s := range m.Sections {
		rows = append(rows, MenuRow{Kind: RowGroup, Group: s.Group, Count: s.Count})
		for _, it := range s.Items {
			rows = append(rows, MenuRow{Kind: RowItem, Item: it, Grouped: true})
		}
	}
	return rows
}

// Len returns the total number of items in the menu, collapsed or not.
func (m Menu) Len() int {
	return len(m.Ungrouped) + lo.SumBy(m.Sections, func(s MenuSection) int { return s.Count })
}
