package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// FavoriteItem is a saved shortcut to a navigation destination in one
// cluster.
type FavoriteItem struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Path      string    `json:"path" yaml:"path"`
	Icon      string    `json:"icon,omitempty" yaml:"icon,omitempty"`
	GroupID   string    `json:"groupId,omitempty" yaml:"groupId,omitempty"`
	ClusterID string    `json:"clusterId" yaml:"clusterId"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	Order     *int      `json:"order,omitempty" yaml:"order,omitempty"`
}

// HasOrder reports whether an explicit order was assigned.
func (i FavoriteItem) HasOrder() bool {
	return i.Order != nil
}

// FavoriteGroup is a named, collapsible folder of items in one cluster.
type FavoriteGroup struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Expanded  bool      `json:"expanded" yaml:"expanded"`
	ClusterID string    `json:"clusterId" yaml:"clusterId"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// Snapshot is the full persisted state.
type Snapshot struct {
	Items  []FavoriteItem  `json:"items" yaml:"items"`
	Groups []FavoriteGroup `json:"groups" yaml:"groups"`
}

// NewFavorite holds the caller-supplied fields of AddFavorite.
type NewFavorite struct {
	Title   string
	Path    string
	Icon    string
	GroupID string
}

// FavoriteUpdate lists fields to overwrite; nil fields are left alone.
// An empty GroupID ungroups the item. ClearOrder drops the explicit order.
type FavoriteUpdate struct {
	Title      *string
	Path       *string
	Icon       *string
	GroupID    *string
	ClusterID  *string
	Order      *int
	ClearOrder bool
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Items:  cloneItems(s.Items),
		Groups: cloneGroups(s.Groups),
	}
}

// Encode renders the snapshot as pretty-printed JSON. Nil sequences are
// written as empty arrays.
func Encode(s Snapshot) ([]byte, error) {
	if s.Items == nil {
		s.Items = []FavoriteItem{}
	}
	if s.Groups == nil {
		s.Groups = []FavoriteGroup{}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode favorites: %w", err)
	}
	return data, nil
}

// Decode parses a persisted snapshot. Each top-level field is decoded on its
// own, and so is every element inside it: a malformed entry is skipped and
// reported in the returned error while its siblings are kept. A missing or
// null field becomes an empty sequence. Only input that is not a JSON object
// at all yields an empty snapshot.
func Decode(data []byte) (Snapshot, error) {
	snap := Snapshot{Items: []FavoriteItem{}, Groups: []FavoriteGroup{}}
	if len(data) == 0 {
		return snap, nil
	}

	var raw struct {
		Items  json.RawMessage `json:"items"`
		Groups json.RawMessage `json:"groups"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return snap, fmt.Errorf("parse favorites: %w", err)
	}

	var errs []error
	snap.Items, errs = decodeEach[FavoriteItem](raw.Items, "items", errs)
	snap.Groups, errs = decodeEach[FavoriteGroup](raw.Groups, "groups", errs)
	return snap, errors.Join(errs...)
}

func decodeEach[T any](raw json.RawMessage, field string, errs []error) ([]T, []error) {
	out := []T{}
	if len(raw) == 0 {
		return out, errs
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return out, append(errs, fmt.Errorf("parse %s: %w", field, err))
	}
	for i, elem := range elems {
		var v T
		if err := json.Unmarshal(elem, &v); err != nil {
			errs = append(errs, fmt.Errorf("parse %s[%d]: %w", field, i, err))
			continue
		}
		out = append(out, v)
	}
	return out, errs
}

// timestampLayouts are the createdAt forms accepted on load, newest first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// looseTime reads createdAt the way the dashboard writes it: usually an
// ISO-8601 string, sometimes epoch milliseconds. Anything unreadable is the
// zero time, which sorts last.
type looseTime time.Time

func (t *looseTime) UnmarshalJSON(data []byte) error {
	*t = looseTime{}
	if string(data) == "null" {
		return nil
	}
	var ms float64
	if err := json.Unmarshal(data, &ms); err == nil {
		*t = looseTime(time.UnixMilli(int64(ms)).UTC())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = looseTime(parsed)
			return nil
		}
	}
	return nil
}

type itemJSON FavoriteItem

// UnmarshalJSON accepts any createdAt form, see looseTime.
func (i *FavoriteItem) UnmarshalJSON(data []byte) error {
	var wire struct {
		itemJSON
		CreatedAt looseTime `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*i = FavoriteItem(wire.itemJSON)
	i.CreatedAt = time.Time(wire.CreatedAt)
	return nil
}

type groupJSON FavoriteGroup

// UnmarshalJSON accepts any createdAt form, see looseTime.
func (g *FavoriteGroup) UnmarshalJSON(data []byte) error {
	var wire struct {
		groupJSON
		CreatedAt looseTime `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*g = FavoriteGroup(wire.groupJSON)
	g.CreatedAt = time.Time(wire.CreatedAt)
	return nil
}

func cloneItems(items []FavoriteItem) []FavoriteItem {
	dup := make([]FavoriteItem, len(items))
	copy(dup, items)
	for i := range dup {
		if dup[i].Order != nil {
			o := *dup[i].Order
			dup[i].Order = &o
		}
	}
	return dup
}

func cloneGroups(groups []FavoriteGroup) []FavoriteGroup {
	dup := make([]FavoriteGroup, len(groups))
	copy(dup, groups)
	return dup
}
