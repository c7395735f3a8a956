package favorites

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/five82/clusterfav/internal/logging"
	"github.com/five82/clusterfav/internal/persist"
)

// Store holds the favorites of every cluster and the active cluster.
type Store struct {
	mu        sync.RWMutex
	items     []FavoriteItem
	groups    []FavoriteGroup
	clusterID string
	version   uint64

	now    func() time.Time
	writer *persist.Writer
	sink   persist.Sink
	events *broker
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for timestamps and ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithWriter persists every mutation through w. Without a writer mutations
// stay in memory and their Pending resolves immediately.
func WithWriter(w *persist.Writer) Option {
	return func(s *Store) { s.writer = w }
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		items:  []FavoriteItem{},
		groups: []FavoriteGroup{},
		now:    time.Now,
		events: newBroker(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the snapshot held by sink and returns a store that saves back
// to it. A missing snapshot yields an empty store; a malformed one is logged
// and whatever could be parsed is kept. Only a sink read failure is returned.
// The store owns sink from here on and closes it in Close.
func Open(ctx context.Context, sink persist.Sink, opts ...Option) (*Store, error) {
	data, err := sink.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}

	snap, err := Decode(data)
	if err != nil {
		log := logging.WithComponent("favorites")
		log.Warn().Err(err).Str("location", sink.Location()).Msg("favorites file malformed, using defaults")
	}

	s := New(append(opts, WithWriter(persist.NewWriter(sink)))...)
	s.sink = sink
	s.items = snap.Items
	s.groups = snap.Groups
	return s, nil
}

// Close flushes pending saves, closes every subscription and releases the
// sink opened by Open.
func (s *Store) Close(ctx context.Context) error {
	s.events.close()

	if s.writer != nil {
		if err := s.writer.Close(ctx); err != nil {
			// The writer may still be inside Save; the sink is released
			// only after it stops.
			if s.sink != nil {
				sink, stopped := s.sink, s.writer.Stopped()
				go func() {
					<-stopped
					_ = sink.Close()
				}()
			}
			return fmt.Errorf("flush favorites: %w", err)
		}
	}
	if s.sink != nil {
		if err := s.sink.Close(); err != nil {
			return fmt.Errorf("close favorites sink: %w", err)
		}
	}
	return nil
}

// Subscribe returns a channel receiving every subsequent change.
func (s *Store) Subscribe() Subscription {
	return s.events.subscribe()
}

// Unsubscribe stops delivery to sub and closes it.
func (s *Store) Unsubscribe(sub Subscription) {
	s.events.unsubscribe(sub)
}

// SubscriberCount returns the number of live subscriptions.
func (s *Store) SubscriberCount() int {
	return s.events.count()
}

// SetCurrentCluster selects the active partition. The id is trusted as is.
func (s *Store) SetCurrentCluster(clusterID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clusterID = clusterID
	s.notify(Change{Type: ChangeClusterSelected, ClusterID: clusterID})
}

// CurrentCluster returns the active cluster id, empty when none is set.
func (s *Store) CurrentCluster() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clusterID
}

// CurrentClusterItems returns the active cluster's items in display order.
func (s *Store) CurrentClusterItems() []FavoriteItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ClusterItems(s.items, s.clusterID)
}

// CurrentClusterGroups returns the active cluster's groups in creation order.
func (s *Store) CurrentClusterGroups() []FavoriteGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ClusterGroups(s.groups, s.clusterID)
}

// UngroupedFavorites returns the active cluster's items outside any live
// group.
func (s *Store) UngroupedFavorites() []FavoriteItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Ungrouped(ClusterItems(s.items, s.clusterID), ClusterGroups(s.groups, s.clusterID))
}

// FavoritesByGroup returns the active cluster's items in groupID.
func (s *Store) FavoritesByGroup(groupID string) []FavoriteItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ByGroup(ClusterItems(s.items, s.clusterID), groupID)
}

// Menu returns the dropdown layout of the active cluster.
func (s *Store) Menu() Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return BuildMenu(ClusterItems(s.items, s.clusterID), ClusterGroups(s.groups, s.clusterID))
}

// IsFavorited reports whether the active cluster has an item for path.
func (s *Store) IsFavorited(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.clusterID == "" {
		return false
	}
	return slices.ContainsFunc(s.items, func(it FavoriteItem) bool {
		return it.Path == path && it.ClusterID == s.clusterID
	})
}

// Item looks up an item by id in any cluster.
func (s *Store) Item(id string) (FavoriteItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.itemIndex(id); i >= 0 {
		return cloneItems(s.items[i : i+1])[0], true
	}
	return FavoriteItem{}, false
}

// Group looks up a group by id in any cluster.
func (s *Store) Group(id string) (FavoriteGroup, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.groupIndex(id); i >= 0 {
		return s.groups[i], true
	}
	return FavoriteGroup{}, false
}

// ItemsCount returns the number of items across all clusters.
func (s *Store) ItemsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// GroupsCount returns the number of groups across all clusters.
func (s *Store) GroupsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.groups)
}

// AddFavorite appends a new item to the active cluster. Without an active
// cluster nothing happens and ok is false. Duplicate paths are allowed;
// callers that want uniqueness check IsFavorited first.
func (s *Store) AddFavorite(nf NewFavorite) (item FavoriteItem, ok bool, saved *persist.Pending) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clusterID == "" {
		return FavoriteItem{}, false, persist.Resolved(nil)
	}

	now := s.now().UTC()
	item = FavoriteItem{
		ID:        newID(itemIDPrefix, now),
		Title:     nf.Title,
		Path:      nf.Path,
		Icon:      nf.Icon,
		GroupID:   nf.GroupID,
		ClusterID: s.clusterID,
		CreatedAt: now,
	}
	s.items = append(s.items, item)
	s.notify(Change{Type: ChangeItemAdded, ClusterID: item.ClusterID, ItemID: item.ID, GroupID: item.GroupID})
	return item, true, s.save()
}

// RemoveFavorite deletes the item with id. It saves even when the id is
// unknown.
func (s *Store) RemoveFavorite(id string) *persist.Pending {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.itemIndex(id); i >= 0 {
		removed := s.items[i]
		s.items = slices.Delete(s.items, i, i+1)
		s.notify(Change{Type: ChangeItemRemoved, ClusterID: removed.ClusterID, ItemID: id, GroupID: removed.GroupID})
	}
	return s.save()
}

// UpdateFavorite overwrites the fields set in u. Unknown ids are ignored.
func (s *Store) UpdateFavorite(id string, u FavoriteUpdate) *persist.Pending {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return persist.Resolved(nil)
	}

	it := &s.items[i]
	if u.Title != nil {
		it.Title = *u.Title
	}
	if u.Path != nil {
		it.Path = *u.Path
	}
	if u.Icon != nil {
		it.Icon = *u.Icon
	}
	if u.GroupID != nil {
		it.GroupID = *u.GroupID
	}
	if u.ClusterID != nil {
		it.ClusterID = *u.ClusterID
	}
	switch {
	case u.ClearOrder:
		it.Order = nil
	case u.Order != nil:
		o := *u.Order
		it.Order = &o
	}

	s.notify(Change{Type: ChangeItemUpdated, ClusterID: it.ClusterID, ItemID: id, GroupID: it.GroupID})
	return s.save()
}

// ReorderFavorites sets Order to the position in ids for every listed item of
// the active cluster. Unknown ids, ids of other clusters and unlisted items
// are left alone.
func (s *Store) ReorderFavorites(ids []string) *persist.Pending {
	s.mu.Lock()
	defer s.mu.Unlock()

	positions := make(map[string]int, len(ids))
	for i, id := range ids {
		positions[id] = i
	}

	for i := range s.items {
		it := &s.items[i]
		if it.ClusterID != s.clusterID {
			continue
		}
		if pos, ok := positions[it.ID]; ok {
			it.Order = &pos
		}
	}

	s.notify(Change{Type: ChangeItemsReordered, ClusterID: s.clusterID})
	return s.save()
}

// AddGroup creates an expanded group in the active cluster.
func (s *Store) AddGroup(name string) (FavoriteGroup, *persist.Pending) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	g := FavoriteGroup{
		ID:        newID(groupIDPrefix, now),
		Name:      name,
		Expanded:  true,
		ClusterID: s.clusterID,
		CreatedAt: now,
	}
	s.groups = append(s.groups, g)
	s.notify(Change{Type: ChangeGroupAdded, ClusterID: g.ClusterID, GroupID: g.ID})
	return g, s.save()
}

// RemoveGroup drops the group. Its items are deleted when removeItems is
// set, otherwise they become ungrouped. Unknown ids are ignored.
func (s *Store) RemoveGroup(id string, removeItems bool) *persist.Pending {
	s.mu.Lock()
	defer s.mu.Unlock()

	gi := s.groupIndex(id)
	if gi < 0 {
		return persist.Resolved(nil)
	}

	if removeItems {
		s.items = slices.DeleteFunc(s.items, func(it FavoriteItem) bool {
			return it.GroupID == id
		})
	} else {
		for i := range s.items {
			if s.items[i].GroupID == id {
				s.items[i].GroupID = ""
			}
		}
	}

	removed := s.groups[gi]
	s.groups = slices.Delete(s.groups, gi, gi+1)
	s.notify(Change{Type: ChangeGroupRemoved, ClusterID: removed.ClusterID, GroupID: id})
	return s.save()
}

// ToggleGroupExpanded flips the group's expanded flag.
func (s *Store) ToggleGroupExpanded(id string) *persist.Pending {
	s.mu.Lock()
	defer s.mu.Unlock()

	gi := s.groupIndex(id)
	if gi < 0 {
		return persist.Resolved(nil)
	}
	s.groups[gi].Expanded = !s.groups[gi].Expanded
	s.notify(Change{Type: ChangeGroupToggled, ClusterID: s.groups[gi].ClusterID, GroupID: id})
	return s.save()
}

// AddItemToGroup points the item at groupID. The group is not required to
// exist.
func (s *Store) AddItemToGroup(itemID, groupID string) *persist.Pending {
	return s.UpdateFavorite(itemID, FavoriteUpdate{GroupID: &groupID})
}

// RemoveItemFromGroup ungroups the item.
func (s *Store) RemoveItemFromGroup(itemID string) *persist.Pending {
	none := ""
	return s.UpdateFavorite(itemID, FavoriteUpdate{GroupID: &none})
}

// Snapshot returns a deep copy of all items and groups.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Items: cloneItems(s.items), Groups: cloneGroups(s.groups)}
}

// Restore replaces all items and groups with snap and saves. Nil sequences
// become empty ones.
func (s *Store) Restore(snap Snapshot) *persist.Pending {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = cloneItems(snap.Items)
	s.groups = cloneGroups(snap.Groups)
	s.notify(Change{Type: ChangeRestored, ClusterID: s.clusterID})
	return s.save()
}

// notify must be called with mu held.
func (s *Store) notify(c Change) {
	s.version++
	c.Version = s.version
	s.events.publish(c)
}

// save must be called with mu held so queued snapshots keep mutation order.
func (s *Store) save() *persist.Pending {
	if s.writer == nil {
		return persist.Resolved(nil)
	}
	data, err := Encode(Snapshot{Items: s.items, Groups: s.groups})
	if err != nil {
		log := logging.WithComponent("favorites")
		log.Error().Err(err).Msg("encode favorites failed")
		return persist.Resolved(err)
	}
	return s.writer.Submit(data)
}

func (s *Store) itemIndex(id string) int {
	return slices.IndexFunc(s.items, func(it FavoriteItem) bool { return it.ID == id })
}

func (s *Store) groupIndex(id string) int {
	return slices.IndexFunc(s.groups, func(g FavoriteGroup) bool { return g.ID == id })
}
