// Package favorites implements the per-cluster favorites store.
//
// # Overview
//
// A favorite is a shortcut to a page of the Kubernetes dashboard, scoped to
// one cluster. Favorites can be placed in named groups and ordered by hand.
// The Store keeps items and groups of every cluster in memory and exposes the
// active cluster's slice of them; SetCurrentCluster picks that cluster.
//
// # Ordering
//
// Items of a cluster are always returned sorted: explicit Order ascending,
// items without an Order after those, then by creation time. ReorderFavorites
// assigns Order from the position in the list it is given.
//
// # Groups
//
// FavoriteItem.GroupID is a weak reference. An item whose group no longer
// exists is shown as ungrouped rather than treated as an error. RemoveGroup
// either deletes the group's items or clears their GroupID.
//
// # Persistence
//
// Every mutation encodes the full Snapshot and hands it to a persist.Writer.
// The method returns once memory is updated; the returned *persist.Pending
// resolves when the write finished. Write failures are logged and recorded
// on the Pending but never returned by the mutating method, so the user keeps
// working with unsaved state until the next successful save.
//
//	store, err := favorites.Open(ctx, persist.NewFileSink(path))
//	if err != nil {
//		return err
//	}
//	defer store.Close(ctx)
//
//	store.SetCurrentCluster(clusterID)
//	item, ok, saved := store.AddFavorite(favorites.NewFavorite{Title: "Pods", Path: "/workloads/pods"})
//	_ = saved.Wait(ctx) // optional
//
// # Notification
//
// Subscribe returns a channel that receives a Change for every state
// transition, published before the mutating method returns. Views recompute
// from CurrentClusterItems, Menu or the pure helpers in views.go instead of
// caching derived state.
package favorites
