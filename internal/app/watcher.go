package app

import (
	"context"

	"github.com/five82/clusterfav/internal/favorites"
	"github.com/five82/clusterfav/internal/logging"
	"github.com/five82/clusterfav/internal/prefs"
)

// StartWatcher launches a background goroutine that logs every store change
// and remembers the active cluster in prefs. It returns immediately; the
// returned channel is closed once the store is closed or ctx is cancelled.
func StartWatcher(ctx context.Context, store *favorites.Store, prefsPath string) <-chan struct{} {
	sub := store.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				store.Unsubscribe(sub)
				return
			case c, ok := <-sub:
				if !ok {
					return
				}
				observe(c, prefsPath)
			}
		}
	}()
	return done
}

func observe(c favorites.Change, prefsPath string) {
	logger := logging.WithComponent("events")
	logger.Debug().
		Str("type", string(c.Type)).
		Str("cluster_id", c.ClusterID).
		Str("item_id", c.ItemID).
		Str("group_id", c.GroupID).
		Uint64("version", c.Version).
		Msg("favorites changed")

	if c.Type != favorites.ChangeClusterSelected || c.ClusterID == "" {
		return
	}
	clusterLog := logging.WithCluster(c.ClusterID)
	err := prefs.Update(prefsPath, func(p *prefs.Prefs) { p.LastCluster = c.ClusterID })
	if err != nil {
		clusterLog.Warn().Err(err).Str("component", "events").Msg("remember cluster")
		return
	}
	clusterLog.Info().Str("component", "events").Msg("cluster selected")
}
