package favorites

import "sync"

// ChangeType names what a mutation did.
type ChangeType string

const (
	ChangeClusterSelected ChangeType = "cluster.changed"
	ChangeItemAdded       ChangeType = "item.added"
	ChangeItemRemoved     ChangeType = "item.removed"
	ChangeItemUpdated     ChangeType = "item.updated"
	ChangeItemsReordered  ChangeType = "items.reordered"
	ChangeGroupAdded      ChangeType = "group.added"
	ChangeGroupRemoved    ChangeType = "group.removed"
	ChangeGroupToggled    ChangeType = "group.toggled"
	ChangeRestored        ChangeType = "store.restored"
)

// Change describes one state transition. Version increases by one for every
// published change.
type Change struct {
	Type      ChangeType
	ClusterID string
	ItemID    string
	GroupID   string
	Version   uint64
}

// Subscription receives changes until it is unsubscribed or the store closes.
type Subscription <-chan Change

const subscriberBuffer = 64

type broker struct {
	mu   sync.Mutex
	subs map[chan Change]struct{}
}

func newBroker() *broker {
	return &broker{subs: make(map[chan Change]struct{})}
}

func (b *broker) subscribe() chan Change {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Change, subscriberBuffer)
	if b.subs == nil {
		close(ch)
		return ch
	}
	b.subs[ch] = struct{}{}
	return ch
}

func (b *broker) unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		if Subscription(ch) == sub {
			delete(b.subs, ch)
			close(ch)
			return
		}
	}
}

// publish never blocks: a subscriber with a full buffer misses the change.
func (b *broker) publish(c Change) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case ch <- c:
		default:
		}
	}
}

func (b *broker) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *broker) close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
