package live

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

// Snapshot is one wholesale view of a collection. Every mutation
// republishes the full collection, so consumers replace their state on
// each message and must tolerate repeated identical snapshots.
type Snapshot struct {
	Collection string          `json:"collection"`
	Items      json.RawMessage `json:"items"`
	At         time.Time       `json:"at"`
}

// NewSnapshot marshals items into a Snapshot for the given collection.
func NewSnapshot(collection string, items interface{}) (Snapshot, error) {
	payload, err := json.Marshal(items)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to marshal %s snapshot: %w", collection, err)
	}
	return Snapshot{Collection: collection, Items: payload, At: time.Now().UTC()}, nil
}

// Hub fans full-collection snapshots out over Redis pub/sub, one channel
// per collection.
type Hub struct {
	rdb *redis.Client
}

func NewHub(redisURL string) (*Hub, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Hub{rdb: rdb}, nil
}

func channel(collection string) string {
	return "live:" + collection
}

func (h *Hub) Publish(ctx context.Context, collection string, items interface{}) error {
	snapshot, err := NewSnapshot(collection, items)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot envelope: %w", err)
	}

	return h.rdb.Publish(ctx, channel(collection), payload).Err()
}

// Subscribe returns a stream of snapshots for one collection and a stop
// function. The channel closes when the subscription is stopped or the
// context ends.
func (h *Hub) Subscribe(ctx context.Context, collection string) (<-chan Snapshot, func()) {
	pubsub := h.rdb.Subscribe(ctx, channel(collection))
	out := make(chan Snapshot, 8)

	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var snapshot Snapshot
			if err := json.Unmarshal([]byte(msg.Payload), &snapshot); err != nil {
				slog.Error("Dropping malformed live snapshot", "collection", collection, "error", err)
				continue
			}
			select {
			case out <- snapshot:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { _ = pubsub.Close() }
}

func (h *Hub) Close() error {
	return h.rdb.Close()
}
