package services

import (
	"context"
)

// SnapshotPublisher pushes a wholesale collection snapshot to every live
// subscriber. Fan-out failures never undo a durable write: the mutation
// has already happened, so publish errors are logged by callers and the
// next mutation republishes the full state anyway.
type SnapshotPublisher interface {
	Publish(ctx context.Context, collection string, items interface{}) error
}
