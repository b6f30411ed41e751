package handlers

import (
	"context"
	"io"
	"net/http"

	"press_manager/internal/live"

	"github.com/gin-gonic/gin"
)

// CollectionFetcher loads the current contents of one collection so a
// new subscriber gets a snapshot immediately instead of waiting for the
// next mutation.
type CollectionFetcher func(ctx context.Context) (interface{}, error)

type LiveHandler struct {
	hub      *live.Hub
	fetchers map[string]CollectionFetcher
}

func NewLiveHandler(hub *live.Hub, fetchers map[string]CollectionFetcher) *LiveHandler {
	return &LiveHandler{hub: hub, fetchers: fetchers}
}

// Stream serves full-collection snapshots over SSE. Consumers replace
// their state on every event; repeated identical snapshots are expected.
func (h *LiveHandler) Stream(c *gin.Context) {
	collection := c.Param("collection")
	fetch, ok := h.fetchers[collection]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown collection"})
		return
	}

	ctx := c.Request.Context()
	snapshots, stop := h.hub.Subscribe(ctx, collection)
	defer stop()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")

	items, err := fetch(ctx)
	if err == nil {
		if initial, err := live.NewSnapshot(collection, items); err == nil {
			c.SSEvent("snapshot", initial)
			c.Writer.Flush()
		}
	}

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, open := <-snapshots:
			if !open {
				return false
			}
			c.SSEvent("snapshot", snapshot)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
