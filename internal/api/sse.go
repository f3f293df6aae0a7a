package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// StreamEvents handles GET /api/v1/events/stream (SSE)
func (h *Handlers) StreamEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	subID, ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(subID)

	// Initial comment establishes the connection
	fmt.Fprintf(w, ": connected\n\n")
	flusher.Flush()

	// Slow clients drop events at the subscription buffer rather than
	// blocking the monitor; write errors mean the client went away.
	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}

			data, err := json.Marshal(ToEventResponse(event))
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				h.logger.Debug("SSE write error, client likely disconnected", "error", err)
				return
			}
			flusher.Flush()
		}
	}
}
