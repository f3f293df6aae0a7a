package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vigil-sh/vigil/internal/constants"
	"github.com/vigil-sh/vigil/internal/events"
	"github.com/vigil-sh/vigil/internal/monitor"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	monitor   *monitor.Monitor
	hub       *events.Hub
	storeFile string
	logger    *slog.Logger
}

// NewHandlers creates new HTTP handlers
func NewHandlers(mon *monitor.Monitor, hub *events.Hub, storeFile string, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		monitor:   mon,
		hub:       hub,
		storeFile: storeFile,
		logger:    logger,
	}
}

// GetStatus handles GET /api/v1/status
func (h *Handlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, ToStatusResponse(h.monitor.Status(), h.storeFile))
}

// GetSites handles GET /api/v1/sites
func (h *Handlers) GetSites(w http.ResponseWriter, r *http.Request) {
	sites := h.monitor.Sites()

	resp := SiteListResponse{
		Sites: make([]SiteResponse, len(sites)),
	}
	for i, site := range sites {
		resp.Sites[i] = ToSiteResponse(site)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// GetEvents handles GET /api/v1/events
func (h *Handlers) GetEvents(w http.ResponseWriter, r *http.Request) {
	limit := constants.DefaultEventLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
			if limit > constants.MaxEventLimit {
				limit = constants.MaxEventLimit
			}
		}
	}

	recent := h.hub.Recent(limit)

	resp := EventsResponse{
		Events: make([]EventResponse, len(recent)),
		Count:  len(recent),
	}
	for i, e := range recent {
		resp.Events[i] = ToEventResponse(e)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// writeJSON writes a JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encoding JSON response", "error", err)
	}
}
