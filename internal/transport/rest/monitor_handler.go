package rest

import (
	"net/http"

	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
)

type SnapshotStore interface {
	Set(domain.Snapshot) uint64
	Get() domain.Snapshot
}

type StoreObserver interface {
	SnapshotStored()
}

// maxSnapshotBytes bounds a published body.
const maxSnapshotBytes = 4 << 20

type MonitorHandler struct {
	store   SnapshotStore
	decoder RequestDecoder
	log     logger.Logger
	obs     StoreObserver
}

func NewMonitorHandler(store SnapshotStore, log logger.Logger, obs StoreObserver) *MonitorHandler {
	return &MonitorHandler{
		store:   store,
		decoder: NewJSONDecoder(maxSnapshotBytes),
		log:     log,
		obs:     obs,
	}
}

// Publish replaces the cached snapshot.
func (h *MonitorHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var snap domain.Snapshot
	if err := h.decoder.Decode(w, r, &snap); err != nil {
		h.log.Debug("rejected snapshot body", "error", err)
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(snap); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	version := h.store.Set(snap)
	if h.obs != nil {
		h.obs.SnapshotStored()
	}
	h.log.Debug("snapshot stored", "host", snap.Host, "sequence", snap.Sequence, "version", version)

	JSONSuccess(w, http.StatusCreated, APIResponse{
		Message: "Snapshot stored",
	})
}

// Latest returns the cached snapshot, or an empty one before the first
// publish.
func (h *MonitorHandler) Latest(w http.ResponseWriter, r *http.Request) {
	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: "OK",
		Data:    h.store.Get(),
		Meta:    domain.DefaultUnits(),
	})
}
