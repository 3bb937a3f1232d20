package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ratesync/internal/domain"
	"ratesync/internal/engine"
)

// SyncEngine is the part of the engine the API drives.
type SyncEngine interface {
	Start(ctx context.Context) error
	State(ctx context.Context) (*domain.SyncState, error)
}

// Settings is the persisted operator configuration.
type Settings interface {
	License(ctx context.Context) (string, error)
	SetLicense(ctx context.Context, license string) error
	Regions(ctx context.Context) ([]domain.Region, error)
	SetRegions(ctx context.Context, regions []domain.Region) error
}

// RatePruner removes rate rows for deselected regions.
type RatePruner interface {
	PruneRegionsExcept(ctx context.Context, regionIDs []string) error
}

type Handler struct {
	engine   SyncEngine
	settings Settings
	rates    RatePruner
	logger   *slog.Logger
}

func NewHandler(eng SyncEngine, settings Settings, rates RatePruner, logger *slog.Logger) *Handler {
	return &Handler{
		engine:   eng,
		settings: settings,
		rates:    rates,
		logger:   logger.With("component", "server"),
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Post("/api/sync", h.startSync)
	router.Get("/api/sync/status", h.syncStatus)
	router.Get("/api/settings", h.getSettings)
	router.Put("/api/settings", h.putSettings)

	return router
}

func (h *Handler) startSync(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Start(r.Context()); err != nil {
		if errors.Is(err, engine.ErrNoLicense) {
			h.writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
			return
		}
		h.logger.Error("start sync", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to start sync"})
		return
	}
	h.writeJSON(w, http.StatusAccepted, map[string]string{"message": "Tax rate sync started."})
}

type statusResponse struct {
	Status         domain.SyncStatus `json:"status"`
	Display        string            `json:"display"`
	Message        string            `json:"message,omitempty"`
	LastSync       *time.Time        `json:"last_sync,omitempty"`
	QueueRemaining int               `json:"queue_remaining"`
}

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	state, err := h.engine.State(r.Context())
	if err != nil {
		h.logger.Error("load sync state", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load sync state"})
		return
	}

	resp := statusResponse{
		Status:         state.Status,
		Display:        state.Status.Display(),
		Message:        state.Message,
		QueueRemaining: len(state.Queue),
	}
	if !state.LastSync.IsZero() {
		resp.LastSync = &state.LastSync
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type settingsPayload struct {
	LicenseKey string   `json:"license_key"`
	Regions    []string `json:"regions"`
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	license, err := h.settings.License(r.Context())
	if err != nil {
		h.logger.Error("load license", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load settings"})
		return
	}
	regions, err := h.settings.Regions(r.Context())
	if err != nil {
		h.logger.Error("load regions", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load settings"})
		return
	}

	ids := make([]string, 0, len(regions))
	for _, region := range regions {
		ids = append(ids, region.ID)
	}
	h.writeJSON(w, http.StatusOK, settingsPayload{LicenseKey: license, Regions: ids})
}

// putSettings saves the license key and selected regions, prunes rates
// for regions no longer selected, and starts a sync.
func (h *Handler) putSettings(w http.ResponseWriter, r *http.Request) {
	var payload settingsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	regions := make([]domain.Region, 0, len(payload.Regions))
	ids := make([]string, 0, len(payload.Regions))
	for _, id := range payload.Regions {
		region, ok := domain.CatalogRegion(strings.ToUpper(strings.TrimSpace(id)))
		if !ok {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown region: " + id})
			return
		}
		regions = append(regions, region)
		ids = append(ids, region.ID)
	}

	ctx := r.Context()
	if err := h.settings.SetLicense(ctx, strings.TrimSpace(payload.LicenseKey)); err != nil {
		h.logger.Error("save license", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save settings"})
		return
	}
	if err := h.settings.SetRegions(ctx, regions); err != nil {
		h.logger.Error("save regions", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save settings"})
		return
	}

	if err := h.rates.PruneRegionsExcept(ctx, ids); err != nil {
		h.logger.Error("prune removed regions", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to prune removed regions"})
		return
	}

	if err := h.engine.Start(ctx); err != nil {
		if errors.Is(err, engine.ErrNoLicense) {
			h.writeJSON(w, http.StatusOK, map[string]string{
				"message": "Settings saved. Sync not started: a valid license key is required.",
			})
			return
		}
		h.logger.Error("start sync", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "settings saved but sync failed to start"})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Settings saved. Tax rate sync started."})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}
