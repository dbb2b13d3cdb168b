package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// BattlesResponse lists recent battles with lifetime totals
type BattlesResponse struct {
	Totals  Totals          `json:"totals"`
	Battles []BattleSummary `json:"battles"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends payload as JSON with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(ErrMsgEncodingResponse, "error", err)
		http.Error(w, ErrMsgEncodingResponse, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// HandleHealthz reports that the process is up
// @Summary Liveness check
// @Tags status
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleVersion returns version information about the binary
// @Summary Get version information
// @Description Returns the binary version, Go runtime version and build metadata
// @Tags status
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(version string) http.HandlerFunc {
	if version == "" {
		version = Version
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:   version,
			GoVersion: runtime.Version(),
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		})
	}
}

// HandleListBattles returns the most recent battles, newest first.
// The optional limit query parameter is clamped to [1, MaxRecentLimit].
// @Summary List recent battles
// @Description Returns lifetime totals and the most recent battles, newest first
// @Tags battles
// @Produce json
// @Param limit query int false "Maximum battles to return (1-100)"
// @Success 200 {object} BattlesResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/battles [get]
func HandleListBattles(log *BattleLog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := DefaultRecentLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, "limit must be an integer")
				return
			}
			limit = max(1, min(n, MaxRecentLimit))
		}

		respondJSON(w, http.StatusOK, BattlesResponse{
			Totals:  log.Totals(),
			Battles: log.Recent(limit),
		})
	}
}

// HandleGetBattle returns one battle by id
// @Summary Get a battle
// @Tags battles
// @Produce json
// @Param id path string true "Battle ID"
// @Success 200 {object} BattleSummary
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/battles/{id} [get]
func HandleGetBattle(log *BattleLog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, ok := log.Get(chi.URLParam(r, "id"))
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgBattleNotFound)
			return
		}
		respondJSON(w, http.StatusOK, b)
	}
}
