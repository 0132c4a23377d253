// internal/app/features/threads/handler.go
package threads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/loomfeed/loomfeed/internal/app/system/inputval"
	"github.com/loomfeed/loomfeed/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type Handler struct {
	Coord *Coordinator
	Log   *zap.Logger
}

func NewHandler(coord *Coordinator, logger *zap.Logger) *Handler {
	return &Handler{Coord: coord, Log: logger}
}

// Create handles POST /threads.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	th, err := h.Coord.CreateThread(ctx, req)
	var partial *PartialWriteError
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(th)
	case errors.As(err, &partial):
		// The thread exists; report the degraded outcome rather than a
		// generic failure so the client can reconcile.
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":    "thread created but not linked to author",
			"threadId": partial.ThreadID.Hex(),
		})
	case errors.Is(err, inputval.ErrInvalid):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.Log.Error("create thread failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
