package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	userstore "github.com/loomfeed/loomfeed/internal/app/store/users"
	"github.com/loomfeed/loomfeed/internal/app/system/inputval"
	"github.com/loomfeed/loomfeed/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler serves the profile update surface.
type Handler struct {
	Coord *Coordinator
	Log   *zap.Logger
}

func NewHandler(coord *Coordinator, logger *zap.Logger) *Handler {
	return &Handler{Coord: coord, Log: logger}
}

// Update handles POST /profile. Responds 204 on success, 400 on a malformed
// body or validation failure, 409 when the username is already taken, 500 on
// store failure.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.Coord.UpdateUser(ctx, req)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, userstore.ErrDuplicateUsername):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, inputval.ErrInvalid):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.Log.Error("profile update failed",
			zap.String("user_id", req.UserID),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "profile update failed")
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
