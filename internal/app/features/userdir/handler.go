// internal/app/features/userdir/handler.go
package userdir

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"github.com/loomfeed/loomfeed/internal/app/store/queries/userposts"
	userstore "github.com/loomfeed/loomfeed/internal/app/store/users"
	"github.com/loomfeed/loomfeed/internal/app/system/paging"
	"github.com/loomfeed/loomfeed/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the read-side user endpoints: directory search, single
// profile lookup, and the posts tree for a user.
type Handler struct {
	Users *userstore.Store
	DB    *mongo.Database
	Log   *zap.Logger
}

func NewHandler(users *userstore.Store, db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Users: users, DB: db, Log: logger}
}

// List handles GET /users. The requesting user is always excluded from the
// result set, so userId is required even for an empty search.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	requester := query.Get(r, "userId")
	if requester == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	params := userstore.SearchParams{
		RequestingUserID: requester,
		Search:           query.Get(r, "search"),
		Page:             paging.FromRequest(r),
		Sort:             userstore.ParseSortOrder(query.Get(r, "sort")),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Users.SearchPage(ctx, params)
	if err != nil {
		h.Log.Error("user search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"users":       res.Users,
		"hasNextPage": res.HasNextPage,
	})
}

// Get handles GET /users/{userID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByUserID(ctx, userID)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		h.Log.Error("user lookup failed", zap.String("user_id", userID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, u)
}

// Posts handles GET /users/{userID}/posts, returning the user's threads
// with one level of replies and reply author summaries.
func (h *Handler) Posts(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	posts, err := userposts.Fetch(ctx, h.DB, userID)
	if err != nil {
		h.Log.Error("user posts fetch failed", zap.String("user_id", userID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if posts == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
