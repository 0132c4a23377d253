package profile_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/loomfeed/loomfeed/internal/app/features/profile"
	userstore "github.com/loomfeed/loomfeed/internal/app/store/users"
	"github.com/loomfeed/loomfeed/internal/app/system/indexes"
	"github.com/loomfeed/loomfeed/internal/testutil"
	"go.uber.org/zap"
)

func TestUpdate_InvalidJSON(t *testing.T) {
	h := profile.NewHandler(nil, zap.NewNop())

	req := httptest.NewRequest("POST", "/profile", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestUpdate_StatusMapping(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	users := userstore.New(db)
	coord := profile.NewCoordinator(users, &fakeUploader{}, &fakeInvalidator{}, zap.NewNop())
	h := profile.NewHandler(coord, zap.NewNop())

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/profile", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Update(rec, req)
		return rec
	}

	// Valid upsert.
	rec := post(`{"userId":"ext-1","username":"alice","name":"Alice"}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("create: got %d, want %d (body %s)", rec.Code, http.StatusNoContent, rec.Body.String())
	}

	// Username collision from a different user.
	rec = post(`{"userId":"ext-2","username":"alice","name":"Other Alice"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate: got %d, want %d", rec.Code, http.StatusConflict)
	}

	// Validation failure.
	rec = post(`{"userId":"ext-3","username":"x","name":"Someone"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("validation: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
