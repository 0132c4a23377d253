package userstore_test

import (
	"testing"

	userstore "github.com/loomfeed/loomfeed/internal/app/store/users"
	"github.com/loomfeed/loomfeed/internal/app/system/indexes"
	"github.com/loomfeed/loomfeed/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_UpsertProfile_CreatesUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.UpsertProfile(ctx, "ext-1", userstore.ProfileUpdate{
		Username: "Alice",
		Name:     "  Alice   Liddell ",
		Bio:      "down the rabbit hole",
		Image:    "https://cdn.example.com/alice.png",
	})
	if err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}

	u, err := store.GetByUserID(ctx, "ext-1")
	if err != nil {
		t.Fatalf("GetByUserID failed: %v", err)
	}

	if u.Username != "alice" {
		t.Errorf("username: got %q, want %q", u.Username, "alice")
	}
	if u.Name != "Alice Liddell" {
		t.Errorf("name: got %q, want %q", u.Name, "Alice Liddell")
	}
	if !u.Onboarded {
		t.Error("expected onboarded to be true")
	}
	if u.Threads == nil || len(u.Threads) != 0 {
		t.Errorf("threads: got %v, want empty slice", u.Threads)
	}
	if u.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestStore_UpsertProfile_UpdatesExistingUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "ext-1", "alice")
	th := fixtures.CreateThread(ctx, u, "first post")

	err := store.UpsertProfile(ctx, "ext-1", userstore.ProfileUpdate{
		Username: "alice2",
		Name:     "Alice L",
		Bio:      "updated",
	})
	if err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}

	got, err := store.GetByUserID(ctx, "ext-1")
	if err != nil {
		t.Fatalf("GetByUserID failed: %v", err)
	}

	if got.Username != "alice2" {
		t.Errorf("username: got %q, want %q", got.Username, "alice2")
	}
	if got.Bio != "updated" {
		t.Errorf("bio: got %q, want %q", got.Bio, "updated")
	}
	// The threads array must survive a profile update.
	if len(got.Threads) != 1 || got.Threads[0] != th.ID {
		t.Errorf("threads: got %v, want [%s]", got.Threads, th.ID.Hex())
	}
	if got.CreatedAt.After(got.UpdatedAt) {
		t.Error("expected updated_at to advance past created_at")
	}
}

func TestStore_UpsertProfile_DuplicateUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	store := userstore.New(db)
	if err := store.UpsertProfile(ctx, "ext-1", userstore.ProfileUpdate{Username: "alice", Name: "Alice"}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	err := store.UpsertProfile(ctx, "ext-2", userstore.ProfileUpdate{Username: "ALICE", Name: "Other Alice"})
	if err != userstore.ErrDuplicateUsername {
		t.Errorf("got %v, want ErrDuplicateUsername", err)
	}
}

func TestStore_GetByUserID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByUserID(ctx, "no-such-user")
	if err != mongo.ErrNoDocuments {
		t.Errorf("got %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_AppendThread(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "ext-1", "alice")

	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	for _, id := range []primitive.ObjectID{first, second} {
		if err := store.AppendThread(ctx, u.ID, id); err != nil {
			t.Fatalf("AppendThread failed: %v", err)
		}
	}

	got, err := store.GetByObjectID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByObjectID failed: %v", err)
	}
	if len(got.Threads) != 2 || got.Threads[0] != first || got.Threads[1] != second {
		t.Errorf("threads: got %v, want [%s %s] in insertion order", got.Threads, first.Hex(), second.Hex())
	}
}

func TestStore_AppendThread_UnknownUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.AppendThread(ctx, primitive.NewObjectID(), primitive.NewObjectID())
	if err != userstore.ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
