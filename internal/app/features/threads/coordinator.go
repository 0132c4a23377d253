// internal/app/features/threads/coordinator.go
package threads

import (
	"context"
	"fmt"

	threadstore "github.com/loomfeed/loomfeed/internal/app/store/threads"
	userstore "github.com/loomfeed/loomfeed/internal/app/store/users"
	"github.com/loomfeed/loomfeed/internal/app/system/inputval"
	"github.com/loomfeed/loomfeed/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrAuthorNotFound is returned when the author id resolves to no user.
var ErrAuthorNotFound = fmt.Errorf("%w: author does not exist", inputval.ErrInvalid)

// Invalidator drops a cached rendered page. Fire-and-forget.
type Invalidator interface {
	Invalidate(ctx context.Context, path string)
}

// CreateRequest carries a new thread. CommunityID is accepted for wire
// compatibility but the thread is always persisted with a null community.
// Path is the UI path to invalidate after creation.
type CreateRequest struct {
	Text        string `json:"text"`
	Author      string `json:"author"` // external user id
	CommunityID string `json:"communityId"`
	Path        string `json:"path"`
}

// PartialWriteError reports that the thread document was created but the
// append to the author's threads array failed. The store is in a defined,
// recoverable state (an orphan thread not linked from its author); the
// caller decides whether to retry the link or reconcile.
type PartialWriteError struct {
	ThreadID primitive.ObjectID
	Err      error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("thread %s created but not linked to its author: %v", e.ThreadID.Hex(), e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }

// Coordinator creates threads and registers them on their author.
type Coordinator struct {
	users      *userstore.Store
	threads    *threadstore.Store
	revalidate Invalidator
	log        *zap.Logger
}

func NewCoordinator(users *userstore.Store, threads *threadstore.Store, revalidate Invalidator, logger *zap.Logger) *Coordinator {
	return &Coordinator{users: users, threads: threads, revalidate: revalidate, log: logger}
}

// CreateThread inserts the thread and then appends its reference to the
// author's threads array. The two writes are each single-document atomic but
// not transactional together: if the insert fails nothing is written and the
// append never runs; if the append fails after the insert succeeded the
// failure surfaces as *PartialWriteError rather than being swallowed.
func (c *Coordinator) CreateThread(ctx context.Context, req CreateRequest) (models.Thread, error) {
	if err := inputval.ThreadText(req.Author, req.Text); err != nil {
		return models.Thread{}, err
	}

	author, err := c.users.GetByUserID(ctx, req.Author)
	if err == mongo.ErrNoDocuments {
		return models.Thread{}, ErrAuthorNotFound
	}
	if err != nil {
		return models.Thread{}, fmt.Errorf("fetch author %q: %w", req.Author, err)
	}

	th, err := c.threads.Insert(ctx, req.Text, author.ID)
	if err != nil {
		return models.Thread{}, err
	}

	if err := c.users.AppendThread(ctx, author.ID, th.ID); err != nil {
		c.log.Error("thread created but author link failed",
			zap.String("thread_id", th.ID.Hex()),
			zap.String("author", req.Author),
			zap.Error(err))
		return th, &PartialWriteError{ThreadID: th.ID, Err: err}
	}

	c.revalidate.Invalidate(ctx, req.Path)
	return th, nil
}
