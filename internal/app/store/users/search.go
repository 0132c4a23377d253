// internal/app/store/users/search.go
package userstore

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/loomfeed/loomfeed/internal/app/system/paging"
	"github.com/loomfeed/loomfeed/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SortOrder directs a directory listing by creation time.
type SortOrder int

const (
	// SortDesc lists newest users first (the default).
	SortDesc SortOrder = iota
	// SortAsc lists oldest users first.
	SortAsc
)

// ParseSortOrder maps the wire values "asc"/"desc" onto a SortOrder.
// Anything else falls back to SortDesc.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), "asc") {
		return SortAsc
	}
	return SortDesc
}

// SearchParams describes one directory page request.
type SearchParams struct {
	// RequestingUserID is always excluded from the results.
	RequestingUserID string
	// Search, when non-empty after trimming, matches username OR name as a
	// case-insensitive substring. Empty means "no name filter", which is
	// distinct from searching for an empty string.
	Search string
	Page   paging.Page
	Sort   SortOrder
}

// SearchResult is one page of directory results.
type SearchResult struct {
	Users       []models.User
	Total       int64
	HasNextPage bool
}

// SearchPage fetches one page of users matching the search, excluding the
// requester, ordered by creation time with _id as a stable tiebreak. Total
// is the full (not page-limited) match count and HasNextPage reports whether
// matches exist beyond the returned page.
func (s *Store) SearchPage(ctx context.Context, p SearchParams) (SearchResult, error) {
	var result SearchResult
	p.Page = p.Page.Normalize()

	filter := bson.M{"user_id": bson.M{"$ne": p.RequestingUserID}}
	if q := strings.TrimSpace(p.Search); q != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		filter["$or"] = []bson.M{
			{"username": re},
			{"name": re},
		}
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return result, fmt.Errorf("count users: %w", err)
	}
	result.Total = total

	dir := -1
	if p.Sort == SortAsc {
		dir = 1
	}
	find := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: dir}, {Key: "_id", Value: dir}}).
		SetSkip(p.Page.Skip()).
		SetLimit(p.Page.Limit())

	users, err := s.Find(ctx, filter, find)
	if err != nil {
		return result, fmt.Errorf("find users: %w", err)
	}
	result.Users = users
	result.HasNextPage = p.Page.HasNext(len(users), total)
	return result, nil
}
