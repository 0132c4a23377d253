// internal/app/system/paging/paging.go
//
// Page-number pagination helpers for list endpoints. A Page is described by a
// 1-based page number and a page size; the helpers keep the skip arithmetic
// and the has-next decision in one place so handlers and stores agree on it.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultPageSize is the number of rows returned when the caller does not
// ask for a specific page size.
const DefaultPageSize = 20

// MaxPageSize bounds what a caller may request in one page.
const MaxPageSize = 100

// Page describes one requested slice of a sorted, filtered result set.
// Number is 1-based; values below 1 are clamped to 1 (never rejected), so a
// zero value from a missing query parameter lands on the first page.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps Number to >= 1 and Size into [1, MaxPageSize], applying
// DefaultPageSize when Size is unset.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Skip returns the number of documents to skip for this page, as int64 for
// Mongo Find().SetSkip().
func (p Page) Skip() int64 {
	p = p.Normalize()
	return int64(p.Number-1) * int64(p.Size)
}

// Limit returns the page size as int64 for Mongo Find().SetLimit().
func (p Page) Limit() int64 {
	return int64(p.Normalize().Size)
}

// HasNext reports whether matching documents exist beyond the returned page:
// skip + len(returned) < total. A final page that lands exactly on the last
// matching document reports false.
func (p Page) HasNext(returned int, total int64) bool {
	return p.Skip()+int64(returned) < total
}

// FromRequest reads the "page" and "size" query parameters. Missing or
// malformed values fall back to page 1 and DefaultPageSize.
func FromRequest(r *http.Request) Page {
	p := Page{Number: 1, Size: DefaultPageSize}
	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			p.Number = n
		}
	}
	if s := query.Get(r, "size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			p.Size = n
		}
	}
	return p.Normalize()
}
