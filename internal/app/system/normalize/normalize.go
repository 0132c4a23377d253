// internal/app/system/normalize/normalize.go
package normalize

import "strings"

// Username trims whitespace and lower-cases. Usernames are unique
// case-insensitively, so the lower-cased form is the stored form.
func Username(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DisplayName trims and collapses interior runs of whitespace to single
// spaces.
func DisplayName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
