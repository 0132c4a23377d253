package normalize_test

import (
	"testing"

	"github.com/loomfeed/loomfeed/internal/app/system/normalize"
)

func TestUsername(t *testing.T) {
	cases := map[string]string{
		"  Dale  ":   "dale",
		"JSmith":     "jsmith",
		"already.ok": "already.ok",
		"":           "",
	}
	for in, want := range cases {
		if got := normalize.Username(in); got != want {
			t.Errorf("Username(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"  Dale   Musser ": "Dale Musser",
		"One":              "One",
		"":                 "",
		"a\tb\nc":          "a b c",
	}
	for in, want := range cases {
		if got := normalize.DisplayName(in); got != want {
			t.Errorf("DisplayName(%q): got %q, want %q", in, got, want)
		}
	}
}
