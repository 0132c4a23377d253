package inputval_test

import (
	"strings"
	"testing"

	"github.com/loomfeed/loomfeed/internal/app/system/inputval"
)

func TestProfile_Valid(t *testing.T) {
	if err := inputval.Profile("user_abc", "jsmith", "Jane Smith", "hello"); err != nil {
		t.Errorf("valid profile rejected: %v", err)
	}
	if err := inputval.Profile("user_abc", "j.smith-2", "Jo", ""); err != nil {
		t.Errorf("valid profile rejected: %v", err)
	}
}

func TestProfile_Invalid(t *testing.T) {
	cases := []struct {
		name                      string
		userID, username, uname, bio string
	}{
		{"missing user id", "", "jsmith", "Jane Smith", ""},
		{"username too short", "u1", "j", "Jane Smith", ""},
		{"username too long", "u1", strings.Repeat("a", 31), "Jane Smith", ""},
		{"username bad chars", "u1", "j smith!", "Jane Smith", ""},
		{"name too short", "u1", "jsmith", "J", ""},
		{"name too long", "u1", "jsmith", strings.Repeat("n", 51), ""},
		{"bio too long", "u1", "jsmith", "Jane Smith", strings.Repeat("b", 1001)},
	}
	for _, c := range cases {
		if err := inputval.Profile(c.userID, c.username, c.uname, c.bio); err == nil {
			t.Errorf("%s: expected error, got nil", c.name)
		}
	}
}

func TestThreadText(t *testing.T) {
	if err := inputval.ThreadText("user_abc", "hello world"); err != nil {
		t.Errorf("valid thread rejected: %v", err)
	}
	if err := inputval.ThreadText("", "hello"); err != inputval.ErrMissingAuthor {
		t.Errorf("expected ErrMissingAuthor, got %v", err)
	}
	if err := inputval.ThreadText("user_abc", "hi"); err == nil {
		t.Error("expected error for too-short text")
	}
	if err := inputval.ThreadText("user_abc", strings.Repeat("x", 2001)); err == nil {
		t.Error("expected error for too-long text")
	}
}
