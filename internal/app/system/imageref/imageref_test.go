package imageref_test

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/loomfeed/loomfeed/internal/app/system/imageref"
)

func TestIsInline(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"data:image/png;base64,iVBORw0KGgo=", true},
		{"data:image/jpeg;base64,/9j/4AAQ", true},
		{"data:image/webp;base64,UklGRg==", true},
		{"https://cdn.example.com/avatars/abc.png", false},
		{"http://example.com/a.jpg", false},
		{"", false},
		{"data:text/plain;base64,aGVsbG8=", false},
		{"data:image/svg+xml;base64,PHN2Zz4=", false}, // unrecognized subtype
		{"data:image/png;notbase64", false},
	}
	for _, c := range cases {
		if got := imageref.IsInline(c.value); got != c.want {
			t.Errorf("IsInline(%q): got %v, want %v", c.value, got, c.want)
		}
	}
}

func TestParse_Hosted(t *testing.T) {
	ref := imageref.Parse("https://cdn.example.com/avatars/abc.png")
	if ref.Kind != imageref.Hosted {
		t.Fatalf("Kind: got %v, want Hosted", ref.Kind)
	}
	if ref.URL != "https://cdn.example.com/avatars/abc.png" {
		t.Errorf("URL not passed through: got %q", ref.URL)
	}
}

func TestParse_Inline(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	value := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	ref := imageref.Parse(value)
	if ref.Kind != imageref.InlinePending {
		t.Fatalf("Kind: got %v, want InlinePending", ref.Kind)
	}
	if ref.ContentType != "image/png" {
		t.Errorf("ContentType: got %q, want image/png", ref.ContentType)
	}
	if !bytes.Equal(ref.Data, raw) {
		t.Errorf("Data: got %v, want %v", ref.Data, raw)
	}
	if ref.Ext() != ".png" {
		t.Errorf("Ext: got %q, want .png", ref.Ext())
	}
}

func TestParse_InlineBadPayload(t *testing.T) {
	ref := imageref.Parse("data:image/jpeg;base64,!!!not-base64!!!")
	if ref.Kind != imageref.InlinePending {
		t.Fatalf("Kind: got %v, want InlinePending (classification is structural)", ref.Kind)
	}
	if ref.Data != nil {
		t.Errorf("Data: got %v, want nil for undecodable payload", ref.Data)
	}
}
