// internal/app/system/imageref/imageref.go
//
// Package imageref classifies the profile image field submitted by a client.
// The field carries either a hosted URL (the user kept an existing avatar) or
// a freshly captured image inlined as a base64 data URL that still needs to
// be uploaded. Classification is purely structural: a recognized
// "data:image/<subtype>;base64," prefix marks inline bytes, anything else
// passes through as a hosted reference. No I/O happens here.
package imageref

import (
	"encoding/base64"
	"strings"
)

// Kind discriminates the two shapes an image field value can take.
type Kind int

const (
	// Hosted is a URL pointing to an already-stored asset.
	Hosted Kind = iota
	// InlinePending is newly captured image bytes awaiting upload.
	InlinePending
)

const marker = "data:image/"

// subtypes the inline marker recognizes, mirroring what the capture UI emits.
var subtypes = map[string]string{
	"png":  ".png",
	"jpeg": ".jpg",
	"jpg":  ".jpg",
	"gif":  ".gif",
	"webp": ".webp",
}

// Ref is the tagged value an image field resolves to, parsed once at the
// boundary instead of re-inspected ad hoc downstream.
type Ref struct {
	Kind Kind

	// URL is set for Hosted refs: the value passed through unchanged.
	URL string

	// ContentType and Data are set for InlinePending refs. Data is nil when
	// the base64 payload does not decode; the upload step treats that as an
	// upload failure and soft-degrades.
	ContentType string
	Data        []byte
}

// IsInline reports whether the value carries the inline-encoding marker.
// This is the pure predicate the classification contract calls for; Parse
// agrees with it by construction.
func IsInline(value string) bool {
	rest, ok := strings.CutPrefix(value, marker)
	if !ok {
		return false
	}
	subtype, _, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return false
	}
	_, known := subtypes[subtype]
	return known
}

// Parse resolves an image field value into a tagged Ref.
func Parse(value string) Ref {
	if !IsInline(value) {
		return Ref{Kind: Hosted, URL: value}
	}
	rest, _ := strings.CutPrefix(value, marker)
	subtype, payload, _ := strings.Cut(rest, ";base64,")
	ref := Ref{
		Kind:        InlinePending,
		ContentType: "image/" + subtype,
	}
	if data, err := base64.StdEncoding.DecodeString(payload); err == nil {
		ref.Data = data
	}
	return ref
}

// Ext returns the file extension for an InlinePending ref's content type,
// or "" for hosted refs.
func (r Ref) Ext() string {
	subtype := strings.TrimPrefix(r.ContentType, "image/")
	return subtypes[subtype]
}
