// Package media defines the domain models shared by extraction, resolution and download.
package media

import "fmt"

// Link identifies one source video, as found in pasted text.
type Link string

// String returns the raw link.
func (l Link) String() string {
	return string(l)
}

// CandidateSet is an ordered collection of unique links slated for one run.
type CandidateSet []Link

// Strings returns the links as plain strings.
func (c CandidateSet) Strings() []string {
	out := make([]string, len(c))
	for i, l := range c {
		out[i] = string(l)
	}
	return out
}

// Record is the normalized result of resolving a link.
type Record struct {
	// ID assigned by the platform.
	ID string `json:"id" jsonschema:"description=Platform video identifier"`
	// Title of the video, or a positional placeholder.
	Title string `json:"title"`
	// Author display name.
	Author string `json:"author"`
	// Cover image URL.
	Cover string `json:"cover,omitempty"`
	// Play is the direct media URL of the final binary.
	Play string `json:"play" jsonschema:"format=uri"`
	// Source is the link this record was resolved from.
	Source Link `json:"source"`
	// Index is the 1-based position of Source in its candidate set.
	Index int `json:"index"`
}

// String returns the title for display.
func (r *Record) String() string {
	return r.Title
}

// Filename builds the deterministic name the video is saved under.
func (r *Record) Filename(prefix, ext string) string {
	if prefix == "" {
		return fmt.Sprintf("%s.%s", r.ID, ext)
	}
	return fmt.Sprintf("%s_%s.%s", prefix, r.ID, ext)
}
