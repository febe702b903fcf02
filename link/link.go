// Package link finds short-video links in free-form text.
package link

import (
	"regexp"
	"strings"

	"github.com/clipdrop/clipdrop/media"
	"github.com/samber/lo"
)

// Condition describes how an extraction ended.
type Condition int

const (
	// Ok means every plausible link fit in the candidate set.
	Ok Condition = iota
	// Truncated means links past the cap were dropped.
	Truncated
	// Empty means no plausible link was found.
	Empty
)

func (c Condition) String() string {
	switch c {
	case Ok:
		return "ok"
	case Truncated:
		return "truncated"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

const (
	// MaxLinks is the default cap on candidates per run.
	MaxLinks = 10

	// MinLength is the length a whole link must exceed.
	MinLength = 15

	// MinPathLength is the shortest video path or share code accepted after the domain.
	MinPathLength = 8
)

// Pattern matches web and mobile share links. A match ends at whitespace, a comma or a quote.
var Pattern = regexp.MustCompile(`https?://(?:www\.|vm\.|vt\.)?tiktok\.com/[^\s,"']+`)

// Extract returns the unique plausible links in text, in first-seen order, capped at MaxLinks.
func Extract(text string) (media.CandidateSet, Condition) {
	return ExtractN(text, MaxLinks)
}

// ExtractN is Extract with an explicit cap. A cap below one means no cap.
func ExtractN(text string, max int) (media.CandidateSet, Condition) {
	links := scan(text)
	if len(links) == 0 {
		return media.CandidateSet{}, Empty
	}

	if max > 0 && len(links) > max {
		return media.CandidateSet(links[:max]), Truncated
	}

	return media.CandidateSet(links), Ok
}

// Count returns the number of unique plausible links before any cap is applied.
func Count(text string) int {
	return len(scan(text))
}

func scan(text string) []media.Link {
	matches := lo.Uniq(Pattern.FindAllString(text, -1))

	plausible := lo.Filter(matches, func(m string, _ int) bool {
		return Plausible(m)
	})

	return lo.Map(plausible, func(m string, _ int) media.Link {
		return media.Link(m)
	})
}

// Plausible rejects matches that are too short to be a real link, such as text cut off mid-paste.
func Plausible(raw string) bool {
	if len(raw) <= MinLength {
		return false
	}

	loc := Pattern.FindStringIndex(raw)
	if loc == nil || loc[0] != 0 {
		return false
	}

	_, path, ok := strings.Cut(raw, "tiktok.com/")
	if !ok {
		return false
	}

	return len(strings.Trim(path, "/")) >= MinPathLength
}
