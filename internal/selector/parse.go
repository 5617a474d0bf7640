// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selector parses human-entered page selectors, validates them
// against a document's page count, and computes the resulting page
// sequences for split, rotate, delete, and reorder.
//
// Grammar (comma-separated tokens, whitespace around tokens ignored):
//
//	ranges:    1-3,5,7-8   (start-end or single page)
//	rotations: 1:90,3:180  (page:angle, angle one of 90 180 270)
//	pages:     3,1,2       (page indices)
package selector

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	rangesExample    = "1-3,5,7-8"
	rotationsExample = "1:90,3:180"
	pagesExample     = "3,1,2"
)

// PageRange is an inclusive, 1-based page span. Single pages have
// Start == End.
type PageRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

func (r PageRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Len returns the number of pages in the range.
func (r PageRange) Len() int {
	return r.End - r.Start + 1
}

// Pages expands the range into ascending page indices.
func (r PageRange) Pages() []int {
	pages := make([]int, 0, r.Len())
	for p := r.Start; p <= r.End; p++ {
		pages = append(pages, p)
	}
	return pages
}

// ParseRanges parses a selector such as "1-3,5,7-8" into page ranges,
// preserving input order. Bounds must be positive and ordered.
func ParseRanges(s string) ([]PageRange, error) {
	tokens, err := tokenize(s, rangesExample)
	if err != nil {
		return nil, err
	}

	ranges := make([]PageRange, 0, len(tokens))
	for _, tok := range tokens {
		fail := func(reason string) error {
			return &FormatError{Input: s, Token: tok, Reason: reason, Example: rangesExample}
		}

		if !strings.Contains(tok, "-") {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fail("not a page number")
			}
			if n < 1 {
				return nil, fail("page numbers start at 1")
			}
			ranges = append(ranges, PageRange{Start: n, End: n})
			continue
		}

		bounds := strings.Split(tok, "-")
		if len(bounds) != 2 {
			return nil, fail("a range has exactly one '-'")
		}
		start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
		if err != nil {
			return nil, fail("range start is not a page number")
		}
		end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			return nil, fail("range end is not a page number")
		}
		if start < 1 {
			return nil, fail("page numbers start at 1")
		}
		if start > end {
			return nil, fail("range start is after range end")
		}
		ranges = append(ranges, PageRange{Start: start, End: end})
	}
	return ranges, nil
}

// Rotation maps a page index to a clockwise rotation angle.
type Rotation map[int]int

// validAngles are the rotations a page may be given.
var validAngles = map[int]bool{90: true, 180: true, 270: true}

// ParseRotations parses a selector such as "1:90,3:180". A page named
// twice keeps its last angle. Page indices are not bounds-checked here;
// see Rotation.Apply.
func ParseRotations(s string) (Rotation, error) {
	tokens, err := tokenize(s, rotationsExample)
	if err != nil {
		return nil, err
	}

	rot := make(Rotation, len(tokens))
	for _, tok := range tokens {
		fail := func(reason string) error {
			return &FormatError{Input: s, Token: tok, Reason: reason, Example: rotationsExample}
		}

		parts := strings.Split(tok, ":")
		if len(parts) != 2 {
			return nil, fail("expected page:angle")
		}
		page, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fail("not a page number")
		}
		angle, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || !validAngles[angle] {
			return nil, fail("angle must be 90, 180 or 270")
		}
		rot[page] = angle
	}
	return rot, nil
}

// ParsePageList parses a selector such as "3,1,2" into page indices in
// input order. Only the token syntax is checked; callers decide how to
// treat indices outside the document.
func ParsePageList(s string) ([]int, error) {
	tokens, err := tokenize(s, pagesExample)
	if err != nil {
		return nil, err
	}

	pages := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &FormatError{Input: s, Token: tok, Reason: "not a page number", Example: pagesExample}
		}
		pages = append(pages, n)
	}
	return pages, nil
}

// tokenize splits s on commas and trims each token. Empty input or an
// empty token is a FormatError.
func tokenize(s, example string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, &FormatError{Input: s, Reason: "selector is empty", Example: example}
	}
	raw := strings.Split(s, ",")
	tokens := make([]string, 0, len(raw))
	for _, r := range raw {
		tok := strings.TrimSpace(r)
		if tok == "" {
			return nil, &FormatError{Input: s, Reason: "empty entry between commas", Example: example}
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
