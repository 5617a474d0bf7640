// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selector

// ValidateRanges checks every range against a document of total pages,
// in order, and returns a RangeError for the first one that does not fit.
// Overlapping ranges are allowed.
func ValidateRanges(ranges []PageRange, total int) error {
	for _, r := range ranges {
		if r.Start < 1 || r.End > total {
			return &RangeError{Start: r.Start, End: r.End, Total: total}
		}
	}
	return nil
}

// Apply returns the rotations that land on existing pages. Indices
// outside [1, total] are dropped without error: there is no such page
// to rotate.
func (r Rotation) Apply(total int) Rotation {
	out := make(Rotation, len(r))
	for page, angle := range r {
		if page >= 1 && page <= total {
			out[page] = angle
		}
	}
	return out
}

// Angles returns the rotation to add to each page of a total-page
// document, indexed from 0. Unlisted pages get 0.
func (r Rotation) Angles(total int) []int {
	angles := make([]int, total)
	for page, angle := range r.Apply(total) {
		angles[page-1] = angle
	}
	return angles
}

// Delete returns the pages of a total-page document that are not in
// remove, in original order. Indices outside the document are ignored.
func Delete(remove []int, total int) []int {
	drop := make(map[int]bool, len(remove))
	for _, p := range remove {
		drop[p] = true
	}
	kept := make([]int, 0, total)
	for p := 1; p <= total; p++ {
		if !drop[p] {
			kept = append(kept, p)
		}
	}
	return kept
}

// Reorder validates seq against a total-page document and returns it as
// the output page order. Pages may repeat or be omitted.
func Reorder(seq []int, total int) ([]int, error) {
	out := make([]int, 0, len(seq))
	for _, p := range seq {
		if p < 1 || p > total {
			return nil, &RangeError{Start: p, End: p, Total: total}
		}
		out = append(out, p)
	}
	return out, nil
}
