package taxonomy

// Matches decides whether an item tagged with candidate should be
// considered selected under the given filter selection. Matching is
// bidirectional across the hierarchy:
//
//   - the candidate is literally selected, or
//   - a selected top-level slug is the candidate's parent (selecting a
//     parent selects all of its children), or
//   - the candidate is a top-level slug and one of its children is
//     selected (so a parent node highlights when a child is checked).
//
// The relationship is read from the composite slug structure alone. The
// selection arrives as bare strings from the filter boundary, so no tree
// lookup is involved and the taxonomy type does not matter. Comparison is
// case-insensitive. An empty selection matches nothing.
func Matches(candidate string, selected []string) bool {
	cand := normalizeSlug(candidate)
	if cand == "" {
		return false
	}
	candParent, _, candIsChild := splitComposite(cand)

	for _, s := range selected {
		sel := normalizeSlug(s)
		if sel == "" {
			continue
		}
		if sel == cand {
			return true
		}
		selParent, _, selIsChild := splitComposite(sel)
		if candIsChild && !selIsChild && candParent == sel {
			return true
		}
		if !candIsChild && selIsChild && selParent == cand {
			return true
		}
	}
	return false
}

// MatchesAny reports whether any of the candidate slugs satisfies the
// selection. Used for agents carrying several tags on one axis.
func MatchesAny(candidates, selected []string) bool {
	for _, c := range candidates {
		if Matches(c, selected) {
			return true
		}
	}
	return false
}
