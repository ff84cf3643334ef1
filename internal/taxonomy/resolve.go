package taxonomy

import "strings"

// ResolvedItem is the display-ready result of looking up a slug.
type ResolvedItem struct {
	// Slug echoes the input as given, trimmed but not case-normalized.
	Slug string `json:"slug"`
	// Name is the matched category's display label.
	Name string `json:"name"`
	// ParentName is set only when the match is a child category.
	ParentName string `json:"parent_name,omitempty"`
	// FullPath is Name alone for top-level matches, or
	// "Parent > Name" for child matches.
	FullPath string `json:"full_path"`

	Category *Category `json:"-"`
	Parent   *Category `json:"-"`
}

// Resolve looks up a raw slug against one taxonomy type and returns a
// fully described match, or nil when the slug is unknown. Lookup is
// case-insensitive; surrounding whitespace is ignored. Callers should
// treat nil as "unknown taxonomy entry" and fall back to FormatSlug for
// display, not as an error.
func (t *Taxonomy) Resolve(raw string, typ Type) *ResolvedItem {
	trimmed := strings.TrimSpace(raw)
	c := t.lookup(trimmed, typ)
	if c == nil {
		return nil
	}

	item := &ResolvedItem{
		Slug:     trimmed,
		Name:     c.Name,
		FullPath: c.Name,
		Category: c,
	}
	if c.IsTopLevel() {
		return item
	}

	parent := t.byCategoryID(c.ParentID, typ)
	if parent != nil {
		item.ParentName = parent.Name
		item.FullPath = parent.Name + " > " + c.Name
		item.Parent = parent
	}
	return item
}
