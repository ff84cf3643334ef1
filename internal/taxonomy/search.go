package taxonomy

import "strings"

// Search returns every category at either tree level whose name or slug
// contains the query, case-insensitively, in tree order (each top-level
// category before its children). An empty or whitespace-only query
// returns nothing: a blank autocomplete box is not a request to browse
// everything. Parents and children are tested independently; a parent
// does not match just because one of its children does.
func (t *Taxonomy) Search(query string, typ Type) []*Category {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	tree := t.trees[typ]
	if tree == nil {
		return nil
	}

	contains := func(c *Category) bool {
		return strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Slug), query)
	}

	var out []*Category
	for i := range tree.Categories {
		parent := &tree.Categories[i]
		if contains(parent) {
			out = append(out, parent)
		}
		for j := range parent.Children {
			child := &parent.Children[j]
			if contains(child) {
				out = append(out, child)
			}
		}
	}
	return out
}
