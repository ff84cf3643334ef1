package taxonomy

// Expand returns a slug plus the composite slug of every descendant
// beneath it, parent first, children in tree order. A leaf (a child, or a
// childless top-level category) expands to just itself. A slug that does
// not resolve returns nil rather than echoing itself.
func (t *Taxonomy) Expand(slug string, typ Type) []string {
	c := t.lookup(slug, typ)
	if c == nil {
		return nil
	}

	own := t.CompositeSlug(c, typ)
	if len(c.Children) == 0 {
		return []string{own}
	}

	out := make([]string, 0, 1+len(c.Children))
	out = append(out, own)
	for i := range c.Children {
		out = append(out, c.Slug+"/"+c.Children[i].Slug)
	}
	return out
}
