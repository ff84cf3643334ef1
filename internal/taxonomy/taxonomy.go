// Package taxonomy models the versioned two-level classification scheme used
// to tag registered agents, and decides how filter selections match those tags.
//
// Two independent axes exist: skills (what an agent can do) and domains
// (where it operates). Trees are static per release, built into flat lookup
// indexes once, and read-only afterwards, so every operation is safe for
// concurrent use without locking.
package taxonomy

import (
	"fmt"
	"strings"
	"sync"
)

// Version identifies the edition of the classification scheme in effect.
// Consumers persisting selections should record this alongside them so
// future revisions can be reconciled.
const Version = "0.8.0"

// Type selects one of the two classification axes.
type Type string

// The two taxonomy types.
const (
	TypeSkill  Type = "skill"
	TypeDomain Type = "domain"
)

// Valid reports whether t is a known taxonomy type.
func (t Type) Valid() bool {
	return t == TypeSkill || t == TypeDomain
}

// Category is a node in a taxonomy tree.
//
// IDs are unique within a taxonomy type across the whole tree; parents and
// children share one numbering space. A bare slug is unique among siblings
// only; the composite slug (see CompositeSlug) is the globally unique key.
type Category struct {
	ID          int        `json:"id"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ParentID    int        `json:"parent_id,omitempty"` // zero for top-level categories
	Children    []Category `json:"children,omitempty"`  // depth is fixed at one level
}

// IsTopLevel reports whether the category has no parent.
func (c *Category) IsTopLevel() bool {
	return c.ParentID == 0
}

// Tree is the full category hierarchy for one taxonomy type.
// Immutable after construction.
type Tree struct {
	Version    string     `json:"version"`
	Categories []Category `json:"categories"`
}

// Taxonomy holds the two trees and their derived flat indexes.
// Construct once with New (or use Default) and share freely; all methods
// are read-only.
type Taxonomy struct {
	trees  map[Type]*Tree
	bySlug map[Type]map[string]*Category // composite slug (case-folded) -> category
	byID   map[Type]map[int]*Category
}

// New builds a Taxonomy from the given trees, constructing both flat
// indexes with a single walk per tree. Duplicate composite slugs or
// duplicate IDs are data-authoring bugs and are rejected here rather than
// silently shadowing an earlier entry.
func New(skills, domains *Tree) (*Taxonomy, error) {
	t := &Taxonomy{
		trees:  make(map[Type]*Tree, 2),
		bySlug: make(map[Type]map[string]*Category, 2),
		byID:   make(map[Type]map[int]*Category, 2),
	}
	for typ, tree := range map[Type]*Tree{TypeSkill: skills, TypeDomain: domains} {
		bySlug, byID, err := buildIndexes(tree)
		if err != nil {
			return nil, fmt.Errorf("build %s index: %w", typ, err)
		}
		t.trees[typ] = tree
		t.bySlug[typ] = bySlug
		t.byID[typ] = byID
	}
	return t, nil
}

// buildIndexes walks one tree and produces the composite-slug and ID
// lookup maps. Slug keys are stored case-folded so lookups can be
// case-insensitive.
func buildIndexes(tree *Tree) (map[string]*Category, map[int]*Category, error) {
	bySlug := make(map[string]*Category)
	byID := make(map[int]*Category)

	insert := func(key string, c *Category) error {
		key = strings.ToLower(key)
		if dup, ok := bySlug[key]; ok {
			return fmt.Errorf("duplicate composite slug %q (ids %d and %d)", key, dup.ID, c.ID)
		}
		if dup, ok := byID[c.ID]; ok {
			return fmt.Errorf("duplicate category id %d (slugs %q and %q)", c.ID, dup.Slug, c.Slug)
		}
		bySlug[key] = c
		byID[c.ID] = c
		return nil
	}

	for i := range tree.Categories {
		parent := &tree.Categories[i]
		if err := insert(parent.Slug, parent); err != nil {
			return nil, nil, err
		}
		for j := range parent.Children {
			child := &parent.Children[j]
			if err := insert(parent.Slug+"/"+child.Slug, child); err != nil {
				return nil, nil, err
			}
		}
	}
	return bySlug, byID, nil
}

// Tree returns the full tree for a taxonomy type, or nil for an unknown type.
func (t *Taxonomy) Tree(typ Type) *Tree {
	return t.trees[typ]
}

// lookup returns the category for a normalized composite slug.
func (t *Taxonomy) lookup(slug string, typ Type) *Category {
	return t.bySlug[typ][strings.ToLower(strings.TrimSpace(slug))]
}

// byCategoryID returns the category with the given ID within a type.
func (t *Taxonomy) byCategoryID(id int, typ Type) *Category {
	return t.byID[typ][id]
}

// CompositeSlug returns the globally unique lookup key for a category:
// the bare slug for top-level categories, "parent/child" for children.
func (t *Taxonomy) CompositeSlug(c *Category, typ Type) string {
	if c.IsTopLevel() {
		return c.Slug
	}
	if parent := t.byCategoryID(c.ParentID, typ); parent != nil {
		return parent.Slug + "/" + c.Slug
	}
	return c.Slug
}

var defaultTaxonomy = sync.OnceValue(func() *Taxonomy {
	t, err := New(SkillTree(), DomainTree())
	if err != nil {
		// Shipped trees are validated by tests; reaching this means the
		// binary was built from broken data.
		panic(fmt.Sprintf("taxonomy: invalid built-in tree data: %v", err))
	}
	return t
})

// Default returns the process-wide Taxonomy built from the shipped trees.
// Construction happens once, on first use.
func Default() *Taxonomy {
	return defaultTaxonomy()
}
