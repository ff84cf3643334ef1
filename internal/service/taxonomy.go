package service

import (
	"log/slog"

	domainerrors "github.com/agentdex/agentdex-server/internal/errors"
	"github.com/agentdex/agentdex-server/internal/taxonomy"
)

// TaxonomyService exposes the taxonomy to the API layer.
type TaxonomyService struct {
	taxonomy *taxonomy.Taxonomy
	logger   *slog.Logger
}

// NewTaxonomyService creates a new taxonomy service.
func NewTaxonomyService(tax *taxonomy.Taxonomy, logger *slog.Logger) *TaxonomyService {
	return &TaxonomyService{taxonomy: tax, logger: logger}
}

// Tree returns the full category tree for one taxonomy type.
func (s *TaxonomyService) Tree(typ taxonomy.Type) (*taxonomy.Tree, error) {
	if !typ.Valid() {
		return nil, domainerrors.Validationf("unknown taxonomy type %q", typ)
	}
	return s.taxonomy.Tree(typ), nil
}

// Resolve looks up a slug and always returns something displayable:
// the resolved item when the slug is known, otherwise a label derived
// from the slug itself with Known unset.
func (s *TaxonomyService) Resolve(typ taxonomy.Type, slug string) (*ResolvedTag, error) {
	if !typ.Valid() {
		return nil, domainerrors.Validationf("unknown taxonomy type %q", typ)
	}
	if item := s.taxonomy.Resolve(slug, typ); item != nil {
		return &ResolvedTag{Slug: slug, Label: item.FullPath, Known: true}, nil
	}
	return &ResolvedTag{Slug: slug, Label: taxonomy.FormatSlug(slug)}, nil
}

// Search returns categories whose name or slug contains the query.
func (s *TaxonomyService) Search(typ taxonomy.Type, query string) ([]*taxonomy.Category, error) {
	if !typ.Valid() {
		return nil, domainerrors.Validationf("unknown taxonomy type %q", typ)
	}
	return s.taxonomy.Search(query, typ), nil
}

// Expand returns the composite slugs covered by a category, the
// category's own slug first. Unknown slugs expand to nothing.
func (s *TaxonomyService) Expand(typ taxonomy.Type, slug string) ([]string, error) {
	if !typ.Valid() {
		return nil, domainerrors.Validationf("unknown taxonomy type %q", typ)
	}
	return s.taxonomy.Expand(slug, typ), nil
}

// UnknownSlugs returns the entries of a filter selection that do not
// resolve against the taxonomy. An empty result means the whole
// selection is valid.
func (s *TaxonomyService) UnknownSlugs(typ taxonomy.Type, slugs []string) []string {
	var unknown []string
	for _, slug := range slugs {
		if s.taxonomy.Resolve(slug, typ) == nil {
			unknown = append(unknown, slug)
		}
	}
	return unknown
}

// ClassifyTag slugifies a free-form label and resolves it, for clients
// that let users type category names instead of slugs.
func (s *TaxonomyService) ClassifyTag(typ taxonomy.Type, label string) (*ResolvedTag, error) {
	return s.Resolve(typ, taxonomy.Slugify(label))
}
