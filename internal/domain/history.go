package domain

import "time"

// SearchEntry is one remembered search. Skill and domain selections are
// composite taxonomy slugs; TaxonomyVersion records which edition of the
// classification scheme they were made under so future revisions can be
// reconciled.
type SearchEntry struct {
	CreatedAt       time.Time `json:"created_at"`
	ID              string    `json:"id"`
	Query           string    `json:"query,omitempty"`
	Skills          []string  `json:"skills,omitempty"`
	Domains         []string  `json:"domains,omitempty"`
	ChainID         int       `json:"chain_id,omitempty"`
	TaxonomyVersion string    `json:"taxonomy_version"`
}

// IsEmpty reports whether the entry carries no query and no selection.
// Empty searches are not worth remembering.
func (e *SearchEntry) IsEmpty() bool {
	return e.Query == "" && len(e.Skills) == 0 && len(e.Domains) == 0
}
