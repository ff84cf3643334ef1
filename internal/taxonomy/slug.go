package taxonomy

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Matches any character outside the slug alphabet.
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	// Matches runs of underscores.
	multipleUnderscores = regexp.MustCompile(`_+`)
)

// splitComposite parses a composite slug into its parent part and, for
// children, the child part. The rule is defined exactly once here: one
// slash, first segment is the parent.
func splitComposite(slug string) (parent, child string, isChild bool) {
	parent, child, isChild = strings.Cut(slug, "/")
	return parent, child, isChild
}

// normalizeSlug prepares a raw slug for lookup or comparison.
func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// Slugify converts a free-form label to the registry's slug alphabet.
// "Natural Language Processing" -> "natural_language_processing".
// "Sentiment/Emotion Analysis" -> "sentiment_emotion_analysis".
func Slugify(s string) string {
	// Decompose accented characters, then drop anything non-ASCII.
	s = norm.NFKD.String(s)
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)

	s = strings.ToLower(s)
	s = nonSlugChars.ReplaceAllString(s, "_")
	s = multipleUnderscores.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// FormatSlug renders a human-readable fallback label for a slug that did
// not resolve: the last path segment, underscores split into words, each
// word title-cased. "analytics/on_chain" -> "On Chain";
// "unknown_skill" -> "Unknown Skill".
func FormatSlug(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ""
	}
	if i := strings.LastIndex(slug, "/"); i >= 0 {
		slug = slug[i+1:]
	}
	words := strings.Split(slug, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.TrimSpace(strings.Join(words, " "))
}
