package filter

import (
	"iter"
	"strings"

	"github.com/kljensen/snowball"
)

// Accept reports whether a token survives filtering against the given
// exclusion set. A token is dropped if ANY of these holds:
//
//  1. it starts with "#", "@", "http", or "www" (hashtags, mentions, links)
//  2. it contains a literal "." (residual urls, abbreviations) or an
//     apostrophe (contracted forms are not treated as standalone content
//     words; a deliberate simplification)
//  3. its case-folded form is a member of the exclusion set
func Accept(token string, set *Set) bool {
	if token == "" {
		return false
	}
	if strings.HasPrefix(token, "#") || strings.HasPrefix(token, "@") ||
		strings.HasPrefix(token, "http") || strings.HasPrefix(token, "www") {
		return false
	}
	if strings.ContainsAny(token, ".'’") {
		return false
	}
	return !set.Contains(token)
}

// Tokens returns a lazy, finite, restartable sequence of the tokens that
// survive filtering, preserving relative order. Each range over the
// returned sequence re-evaluates the predicate from the start.
func Tokens(tokens []string, set *Set) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, tok := range tokens {
			if Accept(tok, set) {
				if !yield(tok) {
					return
				}
			}
		}
	}
}

// TermFilter transforms a token sequence into another, for optional
// stages applied after exclusion filtering.
type TermFilter func(iter.Seq[string]) iter.Seq[string]

// Stem returns a TermFilter that reduces each token to its snowball stem
// for the given language ("french", "english", ...). Tokens the stemmer
// cannot handle pass through unchanged.
func Stem(language string) TermFilter {
	return func(seq iter.Seq[string]) iter.Seq[string] {
		return func(yield func(string) bool) {
			for tok := range seq {
				stemmed, err := snowball.Stem(tok, language, true)
				if err != nil || stemmed == "" {
					stemmed = tok
				}
				if !yield(stemmed) {
					return
				}
			}
		}
	}
}
