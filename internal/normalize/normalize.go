// Package normalize prepares raw social-media text for tokenization.
//
// This package implements the first stage of the topic-modeling pipeline:
// it turns one raw document into a canonical lowercase string that the
// tokenizer can split deterministically. Normalization is language-aware
// (accented capitals must fold correctly for French text) and strips the
// artifacts that carry no topical signal: emoji, digit-bearing tokens,
// and trailing ellipsis runs.
//
// Usage Example:
//
//	n := normalize.New(language.French)
//	clean := n.Normalize("Ça commence BIEN 👍 #TheVoice…")
//	// Returns: "ça commence bien #thevoice"
//
// Normalize is a pure function of its input: it never fails, returns ""
// for "", and is idempotent (Normalize(Normalize(s)) == Normalize(s)).
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalizer holds the language-specific casing rules used during
// normalization. The zero value is not usable; construct with New.
type Normalizer struct {
	lower cases.Caser
}

// New creates a Normalizer with casing rules for the given language.
func New(lang language.Tag) *Normalizer {
	return &Normalizer{
		lower: cases.Lower(lang),
	}
}

// defaultNormalizer serves the package-level Normalize for French text,
// the corpus language this tool was built around.
var defaultNormalizer = New(language.French)

// Normalize canonicalizes raw text using French casing rules.
// See Normalizer.Normalize for the full contract.
func Normalize(raw string) string {
	return defaultNormalizer.Normalize(raw)
}

// Normalize turns one raw document into a canonical lowercase string.
//
// The stages, in order:
//  1. Unicode NFC normalization, so composed and decomposed accents compare equal
//  2. lowercasing with the configured language's casing rules
//  3. emoji removal (no emoji code point ever reaches the tokenizer)
//  4. removal of digit-bearing tokens (IDs, scores, dates are noise)
//  5. whitespace collapsing, surrounding-space trim, and trailing ellipsis trim
//
// Pure function: no side effects, never fails, "" returns "".
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	text := norm.NFC.String(raw)
	text = n.lower.String(text)
	text = stripEmoji(text)

	// drop any whitespace-delimited token that carries a digit;
	// mixed tokens like "j10" or "2ty" are noise for topic modeling
	fields := strings.Fields(text)
	kept := fields[:0]
	for _, f := range fields {
		if !strings.ContainsFunc(f, unicode.IsDigit) {
			kept = append(kept, f)
		}
	}
	text = strings.Join(kept, " ")

	return trimTrailingEllipsis(strings.TrimSpace(text))
}

// trimTrailingEllipsis removes any trailing run of literal dots or
// ellipsis characters, plus the whitespace exposed by the trim.
// Truncated tweets end in "…" or "..." and the fragment before it is
// kept while the decoration is not.
func trimTrailingEllipsis(s string) string {
	s = strings.TrimRightFunc(s, func(r rune) bool {
		return r == '.' || r == '…'
	})
	return strings.TrimRight(s, " \t")
}

// stripEmoji removes every emoji rune from the text. Removal rather
// than placeholder substitution: downstream stages must never see an
// emoji in any form, and the corpus-level emoji scan works on the raw
// documents instead.
func stripEmoji(s string) string {
	if !strings.ContainsFunc(s, IsEmoji) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !IsEmoji(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsEmoji reports whether the rune belongs to one of the Unicode emoji
// blocks, or is a joiner/selector used to compose emoji sequences.
// Exported so the exclusion-set builder can scan raw documents for
// emoji glyphs with the same definition the Normalizer uses.
func IsEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // pictographs, emoticons, transport, supplemental
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators (flags)
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols and dingbats
		return true
	case r >= 0x2B00 && r <= 0x2BFF: // misc symbols and arrows (⭐ etc.)
		return true
	case r == 0xFE0F || r == 0xFE0E: // variation selectors
		return true
	case r == 0x200D: // zero-width joiner
		return true
	}
	return false
}
