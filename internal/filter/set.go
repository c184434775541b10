// Package filter removes noise tokens from the tokenizer output.
//
// The filter drops hashtags, mentions, links, punctuation, emoticons,
// emoji glyphs, and stopwords, keeping only the content words that feed
// the bag-of-words corpus. The exclusion set is assembled in two explicit
// phases: static sources first (stopword tables, punctuation, emoticons,
// curated extra terms, stopword files), then a corpus scan that discovers
// the emoji glyphs actually present in the documents. The set is frozen
// before the main filtering pass begins.
//
// Usage Example:
//
//	set, err := filter.NewSetBuilder().
//		AddLanguage("french").
//		AddPunctuation().
//		AddEmoticons().
//		ScanEmoji(docs).
//		Build()
//
// A built Set is immutable; the builder cannot be reused after Build.
package filter

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dadaromeo/bayes-dap/internal/normalize"
)

// Set is a frozen exclusion set of token strings. Membership checks are
// case-folded. Construct via SetBuilder; a Set has no mutating methods.
type Set struct {
	terms map[string]struct{}
}

// Contains reports whether the case-folded token is excluded.
func (s *Set) Contains(token string) bool {
	_, ok := s.terms[strings.ToLower(token)]
	return ok
}

// Len returns the number of excluded terms.
func (s *Set) Len() int {
	return len(s.terms)
}

// SetBuilder accumulates exclusion terms from multiple sources.
// Source errors are recorded and surfaced by Build, so a configured but
// unavailable source always fails the construction rather than silently
// producing an incomplete set.
type SetBuilder struct {
	terms map[string]struct{}
	err   error
	built bool
}

// NewSetBuilder creates an empty exclusion-set builder.
func NewSetBuilder() *SetBuilder {
	return &SetBuilder{terms: make(map[string]struct{})}
}

// AddTerms adds curated extra terms to the exclusion set.
func (b *SetBuilder) AddTerms(terms ...string) *SetBuilder {
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			b.terms[t] = struct{}{}
		}
	}
	return b
}

// AddLanguage adds the built-in stopword table for the named natural
// language ("french" or "english"). An unknown language is a source
// error, reported by Build.
func (b *SetBuilder) AddLanguage(lang string) *SetBuilder {
	table, ok := stopwordTables[strings.ToLower(lang)]
	if !ok {
		b.fail(fmt.Errorf("no built-in stopword table for language %q", lang))
		return b
	}
	for t := range table {
		b.terms[t] = struct{}{}
	}
	return b
}

// AddFile adds one term per non-blank line from a stopword file.
// A missing or unreadable file is a source error, reported by Build.
func (b *SetBuilder) AddFile(path string) *SetBuilder {
	data, err := os.ReadFile(path)
	if err != nil {
		b.fail(fmt.Errorf("stopword source %q unavailable: %w", path, err))
		return b
	}
	count := 0
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line != "" && !strings.HasPrefix(line, "#") {
			b.terms[line] = struct{}{}
			count++
		}
	}
	slog.Debug("loaded stopword file", "path", path, "terms", count)
	return b
}

// AddPunctuation adds the punctuation and decorative symbol glyphs.
func (b *SetBuilder) AddPunctuation() *SetBuilder {
	for t := range punctuationGlyphs {
		b.terms[t] = struct{}{}
	}
	return b
}

// AddEmoticons adds the known emoticon glyph sequences.
func (b *SetBuilder) AddEmoticons() *SetBuilder {
	for t := range emoticonGlyphs {
		b.terms[t] = struct{}{}
	}
	return b
}

// ScanEmoji walks all raw documents and adds every emoji glyph found.
// This is the corpus-scan phase of the two-phase construction: it runs
// over the raw text, before normalization strips emoji, so glyphs that
// slip past any stage are still excluded by membership.
func (b *SetBuilder) ScanEmoji(docs []string) *SetBuilder {
	found := 0
	for _, doc := range docs {
		for _, r := range doc {
			if normalize.IsEmoji(r) {
				if _, seen := b.terms[string(r)]; !seen {
					b.terms[string(r)] = struct{}{}
					found++
				}
			}
		}
	}
	slog.Debug("scanned corpus for emoji", "documents", len(docs), "glyphs", found)
	return b
}

// Build freezes the accumulated terms into an immutable Set. It returns
// the first source error encountered, if any. The builder cannot be
// used again after Build.
func (b *SetBuilder) Build() (*Set, error) {
	if b.built {
		return nil, fmt.Errorf("exclusion-set builder already built")
	}
	b.built = true
	if b.err != nil {
		return nil, b.err
	}
	return &Set{terms: b.terms}, nil
}

// fail records the first source error; later errors are dropped.
func (b *SetBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
