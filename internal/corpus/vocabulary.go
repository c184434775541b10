// Package corpus maps raw documents to bag-of-words vectors over a dense
// integer vocabulary.
//
// The Corpus runs each document through the full pipeline (normalization,
// tokenization, exclusion filtering, optional term filters) and counts
// the surviving tokens per document against a shared Vocabulary. The
// Vocabulary assigns each distinct token a stable, dense, zero-based id
// in first-seen order, so a fixed document order always yields the same
// token→id mapping.
//
// Usage Example:
//
//	c := corpus.New(docs, normalize.Normalize, tok, set)
//	for i, vec := range c.Vectors() {
//		// vec is the (id, count) vector of document i
//	}
package corpus

import (
	"errors"
	"strings"
)

// ErrInvalidToken is returned when a malformed value reaches vocabulary
// id assignment. The offending document is skipped; the corpus pass
// continues.
var ErrInvalidToken = errors.New("corpus: invalid token")

// Vocabulary is the bijection between distinct surviving tokens and
// dense integer ids, plus corpus-wide document-frequency counters.
// Ids form the range [0, Size()) in first-seen order. Document
// frequencies are maintained by the Corpus, not by id assignment.
type Vocabulary struct {
	ids     map[string]int
	tokens  []string
	docFreq map[string]int
}

// NewVocabulary creates an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		ids:     make(map[string]int),
		docFreq: make(map[string]int),
	}
}

// ID returns the id of token, allocating the next sequential id if the
// token has not been seen before. A blank token is malformed and yields
// ErrInvalidToken.
func (v *Vocabulary) ID(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, ErrInvalidToken
	}
	if id, ok := v.ids[token]; ok {
		return id, nil
	}
	id := len(v.tokens)
	v.ids[token] = id
	v.tokens = append(v.tokens, token)
	return id, nil
}

// Size returns the number of distinct registered tokens.
func (v *Vocabulary) Size() int {
	return len(v.tokens)
}

// Token resolves an id back to its token string.
func (v *Vocabulary) Token(id int) (string, bool) {
	if id < 0 || id >= len(v.tokens) {
		return "", false
	}
	return v.tokens[id], true
}

// DocFrequency returns the number of distinct documents in which the
// token has appeared at least once.
func (v *Vocabulary) DocFrequency(token string) int {
	return v.docFreq[token]
}

// bumpDocFrequency increments the document-frequency counter for token.
// Called by the Corpus at most once per document per token.
func (v *Vocabulary) bumpDocFrequency(token string) {
	v.docFreq[token]++
}

// resetDocFrequencies clears the document-frequency counters so a fresh
// corpus pass does not double-count. Ids are never reset.
func (v *Vocabulary) resetDocFrequencies() {
	v.docFreq = make(map[string]int)
}
