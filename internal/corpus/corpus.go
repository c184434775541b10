package corpus

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/dadaromeo/bayes-dap/internal/filter"
	"github.com/dadaromeo/bayes-dap/internal/tokenize"
)

// Normalizer turns one raw document into canonical text. It must be a
// pure function of its input.
type Normalizer func(string) string

// Entry is one (vocabulary id, in-document count) pair.
type Entry struct {
	ID    int
	Count int
}

// Vector is the bag-of-words representation of one document: each id
// appears at most once, and the counts sum to the number of tokens that
// survived the filter for that document. A document that reduces to
// zero surviving tokens has a nil Vector.
type Vector []Entry

// DocError records a per-document processing failure by input position.
type DocError struct {
	Index int
	Err   error
}

func (e DocError) Error() string {
	return fmt.Sprintf("document %d: %v", e.Index, e.Err)
}

func (e DocError) Unwrap() error { return e.Err }

// Corpus lazily maps an ordered sequence of raw documents to bag-of-words
// vectors through the configured pipeline stages. The Vocabulary it owns
// is populated as a side effect of iterating Vectors; before the first
// full iteration the vocabulary is empty.
type Corpus struct {
	docs      []string
	normalize Normalizer
	tokenizer tokenize.Tokenizer
	set       *filter.Set
	filters   []filter.TermFilter

	voc  *Vocabulary
	errs []DocError
}

// Option configures optional Corpus behavior.
type Option func(*Corpus)

// WithTermFilters appends post-exclusion token stages (stemming, for
// example), applied in order after the exclusion filter.
func WithTermFilters(filters ...filter.TermFilter) Option {
	return func(c *Corpus) {
		c.filters = append(c.filters, filters...)
	}
}

// New creates a Corpus over the given documents with a ready normalizer,
// tokenizer, and frozen exclusion set. The documents are processed in
// input order; nothing is computed until Vectors is iterated.
func New(docs []string, norm Normalizer, tok tokenize.Tokenizer, set *filter.Set, opts ...Option) *Corpus {
	c := &Corpus{
		docs:      docs,
		normalize: norm,
		tokenizer: tok,
		set:       set,
		voc:       NewVocabulary(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DocumentCount returns the number of input documents, counting those
// that reduce to empty vectors.
func (c *Corpus) DocumentCount() int {
	return len(c.docs)
}

// VocabularySize returns the current distinct-token count. It reflects a
// full pass only after Vectors has been iterated once.
func (c *Corpus) VocabularySize() int {
	return c.voc.Size()
}

// Vocabulary returns the vocabulary owned by this corpus. Callers must
// treat it as read-only.
func (c *Corpus) Vocabulary() *Vocabulary {
	return c.voc
}

// Errs returns the per-document failures collected during the last
// iteration of Vectors. Failed documents are skipped, never fatal.
func (c *Corpus) Errs() []DocError {
	return c.errs
}

// Vectors returns a lazy, finite, restartable sequence of bag-of-words
// vectors, one per input document, keyed by document position. Each full
// iteration runs the whole pipeline; vocabulary ids assigned in earlier
// iterations are preserved. Error and document-frequency state is reset
// at the start of each iteration.
func (c *Corpus) Vectors() iter.Seq2[int, Vector] {
	return func(yield func(int, Vector) bool) {
		c.errs = nil
		c.voc.resetDocFrequencies()
		for i, doc := range c.docs {
			vec, err := c.vectorize(doc)
			if err != nil {
				c.errs = append(c.errs, DocError{Index: i, Err: err})
				slog.Debug("skipping document", "index", i, "error", err)
				continue
			}
			if !yield(i, vec) {
				return
			}
		}
	}
}

// vectorize runs one document through normalize → tokenize → filter →
// vocabulary lookup and aggregates per-document counts. Entries appear
// in first-seen order within the document.
func (c *Corpus) vectorize(doc string) (Vector, error) {
	tokens := c.tokenizer.Tokenize(c.normalize(doc))
	seq := filter.Tokens(tokens, c.set)
	for _, f := range c.filters {
		seq = f(seq)
	}

	counts := make(map[int]int)
	var order []int
	seen := make(map[string]struct{})

	for tok := range seq {
		id, err := c.voc.ID(tok)
		if err != nil {
			return nil, fmt.Errorf("registering token %q: %w", tok, err)
		}
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
		if _, ok := seen[tok]; !ok {
			seen[tok] = struct{}{}
			c.voc.bumpDocFrequency(tok)
		}
	}

	if len(order) == 0 {
		return nil, nil
	}
	vec := make(Vector, 0, len(order))
	for _, id := range order {
		vec = append(vec, Entry{ID: id, Count: counts[id]})
	}
	return vec, nil
}
