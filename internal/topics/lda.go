package topics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/james-bowman/nlp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/dadaromeo/bayes-dap/internal/corpus"
)

// LDA trains topics by Latent Dirichlet Allocation, adapting the online
// variational inference from github.com/james-bowman/nlp to the Trainer
// boundary. The corpus pass that populates the vocabulary happens here:
// Train performs the single logical iteration of Corpus.Vectors.
type LDA struct {
	// Iterations caps the inference passes (default: library default)
	Iterations int
	// Processes bounds inference parallelism (default: GOMAXPROCS)
	Processes int
	// Seed fixes the sampler's random source for reproducible runs;
	// zero leaves the library's time-based seeding in place
	Seed uint64
}

// Train fits k topics over the corpus and returns one weight
// distribution per topic, indexed by vocabulary id.
func (l *LDA) Train(ctx context.Context, c *corpus.Corpus, k int) ([]Topic, error) {
	if k < 1 {
		return nil, fmt.Errorf("topic count must be positive, got %d", k)
	}

	// materialize the bag-of-words pass; empty vectors carry no signal
	// and would produce degenerate all-zero columns
	var vectors []corpus.Vector
	for _, vec := range c.Vectors() {
		if len(vec) > 0 {
			vectors = append(vectors, vec)
		}
	}

	vocabSize := c.VocabularySize()
	if vocabSize == 0 || len(vectors) == 0 {
		return nil, fmt.Errorf("corpus has no surviving tokens to model")
	}
	slog.Debug("training LDA", "topics", k, "documents", len(vectors), "vocabulary", vocabSize, "iterations", l.Iterations)

	// term-document matrix: rows are vocabulary ids, columns are documents
	td := mat.NewDense(vocabSize, len(vectors), nil)
	for j, vec := range vectors {
		for _, e := range vec {
			td.Set(e.ID, j, float64(e.Count))
		}
	}

	lda := nlp.NewLatentDirichletAllocation(k)
	if l.Iterations > 0 {
		lda.Iterations = l.Iterations
	}
	if l.Processes > 0 {
		lda.Processes = l.Processes
	}
	if l.Seed != 0 {
		lda.Rnd = rand.New(rand.NewSource(l.Seed))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := lda.FitTransform(td); err != nil {
		return nil, fmt.Errorf("fitting topic model: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Components holds the topic-over-word distribution, one row per topic
	comps := lda.Components()
	rows, cols := comps.Dims()
	out := make([]Topic, rows)
	for t := 0; t < rows; t++ {
		dist := make(Topic, cols)
		for w := 0; w < cols; w++ {
			dist[w] = comps.At(t, w)
		}
		out[t] = dist
	}
	return out, nil
}
