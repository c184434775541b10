// Package topics defines the boundary to the topic-model trainer and the
// helpers that turn trained topics into human-readable reports.
//
// The corpus side of the boundary exposes vocabulary size, document
// count, and the bag-of-words vectors; the trainer returns, for K topics,
// one weight distribution over vocabulary ids per topic. Any conforming
// trainer is acceptable; the bundled implementation adapts the Latent
// Dirichlet Allocation from github.com/james-bowman/nlp. Trainer output
// is validated at this boundary before ids are resolved back to words.
package topics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/dadaromeo/bayes-dap/internal/corpus"
)

// Topic is a distribution over vocabulary ids: index w holds the weight
// of vocabulary word w. Weights are non-negative and sum to ~1.
type Topic []float64

// WeightedWord pairs a vocabulary word with its weight in a topic.
type WeightedWord struct {
	Word   string
	Weight float64
}

// Trainer consumes a corpus and produces k topics. Implementations must
// honor ctx cancellation for long-running inference.
type Trainer interface {
	Train(ctx context.Context, c *corpus.Corpus, k int) ([]Topic, error)
}

// ErrContractViolation indicates the trainer returned malformed topic
// distributions. Detected at the reporting boundary, surfaced, never
// recovered.
var ErrContractViolation = errors.New("topics: trainer contract violation")

// weightSumTolerance bounds how far a topic's weights may drift from
// summing to exactly 1 before the distribution is considered malformed.
const weightSumTolerance = 1e-2

// Validate checks that each topic is a well-formed distribution over the
// vocabulary: correct dimension, non-negative finite weights, and a
// weight sum within tolerance of 1.
func Validate(topics []Topic, vocabSize int) error {
	for i, t := range topics {
		if len(t) != vocabSize {
			return fmt.Errorf("%w: topic %d has %d weights, vocabulary has %d words",
				ErrContractViolation, i, len(t), vocabSize)
		}
		sum := 0.0
		for w, weight := range t {
			if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
				return fmt.Errorf("%w: topic %d has invalid weight %v for word id %d",
					ErrContractViolation, i, weight, w)
			}
			sum += weight
		}
		if math.Abs(sum-1) > weightSumTolerance {
			return fmt.Errorf("%w: topic %d weights sum to %v", ErrContractViolation, i, sum)
		}
	}
	return nil
}

// TopWords resolves the n heaviest vocabulary ids of a topic back to
// words, in descending weight order with ascending id as tie-break so
// the output is deterministic.
func TopWords(t Topic, voc *corpus.Vocabulary, n int) []WeightedWord {
	ids := make([]int, len(t))
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(a, b int) bool {
		if t[ids[a]] != t[ids[b]] {
			return t[ids[a]] > t[ids[b]]
		}
		return ids[a] < ids[b]
	})

	if n > len(ids) {
		n = len(ids)
	}
	words := make([]WeightedWord, 0, n)
	for _, id := range ids[:n] {
		word, ok := voc.Token(id)
		if !ok {
			continue
		}
		words = append(words, WeightedWord{Word: word, Weight: t[id]})
	}
	return words
}

// Sample returns n distinct topic indices drawn from the given random
// source, in draw order. The source is injected by the caller so
// sampled reporting is reproducible without process-wide seed state.
// When n covers all topics the full index range is returned shuffled.
func Sample(topics []Topic, rng *rand.Rand, n int) []int {
	perm := rng.Perm(len(topics))
	if n > len(perm) {
		n = len(perm)
	}
	return perm[:n]
}
