// Package app contains the core application logic for the bayes-dap CLI
// tool. It wires the pipeline stages together: document loading,
// exclusion-set construction, bag-of-words corpus building, topic-model
// training, and report rendering, separated from CLI concerns.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/dadaromeo/bayes-dap/internal/corpus"
	"github.com/dadaromeo/bayes-dap/internal/filter"
	"github.com/dadaromeo/bayes-dap/internal/normalize"
	"github.com/dadaromeo/bayes-dap/internal/source"
	"github.com/dadaromeo/bayes-dap/internal/spinner"
	"github.com/dadaromeo/bayes-dap/internal/tokenize"
	"github.com/dadaromeo/bayes-dap/internal/topics"
)

// Config holds all configuration options for a topic-discovery run.
type Config struct {
	Sources        []string // file paths, URLs, or "-" for stdin
	Topics         int      // number of topics K
	Iterations     int      // LDA inference iterations (0 = library default)
	TopWords       int      // words reported per topic
	Lang           string   // stopword/normalization language
	StopwordFiles  []string // extra stopword files, one term per line
	ExtraStopwords []string // curated extra terms
	Stem           bool     // apply snowball stemming after filtering
	Plain          bool     // prose tokenizer instead of the tweet tokenizer
	Selector       string   // CSS selector for HTML sources
	Seed           uint64   // random seed for training and sampling (0 = time-based)
	Sample         int      // report only n randomly sampled topics (0 = all)
	Quiet          bool     // suppress progress and warnings
	Debug          bool
}

// languageTags maps the supported stopword languages to casing rules.
var languageTags = map[string]language.Tag{
	"french":  language.French,
	"english": language.English,
}

// Run executes one full topic-discovery pass and returns the rendered
// report.
//
// Processing pipeline:
//  1. load documents (reposts and duplicates excluded at the source)
//  2. build the frozen exclusion set (static sources, then emoji scan)
//  3. build the bag-of-words corpus
//  4. train the topic model (the corpus pass happens inside Train)
//  5. validate the trainer output and render top words per topic
//
// ctx allows cancellation of fetching and training.
func Run(ctx context.Context, cfg Config) (string, error) {
	if len(cfg.Sources) == 0 {
		return "", fmt.Errorf("no sources provided")
	}
	tag, ok := languageTags[strings.ToLower(cfg.Lang)]
	if !ok {
		return "", fmt.Errorf("unsupported language %q", cfg.Lang)
	}

	docs, err := source.Load(ctx, cfg.Sources, cfg.Selector)
	if err != nil {
		return "", err
	}

	set, err := buildExclusionSet(cfg, docs)
	if err != nil {
		return "", err
	}

	method := tokenize.Tweet
	if cfg.Plain {
		method = tokenize.Plain
	}
	tok, err := tokenize.New(method)
	if err != nil {
		return "", fmt.Errorf("failed to create tokenizer: %w", err)
	}

	var opts []corpus.Option
	if cfg.Stem {
		opts = append(opts, corpus.WithTermFilters(filter.Stem(strings.ToLower(cfg.Lang))))
	}
	c := corpus.New(docs, normalize.New(tag).Normalize, tok, set, opts...)

	trained, err := train(ctx, cfg, c)
	if err != nil {
		return "", err
	}

	if !cfg.Quiet {
		for _, de := range c.Errs() {
			fmt.Fprintf(os.Stderr, "Warning: skipped %v\n", de)
		}
	}

	if err := topics.Validate(trained, c.VocabularySize()); err != nil {
		return "", err
	}

	return render(trained, c, cfg), nil
}

// buildExclusionSet performs the two-phase exclusion-set construction:
// static sources first, then the corpus emoji scan, frozen by Build.
// Any unavailable source fails the whole run immediately.
func buildExclusionSet(cfg Config, docs []string) (*filter.Set, error) {
	b := filter.NewSetBuilder().
		AddLanguage(cfg.Lang).
		AddPunctuation().
		AddEmoticons().
		AddTerms(cfg.ExtraStopwords...)
	for _, f := range cfg.StopwordFiles {
		b.AddFile(f)
	}
	b.ScanEmoji(docs)

	set, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("building exclusion set: %w", err)
	}
	return set, nil
}

// train runs the LDA trainer with a progress spinner on stderr unless
// quiet mode is set.
func train(ctx context.Context, cfg Config, c *corpus.Corpus) ([]topics.Topic, error) {
	if !cfg.Quiet {
		sp := spinner.New(ctx, os.Stderr, "Training topic model...")
		sp.Start()
		defer sp.Stop()
	}

	trainer := &topics.LDA{
		Iterations: cfg.Iterations,
		Seed:       cfg.Seed,
	}
	return trainer.Train(ctx, c, cfg.Topics)
}

// render formats the trained topics as one line per topic, each listing
// its heaviest words with weights. With Sample set, only that many
// randomly chosen topics are shown, drawn from an explicit source seeded
// by cfg.Seed so sampled output is reproducible.
func render(trained []topics.Topic, c *corpus.Corpus, cfg Config) string {
	indices := make([]int, len(trained))
	for i := range indices {
		indices[i] = i
	}
	if cfg.Sample > 0 && cfg.Sample < len(trained) {
		seed := int64(cfg.Seed)
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		indices = topics.Sample(trained, rand.New(rand.NewSource(seed)), cfg.Sample)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d documents, %d words in vocabulary\n\n", c.DocumentCount(), c.VocabularySize())
	for _, idx := range indices {
		words := topics.TopWords(trained[idx], c.Vocabulary(), cfg.TopWords)
		parts := make([]string, 0, len(words))
		for _, w := range words {
			parts = append(parts, fmt.Sprintf("%.3f*%q", w.Weight, w.Word))
		}
		fmt.Fprintf(&sb, "topic %d: %s\n", idx, strings.Join(parts, " + "))
	}
	return sb.String()
}
