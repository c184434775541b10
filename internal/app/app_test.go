package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dadaromeo/bayes-dap/internal/corpus"
	"github.com/dadaromeo/bayes-dap/internal/filter"
	"github.com/dadaromeo/bayes-dap/internal/normalize"
	"github.com/dadaromeo/bayes-dap/internal/tokenize"
	"github.com/dadaromeo/bayes-dap/internal/topics"
)

func TestBuildExclusionSet(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "stopwords.txt")
	content := "# curated show vocabulary\nthevoice\ncoach\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("writing stopword file: %v", err)
	}

	cfg := Config{
		Lang:           "french",
		StopwordFiles:  []string{file},
		ExtraStopwords: []string{"finale"},
	}
	docs := []string{"bravo 👏 superbe"}

	set, err := buildExclusionSet(cfg, docs)
	if err != nil {
		t.Fatalf("buildExclusionSet() error = %v", err)
	}

	for _, excluded := range []string{"est", "!", ":)", "thevoice", "coach", "finale", "👏"} {
		if !set.Contains(excluded) {
			t.Errorf("Contains(%q) = false, want true", excluded)
		}
	}
	if set.Contains("superbe") {
		t.Errorf("Contains(%q) = true, want false", "superbe")
	}
}

func TestBuildExclusionSetMissingFile(t *testing.T) {
	cfg := Config{
		Lang:          "french",
		StopwordFiles: []string{"no/such/stopwords.txt"},
	}
	if _, err := buildExclusionSet(cfg, nil); err == nil {
		t.Fatal("buildExclusionSet() error = nil, want error for missing file")
	}
}

func TestRender(t *testing.T) {
	set, err := filter.NewSetBuilder().AddLanguage("french").Build()
	if err != nil {
		t.Fatalf("building exclusion set: %v", err)
	}
	c := corpus.New(
		[]string{"chat dort miaule"}, // ids: chat=0, dort=1, miaule=2
		normalize.Normalize, tokenize.NewTweetTokenizer(), set,
	)
	for range c.Vectors() {
	}

	trained := []topics.Topic{
		{0.2, 0.5, 0.3},
		{0.6, 0.1, 0.3},
	}
	got := render(trained, c, Config{TopWords: 2})

	want := "1 documents, 3 words in vocabulary\n\n" +
		"topic 0: 0.500*\"dort\" + 0.300*\"miaule\"\n" +
		"topic 1: 0.600*\"chat\" + 0.300*\"miaule\"\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderSampled(t *testing.T) {
	set, err := filter.NewSetBuilder().AddLanguage("french").Build()
	if err != nil {
		t.Fatalf("building exclusion set: %v", err)
	}
	c := corpus.New([]string{"chat dort"}, normalize.Normalize, tokenize.NewTweetTokenizer(), set)
	for range c.Vectors() {
	}

	trained := []topics.Topic{
		{0.5, 0.5}, {0.7, 0.3}, {0.2, 0.8}, {0.9, 0.1},
	}
	cfg := Config{TopWords: 1, Sample: 2, Seed: 42}

	got := render(trained, c, cfg)
	if n := strings.Count(got, "topic "); n != 2 {
		t.Errorf("render() reported %d topics, want 2:\n%s", n, got)
	}
	// same seed renders the same sample
	if again := render(trained, c, cfg); again != got {
		t.Errorf("sampled render not reproducible:\n%s\nvs\n%s", got, again)
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tweets.txt")
	content := strings.Join([]string{
		"le chat dort sur le canapé",
		"le chien aboie dans le jardin",
		"RT @user: le chat dort sur le canapé",
		"le chat miaule et le chat dort",
		"le chien court dans le jardin",
		"quelle voix superbe ce soir #TheVoice :)",
		"https://t.co/abc 😀",
	}, "\n")
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("writing source file: %v", err)
	}

	cfg := Config{
		Sources:    []string{file},
		Topics:     2,
		Iterations: 20,
		TopWords:   3,
		Lang:       "french",
		Seed:       42,
		Quiet:      true,
	}
	out, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// repost excluded at load: 6 documents remain
	if !strings.HasPrefix(out, "6 documents, ") {
		t.Errorf("Run() output header = %q, want prefix %q", firstLine(out), "6 documents, ")
	}
	if n := strings.Count(out, "topic "); n != 2 {
		t.Errorf("Run() reported %d topics, want 2:\n%s", n, out)
	}
}

func TestRunUnsupportedLanguage(t *testing.T) {
	cfg := Config{Sources: []string{"-"}, Topics: 2, TopWords: 3, Lang: "klingon", Quiet: true}
	if _, err := Run(context.Background(), cfg); err == nil {
		t.Fatal("Run() error = nil, want error for unsupported language")
	}
}

func TestRunNoSources(t *testing.T) {
	cfg := Config{Topics: 2, TopWords: 3, Lang: "french", Quiet: true}
	if _, err := Run(context.Background(), cfg); err == nil {
		t.Fatal("Run() error = nil, want error for missing sources")
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
