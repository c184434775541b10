package tokenize

import (
	"log/slog"

	"github.com/jdkato/prose/v2"
)

// ProseTokenizer splits long-form text with the prose NLP tokenizer.
// Tagging, segmentation, and entity extraction are disabled; only the
// token stream is produced. Useful when the corpus is paragraphs pulled
// from articles rather than tweets.
type ProseTokenizer struct{}

// NewProseTokenizer creates a plain-text tokenizer backed by prose.
func NewProseTokenizer() *ProseTokenizer {
	return &ProseTokenizer{}
}

// Tokenize returns the tokens of text in left-to-right source order.
// prose can fail on malformed input; in that case the text is treated
// as producing no tokens, consistent with the filter dropping noise.
func (t *ProseTokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
		prose.WithTagging(false))
	if err != nil {
		slog.Debug("prose tokenization failed", "error", err, "textLength", len(text))
		return nil
	}

	var tokens []string
	for _, tok := range doc.Tokens() {
		if tok.Text != "" {
			tokens = append(tokens, tok.Text)
		}
	}
	return tokens
}

// Name returns the name of this strategy (for logging and debugging).
func (t *ProseTokenizer) Name() string {
	return "plain (prose)"
}
