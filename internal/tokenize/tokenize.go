// Package tokenize splits normalized text into candidate tokens.
//
// This package implements the second stage of the topic-modeling pipeline.
// The default strategy is tuned for short informal social-media text: it
// keeps hashtags, mentions, links, and emoticon glyph sequences atomic so
// the token filter can recognize and exclude them as whole units. A
// prose-backed strategy is available for long-form sources.
//
// Usage Example:
//
//	tok, _ := tokenize.New(tokenize.Tweet)
//	tokens := tok.Tokenize("#thevoice est superb :)")
//	// Returns: ["#thevoice", "est", "superb", ":)"]
//
// All tokenizers are deterministic (same input, same sequence, in
// left-to-right source order) and stateless across calls.
package tokenize

// Tokenizer defines the interface for text splitting strategies.
type Tokenizer interface {
	// Tokenize returns the ordered sequence of candidate tokens in text.
	Tokenize(text string) []string

	// Name returns a human-readable name for this strategy (for logging)
	Name() string
}

// Method represents the available tokenization strategies.
type Method int

const (
	// Tweet keeps social-media constructs (hashtags, mentions, urls,
	// emoticons) atomic (default)
	Tweet Method = iota
	// Plain uses prose tokenization for long-form text
	Plain
)

// String returns the string representation of the tokenization method.
func (m Method) String() string {
	switch m {
	case Tweet:
		return "tweet"
	case Plain:
		return "plain"
	default:
		return "unknown"
	}
}

// New creates a Tokenizer for the specified method. This functions as a
// factory returning concrete Tokenizer types, giving callers a single
// entry point. Returns an error if the strategy cannot be initialized.
func New(method Method) (Tokenizer, error) {
	switch method {
	case Plain:
		return NewProseTokenizer(), nil
	default:
		return NewTweetTokenizer(), nil
	}
}
