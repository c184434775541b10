package tokenize

import (
	"log/slog"
	"regexp"
)

// tweetPattern matches one token per find, with alternatives ordered from
// most to least specific so multi-character social constructs win over
// plain word runs:
//
//  1. urls ("http...", "www...")
//  2. mentions and hashtags (@word, #word)
//  3. emoticon glyph sequences (":)", ";-p", "<3", ...)
//  4. word runs, including accented letters, with internal apostrophes
//     kept attached ("c'est" stays one token so the filter can treat the
//     contracted form as a unit)
//  5. any single non-space symbol (punctuation, decorative glyphs)
//
// Compiled once at package initialization.
var tweetPattern = regexp.MustCompile(
	`https?://\S+` +
		`|www\.\S+` +
		`|[@#][\p{L}\p{M}\p{N}_]+` +
		`|</?3` +
		`|[:;=8][\-o^']?[)(\][dDpP/\\|*oO{}]` +
		`|\^\^` +
		`|[\p{L}\p{M}\p{N}_]+(?:['’][\p{L}\p{M}\p{N}_]+)*` +
		`|[^\s]`)

// TweetTokenizer splits short informal text on whitespace and punctuation
// boundaries while keeping hashtags, mentions, links, and emoticons atomic.
type TweetTokenizer struct {
	pattern *regexp.Regexp
}

// NewTweetTokenizer creates the default social-media tokenizer.
func NewTweetTokenizer() *TweetTokenizer {
	return &TweetTokenizer{pattern: tweetPattern}
}

// Tokenize returns the tokens of text in left-to-right source order.
// A fresh slice is produced per call; no state is retained between calls.
func (t *TweetTokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	tokens := t.pattern.FindAllString(text, -1)
	slog.Debug("tokenized text", "strategy", t.Name(), "textLength", len(text), "tokenCount", len(tokens))
	return tokens
}

// Name returns the name of this strategy (for logging and debugging).
func (t *TweetTokenizer) Name() string {
	return "tweet"
}
