package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
)

// retweetPattern matches the repost marker at the head of a tweet.
var retweetPattern = regexp.MustCompile(`^(?i:rt)\s*@\w+\s*:?`)

// Load reads every source in order and returns the combined document
// collection. Plain text becomes one document per non-blank line; HTML
// becomes one document per extracted paragraph (see Extract). Reposts
// and exact duplicates of earlier documents are excluded.
//
// ctx allows cancellation of URL fetches.
func Load(ctx context.Context, sources []string, selector string) ([]string, error) {
	var docs []string
	seen := make(map[string]struct{})

	for _, src := range sources {
		raw, err := read(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("reading source %q: %w", src, err)
		}

		var parts []string
		if looksLikeHTML(raw) {
			parts, err = Extract(raw, selector, baseURLOf(src))
			if err != nil {
				return nil, fmt.Errorf("extracting source %q: %w", src, err)
			}
		} else {
			parts = splitLines(raw)
		}

		kept := 0
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" || retweetPattern.MatchString(p) {
				continue
			}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			docs = append(docs, p)
			kept++
		}
		slog.Debug("loaded source", "source", src, "documents", kept)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents loaded from any source")
	}
	return docs, nil
}

// read fetches one source into memory.
func read(ctx context.Context, src string) (string, error) {
	rc, err := open(ctx, src)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return string(data), nil
}

// splitLines treats each non-blank line as one document.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	docs := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			docs = append(docs, line)
		}
	}
	return docs
}

// looksLikeHTML sniffs for markup so callers don't have to declare the
// source format. A leading tag is enough; tweets never start with one.
func looksLikeHTML(content string) bool {
	trimmed := strings.TrimSpace(content)
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<!doctype html") ||
		strings.HasPrefix(lower, "<html") ||
		strings.HasPrefix(lower, "<head") ||
		strings.HasPrefix(lower, "<body") ||
		strings.HasPrefix(lower, "<div")
}

func isHTTP(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// baseURLOf parses the source as a URL when it is one, for relative
// link resolution during readability extraction.
func baseURLOf(src string) *url.URL {
	if !isHTTP(src) {
		return nil
	}
	u, _ := url.Parse(src) // nil base on parse failure is acceptable
	return u
}
