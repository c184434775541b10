package source

import (
	"fmt"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Extract turns an HTML source into documents, one per paragraph of the
// main content. With a CSS selector, only the matching elements are
// used; otherwise readability isolates the main content first. The HTML
// is converted to Markdown and split on paragraph boundaries, so list
// items and headings each become their own short document, the same
// granularity as a tweet.
func Extract(html, selector string, baseURL *url.URL) ([]string, error) {
	var content string
	var err error
	if selector != "" {
		content, err = selectHTML(html, selector)
	} else {
		content, err = mainContent(html, baseURL)
	}
	if err != nil {
		return nil, err
	}

	markdown, err := toMarkdown(content)
	if err != nil {
		return nil, err
	}
	return splitParagraphs(markdown), nil
}

// mainContent uses go-readability to isolate the main article content.
func mainContent(html string, baseURL *url.URL) (string, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}
	article, err := readability.FromReader(strings.NewReader(html), baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}
	return article.Content, nil
}

// selectHTML extracts the elements matching a CSS selector.
func selectHTML(html, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	var parts []string
	selection.Each(func(i int, s *goquery.Selection) {
		if inner, err := s.Html(); err == nil {
			tag := goquery.NodeName(s)
			parts = append(parts, fmt.Sprintf("<%s>%s</%s>", tag, inner, tag))
		}
	})
	if len(parts) == 0 {
		return "", fmt.Errorf("failed to extract HTML from selection")
	}
	return strings.Join(parts, "\n"), nil
}

// toMarkdown converts extracted HTML to Markdown, normalizing the
// whitespace so paragraph splitting is reliable.
func toMarkdown(html string) (string, error) {
	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML: %w", err)
	}
	cleaned := strings.TrimSpace(markdown)
	for strings.Contains(cleaned, "\n\n\n") {
		cleaned = strings.ReplaceAll(cleaned, "\n\n\n", "\n\n")
	}
	return cleaned, nil
}

// splitParagraphs breaks Markdown into per-paragraph documents,
// dropping heading markers and blank fragments.
func splitParagraphs(markdown string) []string {
	paragraphs := strings.Split(markdown, "\n\n")
	docs := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		p = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(p), "# "))
		if p != "" {
			docs = append(docs, p)
		}
	}
	return docs
}
