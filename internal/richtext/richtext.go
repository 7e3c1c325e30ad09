// Package richtext builds hero descriptions. Each constructor is an explicit decision
// about the trust boundary: Trust passes markup through untouched, Sanitize filters it
// and Markdown converts authored text without allowing raw HTML.
package richtext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Zerubabel-J/HeroCraft/internal/hero"
)

var (
	policy   = bluemonday.UGCPolicy()
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
)

// Format names the source encoding of a description.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps a payload value to a Format. Empty selects html.
func ParseFormat(v string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(v))) {
	case "", FormatHTML:
		return FormatHTML, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("richtext: unknown format %q", v)
	}
}

// Trust marks markup as safe without inspecting it. The caller owns the decision.
func Trust(markup string) hero.TrustedHTML {
	return hero.TrustedHTML(markup)
}

// Sanitize filters markup through a user generated content policy.
func Sanitize(markup string) hero.TrustedHTML {
	if strings.TrimSpace(markup) == "" {
		return ""
	}
	return hero.TrustedHTML(policy.Sanitize(markup))
}

// Markdown renders GitHub flavoured markdown. Raw HTML in the source is omitted.
func Markdown(src string) (hero.TrustedHTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("richtext: convert markdown: %w", err)
	}
	return hero.TrustedHTML(strings.TrimSpace(buf.String())), nil
}

// Build converts src according to format, sanitising html input when sanitize is set.
// Markdown output needs no sanitising.
func Build(src string, format Format, sanitize bool) (hero.TrustedHTML, error) {
	switch format {
	case FormatMarkdown:
		return Markdown(src)
	case FormatHTML, "":
		if sanitize {
			return Sanitize(src), nil
		}
		return Trust(src), nil
	default:
		return "", fmt.Errorf("richtext: unknown format %q", format)
	}
}
