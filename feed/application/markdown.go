package application

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const maxSnippetLength = 200

// RenderedContent is a post or comment body ready for display.
type RenderedContent struct {
	HTML    string
	Snippet string
}

// MarkdownRenderer converts user-written markdown to HTML.
type MarkdownRenderer interface {
	Render(markdown string) (*RenderedContent, error)
}

type MarkdownRendererImpl struct {
	renderer goldmark.Markdown
}

// NewMarkdownRenderer builds a renderer for user content. Raw HTML is never passed through.
func NewMarkdownRenderer() MarkdownRenderer {
	renderer := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(
				util.Prioritized(&externalLinkTransformer{}, 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	return &MarkdownRendererImpl{
		renderer: renderer,
	}
}

func (r *MarkdownRendererImpl) Render(markdown string) (*RenderedContent, error) {
	var buf bytes.Buffer
	if err := r.renderer.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}

	return &RenderedContent{
		HTML:    buf.String(),
		Snippet: extractSnippet(markdown),
	}, nil
}

// externalLinkTransformer marks every absolute link so it opens outside the feed.
type externalLinkTransformer struct{}

func (t *externalLinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		var dest string
		switch link := n.(type) {
		case *ast.Link:
			dest = string(link.Destination)
		case *ast.AutoLink:
			dest = string(link.URL(reader.Source()))
		default:
			return ast.WalkContinue, nil
		}

		if isExternalLink(dest) {
			n.SetAttributeString("rel", []byte("nofollow noopener"))
			n.SetAttributeString("target", []byte("_blank"))
		}
		return ast.WalkContinue, nil
	})
}

func isExternalLink(dest string) bool {
	return strings.HasPrefix(dest, "http://") ||
		strings.HasPrefix(dest, "https://") ||
		strings.HasPrefix(dest, "www.") ||
		strings.HasPrefix(dest, "//")
}

// extractSnippet returns the first paragraph of text, cut at a word boundary.
func extractSnippet(markdown string) string {
	var paragraphLines []string

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			if len(paragraphLines) > 0 {
				break
			}
			continue
		}

		// Headings, fences, rules, lists and tables are not prose
		if strings.HasPrefix(trimmed, "#") ||
			strings.HasPrefix(trimmed, "```") ||
			strings.HasPrefix(trimmed, "---") ||
			strings.HasPrefix(trimmed, "***") ||
			strings.HasPrefix(trimmed, "- ") ||
			strings.HasPrefix(trimmed, "* ") ||
			strings.HasPrefix(trimmed, "+ ") ||
			strings.HasPrefix(trimmed, "|") {
			if len(paragraphLines) > 0 {
				break
			}
			continue
		}

		paragraphLines = append(paragraphLines, trimmed)
	}

	if len(paragraphLines) == 0 {
		return ""
	}

	snippet := strings.Join(paragraphLines, " ")
	if len(snippet) <= maxSnippetLength {
		return snippet
	}

	cut := maxSnippetLength
	for cut > 0 && !utf8.RuneStart(snippet[cut]) {
		cut--
	}
	snippet = snippet[:cut]
	if lastSpace := strings.LastIndexAny(snippet, " \t"); lastSpace > 0 {
		snippet = snippet[:lastSpace]
	}
	return snippet + "..."
}
