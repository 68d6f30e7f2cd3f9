package insight

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"lifeboard/internal/storage"
)

// WikiEdge is a resolved [[Wiki Link]] from one note to another.
type WikiEdge struct {
	FromID string
	ToID   string
}

// WikiGraph is the note link graph: nodes are notes, edges are resolved
// references.
type WikiGraph struct {
	Notes []storage.Note
	Edges []WikiEdge
}

var wikiLinkPattern = regexp.MustCompile(`\[\[([^\[\]]+)\]\]`)

// BuildWikiGraph resolves [[Title]] references by exact case-insensitive
// title match. Unresolved references produce no edge. References inside
// code blocks and code spans do not count, which is why the markdown is
// walked as an AST rather than scanned raw.
func BuildWikiGraph(notes []storage.Note) WikiGraph {
	byTitle := map[string]string{}
	for _, n := range notes {
		byTitle[strings.ToLower(n.Title)] = n.ID
	}

	g := WikiGraph{Notes: notes}
	for _, n := range notes {
		for _, title := range extractWikiLinks(n.Content) {
			toID, ok := byTitle[strings.ToLower(title)]
			if !ok {
				continue
			}
			g.Edges = append(g.Edges, WikiEdge{FromID: n.ID, ToID: toID})
		}
	}
	return g
}

// extractWikiLinks returns the referenced titles in document order.
func extractWikiLinks(content string) []string {
	src := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var prose strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			// Separate blocks so links can't span block boundaries.
			if _, isBlock := n.(*ast.Paragraph); isBlock {
				prose.WriteByte('\n')
			}
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock, ast.KindCodeSpan, ast.KindHTMLBlock, ast.KindRawHTML:
			return ast.WalkSkipChildren, nil
		}
		if t, ok := n.(*ast.Text); ok {
			prose.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})

	var out []string
	for _, m := range wikiLinkPattern.FindAllStringSubmatch(prose.String(), -1) {
		title := strings.TrimSpace(m[1])
		if title != "" {
			out = append(out, title)
		}
	}
	return out
}

// Backlinks lists the notes that reference the given note.
func Backlinks(g WikiGraph, noteID string) []string {
	var out []string
	seen := map[string]bool{}
	for _, e := range g.Edges {
		if e.ToID == noteID && !seen[e.FromID] {
			out = append(out, e.FromID)
			seen[e.FromID] = true
		}
	}
	return out
}
