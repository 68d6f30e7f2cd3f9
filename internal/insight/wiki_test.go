package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lifeboard/internal/storage"
)

func note(id, title, content string) storage.Note {
	return storage.Note{ID: id, Title: title, Content: content}
}

func TestWikiGraphResolvesCaseInsensitive(t *testing.T) {
	g := BuildWikiGraph([]storage.Note{
		note("a", "Reading List", "See [[morning routine]] for details."),
		note("b", "Morning Routine", "Start with coffee."),
	})

	assert.Equal(t, []WikiEdge{{FromID: "a", ToID: "b"}}, g.Edges)
}

func TestWikiGraphDropsUnresolvedLinks(t *testing.T) {
	g := BuildWikiGraph([]storage.Note{
		note("a", "Ideas", "Linking [[Nothing Here]] and [[Also Missing]]."),
	})

	assert.Empty(t, g.Edges)
}

func TestWikiGraphIgnoresCode(t *testing.T) {
	content := "Real link: [[Target]].\n\n" +
		"```\n[[Target]] inside a fence\n```\n\n" +
		"And `[[Target]]` in a span.\n"
	g := BuildWikiGraph([]storage.Note{
		note("a", "Source", content),
		note("b", "Target", ""),
	})

	// Only the prose reference counts.
	assert.Len(t, g.Edges, 1)
	assert.Equal(t, WikiEdge{FromID: "a", ToID: "b"}, g.Edges[0])
}

func TestWikiGraphSelfAndMultiLinks(t *testing.T) {
	g := BuildWikiGraph([]storage.Note{
		note("a", "Hub", "[[Spoke]] then [[Spoke]] again, plus [[Hub]]."),
		note("b", "Spoke", "Back to [[Hub]]."),
	})

	assert.Len(t, g.Edges, 4)
}

func TestBacklinks(t *testing.T) {
	g := BuildWikiGraph([]storage.Note{
		note("a", "Hub", ""),
		note("b", "One", "[[Hub]] and [[Hub]] again."),
		note("c", "Two", "[[Hub]]."),
		note("d", "Three", "no links"),
	})

	// Duplicate references from the same note collapse to one backlink.
	assert.Equal(t, []string{"b", "c"}, Backlinks(g, "a"))
	assert.Empty(t, Backlinks(g, "d"))
}
