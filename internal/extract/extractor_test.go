package extract

import (
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestExtract_DecodesEntitiesAndDedups(t *testing.T) {
	html := `
	<html><body>
	  <a href="https://example.com/blog/post?a=1&amp;b=2">A look at the new release</a>
	  <a href="https://example.com/blog/post?a=1&amp;b=2">Same link again</a>
	  <a href="https://other.com/article/xyz">Another interesting story here</a>
	</body></html>`

	links := New(testLogger()).Extract(html)
	require.Len(t, links, 2)
	assert.Equal(t, "https://example.com/blog/post?a=1&b=2", links[0].URL)
	assert.Equal(t, "https://other.com/article/xyz", links[1].URL)
}

func TestExtract_DocumentOrder(t *testing.T) {
	var html string
	for i := 0; i < 5; i++ {
		html += fmt.Sprintf(`<a href="https://example.com/post/%d">Article number %d headline</a>`, i, i)
	}

	links := New(testLogger()).Extract(html)
	require.Len(t, links, 5)
	for i, link := range links {
		assert.Equal(t, fmt.Sprintf("https://example.com/post/%d", i), link.URL)
	}
}

func TestExtract_EmptyHTML(t *testing.T) {
	assert.Empty(t, New(testLogger()).Extract(""))
	assert.Empty(t, New(testLogger()).Extract("<html><body><p>no links at all</p></body></html>"))
}

func TestExtract_HeadlineUsedAsDescription(t *testing.T) {
	html := `<a href="https://example.com/blog/x">OpenAI ships a long awaited upgrade</a>`

	links := New(testLogger()).Extract(html)
	require.Len(t, links, 1)
	require.NotNil(t, links[0].CuratorDescription)
	assert.Equal(t, "OpenAI ships a long awaited upgrade", *links[0].CuratorDescription)
}

func TestExtract_ButtonTextRejected(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"known button phrase", "READ MORE"},
		{"too short", "More"},
		{"all caps banner", "BREAKING NEWS TODAY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := fmt.Sprintf(`<a href="https://example.com/x">%s</a>`, tt.text)
			links := New(testLogger()).Extract(html)
			require.Len(t, links, 1)
			assert.Nil(t, links[0].CuratorDescription)
		})
	}
}

func TestExtract_SiblingParagraphContext(t *testing.T) {
	html := `
	<table><tr><td>
	  <div>
	    <span><a href="https://example.com/blog/y">SIGN UP</a></span>
	    <p>The details: researchers trained the model on a corpus twice the size of its predecessor and report large gains.</p>
	  </div>
	</td></tr></table>`

	links := New(testLogger()).Extract(html)
	require.Len(t, links, 1)
	require.NotNil(t, links[0].CuratorDescription)
	assert.Equal(t,
		"researchers trained the model on a corpus twice the size of its predecessor and report large gains.",
		*links[0].CuratorDescription)
}

func TestExtract_HeadlineCombinedWithContext(t *testing.T) {
	html := `
	<div>
	  <span><a href="https://example.com/blog/z">Anthropic releases new model</a></span>
	  <p>The Rundown: the release focuses on long-context reasoning and is available to all paying customers starting today.</p>
	</div>`

	links := New(testLogger()).Extract(html)
	require.Len(t, links, 1)
	require.NotNil(t, links[0].CuratorDescription)
	assert.Equal(t,
		"Anthropic releases new model - the release focuses on long-context reasoning and is available to all paying customers starting today.",
		*links[0].CuratorDescription)
}

func TestExtract_ParentTextFallback(t *testing.T) {
	html := `<p>A deep dive into how retrieval pipelines fail in production <a href="https://example.com/blog/w">here</a></p>`

	links := New(testLogger()).Extract(html)
	require.Len(t, links, 1)
	require.NotNil(t, links[0].CuratorDescription)
	assert.Equal(t, "A deep dive into how retrieval pipelines fail in production", *links[0].CuratorDescription)
}

func TestExtract_DescriptionCapped(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "very long sentence "
	}
	html := fmt.Sprintf(`<div><span><a href="https://example.com/a">A headline of reasonable length</a></span><p>%s</p></div>`, long)

	links := New(testLogger()).Extract(html)
	require.Len(t, links, 1)
	require.NotNil(t, links[0].CuratorDescription)
	assert.LessOrEqual(t, len([]rune(*links[0].CuratorDescription)), 300)
}
