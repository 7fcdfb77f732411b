package tokens_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdbuild/pkg/tokens"
)

func TestHeading(t *testing.T) {
	t.Parallel()

	for level := tokens.MinHeadingLevel; level <= tokens.MaxHeadingLevel; level++ {
		got, err := tokens.Heading("Hello, world!", level)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("#", level)+" Hello, world!", got)
	}

	for _, level := range []int{-1, 0, 7} {
		got, err := tokens.Heading("Hello", level)
		require.ErrorIs(t, err, tokens.ErrInvalidArgument, "level %d", level)
		assert.Empty(t, got)
	}
}

func TestHeadingShortcuts(t *testing.T) {
	t.Parallel()

	shortcuts := []func(string) string{tokens.H1, tokens.H2, tokens.H3, tokens.H4, tokens.H5, tokens.H6}
	for i, fn := range shortcuts {
		want, err := tokens.Heading("x", i+1)
		require.NoError(t, err)
		assert.Equal(t, want, fn("x"))
	}

	got, err := tokens.H("alias", 2)
	require.NoError(t, err)
	assert.Equal(t, "## alias", got)
}

func TestSimpleTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"paragraph", tokens.Paragraph("Hello, world!"), "Hello, world!"},
		{"paragraph alias", tokens.P("x"), "x"},
		{"quote", tokens.Quote("Hello, world!"), "> Hello, world!"},
		{"horizontal rule", tokens.HorizontalRule(), "---"},
		{"horizontal rule alias", tokens.HR(), "---"},
		{"link without text", tokens.Link("https://example.com", ""), "[https://example.com](https://example.com)"},
		{"link with text", tokens.Link("https://example.com", "Example"), "[Example](https://example.com)"},
		{"image bare", tokens.Image("https://example.com/image.png", "", ""), "![](https://example.com/image.png)"},
		{
			"image with alt and mouseover",
			tokens.Image("https://example.com/image.png", "alt text", "mouseover text"),
			`![alt text](https://example.com/image.png "mouseover text")`,
		},
		{"image alias", tokens.Img("a.png", "alt", ""), "![alt](a.png)"},
		{"code block with language", tokens.CodeBlock("print('Hello, world!')", "python"), "```python\nprint('Hello, world!')\n```"},
		{"code block without language", tokens.CodeBlock("x", ""), "```\nx\n```"},
		{"unordered list", tokens.UnorderedList("Hello", "World"), "- Hello\n- World"},
		{"unordered list alias", tokens.UL("a"), "- a"},
		{"empty unordered list", tokens.UnorderedList(), ""},
		{"ordered list", tokens.OrderedList("Hello", "World"), "1. Hello\n1. World"},
		{"ordered list alias", tokens.OL("a", "b"), "1. a\n1. b"},
		{"empty ordered list", tokens.OrderedList(), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestInlineWrappers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "**Hello, world!**", tokens.Bold.Wrap("Hello, world!"))
	assert.Equal(t, "*Hello, world!*", tokens.Italic.Wrap("Hello, world!"))
	assert.Equal(t, "`Hello, world!`", tokens.Code.Wrap("Hello, world!"))
	assert.Equal(t, "~~Hello, world!~~", tokens.Strike.Wrap("Hello, world!"))
}
