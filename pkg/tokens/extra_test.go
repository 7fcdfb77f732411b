package tokens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdbuild/pkg/config"
	"github.com/yaklabco/gomdbuild/pkg/tokens"
)

func TestCodeBlockAuto(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "```go\npackage main\n```", tokens.CodeBlockAuto("package main"))
	assert.Equal(t, "```text\nplain words\n```", tokens.CodeBlockAuto("plain words"))
	assert.Equal(t, "```python\nx = 1\n```", tokens.CodeBlockFile("script.py", "x = 1"))
}

func TestFrontMatter(t *testing.T) {
	t.Parallel()

	meta := struct {
		Title string   `yaml:"title"`
		Tags  []string `yaml:"tags"`
	}{Title: "Notes", Tags: []string{"go", "md"}}

	got, err := tokens.FrontMatter(meta)
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: Notes\ntags:\n  - go\n  - md\n---", got)
}

func TestReflow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "aaa bbb\nccc", tokens.Reflow("aaa bbb ccc", 7))
	assert.Equal(t, "aaa bbb ccc", tokens.Reflow("aaa bbb ccc", 0))
	assert.Equal(t, "aaa bbb ccc", tokens.Reflow("aaa bbb ccc", -3))
}

func TestRenderer(t *testing.T) {
	t.Parallel()

	t.Run("defaults leave text alone", func(t *testing.T) {
		t.Parallel()

		r := tokens.NewRenderer(nil)
		assert.Equal(t, "aaa bbb ccc", r.Paragraph("aaa bbb ccc"))
		assert.Equal(t, "```\npackage main\n```", r.CodeBlock("package main", ""))
	})

	t.Run("configured options apply", func(t *testing.T) {
		t.Parallel()

		opts := config.Default()
		opts.WrapWidth = 7
		opts.DetectLanguage = true
		r := tokens.NewRenderer(opts)

		assert.Equal(t, "aaa bbb\nccc", r.Paragraph("aaa bbb ccc"))
		assert.Equal(t, "```go\npackage main\n```", r.CodeBlock("package main", ""))
		assert.Equal(t, "```sh\npackage main\n```", r.CodeBlock("package main", "sh"))
	})

	t.Run("quote keeps wrapped lines quoted", func(t *testing.T) {
		t.Parallel()

		opts := config.Default()
		opts.WrapWidth = 9
		r := tokens.NewRenderer(opts)

		assert.Equal(t, "> aaa bbb\n> ccc", r.Quote("aaa bbb ccc"))
	})

	t.Run("options are copied", func(t *testing.T) {
		t.Parallel()

		opts := config.Default()
		r := tokens.NewRenderer(opts)
		opts.WrapWidth = 3

		assert.Equal(t, "aaa bbb", r.Paragraph("aaa bbb"))
	})
}
