// Package mdcheck inspects built Markdown with goldmark and reports its
// block structure.
package mdcheck

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gomdbuild/internal/logging"
	"github.com/yaklabco/gomdbuild/pkg/config"
)

// BlockKind names a top-level block.
type BlockKind string

// Block kinds reported in an Outline.
const (
	BlockHeading       BlockKind = "heading"
	BlockParagraph     BlockKind = "paragraph"
	BlockBlockquote    BlockKind = "blockquote"
	BlockList          BlockKind = "list"
	BlockCodeBlock     BlockKind = "code_block"
	BlockThematicBreak BlockKind = "thematic_break"
	BlockTable         BlockKind = "table"
	BlockHTML          BlockKind = "html"
	BlockOther         BlockKind = "other"
)

// Block is one top-level block of a document.
type Block struct {
	Kind BlockKind

	// Level is the heading level for headings, zero otherwise.
	Level int

	// Ordered reports whether a list is ordered.
	Ordered bool

	// Items is the item count for lists.
	Items int

	// Columns is the column count for tables.
	Columns int

	// Rows is the body row count for tables.
	Rows int

	// Language is the info string language of fenced code blocks.
	Language string
}

// Outline is the block structure of a document.
type Outline struct {
	Flavor config.Flavor
	Blocks []Block

	// Inline counters over the whole document.
	Links          int
	Images         int
	Emphasis       int
	Strong         int
	CodeSpans      int
	Strikethroughs int
}

// Count returns the number of top-level blocks of the given kind.
func (o *Outline) Count(kind BlockKind) int {
	n := 0
	for _, b := range o.Blocks {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

// Kinds returns the kinds of the top-level blocks in document order.
func (o *Outline) Kinds() []BlockKind {
	kinds := make([]BlockKind, len(o.Blocks))
	for i, b := range o.Blocks {
		kinds[i] = b.Kind
	}
	return kinds
}

// Inspect parses src and returns its outline.
// Unknown flavors fall back to CommonMark.
func Inspect(ctx context.Context, src []byte, flavor config.Flavor) (*Outline, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("inspect cancelled: %w", err)
	}

	flavor = flavorOrDefault(flavor)
	md := newGoldmarkInstance(flavor)

	root := md.Parser().Parse(text.NewReader(src), parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("inspect cancelled: %w", err)
	}

	outline := &Outline{Flavor: flavor}
	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		outline.Blocks = append(outline.Blocks, mapBlock(child, src))
	}

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		countInline(outline, n)
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk document: %w", err)
	}

	logging.FromContext(ctx).Debug("inspected markdown",
		logging.FieldFlavor, flavor,
		logging.FieldBlocks, len(outline.Blocks),
		logging.FieldHeadings, outline.Count(BlockHeading),
		logging.FieldTables, outline.Count(BlockTable),
	)

	return outline, nil
}

func mapBlock(n ast.Node, src []byte) Block {
	switch node := n.(type) {
	case *ast.Heading:
		return Block{Kind: BlockHeading, Level: node.Level}
	case *ast.Paragraph:
		return Block{Kind: BlockParagraph}
	case *ast.Blockquote:
		return Block{Kind: BlockBlockquote}
	case *ast.List:
		return Block{Kind: BlockList, Ordered: node.IsOrdered(), Items: node.ChildCount()}
	case *ast.FencedCodeBlock:
		return Block{Kind: BlockCodeBlock, Language: string(node.Language(src))}
	case *ast.CodeBlock:
		return Block{Kind: BlockCodeBlock}
	case *ast.ThematicBreak:
		return Block{Kind: BlockThematicBreak}
	case *ast.HTMLBlock:
		return Block{Kind: BlockHTML}
	case *east.Table:
		return mapTable(node)
	default:
		return Block{Kind: BlockOther}
	}
}

func mapTable(table *east.Table) Block {
	block := Block{Kind: BlockTable, Columns: len(table.Alignments)}
	for child := table.FirstChild(); child != nil; child = child.NextSibling() {
		if _, ok := child.(*east.TableRow); ok {
			block.Rows++
		}
	}
	return block
}

func countInline(o *Outline, n ast.Node) {
	switch node := n.(type) {
	case *ast.Link:
		o.Links++
	case *ast.Image:
		o.Images++
	case *ast.Emphasis:
		if node.Level >= 2 {
			o.Strong++
		} else {
			o.Emphasis++
		}
	case *ast.CodeSpan:
		o.CodeSpans++
	case *east.Strikethrough:
		o.Strikethroughs++
	}
}

func flavorOrDefault(flavor config.Flavor) config.Flavor {
	if flavor.IsValid() {
		return flavor
	}
	return config.FlavorCommonMark
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor config.Flavor) goldmark.Markdown {
	var opts []goldmark.Option

	if flavor == config.FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}

	return goldmark.New(opts...)
}
