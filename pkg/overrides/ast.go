// Package overrides implements spec.md §4.3's on-demand parse of an
// event's text field into literal runs, override blocks, and drawing-mode
// runs. It is deliberately separate from pkg/parser: the override grammar
// is only ever evaluated when something (a renderer, the analysis engine)
// actually asks for it, matching the data model's "text: parsed lazily on
// demand" note in spec.md §3.
package overrides

import "github.com/wiedymi/ass-rs/pkg/assast"

// RunKind distinguishes the three shapes a parsed text run can take.
type RunKind uint8

const (
	RunLiteral RunKind = iota
	RunBlock
	RunDrawing
)

func (k RunKind) String() string {
	switch k {
	case RunLiteral:
		return "Literal"
	case RunBlock:
		return "Block"
	case RunDrawing:
		return "Drawing"
	default:
		return "Unknown"
	}
}

// Run is one segment of a parsed event text: either plain rendered text,
// an override block (`{...}`), or a run of drawing commands emitted while
// `\p` drawing mode is active.
type Run struct {
	Kind    RunKind
	Span    assast.Span
	Block   *Block
	Drawing []DrawingCommand
}

// Block is the parsed contents of one `{...}` override block.
type Block struct {
	Span assast.Span
	Tags []Tag
}

// Tag is one `\name(args)` or `\nameargs` override tag. Args holds the
// positional atoms between parentheses (or the single bare atom for tags
// with no parens); Nested holds the inner tag sequence that the `\t(...)`
// transform tag accepts as its final argument, per spec.md §4.3's grammar
// note that an override sequence is "only legal inside \t(...)".
type Tag struct {
	Name   string
	Args   []string
	Nested []Tag
	Known  bool
	Span   assast.Span
}
