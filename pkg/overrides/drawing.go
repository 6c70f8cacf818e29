package overrides

import (
	"strconv"

	"github.com/wiedymi/ass-rs/pkg/assast"
)

// drawingArgCounts is the number of (x, y) coordinate pairs each drawing
// command consumes, per spec.md §4.3: `m x y`, `n x y`, `l x y`,
// `b x1 y1 x2 y2 x3 y3`, `p x y`, `c` (no args). `s` takes a variable
// number of pairs (at least one) and is handled separately below.
var drawingArgCounts = map[byte]int{
	'm': 1,
	'n': 1,
	'l': 1,
	'b': 3,
	'p': 1,
	'c': 0,
}

// Point is one (x, y) drawing-space coordinate.
type Point struct {
	X, Y float64
}

// DrawingCommand is one opcode plus its coordinate operands from a `\p`
// drawing-mode run.
type DrawingCommand struct {
	Op     byte
	Points []Point
	Span   assast.Span
}

// parseDrawing tokenizes [start, end) on whitespace into a command-letter
// / numeric-operand stream, per spec.md §4.3's drawing grammar. Unknown
// command letters are reported and skipped.
func (p *textParser) parseDrawing(start, end int) []DrawingCommand {
	toks := tokenizeDrawing(p.source, start, end)
	var cmds []DrawingCommand

	i := 0
	for i < len(toks) {
		letter, isLetter := soleLowerLetter(toks[i].text)
		if !isLetter {
			i++
			continue
		}
		letterStart := toks[i].start
		letterEnd := toks[i].end
		i++

		wantPairs, known := drawingArgCounts[letter]
		if !known && letter != 's' {
			p.addIssue(assast.SeverityWarning, assast.KindUnknownDrawingCommand, assast.Span{Start: letterStart, End: letterEnd},
				"unrecognized drawing command letter")
			continue
		}

		if letter == 's' {
			var pts []Point
			cmdEnd := letterEnd
			for i+1 < len(toks) {
				x, okX := strconv.ParseFloat(toks[i].text, 64)
				y, okY := strconv.ParseFloat(toks[i+1].text, 64)
				if okX != nil || okY != nil {
					break
				}
				pts = append(pts, Point{X: x, Y: y})
				cmdEnd = toks[i+1].end
				i += 2
			}
			if len(pts) == 0 {
				p.addIssue(assast.SeverityWarning, assast.KindUnknownDrawingCommand, assast.Span{Start: letterStart, End: letterEnd},
					"\\s spline command with no coordinate pairs")
				continue
			}
			cmds = append(cmds, DrawingCommand{Op: letter, Points: pts, Span: assast.Span{Start: letterStart, End: cmdEnd}})
			continue
		}

		if wantPairs == 0 {
			cmds = append(cmds, DrawingCommand{Op: letter, Span: assast.Span{Start: letterStart, End: letterEnd}})
			continue
		}

		// m/n/l/p/b repeat their coordinate group: trailing pairs beyond
		// the first implicitly repeat the same opcode (e.g. "l x1 y1 x2 y2"
		// is two line-to commands), per common ASS producer usage.
		first := true
		for {
			groupStart := i
			pts := make([]Point, 0, wantPairs)
			cmdStart := letterStart
			if !first {
				if groupStart >= len(toks) {
					break
				}
				cmdStart = toks[groupStart].start
			}
			cmdEnd := letterEnd
			ok := true
			for k := 0; k < wantPairs; k++ {
				if i+1 >= len(toks) {
					ok = false
					break
				}
				x, okX := strconv.ParseFloat(toks[i].text, 64)
				y, okY := strconv.ParseFloat(toks[i+1].text, 64)
				if okX != nil || okY != nil {
					ok = false
					break
				}
				pts = append(pts, Point{X: x, Y: y})
				cmdEnd = toks[i+1].end
				i += 2
			}
			if !ok {
				i = groupStart
				break
			}
			cmds = append(cmds, DrawingCommand{Op: letter, Points: pts, Span: assast.Span{Start: cmdStart, End: cmdEnd}})
			first = false
		}
	}

	return cmds
}

type drawToken struct {
	text       string
	start, end int
}

func tokenizeDrawing(source []byte, start, end int) []drawToken {
	var toks []drawToken
	i := start
	for i < end {
		for i < end && isOverrideSpace(source[i]) {
			i++
		}
		if i >= end {
			break
		}
		j := i
		for j < end && !isOverrideSpace(source[j]) {
			j++
		}
		toks = append(toks, drawToken{text: string(source[i:j]), start: i, end: j})
		i = j
	}
	return toks
}

func soleLowerLetter(s string) (byte, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := s[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return c, true
}
