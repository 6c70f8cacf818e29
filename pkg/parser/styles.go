package parser

import (
	"fmt"
	"strings"

	"github.com/wiedymi/ass-rs/pkg/assast"
)

// canonicalStyleField maps a lowercased format field name to its canonical
// spelling, and its presence in the map is what makes a field "recognized"
// for spec.md §3's Style record.
var canonicalStyleField = map[string]string{
	"name":            "Name",
	"fontname":        "Fontname",
	"fontsize":        "Fontsize",
	"primarycolour":   "PrimaryColour",
	"secondarycolour": "SecondaryColour",
	"outlinecolour":   "OutlineColour",
	"backcolour":      "BackColour",
	"bold":            "Bold",
	"italic":          "Italic",
	"underline":       "Underline",
	"strikeout":       "StrikeOut",
	"scalex":          "ScaleX",
	"scaley":          "ScaleY",
	"spacing":         "Spacing",
	"angle":           "Angle",
	"borderstyle":     "BorderStyle",
	"outline":         "Outline",
	"shadow":          "Shadow",
	"alignment":       "Alignment",
	"marginl":         "MarginL",
	"marginr":         "MarginR",
	"marginv":         "MarginV",
	"margint":         "MarginT",
	"marginb":         "MarginB",
	"encoding":        "Encoding",
	"relativeto":      "RelativeTo",
}

func (p *parser) handleStyles(g *group) {
	sec, fresh := p.getOrCreateSingleton(assast.SectionStyles, g.header)
	if !fresh {
		p.addIssue(assast.SeverityWarning, assast.KindDuplicateSection, assast.Span{Start: g.header.StartOffset, End: g.header.EndOffset},
			"duplicate styles section; records merged into the first occurrence")
	}
	defer extendSpan(sec, g.header, g.tokens)

	for _, tok := range g.tokens {
		switch tok.Kind {
		case assast.TokFormatLine:
			if sec.StylesSec.Format != nil {
				p.addIssue(assast.SeverityWarning, assast.KindDuplicateFormat, assast.Span{Start: tok.StartOffset, End: tok.EndOffset},
					"duplicate Format: line; later declaration replaces the earlier one")
			}
			sec.StylesSec.Format = splitFormatFields(tok.Fields)
			sec.StylesSec.FormatSpan = assast.Span{Start: tok.StartOffset, End: tok.EndOffset}
		case assast.TokRecordLine:
			if !strings.EqualFold(tok.Keyword, "style") {
				continue
			}
			p.handleStyleRecord(sec.StylesSec, tok)
		default:
			// Blank/comment/raw lines inside a Styles section carry no
			// information the AST needs to retain.
		}
	}
}

func (p *parser) handleStyleRecord(styles *assast.StylesSection, tok assast.Token) {
	format := styles.Format
	if format == nil {
		format = assast.DefaultStyleFormat(p.version)
		p.addIssue(assast.SeverityWarning, assast.KindMissingFormat, assast.Span{Start: tok.StartOffset, End: tok.EndOffset},
			"Style record precedes any Format: line; using the specification-default field order")
	}

	fieldsStart := recordFieldsStart(p.source, tok)
	spans, vals, ok := splitFieldSpans(p.source, fieldsStart, tok.EndOffset, len(format))
	if !ok {
		p.addIssue(assast.SeverityError, assast.KindMalformedStyle, assast.Span{Start: tok.StartOffset, End: tok.EndOffset},
			fmt.Sprintf("Style record has fewer fields than the declared format (%d)", len(format)))
		return
	}

	style := &assast.Style{
		Span:        assast.Span{Start: tok.StartOffset, End: tok.EndOffset},
		Fields:      make(map[string]string),
		FieldSpans:  make(map[string]assast.Span),
		ExtraFields: make(map[string]string),
	}

	for i, name := range format {
		lname := lowerASCII(name)
		canon, recognized := canonicalStyleField[lname]
		if !recognized {
			style.ExtraFields[name] = vals[i]
			p.addIssue(assast.SeverityWarning, assast.KindUnknownStyleField, spans[i],
				fmt.Sprintf("unrecognized style field %q", name))
			continue
		}
		style.Fields[canon] = vals[i]
		style.FieldSpans[canon] = spans[i]
		switch lname {
		case "marginv":
			style.HasMarginV = true
		case "margint":
			style.HasMarginT = true
		case "marginb":
			style.HasMarginB = true
		case "relativeto":
			style.HasRelativeTo = true
		}
	}

	if strings.Contains(vals[len(vals)-1], ",") {
		p.addIssue(assast.SeverityInfo, assast.KindTrailingGarbage, spans[len(spans)-1],
			"trailing garbage after the last style field appended to it verbatim")
	}

	styles.Styles = append(styles.Styles, style)
}
