// Package parser consumes a tokenizer.Tokenize stream and builds an
// assast.Script, dispatching each section to its handler and collecting
// non-fatal issues along the way, per spec.md §4.2. The only two errors it
// can return are the tokenizer's fatal EncodingError/SizeLimitExceeded —
// everything else becomes an assast.ParseIssue and the parse still
// succeeds with a best-effort Script.
package parser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/config"
	"github.com/wiedymi/ass-rs/pkg/plugin"
	"github.com/wiedymi/ass-rs/pkg/tokenizer"
)

// Parse tokenizes and parses source using plugin.DefaultRegistry for
// unknown-section dispatch. Most callers want this; use ParseWithRegistry
// to supply an isolated registry (tests, sandboxed embedders).
func Parse(source []byte, cfg config.ParserConfig) (*assast.Script, error) {
	return ParseWithRegistry(source, cfg, plugin.DefaultRegistry)
}

// ParseWithRegistry is Parse with an explicit plugin registry.
func ParseWithRegistry(source []byte, cfg config.ParserConfig, registry *plugin.Registry) (*assast.Script, error) {
	return ParseWithOptions(source, cfg, registry, Options{})
}

// ParseWithOptions is ParseWithRegistry with tracing control; see Options.
func ParseWithOptions(source []byte, cfg config.ParserConfig, registry *plugin.Registry, opts Options) (*assast.Script, error) {
	resolved := cfg.Resolved()
	logger := opts.logger()

	tokens, err := tokenizer.Tokenize(source, resolved.MaxInputSize)
	if err != nil {
		return nil, err
	}

	p := &parser{
		source:   source,
		tokens:   tokens,
		cfg:      resolved,
		registry: registry,
		custom:   make(map[string]*assast.Section),
		logger:   logger,
	}
	p.detectVersion()
	p.run()

	script := &assast.Script{
		Source:  source,
		Version: p.version,
		Issues:  p.issues,
	}
	script.Sections = p.sections
	checkStyleReferences(script)

	return script, nil
}

// group is one section header plus the tokens belonging to its body, up to
// (but excluding) the next TokSectionHeader or end of stream.
type group struct {
	header assast.Token
	tokens []assast.Token
}

type parser struct {
	source []byte
	tokens []assast.Token
	cfg    config.ParserConfig

	registry *plugin.Registry
	logger   *log.Logger

	version assast.Version
	issues  assast.Issues

	sections []*assast.Section

	scriptInfoSec *assast.Section
	stylesSec     *assast.Section
	eventsSec     *assast.Section
	fontsSec      *assast.Section
	graphicsSec   *assast.Section
	custom        map[string]*assast.Section
}

// detectVersion implements spec.md §4.2 step 1: scan for the first
// ScriptType: key and the first recognizable styles-section header name,
// preferring the former and flagging a conflict between the two.
func (p *parser) detectVersion() {
	var headerHint, stylesHint assast.Version

	for _, tok := range p.tokens {
		if headerHint == assast.VersionUnknown && tok.Kind == assast.TokKeyValue && strings.EqualFold(tok.Key, "ScriptType") {
			headerHint = assast.ParseVersionHint(tok.Value)
		}
		if stylesHint == assast.VersionUnknown && tok.Kind == assast.TokSectionHeader {
			if hint := assast.ParseVersionHint(tok.Keyword); hint != assast.VersionUnknown {
				stylesHint = hint
			}
		}
	}

	switch {
	case headerHint != assast.VersionUnknown:
		p.version = headerHint
		if stylesHint != assast.VersionUnknown && stylesHint != headerHint {
			p.addIssue(assast.SeverityWarning, assast.KindVersionMismatch, assast.Span{},
				fmt.Sprintf("ScriptType implies %s but the styles section header implies %s", headerHint, stylesHint))
		}
	case stylesHint != assast.VersionUnknown:
		p.version = stylesHint
	default:
		p.version = p.cfg.DefaultVersion
	}
	p.logger.Debug("detected version", "version", p.version, "header_hint", headerHint, "styles_hint", stylesHint)
}

// run groups tokens by section header and dispatches each group to its
// handler. Tokens preceding the first section header are discarded; no
// well-formed ASS script has meaningful content there.
func (p *parser) run() {
	var cur *group
	for _, tok := range p.tokens {
		if tok.Kind == assast.TokSectionHeader {
			p.dispatch(cur)
			cur = &group{header: tok}
			continue
		}
		if cur == nil {
			continue
		}
		cur.tokens = append(cur.tokens, tok)
	}
	p.dispatch(cur)
}

func (p *parser) dispatch(g *group) {
	if g == nil {
		return
	}

	p.logger.Debug("dispatching section", "header", g.header.Keyword, "tokens", len(g.tokens))

	switch classifySectionName(g.header.Keyword) {
	case sectionClassScriptInfo:
		p.handleScriptInfo(g)
	case sectionClassStyles:
		p.handleStyles(g)
	case sectionClassEvents:
		p.handleEvents(g)
	case sectionClassFonts:
		p.handleEmbedded(g, assast.SectionFonts)
	case sectionClassGraphics:
		p.handleEmbedded(g, assast.SectionGraphics)
	default:
		p.handleCustom(g)
	}
}

type sectionClass uint8

const (
	sectionClassScriptInfo sectionClass = iota
	sectionClassStyles
	sectionClassEvents
	sectionClassFonts
	sectionClassGraphics
	sectionClassCustom
)

func classifySectionName(name string) sectionClass {
	switch {
	case strings.EqualFold(name, "Script Info"):
		return sectionClassScriptInfo
	case strings.EqualFold(name, "Events"):
		return sectionClassEvents
	case strings.EqualFold(name, "Fonts"):
		return sectionClassFonts
	case strings.EqualFold(name, "Graphics"):
		return sectionClassGraphics
	case assast.ParseVersionHint(name) != assast.VersionUnknown:
		return sectionClassStyles
	default:
		return sectionClassCustom
	}
}

// addIssue is a convenience wrapper for appending to p.issues.
func (p *parser) addIssue(sev assast.Severity, kind assast.IssueKind, span assast.Span, message string) {
	p.issues = p.issues.Add(sev, kind, span, message)
}

// getOrCreateSingleton returns the existing section for one of the five
// well-known singleton kinds, or creates and registers a new one. Returns
// whether this was a fresh creation (false means the header is a
// duplicate, so callers should emit DuplicateSection).
func (p *parser) getOrCreateSingleton(kind assast.SectionKind, header assast.Token) (*assast.Section, bool) {
	slot := p.singletonSlot(kind)
	if *slot != nil {
		return *slot, false
	}
	sec := &assast.Section{
		Kind: kind,
		Name: header.Keyword,
		Span: assast.Span{Start: header.StartOffset, End: header.EndOffset},
	}
	switch kind {
	case assast.SectionScriptInfo:
		sec.Info = &assast.ScriptInfoSection{}
	case assast.SectionStyles:
		sec.StylesSec = &assast.StylesSection{}
	case assast.SectionEvents:
		sec.EventsSec = &assast.EventsSection{}
	case assast.SectionFonts, assast.SectionGraphics:
		sec.EmbeddedSec = &assast.EmbeddedSection{}
	}
	*slot = sec
	p.sections = append(p.sections, sec)
	return sec, true
}

func (p *parser) singletonSlot(kind assast.SectionKind) **assast.Section {
	switch kind {
	case assast.SectionScriptInfo:
		return &p.scriptInfoSec
	case assast.SectionStyles:
		return &p.stylesSec
	case assast.SectionEvents:
		return &p.eventsSec
	case assast.SectionFonts:
		return &p.fontsSec
	case assast.SectionGraphics:
		return &p.graphicsSec
	default:
		panic("parser: singletonSlot called with a non-singleton kind")
	}
}

// extendSpan grows sec.Span.End to cover the last token in tokens, if any.
func extendSpan(sec *assast.Section, header assast.Token, tokens []assast.Token) {
	end := header.EndOffset
	if len(tokens) > 0 {
		end = tokens[len(tokens)-1].EndOffset
	}
	if end > sec.Span.End {
		sec.Span.End = end
	}
}

// checkStyleReferences implements spec.md §4.2 step 3's cross-section
// coherence pass: an event naming a style no declared Style record
// defines is surfaced as a warning, never an error — the renderer falls
// back to Default. An undeclared "Default" is not reported, since it is
// that fallback.
func checkStyleReferences(script *assast.Script) {
	events := script.Events()
	if events == nil {
		return
	}
	for _, ev := range events.Events {
		if ev.Style == "" || ev.Style == "Default" {
			continue
		}
		if script.StyleByName(ev.Style) == nil {
			script.Issues = script.Issues.Add(assast.SeverityWarning, assast.KindUnknownStyleReference, ev.Span,
				fmt.Sprintf("event references undefined style %q", ev.Style))
		}
	}
}
