package analysis

import (
	"github.com/charmbracelet/log"

	"github.com/wiedymi/ass-rs/internal/tracing"
	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/config"
	"github.com/wiedymi/ass-rs/pkg/plugin"
)

// Options controls the optional, ambient behavior of Analyze and Lint that
// isn't part of their result: tracing and per-event caching. The zero
// value disables both.
type Options struct {
	// Logger receives Debug-level lines for dialogue analysis and rule
	// execution. Nil falls back to tracing.Default().
	Logger *log.Logger

	// Cache, if non-nil, memoizes per-event DialogueInfo across Analyze
	// calls keyed by the event's SpanHash; see Cache's doc comment.
	Cache *Cache
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return tracing.Default()
}

// Analysis is the pure, immutable result of analyzing a Script, per
// spec.md §4.6: resolved styles, per-event dialogue info, and the timing
// overlap graph. It holds a borrow into the Script it was computed from
// and is invalidated (recompute, don't mutate) whenever the source
// changes.
type Analysis struct {
	Script *assast.Script

	// Styles maps declared style name to its ResolvedStyle. Always
	// contains a "Default" entry, synthesized if the script has none.
	Styles map[string]ResolvedStyle

	// Dialogues holds one DialogueInfo per event, aligned in order with
	// Script.Events().Events.
	Dialogues []DialogueInfo

	Overlaps []Overlap

	// Issues collects any non-fatal problems surfaced while computing
	// dialogue info (e.g. override-parse issues re-surfaced here so a
	// caller that only calls Analyze still sees them).
	Issues assast.Issues
}

// Analyze computes the full spec.md §4.6 analysis for script. registry
// resolves override tags during dialogue analysis (plugin.DefaultRegistry
// if nil); cfg bounds override nesting depth (config.NewParserConfig()
// defaults if nil).
func Analyze(script *assast.Script, registry *plugin.Registry, cfg *config.ParserConfig) *Analysis {
	return AnalyzeWithOptions(script, registry, cfg, Options{})
}

// AnalyzeWithOptions is Analyze with tracing and caching control; see Options.
func AnalyzeWithOptions(script *assast.Script, registry *plugin.Registry, cfg *config.ParserConfig, opts Options) *Analysis {
	if registry == nil {
		registry = plugin.DefaultRegistry
	}
	resolved := cfg.Resolved()
	logger := opts.logger()

	a := &Analysis{
		Script: script,
		Styles: make(map[string]ResolvedStyle),
	}

	info := script.ScriptInfo()
	stylesSec := script.Styles()

	a.Styles["Default"] = ResolveStyle(info, nil)
	if stylesSec != nil {
		for _, st := range stylesSec.Styles {
			a.Styles[st.Name()] = ResolveStyle(info, st)
		}
	}

	eventsSec := script.Events()
	if eventsSec != nil {
		var allEvents []*assast.Event
		cacheHits := 0
		for _, ev := range eventsSec.Events {
			allEvents = append(allEvents, ev)
			if _, ok := a.Styles[ev.Style]; !ok && ev.Style != "" {
				// Referenced-but-undeclared styles still get a synthesized
				// fallback so RuleContext.Styles[ev.Style] never misses;
				// UnknownStyleReference was already recorded at parse time.
				a.Styles[ev.Style] = ResolveStyle(info, nil)
			}

			var di DialogueInfo
			var issues assast.Issues
			if opts.Cache != nil {
				hash := HashSpan(script.Source, ev.Span)
				if cached, cachedIssues, ok := opts.Cache.get(hash); ok {
					di, issues = cached, cachedIssues
					cacheHits++
				} else {
					di, issues = ComputeDialogueInfo(script.Source, ev, registry, resolved.MaxOverrideDepth)
					opts.Cache.put(hash, di, issues)
				}
			} else {
				di, issues = ComputeDialogueInfo(script.Source, ev, registry, resolved.MaxOverrideDepth)
			}

			a.Dialogues = append(a.Dialogues, di)
			a.Issues = append(a.Issues, issues...)
		}
		a.Overlaps = ComputeOverlaps(allEvents)
		logger.Debug("analyzed dialogues", "events", len(allEvents), "cache_hits", cacheHits)
	}

	return a
}

// Lint runs every enabled rule in registry (DefaultRegistry if nil)
// against script's precomputed Analysis and returns the combined,
// severity-stamped diagnostics.
func Lint(analysis *Analysis, registry *Registry, cfg *config.LintConfig) []Diagnostic {
	return LintWithOptions(analysis, registry, cfg, Options{})
}

// LintWithOptions is Lint with tracing control; see Options.
func LintWithOptions(analysis *Analysis, registry *Registry, cfg *config.LintConfig, opts Options) []Diagnostic {
	if registry == nil {
		registry = DefaultRegistry
	}
	resolved := ResolveRules(registry, cfg)
	logger := opts.logger()

	var diags []Diagnostic
	ctx := &RuleContext{
		Script:    analysis.Script,
		Styles:    analysis.Styles,
		Dialogues: analysis.Dialogues,
		Overlaps:  analysis.Overlaps,
	}

	for _, rr := range resolved {
		ctx.Config = rr.Config
		found, err := rr.Rule.Apply(ctx)
		logger.Debug("rule executed", "rule", rr.Rule.ID(), "found", len(found), "err", err)
		if err != nil {
			continue
		}
		for i := range found {
			found[i].Severity = rr.Severity
			if found[i].RuleName == "" {
				found[i].RuleName = rr.Rule.Name()
			}
		}
		diags = append(diags, found...)
	}

	return diags
}
