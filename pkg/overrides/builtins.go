package overrides

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wiedymi/ass-rs/pkg/litparse"
	"github.com/wiedymi/ass-rs/pkg/plugin"
)

// ArgShape describes how a builtin tag's raw argument text is interpreted
// by ParseArgs. The override parser itself stays untyped (plain strings,
// per spec.md §3's "parsed lazily on demand"); only the registry's
// handlers know how to turn a tag's args into a typed value, and that
// typing only happens when something — the analysis engine, a renderer —
// actually asks for it.
type ArgShape uint8

const (
	ShapeNone ArgShape = iota
	ShapeInt
	ShapeFloat
	ShapeFloatList
	ShapeColor
	ShapeAlpha
	ShapeString
)

type builtinTag struct {
	name  string
	shape ArgShape
}

// builtinTags is the catalogue named by spec.md §4.3's tag registry,
// cross-checked against original_source's builtins.rs register_builtins
// for exact lowercase spellings: bold/italic/underline/strike, the four
// color and four alpha slots, font name/size/spacing/scale, border/shadow/
// blur, position/move/org, rotation x/y/z, shear x/y, clip/iclip, reset,
// transform, karaoke (k/kf/ko/kt), drawing (p/pbo), alignment, fade,
// wrapping (q), fade-effect (fe).
var builtinTags = []builtinTag{
	{"b", ShapeInt}, {"i", ShapeInt}, {"u", ShapeInt}, {"s", ShapeInt},
	{"c", ShapeColor}, {"1c", ShapeColor}, {"2c", ShapeColor}, {"3c", ShapeColor}, {"4c", ShapeColor},
	{"alpha", ShapeAlpha}, {"1a", ShapeAlpha}, {"2a", ShapeAlpha}, {"3a", ShapeAlpha}, {"4a", ShapeAlpha},
	{"fs", ShapeFloat}, {"fn", ShapeString}, {"fsp", ShapeFloat},
	{"fscx", ShapeFloat}, {"fscy", ShapeFloat},
	{"bord", ShapeFloat}, {"xbord", ShapeFloat}, {"ybord", ShapeFloat},
	{"shad", ShapeFloat}, {"xshad", ShapeFloat}, {"yshad", ShapeFloat},
	{"be", ShapeFloat}, {"blur", ShapeFloat},
	{"pos", ShapeFloatList}, {"move", ShapeFloatList}, {"org", ShapeFloatList},
	{"fr", ShapeFloat}, {"frx", ShapeFloat}, {"fry", ShapeFloat}, {"frz", ShapeFloat},
	{"fax", ShapeFloat}, {"fay", ShapeFloat},
	{"clip", ShapeString}, {"iclip", ShapeString},
	{"r", ShapeString},
	{"t", ShapeString},
	{"k", ShapeInt}, {"kf", ShapeInt}, {"ko", ShapeInt}, {"kt", ShapeInt},
	{"p", ShapeInt}, {"pbo", ShapeFloat},
	{"an", ShapeInt}, {"a", ShapeInt},
	{"fad", ShapeFloatList}, {"fade", ShapeFloatList},
	{"q", ShapeInt}, {"fe", ShapeInt},
}

var builtinTagSet = func() map[string]ArgShape {
	m := make(map[string]ArgShape, len(builtinTags))
	for _, t := range builtinTags {
		m[t.name] = t.shape
	}
	return m
}()

func isBuiltinTag(name string) bool {
	_, ok := builtinTagSet[name]
	return ok
}

// builtinTagHandler adapts one ArgShape into a plugin.TagHandler.
type builtinTagHandler struct {
	shape ArgShape
}

func (h builtinTagHandler) ParseArgs(rawArgs string) (any, error) {
	raw := strings.TrimSpace(rawArgs)
	switch h.shape {
	case ShapeNone:
		return nil, nil
	case ShapeInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("overrides: invalid integer argument %q", rawArgs)
		}
		return v, nil
	case ShapeFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("overrides: invalid float argument %q", rawArgs)
		}
		return v, nil
	case ShapeFloatList:
		parts := strings.Split(rawArgs, ",")
		out := make([]float64, 0, len(parts))
		for _, part := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, fmt.Errorf("overrides: invalid float in list %q", rawArgs)
			}
			out = append(out, v)
		}
		return out, nil
	case ShapeColor, ShapeAlpha:
		c, ok := litparse.ParseColor(raw)
		if !ok {
			return nil, fmt.Errorf("overrides: invalid color literal %q", rawArgs)
		}
		return c, nil
	case ShapeString:
		return raw, nil
	default:
		return raw, nil
	}
}

// Apply is a no-op for the builtin tags. Nothing in this module calls
// TagHandler.Apply: pkg/analysis's ResolvedStyle does not apply in-text
// override tags. Third-party tag plugins may still implement a stateful
// Apply.
func (h builtinTagHandler) Apply(state any, payload any) {}

// RegisterBuiltins installs the default tag catalogue into registry. It
// is idempotent: re-registering an already-known name just replaces its
// handler. plugin.Registry reports a replacement only through the bool its
// Register methods return, which RegisterBuiltins discards; no
// HandlerReplaced issue is produced.
func RegisterBuiltins(registry *plugin.Registry) {
	for _, t := range builtinTags {
		registry.RegisterTagHandler(t.name, builtinTagHandler{shape: t.shape})
	}
}

func init() {
	RegisterBuiltins(plugin.DefaultRegistry)
}
