// Package plugin implements the runtime section/tag handler registry that
// lets callers extend the core with section kinds and override tags it does
// not know about natively, per spec.md §4.4. Registration is rare and takes
// a lock; lookups are on the parser's hot path and only ever take a read
// lock, mirroring the teacher's pkg/lint.Registry.
package plugin

import (
	"sync"

	"github.com/wiedymi/ass-rs/pkg/assast"
)

// SectionHandler owns an unknown section header. Parse turns the raw lines
// of the section body into an opaque payload; Validate and Serialize are
// optional hooks a handler may support for round-tripping and linting.
type SectionHandler interface {
	// Parse converts the raw source lines belonging to the section (the
	// header itself excluded) into a payload stored on
	// assast.CustomSection.Payload.
	Parse(lines []assast.Span, source []byte) (any, assast.Issues)

	// Validate checks an already-parsed payload and returns any issues.
	// Implementations that have nothing to add may return nil.
	Validate(payload any) assast.Issues

	// Serialize renders payload back to the section body text a writer
	// would emit. Implementations that don't support round-tripping may
	// return ("", false).
	Serialize(payload any) (string, bool)
}

// TagHandler owns an override tag the core doesn't recognize natively.
type TagHandler interface {
	// ParseArgs converts a tag's raw argument text into an opaque payload.
	ParseArgs(rawArgs string) (any, error)

	// Apply is the analysis-side hook: given the current resolved-style
	// accumulator state (opaque to the registry, owned by pkg/analysis) and
	// the tag's payload, mutate state. Handlers MUST be pure with respect
	// to their inputs and MUST NOT retain state across calls.
	Apply(state any, payload any)
}

// Registry is a two-namespace, read-mostly table of SectionHandler and
// TagHandler instances, keyed by exact section/tag name. The zero value is
// not usable; construct with NewRegistry.
type Registry struct {
	mu       sync.RWMutex
	sections map[string]SectionHandler
	tags     map[string]TagHandler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sections: make(map[string]SectionHandler),
		tags:     make(map[string]TagHandler),
	}
}

// RegisterSectionHandler binds handler to the exact section name (the text
// between the header's brackets). Registration is idempotent by name: a
// second call for the same name replaces the first and the returned bool
// reports whether a prior handler was replaced, so the caller can surface
// spec.md's HandlerReplaced info issue.
func (r *Registry) RegisterSectionHandler(name string, handler SectionHandler) (replaced bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, replaced = r.sections[name]
	r.sections[name] = handler
	return replaced
}

// SectionHandler returns the handler registered for name, if any.
func (r *Registry) SectionHandler(name string) (SectionHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.sections[name]
	return h, ok
}

// RegisterTagHandler binds handler to the tag name (without the leading
// backslash). Idempotent by name, same replacement semantics as
// RegisterSectionHandler.
func (r *Registry) RegisterTagHandler(name string, handler TagHandler) (replaced bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, replaced = r.tags[name]
	r.tags[name] = handler
	return replaced
}

// TagHandler returns the handler registered for name, if any.
func (r *Registry) TagHandler(name string) (TagHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.tags[name]
	return h, ok
}

// SectionNames returns every registered section name, unordered.
func (r *Registry) SectionNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.sections))
	for name := range r.sections {
		out = append(out, name)
	}
	return out
}

// TagNames returns every registered tag name, unordered.
func (r *Registry) TagNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.tags))
	for name := range r.tags {
		out = append(out, name)
	}
	return out
}

// DefaultRegistry is the process-wide registry consulted by pkg/parser and
// pkg/overrides when no explicit registry is supplied, matching spec.md
// §4.4's "process-visible extension table" and §9's guidance to avoid a
// lazily-initialized singleton: it is built eagerly at package init, not on
// first use.
var DefaultRegistry = NewRegistry()
