package incremental

import (
	"github.com/charmbracelet/log"

	"github.com/wiedymi/ass-rs/internal/tracing"
)

// Options controls the optional, ambient behavior of a reparse that isn't
// part of its result: tracing. The zero value disables all of it.
type Options struct {
	// Logger receives Debug-level lines for dirty-range recomputation and
	// full-reparse fallback decisions. Nil falls back to tracing.Default().
	// It's also handed down to the parser calls Reparse makes internally,
	// so a single logger sees both layers' decisions.
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return tracing.Default()
}
