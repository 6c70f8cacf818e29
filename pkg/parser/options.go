package parser

import (
	"github.com/charmbracelet/log"

	"github.com/wiedymi/ass-rs/internal/tracing"
)

// Options controls the optional, ambient behavior of a parse that isn't
// part of its result: tracing. The zero value disables all of it.
type Options struct {
	// Logger receives Debug-level lines for version detection and section
	// dispatch. Nil falls back to tracing.Default(), which discards output
	// until a caller configures it with tracing.SetDefault.
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return tracing.Default()
}
