package assast

// FontEntry and GraphicEntry are thin, named aliases over EmbeddedFile used
// by callers that want to be explicit about which section a file came
// from; both decode through pkg/uu the same way.
type FontEntry = EmbeddedFile
type GraphicEntry = EmbeddedFile
