package parser

import (
	"bytes"

	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/uu"
)

// SizeLimitExceeded reports that decoding an embedded Font/Graphic entry
// would exceed config.ParserConfig.MaxDecodedBlobSize. Unlike the
// tokenizer's fatal SizeLimitExceeded, this is raised lazily at decode
// time, since the raw UU text may sit well within MaxInputSize while its
// decoded form does not.
type SizeLimitExceeded struct {
	Name  string
	Limit int
	Size  int
}

func (e *SizeLimitExceeded) Error() string {
	return "decoded blob for " + e.Name + " exceeds the configured size limit"
}

// DecodeEmbedded decodes one [Fonts]/[Graphics] entry's UU-encoded body
// against the source buffer it was parsed from. Decoding is deliberately
// lazy and per-entry: most callers never materialize every embedded blob
// in a script, so Parse only records line spans (see assast.EmbeddedFile)
// and leaves decoding to whoever actually needs the bytes.
//
// If file.DeclaredLength is nonzero and disagrees with the decoded length,
// DecodeEmbedded still returns the decoded bytes but also returns a
// non-fatal assast.ParseIssue of KindDeclaredSizeMismatch; it is up to the
// caller to fold that into the script's Issues if it wants it tracked.
func DecodeEmbedded(source []byte, file *assast.EmbeddedFile, maxDecodedBlobSize int) ([]byte, *assast.ParseIssue, error) {
	lines := make([]string, len(file.Lines))
	for i, span := range file.Lines {
		lines[i] = string(bytes.TrimRight(span.Text(source), "\r\n"))
	}

	decoded, err := uu.Decode(lines)
	if err != nil {
		return nil, nil, err
	}

	if maxDecodedBlobSize > 0 && len(decoded) > maxDecodedBlobSize {
		return nil, nil, &SizeLimitExceeded{Name: file.Name, Limit: maxDecodedBlobSize, Size: len(decoded)}
	}

	var issue *assast.ParseIssue
	if file.DeclaredLength > 0 && file.DeclaredLength != len(decoded) {
		issue = &assast.ParseIssue{
			Severity: assast.SeverityInfo,
			Kind:     assast.KindDeclaredSizeMismatch,
			Span:     file.Span,
			Message:  "declared size does not match decoded length",
		}
	}

	return decoded, issue, nil
}
