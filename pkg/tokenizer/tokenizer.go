// Package tokenizer performs a single-pass, byte-level lexical scan of an
// ASS/SSA source buffer into a stream of assast.Token values, per
// spec.md §4.1. It is deliberately section-unaware: classification is
// driven purely by line shape (bracketed header, recognized record
// keyword, "Key: Value", comment marker, blank, or fallback raw line).
// Section-scoped interpretation — e.g. distinguishing a [Fonts] body line
// from stray garbage — is the parser's job (pkg/parser), which is exactly
// the layering spec.md §4.1/§4.2 describe.
package tokenizer

import (
	"fmt"
	"unicode/utf8"

	"github.com/wiedymi/ass-rs/pkg/assast"
)

// recordKeywords are case-insensitively recognized as record-line
// keywords inside a Styles or Events section.
var recordKeywords = map[string]bool{
	"style":    true,
	"dialogue": true,
	"comment":  true,
	"picture":  true,
	"sound":    true,
	"movie":    true,
	"command":  true,
}

// EncodingError is a fatal tokenizer failure: the source contains a byte
// sequence that is not valid UTF-8.
type EncodingError struct {
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("tokenizer: invalid UTF-8 at offset %d", e.Offset)
}

// SizeLimitExceeded is a fatal tokenizer failure: the source exceeds the
// configured size ceiling.
type SizeLimitExceeded struct {
	Limit int
	Size  int
}

func (e *SizeLimitExceeded) Error() string {
	return fmt.Sprintf("tokenizer: source size %d exceeds limit %d", e.Size, e.Limit)
}

// bomBytes is the UTF-8 byte order mark, consumed silently at offset 0.
var bomBytes = []byte{0xEF, 0xBB, 0xBF}

// Tokenize scans content into a token stream. maxInputSize <= 0 disables
// the size check (callers normally pass config.ParserConfig.Resolved().MaxInputSize).
//
// Returns a fatal error (*EncodingError or *SizeLimitExceeded) or the
// token slice (nil when content has no lines); per spec.md §4.1, these are the only two fatal
// tokenizer conditions — everything else becomes a token the parser turns
// into an issue.
func Tokenize(content []byte, maxInputSize int) ([]assast.Token, error) {
	if maxInputSize > 0 && len(content) > maxInputSize {
		return nil, &SizeLimitExceeded{Limit: maxInputSize, Size: len(content)}
	}

	if off := firstInvalidUTF8(content); off >= 0 {
		return nil, &EncodingError{Offset: off}
	}

	start := 0
	if len(content) >= len(bomBytes) && bytesEqual(content[:len(bomBytes)], bomBytes) {
		start = len(bomBytes)
	}

	var tokens []assast.Token
	pos := start
	line := 1
	for pos < len(content) {
		lineEnd, termLen := findLineEnd(content, pos)
		tokens = append(tokens, classifyLine(content, pos, lineEnd, line))
		pos = lineEnd + termLen
		line++
	}

	return tokens, nil
}

// firstInvalidUTF8 returns the byte offset of the first invalid UTF-8
// sequence in content, or -1 if content is entirely valid UTF-8. It walks
// rune-by-rune rather than calling utf8.Valid once so the offset of the
// failure is cheap to recover (see SPEC_FULL.md's utf8 validation note,
// grounded on original_source's utils/utf8.rs incremental approach).
func firstInvalidUTF8(content []byte) int {
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// findLineEnd returns the offset where the line starting at pos ends
// (exclusive of the terminator) and the terminator's byte length (0 at
// EOF, 1 for "\n" or "\r", 2 for "\r\n").
func findLineEnd(content []byte, pos int) (lineEnd, termLen int) {
	for i := pos; i < len(content); i++ {
		switch content[i] {
		case '\n':
			return i, 1
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				return i, 2
			}
			return i, 1
		}
	}
	return len(content), 0
}

func classifyLine(content []byte, start, end int, line int) assast.Token {
	raw := content[start:end]
	trimmed, leadWS := trimLeadingWhitespace(raw)
	trimmedEnd := trimTrailingWhitespace(trimmed)

	base := assast.Token{StartOffset: start, EndOffset: end, Line: line}

	if len(trimmedEnd) == 0 {
		base.Kind = assast.TokBlankLine
		return base
	}

	if trimmedEnd[0] == ';' || hasPrefix(trimmedEnd, "!:") {
		base.Kind = assast.TokCommentLine
		return base
	}

	if trimmedEnd[0] == '[' {
		if close := indexByte(trimmedEnd, ']'); close >= 0 {
			base.Kind = assast.TokSectionHeader
			base.Keyword = trimSpaces(string(trimmedEnd[1:close]))
			return base
		}
	}

	if colon := indexByte(trimmedEnd, ':'); colon >= 0 {
		keyword := trimSpaces(string(trimmedEnd[:colon]))
		valueStart := start + leadWS + colon + 1
		rest := content[valueStart:end]

		switch {
		case equalFoldASCII(keyword, "format"):
			base.Kind = assast.TokFormatLine
			base.Keyword = keyword
			base.Fields = trimSpacesStr(string(rest))
			return base
		case recordKeywords[lowerASCIIStr(keyword)]:
			base.Kind = assast.TokRecordLine
			base.Keyword = keyword
			base.Fields = string(rest)
			return base
		default:
			base.Kind = assast.TokKeyValue
			base.Key = keyword
			base.Value = trimSpacesStr(string(rest))
			return base
		}
	}

	base.Kind = assast.TokRawLine
	return base
}

func trimLeadingWhitespace(b []byte) ([]byte, int) {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}
	return b[i:], i
}

func trimTrailingWhitespace(b []byte) []byte {
	j := len(b)
	for j > 0 && (b[j-1] == ' ' || b[j-1] == '\t') {
		j--
	}
	return b[:j]
}

func trimSpaces(s string) string {
	return trimSpacesStr(s)
}

func trimSpacesStr(s string) string {
	start := 0
	for start < len(s) && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	end := len(s)
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t' || s[end-1] == '\r') {
		end--
	}
	return s[start:end]
}

func indexByte(b []byte, c byte) int {
	for i := 0; i < len(b); i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}

func hasPrefix(b []byte, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}

func equalFoldASCII(a, b string) bool {
	return lowerASCIIStr(a) == b
}

func lowerASCIIStr(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
