package tokenizer_test

import (
	"testing"

	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/tokenizer"
)

func TestTokenize_LineKinds(t *testing.T) {
	t.Parallel()

	source := []byte("[Script Info]\n" +
		"; a comment\n" +
		"Title: My Show\n" +
		"\n" +
		"[V4+ Styles]\n" +
		"Format: Name, Fontname\n" +
		"Style: Default,Arial\n" +
		"garbagewithoutcolon\n")

	tokens, err := tokenizer.Tokenize(source, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedKinds := []assast.TokenKind{
		assast.TokSectionHeader,
		assast.TokCommentLine,
		assast.TokKeyValue,
		assast.TokBlankLine,
		assast.TokSectionHeader,
		assast.TokFormatLine,
		assast.TokRecordLine,
		assast.TokRawLine,
	}

	if len(tokens) != len(expectedKinds) {
		t.Fatalf("expected %d tokens, got %d", len(expectedKinds), len(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expectedKinds[i] {
			t.Errorf("token %d: expected kind %v, got %v (text %q)", i, expectedKinds[i], tok.Kind, tok.Text(source))
		}
	}

	if tokens[0].Keyword != "Script Info" {
		t.Errorf("expected section name %q, got %q", "Script Info", tokens[0].Keyword)
	}
	if tokens[2].Key != "Title" || tokens[2].Value != "My Show" {
		t.Errorf("expected key/value Title=My Show, got %q=%q", tokens[2].Key, tokens[2].Value)
	}
	if tokens[6].Keyword != "Style" {
		t.Errorf("expected record keyword Style, got %q", tokens[6].Keyword)
	}
}

func TestTokenize_LineTerminators(t *testing.T) {
	t.Parallel()

	source := []byte("Title: A\r\nTitle: B\nTitle: C\r")
	tokens, err := tokenizer.Tokenize(source, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	for i, tok := range tokens {
		text := string(tok.Text(source))
		if text != "" && (text[len(text)-1] == '\n' || text[len(text)-1] == '\r') {
			t.Errorf("token %d span should not include terminator, got %q", i, text)
		}
	}
	if tokens[0].Value != "A" || tokens[1].Value != "B" || tokens[2].Value != "C" {
		t.Errorf("unexpected values: %q %q %q", tokens[0].Value, tokens[1].Value, tokens[2].Value)
	}
}

func TestTokenize_BOMConsumedSilently(t *testing.T) {
	t.Parallel()

	source := append([]byte{0xEF, 0xBB, 0xBF}, []byte("[Script Info]\n")...)
	tokens, err := tokenizer.Tokenize(source, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if tokens[0].StartOffset != 3 {
		t.Errorf("expected token to start after BOM at offset 3, got %d", tokens[0].StartOffset)
	}
}

func TestTokenize_InvalidUTF8IsFatal(t *testing.T) {
	t.Parallel()

	source := []byte("Title: \xff\xfe broken")
	_, err := tokenizer.Tokenize(source, 0)
	if err == nil {
		t.Fatal("expected EncodingError")
	}
	encErr, ok := err.(*tokenizer.EncodingError)
	if !ok {
		t.Fatalf("expected *EncodingError, got %T", err)
	}
	if encErr.Offset != 7 {
		t.Errorf("expected offset 7, got %d", encErr.Offset)
	}
}

func TestTokenize_SizeLimitExceeded(t *testing.T) {
	t.Parallel()

	source := []byte("Title: hello\n")
	_, err := tokenizer.Tokenize(source, 5)
	if err == nil {
		t.Fatal("expected SizeLimitExceeded")
	}
	if _, ok := err.(*tokenizer.SizeLimitExceeded); !ok {
		t.Fatalf("expected *SizeLimitExceeded, got %T", err)
	}
}

func TestTokenize_DialogueRecordFieldsVerbatim(t *testing.T) {
	t.Parallel()

	source := []byte("Dialogue: 0,0:00:00.00,0:00:05.00,Default,,0,0,0,,Hello, World!\n")
	tokens, err := tokenizer.Tokenize(source, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Kind != assast.TokRecordLine {
		t.Fatalf("expected a single record line token")
	}
	if tokens[0].Fields != " 0,0:00:00.00,0:00:05.00,Default,,0,0,0,,Hello, World!" {
		t.Errorf("unexpected fields: %q", tokens[0].Fields)
	}
}
