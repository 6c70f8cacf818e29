package plugin_test

import (
	"testing"

	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/plugin"
)

type stubSectionHandler struct{}

func (stubSectionHandler) Parse(lines []assast.Span, source []byte) (any, assast.Issues) {
	return len(lines), nil
}

func (stubSectionHandler) Validate(payload any) assast.Issues { return nil }

func (stubSectionHandler) Serialize(payload any) (string, bool) { return "", false }

type stubTagHandler struct{}

func (stubTagHandler) ParseArgs(rawArgs string) (any, error) { return rawArgs, nil }

func (stubTagHandler) Apply(state any, payload any) {}

func TestRegistry_SectionHandlerRoundTrip(t *testing.T) {
	t.Parallel()

	r := plugin.NewRegistry()
	if _, ok := r.SectionHandler("Custom"); ok {
		t.Fatal("expected no handler registered yet")
	}

	replaced := r.RegisterSectionHandler("Custom", stubSectionHandler{})
	if replaced {
		t.Error("first registration should not report a replacement")
	}

	h, ok := r.SectionHandler("Custom")
	if !ok {
		t.Fatal("expected handler to be registered")
	}
	payload, issues := h.Parse(nil, nil)
	if payload != 0 || issues != nil {
		t.Errorf("unexpected parse result: %v %v", payload, issues)
	}
}

func TestRegistry_RegistrationIsIdempotentByName(t *testing.T) {
	t.Parallel()

	r := plugin.NewRegistry()
	r.RegisterSectionHandler("Custom", stubSectionHandler{})
	replaced := r.RegisterSectionHandler("Custom", stubSectionHandler{})
	if !replaced {
		t.Error("expected second registration for the same name to report a replacement")
	}
}

func TestRegistry_TagHandlerRoundTrip(t *testing.T) {
	t.Parallel()

	r := plugin.NewRegistry()
	r.RegisterTagHandler("zoom", stubTagHandler{})

	h, ok := r.TagHandler("zoom")
	if !ok {
		t.Fatal("expected tag handler to be registered")
	}
	payload, err := h.ParseArgs("1.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload != "1.5" {
		t.Errorf("unexpected payload: %v", payload)
	}
}

func TestRegistry_NamesAreUnordered(t *testing.T) {
	t.Parallel()

	r := plugin.NewRegistry()
	r.RegisterSectionHandler("A", stubSectionHandler{})
	r.RegisterSectionHandler("B", stubSectionHandler{})
	names := r.SectionNames()
	if len(names) != 2 {
		t.Fatalf("expected 2 section names, got %d", len(names))
	}
}
