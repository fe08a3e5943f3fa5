package jsonutil

import "testing"

func TestObjectExtractsFromProse(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor(nil)

	object := extractor.Object(`prose {"a":1} more prose`)
	if object == nil {
		t.Fatal("expected object, got nil")
	}
	if object["a"] != float64(1) {
		t.Fatalf("expected a=1, got %v", object["a"])
	}
}

func TestObjectHandlesMarkdownFence(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor(nil)

	raw := "```json\n{\"intent\": \"greeting\", \"confidence\": 0.9}\n```"
	object := extractor.Object(raw)
	if object == nil {
		t.Fatal("expected object, got nil")
	}
	if object["intent"] != "greeting" {
		t.Fatalf("unexpected intent: %v", object["intent"])
	}
}

func TestObjectReturnsNilCases(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor(nil)

	for _, text := range []string{"", "no braces here", "{not json}", "} reversed {"} {
		if object := extractor.Object(text); object != nil {
			t.Fatalf("expected nil for %q, got %v", text, object)
		}
	}
}

func TestDecodeIntoStruct(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor(nil)

	var target struct {
		Skills []string `json:"skills"`
	}

	if !extractor.Decode(`here you go: {"skills": ["go", "sql"]}`, &target) {
		t.Fatal("expected decode to succeed")
	}
	if len(target.Skills) != 2 || target.Skills[0] != "go" {
		t.Fatalf("unexpected skills: %v", target.Skills)
	}

	if extractor.Decode("nothing useful", &target) {
		t.Fatal("expected decode to fail without braces")
	}
}
