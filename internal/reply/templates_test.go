package reply

import (
	"strings"
	"testing"

	"github.com/careerlink/assistant/internal/intent"
)

func pinnedStore() *Store {
	return NewStore(DefaultTemplates(), func(int) int { return 0 })
}

func TestTemplateReturnsConfiguredVariant(t *testing.T) {
	t.Parallel()

	store := pinnedStore()
	templates := DefaultTemplates()

	for in, variants := range templates {
		got := store.Template(in)
		if got == "" {
			t.Fatalf("intent %s: expected non-empty template", in)
		}
		if got != variants[0] {
			t.Fatalf("intent %s: pinned picker should return variant 0", in)
		}
	}
}

func TestTemplateUnknownIntentFallsBackToGeneric(t *testing.T) {
	t.Parallel()

	store := pinnedStore()

	got := store.Template(intent.Intent("unconfigured"))
	if got != DefaultTemplates()[intent.Generic][0] {
		t.Fatalf("expected generic fallback, got %q", got)
	}
}

func TestTemplatePickerSelectsAmongVariants(t *testing.T) {
	t.Parallel()

	variants := DefaultTemplates()[intent.Greeting]
	store := NewStore(DefaultTemplates(), func(n int) int { return n - 1 })

	got := store.Template(intent.Greeting)
	if got != variants[len(variants)-1] {
		t.Fatalf("expected last variant, got %q", got)
	}
}

func TestAssembleInterpolatesPlaceholders(t *testing.T) {
	t.Parallel()

	store := pinnedStore()

	got := store.Assemble(intent.JobSearch, map[string]string{"jobs": "1. Go Engineer @ TechCorp"})
	if !strings.Contains(got, "1. Go Engineer @ TechCorp") {
		t.Fatalf("expected jobs placeholder filled, got %q", got)
	}
	if strings.Contains(got, "{jobs}") {
		t.Fatalf("placeholder left unfilled: %q", got)
	}
}

func TestDefaultTemplatePlaceholdersAreKnown(t *testing.T) {
	t.Parallel()

	known := map[string]bool{
		"jobs": true, "companies": true, "topJobs": true,
		"fields": true, "exampleJobs": true, "stats": true,
	}

	for in, variants := range DefaultTemplates() {
		for _, variant := range variants {
			rest := variant
			for {
				start := strings.Index(rest, "{")
				if start == -1 {
					break
				}
				end := strings.Index(rest[start:], "}")
				if end == -1 {
					break
				}
				name := rest[start+1 : start+end]
				if !known[name] {
					t.Fatalf("intent %s references unknown placeholder %q", in, name)
				}
				rest = rest[start+end+1:]
			}
		}
	}
}
