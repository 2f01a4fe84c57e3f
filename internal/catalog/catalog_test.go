package catalog

import (
	"strings"
	"testing"
)

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New("",
		ComponentType{Name: "Hero"},
		ComponentType{Name: "Hero"},
	)
	if err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestNewRejectsUnregisteredFallback(t *testing.T) {
	_, err := New("Ghost", ComponentType{Name: "Hero"})
	if err == nil {
		t.Fatalf("expected unknown fallback error")
	}
}

func TestBuiltinHasAlwaysRenderableFallback(t *testing.T) {
	c := Builtin()
	fb := c.FallbackType()
	if fb == "" {
		t.Fatalf("builtin catalog must register a fallback")
	}
	ct, ok := c.Get(fb)
	if !ok {
		t.Fatalf("fallback %q not in catalog", fb)
	}
	res := Resolve(ct, nil)
	if !res.CanRender {
		t.Fatalf("fallback %q must render with no business data: %+v", fb, res)
	}
}

func TestBuiltinSharedElementsRegistered(t *testing.T) {
	c := Builtin()
	for _, name := range []string{"Navbar", "Footer"} {
		if _, ok := c.Get(name); !ok {
			t.Fatalf("builtin catalog missing %s", name)
		}
	}
}

func TestPromptSummaryListsEveryType(t *testing.T) {
	c := Builtin()
	summary := PromptSummary(c)
	for _, ct := range c.Types() {
		if !strings.Contains(summary, ct.Name+": ") {
			t.Fatalf("summary missing %s", ct.Name)
		}
	}
}
