package llmprompt

import (
	"strings"
	"testing"
)

func testSpec() Spec {
	return Spec{
		Purpose:    "Plan a website.",
		Background: "You are a planner.",
		OutputFields: []Field{
			{Name: "site_name", Type: "string", Required: true, Description: "display name"},
			{Name: "pages", Type: "[]PagePlan", Required: true},
		},
		Constraints:  []string{"No markdown."},
		Rules:        []string{"Be concise."},
		OutputFormat: "JSON only.",
		Language:     "English",
	}
}

func TestBuildRendersSectionsInOrder(t *testing.T) {
	out, err := Build(testSpec(), map[string]any{"prompt": "a bakery"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []string{
		"[PURPOSE]",
		"[BACKGROUND]",
		"[INPUT]",
		"[OUTPUT]",
		"[CONSTRAINTS]",
		"[RULES]",
		"[OUTPUT_FORMAT]",
		"[LANGUAGE]",
	}
	last := -1
	for _, section := range want {
		idx := strings.Index(out, section)
		if idx < 0 {
			t.Fatalf("missing section %s in:\n%s", section, out)
		}
		if idx < last {
			t.Fatalf("section %s out of order", section)
		}
		last = idx
	}
	if !strings.Contains(out, `"prompt": "a bakery"`) {
		t.Fatalf("input payload not embedded:\n%s", out)
	}
	if !strings.Contains(out, "- site_name (string, required): display name") {
		t.Fatalf("output field not rendered:\n%s", out)
	}
}

func TestBuildRequiresPurposeAndFields(t *testing.T) {
	spec := testSpec()
	spec.Purpose = ""
	if _, err := Build(spec, nil); err == nil {
		t.Fatalf("expected error for empty purpose")
	}

	spec = testSpec()
	spec.OutputFields = nil
	if _, err := Build(spec, nil); err == nil {
		t.Fatalf("expected error for empty output fields")
	}
}

func TestWithStricterRulesPrepends(t *testing.T) {
	spec := testSpec()
	out := WithStricterRules(spec, "Fix the schema.")
	if out.Rules[0] != "Fix the schema." {
		t.Fatalf("new rule should come first: %v", out.Rules)
	}
	if len(spec.Rules) != 1 {
		t.Fatalf("original spec mutated: %v", spec.Rules)
	}
}

func TestApplyPresetsPrependsConstraints(t *testing.T) {
	spec := ApplyPresets(testSpec(), PresetStrictJSON())
	if spec.Constraints[0] != "Return strict JSON only." {
		t.Fatalf("preset constraints should come first: %v", spec.Constraints)
	}
	if spec.Constraints[len(spec.Constraints)-1] != "No markdown." {
		t.Fatalf("original constraints should be kept: %v", spec.Constraints)
	}
}

func TestFieldsFromStructHonorsTags(t *testing.T) {
	type wire struct {
		Name     string   `json:"name" prompt_desc:"display name"`
		Slug     string   `json:"slug" prompt:"optional"`
		Internal string   `json:"-"`
		Skipped  string   `json:"skipped" prompt:"-"`
		Tags     []string `json:"tags"`
	}

	fields, err := FieldsFromStruct(wire{})
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d: %+v", len(fields), fields)
	}
	if fields[0].Name != "name" || !fields[0].Required || fields[0].Description != "display name" {
		t.Fatalf("unexpected first field: %+v", fields[0])
	}
	if fields[1].Name != "slug" || fields[1].Required {
		t.Fatalf("prompt:\"optional\" not honored: %+v", fields[1])
	}
	if fields[2].Type != "[]string" {
		t.Fatalf("slice type not rendered: %+v", fields[2])
	}
}
