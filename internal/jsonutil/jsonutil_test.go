package jsonutil

import (
	"encoding/json"
	"testing"
)

func TestUnmarshalFlexPlainJSON(t *testing.T) {
	var out map[string]any
	if err := UnmarshalFlex([]byte(`{"a":1,"b":"x"}`), &out); err != nil {
		t.Fatalf("plain json: %v", err)
	}
	if out["b"] != "x" {
		t.Fatalf("unexpected value: %v", out["b"])
	}
}

func TestUnmarshalFlexQuotedDocument(t *testing.T) {
	quoted, err := json.Marshal(`{"headline":"Welcome"}`)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	var out map[string]any
	if err := UnmarshalFlex(quoted, &out); err != nil {
		t.Fatalf("quoted document: %v", err)
	}
	if out["headline"] != "Welcome" {
		t.Fatalf("unexpected value: %v", out["headline"])
	}
}

func TestUnmarshalFlexRejectsGarbage(t *testing.T) {
	var out map[string]any
	if err := UnmarshalFlex([]byte("not json at all"), &out); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestNormalizeUnescapesEntities(t *testing.T) {
	norm, err := Normalize([]byte(`{"title":"Fish & Chips"}`))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	var out map[string]string
	if err := json.Unmarshal(norm, &out); err != nil {
		t.Fatalf("decode normalized: %v", err)
	}
	if out["title"] != "Fish & Chips" {
		t.Fatalf("unexpected title: %q", out["title"])
	}
}

func TestMarshalNoEscapeKeepsAngleBrackets(t *testing.T) {
	b, err := MarshalNoEscape(map[string]string{"html": "<b>hi</b>"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"html":"<b>hi</b>"}` {
		t.Fatalf("unexpected output: %s", b)
	}
}
