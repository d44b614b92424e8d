package models

import (
	"testing"
)

func TestPlainText(t *testing.T) {
	pt := PortableText{
		PlainBlock("b1", "Frizerie în centrul orașului."),
		{Key: "b2", Type: "block", Children: []Span{
			{Key: "b2-0", Text: "Program: "},
			{Key: "b2-1", Text: "Luni - Vineri", Marks: []string{"strong"}},
		}},
		{Key: "b3", Type: "block"},
	}

	want := "Frizerie în centrul orașului.\nProgram: Luni - Vineri"
	if got := pt.PlainText(); got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}

func TestPlainTextEmpty(t *testing.T) {
	if got := (PortableText)(nil).PlainText(); got != "" {
		t.Errorf("PlainText() on nil = %q, want empty", got)
	}
}

func TestPortableTextScanValue(t *testing.T) {
	pt := PortableText{PlainBlock("b1", "Salut")}

	v, err := pt.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var out PortableText
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(out) != 1 || out[0].Key != "b1" || out[0].Children[0].Text != "Salut" {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestPortableTextScanNil(t *testing.T) {
	var out PortableText
	if err := out.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if out != nil {
		t.Errorf("Scan(nil) produced %+v", out)
	}
}

func TestCanonicalDocID(t *testing.T) {
	if got := CanonicalDocID("drafts.page-home"); got != "page-home" {
		t.Errorf("CanonicalDocID = %q", got)
	}
	if got := CanonicalDocID("page-home"); got != "page-home" {
		t.Errorf("CanonicalDocID = %q", got)
	}
	if !IsDraftID("drafts.page-home") || IsDraftID("page-home") {
		t.Error("IsDraftID draft detection wrong")
	}
}
