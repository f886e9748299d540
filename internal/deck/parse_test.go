package deck

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDeck = `---
title: Quarterly Review
author: kyaoi
theme: tokyo-night
---

# Welcome

Opening notes.

---

## Numbers

<!-- ornament: ✦ -->
<!-- ornament: ❋ animated -->

Revenue is up.

---

## Questions?
`

func TestParse_SplitsSlidesAndMeta(t *testing.T) {
	d, err := Parse(strings.NewReader(sampleDeck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if d.Meta.Title != "Quarterly Review" {
		t.Errorf("Title = %q, want %q", d.Meta.Title, "Quarterly Review")
	}
	if d.Meta.Theme != "tokyo-night" {
		t.Errorf("Theme = %q, want %q", d.Meta.Theme, "tokyo-night")
	}
	if len(d.Slides) != 3 {
		t.Fatalf("got %d slides, want 3", len(d.Slides))
	}
	for i, s := range d.Slides {
		if s.Index != i+1 {
			t.Errorf("slide %d has Index %d", i, s.Index)
		}
	}
	if !strings.Contains(d.Slides[0].Content, "# Welcome") {
		t.Errorf("first slide content = %q", d.Slides[0].Content)
	}
}

func TestParse_Ornaments(t *testing.T) {
	d, err := Parse(strings.NewReader(sampleDeck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	s := d.Slides[1]
	if len(s.Ornaments) != 2 {
		t.Fatalf("got %d ornaments, want 2", len(s.Ornaments))
	}
	if s.Ornaments[0].Text != "✦" || s.Ornaments[0].Animated {
		t.Errorf("ornament 0 = %+v, want static ✦", s.Ornaments[0])
	}
	if s.Ornaments[1].Text != "❋" || !s.Ornaments[1].Animated {
		t.Errorf("ornament 1 = %+v, want animated ❋", s.Ornaments[1])
	}
	if strings.Contains(s.Content, "ornament") {
		t.Errorf("directives left in content: %q", s.Content)
	}
}

func TestParse_RuleInsideFenceKept(t *testing.T) {
	src := "first\n\n```\n---\n```\n\n---\n\nsecond\n"
	d, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(d.Slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(d.Slides))
	}
	if !strings.Contains(d.Slides[0].Content, "---") {
		t.Error("rule inside code fence must stay in the slide body")
	}
}

func TestParse_EmptySlidesSkipped(t *testing.T) {
	src := "one\n\n---\n\n   \n\n---\n\ntwo\n"
	d, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(d.Slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(d.Slides))
	}
}

func TestParse_EmptyDeck(t *testing.T) {
	_, err := Parse(strings.NewReader("   \n\n---\n\n"))
	if !errors.Is(err, errEmptyDeck) {
		t.Errorf("err = %v, want errEmptyDeck", err)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	d, err := Parse(strings.NewReader("# Only slide\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Meta.Title != "" {
		t.Errorf("Title = %q, want empty", d.Meta.Title)
	}
	if len(d.Slides) != 1 {
		t.Fatalf("got %d slides, want 1", len(d.Slides))
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.md")
	if err := os.WriteFile(path, []byte(sampleDeck), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(d.Slides) != 3 {
		t.Errorf("got %d slides, want 3", len(d.Slides))
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Error("ParseFile on a missing file must fail")
	}
}
