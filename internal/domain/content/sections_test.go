package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/frizeriacentrala/site-api/internal/models"
)

func TestFoldSections(t *testing.T) {
	page := &models.Page{
		Title: "Acasă",
		Sections: []models.Section{
			{Type: "hero", Title: "Bun venit"},
			{Type: "services", Title: "Servicii"},
			{Type: "form", Title: "Contact"},
		},
	}

	folded, err := FoldSections(page)
	if err != nil {
		t.Fatalf("FoldSections returned error: %v", err)
	}

	if len(folded) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(folded))
	}

	hero, ok := folded["heroSectionData"]
	if !ok {
		t.Fatal("missing heroSectionData bucket")
	}
	if hero.Title != "Bun venit" {
		t.Errorf("hero title = %q, want %q", hero.Title, "Bun venit")
	}

	if _, ok := folded["servicesSectionData"]; !ok {
		t.Error("missing servicesSectionData bucket")
	}
	if _, ok := folded["formSectionData"]; !ok {
		t.Error("missing formSectionData bucket")
	}
}

func TestFoldSectionsEmptyPage(t *testing.T) {
	page := &models.Page{Title: "Galerie"}

	_, err := FoldSections(page)
	if err == nil {
		t.Fatal("expected error for page without sections")
	}

	var empty EmptySectionsError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptySectionsError, got %T", err)
	}
	if empty.PageTitle != "Galerie" {
		t.Errorf("PageTitle = %q, want %q", empty.PageTitle, "Galerie")
	}
	if !strings.Contains(err.Error(), "Galerie") {
		t.Errorf("error message %q does not name the page", err.Error())
	}
}

func TestFoldSectionsDuplicateTypeLastWins(t *testing.T) {
	page := &models.Page{
		Title: "Acasă",
		Sections: []models.Section{
			{Type: "hero", Title: "primul"},
			{Type: "hero", Title: "al doilea"},
		},
	}

	folded, err := FoldSections(page)
	if err != nil {
		t.Fatalf("FoldSections returned error: %v", err)
	}

	if got := folded["heroSectionData"].Title; got != "al doilea" {
		t.Errorf("duplicate fold kept %q, want the later section", got)
	}
}

func TestValidSectionType(t *testing.T) {
	for _, st := range SectionTypes() {
		if !ValidSectionType(string(st)) {
			t.Errorf("%q should be a valid section type", st)
		}
	}

	if ValidSectionType("carousel") {
		t.Error("unknown type accepted")
	}
}
