package schema

import (
	"context"
	"errors"
	"testing"

	"github.com/frizeriacentrala/site-api/internal/models"
)

func fieldMessages(err error) map[string]string {
	var v *ValidationError
	if !errors.As(err, &v) {
		return nil
	}
	out := make(map[string]string, len(v.Errors))
	for _, fe := range v.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestPageFieldRules(t *testing.T) {
	page := &models.Page{
		DocID:     "page-servicii",
		Title:     "Servicii",
		Path:      "/servicii",
		SortOrder: 1,
		Sections: []models.Section{
			{Type: "hero"},
			{Type: "services"},
		},
	}

	var v ValidationError
	pageFieldRules(page, &v)
	if v.or() != nil {
		t.Fatalf("valid page rejected: %v", v.or())
	}
}

func TestPageFieldRulesRequireTitleAndPath(t *testing.T) {
	page := &models.Page{DocID: "page-x"}

	var v ValidationError
	pageFieldRules(page, &v)

	fields := fieldMessages(v.or())
	if _, ok := fields["title"]; !ok {
		t.Error("missing title must fail")
	}
	if _, ok := fields["path"]; !ok {
		t.Error("missing path must fail for a non-index page")
	}
}

func TestPageFieldRulesIndexPageSkipsPath(t *testing.T) {
	page := &models.Page{
		DocID:   "page-home",
		Title:   "Acasă",
		IsIndex: true,
	}

	var v ValidationError
	pageFieldRules(page, &v)
	if v.or() != nil {
		t.Fatalf("index page without path rejected: %v", v.or())
	}
}

func TestPageFieldRulesRejectUnknownSectionType(t *testing.T) {
	page := &models.Page{
		DocID: "page-x", Title: "X", Path: "/x",
		Sections: []models.Section{{Type: "carousel"}},
	}

	var v ValidationError
	pageFieldRules(page, &v)

	fields := fieldMessages(v.or())
	if _, ok := fields["sections.0.type"]; !ok {
		t.Errorf("unknown section type accepted: %v", fields)
	}
}

func TestPageFieldRulesRejectDuplicateSectionType(t *testing.T) {
	page := &models.Page{
		DocID: "page-x", Title: "X", Path: "/x",
		Sections: []models.Section{
			{Type: "hero"},
			{Type: "gallery"},
			{Type: "hero"},
		},
	}

	var v ValidationError
	pageFieldRules(page, &v)

	fields := fieldMessages(v.or())
	if _, ok := fields["sections.2.type"]; !ok {
		t.Errorf("duplicate section type accepted: %v", fields)
	}
}

func TestPageIdentityIDs(t *testing.T) {
	want := []string{"page-home", "drafts.page-home"}

	for _, docID := range []string{"page-home", "drafts.page-home"} {
		got := pageIdentityIDs(docID)
		if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("pageIdentityIDs(%q) = %v, want %v", docID, got, want)
		}
	}
}

// siblingTable backs the order-uniqueness check with an in-memory page
// set, filtering the way the sibling query does.
func siblingTable(pages map[string]int) PageSiblingCounter {
	return func(ctx context.Context, sortOrder int, exclude []string) (int64, error) {
		excluded := make(map[string]bool, len(exclude))
		for _, id := range exclude {
			excluded[id] = true
		}

		var count int64
		for docID, order := range pages {
			if order == sortOrder && !excluded[docID] {
				count++
			}
		}
		return count, nil
	}
}

func TestValidatePageRejectsDuplicateOrder(t *testing.T) {
	siblings := siblingTable(map[string]int{
		"page-home":     0,
		"page-servicii": 1,
	})

	page := &models.Page{
		DocID: "page-galerie", Title: "Galerie", Path: "/galerie",
		SortOrder: 1,
	}

	err := ValidatePageWith(context.Background(), page, siblings)

	fields := fieldMessages(err)
	if fields["order"] != "Există deja o pagină cu această ordine." {
		t.Errorf("colliding order accepted: %v", fields)
	}
}

func TestValidatePageOrderIgnoresOwnCounterpart(t *testing.T) {
	siblings := siblingTable(map[string]int{
		"page-home":           0,
		"page-servicii":       1,
		"drafts.page-galerie": 2,
		"page-galerie":        2,
	})

	// Editing either identity of the page must not collide with the
	// other one.
	for _, docID := range []string{"page-galerie", "drafts.page-galerie"} {
		page := &models.Page{
			DocID: docID, Title: "Galerie", Path: "/galerie",
			SortOrder: 2,
		}

		if err := ValidatePageWith(context.Background(), page, siblings); err != nil {
			t.Errorf("docID %q: own counterpart treated as sibling: %v", docID, err)
		}
	}
}

func TestValidatePagePropagatesLookupFailure(t *testing.T) {
	lookupErr := errors.New("connection reset")
	failing := func(ctx context.Context, sortOrder int, exclude []string) (int64, error) {
		return 0, lookupErr
	}

	page := &models.Page{
		DocID: "page-galerie", Title: "Galerie", Path: "/galerie",
	}

	if err := ValidatePageWith(context.Background(), page, failing); !errors.Is(err, lookupErr) {
		t.Errorf("got %v, want the lookup error propagated", err)
	}
}

func TestValidateService(t *testing.T) {
	order := 2
	ok := &models.Service{Name: "Tuns clasic", Price: 60, DurationMin: 30, SortOrder: &order}
	if err := ValidateService(ok); err != nil {
		t.Fatalf("valid service rejected: %v", err)
	}

	neg := -1
	bad := &models.Service{Price: -10, DurationMin: -5, SortOrder: &neg}
	fields := fieldMessages(ValidateService(bad))
	for _, f := range []string{"name", "price", "duration_min", "order"} {
		if _, present := fields[f]; !present {
			t.Errorf("field %q not flagged: %v", f, fields)
		}
	}
}

func TestValidateFaq(t *testing.T) {
	ok := &models.Faq{
		Question: "Trebuie programare?",
		Answer:   models.PortableText{models.PlainBlock("a1", "Da, prin telefon sau online.")},
	}
	if err := ValidateFaq(ok); err != nil {
		t.Fatalf("valid faq rejected: %v", err)
	}

	fields := fieldMessages(ValidateFaq(&models.Faq{}))
	if _, present := fields["question"]; !present {
		t.Error("missing question not flagged")
	}
	if _, present := fields["answer"]; !present {
		t.Error("empty answer not flagged")
	}
}

func TestValidateSiteSettings(t *testing.T) {
	ok := &models.SiteSettings{
		DocID: "siteSettings",
		Title: "Frizeria Centrală",
		Email: "contact@frizeriacentrala.ro",
		SocialLinks: models.SocialLinks{
			{Platform: "instagram", URL: "https://instagram.com/frizeriacentrala"},
		},
	}
	if err := ValidateSiteSettings(ok); err != nil {
		t.Fatalf("valid settings rejected: %v", err)
	}

	bad := &models.SiteSettings{
		Email:          "nope",
		AppointmentURL: "not a url",
		SocialLinks:    models.SocialLinks{{URL: "https://example.com"}},
	}
	fields := fieldMessages(ValidateSiteSettings(bad))
	for _, f := range []string{"title", "email", "appointment_url", "social_links.0.platform"} {
		if _, present := fields[f]; !present {
			t.Errorf("field %q not flagged: %v", f, fields)
		}
	}
}
