package content

import (
	"context"
	"errors"
	"testing"

	domain "github.com/frizeriacentrala/site-api/internal/domain/content"
	"github.com/frizeriacentrala/site-api/internal/models"
)

func pageFixtureRepo() *fakeRepo {
	return &fakeRepo{
		settings: &models.SiteSettings{
			Title: "Frizeria Centrală",
			Phone: "+40 712 000 000",
			Email: "salon@example.com",
		},
		logo: &models.SiteLogo{Name: "logo"},
		location: &models.ShopLocation{
			Name:  "Centru",
			Phone: "+40 712 111 111",
		},
		pages: []models.Page{
			{
				DocID:   "page-home",
				Title:   "Acasă",
				Path:    "/",
				IsIndex: true,
				Sections: []models.Section{
					{Type: "hero", Title: "Bun venit"},
					{Type: "form"},
				},
			},
			{
				DocID: "page-servicii",
				Title: "Servicii",
				Path:  "servicii",
				Sections: []models.Section{
					{Type: "services"},
				},
			},
			{
				DocID: "page-galerie",
				Title: "Galerie",
				Path:  "galerie",
			},
		},
	}
}

func TestGetPageDataBySlug(t *testing.T) {
	uc := NewGetPageData(pageFixtureRepo())

	data, err := uc.Execute(context.Background(), GetPageDataInput{Slug: "servicii"})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if data.Page.Title != "Servicii" {
		t.Errorf("page = %q, want Servicii", data.Page.Title)
	}
	if _, ok := data.Sections["servicesSectionData"]; !ok {
		t.Error("missing servicesSectionData bucket")
	}
	if data.Settings == nil || data.Logo == nil || data.Location == nil {
		t.Error("page data must carry settings, logo and location")
	}
	if len(data.Routes) != 3 {
		t.Errorf("routes = %d, want 3", len(data.Routes))
	}
}

func TestGetPageDataWithoutSlugUsesIndex(t *testing.T) {
	uc := NewGetPageData(pageFixtureRepo())

	data, err := uc.Execute(context.Background(), GetPageDataInput{})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if !data.Page.IsIndex {
		t.Error("empty slug must resolve the index page")
	}
	if data.Page.DocID != "page-home" {
		t.Errorf("page = %q, want page-home", data.Page.DocID)
	}
}

func TestGetPageDataResolvesContact(t *testing.T) {
	uc := NewGetPageData(pageFixtureRepo())

	data, err := uc.Execute(context.Background(), GetPageDataInput{})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if data.Contact.Phone != "+40 712 111 111" {
		t.Errorf("contact phone = %q, want the location override", data.Contact.Phone)
	}
	if data.Contact.Email != "salon@example.com" {
		t.Errorf("contact email = %q, want the site default", data.Contact.Email)
	}
}

func TestGetPageDataEmptySectionsFails(t *testing.T) {
	uc := NewGetPageData(pageFixtureRepo())

	_, err := uc.Execute(context.Background(), GetPageDataInput{Slug: "galerie"})

	var empty domain.EmptySectionsError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptySectionsError, got %v", err)
	}
	if empty.PageTitle != "Galerie" {
		t.Errorf("error names %q, want Galerie", empty.PageTitle)
	}
}

func TestGetPageDataMissingRequiredDocument(t *testing.T) {
	repo := pageFixtureRepo()
	repo.logo = nil

	uc := NewGetPageData(repo)

	_, err := uc.Execute(context.Background(), GetPageDataInput{})
	if err == nil {
		t.Fatal("expected error when a required document is missing")
	}

	var nf domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if nf.Entity != "site_logo" {
		t.Errorf("entity = %q, want site_logo", nf.Entity)
	}
}

func TestGetPageDataUnknownSlug(t *testing.T) {
	uc := NewGetPageData(pageFixtureRepo())

	_, err := uc.Execute(context.Background(), GetPageDataInput{Slug: "nope"})

	var nf domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Entity != "page" {
		t.Errorf("entity = %q, want page", nf.Entity)
	}
}
