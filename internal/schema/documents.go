package schema

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/frizeriacentrala/site-api/internal/domain/content"
	"github.com/frizeriacentrala/site-api/internal/models"
)

// --------- Per-document rules ---------

func ValidateSiteSettings(s *models.SiteSettings) error {
	var v ValidationError

	v.required("title", s.Title)
	v.maxLen("title", s.Title, 100)
	v.maxLen("description", s.Description, 300)
	v.emailFormat("email", s.Email)
	v.urlFormat("appointment_url", s.AppointmentURL)
	v.urlFormat("location_url", s.LocationURL)

	for i, link := range s.SocialLinks {
		v.required(fmt.Sprintf("social_links.%d.platform", i), link.Platform)
		v.urlFormat(fmt.Sprintf("social_links.%d.url", i), link.URL)
	}

	return v.or()
}

func ValidateSiteLogo(l *models.SiteLogo) error {
	var v ValidationError

	v.required("name", l.Name)
	v.required("image.key", l.Image.Key)
	v.required("image.alt", l.Image.Alt)

	return v.or()
}

func ValidateShopLocation(l *models.ShopLocation) error {
	var v ValidationError

	v.required("name", l.Name)
	v.required("street", l.Street)
	v.required("city", l.City)
	v.maxLen("zip", l.Zip, 20)
	v.emailFormat("email", l.Email)
	v.urlFormat("appointment_url", l.AppointmentURL)
	v.urlFormat("location_url", l.LocationURL)

	for i, link := range l.SocialLinks {
		v.urlFormat(fmt.Sprintf("social_links.%d.url", i), link.URL)
	}

	return v.or()
}

// PageSiblingCounter reports how many other pages hold a sort order,
// excluding the doc ids listed (the page's own identities).
type PageSiblingCounter func(ctx context.Context, sortOrder int, exclude []string) (int64, error)

// ValidatePage checks field rules, the section type enumeration and the
// cross-document rule: a page's order must be unique among sibling pages.
// The uniqueness check excludes the page's own draft/published
// counterpart, which shares its canonical identity.
func ValidatePage(ctx context.Context, db *gorm.DB, p *models.Page) error {
	return ValidatePageWith(ctx, p, func(ctx context.Context, sortOrder int, exclude []string) (int64, error) {
		var count int64
		err := db.WithContext(ctx).
			Model(&models.Page{}).
			Where("sort_order = ?", sortOrder).
			Where("doc_id NOT IN ?", exclude).
			Count(&count).Error
		return count, err
	})
}

func ValidatePageWith(ctx context.Context, p *models.Page, siblings PageSiblingCounter) error {
	var v ValidationError
	pageFieldRules(p, &v)

	count, err := siblings(ctx, p.SortOrder, pageIdentityIDs(p.DocID))
	if err != nil {
		return err
	}
	if count > 0 {
		v.add("order", "Există deja o pagină cu această ordine.")
	}

	return v.or()
}

func pageFieldRules(p *models.Page, v *ValidationError) {
	v.required("title", p.Title)
	v.maxLen("title", p.Title, 100)
	v.maxLen("path", p.Path, 100)

	if !p.IsIndex {
		v.required("path", p.Path)
	}

	if p.SortOrder < 0 {
		v.add("order", "Ordinea trebuie să fie zero sau pozitivă.")
	}

	seen := map[string]bool{}
	for i, s := range p.Sections {
		field := fmt.Sprintf("sections.%d.type", i)

		if !domain.ValidSectionType(s.Type) {
			v.add(field, "Tipul secțiunii nu este valid.")
			continue
		}
		if seen[s.Type] {
			v.add(field, "O pagină nu poate conține două secțiuni de același tip.")
		}
		seen[s.Type] = true
	}
}

// pageIdentityIDs lists both identities of one page: published and draft.
// Sibling queries exclude them so a page never conflicts with itself.
func pageIdentityIDs(docID string) []string {
	canonical := models.CanonicalDocID(docID)
	return []string{canonical, models.DraftPrefix + canonical}
}

func ValidateService(s *models.Service) error {
	var v ValidationError

	v.required("name", s.Name)
	v.maxLen("name", s.Name, 100)

	if s.Price < 0 {
		v.add("price", "Prețul trebuie să fie zero sau pozitiv.")
	}
	if s.DurationMin < 0 {
		v.add("duration_min", "Durata trebuie să fie zero sau pozitivă.")
	}
	if s.SortOrder != nil && *s.SortOrder < 0 {
		v.add("order", "Ordinea trebuie să fie zero sau pozitivă.")
	}

	return v.or()
}

func ValidateGalleryImage(g *models.GalleryImage) error {
	var v ValidationError

	v.required("image.key", g.Image.Key)
	v.required("image.alt", g.Image.Alt)

	return v.or()
}

func ValidateFaq(f *models.Faq) error {
	var v ValidationError

	v.required("question", f.Question)
	v.maxLen("question", f.Question, 300)

	if len(f.Answer) == 0 {
		v.add("answer", "Câmpul este obligatoriu.")
	}

	return v.or()
}

func ValidateBarber(b *models.Barber) error {
	var v ValidationError

	v.required("name", b.Name)
	v.required("image.key", b.Image.Key)

	return v.or()
}
