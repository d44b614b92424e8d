package content

import "github.com/frizeriacentrala/site-api/internal/models"

// ===============================
// Section Types
// ===============================

type SectionType string

const (
	SectionHero      SectionType = "hero"
	SectionSpotlight SectionType = "spotlight"
	SectionLocation  SectionType = "location"
	SectionServices  SectionType = "services"
	SectionAbout     SectionType = "about"
	SectionGallery   SectionType = "gallery"
	SectionFaq       SectionType = "faq"
	SectionForm      SectionType = "form"
)

var sectionTypes = []SectionType{
	SectionHero,
	SectionSpotlight,
	SectionLocation,
	SectionServices,
	SectionAbout,
	SectionGallery,
	SectionFaq,
	SectionForm,
}

func SectionTypes() []SectionType {
	return sectionTypes
}

func ValidSectionType(t string) bool {
	for _, st := range sectionTypes {
		if string(st) == t {
			return true
		}
	}
	return false
}

// ===============================
// Section Fold
// ===============================

// SectionDataKey builds the bucket name a page component destructures,
// e.g. "heroSectionData".
func SectionDataKey(t string) string {
	return t + "SectionData"
}

// FoldSections maps a page's ordered section list into named buckets keyed
// by SectionDataKey. A page without sections is a hard error carrying the
// page title. Duplicate types overwrite in authored order (last wins);
// authoring validation rejects duplicates, so the case cannot arise for
// studio-written content.
func FoldSections(page *models.Page) (map[string]models.Section, error) {
	if len(page.Sections) == 0 {
		return nil, EmptySectionsError{PageTitle: page.Title}
	}

	folded := make(map[string]models.Section, len(page.Sections))
	for _, s := range page.Sections {
		folded[SectionDataKey(s.Type)] = s
	}
	return folded, nil
}
