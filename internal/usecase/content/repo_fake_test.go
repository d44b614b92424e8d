package content

import (
	"context"
	"fmt"

	domain "github.com/frizeriacentrala/site-api/internal/domain/content"
	"github.com/frizeriacentrala/site-api/internal/models"
)

// fakeRepo serves canned documents. Nil fields behave like missing
// documents.
type fakeRepo struct {
	settings *models.SiteSettings
	logo     *models.SiteLogo
	location *models.ShopLocation
	pages    []models.Page
	gallery  []models.GalleryImage
}

func (f *fakeRepo) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	if f.settings == nil {
		return nil, domain.ErrNotFound("site_settings")
	}
	return f.settings, nil
}

func (f *fakeRepo) GetSiteLogo(ctx context.Context) (*models.SiteLogo, error) {
	if f.logo == nil {
		return nil, domain.ErrNotFound("site_logo")
	}
	return f.logo, nil
}

func (f *fakeRepo) GetShopLocation(ctx context.Context) (*models.ShopLocation, error) {
	if f.location == nil {
		return nil, domain.ErrNotFound("shop_location")
	}
	return f.location, nil
}

func (f *fakeRepo) GetPageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	for i := range f.pages {
		if f.pages[i].Path == slug {
			return &f.pages[i], nil
		}
	}
	return nil, domain.ErrNotFound("page")
}

func (f *fakeRepo) GetIndexPage(ctx context.Context) (*models.Page, error) {
	for i := range f.pages {
		if f.pages[i].IsIndex {
			return &f.pages[i], nil
		}
	}
	return nil, domain.ErrNotFound("page")
}

func (f *fakeRepo) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	routes := make([]domain.Route, 0, len(f.pages))
	for _, p := range f.pages {
		routes = append(routes, domain.Route{Title: p.Title, Path: p.Path})
	}
	return routes, nil
}

func (f *fakeRepo) ListGalleryImages(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.GalleryImage, int64, error) {

	total := int64(len(f.gallery))
	if offset >= len(f.gallery) {
		return nil, total, nil
	}

	end := offset + limit
	if end > len(f.gallery) {
		end = len(f.gallery)
	}
	return f.gallery[offset:end], total, nil
}

func (f *fakeRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeRepo) ListFaqs(ctx context.Context) ([]models.Faq, error) {
	return nil, nil
}

func (f *fakeRepo) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	return nil, nil
}

func galleryOf(n int) []models.GalleryImage {
	images := make([]models.GalleryImage, n)
	for i := range images {
		images[i] = models.GalleryImage{
			DocID: fmt.Sprintf("galleryImage-%d", i),
			Image: models.Image{Key: fmt.Sprintf("production/images/%d.webp", i)},
		}
	}
	return images
}
