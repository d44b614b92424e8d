package content

import (
	"context"

	"github.com/frizeriacentrala/site-api/internal/models"
)

// Route is the navigation projection of a page.
type Route struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

type Repository interface {
	// -------- Singletons --------
	GetSiteSettings(ctx context.Context) (*models.SiteSettings, error)

	GetSiteLogo(ctx context.Context) (*models.SiteLogo, error)

	GetShopLocation(ctx context.Context) (*models.ShopLocation, error)

	// -------- Pages --------
	GetPageBySlug(
		ctx context.Context,
		slug string,
	) (*models.Page, error)

	GetIndexPage(ctx context.Context) (*models.Page, error)

	ListRoutes(ctx context.Context) ([]Route, error)

	// -------- Collections --------
	ListGalleryImages(
		ctx context.Context,
		offset int,
		limit int,
	) ([]models.GalleryImage, int64, error)

	ListServices(ctx context.Context) ([]models.Service, error)

	ListFaqs(ctx context.Context) ([]models.Faq, error)

	ListBarbers(ctx context.Context) ([]models.Barber, error)
}
