package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/frizeriacentrala/site-api/internal/content"
	domain "github.com/frizeriacentrala/site-api/internal/domain/content"
	"github.com/frizeriacentrala/site-api/internal/models"
)

type ContentGormRepository struct {
	client *content.Client
}

func NewContentGormRepository(client *content.Client) *ContentGormRepository {
	return &ContentGormRepository{client: client}
}

// --------------------------------------------------
// Singletons
// --------------------------------------------------

func (r *ContentGormRepository) GetSiteSettings(
	ctx context.Context,
) (*models.SiteSettings, error) {

	var settings models.SiteSettings
	if err := r.client.Singleton(ctx, "site_settings", &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *ContentGormRepository) GetSiteLogo(
	ctx context.Context,
) (*models.SiteLogo, error) {

	var logo models.SiteLogo
	if err := r.client.Singleton(ctx, "site_logo", &logo); err != nil {
		return nil, err
	}

	r.client.ResolveImage(&logo.Image)
	return &logo, nil
}

func (r *ContentGormRepository) GetShopLocation(
	ctx context.Context,
) (*models.ShopLocation, error) {

	var loc models.ShopLocation
	if err := r.client.Singleton(ctx, "shop_location", &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// --------------------------------------------------
// Pages
// --------------------------------------------------

func (r *ContentGormRepository) GetPageBySlug(
	ctx context.Context,
	slug string,
) (*models.Page, error) {

	return r.getPage(ctx, r.client.Published(ctx).Where("path = ?", slug))
}

func (r *ContentGormRepository) GetIndexPage(
	ctx context.Context,
) (*models.Page, error) {

	return r.getPage(ctx, r.client.Published(ctx).Where("is_index = ?", true))
}

func (r *ContentGormRepository) getPage(
	ctx context.Context,
	q *gorm.DB,
) (*models.Page, error) {

	var page models.Page
	if err := q.
		Where("published = ?", true).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&page).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound("page")
		}
		return nil, err
	}

	for i := range page.Sections {
		r.client.ResolveImage(&page.Sections[i].Image)
	}

	return &page, nil
}

func (r *ContentGormRepository) ListRoutes(
	ctx context.Context,
) ([]domain.Route, error) {

	var routes []domain.Route
	if err := r.client.Published(ctx).
		Model(&models.Page{}).
		Where("published = ?", true).
		Order("sort_order ASC").
		Select("title", "path").
		Find(&routes).Error; err != nil {
		return nil, err
	}

	return routes, nil
}

// --------------------------------------------------
// Collections
// --------------------------------------------------

func (r *ContentGormRepository) ListGalleryImages(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.GalleryImage, int64, error) {

	var total int64
	if err := r.client.Published(ctx).
		Model(&models.GalleryImage{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var images []models.GalleryImage
	if err := r.client.Published(ctx).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&images).Error; err != nil {
		return nil, 0, err
	}

	for i := range images {
		r.client.ResolveImage(&images[i].Image)
	}

	return images, total, nil
}

func (r *ContentGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.client.Published(ctx).
		Order("sort_order ASC NULLS LAST, id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}

	for i := range services {
		r.client.ResolveImage(&services[i].Image)
	}

	return services, nil
}

func (r *ContentGormRepository) ListFaqs(
	ctx context.Context,
) ([]models.Faq, error) {

	var faqs []models.Faq
	if err := r.client.Published(ctx).
		Order("id ASC").
		Find(&faqs).Error; err != nil {
		return nil, err
	}

	return faqs, nil
}

func (r *ContentGormRepository) ListBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.client.Published(ctx).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}

	for i := range barbers {
		r.client.ResolveImage(&barbers[i].Image)
	}

	return barbers, nil
}
