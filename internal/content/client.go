package content

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/frizeriacentrala/site-api/internal/domain/content"
	"github.com/frizeriacentrala/site-api/internal/models"
)

// Client is the query handle the read side goes through. It pins the
// dataset identity chosen at startup and knows how to resolve asset URLs.
// It holds no cache; every call hits the store.
type Client struct {
	db         *gorm.DB
	dataset    string
	apiVersion string
	assetBase  string
}

func NewClient(db *gorm.DB, dataset, apiVersion, assetBase string) *Client {
	return &Client{
		db:         db,
		dataset:    dataset,
		apiVersion: apiVersion,
		assetBase:  assetBase,
	}
}

func (c *Client) Dataset() string {
	return c.dataset
}

func (c *Client) APIVersion() string {
	return c.apiVersion
}

// Published scopes a query to published documents. Drafts are only
// visible through the studio surface, which holds its own handle.
func (c *Client) Published(ctx context.Context) *gorm.DB {
	return c.db.WithContext(ctx).
		Where("doc_id NOT LIKE ?", models.DraftPrefix+"%")
}

// Singleton loads the one published document of an entity type into dest.
// Zero documents is a NotFoundError, more than one a MultipleResultsError;
// the two are deliberately distinct failure modes.
func (c *Client) Singleton(ctx context.Context, entity string, dest any) error {
	var count int64
	if err := c.Published(ctx).Model(dest).Count(&count).Error; err != nil {
		return err
	}

	switch {
	case count == 0:
		return domain.ErrNotFound(entity)
	case count > 1:
		return domain.MultipleResultsError{Entity: entity, Count: count}
	}

	if err := c.Published(ctx).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound(entity)
		}
		return err
	}

	return nil
}

// ResolveImage fills the public URL of an image reference in place.
// Images without a key are left untouched so optional content simply does
// not render.
func (c *Client) ResolveImage(img *models.Image) {
	if img == nil || img.IsZero() {
		return
	}
	img.URL = AssetURL(c.assetBase, *img, nil)
}
