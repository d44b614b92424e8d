package content

import (
	"context"

	"golang.org/x/sync/errgroup"

	domain "github.com/frizeriacentrala/site-api/internal/domain/content"
	"github.com/frizeriacentrala/site-api/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type GetPageDataInput struct {
	// Slug selects a page by path. Empty slug means the index page.
	Slug    string
	IsIndex bool
}

type PageData struct {
	Page     *models.Page              `json:"page"`
	Sections map[string]models.Section `json:"sections"`

	Settings *models.SiteSettings `json:"settings"`
	Logo     *models.SiteLogo     `json:"logo"`
	Location *models.ShopLocation `json:"location"`
	Contact  domain.ContactInfo   `json:"contact"`
	Routes   []domain.Route       `json:"routes"`
}

// ======================================================
// USE CASE
// ======================================================

type GetPageData struct {
	repo domain.Repository
}

func NewGetPageData(repo domain.Repository) *GetPageData {
	return &GetPageData{repo: repo}
}

// Execute resolves the page plus the documents every page needs. The
// fetches are independent, so they run concurrently and are awaited
// jointly; the set is all-or-nothing.
func (uc *GetPageData) Execute(
	ctx context.Context,
	in GetPageDataInput,
) (*PageData, error) {

	var data PageData

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if in.IsIndex || in.Slug == "" {
			data.Page, err = uc.repo.GetIndexPage(gctx)
		} else {
			data.Page, err = uc.repo.GetPageBySlug(gctx, in.Slug)
		}
		return err
	})

	g.Go(func() error {
		var err error
		data.Settings, err = uc.repo.GetSiteSettings(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		data.Logo, err = uc.repo.GetSiteLogo(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		data.Location, err = uc.repo.GetShopLocation(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		data.Routes, err = uc.repo.ListRoutes(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sections, err := domain.FoldSections(data.Page)
	if err != nil {
		return nil, err
	}
	data.Sections = sections

	data.Contact = domain.ResolveContact(data.Location, data.Settings)

	return &data, nil
}
