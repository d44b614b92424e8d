package content

import (
	"context"
	"strconv"

	domain "github.com/frizeriacentrala/site-api/internal/domain/content"
	"github.com/frizeriacentrala/site-api/internal/httperr"
	"github.com/frizeriacentrala/site-api/internal/models"
)

const (
	defaultGalleryLimit = 12
	maxGalleryLimit     = 100
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type ListGalleryInput struct {
	// Offset window, [Start, End).
	Start *int
	End   *int

	// Cursor paging. Cursor is the opaque value from a previous response.
	Limit  int
	Cursor string
}

type ListGalleryOutput struct {
	Items      []models.GalleryImage `json:"items"`
	TotalCount int64                 `json:"total_count"`
	NextCursor *string               `json:"next_cursor"`
}

// ======================================================
// USE CASE
// ======================================================

type ListGallery struct {
	repo domain.Repository
}

func NewListGallery(repo domain.Repository) *ListGallery {
	return &ListGallery{repo: repo}
}

func (uc *ListGallery) Execute(
	ctx context.Context,
	in ListGalleryInput,
) (*ListGalleryOutput, error) {

	offset, limit, err := resolveWindow(in)
	if err != nil {
		return nil, err
	}

	items, total, err := uc.repo.ListGalleryImages(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	out := &ListGalleryOutput{
		Items:      items,
		TotalCount: total,
	}

	// NextCursor is set iff more items remain past this window.
	if next := int64(offset + len(items)); next < total {
		cursor := strconv.FormatInt(next, 10)
		out.NextCursor = &cursor
	}

	return out, nil
}

func resolveWindow(in ListGalleryInput) (offset int, limit int, err error) {
	if in.Start != nil && in.End != nil {
		if *in.Start < 0 || *in.End <= *in.Start {
			return 0, 0, httperr.ErrBusiness("invalid_range")
		}
		limit = *in.End - *in.Start
		if limit > maxGalleryLimit {
			limit = maxGalleryLimit
		}
		return *in.Start, limit, nil
	}

	limit = in.Limit
	if limit <= 0 {
		limit = defaultGalleryLimit
	}
	if limit > maxGalleryLimit {
		limit = maxGalleryLimit
	}

	if in.Cursor != "" {
		offset, err = strconv.Atoi(in.Cursor)
		if err != nil || offset < 0 {
			return 0, 0, httperr.ErrBusiness("invalid_cursor")
		}
	}

	return offset, limit, nil
}
