package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/frizeriacentrala/site-api/internal/domain/content"
	"github.com/frizeriacentrala/site-api/internal/httperr"
)

////////////////////////////////////////////////////////
// SITE DOCUMENTS (SINGLETONS)
////////////////////////////////////////////////////////

type SiteHandler struct {
	repo domain.Repository
}

func NewSiteHandler(repo domain.Repository) *SiteHandler {
	return &SiteHandler{repo: repo}
}

func (h *SiteHandler) GetSiteSettings(c *gin.Context) {
	settings, err := h.repo.GetSiteSettings(c.Request.Context())
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SiteHandler) GetSiteLogo(c *gin.Context) {
	logo, err := h.repo.GetSiteLogo(c.Request.Context())
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, logo)
}

// GetShopLocation returns the location document together with its
// effective contact block: location overrides where present, site
// defaults otherwise.
func (h *SiteHandler) GetShopLocation(c *gin.Context) {
	ctx := c.Request.Context()

	loc, err := h.repo.GetShopLocation(ctx)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	settings, err := h.repo.GetSiteSettings(ctx)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"location": loc,
		"contact":  domain.ResolveContact(loc, settings),
	})
}
