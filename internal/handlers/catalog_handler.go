package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/frizeriacentrala/site-api/internal/domain/content"
	"github.com/frizeriacentrala/site-api/internal/httperr"
	"github.com/frizeriacentrala/site-api/internal/httpresp"
)

////////////////////////////////////////////////////////
// SERVICES / FAQ / BARBERS
////////////////////////////////////////////////////////

type CatalogHandler struct {
	repo domain.Repository
}

func NewCatalogHandler(repo domain.Repository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *CatalogHandler) ListFaqs(c *gin.Context) {
	faqs, err := h.repo.ListFaqs(c.Request.Context())
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, faqs)
}

func (h *CatalogHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, barbers)
}
