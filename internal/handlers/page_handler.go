package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/frizeriacentrala/site-api/internal/domain/content"
	"github.com/frizeriacentrala/site-api/internal/httperr"
	"github.com/frizeriacentrala/site-api/internal/httpresp"
	ucContent "github.com/frizeriacentrala/site-api/internal/usecase/content"
)

////////////////////////////////////////////////////////
// PAGES / ROUTES
////////////////////////////////////////////////////////

type PageHandler struct {
	repo        domain.Repository
	getPageData *ucContent.GetPageData
}

func NewPageHandler(
	repo domain.Repository,
	getPageData *ucContent.GetPageData,
) *PageHandler {
	return &PageHandler{
		repo:        repo,
		getPageData: getPageData,
	}
}

// GetPageData serves everything a page render needs. Without a slug
// query parameter the lookup targets the page flagged as index.
func (h *PageHandler) GetPageData(c *gin.Context) {
	slug := strings.TrimSpace(c.Query("slug"))

	data, err := h.getPageData.Execute(
		c.Request.Context(),
		ucContent.GetPageDataInput{
			Slug:    slug,
			IsIndex: slug == "",
		},
	)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *PageHandler) GetRoutes(c *gin.Context) {
	routes, err := h.repo.ListRoutes(c.Request.Context())
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, routes)
}
