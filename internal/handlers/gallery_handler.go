package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/frizeriacentrala/site-api/internal/httperr"
	"github.com/frizeriacentrala/site-api/internal/httpresp"
	ucContent "github.com/frizeriacentrala/site-api/internal/usecase/content"
)

////////////////////////////////////////////////////////
// GALLERY
////////////////////////////////////////////////////////

type GalleryHandler struct {
	listGallery *ucContent.ListGallery
}

func NewGalleryHandler(listGallery *ucContent.ListGallery) *GalleryHandler {
	return &GalleryHandler{listGallery: listGallery}
}

// List accepts either an offset window (?start=&end=) or cursor paging
// (?limit=&cursor=).
func (h *GalleryHandler) List(c *gin.Context) {
	var in ucContent.ListGalleryInput

	if start, ok := intQuery(c, "start"); ok {
		in.Start = &start
	}
	if end, ok := intQuery(c, "end"); ok {
		in.End = &end
	}
	if limit, ok := intQuery(c, "limit"); ok {
		in.Limit = limit
	}
	in.Cursor = strings.TrimSpace(c.Query("cursor"))

	if (in.Start == nil) != (in.End == nil) {
		httperr.BadRequest(c, "invalid_range", "Parametrii start și end merg împreună.")
		return
	}

	out, err := h.listGallery.Execute(c.Request.Context(), in)
	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, "Parametri de paginare invalizi.")
			return
		}
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.Page(c, out.Items, out.TotalCount, out.NextCursor)
}

func intQuery(c *gin.Context, name string) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
