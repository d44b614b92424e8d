package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frizeriacentrala/site-api/internal/audit"
	"github.com/frizeriacentrala/site-api/internal/content"
	"github.com/frizeriacentrala/site-api/internal/httperr"
	"github.com/frizeriacentrala/site-api/internal/images"
	"github.com/frizeriacentrala/site-api/internal/models"
	"github.com/frizeriacentrala/site-api/internal/storage"
)

const maxUploadBytes = 10 << 20

////////////////////////////////////////////////////////
// ASSET UPLOAD
////////////////////////////////////////////////////////

type AssetHandler struct {
	store     *storage.AssetStore
	assetBase string
	audit     *audit.Dispatcher
}

func NewAssetHandler(
	store *storage.AssetStore,
	assetBase string,
	dispatcher *audit.Dispatcher,
) *AssetHandler {
	return &AssetHandler{
		store:     store,
		assetBase: assetBase,
		audit:     dispatcher,
	}
}

// Upload takes a multipart image, normalizes it to bounded WebP and puts
// it in the asset bucket. The response carries the image reference the
// studio stores on documents.
func (h *AssetHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Fișierul lipsește.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Fișierul este prea mare.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Fișierul nu a putut fi citit.")
		return
	}
	defer file.Close()

	processed, err := images.ToWebP(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Fișierul nu este o imagine validă.")
		return
	}

	key := h.store.NewObjectKey(".webp")

	if err := h.store.Upload(
		c.Request.Context(),
		key,
		bytes.NewReader(processed.Data),
		"image/webp",
	); err != nil {
		httperr.Internal(c, "failed_to_upload_asset", "Imaginea nu a putut fi încărcată.")
		return
	}

	img := models.Image{
		Key:    key,
		Width:  processed.Width,
		Height: processed.Height,
	}
	img.URL = content.AssetURL(h.assetBase, img, nil)

	h.audit.Dispatch(audit.Event{
		UserID:   studioUserID(c),
		Action:   "asset_uploaded",
		Entity:   "asset",
		EntityID: key,
	})

	c.JSON(http.StatusCreated, img)
}
