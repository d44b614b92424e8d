package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/frizeriacentrala/site-api/internal/audit"
	domain "github.com/frizeriacentrala/site-api/internal/domain/content"
	"github.com/frizeriacentrala/site-api/internal/httperr"
	"github.com/frizeriacentrala/site-api/internal/middleware"
	"github.com/frizeriacentrala/site-api/internal/models"
	"github.com/frizeriacentrala/site-api/internal/schema"
)

////////////////////////////////////////////////////////
// STUDIO (AUTHORING)
////////////////////////////////////////////////////////

// StudioHandler is the write surface behind the studio auth. Every write
// runs the schema rules first; a failing rule blocks the write with
// field-level messages and nothing is stored.
type StudioHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewStudioHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *StudioHandler {
	return &StudioHandler{
		db:    db,
		audit: dispatcher,
	}
}

// --------- Singletons ---------

func (h *StudioHandler) UpsertSettings(c *gin.Context) {
	var doc models.SiteSettings
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date invalide.")
		return
	}
	if doc.DocID == "" {
		doc.DocID = "siteSettings"
	}

	if err := schema.ValidateSiteSettings(&doc); err != nil {
		writeSchemaError(c, err)
		return
	}

	if err := h.upsertByDocID(&doc); err != nil {
		httperr.Internal(c, "failed_to_save_document", "Documentul nu a putut fi salvat.")
		return
	}

	h.dispatch(c, "document_saved", "site_settings", doc.DocID)
	c.JSON(http.StatusOK, doc)
}

func (h *StudioHandler) UpsertLogo(c *gin.Context) {
	var doc models.SiteLogo
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date invalide.")
		return
	}
	if doc.DocID == "" {
		doc.DocID = "siteLogo"
	}

	if err := schema.ValidateSiteLogo(&doc); err != nil {
		writeSchemaError(c, err)
		return
	}

	if err := h.upsertByDocID(&doc); err != nil {
		httperr.Internal(c, "failed_to_save_document", "Documentul nu a putut fi salvat.")
		return
	}

	h.dispatch(c, "document_saved", "site_logo", doc.DocID)
	c.JSON(http.StatusOK, doc)
}

func (h *StudioHandler) UpsertLocation(c *gin.Context) {
	var doc models.ShopLocation
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date invalide.")
		return
	}
	if doc.DocID == "" {
		doc.DocID = "shopLocation"
	}

	if err := schema.ValidateShopLocation(&doc); err != nil {
		writeSchemaError(c, err)
		return
	}

	if err := h.upsertByDocID(&doc); err != nil {
		httperr.Internal(c, "failed_to_save_document", "Documentul nu a putut fi salvat.")
		return
	}

	h.dispatch(c, "document_saved", "shop_location", doc.DocID)
	c.JSON(http.StatusOK, doc)
}

// SectionTypes lists the section vocabulary the page editor can offer.
func (h *StudioHandler) SectionTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": domain.SectionTypes()})
}

// --------- Pages ---------

// ListPages shows drafts and published documents alike; the studio needs
// both.
func (h *StudioHandler) ListPages(c *gin.Context) {
	var pages []models.Page
	if err := h.db.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("sort_order ASC").
		Find(&pages).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pages", "Paginile nu au putut fi listate.")
		return
	}

	c.JSON(http.StatusOK, pages)
}

// upsertPageRequest separates the publication flag from the page body:
// an absent "published" keeps the stored state instead of decaying to
// the zero value.
type upsertPageRequest struct {
	models.Page
	Published *bool `json:"published"`
}

func (h *StudioHandler) UpsertPage(c *gin.Context) {
	var body upsertPageRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date invalide.")
		return
	}
	req := body.Page
	if req.DocID == "" {
		httperr.BadRequest(c, "missing_doc_id", "Documentul nu are identificator.")
		return
	}

	if err := schema.ValidatePage(c.Request.Context(), h.db, &req); err != nil {
		var ve *schema.ValidationError
		if errors.As(err, &ve) {
			writeSchemaError(c, ve)
			return
		}
		httperr.Internal(c, "failed_to_validate_page", "Pagina nu a putut fi validată.")
		return
	}

	sections := req.Sections
	req.Sections = nil

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Page
		err := tx.Where("doc_id = ?", req.DocID).First(&existing).Error

		switch {
		case err == nil:
			req.ID = existing.ID
			req.CreatedAt = existing.CreatedAt
			req.Published = resolvePublished(body.Published, &existing)
			if err := tx.Save(&req).Error; err != nil {
				return err
			}
			if err := tx.Where("page_id = ?", req.ID).
				Delete(&models.Section{}).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			req.Published = resolvePublished(body.Published, nil)
			if err := tx.Create(&req).Error; err != nil {
				return err
			}
		default:
			return err
		}

		for i := range sections {
			sections[i].ID = 0
			sections[i].PageID = req.ID
			sections[i].SortOrder = i
		}
		if len(sections) > 0 {
			if err := tx.Create(&sections).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_page", "Pagina nu a putut fi salvată.")
		return
	}

	req.Sections = sections

	h.dispatch(c, "page_saved", "page", req.DocID)
	c.JSON(http.StatusOK, req)
}

// PublishPage promotes a draft onto its published counterpart. The draft
// row disappears; the published row takes over its content atomically.
func (h *StudioHandler) PublishPage(c *gin.Context) {
	canonical := models.CanonicalDocID(c.Param("docid"))
	draftID := models.DraftPrefix + canonical

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var draft models.Page
		if err := tx.
			Preload("Sections", func(db *gorm.DB) *gorm.DB {
				return db.Order("sort_order ASC")
			}).
			Where("doc_id = ?", draftID).
			First(&draft).Error; err != nil {
			return err
		}

		if err := tx.Where("doc_id = ?", canonical).
			Delete(&models.Page{}).Error; err != nil {
			return err
		}

		published := draft
		published.ID = 0
		published.DocID = canonical
		published.Sections = make([]models.Section, len(draft.Sections))
		for i, s := range draft.Sections {
			s.ID = 0
			s.PageID = 0
			published.Sections[i] = s
		}

		if err := tx.Create(&published).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", draft.ID).Delete(&models.Page{}).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "draft_not_found", "Nu există o ciornă pentru această pagină.")
			return
		}
		httperr.Internal(c, "failed_to_publish_page", "Pagina nu a putut fi publicată.")
		return
	}

	h.dispatch(c, "page_published", "page", canonical)
	c.JSON(http.StatusOK, gin.H{"published": canonical})
}

func (h *StudioHandler) DeletePage(c *gin.Context) {
	docID := c.Param("docid")

	res := h.db.Where("doc_id = ?", docID).Delete(&models.Page{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_page", "Pagina nu a putut fi ștearsă.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "page_not_found", "Pagina nu există.")
		return
	}

	h.dispatch(c, "page_deleted", "page", docID)
	c.Status(http.StatusNoContent)
}

// --------- Collections ---------

func (h *StudioHandler) UpsertService(c *gin.Context) {
	var doc models.Service
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date invalide.")
		return
	}
	if doc.DocID == "" {
		doc.DocID = newDocID("service")
	}

	if err := schema.ValidateService(&doc); err != nil {
		writeSchemaError(c, err)
		return
	}

	if err := h.upsertByDocID(&doc); err != nil {
		httperr.Internal(c, "failed_to_save_document", "Documentul nu a putut fi salvat.")
		return
	}

	h.dispatch(c, "document_saved", "service", doc.DocID)
	c.JSON(http.StatusOK, doc)
}

func (h *StudioHandler) DeleteService(c *gin.Context) {
	h.deleteByDocID(c, &models.Service{}, "service")
}

func (h *StudioHandler) UpsertFaq(c *gin.Context) {
	var doc models.Faq
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date invalide.")
		return
	}
	if doc.DocID == "" {
		doc.DocID = newDocID("faq")
	}

	if err := schema.ValidateFaq(&doc); err != nil {
		writeSchemaError(c, err)
		return
	}

	if err := h.upsertByDocID(&doc); err != nil {
		httperr.Internal(c, "failed_to_save_document", "Documentul nu a putut fi salvat.")
		return
	}

	h.dispatch(c, "document_saved", "faq", doc.DocID)
	c.JSON(http.StatusOK, doc)
}

func (h *StudioHandler) DeleteFaq(c *gin.Context) {
	h.deleteByDocID(c, &models.Faq{}, "faq")
}

func (h *StudioHandler) UpsertBarber(c *gin.Context) {
	var doc models.Barber
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date invalide.")
		return
	}
	if doc.DocID == "" {
		doc.DocID = newDocID("barber")
	}

	if err := schema.ValidateBarber(&doc); err != nil {
		writeSchemaError(c, err)
		return
	}

	if err := h.upsertByDocID(&doc); err != nil {
		httperr.Internal(c, "failed_to_save_document", "Documentul nu a putut fi salvat.")
		return
	}

	h.dispatch(c, "document_saved", "barber", doc.DocID)
	c.JSON(http.StatusOK, doc)
}

func (h *StudioHandler) DeleteBarber(c *gin.Context) {
	h.deleteByDocID(c, &models.Barber{}, "barber")
}

func (h *StudioHandler) CreateGalleryImage(c *gin.Context) {
	var doc models.GalleryImage
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date invalide.")
		return
	}
	if doc.DocID == "" {
		doc.DocID = newDocID("galleryImage")
	}

	if err := schema.ValidateGalleryImage(&doc); err != nil {
		writeSchemaError(c, err)
		return
	}

	if err := h.db.Create(&doc).Error; err != nil {
		httperr.Internal(c, "failed_to_save_document", "Documentul nu a putut fi salvat.")
		return
	}

	h.dispatch(c, "document_saved", "gallery_image", doc.DocID)
	c.JSON(http.StatusCreated, doc)
}

func (h *StudioHandler) DeleteGalleryImage(c *gin.Context) {
	h.deleteByDocID(c, &models.GalleryImage{}, "gallery_image")
}

// --------- Helpers ---------

// upsertByDocID writes a document keyed by its doc_id, overwriting the
// previous revision if one exists.
func (h *StudioHandler) upsertByDocID(doc any) error {
	return h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "doc_id"}},
		UpdateAll: true,
	}).Create(doc).Error
}

func (h *StudioHandler) deleteByDocID(c *gin.Context, model any, entity string) {
	docID := c.Param("docid")

	res := h.db.Where("doc_id = ?", docID).Delete(model)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_document", "Documentul nu a putut fi șters.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "document_not_found", "Documentul nu există.")
		return
	}

	h.dispatch(c, "document_deleted", entity, docID)
	c.Status(http.StatusNoContent)
}

func (h *StudioHandler) dispatch(c *gin.Context, action, entity, entityID string) {
	h.audit.Dispatch(audit.Event{
		UserID:   studioUserID(c),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	})
}

func writeSchemaError(c *gin.Context, err error) {
	var ve *schema.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation_failed",
			"errors": ve.Errors,
		})
		return
	}
	httperr.BadRequest(c, "validation_failed", err.Error())
}

func studioUserID(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

// resolvePublished keeps the stored publication state when the request
// omits the field. A fresh page starts published.
func resolvePublished(requested *bool, existing *models.Page) bool {
	if requested != nil {
		return *requested
	}
	if existing != nil {
		return existing.Published
	}
	return true
}

func newDocID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
