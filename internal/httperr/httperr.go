package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/frizeriacentrala/site-api/internal/domain/content"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Entity  string `json:"entity,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

func BadGateway(c *gin.Context, code, message string) {
	Write(c, http.StatusBadGateway, code, message)
}

// WriteDomain maps a content domain error onto the public error surface.
// Lookups that found nothing report the entity type they were after;
// anything unexpected stays a generic internal failure.
func WriteDomain(c *gin.Context, err error) {
	var nf domain.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, HTTPError{
			Code:    "document_not_found",
			Message: "Documentul solicitat nu există.",
			Entity:  nf.Entity,
		})
		return
	}

	var empty domain.EmptySectionsError
	if errors.As(err, &empty) {
		Internal(c, "page_without_sections", empty.Error())
		return
	}

	Internal(c, "content_fetch_failed", "Conținutul nu a putut fi încărcat.")
}
