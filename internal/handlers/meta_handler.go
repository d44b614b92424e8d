package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frizeriacentrala/site-api/internal/content"
)

////////////////////////////////////////////////////////
// META
////////////////////////////////////////////////////////

// MetaHandler reports the content identity this process serves. Deployed
// frontends call it to verify they talk to the dataset and API version
// they were built against.
type MetaHandler struct {
	client *content.Client
}

func NewMetaHandler(client *content.Client) *MetaHandler {
	return &MetaHandler{client: client}
}

func (h *MetaHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"dataset":     h.client.Dataset(),
		"api_version": h.client.APIVersion(),
	})
}
