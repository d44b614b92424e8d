package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frizeriacentrala/site-api/internal/httperr"
	"github.com/frizeriacentrala/site-api/internal/schema"
	ucContent "github.com/frizeriacentrala/site-api/internal/usecase/content"
)

////////////////////////////////////////////////////////
// CONTACT FORM
////////////////////////////////////////////////////////

type ContactHandler struct {
	sendContact *ucContent.SendContact
}

func NewContactHandler(sendContact *ucContent.SendContact) *ContactHandler {
	return &ContactHandler{sendContact: sendContact}
}

type SendContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Send is the one side-effecting operation of the public API. Failures
// surface to the submitter; there is no automatic retry.
func (h *ContactHandler) Send(c *gin.Context) {
	var req SendContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date invalide.")
		return
	}

	err := h.sendContact.Execute(
		c.Request.Context(),
		ucContent.SendContactInput{
			Name:      req.Name,
			Email:     req.Email,
			Message:   req.Message,
			ClientKey: c.ClientIP(),
		},
	)

	if err != nil {
		var ve *schema.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "validation_failed",
				"errors": ve.Errors,
			})
			return
		}

		if httperr.IsBusiness(err, "too_many_requests") {
			httperr.TooManyRequests(c, "too_many_requests", "Prea multe mesaje. Încearcă mai târziu.")
			return
		}

		httperr.BadGateway(c, "email_failed", "Mesajul nu a putut fi trimis.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": true})
}
