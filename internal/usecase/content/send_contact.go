package content

import (
	"context"
	"strings"

	"github.com/frizeriacentrala/site-api/internal/httperr"
	"github.com/frizeriacentrala/site-api/internal/mailer"
	"github.com/frizeriacentrala/site-api/internal/schema"
)

// ======================================================
// INPUT
// ======================================================

type SendContactInput struct {
	Name    string
	Email   string
	Message string

	// ClientKey identifies the submitter for rate limiting (client IP).
	ClientKey string
}

// Sender delivers a built contact message. No retry contract: a failed
// send surfaces and the visitor may resubmit.
type Sender interface {
	SendContact(ctx context.Context, m mailer.ContactMessage) error
}

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// ======================================================
// USE CASE
// ======================================================

type SendContact struct {
	sender  Sender
	limiter Limiter
}

func NewSendContact(sender Sender, limiter Limiter) *SendContact {
	return &SendContact{
		sender:  sender,
		limiter: limiter,
	}
}

func (uc *SendContact) Execute(
	ctx context.Context,
	in SendContactInput,
) error {

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)

	var v schema.ValidationError
	if name == "" {
		v.Errors = append(v.Errors, schema.FieldError{
			Field: "name", Message: "Numele este obligatoriu.",
		})
	}
	if !schema.IsValidEmail(email) {
		v.Errors = append(v.Errors, schema.FieldError{
			Field: "email", Message: "Adresa de email nu este validă.",
		})
	}
	if message == "" {
		v.Errors = append(v.Errors, schema.FieldError{
			Field: "message", Message: "Mesajul este obligatoriu.",
		})
	}
	if len(v.Errors) > 0 {
		return &v
	}

	if uc.limiter != nil && in.ClientKey != "" {
		allowed, err := uc.limiter.Allow(ctx, "contact:"+in.ClientKey)
		if err == nil && !allowed {
			return httperr.ErrBusiness("too_many_requests")
		}
		// A limiter outage must not take the contact form down with it.
	}

	msg := mailer.BuildContactMessage(name, email, message)

	return uc.sender.SendContact(ctx, msg)
}
