package content

import (
	"context"
	"errors"
	"testing"

	"github.com/frizeriacentrala/site-api/internal/httperr"
	"github.com/frizeriacentrala/site-api/internal/mailer"
	"github.com/frizeriacentrala/site-api/internal/schema"
)

type fakeSender struct {
	sent []mailer.ContactMessage
	err  error
}

func (f *fakeSender) SendContact(ctx context.Context, m mailer.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

type fakeLimiter struct {
	allowed bool
	calls   int
}

func (f *fakeLimiter) Allow(ctx context.Context, key string) (bool, error) {
	f.calls++
	return f.allowed, nil
}

func TestSendContactBuildsAndSends(t *testing.T) {
	sender := &fakeSender{}
	uc := NewSendContact(sender, nil)

	err := uc.Execute(context.Background(), SendContactInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Salut",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.sent))
	}

	msg := sender.sent[0]
	if msg.Subject != "Mesaj nou de la Ana" {
		t.Errorf("subject = %q", msg.Subject)
	}
	if msg.ReplyToAddr != "ana@example.com" {
		t.Errorf("reply-to = %q", msg.ReplyToAddr)
	}
}

func TestSendContactInvalidEmailNeverSends(t *testing.T) {
	sender := &fakeSender{}
	uc := NewSendContact(sender, nil)

	err := uc.Execute(context.Background(), SendContactInput{
		Name:    "Ana",
		Email:   "not-an-email",
		Message: "Salut",
	})

	var ve *schema.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Errors[0].Field != "email" {
		t.Errorf("failing field = %q, want email", ve.Errors[0].Field)
	}
	if len(sender.sent) != 0 {
		t.Error("invalid submission must not reach the sender")
	}
}

func TestSendContactMissingFields(t *testing.T) {
	sender := &fakeSender{}
	uc := NewSendContact(sender, nil)

	err := uc.Execute(context.Background(), SendContactInput{
		Name:    "  ",
		Email:   "ana@example.com",
		Message: "",
	})

	var ve *schema.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 2 {
		t.Errorf("got %d field errors, want 2 (name, message)", len(ve.Errors))
	}
	if len(sender.sent) != 0 {
		t.Error("invalid submission must not reach the sender")
	}
}

func TestSendContactRateLimited(t *testing.T) {
	sender := &fakeSender{}
	limiter := &fakeLimiter{allowed: false}
	uc := NewSendContact(sender, limiter)

	err := uc.Execute(context.Background(), SendContactInput{
		Name:      "Ana",
		Email:     "ana@example.com",
		Message:   "Salut",
		ClientKey: "203.0.113.7",
	})

	if !httperr.IsBusiness(err, "too_many_requests") {
		t.Fatalf("got %v, want too_many_requests", err)
	}
	if limiter.calls != 1 {
		t.Errorf("limiter calls = %d, want 1", limiter.calls)
	}
	if len(sender.sent) != 0 {
		t.Error("limited submission must not reach the sender")
	}
}

func TestSendContactPropagatesSendFailure(t *testing.T) {
	sendErr := errors.New("smtp unavailable")
	sender := &fakeSender{err: sendErr}
	uc := NewSendContact(sender, nil)

	err := uc.Execute(context.Background(), SendContactInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Salut",
	})

	if !errors.Is(err, sendErr) {
		t.Errorf("got %v, want the transport error propagated", err)
	}
}
