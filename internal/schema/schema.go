package schema

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// Authoring-time validation for content documents. These rules run when
// the studio writes a document; the public site never executes them. A
// failing rule blocks the write with a localized, field-level message.

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "document validation failed"
	}
	return fmt.Sprintf("%s: %s", e.Errors[0].Field, e.Errors[0].Message)
}

func (e *ValidationError) add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

func (e *ValidationError) or() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// --------- Field rules ---------

func (e *ValidationError) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.add(field, "Câmpul este obligatoriu.")
	}
}

func (e *ValidationError) maxLen(field, value string, max int) {
	if len([]rune(value)) > max {
		e.add(field, fmt.Sprintf("Maximum %d caractere.", max))
	}
}

func (e *ValidationError) urlFormat(field, value string) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		e.add(field, "Adresa URL nu este validă.")
	}
}

func (e *ValidationError) emailFormat(field, value string) {
	if value == "" {
		return
	}
	if !IsValidEmail(value) {
		e.add(field, "Adresa de email nu este validă.")
	}
}

func IsValidEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}
