package models

import "strings"

// DraftPrefix marks a document that is being edited in the studio but has
// not been published yet. A draft and its published counterpart share the
// same canonical identity.
const DraftPrefix = "drafts."

func IsDraftID(docID string) bool {
	return strings.HasPrefix(docID, DraftPrefix)
}

// CanonicalDocID strips the draft prefix so that a draft and its published
// counterpart compare as the same document.
func CanonicalDocID(docID string) string {
	return strings.TrimPrefix(docID, DraftPrefix)
}
