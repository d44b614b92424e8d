package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domain "github.com/frizeriacentrala/site-api/internal/domain/content"
	"github.com/frizeriacentrala/site-api/internal/models"
)

func TestResolvePublished(t *testing.T) {
	yes, no := true, false
	existing := &models.Page{Published: true}

	cases := []struct {
		name      string
		requested *bool
		existing  *models.Page
		want      bool
	}{
		{"explicit true", &yes, existing, true},
		{"explicit false", &no, existing, false},
		{"absent keeps stored state", nil, existing, true},
		{"absent keeps unpublished state", nil, &models.Page{Published: false}, false},
		{"absent on a new page defaults to published", nil, nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolvePublished(tc.requested, tc.existing); got != tc.want {
				t.Errorf("resolvePublished = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUpsertPageRequestOmittedPublished(t *testing.T) {
	var body upsertPageRequest
	if err := json.Unmarshal([]byte(`{"doc_id":"page-home","title":"Acasă"}`), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Published != nil {
		t.Errorf("omitted published decoded as %v, want nil", *body.Published)
	}

	if err := json.Unmarshal([]byte(`{"doc_id":"page-home","published":false}`), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Published == nil || *body.Published {
		t.Error("explicit published=false lost in decoding")
	}
}

func TestSectionTypesEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewStudioHandler(nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/section-types", nil)

	h.SectionTypes(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Types []domain.SectionType `json:"types"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Types) != len(domain.SectionTypes()) {
		t.Errorf("got %d types, want %d", len(resp.Types), len(domain.SectionTypes()))
	}
}
