package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/frizeriacentrala/site-api/internal/content"
)

func TestMetaInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	client := content.NewClient(nil, "production", "v1", "https://cdn.frizeriacentrala.ro")
	h := NewMetaHandler(client)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/meta", nil)

	h.Info(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Dataset    string `json:"dataset"`
		APIVersion string `json:"api_version"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Dataset != "production" {
		t.Errorf("dataset = %q", resp.Dataset)
	}
	if resp.APIVersion != "v1" {
		t.Errorf("api_version = %q", resp.APIVersion)
	}
}
