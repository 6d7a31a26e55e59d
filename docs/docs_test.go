package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocument(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var doc struct {
		Swagger     string                     `json:"swagger"`
		Info        struct{ Title string }     `json:"info"`
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("document is not valid JSON: %v", err)
	}
	if doc.Swagger != "2.0" || doc.Info.Title != "Blog API" {
		t.Fatalf("header: swagger=%q title=%q", doc.Swagger, doc.Info.Title)
	}

	for _, path := range []string{
		"/health",
		"/auth/register",
		"/auth/login",
		"/articles",
		"/articles/search",
		"/articles/{id}",
		"/articles/{id}/comments",
		"/comments/{id}",
		"/users",
		"/users/{id}",
	} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("path %s missing", path)
		}
	}
	for _, def := range []string{"handlers.RegisterRequest", "handlers.UserUpdateRequest", "models.Article"} {
		if _, ok := doc.Definitions[def]; !ok {
			t.Errorf("definition %s missing", def)
		}
	}
}
