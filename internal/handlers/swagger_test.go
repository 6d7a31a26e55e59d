package handlers

import (
	"net/http"
	"strings"
	"testing"

	_ "blogapi/docs"
	"blogapi/internal/service"
)

func TestSwaggerDocServed(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: newMockAuth()})

	w := do(r, http.MethodGet, "/swagger/doc.json", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("doc.json: got %d", w.Code)
	}
	for _, want := range []string{`"/articles/{id}"`, `"BearerAuth"`, `"Blog API"`} {
		if !strings.Contains(w.Body.String(), want) {
			t.Fatalf("doc.json missing %s", want)
		}
	}
}
