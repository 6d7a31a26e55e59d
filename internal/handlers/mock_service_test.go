package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogapi/internal/models"
	"blogapi/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  int
	registerErr error
	loginToken  string
	loginUser   models.User
	loginErr    error
	// tokens maps accepted bearer tokens to principals.
	tokens map[string]models.Principal

	lastRegister   service.RegisterInput
	lastLoginEmail string
	lastParseToken string
	registerCalls  int
}

func (m *mockAuth) Register(_ context.Context, in service.RegisterInput) (int, error) {
	m.registerCalls++
	m.lastRegister = in
	return m.registerID, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, _ string) (string, models.User, error) {
	m.lastLoginEmail = email
	return m.loginToken, m.loginUser, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (models.Principal, error) {
	m.lastParseToken = token
	p, ok := m.tokens[token]
	if !ok {
		return models.Principal{}, service.ErrInvalidToken
	}
	return p, nil
}

func (m *mockAuth) EnsureAdmin(context.Context, service.RegisterInput) (bool, error) {
	return false, nil
}

type mockArticles struct {
	list    []models.Article
	article models.Article
	err     error

	lastPrincipal models.Principal
	lastID        int
	lastInput     service.ArticleInput
	lastSearch    string
	calls         int
}

func (m *mockArticles) List(context.Context) ([]models.Article, error) {
	m.calls++
	return m.list, m.err
}

func (m *mockArticles) Search(_ context.Context, title string) ([]models.Article, error) {
	m.calls++
	m.lastSearch = title
	return m.list, m.err
}

func (m *mockArticles) Get(_ context.Context, id int) (models.Article, error) {
	m.calls++
	m.lastID = id
	return m.article, m.err
}

func (m *mockArticles) Create(_ context.Context, p models.Principal, in service.ArticleInput) (models.Article, error) {
	m.calls++
	m.lastPrincipal, m.lastInput = p, in
	return m.article, m.err
}

func (m *mockArticles) Update(_ context.Context, p models.Principal, id int, in service.ArticleInput) (models.Article, error) {
	m.calls++
	m.lastPrincipal, m.lastID, m.lastInput = p, id, in
	return m.article, m.err
}

func (m *mockArticles) Delete(_ context.Context, p models.Principal, id int) error {
	m.calls++
	m.lastPrincipal, m.lastID = p, id
	return m.err
}

type mockComments struct {
	list    []models.Comment
	comment models.Comment
	err     error

	lastPrincipal models.Principal
	lastID        int
	lastContent   string
	calls         int
}

func (m *mockComments) ListByArticle(_ context.Context, articleID int) ([]models.Comment, error) {
	m.calls++
	m.lastID = articleID
	return m.list, m.err
}

func (m *mockComments) Get(_ context.Context, id int) (models.Comment, error) {
	m.calls++
	m.lastID = id
	return m.comment, m.err
}

func (m *mockComments) Create(_ context.Context, p models.Principal, articleID int, content string) (models.Comment, error) {
	m.calls++
	m.lastPrincipal, m.lastID, m.lastContent = p, articleID, content
	return m.comment, m.err
}

func (m *mockComments) Delete(_ context.Context, p models.Principal, id int) error {
	m.calls++
	m.lastPrincipal, m.lastID = p, id
	return m.err
}

type mockUsers struct {
	list []models.User
	user models.User
	err  error

	lastPrincipal models.Principal
	lastID        int
	lastInput     service.UserUpdateInput
	calls         int
}

func (m *mockUsers) List(_ context.Context, p models.Principal) ([]models.User, error) {
	m.calls++
	m.lastPrincipal = p
	return m.list, m.err
}

func (m *mockUsers) Get(_ context.Context, p models.Principal, id int) (models.User, error) {
	m.calls++
	m.lastPrincipal, m.lastID = p, id
	return m.user, m.err
}

func (m *mockUsers) Update(_ context.Context, p models.Principal, id int, in service.UserUpdateInput) (models.User, error) {
	m.calls++
	m.lastPrincipal, m.lastID, m.lastInput = p, id, in
	return m.user, m.err
}

func (m *mockUsers) Delete(_ context.Context, p models.Principal, id int) error {
	m.calls++
	m.lastPrincipal, m.lastID = p, id
	return m.err
}

// ---- Shared Test Helpers ----

var (
	adminPrincipal = models.Principal{ID: 1, Role: models.RoleAdmin}
	userPrincipal  = models.Principal{ID: 2, Role: models.RoleUser}
)

// newMockAuth accepts "admin-token" and "user-token".
func newMockAuth() *mockAuth {
	return &mockAuth{tokens: map[string]models.Principal{
		"admin-token": adminPrincipal,
		"user-token":  userPrincipal,
	}}
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// do sends a request with an optional JSON body and bearer token.
func do(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var out struct {
		Error string `json:"error"`
	}
	decode(t, w, &out)
	return out.Error
}
