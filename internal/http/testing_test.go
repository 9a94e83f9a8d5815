package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	db     *database.Database
}

func setupTestServer(t *testing.T, configure ...func(*RouterConfig)) *testServer {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	authorRepo := authors.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)

	cfg := RouterConfig{
		Authors:     services.NewAuthorService(authorRepo, bookRepo),
		Books:       services.NewBookService(bookRepo, authorRepo),
		Database:    db,
		APIPrefix:   "/api",
		Development: true,
		Version:     "test",
	}
	for _, fn := range configure {
		fn(&cfg)
	}

	return &testServer{router: NewRouter(cfg), db: db}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type authorResponse struct {
	ID    uint           `json:"id"`
	Name  string         `json:"name"`
	Bio   string         `json:"bio"`
	Books []bookResponse `json:"books"`
}

type bookResponse struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	AuthorID      uint            `json:"authorId"`
	Description   string          `json:"description"`
	PublishedYear int             `json:"publishedYear"`
	Author        *authorResponse `json:"author"`
}

func (s *testServer) createAuthor(t *testing.T, name string) authorResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/authors", map[string]any{"name": name, "bio": name + " bio"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[authorResponse](t, w)
}

func (s *testServer) createBook(t *testing.T, authorID uint, title string, year int) bookResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/books", map[string]any{
		"title":         title,
		"authorId":      authorID,
		"description":   title + " description",
		"publishedYear": year,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[bookResponse](t, w)
}
