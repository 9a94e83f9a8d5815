package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	http_controllers "github.com/mrlokans/catalog/internal/http"
	"github.com/mrlokans/catalog/internal/schema"
	"github.com/mrlokans/catalog/internal/services"
)

func setupTestServer(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	authorRepo := authors.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Authors:   services.NewAuthorService(authorRepo, bookRepo),
		Books:     services.NewBookService(bookRepo, authorRepo),
		Database:  db,
		APIPrefix: "/api",
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return New(srv.URL+"/", WithTimeout(5*time.Second))
}

func ptr[T any](v T) *T { return &v }

func TestClient_AuthorLifecycle(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	created, err := c.Authors().Create(ctx, schema.CreateAuthorInput{Name: "Jiang Rong", Bio: "Chinese writer"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Jiang Rong", created.Name)

	list, err := c.Authors().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	updated, err := c.Authors().Update(ctx, created.ID, schema.UpdateAuthorInput{Bio: ptr("Author of Wolf Totem")})
	require.NoError(t, err)
	assert.Equal(t, "Jiang Rong", updated.Name)
	assert.Equal(t, "Author of Wolf Totem", updated.Bio)

	got, err := c.Authors().Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Author of Wolf Totem", got.Bio)

	require.NoError(t, c.Authors().Delete(ctx, created.ID))

	_, err = c.Authors().Get(ctx, created.ID)
	assert.True(t, IsNotFound(err))
}

func TestClient_BookLifecycle(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	author, err := c.Authors().Create(ctx, schema.CreateAuthorInput{Name: "Alex Haley", Bio: "American writer"})
	require.NoError(t, err)

	book, err := c.Books().Create(ctx, schema.CreateBookInput{
		Title:         "Roots",
		AuthorID:      author.ID,
		Description:   "The Saga of an American Family",
		PublishedYear: 1976,
	})
	require.NoError(t, err)
	require.NotNil(t, book.Author)
	assert.Equal(t, "Alex Haley", book.Author.Name)

	updated, err := c.Books().Update(ctx, book.ID, schema.UpdateBookInput{PublishedYear: ptr(1977)})
	require.NoError(t, err)
	assert.Equal(t, 1977, updated.PublishedYear)

	books, err := c.Books().List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)

	got, err := c.Books().Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Roots", got.Title)

	require.NoError(t, c.Books().Delete(ctx, book.ID))
	assert.True(t, IsNotFound(c.Books().Delete(ctx, book.ID)))
}

func TestClient_APIErrors(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		_, err := c.Books().Get(ctx, 999)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Not Found", apiErr.Kind)
		assert.Equal(t, "Book with ID 999 not found", apiErr.Message)
	})

	t.Run("unknown author", func(t *testing.T) {
		_, err := c.Books().Create(ctx, schema.CreateBookInput{
			Title:         "Orphan",
			AuthorID:      999,
			Description:   "No author",
			PublishedYear: 2000,
		})

		assert.True(t, IsValidation(err))
		assert.EqualError(t, err, "Validation Error (400): Author with ID 999 does not exist")
	})

	t.Run("shape validation", func(t *testing.T) {
		_, err := c.Authors().Create(ctx, schema.CreateAuthorInput{})

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Validation Error", apiErr.Kind)
		assert.Contains(t, apiErr.Message, "name")
	})
}

func TestClient_NonEnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Authors().List(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Bad Gateway", apiErr.Kind)
	assert.Equal(t, "upstream unavailable", apiErr.Message)
}

func TestWithAPIPrefix(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	_, err := New(srv.URL, WithAPIPrefix("v1/")).Books().List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/v1/books", gotPath)

	_, err = New(srv.URL, WithAPIPrefix("/")).Books().List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/books", gotPath)
}
