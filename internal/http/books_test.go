package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooksAPI_Create(t *testing.T) {
	t.Run("creates book with author", func(t *testing.T) {
		s := setupTestServer(t)
		author := s.createAuthor(t, "Jiang Rong")

		w := s.do(t, http.MethodPost, "/api/books", map[string]any{
			"title":         "Wolf Totem",
			"authorId":      author.ID,
			"description":   "Wolf Totem is a novel by Jiang Rong, published in 2004.",
			"publishedYear": 2004,
		})

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		book := decode[bookResponse](t, w)
		assert.Equal(t, "Wolf Totem", book.Title)
		assert.Equal(t, author.ID, book.AuthorID)
		assert.Equal(t, 2004, book.PublishedYear)
		require.NotNil(t, book.Author)
		assert.Equal(t, "Jiang Rong", book.Author.Name)
	})

	t.Run("rejects unknown author", func(t *testing.T) {
		s := setupTestServer(t)

		w := s.do(t, http.MethodPost, "/api/books", map[string]any{
			"title":         "Orphan",
			"authorId":      999,
			"description":   "No author",
			"publishedYear": 2000,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[ErrorResponse](t, w)
		assert.Equal(t, "Validation Error", resp.Error)
		assert.Equal(t, "Author with ID 999 does not exist", resp.Message)
	})

	t.Run("rejects year out of range", func(t *testing.T) {
		s := setupTestServer(t)
		author := s.createAuthor(t, "Jiang Rong")

		w := s.do(t, http.MethodPost, "/api/books", map[string]any{
			"title":         "Ancient",
			"authorId":      author.ID,
			"description":   "Too old",
			"publishedYear": 999,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[ErrorResponse](t, w).Message, "publishedYear")
	})

	t.Run("rejects string author id", func(t *testing.T) {
		s := setupTestServer(t)

		w := s.do(t, http.MethodPost, "/api/books", `{"title":"T","authorId":"1","description":"D","publishedYear":2000}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[ErrorResponse](t, w).Message, "authorId")
	})
}

func TestBooksAPI_List(t *testing.T) {
	s := setupTestServer(t)
	author := s.createAuthor(t, "Alex Haley")
	older := s.createBook(t, author.ID, "Roots", 1976)
	newer := s.createBook(t, author.ID, "Queen", 1993)

	w := s.do(t, http.MethodGet, "/api/books", nil)

	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]bookResponse](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
	require.NotNil(t, list[0].Author)
	assert.Equal(t, "Alex Haley", list[0].Author.Name)
}

func TestBooksAPI_Get(t *testing.T) {
	s := setupTestServer(t)

	t.Run("returns 404 for unknown id", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/books/42", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book with ID 42 not found", decode[ErrorResponse](t, w).Message)
	})

	t.Run("returns 404 for out of range id", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/books/99999999999999999999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBooksAPI_Update(t *testing.T) {
	t.Run("moves book to another author", func(t *testing.T) {
		s := setupTestServer(t)
		first := s.createAuthor(t, "First")
		second := s.createAuthor(t, "Second")
		book := s.createBook(t, first.ID, "Book", 2000)

		w := s.do(t, http.MethodPut, "/api/books/"+formatID(book.ID), map[string]any{"authorId": second.ID})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		updated := decode[bookResponse](t, w)
		assert.Equal(t, second.ID, updated.AuthorID)
		assert.Equal(t, "Book", updated.Title)
	})

	t.Run("rejects unknown author", func(t *testing.T) {
		s := setupTestServer(t)
		author := s.createAuthor(t, "First")
		book := s.createBook(t, author.ID, "Book", 2000)

		w := s.do(t, http.MethodPut, "/api/books/"+formatID(book.ID), map[string]any{"authorId": 999})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Author with ID 999 does not exist", decode[ErrorResponse](t, w).Message)
	})

	t.Run("returns 404 for unknown book", func(t *testing.T) {
		s := setupTestServer(t)

		w := s.do(t, http.MethodPut, "/api/books/999", map[string]any{"title": "X"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBooksAPI_Delete(t *testing.T) {
	s := setupTestServer(t)
	author := s.createAuthor(t, "Author")
	book := s.createBook(t, author.ID, "Book", 2000)

	w := s.do(t, http.MethodDelete, "/api/books/"+formatID(book.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodDelete, "/api/books/"+formatID(book.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The author survives
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/authors/"+formatID(author.ID), nil).Code)
}
