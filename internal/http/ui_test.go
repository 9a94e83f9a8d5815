package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/demo"
	"github.com/mrlokans/catalog/internal/session"
)

func setupUIServer(t *testing.T, configure ...func(*RouterConfig)) *testServer {
	t.Helper()
	return setupTestServer(t, append([]func(*RouterConfig){func(cfg *RouterConfig) {
		cfg.UIEnabled = true
	}}, configure...)...)
}

func withSessions(t *testing.T) func(*RouterConfig) {
	return func(cfg *RouterConfig) {
		sqlDB, err := cfg.Database.DB.DB()
		require.NoError(t, err)
		sm, err := session.NewManager(sqlDB, config.Session{Lifetime: time.Hour})
		require.NoError(t, err)
		cfg.SessionManager = sm
	}
}

func (s *testServer) postForm(t *testing.T, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) get(t *testing.T, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestUIController_Home(t *testing.T) {
	s := setupUIServer(t)
	author := s.createAuthor(t, "Jiang Rong")
	s.createBook(t, author.ID, "Wolf Totem", 2004)

	w := s.get(t, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bookstore Catalog")
	assert.Contains(t, w.Body.String(), `<div class="value">1</div>`)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestUIController_Pages(t *testing.T) {
	s := setupUIServer(t)
	author := s.createAuthor(t, "Jiang Rong")
	book := s.createBook(t, author.ID, "Wolf Totem", 2004)

	tests := []struct {
		path     string
		contains string
	}{
		{"/ui/authors", "Jiang Rong"},
		{"/ui/authors/" + formatID(author.ID), "Wolf Totem"},
		{"/ui/authors/new", "New author"},
		{"/ui/authors/" + formatID(author.ID) + "/edit", `value="Jiang Rong"`},
		{"/ui/books", "Wolf Totem"},
		{"/ui/books/" + formatID(book.ID), "Jiang Rong"},
		{"/ui/books/new", "Jiang Rong"},
		{"/ui/books/" + formatID(book.ID) + "/edit", `value="2004"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := s.get(t, tt.path)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestUIController_BooksPageFiltersByAuthor(t *testing.T) {
	s := setupUIServer(t)
	jiang := s.createAuthor(t, "Jiang Rong")
	alex := s.createAuthor(t, "Alex Haley")
	s.createBook(t, jiang.ID, "Wolf Totem", 2004)
	s.createBook(t, alex.ID, "Roots", 1976)

	w := s.get(t, "/ui/books?authorId="+formatID(alex.ID))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Books by Alex Haley")
	assert.Contains(t, w.Body.String(), "Roots")
	assert.NotContains(t, w.Body.String(), "Wolf Totem")

	w = s.get(t, "/ui/books?authorId=999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUIController_NotFound(t *testing.T) {
	s := setupUIServer(t)

	w := s.get(t, "/ui/authors/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Author with ID 999 not found")

	w = s.get(t, "/ui/books/abc/edit")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Book with ID abc not found")
}

func TestUIController_NewBookPreselectsAuthor(t *testing.T) {
	s := setupUIServer(t)
	author := s.createAuthor(t, "Alex Haley")

	w := s.get(t, "/ui/books/new?authorId="+formatID(author.ID))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<option value="`+formatID(author.ID)+`" selected>Alex Haley</option>`)
}

func TestUIController_CreateAuthor(t *testing.T) {
	t.Run("redirects and flashes on success", func(t *testing.T) {
		s := setupUIServer(t, withSessions(t))

		w := s.postForm(t, "/ui/authors", url.Values{"name": {"Alex Haley"}, "bio": {"American writer"}})

		require.Equal(t, http.StatusSeeOther, w.Code)
		location := w.Header().Get("Location")
		assert.True(t, strings.HasPrefix(location, "/ui/authors/"), location)

		cookies := w.Result().Cookies()
		require.NotEmpty(t, cookies)

		page := s.get(t, location, cookies...)
		assert.Equal(t, http.StatusOK, page.Code)
		assert.Contains(t, page.Body.String(), "Author created")
		assert.Contains(t, page.Body.String(), "Alex Haley")

		// Flash is shown once
		again := s.get(t, location, cookies...)
		assert.NotContains(t, again.Body.String(), "Author created")
	})

	t.Run("re-renders form with field errors", func(t *testing.T) {
		s := setupUIServer(t)

		w := s.postForm(t, "/ui/authors", url.Values{"name": {""}, "bio": {"Kept bio"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Name is required")
		assert.Contains(t, w.Body.String(), "Kept bio")
	})
}

func TestUIController_UpdateAuthor(t *testing.T) {
	s := setupUIServer(t)
	author := s.createAuthor(t, "Jiang Rong")

	w := s.postForm(t, "/ui/authors/"+formatID(author.ID), url.Values{"name": {"Lü Jiamin"}, "bio": {"Pen name Jiang Rong"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/ui/authors/"+formatID(author.ID), w.Header().Get("Location"))

	updated := decode[authorResponse](t, s.do(t, http.MethodGet, "/api/authors/"+formatID(author.ID), nil))
	assert.Equal(t, "Lü Jiamin", updated.Name)
}

func TestUIController_CreateBook(t *testing.T) {
	t.Run("creates book", func(t *testing.T) {
		s := setupUIServer(t)
		author := s.createAuthor(t, "Alex Haley")

		w := s.postForm(t, "/ui/books", url.Values{
			"title":         {"Roots"},
			"authorId":      {formatID(author.ID)},
			"description":   {"The Saga of an American Family"},
			"publishedYear": {"1976"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/ui/books/"))
	})

	t.Run("reports unknown author", func(t *testing.T) {
		s := setupUIServer(t)

		w := s.postForm(t, "/ui/books", url.Values{
			"title":         {"Orphan"},
			"authorId":      {"999"},
			"description":   {"No author"},
			"publishedYear": {"2000"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Author with ID 999 does not exist")
	})

	t.Run("reports non-numeric year", func(t *testing.T) {
		s := setupUIServer(t)
		author := s.createAuthor(t, "Alex Haley")

		w := s.postForm(t, "/ui/books", url.Values{
			"title":         {"Roots"},
			"authorId":      {formatID(author.ID)},
			"description":   {"Saga"},
			"publishedYear": {"nineteen"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Published year must be an integer")
		assert.Contains(t, w.Body.String(), `value="nineteen"`)
	})
}

func TestUIController_Delete(t *testing.T) {
	s := setupUIServer(t)
	author := s.createAuthor(t, "Author")
	book := s.createBook(t, author.ID, "Book", 2000)

	w := s.postForm(t, "/ui/books/"+formatID(book.ID)+"/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/ui/books", w.Header().Get("Location"))

	w = s.postForm(t, "/ui/authors/"+formatID(author.ID)+"/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/ui/authors", w.Header().Get("Location"))

	assert.JSONEq(t, "[]", s.do(t, http.MethodGet, "/api/authors", nil).Body.String())
}

func TestUIController_CSRF(t *testing.T) {
	s := setupUIServer(t, func(cfg *RouterConfig) {
		cfg.CSRFKey = session.CSRFKey("test-secret")
	})

	t.Run("form carries token", func(t *testing.T) {
		w := s.get(t, "/ui/authors/new")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `name="`+session.CSRFFieldName+`"`)
	})

	t.Run("post without token is rejected", func(t *testing.T) {
		w := s.postForm(t, "/ui/authors", url.Values{"name": {"X"}, "bio": {"Y"}})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, "[]", s.do(t, http.MethodGet, "/api/authors", nil).Body.String())
	})

	t.Run("api is not CSRF protected", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/authors", map[string]any{"name": "X", "bio": "Y"})

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestDemoMode(t *testing.T) {
	s := setupUIServer(t, func(cfg *RouterConfig) {
		cfg.DemoMiddleware = demo.NewMiddleware(true, cfg.APIPrefix)
	})

	t.Run("api writes are refused with envelope", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/authors", map[string]any{"name": "X", "bio": "Y"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		resp := decode[ErrorResponse](t, w)
		assert.Equal(t, "Forbidden", resp.Error)
		assert.Equal(t, demo.BlockedMessage, resp.Message)
	})

	t.Run("ui writes are refused with text", func(t *testing.T) {
		w := s.postForm(t, "/ui/authors", url.Values{"name": {"X"}, "bio": {"Y"}})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, demo.BlockedMessage, w.Body.String())
	})

	t.Run("reads show the banner", func(t *testing.T) {
		w := s.get(t, "/ui/authors")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Demo mode")
	})
}

func TestStaticAssets(t *testing.T) {
	s := setupUIServer(t)

	w := s.get(t, "/static/style.css")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "font-family")
}
