package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mrlokans/catalog/internal/demo"
	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/logging"
	"github.com/mrlokans/catalog/internal/schema"
	"github.com/mrlokans/catalog/internal/services"
	"github.com/mrlokans/catalog/internal/session"
)

// UIController serves the server-rendered catalog pages. It talks to the
// services in-process; sessions are optional and only carry flash messages.
type UIController struct {
	authors  AuthorService
	books    BookService
	sessions *session.Manager
}

func NewUIController(authors AuthorService, books BookService, sessions *session.Manager) *UIController {
	return &UIController{
		authors:  authors,
		books:    books,
		sessions: sessions,
	}
}

func (ui *UIController) Home(c *gin.Context) {
	stats, err := ui.authors.Stats(c.Request.Context())
	if err != nil {
		ui.renderError(c, err)
		return
	}
	ui.render(c, http.StatusOK, "home", gin.H{"Stats": stats})
}

// Authors

func (ui *UIController) AuthorsPage(c *gin.Context) {
	authors, err := ui.authors.List(c.Request.Context())
	if err != nil {
		ui.renderError(c, err)
		return
	}
	ui.render(c, http.StatusOK, "authors", gin.H{
		"Title":   "Authors",
		"Authors": authors,
	})
}

func (ui *UIController) AuthorPage(c *gin.Context) {
	author, ok := ui.loadAuthor(c)
	if !ok {
		return
	}
	ui.render(c, http.StatusOK, "author", gin.H{
		"Title":  author.Name,
		"Author": author,
	})
}

func (ui *UIController) NewAuthorPage(c *gin.Context) {
	ui.renderAuthorForm(c, http.StatusOK, nil, map[string]string{}, nil)
}

func (ui *UIController) EditAuthorPage(c *gin.Context) {
	author, ok := ui.loadAuthor(c)
	if !ok {
		return
	}
	values := map[string]string{
		"name": author.Name,
		"bio":  author.Bio,
	}
	ui.renderAuthorForm(c, http.StatusOK, author, values, nil)
}

func (ui *UIController) CreateAuthor(c *gin.Context) {
	form, ok := ui.postForm(c)
	if !ok {
		return
	}

	in, err := schema.AuthorFromForm(form)
	if err != nil {
		ui.renderAuthorForm(c, http.StatusBadRequest, nil, formValues(form, "name", "bio"), err)
		return
	}

	author, err := ui.authors.Create(c.Request.Context(), in)
	if err != nil {
		ui.renderError(c, err)
		return
	}
	ui.redirect(c, session.FlashSuccess, "Author created", "/ui/authors/"+formatID(author.ID))
}

func (ui *UIController) UpdateAuthor(c *gin.Context) {
	author, ok := ui.loadAuthor(c)
	if !ok {
		return
	}
	form, ok := ui.postForm(c)
	if !ok {
		return
	}

	in, err := schema.AuthorFromForm(form)
	if err != nil {
		ui.renderAuthorForm(c, http.StatusBadRequest, author, formValues(form, "name", "bio"), err)
		return
	}

	if _, err := ui.authors.Update(c.Request.Context(), author.ID, in.AsUpdate()); err != nil {
		ui.renderError(c, err)
		return
	}
	ui.redirect(c, session.FlashSuccess, "Author updated", "/ui/authors/"+formatID(author.ID))
}

func (ui *UIController) DeleteAuthor(c *gin.Context) {
	id, err := parseIDParam(c, "Author")
	if err != nil {
		ui.renderError(c, err)
		return
	}
	if err := ui.authors.Delete(c.Request.Context(), id); err != nil {
		ui.renderError(c, err)
		return
	}
	ui.redirect(c, session.FlashSuccess, "Author deleted", "/ui/authors")
}

func (ui *UIController) loadAuthor(c *gin.Context) (*entities.Author, bool) {
	id, err := parseIDParam(c, "Author")
	if err != nil {
		ui.renderError(c, err)
		return nil, false
	}
	author, err := ui.authors.Get(c.Request.Context(), id)
	if err != nil {
		ui.renderError(c, err)
		return nil, false
	}
	return author, true
}

// renderAuthorForm renders the create form when author is nil and the edit
// form otherwise.
func (ui *UIController) renderAuthorForm(c *gin.Context, status int, author *entities.Author, values map[string]string, formErr error) {
	data := gin.H{
		"Title":   "New author",
		"Heading": "New author",
		"Action":  "/ui/authors",
		"Submit":  "Create author",
		"Cancel":  "/ui/authors",
		"Values":  values,
		"Errors":  fieldErrors(formErr),
	}
	if author != nil {
		path := "/ui/authors/" + formatID(author.ID)
		data["Title"] = "Edit " + author.Name
		data["Heading"] = "Edit author"
		data["Action"] = path
		data["Submit"] = "Save changes"
		data["Cancel"] = path
	}
	ui.render(c, status, "author_form", data)
}

// Books

// BooksPage lists every book, or only one author's books with ?authorId=.
func (ui *UIController) BooksPage(c *gin.Context) {
	ctx := c.Request.Context()
	data := gin.H{"Title": "Books"}

	var (
		books []entities.Book
		err   error
	)
	if raw := c.Query("authorId"); raw != "" {
		id, parseErr := strconv.ParseUint(raw, 10, 32)
		if parseErr != nil || id == 0 {
			ui.renderError(c, services.NewNotFoundError("Author", raw))
			return
		}
		author, getErr := ui.authors.Get(ctx, uint(id))
		if getErr != nil {
			ui.renderError(c, getErr)
			return
		}
		data["Author"] = author
		books, err = ui.books.ListByAuthor(ctx, author.ID)
	} else {
		books, err = ui.books.List(ctx)
	}
	if err != nil {
		ui.renderError(c, err)
		return
	}

	data["Books"] = books
	ui.render(c, http.StatusOK, "books", data)
}

func (ui *UIController) BookPage(c *gin.Context) {
	book, ok := ui.loadBook(c)
	if !ok {
		return
	}
	ui.render(c, http.StatusOK, "book", gin.H{
		"Title": book.Title,
		"Book":  book,
	})
}

// NewBookPage renders an empty book form. ?authorId= preselects an author.
func (ui *UIController) NewBookPage(c *gin.Context) {
	values := map[string]string{"authorId": c.Query("authorId")}
	ui.renderBookForm(c, http.StatusOK, nil, values, nil)
}

func (ui *UIController) EditBookPage(c *gin.Context) {
	book, ok := ui.loadBook(c)
	if !ok {
		return
	}
	values := map[string]string{
		"title":         book.Title,
		"authorId":      formatID(book.AuthorID),
		"description":   book.Description,
		"publishedYear": strconv.Itoa(book.PublishedYear),
	}
	ui.renderBookForm(c, http.StatusOK, book, values, nil)
}

func (ui *UIController) CreateBook(c *gin.Context) {
	form, ok := ui.postForm(c)
	if !ok {
		return
	}
	values := formValues(form, "title", "authorId", "description", "publishedYear")

	in, err := schema.BookFromForm(form)
	if err != nil {
		ui.renderBookForm(c, http.StatusBadRequest, nil, values, err)
		return
	}

	book, err := ui.books.Create(c.Request.Context(), in)
	if services.IsValidation(err) {
		ui.renderBookForm(c, http.StatusBadRequest, nil, values, err)
		return
	}
	if err != nil {
		ui.renderError(c, err)
		return
	}
	ui.redirect(c, session.FlashSuccess, "Book created", "/ui/books/"+formatID(book.ID))
}

func (ui *UIController) UpdateBook(c *gin.Context) {
	book, ok := ui.loadBook(c)
	if !ok {
		return
	}
	form, ok := ui.postForm(c)
	if !ok {
		return
	}
	values := formValues(form, "title", "authorId", "description", "publishedYear")

	in, err := schema.BookFromForm(form)
	if err != nil {
		ui.renderBookForm(c, http.StatusBadRequest, book, values, err)
		return
	}

	_, err = ui.books.Update(c.Request.Context(), book.ID, in.AsUpdate())
	if services.IsValidation(err) {
		ui.renderBookForm(c, http.StatusBadRequest, book, values, err)
		return
	}
	if err != nil {
		ui.renderError(c, err)
		return
	}
	ui.redirect(c, session.FlashSuccess, "Book updated", "/ui/books/"+formatID(book.ID))
}

func (ui *UIController) DeleteBook(c *gin.Context) {
	id, err := parseIDParam(c, "Book")
	if err != nil {
		ui.renderError(c, err)
		return
	}
	if err := ui.books.Delete(c.Request.Context(), id); err != nil {
		ui.renderError(c, err)
		return
	}
	ui.redirect(c, session.FlashSuccess, "Book deleted", "/ui/books")
}

func (ui *UIController) loadBook(c *gin.Context) (*entities.Book, bool) {
	id, err := parseIDParam(c, "Book")
	if err != nil {
		ui.renderError(c, err)
		return nil, false
	}
	book, err := ui.books.Get(c.Request.Context(), id)
	if err != nil {
		ui.renderError(c, err)
		return nil, false
	}
	return book, true
}

func (ui *UIController) renderBookForm(c *gin.Context, status int, book *entities.Book, values map[string]string, formErr error) {
	authors, err := ui.authors.List(c.Request.Context())
	if err != nil {
		ui.renderError(c, err)
		return
	}

	data := gin.H{
		"Title":   "New book",
		"Heading": "New book",
		"Action":  "/ui/books",
		"Submit":  "Create book",
		"Cancel":  "/ui/books",
		"Authors": authors,
		"Values":  values,
		"Errors":  fieldErrors(formErr),
		"MinYear": schema.MinPublishedYear,
		"MaxYear": schema.MaxPublishedYear(),
	}
	if services.IsValidation(formErr) {
		data["FormError"] = formErr.Error()
	}
	if book != nil {
		path := "/ui/books/" + formatID(book.ID)
		data["Title"] = "Edit " + book.Title
		data["Heading"] = "Edit book"
		data["Action"] = path
		data["Submit"] = "Save changes"
		data["Cancel"] = path
	}
	ui.render(c, status, "book_form", data)
}

// Shared helpers

// render adds the data every page needs (flash, CSRF field, demo banner).
func (ui *UIController) render(c *gin.Context, status int, name string, data gin.H) {
	data["CSRFField"] = session.CSRFTokenField(c)
	data["DemoMode"] = c.GetBool(demo.ContextKeyDemoMode)
	if ui.sessions != nil {
		level, message := ui.sessions.PopFlash(c)
		data["Flash"] = message
		data["FlashLevel"] = level
	}
	c.HTML(status, name, data)
}

func (ui *UIController) renderError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		ui.render(c, http.StatusNotFound, "error", gin.H{
			"Title":   "Not found",
			"Heading": "Not found",
			"Message": notFound.Error(),
		})
		return
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString(logging.RequestIDKey)).
		Str("path", c.Request.URL.Path).
		Msg("UI request failed")
	ui.render(c, http.StatusInternalServerError, "error", gin.H{
		"Title":   "Error",
		"Heading": "Something went wrong",
		"Message": "The request could not be completed. Please try again.",
	})
}

func (ui *UIController) redirect(c *gin.Context, level, message, location string) {
	if ui.sessions != nil {
		ui.sessions.FlashLevel(c, level, message)
	}
	c.Redirect(http.StatusSeeOther, location)
}

func (ui *UIController) postForm(c *gin.Context) (url.Values, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := c.Request.ParseForm(); err != nil {
		ui.render(c, http.StatusBadRequest, "error", gin.H{
			"Title":   "Bad request",
			"Heading": "Bad request",
			"Message": "The submitted form could not be read.",
		})
		return nil, false
	}
	return c.Request.PostForm, true
}

// fieldErrors returns per-field messages for form re-rendering. It never
// returns nil so templates can index it freely.
func fieldErrors(err error) map[string]string {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		return verr.Messages()
	}
	return map[string]string{}
}

func formValues(form url.Values, keys ...string) map[string]string {
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		values[key] = form.Get(key)
	}
	return values
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
