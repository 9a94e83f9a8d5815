package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/schema"
)

type BooksController struct {
	books BookService
}

func NewBooksController(books BookService) *BooksController {
	return &BooksController{books: books}
}

// List returns every book with its author, newest first.
func (ctl *BooksController) List(c *gin.Context) {
	books, err := ctl.books.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, books)
}

func (ctl *BooksController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "Book")
	if err != nil {
		_ = c.Error(err)
		return
	}

	book, err := ctl.books.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// Create stores a new book. The referenced author must already exist.
func (ctl *BooksController) Create(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	in, err := schema.DecodeCreateBook(body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	book, err := ctl.books.Create(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, book)
}

func (ctl *BooksController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "Book")
	if err != nil {
		_ = c.Error(err)
		return
	}
	body, err := readBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	patch, err := schema.DecodeUpdateBook(body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	book, err := ctl.books.Update(c.Request.Context(), id, patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (ctl *BooksController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "Book")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctl.books.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
