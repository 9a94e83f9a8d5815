package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/schema"
)

type AuthorsController struct {
	authors AuthorService
}

func NewAuthorsController(authors AuthorService) *AuthorsController {
	return &AuthorsController{authors: authors}
}

// List returns every author with their books, newest first.
func (ctl *AuthorsController) List(c *gin.Context) {
	authors, err := ctl.authors.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, authors)
}

func (ctl *AuthorsController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "Author")
	if err != nil {
		_ = c.Error(err)
		return
	}

	author, err := ctl.authors.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, author)
}

func (ctl *AuthorsController) Create(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	in, err := schema.DecodeCreateAuthor(body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	author, err := ctl.authors.Create(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, author)
}

// Update applies a partial update. Fields missing from the body are kept.
func (ctl *AuthorsController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "Author")
	if err != nil {
		_ = c.Error(err)
		return
	}
	body, err := readBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	patch, err := schema.DecodeUpdateAuthor(body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	author, err := ctl.authors.Update(c.Request.Context(), id, patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, author)
}

// Delete removes the author; their books go with them.
func (ctl *AuthorsController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "Author")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctl.authors.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
