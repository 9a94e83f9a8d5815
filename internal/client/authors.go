package client

import (
	"context"
	"net/http"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/schema"
)

type AuthorsService struct {
	client *Client
}

// List returns every author with their books.
func (s *AuthorsService) List(ctx context.Context) ([]entities.Author, error) {
	var authors []entities.Author
	if err := s.client.do(ctx, http.MethodGet, "/authors", nil, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func (s *AuthorsService) Get(ctx context.Context, id uint) (*entities.Author, error) {
	var author entities.Author
	if err := s.client.do(ctx, http.MethodGet, idPath("authors", id), nil, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

func (s *AuthorsService) Create(ctx context.Context, in schema.CreateAuthorInput) (*entities.Author, error) {
	var author entities.Author
	if err := s.client.do(ctx, http.MethodPost, "/authors", in, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

// Update sends a partial update; nil fields are left out of the request.
func (s *AuthorsService) Update(ctx context.Context, id uint, patch schema.UpdateAuthorInput) (*entities.Author, error) {
	var author entities.Author
	if err := s.client.do(ctx, http.MethodPut, idPath("authors", id), patch, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

func (s *AuthorsService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, http.MethodDelete, idPath("authors", id), nil, nil)
}
