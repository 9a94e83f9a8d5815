package client

import (
	"context"
	"net/http"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/schema"
)

type BooksService struct {
	client *Client
}

func (s *BooksService) List(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	if err := s.client.do(ctx, http.MethodGet, "/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *BooksService) Get(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	if err := s.client.do(ctx, http.MethodGet, idPath("books", id), nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *BooksService) Create(ctx context.Context, in schema.CreateBookInput) (*entities.Book, error) {
	var book entities.Book
	if err := s.client.do(ctx, http.MethodPost, "/books", in, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *BooksService) Update(ctx context.Context, id uint, patch schema.UpdateBookInput) (*entities.Book, error) {
	var book entities.Book
	if err := s.client.do(ctx, http.MethodPut, idPath("books", id), patch, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *BooksService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, http.MethodDelete, idPath("books", id), nil, nil)
}
