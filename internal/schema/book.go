package schema

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MinPublishedYear is the earliest accepted publication year.
const MinPublishedYear = 1000

const msgPositiveInt = "must be a positive integer"

// now is replaced in tests to pin the publication year window.
var now = time.Now

// MaxPublishedYear is the latest accepted publication year: ten years past the
// current one.
func MaxPublishedYear() int {
	return now().Year() + 10
}

func yearRules(presence validation.Rule) []validation.Rule {
	maxYear := MaxPublishedYear()
	msg := fmt.Sprintf("must be an integer between %d and %d", MinPublishedYear, maxYear)
	return []validation.Rule{
		presence,
		validation.Min(MinPublishedYear).Error(msg),
		validation.Max(maxYear).Error(msg),
	}
}

type CreateBookInput struct {
	Title         string `json:"title"`
	AuthorID      uint   `json:"authorId"`
	Description   string `json:"description"`
	PublishedYear int    `json:"publishedYear"`
}

func (in CreateBookInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title,
			validation.Required.Error(msgRequired),
			validation.RuneLength(1, MaxNameLength).Error(msgTooLong),
		),
		validation.Field(&in.AuthorID,
			validation.Required.Error(msgPositiveInt),
		),
		validation.Field(&in.Description,
			validation.Required.Error(msgRequired),
		),
		validation.Field(&in.PublishedYear,
			yearRules(validation.Required.Error(msgRequired))...,
		),
	)
}

// AsUpdate turns a full payload into a patch that sets every field.
func (in CreateBookInput) AsUpdate() UpdateBookInput {
	return UpdateBookInput{
		Title:         &in.Title,
		AuthorID:      &in.AuthorID,
		Description:   &in.Description,
		PublishedYear: &in.PublishedYear,
	}
}

// UpdateBookInput is a partial update; nil fields are left unchanged.
type UpdateBookInput struct {
	Title         *string `json:"title,omitempty"`
	AuthorID      *uint   `json:"authorId,omitempty"`
	Description   *string `json:"description,omitempty"`
	PublishedYear *int    `json:"publishedYear,omitempty"`
}

func (in UpdateBookInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title,
			validation.NilOrNotEmpty.Error(msgNotEmpty),
			validation.RuneLength(1, MaxNameLength).Error(msgTooLong),
		),
		validation.Field(&in.AuthorID,
			validation.NilOrNotEmpty.Error(msgPositiveInt),
		),
		validation.Field(&in.Description,
			validation.NilOrNotEmpty.Error(msgNotEmpty),
		),
		validation.Field(&in.PublishedYear,
			yearRules(validation.NilOrNotEmpty.Error(msgNotEmpty))...,
		),
	)
}

// IsEmpty reports whether the patch changes nothing.
func (in UpdateBookInput) IsEmpty() bool {
	return in.Title == nil && in.AuthorID == nil && in.Description == nil && in.PublishedYear == nil
}

func DecodeCreateBook(body []byte) (CreateBookInput, error) {
	var in CreateBookInput
	failures, err := decodeJSON(body, &in)
	if err != nil {
		return CreateBookInput{}, err
	}
	if err := convert(in.Validate(), failures); err != nil {
		return CreateBookInput{}, err
	}
	return in, nil
}

func DecodeUpdateBook(body []byte) (UpdateBookInput, error) {
	var in UpdateBookInput
	failures, err := decodeJSON(body, &in)
	if err != nil {
		return UpdateBookInput{}, err
	}
	if err := convert(in.Validate(), failures); err != nil {
		return UpdateBookInput{}, err
	}
	return in, nil
}
