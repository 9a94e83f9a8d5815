package schema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxNameLength bounds author names and book titles, in characters.
const MaxNameLength = 255

const (
	msgRequired = "is required"
	msgNotEmpty = "must not be empty"
	msgTooLong  = "must be at most 255 characters"
)

type CreateAuthorInput struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

func (in CreateAuthorInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name,
			validation.Required.Error(msgRequired),
			validation.RuneLength(1, MaxNameLength).Error(msgTooLong),
		),
		validation.Field(&in.Bio,
			validation.Required.Error(msgRequired),
		),
	)
}

// UpdateAuthorInput is a partial update; nil fields are left unchanged.
type UpdateAuthorInput struct {
	Name *string `json:"name,omitempty"`
	Bio  *string `json:"bio,omitempty"`
}

func (in UpdateAuthorInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name,
			validation.NilOrNotEmpty.Error(msgNotEmpty),
			validation.RuneLength(1, MaxNameLength).Error(msgTooLong),
		),
		validation.Field(&in.Bio,
			validation.NilOrNotEmpty.Error(msgNotEmpty),
		),
	)
}

// IsEmpty reports whether the patch changes nothing.
func (in UpdateAuthorInput) IsEmpty() bool {
	return in.Name == nil && in.Bio == nil
}

// AsUpdate turns a full payload into a patch that sets every field.
func (in CreateAuthorInput) AsUpdate() UpdateAuthorInput {
	return UpdateAuthorInput{Name: &in.Name, Bio: &in.Bio}
}

func DecodeCreateAuthor(body []byte) (CreateAuthorInput, error) {
	var in CreateAuthorInput
	failures, err := decodeJSON(body, &in)
	if err != nil {
		return CreateAuthorInput{}, err
	}
	if err := convert(in.Validate(), failures); err != nil {
		return CreateAuthorInput{}, err
	}
	return in, nil
}

func DecodeUpdateAuthor(body []byte) (UpdateAuthorInput, error) {
	var in UpdateAuthorInput
	failures, err := decodeJSON(body, &in)
	if err != nil {
		return UpdateAuthorInput{}, err
	}
	if err := convert(in.Validate(), failures); err != nil {
		return UpdateAuthorInput{}, err
	}
	return in, nil
}
