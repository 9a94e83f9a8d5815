package schema

import (
	"net/url"
	"strconv"
	"strings"
)

// AuthorFromForm reads an author form submitted by the UI.
func AuthorFromForm(form url.Values) (CreateAuthorInput, error) {
	in := CreateAuthorInput{
		Name: strings.TrimSpace(form.Get("name")),
		Bio:  strings.TrimSpace(form.Get("bio")),
	}
	if err := convert(in.Validate(), nil); err != nil {
		return in, err
	}
	return in, nil
}

// BookFromForm reads a book form submitted by the UI. Numeric fields that do
// not parse are reported as field errors rather than silently zeroed.
func BookFromForm(form url.Values) (CreateBookInput, error) {
	in := CreateBookInput{
		Title:       strings.TrimSpace(form.Get("title")),
		Description: strings.TrimSpace(form.Get("description")),
	}
	failures := map[string]string{}

	if raw := strings.TrimSpace(form.Get("authorId")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			failures["authorId"] = msgPositiveInt
		}
		in.AuthorID = uint(id)
	}
	if raw := strings.TrimSpace(form.Get("publishedYear")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			failures["publishedYear"] = "must be an integer"
		}
		in.PublishedYear = year
	}

	if err := convert(in.Validate(), failures); err != nil {
		return in, err
	}
	return in, nil
}
