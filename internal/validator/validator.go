// Package validator checks mutation payloads against the request schemas
// shared with the frontend before any storage call happens. The schemas
// are data, not per-endpoint code: one rule set per schema kind.
package validator

import "errors"

// ErrInvalidInput reports a payload that does not match its schema.
var ErrInvalidInput = errors.New("input does not match schema")

// Kind selects the schema a payload is checked against.
type Kind int

const (
	// CreateBlogInput is the schema for POST /api/v1/blog bodies.
	CreateBlogInput Kind = iota
	// UpdateBlogInput is the schema for PUT /api/v1/blog bodies.
	UpdateBlogInput
)

type fieldType int

const (
	typeString fieldType = iota
	typeNumber
)

// matches reports whether a decoded JSON value has this type.
// encoding/json decodes every JSON number into float64.
func (t fieldType) matches(value any) bool {
	switch t {
	case typeString:
		_, ok := value.(string)
		return ok
	case typeNumber:
		_, ok := value.(float64)
		return ok
	default:
		return false
	}
}

type fieldRule struct {
	name     string
	typ      fieldType
	required bool
}

var schemas = map[Kind][]fieldRule{
	CreateBlogInput: {
		{name: "title", typ: typeString, required: true},
		{name: "content", typ: typeString, required: true},
	},
	UpdateBlogInput: {
		{name: "id", typ: typeNumber, required: true},
		{name: "title", typ: typeString, required: false},
		{name: "content", typ: typeString, required: false},
	},
}

// Validate checks the shape of body against the schema named by kind:
// required fields must be present, and present fields must have the
// declared JSON type. The body is never transformed. Fields outside the
// schema are ignored.
func Validate(kind Kind, body map[string]any) error {
	rules, ok := schemas[kind]
	if !ok {
		return ErrInvalidInput
	}

	for _, rule := range rules {
		value, present := body[rule.name]
		if !present {
			if rule.required {
				return ErrInvalidInput
			}
			continue
		}
		if !rule.typ.matches(value) {
			return ErrInvalidInput
		}
	}

	return nil
}

// CreateBlogBody is a create payload that passed CreateBlogInput.
type CreateBlogBody struct {
	Title   string
	Content string
}

// UpdateBlogBody is an update payload that passed UpdateBlogInput.
// Omitted optional fields are zero values; the update handler writes
// them through as-is, so an omitted title or content overwrites the
// stored column with the empty string.
type UpdateBlogBody struct {
	ID      int64
	Title   string
	Content string
}

// ValidateCreate validates body against CreateBlogInput and returns the
// typed payload.
func ValidateCreate(body map[string]any) (CreateBlogBody, error) {
	if err := Validate(CreateBlogInput, body); err != nil {
		return CreateBlogBody{}, err
	}

	title, _ := body["title"].(string)
	content, _ := body["content"].(string)
	return CreateBlogBody{Title: title, Content: content}, nil
}

// ValidateUpdate validates body against UpdateBlogInput and returns the
// typed payload.
func ValidateUpdate(body map[string]any) (UpdateBlogBody, error) {
	if err := Validate(UpdateBlogInput, body); err != nil {
		return UpdateBlogBody{}, err
	}

	id, _ := body["id"].(float64)
	title, _ := body["title"].(string)
	content, _ := body["content"].(string)
	return UpdateBlogBody{ID: int64(id), Title: title, Content: content}, nil
}
