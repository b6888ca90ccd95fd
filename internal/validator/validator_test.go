package validator

import (
	"encoding/json"
	"errors"
	"testing"
)

// decode runs a raw JSON document through encoding/json the same way the
// handlers do, so number/string types match production behavior.
func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		t.Fatalf("failed to decode test body: %v", err)
	}
	return body
}

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		want    CreateBlogBody
	}{
		{
			name: "valid body",
			raw:  `{"title":"T","content":"C"}`,
			want: CreateBlogBody{Title: "T", Content: "C"},
		},
		{
			name: "extra fields are ignored",
			raw:  `{"title":"T","content":"C","published":true}`,
			want: CreateBlogBody{Title: "T", Content: "C"},
		},
		{
			name: "empty strings are structurally valid",
			raw:  `{"title":"","content":""}`,
			want: CreateBlogBody{},
		},
		{
			name:    "missing title",
			raw:     `{"content":"C"}`,
			wantErr: true,
		},
		{
			name:    "missing content",
			raw:     `{"title":"T"}`,
			wantErr: true,
		},
		{
			name:    "title has wrong type",
			raw:     `{"title":42,"content":"C"}`,
			wantErr: true,
		},
		{
			name:    "content has wrong type",
			raw:     `{"title":"T","content":null}`,
			wantErr: true,
		},
		{
			name:    "empty object",
			raw:     `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCreate(decode(t, tt.raw))

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("ValidateCreate() error = %v, want %v", err, ErrInvalidInput)
				}
				return
			}

			if err != nil {
				t.Fatalf("ValidateCreate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ValidateCreate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		want    UpdateBlogBody
	}{
		{
			name: "valid full body",
			raw:  `{"id":3,"title":"T","content":"C"}`,
			want: UpdateBlogBody{ID: 3, Title: "T", Content: "C"},
		},
		{
			name: "title and content are optional",
			raw:  `{"id":9}`,
			want: UpdateBlogBody{ID: 9},
		},
		{
			name: "omitted content comes back as the empty string",
			raw:  `{"id":5,"title":"only title"}`,
			want: UpdateBlogBody{ID: 5, Title: "only title"},
		},
		{
			name:    "missing id",
			raw:     `{"title":"T","content":"C"}`,
			wantErr: true,
		},
		{
			name:    "id has wrong type",
			raw:     `{"id":"3","title":"T"}`,
			wantErr: true,
		},
		{
			name:    "optional field with wrong type",
			raw:     `{"id":3,"title":7}`,
			wantErr: true,
		},
		{
			name:    "empty object",
			raw:     `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateUpdate(decode(t, tt.raw))

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("ValidateUpdate() error = %v, want %v", err, ErrInvalidInput)
				}
				return
			}

			if err != nil {
				t.Fatalf("ValidateUpdate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ValidateUpdate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestValidateUnknownKind(t *testing.T) {
	err := Validate(Kind(99), map[string]any{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Validate() error = %v, want %v", err, ErrInvalidInput)
	}
}

func TestValidateDoesNotMutateBody(t *testing.T) {
	body := decode(t, `{"id":3,"title":"T","content":"C"}`)

	if err := Validate(UpdateBlogInput, body); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if len(body) != 3 {
		t.Errorf("Validate() changed the body, len = %d, want 3", len(body))
	}
	if body["title"] != "T" || body["content"] != "C" {
		t.Error("Validate() changed field values")
	}
}
