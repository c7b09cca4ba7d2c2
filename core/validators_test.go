package core

import (
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitValidators(t *testing.T) {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	InitValidators(validate, translator)

	type course struct {
		Slug     string `json:"slug" validate:"required,slug"`
		Title    string `json:"title" validate:"required_with=Slug"`
		Internal string `json:"-" validate:"omitempty,slug"`
	}

	tests := []struct {
		name string
		in   course
		want map[string]string
	}{
		{name: "valid", in: course{Slug: "gut-health", Title: "Gut Health"}},
		{
			name: "missing",
			in:   course{},
			want: map[string]string{"slug": "this field is required"},
		},
		{
			name: "not kebab case",
			in:   course{Slug: "Gut_Health", Title: "Gut Health"},
			want: map[string]string{"slug": "only lowercase letters, digits and hyphens are allowed"},
		},
		{
			name: "trailing hyphen",
			in:   course{Slug: "gut-", Title: "Gut Health"},
			want: map[string]string{"slug": "only lowercase letters, digits and hyphens are allowed"},
		},
		{
			name: "required with",
			in:   course{Slug: "gut-health"},
			want: map[string]string{"title": "this field is required"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.in)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			vErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok)
			assert.Equal(t, tt.want, TranslateErrors(vErrs, translator))
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(nil, FieldError{Field: "q", Error: "this field is required"})
	assert.Equal(t, "q: this field is required", err.Error())
	assert.Equal(t, map[string]string{"q": "this field is required"}, err.(*ValidationError).FieldMap())

	assert.True(t, IsShutdown(NewShutdownError("integrity")))
	assert.False(t, IsShutdown(err))
}

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Ana", CleanString("  Ana\n"))
	assert.Equal(t, "ana@example.com", CleanString(" Ana@Example.com ", true))
}
