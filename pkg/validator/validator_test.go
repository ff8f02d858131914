package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		email     string
		password  string
		wantField string
	}{
		{"valid", "a@x.com", "longenough", ""},
		{"empty email", "", "longenough", "email"},
		{"bad email", "not-an-email", "longenough", "email"},
		{"empty password", "a@x.com", "", "password"},
		{"short password", "a@x.com", "short", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRegister(tt.email, tt.password)
			if tt.wantField == "" {
				assert.False(t, errs.HasErrors(), "unexpected errors: %v", errs)
			} else {
				assert.Contains(t, errs, tt.wantField)
			}
		})
	}
}

func TestValidateLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		title     string
		url       string
		wantField string
	}{
		{"valid", "GH", "https://github.com/a", ""},
		{"empty title", "", "https://github.com/a", "title"},
		{"whitespace title", "   ", "https://github.com/a", "title"},
		{"empty url", "GH", "", "url"},
		{"no scheme", "GH", "github.com/a", "url"},
		{"bad scheme", "GH", "ftp://github.com/a", "url"},
		{"no host", "GH", "https://", "url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateLink(tt.title, tt.url)
			if tt.wantField == "" {
				assert.False(t, errs.HasErrors(), "unexpected errors: %v", errs)
			} else {
				assert.Contains(t, errs, tt.wantField)
			}
		})
	}
}

func TestValidateProfile(t *testing.T) {
	t.Parallel()

	assert.False(t, ValidateProfile("Ann", "").HasErrors())
	assert.False(t, ValidateProfile("Ann", "https://cdn.example.com/a.png").HasErrors())
	assert.Contains(t, ValidateProfile("", ""), "name")
	assert.Contains(t, ValidateProfile("Ann", "not a url"), "avatar")
}
