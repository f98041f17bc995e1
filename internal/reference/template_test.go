package reference

import (
	"errors"
	"testing"
)

func TestNewTemplate(t *testing.T) {
	tests := []struct {
		name        string
		host        string
		translation string
		wantErr     bool
	}{
		{"default", DefaultHost, DefaultTranslation, false},
		{"trailing slashes", "https://example.org/", "/niv/", false},
		{"relative host", "example.org", "kjv", true},
		{"ftp host", "ftp://example.org", "kjv", true},
		{"empty translation", "https://example.org", "", true},
		{"nested translation", "https://example.org", "a/b", true},
		{"markdown breaking translation", "https://example.org", "k)v", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTemplate(tt.host, tt.translation)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTemplate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTemplate) {
				t.Errorf("NewTemplate() error = %v, want ErrInvalidTemplate", err)
			}
		})
	}
}

func TestTemplateLink(t *testing.T) {
	tmpl, err := NewTemplate("https://example.org/", "/niv/")
	if err != nil {
		t.Fatalf("NewTemplate() error = %v", err)
	}

	if got, want := tmpl.Link("Ruth", "RTH"), "[Ruth](https://example.org/niv/rth)"; got != want {
		t.Errorf("Link() = %q, want %q", got, want)
	}

	def := DefaultTemplate()
	if got, want := def.Link("1 Samuel", "1sa"), "[1 Samuel](https://www.blueletterbible.org/kjv/1sa)"; got != want {
		t.Errorf("Link() = %q, want %q", got, want)
	}
}
