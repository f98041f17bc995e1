package reference

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultHost        = "https://www.blueletterbible.org"
	DefaultTranslation = "kjv"
)

var ErrInvalidTemplate = errors.New("reference: invalid link template")

// Template renders markdown links to a book on the reference site.
type Template struct {
	host        string
	translation string
}

// NewTemplate validates host and translation once. Host must be an absolute
// http(s) URL; translation must be a single path segment.
func NewTemplate(host, translation string) (Template, error) {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	translation = strings.Trim(strings.TrimSpace(translation), "/")

	u, err := url.Parse(host)
	if err != nil {
		return Template{}, fmt.Errorf("%w: host %q: %v", ErrInvalidTemplate, host, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Template{}, fmt.Errorf("%w: host %q must be an absolute http(s) URL", ErrInvalidTemplate, host)
	}
	if translation == "" || strings.ContainsAny(translation, "/ ()[]") {
		return Template{}, fmt.Errorf("%w: translation %q", ErrInvalidTemplate, translation)
	}

	return Template{host: host, translation: translation}, nil
}

// DefaultTemplate links into the King James Version on Blue Letter Bible.
func DefaultTemplate() Template {
	return Template{host: DefaultHost, translation: DefaultTranslation}
}

// URL returns the resource address for code.
func (t Template) URL(code string) string {
	return t.host + "/" + t.translation + "/" + strings.ToLower(code)
}

// Link returns "[display](url)".
func (t Template) Link(display, code string) string {
	return "[" + display + "](" + t.URL(code) + ")"
}
