package domain_test

import (
	"errors"
	"strings"
	"testing"

	"lifeagent/internal/modules/mobile/domain"
)

func TestCleanPath(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"":             "index.html",
		"/":            "index.html",
		"/app.js":      "app.js",
		"css/":         "css/index.html",
		"/a/../app.js": "app.js",
		"style.css":    "style.css",
	}
	for in, want := range cases {
		got, err := domain.CleanPath(in)
		if err != nil || got != want {
			t.Fatalf("CleanPath(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := domain.CleanPath("../secret"); !errors.Is(err, domain.ErrInvalidPath) {
		t.Fatalf("expected traversal to be rejected, got %v", err)
	}
}

func TestContentTypeOf(t *testing.T) {
	t.Parallel()
	if ct := domain.ContentTypeOf("style.css"); !strings.HasPrefix(ct, "text/css") {
		t.Fatalf("unexpected css type %q", ct)
	}
	if ct := domain.ContentTypeOf("blob"); ct != "application/octet-stream" {
		t.Fatalf("unexpected fallback type %q", ct)
	}
}
