package domain

import (
	"errors"
	"mime"
	"path"
	"strings"
)

const (
	CacheName = "lifeagent-cache-v1"
	IndexPage = "index.html"
)

// Assets is the fixed precache list. service-worker.js is deliberately not part of it.
var Assets = []string{IndexPage, "style.css", "app.js"}

var ErrInvalidPath = errors.New("invalid asset path")

type Response struct {
	Path        string
	ContentType string
	Body        []byte
}

// CleanPath maps a request path under the shell onto an asset name.
func CleanPath(raw string) (string, error) {
	trimmed := strings.TrimPrefix(raw, "/")
	if trimmed == "" || strings.HasSuffix(trimmed, "/") {
		trimmed += IndexPage
	}
	cleaned := path.Clean(trimmed)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") || strings.HasPrefix(cleaned, "/") {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}

func ContentTypeOf(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
