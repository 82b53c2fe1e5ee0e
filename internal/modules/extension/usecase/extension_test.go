package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"lifeagent/internal/modules/extension/usecase"
	apperrors "lifeagent/internal/platform/errors"
)

type mapBundle map[string]string

func (b mapBundle) Read(name string) ([]byte, error) {
	data, ok := b[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, apperrors.ErrNotFound)
	}
	return []byte(data), nil
}

type memoryWriter struct {
	files map[string]string
}

func (w *memoryWriter) Write(_ context.Context, dir, name string, data []byte) error {
	if w.files == nil {
		w.files = map[string]string{}
	}
	w.files[dir+"/"+name] = string(data)
	return nil
}

func fullBundle() mapBundle {
	return mapBundle{"manifest.json": "{}", "background.js": "bg", "content_script.js": "cs"}
}

func TestExportWritesBundleAndDaemonConfig(t *testing.T) {
	t.Parallel()
	w := &memoryWriter{}
	out, err := usecase.NewInteractor(fullBundle(), w, "0.0.0.0:7800").Export(context.Background(), "/tmp/ext")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.BaseURL != "http://127.0.0.1:7800" || len(out.Files) != 4 {
		t.Fatalf("unexpected output %+v", out)
	}
	if w.files["/tmp/ext/background.js"] != "bg" {
		t.Fatalf("bundle files must be copied verbatim: %v", w.files)
	}
	if w.files["/tmp/ext/daemon.json"] != "{\n  \"base_url\": \"http://127.0.0.1:7800\"\n}\n" {
		t.Fatalf("unexpected daemon config %q", w.files["/tmp/ext/daemon.json"])
	}
}

func TestExportRejectsBadInput(t *testing.T) {
	t.Parallel()
	if _, err := usecase.NewInteractor(fullBundle(), &memoryWriter{}, "127.0.0.1:7717").Export(context.Background(), " "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty dir, got %v", err)
	}
	if _, err := usecase.NewInteractor(fullBundle(), &memoryWriter{}, "127.0.0.1").Export(context.Background(), "/tmp/ext"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for listen address without port, got %v", err)
	}
	missing := fullBundle()
	delete(missing, "content_script.js")
	if _, err := usecase.NewInteractor(missing, &memoryWriter{}, "127.0.0.1:7717").Export(context.Background(), "/tmp/ext"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected missing bundle file to surface, got %v", err)
	}
}
