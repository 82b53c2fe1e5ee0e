package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"lifeagent/internal/modules/extension/adapter/out/bundle"
	extensionout "lifeagent/internal/modules/extension/port/out"
)

type EmbeddedBundle struct{}

func NewEmbeddedBundle() extensionout.Bundle { return EmbeddedBundle{} }

func (EmbeddedBundle) Read(name string) ([]byte, error) {
	return bundle.Files.ReadFile(name)
}

type DirWriter struct{}

func NewDirWriter() extensionout.Writer { return DirWriter{} }

func (DirWriter) Write(_ context.Context, dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create extension dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
