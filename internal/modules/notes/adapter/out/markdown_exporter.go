package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	notesout "lifeagent/internal/modules/notes/port/out"
	apperrors "lifeagent/internal/platform/errors"
	"lifeagent/internal/platform/markdown"
)

// MarkdownExporter writes annotations as a bullet list under YAML frontmatter.
type MarkdownExporter struct{}

const exportType = "annotations"

type exportMeta struct {
	Type       string `yaml:"type"`
	Count      int    `yaml:"count"`
	ExportedAt string `yaml:"exported_at"`
}

func NewMarkdownExporter() notesout.Exporter {
	return MarkdownExporter{}
}

func (MarkdownExporter) Export(_ context.Context, path string, notes []string, exportedAt time.Time) error {
	if err := checkOverwrite(path); err != nil {
		return err
	}
	content, err := markdown.Render(markdown.Document{
		Meta: exportMeta{
			Type:       exportType,
			Count:      len(notes),
			ExportedAt: exportedAt.UTC().Format(time.RFC3339),
		},
		Heading: "Annotations",
		Items:   notes,
	})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// checkOverwrite only lets an export replace an earlier annotations export.
func checkOverwrite(path string) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read existing export: %w", err)
	}
	meta, _, err := markdown.Parse(string(raw))
	if err != nil || meta["type"] != exportType {
		return fmt.Errorf("%w: %s exists and is not an annotations export", apperrors.ErrInvalidInput, path)
	}
	return nil
}
