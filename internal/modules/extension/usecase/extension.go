package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lifeagent/internal/modules/extension/domain"
	"lifeagent/internal/modules/extension/dto"
	extensionin "lifeagent/internal/modules/extension/port/in"
	extensionout "lifeagent/internal/modules/extension/port/out"
	apperrors "lifeagent/internal/platform/errors"
)

type Interactor struct {
	bundle     extensionout.Bundle
	writer     extensionout.Writer
	listenAddr string
}

func NewInteractor(bundle extensionout.Bundle, writer extensionout.Writer, listenAddr string) extensionin.Usecase {
	return &Interactor{bundle: bundle, writer: writer, listenAddr: listenAddr}
}

func (i *Interactor) Export(ctx context.Context, dir string) (dto.ExportOutput, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return dto.ExportOutput{}, fmt.Errorf("%w: export directory is required", apperrors.ErrInvalidInput)
	}
	baseURL, err := domain.BaseURL(i.listenAddr)
	if err != nil {
		return dto.ExportOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	written := make([]string, 0, len(domain.Files)+1)
	for _, name := range domain.Files {
		data, err := i.bundle.Read(name)
		if err != nil {
			return dto.ExportOutput{}, fmt.Errorf("read %s: %w", name, err)
		}
		if err := i.writer.Write(ctx, dir, name, data); err != nil {
			return dto.ExportOutput{}, err
		}
		written = append(written, name)
	}
	cfg, err := json.MarshalIndent(domain.DaemonConfig{BaseURL: baseURL}, "", "  ")
	if err != nil {
		return dto.ExportOutput{}, fmt.Errorf("encode %s: %w", domain.ConfigFile, err)
	}
	if err := i.writer.Write(ctx, dir, domain.ConfigFile, append(cfg, '\n')); err != nil {
		return dto.ExportOutput{}, err
	}
	written = append(written, domain.ConfigFile)
	return dto.ExportOutput{Dir: dir, Files: written, BaseURL: baseURL}, nil
}
