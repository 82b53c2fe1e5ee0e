package usecase

import (
	"context"
	"fmt"

	"lifeagent/internal/modules/notes/domain"
	"lifeagent/internal/modules/notes/dto"
	notesin "lifeagent/internal/modules/notes/port/in"
	notesout "lifeagent/internal/modules/notes/port/out"
	"lifeagent/internal/modules/notes/service"
	"lifeagent/internal/platform/clock"
	apperrors "lifeagent/internal/platform/errors"
)

type Interactor struct {
	svc      *service.NotesService
	exporter notesout.Exporter
	clock    clock.Clock
}

func NewInteractor(svc *service.NotesService, exporter notesout.Exporter, clk clock.Clock) notesin.Usecase {
	return &Interactor{svc: svc, exporter: exporter, clock: clk}
}

func (i *Interactor) HandleMessage(ctx context.Context, input dto.MessageInput) (dto.MessageOutput, error) {
	msg := domain.Message{Type: input.Type, Text: input.Text}
	if err := msg.Validate(); err != nil {
		return dto.MessageOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if !msg.IsAnnotation() {
		return dto.MessageOutput{}, nil
	}
	count, err := i.svc.Append(ctx, msg.Text)
	if err != nil {
		return dto.MessageOutput{}, err
	}
	return dto.MessageOutput{Stored: true, Count: count}, nil
}

func (i *Interactor) List(ctx context.Context) ([]string, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Export(ctx context.Context, path string) (dto.ExportOutput, error) {
	if path == "" {
		return dto.ExportOutput{}, fmt.Errorf("%w: export path is required", apperrors.ErrInvalidInput)
	}
	notes, err := i.svc.List(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	if err := i.exporter.Export(ctx, path, notes, i.clock.Now()); err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: path, Count: len(notes)}, nil
}
