package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	hclog "github.com/hashicorp/go-hclog"

	"lifeagent/internal/modules/notes/domain"
	notesout "lifeagent/internal/modules/notes/port/out"
)

type NotesService struct {
	mu    sync.Mutex
	store notesout.KVStore
	log   hclog.Logger
}

func NewNotesService(store notesout.KVStore, log hclog.Logger) *NotesService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &NotesService{store: store, log: log}
}

// Append reads the stored list, appends text and writes it back. The read-modify-write
// runs under one lock so concurrent annotations are never lost.
func (s *NotesService) Append(ctx context.Context, text string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	notes = append(notes, text)
	raw, err := json.Marshal(notes)
	if err != nil {
		return 0, fmt.Errorf("encode notes: %w", err)
	}
	if err := s.store.Set(ctx, domain.StorageKey, raw); err != nil {
		return 0, fmt.Errorf("store notes: %w", err)
	}
	s.log.Debug("annotation stored", "count", len(notes))
	return len(notes), nil
}

func (s *NotesService) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *NotesService) load(ctx context.Context) ([]string, error) {
	raw, err := s.store.Get(ctx, domain.StorageKey, json.RawMessage("[]"))
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	notes := []string{}
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}
