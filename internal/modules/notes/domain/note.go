package domain

import (
	"errors"
	"strings"
)

const (
	// StorageKey is the fixed key the annotation list lives under.
	StorageKey = "notes"

	TypeAnnotation = "annotation"
)

var ErrBlankAnnotation = errors.New("annotation text is blank")

type Message struct {
	Type string
	Text string
}

func (m Message) IsAnnotation() bool {
	return m.Type == TypeAnnotation
}

// Validate only constrains annotations; other message types are ignored, not rejected.
func (m Message) Validate() error {
	if m.IsAnnotation() && strings.TrimSpace(m.Text) == "" {
		return ErrBlankAnnotation
	}
	return nil
}
