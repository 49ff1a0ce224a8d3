package decks

import (
	"errors"
	"fmt"
)

var (
	ErrTitleRequired    = errors.New("decks: title is required")
	ErrSlugRequired     = errors.New("decks: slug is required")
	ErrSlugInvalid      = errors.New("decks: slug contains invalid characters")
	ErrTemplateRequired = errors.New("decks: at least one slide template is required")
	ErrTemplateInvalid  = errors.New("decks: unknown slide template")
	ErrDeckNotFound     = errors.New("decks: deck not found")
	ErrBuiltinImmutable = errors.New("decks: builtin decks cannot be modified")
)

// NotFoundError reports a missing deck or deck content lookup.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrDeckNotFound.Error()
	}
	return fmt.Sprintf("%s: %s=%s", ErrDeckNotFound.Error(), e.Resource, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrDeckNotFound
}
