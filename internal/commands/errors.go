package commands

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

const (
	deckCommandValidationCode = "DECK_COMMAND_VALIDATION_FAILED"
	deckCommandCanceledCode   = "DECK_COMMAND_CANCELED"
	deckCommandTimeoutCode    = "DECK_COMMAND_TIMEOUT"
	deckCommandContextCode    = "DECK_COMMAND_CONTEXT_ERROR"
	deckCommandExecuteCode    = "DECK_COMMAND_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "deck command validation failed").
		WithTextCode(deckCommandValidationCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "deck command canceled").
			WithTextCode(deckCommandCanceledCode)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "deck command deadline exceeded").
			WithTextCode(deckCommandTimeoutCode)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "deck command context error").
			WithTextCode(deckCommandContextCode)
	}
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "deck command failed").
		WithTextCode(deckCommandExecuteCode)
}
