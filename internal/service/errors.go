package service

import (
	"errors"
	"log/slog"

	domainerrors "github.com/flowerlibrary/flower-server/internal/errors"
	"github.com/flowerlibrary/flower-server/internal/store"
)

// storeError translates a store error into a domain error.
// conflictMsg and notFoundMsg are the user-facing messages for the two
// classified store sentinels; anything else becomes a storage error and is logged.
func storeError(logger *slog.Logger, op string, err error, conflictMsg, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrAlreadyExists) && conflictMsg != "":
		return domainerrors.Conflict(conflictMsg).WithCause(err)
	case errors.Is(err, store.ErrNotFound) && notFoundMsg != "":
		return domainerrors.NotFound(notFoundMsg).WithCause(err)
	default:
		logger.Error("storage failure", "op", op, "error", err)
		return domainerrors.Storage(err)
	}
}
