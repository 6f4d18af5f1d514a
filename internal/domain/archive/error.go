package archive

import (
	"errors"

	"ciao/internal/infrastructure/files"
)

var (
	ErrCancelled            = errors.New("archive cancelled")
	ErrConfirmationRequired = errors.New("list has not been exported, confirmation required")
	ErrNotFound             = errors.New("archive file not found")
	ErrInvalidName          = files.ErrInvalidName
)
