package service

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid")
	ErrNoFiles  = errors.New("no files uploaded")
)

// UnsupportedLanguageMessage is reported for documents whose language is either
// outside the supported map or could not be detected.
const UnsupportedLanguageMessage = "Unsupported or undetectable language"
