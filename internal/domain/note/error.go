package note

import "errors"

var (
	// ErrNotFound покрывает и настоящее отсутствие, и отказ по членству:
	// немембер не должен узнать, что заметка существует.
	ErrNotFound          = errors.New("note not found")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrInvalidInput      = errors.New("invalid note input")
)
