package orchestrator

import "errors"

var (
	ErrMissingAudio        = errors.New("audio file is required")
	ErrUnintelligible      = errors.New("could not transcribe audio")
	ErrInsufficientContent = errors.New("insufficient audio content")
)
