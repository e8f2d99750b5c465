package pipeline

import "errors"

var (
	ErrTransition = errors.New("invalid state transition")
	ErrOptions    = errors.New("invalid pipeline options")
)
