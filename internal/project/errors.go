package project

import "errors"

var (
	ErrConfig       = errors.New("invalid project configuration")
	ErrDriverLookup = errors.New("failed to locate driver executable")
)
