package gamify

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrEvaluation = errors.New("badge evaluation error")
)
