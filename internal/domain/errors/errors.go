package errors

import "errors"

var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUpstream      = errors.New("upstream service failure")
	ErrUnavailable   = errors.New("service unavailable")
)
