package store

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrContentTooShort = errors.New("content must be longer than 20 characters")
	ErrEmptyContent    = errors.New("content must not be empty")
)
