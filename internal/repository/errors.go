package repository

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrStatusConflict = errors.New("record status changed concurrently")
	ErrDuplicate      = errors.New("record already exists")
)
