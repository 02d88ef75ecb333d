package repository

import "errors"

var (
	ErrNotFound    = errors.New("organisation not found")
	ErrKeyConflict  = errors.New("organisation key already exists")
)
