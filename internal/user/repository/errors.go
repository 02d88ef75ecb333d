package repository

import "errors"

var (
	ErrNotFound = errors.New("user not found")
	ErrConflict = errors.New("user subject already exists")
)
