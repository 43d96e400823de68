package models

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrArticleExists   = errors.New("article already exists")
	ErrUserExists      = errors.New("user already exists")
	ErrInvalidPassword = errors.New("invalid credentials")
	ErrSessionExpired  = errors.New("session expired")
)
