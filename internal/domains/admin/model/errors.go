package model

import "errors"

var (
	ErrNotFound           = errors.New("admin user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
