package model

import "errors"

var ErrNotFound = errors.New("contact message not found")
