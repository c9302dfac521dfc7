package service

import "errors"

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrInvalidToken        = errors.New("invalid or expired token")
)
