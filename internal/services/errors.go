package services

import (
	"errors"
	"fmt"
)

// Error variables
var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrUserNotFound      = errors.New("user not found")
	ErrNotFound          = errors.New("place not found")
	ErrForbidden         = errors.New("not allowed to modify this place")
	ErrDuplicateResource = errors.New("resource already exists")
	ErrUnauthorized      = errors.New("invalid username or password")
)

// Duplicates of a specific resource. All of them match ErrDuplicateResource.
var (
	ErrUsernameTaken   = fmt.Errorf("%w: username already exists", ErrDuplicateResource)
	ErrSimilarPlace    = fmt.Errorf("%w: similar place exists at this location", ErrDuplicateResource)
	ErrAlreadyReviewed = fmt.Errorf("%w: place already reviewed", ErrDuplicateResource)
)
