package restaurant

import "errors"

// ErrNotFound is returned when no entry carries the requested id.
var ErrNotFound = errors.New("no restaurant with this id exists")

// ErrNoMatches indicates a rating filter left nothing to show.
var ErrNoMatches = errors.New("no restaurants found with this rating or above")

// ErrInvalidID is returned for ids below 1.
var ErrInvalidID = errors.New("id must be a positive integer")
