package client

import "errors"

// ErrInvalidName indicates a blank or oversized client name.
var ErrInvalidName = errors.New("client name must be non-blank and at most 50 characters")
