package file

import "errors"

// ErrFileNotFound covers both an absent row and a row owned by someone else;
// ownership is never leaked as a distinguishable error.
var ErrFileNotFound = errors.New("file not found")
