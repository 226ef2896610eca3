package domain

import "errors"

// ErrNoVersionFile is returned when the release version file does not exist.
var ErrNoVersionFile = errors.New("version file not found")
