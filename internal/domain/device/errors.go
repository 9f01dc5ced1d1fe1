package device

import "errors"

var (
	ErrInvalidDevice = errors.New("invalid or inactive device")
)
