package nmea

import (
	"errors"
	"fmt"
)

// ErrMalformedField is returned when a present, non-empty field cannot be
// converted to its expected type or domain. The more specific errors below
// all match it with errors.Is.
var ErrMalformedField = errors.New("nmea: malformed field")

var (
	ErrUnsupportedCode = fmt.Errorf("%w: unsupported message kind", ErrMalformedField)
	ErrTextOverflow    = fmt.Errorf("%w: exceeded string size", ErrMalformedField)
	ErrTimeFormat      = fmt.Errorf("%w: incorrect time format", ErrMalformedField)
)
