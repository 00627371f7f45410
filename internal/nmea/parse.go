package nmea

import (
	"strconv"

	"fortio.org/safecast"
)

type integer interface {
	~int8 | ~uint8 | ~uint16
}

// parseInteger is the shared rule for numeric fields: a missing or empty
// field is None, anything else must be a base-10 integer in T's domain.
func parseInteger[T integer](field string, present bool) (T, bool, error) {
	if !present || field == "" {
		return 0, false, nil
	}
	var zero T
	// strconv tolerates "-0"; an unsigned field must not carry a sign at all.
	if field[0] == '-' && zero-1 > zero {
		return 0, false, ErrMalformedField
	}
	wide, err := strconv.ParseInt(field, 10, 32)
	if err != nil {
		return 0, false, ErrMalformedField
	}
	v, err := safecast.Conv[T](wide)
	if err != nil {
		return 0, false, ErrMalformedField
	}
	return v, true, nil
}

// ParseUint8 parses an optional unsigned 8-bit field.
func ParseUint8(field string, present bool) (uint8, bool, error) {
	return parseInteger[uint8](field, present)
}

// ParseInt8 parses an optional signed 8-bit field, e.g. a UTC offset in hours.
func ParseInt8(field string, present bool) (int8, bool, error) {
	return parseInteger[int8](field, present)
}

// ParseUint16 parses an optional unsigned 16-bit field, e.g. a four-digit year.
func ParseUint16(field string, present bool) (uint16, bool, error) {
	return parseInteger[uint16](field, present)
}
