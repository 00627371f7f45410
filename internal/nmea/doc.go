// Package nmea decodes the fields of NMEA-0183 sentence bodies into typed
// records.
//
// Callers own framing: they strip the leading '$', verify the checksum and
// pick the sentence kind from the identifier. What remains is handed to a
// record parser as a *Fields cursor positioned at the first data field.
//
// Every record parser has three outcomes:
//   - a record and a nil error
//   - a nil record and a nil error when a mandatory field is empty or missing
//   - a nil record and an error matching ErrMalformedField
//
// Nothing in this package allocates on the parse path except the record
// itself; free text is held in a fixed-capacity buffer.
package nmea
