package nmea

import "strings"

// Delimiter separates fields within a sentence body.
const Delimiter = ','

// Fields is a forward-only cursor over the comma-separated fields of a
// sentence body. It yields exactly the elements strings.Split(body, ",")
// would, without allocating.
//
// The zero value is an exhausted cursor.
type Fields struct {
	rest string
	more bool
}

func NewFields(body string) Fields {
	return Fields{rest: body, more: true}
}

// Next returns the next field. ok is false once the cursor is exhausted.
func (f *Fields) Next() (field string, ok bool) {
	field, ok = f.Peek()
	if !ok {
		return "", false
	}
	if i := strings.IndexByte(f.rest, Delimiter); i >= 0 {
		f.rest = f.rest[i+1:]
	} else {
		f.rest = ""
		f.more = false
	}
	return field, true
}

// Peek returns the next field without consuming it.
func (f *Fields) Peek() (field string, ok bool) {
	if !f.more {
		return "", false
	}
	if i := strings.IndexByte(f.rest, Delimiter); i >= 0 {
		return f.rest[:i], true
	}
	return f.rest, true
}

// More reports whether Next would return a field.
func (f *Fields) More() bool {
	return f.more
}
