package nmea

// TextCapacity is the largest TXT payload, in bytes, a record can hold.
const TextCapacity = 69

// Text is an append-only string buffer with a fixed capacity of
// TextCapacity bytes. The zero value is empty and ready to use.
type Text struct {
	buf [TextCapacity]byte
	n   uint8
}

// Append adds s to the buffer. If s does not fit, the buffer is left
// unchanged and ErrTextOverflow is returned.
func (t *Text) Append(s string) error {
	if len(s) > TextCapacity-int(t.n) {
		return ErrTextOverflow
	}
	t.n += uint8(copy(t.buf[t.n:], s))
	return nil
}

// AppendByte adds c, failing with ErrTextOverflow when the buffer is full.
func (t *Text) AppendByte(c byte) error {
	if int(t.n) == TextCapacity {
		return ErrTextOverflow
	}
	t.buf[t.n] = c
	t.n++
	return nil
}

func (t Text) Len() int { return int(t.n) }

func (t Text) Cap() int { return TextCapacity }

func (t Text) String() string {
	return string(t.buf[:t.n])
}

func (t Text) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
