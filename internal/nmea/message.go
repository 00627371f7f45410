package nmea

import "fmt"

// MessageType is the severity carried by a TXT sentence.
type MessageType uint8

const (
	MessageError MessageType = iota + 1
	MessageWarning
	MessageNotice
	// MessageUser is an application specific message.
	MessageUser
)

var messageCodes = [...]struct {
	code string
	kind MessageType
}{
	{"00", MessageError},
	{"01", MessageWarning},
	{"02", MessageNotice},
	{"07", MessageUser},
}

// ParseMessageType decodes a two-digit TXT message type code. Codes are
// matched exactly; an unknown code is ErrUnsupportedCode.
func ParseMessageType(field string, present bool) (MessageType, bool, error) {
	if !present || field == "" {
		return 0, false, nil
	}
	for _, c := range messageCodes {
		if c.code == field {
			return c.kind, true, nil
		}
	}
	return 0, false, ErrUnsupportedCode
}

// Code returns the wire code for t, or "" if t is not a known type.
func (t MessageType) Code() string {
	for _, c := range messageCodes {
		if c.kind == t {
			return c.code
		}
	}
	return ""
}

func (t MessageType) String() string {
	switch t {
	case MessageError:
		return "error"
	case MessageWarning:
		return "warning"
	case MessageNotice:
		return "notice"
	case MessageUser:
		return "user"
	default:
		return fmt.Sprintf("MessageType(%d)", uint8(t))
	}
}

func (t MessageType) MarshalText() ([]byte, error) {
	switch t {
	case MessageError, MessageWarning, MessageNotice, MessageUser:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("nmea: invalid message type %d", uint8(t))
	}
}
