package nmea

import "fmt"

// Source identifies the navigation system a sentence originated from. The
// record parsers pass it through untouched.
type Source uint8

const (
	SourceGPS Source = iota + 1
	SourceGLONASS
	SourceGalileo
	SourceBeiDou
	SourceQZSS
	SourceNavIC
	// SourceGNSS marks a combined multi-constellation solution.
	SourceGNSS
)

var sourceNames = map[Source]string{
	SourceGPS:     "gps",
	SourceGLONASS: "glonass",
	SourceGalileo: "galileo",
	SourceBeiDou:  "beidou",
	SourceQZSS:    "qzss",
	SourceNavIC:   "navic",
	SourceGNSS:    "gnss",
}

func (s Source) String() string {
	if n, ok := sourceNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Source(%d)", uint8(s))
}

func (s Source) MarshalText() ([]byte, error) {
	n, ok := sourceNames[s]
	if !ok {
		return nil, fmt.Errorf("nmea: invalid source %d", uint8(s))
	}
	return []byte(n), nil
}

func (s *Source) UnmarshalText(b []byte) error {
	v, err := LookupSource(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// LookupSource resolves a source by the lower-case name String returns.
func LookupSource(name string) (Source, error) {
	for s, n := range sourceNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("nmea: unknown source %q", name)
}
