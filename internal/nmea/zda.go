package nmea

import "time"

// ZDA is UTC time and date plus the receiver's local zone offset.
//
// Fields:
//
//	0: time (hhmmss.sss)
//	1: day
//	2: month
//	3: year (2 or 4 digits)
//	4: local zone hours (-13..13)
//	5: local zone minutes
type ZDA struct {
	Source        Source   `json:"source" yaml:"source"`
	DateTime      DateTime `json:"datetime" yaml:"datetime"`
	OffsetHours   *int8    `json:"offset_hours,omitempty" yaml:"offset_hours,omitempty"`
	OffsetMinutes *uint8   `json:"offset_minutes,omitempty" yaml:"offset_minutes,omitempty"`
}

// ParseZDA assembles a ZDA record from f. Time, day, month and year are
// required; either offset may be absent.
func ParseZDA(src Source, f *Fields) (*ZDA, error) {
	tod, timeOK, err := ParseTime(f.Next())
	if err != nil {
		return nil, err
	}
	date, dateOK, err := parseZDADate(f)
	if err != nil {
		return nil, err
	}
	offHours, offHoursOK, err := ParseInt8(f.Next())
	if err != nil {
		return nil, err
	}
	offMinutes, offMinutesOK, err := ParseUint8(f.Next())
	if err != nil {
		return nil, err
	}

	if !timeOK || !dateOK {
		return nil, nil
	}
	out := &ZDA{
		Source:   src,
		DateTime: DateTime{Date: date, Time: tod},
	}
	if offHoursOK {
		out.OffsetHours = &offHours
	}
	if offMinutesOK {
		out.OffsetMinutes = &offMinutes
	}
	return out, nil
}

func parseZDADate(f *Fields) (Date, bool, error) {
	day, dayOK, err := ParseUint8(f.Next())
	if err != nil {
		return Date{}, false, err
	}
	month, monthOK, err := ParseUint8(f.Next())
	if err != nil {
		return Date{}, false, err
	}
	year, yearOK, err := ParseUint16(f.Next())
	if err != nil {
		return Date{}, false, err
	}
	if !dayOK || !monthOK || !yearOK {
		return Date{}, false, nil
	}
	return Date{Day: day, Month: month, Year: year}, true, nil
}

// Offset returns the local zone offset from UTC. The sign of the hours
// applies to the minutes. ok is false when no hour offset was sent.
func (z *ZDA) Offset() (offset time.Duration, ok bool) {
	if z.OffsetHours == nil {
		return 0, false
	}
	offset = time.Duration(*z.OffsetHours) * time.Hour
	if z.OffsetMinutes != nil {
		m := time.Duration(*z.OffsetMinutes) * time.Minute
		if offset < 0 {
			m = -m
		}
		offset += m
	}
	return offset, true
}

// Local returns the record's instant in a fixed zone built from the
// offsets, or in UTC if none was sent.
func (z *ZDA) Local() time.Time {
	utc := z.DateTime.UTC()
	off, ok := z.Offset()
	if !ok {
		return utc
	}
	return utc.In(time.FixedZone("", int(off/time.Second)))
}
