package nmea

import (
	"math"
	"strconv"
	"time"
)

// Date is a calendar date as sent on the wire. Year is either two or four
// digits depending on the sentence.
type Date struct {
	Day   uint8  `json:"day" yaml:"day"`
	Month uint8  `json:"month" yaml:"month"`
	Year  uint16 `json:"year" yaml:"year"`
}

// FullYear expands a two-digit year into 20yy.
func (d Date) FullYear() int {
	if d.Year < 100 {
		return 2000 + int(d.Year)
	}
	return int(d.Year)
}

// Time is a UTC time of day. Seconds carries the fractional part.
type Time struct {
	Hours   uint8   `json:"hours" yaml:"hours"`
	Minutes uint8   `json:"minutes" yaml:"minutes"`
	Seconds float32 `json:"seconds" yaml:"seconds"`
}

// DateTime pairs a Date with the Time of day it was reported at.
type DateTime struct {
	Date Date `json:"date" yaml:"date"`
	Time Time `json:"time" yaml:"time"`
}

// UTC converts dt to a time.Time. No calendar validation is done beyond
// what time.Date normalizes.
func (dt DateTime) UTC() time.Time {
	whole := int(dt.Time.Seconds)
	nsec := int((float64(dt.Time.Seconds) - float64(whole)) * 1e9)
	return time.Date(dt.Date.FullYear(), time.Month(dt.Date.Month), int(dt.Date.Day),
		int(dt.Time.Hours), int(dt.Time.Minutes), whole, nsec, time.UTC)
}

// ParseTime parses an hhmmss or hhmmss.sss field.
func ParseTime(field string, present bool) (Time, bool, error) {
	if !present || field == "" {
		return Time{}, false, nil
	}
	if len(field) < 6 {
		return Time{}, false, ErrTimeFormat
	}
	hours, err := parseDigits(field[0:2])
	if err != nil || hours > 23 {
		return Time{}, false, ErrTimeFormat
	}
	minutes, err := parseDigits(field[2:4])
	if err != nil || minutes > 59 {
		return Time{}, false, ErrTimeFormat
	}
	if field[4] < '0' || field[4] > '9' || field[5] < '0' || field[5] > '9' {
		return Time{}, false, ErrTimeFormat
	}
	if frac := field[6:]; frac != "" {
		if frac[0] != '.' || len(frac) == 1 {
			return Time{}, false, ErrTimeFormat
		}
		if _, err := parseDigits(frac[1:]); err != nil {
			return Time{}, false, ErrTimeFormat
		}
	}
	seconds, err := strconv.ParseFloat(field[4:], 64)
	if err != nil || seconds >= 60 {
		return Time{}, false, ErrTimeFormat
	}
	// Narrowing may round 59.999999 up to 60; keep the value inside the minute.
	secs := float32(seconds)
	if secs >= 60 {
		secs = math.Nextafter32(60, 0)
	}
	return Time{Hours: hours, Minutes: minutes, Seconds: secs}, true, nil
}

// parseDigits accepts ASCII digits only. The value is meaningful for
// strings of up to two digits; longer runs are only validated.
func parseDigits(s string) (uint8, error) {
	var v uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, ErrTimeFormat
		}
		v = v*10 + (c - '0')
	}
	return v, nil
}
