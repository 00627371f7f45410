package nmea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUint8(t *testing.T) {
	cases := []struct {
		in      string
		present bool
		want    uint8
		wantOK  bool
		wantErr bool
	}{
		{in: "", present: false},
		{in: "", present: true},
		{in: "0", present: true, want: 0, wantOK: true},
		{in: "255", present: true, want: 255, wantOK: true},
		{in: "07", present: true, want: 7, wantOK: true},
		{in: "256", present: true, wantErr: true},
		{in: "999", present: true, wantErr: true},
		{in: "-1", present: true, wantErr: true},
		{in: "-0", present: true, wantErr: true},
		{in: "abc", present: true, wantErr: true},
		{in: " 5", present: true, wantErr: true},
		{in: "1.5", present: true, wantErr: true},
	}
	for _, tc := range cases {
		got, ok, err := ParseUint8(tc.in, tc.present)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrMalformedField, "in=%q", tc.in)
			continue
		}
		require.NoError(t, err, "in=%q", tc.in)
		assert.Equal(t, tc.wantOK, ok, "in=%q", tc.in)
		assert.Equal(t, tc.want, got, "in=%q", tc.in)
	}
}

func TestParseInt8(t *testing.T) {
	v, ok, err := ParseInt8("-5", true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int8(-5), v)

	v, ok, err = ParseInt8("-128", true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int8(-128), v)

	_, _, err = ParseInt8("128", true)
	require.ErrorIs(t, err, ErrMalformedField)
	_, _, err = ParseInt8("--1", true)
	require.ErrorIs(t, err, ErrMalformedField)

	_, ok, err = ParseInt8("", true)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestParseUint16(t *testing.T) {
	v, ok, err := ParseUint16("2024", true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint16(2024), v)

	v, ok, err = ParseUint16("65535", true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint16(65535), v)

	_, _, err = ParseUint16("65536", true)
	require.ErrorIs(t, err, ErrMalformedField)
	_, _, err = ParseUint16("99999999999", true)
	require.ErrorIs(t, err, ErrMalformedField)

	_, ok, err = ParseUint16("", false)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestParseMessageType(t *testing.T) {
	cases := map[string]MessageType{
		"00": MessageError,
		"01": MessageWarning,
		"02": MessageNotice,
		"07": MessageUser,
	}
	for code, want := range cases {
		got, ok, err := ParseMessageType(code, true)
		require.NoError(t, err, code)
		require.True(t, ok, code)
		assert.Equal(t, want, got, code)
		assert.Equal(t, code, got.Code())
	}

	for _, present := range []bool{false, true} {
		_, ok, err := ParseMessageType("", present)
		require.NoError(t, err)
		require.False(t, ok)
	}

	for _, bad := range []string{"99", "0", "2", "000", "03", "a0"} {
		_, _, err := ParseMessageType(bad, true)
		assert.ErrorIs(t, err, ErrUnsupportedCode, bad)
		assert.ErrorIs(t, err, ErrMalformedField, bad)
	}
}

func TestMessageType_MarshalText(t *testing.T) {
	b, err := MessageNotice.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "notice", string(b))

	_, err = MessageType(0).MarshalText()
	require.Error(t, err)
}

func TestParseTime(t *testing.T) {
	tod, ok, err := ParseTime("123519", true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Time{Hours: 12, Minutes: 35, Seconds: 19}, tod)

	tod, ok, err = ParseTime("235959.50", true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Time{Hours: 23, Minutes: 59, Seconds: 59.5}, tod)

	_, ok, err = ParseTime("", true)
	require.NoError(t, err)
	require.False(t, ok)
	_, ok, err = ParseTime("", false)
	require.NoError(t, err)
	require.False(t, ok)

	tod, ok, err = ParseTime("235959.999999", true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint8(23), tod.Hours)
	require.Equal(t, uint8(59), tod.Minutes)
	require.Less(t, tod.Seconds, float32(60))
	require.Greater(t, tod.Seconds, float32(59.99))

	for _, bad := range []string{
		"1235", "243519", "126019", "123560", "12a519", "1235x9", "1235-1", "123519.x",
		"123519.5e-1", "123519e1", "123519.", "123519,5", "123519.5.", "123519 ", "123519.-5",
	} {
		_, _, err := ParseTime(bad, true)
		assert.ErrorIs(t, err, ErrTimeFormat, bad)
		assert.ErrorIs(t, err, ErrMalformedField, bad)
	}
}
