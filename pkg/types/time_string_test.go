package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{"09:00", "09:00", false},
		{"9:00", "09:00", false},
		{"23:59", "23:59", false},
		{"00:00", "00:00", false},
		{"24:00", "", true},
		{"12:60", "", true},
		{"12", "", true},
		{"mediodía", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 9, 11, 9, 5, 30, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestTimeString_HourMinute(t *testing.T) {
	h, m, err := TimeString("14:30").HourMinute()
	require.NoError(t, err)
	assert.Equal(t, 14, h)
	assert.Equal(t, 30, m)

	_, _, err = TimeString("bad").HourMinute()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("18:00").IsAfter("12:30"))
	assert.False(t, TimeString("12:30").IsAfter("18:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("12:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:00"), got)

	got, err = TimeString("09:00").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:30"), got)

	// El desplazamiento no puede salir del día
	_, err = TimeString("23:00").AddMinutes(90)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:00"))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan([]byte("10:30")))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 9, 11, 12, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("12:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
