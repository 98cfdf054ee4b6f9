package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "hh:mm", input: "09:00", want: "09:00"},
		{name: "postgres time", input: "17:30:00", want: "17:30"},
		{name: "single digit hour", input: "9:00", want: "09:00"},
		{name: "garbage", input: "soon", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_Display(t *testing.T) {
	assert.Equal(t, "9:00 AM", MustTimeString("09:00").Display())
	assert.Equal(t, "12:00 PM", MustTimeString("12:00").Display())
	assert.Equal(t, "5:00 PM", MustTimeString("17:00").Display())
	assert.Equal(t, "12:15 AM", MustTimeString("00:15").Display())
	assert.Equal(t, "", TimeString{}.Display())
}

func TestTimeString_Compare(t *testing.T) {
	nine := MustTimeString("09:00")
	ten := MustTimeString("10:00")

	assert.True(t, nine.IsBefore(ten))
	assert.True(t, ten.IsAfter(nine))
	assert.True(t, nine.Equal(MustTimeString("09:00")))
	assert.False(t, nine.IsZero())
	assert.True(t, TimeString{}.IsZero())
}

func TestTimeString_ScanValue(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("14:00:00")))
	assert.Equal(t, "14:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 11, 30, 0, 0, time.UTC)))
	assert.Equal(t, "11:30", ts.String())

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "11:30", v)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	got := MustTimeString("10:00").On(date)
	assert.Equal(t, time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC), got)
}
