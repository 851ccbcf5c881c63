package validator_test

import (
	"airline/shared/validator"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberInRange_Seats(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "0", wantErr: true},
		{raw: "1", want: 1},
		{raw: "180", want: 180},
		{raw: "499", want: 499},
		{raw: "500", wantErr: true},
		{raw: "-5", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "12a", wantErr: true},
		{raw: "99999999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := validator.NumberInRange("seats", tt.raw, "gte=1,lt=500")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumber(t *testing.T) {
	got, err := validator.Number("age", "0")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = validator.Number("age", " 5")
	assert.Error(t, err)

	_, err = validator.PositiveNumber("plane ID", "0")
	assert.Error(t, err)

	got, err = validator.PositiveNumber("plane ID", "101")
	require.NoError(t, err)
	assert.Equal(t, 101, got)
}

func TestText(t *testing.T) {
	got, err := validator.Text("plane make", "Boeing", 32)
	require.NoError(t, err)
	assert.Equal(t, "Boeing", got)

	_, err = validator.Text("plane make", "", 32)
	assert.EqualError(t, err, "plane make is required")

	_, err = validator.Text("plane make", "abcdefghijklmnopqrstuvwxyz0123456", 32)
	assert.EqualError(t, err, "plane make must be at most 32 characters")

	got, err = validator.OptionalText("nationality", "", 25)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = validator.AirportCode("arrival airport", "LAXXXX")
	assert.Error(t, err)

	got, err = validator.AirportCode("arrival airport", "LAX")
	require.NoError(t, err)
	assert.Equal(t, "LAX", got)
}

func TestPhone(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{raw: "5551234567"},
		{raw: "12345", wantErr: true},
		{raw: "12345678901", wantErr: true},
		{raw: "123-456-7890", wantErr: true},
		{raw: "555123456a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := validator.Phone(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.raw, got)
		})
	}
}

func TestZipcode(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{raw: "92521"},
		{raw: "92521-1234"},
		{raw: "9252", wantErr: true},
		{raw: "92521-12", wantErr: true},
		{raw: "abcde", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := validator.Zipcode(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "C", want: "C"},
		{raw: "confirmed", want: "C"},
		{raw: "Confirmed", want: "C"},
		{raw: "w", want: "W"},
		{raw: "WAITLISTED", want: "W"},
		{raw: "R", want: "R"},
		{raw: "reserved", want: "R"},
		{raw: "X", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "conf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := validator.Status(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := validator.Status(got)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestDate(t *testing.T) {
	got, err := validator.Date("departure date", "2023-02-28")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), got)

	for _, raw := range []string{"2023-02-30", "23-02-28", "2023/02/28", ""} {
		_, err := validator.Date("departure date", raw)
		assert.Error(t, err, raw)
	}
}

func TestGender(t *testing.T) {
	got, err := validator.Gender("f")
	require.NoError(t, err)
	assert.Equal(t, "F", got)

	got, err = validator.Gender("M")
	require.NoError(t, err)
	assert.Equal(t, "M", got)

	_, err = validator.Gender("x")
	assert.Error(t, err)
}

func TestYesNo(t *testing.T) {
	for raw, want := range map[string]bool{"yes": true, "Y": true, "no": false, "N": false} {
		got, err := validator.YesNo(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := validator.YesNo("maybe")
	assert.Error(t, err)
}

func TestField(t *testing.T) {
	seats := validator.Field("seats", validator.Range("gte=1,lt=500"))

	value, err := seats("499")
	require.NoError(t, err)
	assert.Equal(t, 499, value)

	_, err = seats("500")
	assert.EqualError(t, err, "seats must be less than 500")

	planeMake := validator.Field("make", validator.MaxText(32))

	_, err = planeMake("")
	assert.EqualError(t, err, "make is required")

	nationality := validator.Field("nationality", validator.OptionalMaxText(25))

	text, err := nationality("")
	require.NoError(t, err)
	assert.Empty(t, text)
}
