package core

import (
	"testing"

	"attendo.app/attendo/model"
	"github.com/stretchr/testify/assert"
)

func TestParseClockTimeWithMarker(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected model.TimeOfDay
	}{
		{
			name:     "Midnight",
			input:    "12:00 AM",
			expected: model.TimeOfDay{Hour: 0, Minute: 0},
		},
		{
			name:     "Noon",
			input:    "12:00 PM",
			expected: model.TimeOfDay{Hour: 12, Minute: 0},
		},
		{
			name:     "Afternoon",
			input:    "01:30 PM",
			expected: model.TimeOfDay{Hour: 13, Minute: 30},
		},
		{
			name:     "Morning",
			input:    "08:00 AM",
			expected: model.TimeOfDay{Hour: 8, Minute: 0},
		},
		{
			name:     "Late evening",
			input:    "11:59 PM",
			expected: model.TimeOfDay{Hour: 23, Minute: 59},
		},
		{
			name:     "Lowercase marker",
			input:    "09:15 am",
			expected: model.TimeOfDay{Hour: 9, Minute: 15},
		},
		{
			name:     "No space before marker",
			input:    "02:45pm",
			expected: model.TimeOfDay{Hour: 14, Minute: 45},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseClockTime(tt.input, false)
			assert.NoError(t, err)
			assert.NotNil(t, res.Time)
			assert.Equal(t, tt.expected, *res.Time)
			// Marker is authoritative, never a hint-based guess.
			assert.False(t, res.Inferred)
		})
	}
}

func TestParseClockTimeWithoutMarker(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		afternoon bool
		expected  model.TimeOfDay
		inferred  bool
	}{
		{
			name:      "Morning hint unchanged",
			input:     "08:00",
			afternoon: false,
			expected:  model.TimeOfDay{Hour: 8, Minute: 0},
		},
		{
			name:      "Afternoon hint shifts",
			input:     "01:15",
			afternoon: true,
			expected:  model.TimeOfDay{Hour: 13, Minute: 15},
			inferred:  true,
		},
		{
			name:      "Hour 12 stays noon even with afternoon hint",
			input:     "12:30",
			afternoon: true,
			expected:  model.TimeOfDay{Hour: 12, Minute: 30},
			inferred:  true,
		},
		{
			name:      "Already 24-hour zero hour",
			input:     "0:45",
			afternoon: false,
			expected:  model.TimeOfDay{Hour: 0, Minute: 45},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseClockTime(tt.input, tt.afternoon)
			assert.NoError(t, err)
			assert.NotNil(t, res.Time)
			assert.Equal(t, tt.expected, *res.Time)
			assert.Equal(t, tt.inferred, res.Inferred)
		})
	}
}

func TestParseClockTimeNotSet(t *testing.T) {
	for _, input := range []string{"", "   ", "--:--"} {
		res, err := ParseClockTime(input, true)
		assert.NoError(t, err)
		assert.Nil(t, res.Time)
	}
}

func TestParseClockTimeMalformed(t *testing.T) {
	inputs := []string{
		"13:00",    // hour beyond 12 needs no marker, reject
		"25:00 AM", // hour out of range
		"08:60",    // minute out of range
		"8.30",     // no colon
		"aa:bb",
		"PM",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseClockTime(input, false)
			assert.ErrorIs(t, err, ErrMalformedTime)
		})
	}
}
