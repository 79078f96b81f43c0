package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeOfDayScan(t *testing.T) {
	var tod TimeOfDay

	assert.NoError(t, tod.Scan("13:05"))
	assert.Equal(t, TimeOfDay{Hour: 13, Minute: 5}, tod)

	assert.NoError(t, tod.Scan([]byte("08:30:00")))
	assert.Equal(t, TimeOfDay{Hour: 8, Minute: 30}, tod)

	assert.Error(t, tod.Scan("24:00"))
	assert.Error(t, tod.Scan("not a time"))
}

func TestTimeOfDayValue(t *testing.T) {
	v, err := TimeOfDay{Hour: 7, Minute: 5}.Value()
	assert.NoError(t, err)
	assert.Equal(t, "07:05", v)
}

func TestTimeOfDayMinuteOfDay(t *testing.T) {
	assert.Equal(t, 0, TimeOfDay{}.MinuteOfDay())
	assert.Equal(t, 1020, TimeOfDay{Hour: 17}.MinuteOfDay())
}
