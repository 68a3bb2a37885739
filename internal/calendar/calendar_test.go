package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseShift(t *testing.T) {
	sh, err := ParseShift("08:00-12:00")
	require.NoError(t, err)
	assert.Equal(t, Shift{From: TimeOfDay{Hour: 8}, To: TimeOfDay{Hour: 12}}, sh)
	assert.Equal(t, 240, sh.Minutes())
	assert.Equal(t, "08:00-12:00", sh.String())
}

func TestParseShiftAMPM(t *testing.T) {
	sh, err := ParseShift("2pm-6pm")
	require.NoError(t, err)
	assert.Equal(t, 14, sh.From.Hour)
	assert.Equal(t, 18, sh.To.Hour)
}

func TestParseShiftInvalid(t *testing.T) {
	invalid := []string{"", "08:00", "12:00-08:00", "08:00-08:00", "8-x"}

	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			_, err := ParseShift(input)
			assert.Error(t, err)
		})
	}
}

func TestIsWorkingDayWeekend(t *testing.T) {
	cal := Default()

	assert.True(t, cal.IsWorkingDay(date(2024, time.January, 5)))   // Friday
	assert.False(t, cal.IsWorkingDay(date(2024, time.January, 6)))  // Saturday
	assert.False(t, cal.IsWorkingDay(date(2024, time.January, 7)))  // Sunday
	assert.True(t, cal.IsWorkingDay(date(2024, time.January, 8)))   // Monday
}

func TestIsWorkingDayHoliday(t *testing.T) {
	cal := Default()
	cal.Holidays["2024-01-08"] = true

	assert.False(t, cal.IsWorkingDay(date(2024, time.January, 8)))
	assert.True(t, cal.IsWorkingDay(date(2024, time.January, 9)))
}

func TestWindowsFor(t *testing.T) {
	cal := Default()
	windows := cal.WindowsFor(date(2024, time.January, 5))

	require.Len(t, windows, 2)
	assert.Equal(t, time.Date(2024, time.January, 5, 8, 0, 0, 0, time.UTC), windows[0].Start)
	assert.Equal(t, time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC), windows[0].End)
	assert.Equal(t, time.Date(2024, time.January, 5, 14, 0, 0, 0, time.UTC), windows[1].Start)
	assert.Equal(t, time.Date(2024, time.January, 5, 18, 0, 0, 0, time.UTC), windows[1].End)
}

func TestWindowsForNonWorkingDay(t *testing.T) {
	cal := Default()

	assert.Empty(t, cal.WindowsFor(date(2024, time.January, 6)))
}

func TestDailyCapacityMinutes(t *testing.T) {
	assert.Equal(t, 480, Default().DailyCapacityMinutes())

	single := Calendar{Shifts: []Shift{{From: TimeOfDay{Hour: 9}, To: TimeOfDay{Hour: 17}}}}
	assert.Equal(t, 480, single.DailyCapacityMinutes())
}

func TestWorkingDaysSkipsWeekendsAndHolidays(t *testing.T) {
	cal := Default()
	cal.Holidays["2024-01-09"] = true

	// Fri Jan 5 .. Wed Jan 10: Sat/Sun excluded by recurrence, Tue by holiday.
	days, err := WorkingDays(cal, date(2024, time.January, 5), date(2024, time.January, 10))
	require.NoError(t, err)

	var got []string
	for _, d := range days {
		got = append(got, d.Format(DayKeyLayout))
	}
	assert.Equal(t, []string{"2024-01-05", "2024-01-08", "2024-01-10"}, got)
}

func TestWorkingDaysInvertedRange(t *testing.T) {
	days, err := WorkingDays(Default(), date(2024, time.January, 10), date(2024, time.January, 5))
	assert.NoError(t, err)
	assert.Empty(t, days)
}
