package iers

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRange(t *testing.T) {
	start, end := Default().Range()
	assert.Equal(t, day(1972, 6, 1), start)
	assert.Equal(t, day(2023, 5, 6), end)
}

// TestDUT1 checks known offsets from the embedded table.
func TestDUT1(t *testing.T) {
	tbl := Default()
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"first covered day", day(1972, 6, 1), -2},
		{"last covered day", day(2023, 5, 6), 0},
		{"after 2012 leap second", day(2012, 7, 4), 4},
		{"before 2012 leap second", day(2012, 6, 30), -6},
		{"end of 1999", day(1999, 12, 31), 4},
		{"end of 2016", day(2016, 12, 31), -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tbl.DUT1(tt.date))
		})
	}
}

// TestDUT1Clamping queries outside the covered span.
func TestDUT1Clamping(t *testing.T) {
	tbl := Embedded(nil)
	assert.Equal(t, -2, tbl.DUT1(day(1970, 1, 1)), "clamps to the first entry")
	assert.Equal(t, 0, tbl.DUT1(day(2026, 8, 29)), "clamps to the last entry")
	// Time-of-day must not shift the day index.
	assert.Equal(t, -2, tbl.DUT1(time.Date(1972, 6, 1, 23, 59, 0, 0, time.UTC)))
}

// TestOutdatedWarning checks the one-shot advisory for queries past the
// table that fresher data should cover.
func TestOutdatedWarning(t *testing.T) {
	logger, hook := test.NewNullLogger()
	tbl := Embedded(logger)
	tbl.DUT1(day(2024, 1, 1))
	tbl.DUT1(day(2024, 1, 2))
	require.Len(t, hook.Entries, 1, "advisory is logged once")
	assert.Contains(t, hook.LastEntry().Message, "outdated")

	// Far-future queries are beyond any plausible prediction horizon
	// and stay silent.
	logger2, hook2 := test.NewNullLogger()
	tbl2 := Embedded(logger2)
	tbl2.DUT1(time.Now().UTC().AddDate(2, 0, 0))
	assert.Empty(t, hook2.Entries)
}

// TestEmbeddedData sanity-checks the decoded run-length table.
func TestEmbeddedData(t *testing.T) {
	offsets := decodeRuns(dut1Runs)
	require.Len(t, offsets, 18602)
	assert.Equal(t, int8(-2), offsets[0])
	assert.Equal(t, int8(0), offsets[len(offsets)-1])
	for _, v := range offsets {
		require.GreaterOrEqual(t, v, int8(-9))
		require.LessOrEqual(t, v, int8(9))
	}
}

// TestIsLeapSecond detects the sign change across month boundaries.
func TestIsLeapSecond(t *testing.T) {
	tbl := Default()
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"June 2012 insertion", day(2012, 6, 30), true},
		{"any day of the leap month", day(2012, 6, 1), true},
		{"month after insertion", day(2012, 7, 4), false},
		{"December 2016 insertion", day(2016, 12, 1), true},
		{"June 1985 insertion", day(1985, 6, 1), true},
		{"ordinary month", day(2021, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tbl.IsLeapSecond(tt.date))
		})
	}
}

// TestNew covers an externally supplied table, including a deleted leap
// second expressed as a positive-to-negative sign change.
func TestNew(t *testing.T) {
	offsets := []int8{3, 2, 1, -1, -2}
	tbl := New(time.Date(2030, 6, 28, 15, 30, 0, 0, time.UTC), offsets, nil)
	start, end := tbl.Range()
	assert.Equal(t, day(2030, 6, 28), start, "start is truncated to its UTC day")
	assert.Equal(t, day(2030, 7, 2), end)
	assert.Equal(t, 2, tbl.DUT1(day(2030, 6, 29)))
	assert.True(t, tbl.IsLeapSecond(day(2030, 6, 30)))
	assert.False(t, tbl.IsLeapSecond(day(2030, 7, 1)))
}
