// Package iers adapts a frozen, day-indexed table of DUT1 offsets for
// use by the timecode engine. The table is a read-only snapshot;
// refreshing it from authoritative sources is an external concern.
package iers

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Table is a contiguous span of daily DUT1 offsets (tenths of a second)
// starting at a known UTC day. Queries outside the span clamp to the
// nearest edge. Tables are immutable and safe for concurrent readers.
type Table struct {
	start    time.Time
	offsets  []int8
	logger   *logrus.Logger
	warnOnce sync.Once
}

// New builds a Table from an externally supplied span of offsets. The
// start time is truncated to its UTC day.
func New(start time.Time, offsets []int8, logger *logrus.Logger) *Table {
	y, m, d := start.UTC().Date()
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Table{
		start:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		offsets: offsets,
		logger:  logger,
	}
}

// Embedded returns a fresh adapter over the embedded historical data,
// logging advisories to the given logger.
func Embedded(logger *logrus.Logger) *Table {
	return New(dut1DataStart, decodeRuns(dut1Runs), logger)
}

var defaultTable = Embedded(nil)

// Default returns the shared embedded historical table.
func Default() *Table {
	return defaultTable
}

// Range returns the first and last day covered by the table.
func (t *Table) Range() (time.Time, time.Time) {
	return t.start, t.start.AddDate(0, 0, len(t.offsets)-1)
}

// DUT1 returns the broadcast UT1-UTC offset for a day in tenths of a
// second. Days outside the covered span clamp to the nearest edge; a
// query past the end of the table logs an advisory when fresher data
// could plausibly exist, but never fails.
func (t *Table) DUT1(date time.Time) int {
	y, m, d := date.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	i := int(day.Sub(t.start) / (24 * time.Hour))
	switch {
	case i < 0:
		return int(t.offsets[0])
	case i >= len(t.offsets):
		t.maybeWarnOutdated(day)
		return int(t.offsets[len(t.offsets)-1])
	default:
		return int(t.offsets[i])
	}
}

// maybeWarnOutdated logs once if the queried day is near enough to the
// present that an updated table should already cover it. IERS
// predictions run roughly 330 days ahead.
func (t *Table) maybeWarnOutdated(day time.Time) {
	if day.Before(time.Now().UTC().AddDate(0, 0, 330)) {
		t.warnOnce.Do(func() {
			_, end := t.Range()
			t.logger.WithFields(logrus.Fields{
				"date":      day.Format("2006-01-02"),
				"table_end": end.Format("2006-01-02"),
			}).Warn("DUT1 table may be outdated; refresh it for better DUT1 and leap second information")
		})
	}
}

// IsLeapSecond reports whether a leap second occurs at the end of the
// month containing the given day: the broadcast DUT1 value changes sign
// across the month boundary exactly when one is inserted or deleted.
func (t *Table) IsLeapSecond(date time.Time) bool {
	y, m, d := date.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	next := day
	for next.Month() == day.Month() {
		next = next.AddDate(0, 0, 1)
	}
	return t.DUT1(day)*t.DUT1(next) < 0
}
