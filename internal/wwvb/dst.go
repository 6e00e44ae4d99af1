package wwvb

import (
	"time"
	// Zone data must be available regardless of the host's tzdata
	// installation; the DST codes depend on it.
	_ "time/tzdata"
)

// Mountain is the station's reference zone for the broadcast DST bits.
var Mountain = mustLoadLocation("America/Denver")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// IsDST reports whether daylight saving time is active at 00:00 UTC of
// the given day in the given zone.
func IsDST(date time.Time, zone *time.Location) bool {
	y, m, d := date.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).In(zone).IsDST()
}

// dstCode computes the 2-bit broadcast DST value for a day: bit 0 is DST
// today, bit 1 is DST tomorrow.
func dstCode(year, days int, zone *time.Location) int {
	d0 := yearDay(year, days)
	d1 := d0.AddDate(0, 0, 1)
	code := 0
	if IsDST(d0, zone) {
		code |= 1
	}
	if IsDST(d1, zone) {
		code |= 2
	}
	return code
}

// yearDay returns 00:00 UTC of the given 1-based day of year.
func yearDay(year, days int) time.Time {
	return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days-1)
}

func firstSundayOnOrAfter(d time.Time) time.Time {
	daysToGo := (7 - int(d.Weekday())) % 7
	return d.AddDate(0, 0, daysToGo)
}

func firstSundayInMonth(year int, month time.Month) time.Time {
	return firstSundayOnOrAfter(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

func isDSTChangeDay(d time.Time, zone *time.Location) bool {
	return IsDST(d, zone) != IsDST(d.AddDate(0, 0, 1), zone)
}

// dstChangeHour returns the hour row (0..2) of the DST transition on the
// given day: transitions 1..3 hours after local midnight are probed.
// Later transitions (EET zones change at the 4th hour) have no dstTable
// row and report not-found.
func dstChangeHour(d time.Time, zone *time.Location) (int, bool) {
	y, m, day := d.UTC().Date()
	lt0 := time.Date(y, m, day, 0, 0, 0, 0, zone)
	dst0 := lt0.IsDST()
	for i := 1; i <= 3; i++ {
		if lt0.Add(time.Duration(i)*time.Hour).IsDST() != dst0 {
			return i - 1, true
		}
	}
	return 0, false
}

// dstChangeDateAndRow scans candidate Sundays for the next DST
// transition. When DST is in effect the scan is centered on the first
// Sunday of November; otherwise it starts at the first Sunday of March
// (of next year, when the date is already past March). The returned row
// is the week index used by the dstTable lookup.
func dstChangeDateAndRow(d time.Time, zone *time.Location) (time.Time, int, bool) {
	if IsDST(d, zone) {
		n := firstSundayInMonth(d.UTC().Year(), time.November)
		for offset := -28; offset < 28; offset += 7 {
			d1 := n.AddDate(0, 0, offset)
			if isDSTChangeDay(d1, zone) {
				return d1, (offset + 28) / 7, true
			}
		}
	} else {
		year := d.UTC().Year()
		if d.UTC().Month() > time.March {
			year++
		}
		m := firstSundayInMonth(year, time.March)
		for offset := 0; offset < 52; offset += 7 {
			d1 := m.AddDate(0, 0, offset)
			if isDSTChangeDay(d1, zone) {
				return d1, offset / 7, true
			}
		}
	}
	return time.Time{}, 0, false
}

// dstTable maps [dst now][transition hour][week row] to the 6-bit
// "dst next" code of the phase channel [Table 8]. The entries are fixed
// by the broadcast specification.
var dstTable = [2][3][8]int{
	{
		{0b110001, 0b100110, 0b100101, 0b010101, 0b111110, 0b010110, 0b110111, 0b111101},
		{0b101010, 0b011011, 0b001110, 0b000001, 0b000010, 0b001000, 0b001101, 0b101001},
		{0b000100, 0b100000, 0b110100, 0b101100, 0b111000, 0b010000, 0b110010, 0b011100},
	},
	{
		{0b110111, 0b010101, 0b110001, 0b010110, 0b100110, 0b111110, 0b100101, 0b111101},
		{0b001101, 0b000001, 0b101010, 0b001000, 0b011011, 0b000010, 0b001110, 0b101001},
		{0b110010, 0b101100, 0b000100, 0b010000, 0b100000, 0b111000, 0b110100, 0b011100},
	},
}

// Fallback "dst next" codes for years without a normal spring/fall
// transition pair.
const (
	dstNextAllYear = 0b101111
	dstNextNone    = 0b000111
	dstNextAnomaly = 0b100011
)

// DSTNext computes the 6-bit upcoming-transition code carried by the
// regular phase payload.
func DSTNext(d time.Time, zone *time.Location) int {
	year := d.UTC().Year()
	dstNow := IsDST(d, zone)
	dstMidwinter := IsDST(time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC), zone)
	dstMidsummer := IsDST(time.Date(year, 7, 1, 0, 0, 0, 0, time.UTC), zone)

	if dstMidwinter && dstMidsummer {
		return dstNextAllYear
	}
	if !dstMidwinter && !dstMidsummer {
		return dstNextNone
	}
	// Southern-hemisphere style years have no defined code; use the
	// safe default.
	if dstMidwinter || !dstMidsummer {
		return dstNextAnomaly
	}

	changeDate, row, ok := dstChangeDateAndRow(d, zone)
	if !ok {
		return dstNextAnomaly
	}
	hour, ok := dstChangeHour(changeDate, zone)
	if !ok {
		return dstNextAnomaly
	}
	now := 0
	if dstNow {
		now = 1
	}
	return dstTable[now][hour][row]
}
