package wwvb

import (
	"fmt"
	"time"
)

// DUT1Source supplies broadcast UT1 data: the signed UT1-UTC offset in
// tenths of a second for a day, and whether a leap second occurs at the
// end of the month containing a day.
type DUT1Source interface {
	DUT1(date time.Time) int
	IsLeapSecond(date time.Time) bool
}

// DefaultEpoch is the origin used to resolve two-digit years: with the
// 1970 epoch, years 70..99 resolve to 1970..1999 and 0..69 to 2000..2069.
const DefaultEpoch = 1970

// Policy controls how minutes are constructed: how two-digit years are
// resolved, where UT1 and leap-second data comes from, and which zone the
// DST bits describe. The zero value requires explicit UT1/leap-second
// data and uses the default epoch and zone.
type Policy struct {
	// Epoch resolves two-digit years; zero means DefaultEpoch.
	Epoch int
	// DUT1 supplies UT1/leap-second data. When nil, construction
	// without explicit UT1 and leap-second values yields ut1=0, ls=false.
	DUT1 DUT1Source
	// Zone is the reference zone for derived DST codes; nil means
	// Mountain.
	Zone *time.Location
}

// Minute identifies one broadcast minute of the WWVB system together
// with the flags that determine its wire encoding. Values are immutable
// once constructed.
type Minute struct {
	policy Policy
	year   int
	days   int
	hour   int
	min    int
	dst    int
	ut1    int
	ls     bool
	ly     bool
}

// Option supplies an optional field at construction time.
type Option func(*minuteSpec)

type minuteSpec struct {
	dst  *int
	ut1  *int
	ls   *bool
	ly   *bool
	pred *Minute
}

// WithDST supplies the 2-bit DST code instead of deriving it.
func WithDST(code int) Option {
	return func(s *minuteSpec) { s.dst = &code }
}

// WithUT1 supplies the UT1 offset in milliseconds. UT1 and the
// leap-second flag must be supplied together or not at all.
func WithUT1(ms int) Option {
	return func(s *minuteSpec) { s.ut1 = &ms }
}

// WithLeapSecond supplies the leap-second flag.
func WithLeapSecond(ls bool) Option {
	return func(s *minuteSpec) { s.ls = &ls }
}

// WithLeapYear supplies the leap-year flag instead of deriving it from
// the year. Decoders use this to preserve the transmitted bit.
func WithLeapYear(ly bool) Option {
	return func(s *minuteSpec) { s.ly = &ly }
}

// WithPredecessor propagates UT1/leap-second state from an adjacent
// minute instead of consulting the DUT1 source. Stepping across a minute
// whose length was not 60 seconds moves UT1 by one full second toward
// zero and clears the leap flag.
func WithPredecessor(m Minute) Option {
	return func(s *minuteSpec) { s.pred = &m }
}

func (p Policy) epoch() int {
	if p.Epoch == 0 {
		return DefaultEpoch
	}
	return p.Epoch
}

func (p Policy) zone() *time.Location {
	if p.Zone == nil {
		return Mountain
	}
	return p.Zone
}

// FullYear resolves a possibly two-digit year against the policy epoch.
// Values of 100 or more are taken as complete years.
func (p Policy) FullYear(year int) int {
	century := p.epoch() / 100 * 100
	if year < p.epoch()%100 {
		return year + century + 100
	}
	if year < 100 {
		return year + century
	}
	return year
}

// dut1Info resolves the UT1 offset (milliseconds) and leap-second flag
// for a day, either from the policy's DUT1 source or by propagating from
// a predecessor minute.
func (p Policy) dut1Info(year, days int, pred *Minute) (int, bool) {
	if pred != nil {
		if pred.MinuteLength() != 60 {
			if pred.ut1 < 0 {
				return pred.ut1 + 1000, false
			}
			return pred.ut1 - 1000, false
		}
		return pred.ut1, pred.ls
	}
	if p.DUT1 != nil {
		d := yearDay(year, days)
		return p.DUT1.DUT1(d) * 100, p.DUT1.IsLeapSecond(d)
	}
	return 0, false
}

// NewMinute constructs a validated Minute. The year may be two-digit;
// dst, ut1/ls and ly are derived from the policy when not supplied.
func (p Policy) NewMinute(year, days, hour, min int, opts ...Option) (Minute, error) {
	var s minuteSpec
	for _, o := range opts {
		o(&s)
	}
	year = p.FullYear(year)
	if days < 1 || days > 366 {
		return Minute{}, fmt.Errorf("days value %d out of range 1..366", days)
	}
	if hour < 0 || hour > 23 {
		return Minute{}, fmt.Errorf("hour value %d out of range 0..23", hour)
	}
	if min < 0 || min > 59 {
		return Minute{}, fmt.Errorf("minute value %d out of range 0..59", min)
	}
	var dst int
	if s.dst != nil {
		dst = *s.dst
		if dst < 0 || dst > 3 {
			return Minute{}, fmt.Errorf("dst value %d should be 0..3", dst)
		}
	} else {
		dst = dstCode(year, days, p.zone())
	}
	var ut1 int
	var ls bool
	switch {
	case s.ut1 == nil && s.ls == nil:
		ut1, ls = p.dut1Info(year, days, s.pred)
	case s.ut1 != nil && s.ls != nil:
		ut1, ls = *s.ut1, *s.ls
	default:
		return Minute{}, fmt.Errorf("specify both ut1 and ls or neither one")
	}
	if ut1 < -999 || ut1 > 999 {
		return Minute{}, fmt.Errorf("ut1 value %d not encodable as a single digit of 0.1s", ut1)
	}
	ly := isLeapYear(year)
	if s.ly != nil {
		ly = *s.ly
	}
	return Minute{
		policy: p,
		year:   year,
		days:   days,
		hour:   hour,
		min:    min,
		dst:    dst,
		ut1:    ut1,
		ls:     ls,
		ly:     ly,
	}, nil
}

// FromTime constructs the Minute containing a moment in time (taken as
// UTC).
func (p Policy) FromTime(t time.Time, opts ...Option) (Minute, error) {
	u := t.UTC()
	return p.NewMinute(u.Year(), u.YearDay(), u.Hour(), u.Minute(), opts...)
}

func isLeapYear(year int) bool {
	return time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC).YearDay() == 366
}

// Accessors for the minute's fields.

func (m Minute) Year() int        { return m.year }
func (m Minute) Days() int        { return m.days }
func (m Minute) Hour() int        { return m.hour }
func (m Minute) Min() int         { return m.min }
func (m Minute) DST() int         { return m.dst }
func (m Minute) UT1() int         { return m.ut1 }
func (m Minute) LeapSecond() bool { return m.ls }
func (m Minute) LeapYear() bool   { return m.ly }

// Time returns the UTC time at the start of the minute.
func (m Minute) Time() time.Time {
	return time.Date(m.year, 1, 1, m.hour, m.min, 0, 0, time.UTC).
		AddDate(0, 0, m.days-1)
}

func (m Minute) isEndOfMonth() bool {
	d := m.Time()
	return d.Month() != d.AddDate(0, 0, 1).Month()
}

// MinuteLength returns the length of the minute in seconds: 60 normally,
// 61 for an inserted leap second, 59 for a (theoretical) deleted one.
// Leap seconds only occur at 23:59 UTC of the last day of a month.
func (m Minute) MinuteLength() int {
	if !m.ls || !m.isEndOfMonth() || m.hour != 23 || m.min != 59 {
		return 60
	}
	if m.ut1 > 0 {
		return 59
	}
	return 61
}

// LeapSecCode returns the 2-bit leap-second indicator of the phase
// channel: 0 none, 2 positive, 3 negative.
func (m Minute) LeapSecCode() int {
	if !m.ls {
		return 0
	}
	if m.ut1 < 0 {
		return 3
	}
	return 2
}

// MinuteOfCentury returns whole minutes since 00:00 January 1 of the
// century containing the minute. Duration arithmetic never includes leap
// seconds, matching the broadcast convention.
func (m Minute) MinuteOfCentury() int {
	century := m.year / 100 * 100
	start := time.Date(century, 1, 1, 0, 0, 0, 0, time.UTC)
	return int(m.Time().Sub(start) / time.Minute)
}

// NextMinute returns the following minute, propagating UT1/leap-second
// state forward across the boundary.
func (m Minute) NextMinute() Minute {
	return m.adjacentMinute(time.Minute)
}

// PreviousMinute returns the preceding minute, propagating UT1 and
// leap-second state backward.
func (m Minute) PreviousMinute() Minute {
	return m.adjacentMinute(-time.Minute)
}

func (m Minute) adjacentMinute(step time.Duration) Minute {
	next, err := m.policy.FromTime(m.Time().Add(step), WithPredecessor(m))
	if err != nil {
		// Unreachable: derived fields are always valid.
		panic(err)
	}
	return next
}

// AsTimecode fills a Timecode with both the amplitude and phase channels
// for this minute.
func (m Minute) AsTimecode() *Timecode {
	t := NewTimecode(m.MinuteLength())
	m.fillAMTimecode(t)
	m.fillPMTimecode(t)
	return t
}

// LocalTime converts the minute to local civil time using only the
// broadcast DST bits, the way a radio clock does. standardOffset is the
// zone's offset west of UTC in seconds (25200 for Mountain time);
// dstObserved disables the DST bits entirely.
func (m Minute) LocalTime(standardOffset int, dstObserved bool) time.Time {
	u := m.Time()
	d := u.Add(-time.Duration(standardOffset) * time.Second)
	var dst bool
	switch {
	case !dstObserved:
		dst = false
	case m.dst == 2:
		// DST starts at 02:00 standard time today.
		dst = !d.Before(time.Date(u.Year(), u.Month(), u.Day(), 2, 0, 0, 0, time.UTC))
	case m.dst == 3:
		dst = true
	case m.dst == 1:
		// DST ends at 02:00 DST, which is 01:00 standard time.
		dst = d.Before(time.Date(u.Year(), u.Month(), u.Day(), 1, 0, 0, 0, time.UTC))
	}
	if dst {
		d = d.Add(time.Hour)
	}
	return d
}
