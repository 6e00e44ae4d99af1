package wwvb

import (
	"fmt"
	"strconv"
	"strings"
)

// transcriptPrefix is emitted by the timecode printer and tolerated by
// the parser, so printed headers round-trip.
const transcriptPrefix = "WWVB timecode: "

// String renders the canonical transcript of the minute.
func (m Minute) String() string {
	return fmt.Sprintf("year=%4d days=%03d hour=%02d min=%02d dst=%d ut1=%d ly=%d ls=%d",
		m.year, m.days, m.hour, m.min, m.dst, m.ut1, boolInt(m.ly), boolInt(m.ls))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Parse constructs a Minute from a transcript: order-insensitive
// key=value pairs. year, days, hour and min are required; dst, ut1 and
// ls are derived by the policy when absent; ly is accepted but ignored
// since it is derivable. Unknown keys are a parse error.
func (p Policy) Parse(s string) (Minute, error) {
	s = strings.TrimPrefix(s, transcriptPrefix)
	fields := map[string]int{}
	for _, part := range strings.Fields(s) {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return Minute{}, fmt.Errorf("malformed field %q", part)
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Minute{}, fmt.Errorf("field %q: %w", k, err)
		}
		fields[k] = n
	}
	get := func(k string) (int, error) {
		n, ok := fields[k]
		if !ok {
			return 0, fmt.Errorf("missing field %q", k)
		}
		delete(fields, k)
		return n, nil
	}
	year, err := get("year")
	if err != nil {
		return Minute{}, err
	}
	days, err := get("days")
	if err != nil {
		return Minute{}, err
	}
	hour, err := get("hour")
	if err != nil {
		return Minute{}, err
	}
	min, err := get("min")
	if err != nil {
		return Minute{}, err
	}
	var opts []Option
	if dst, ok := fields["dst"]; ok {
		opts = append(opts, WithDST(dst))
		delete(fields, "dst")
	}
	if ut1, ok := fields["ut1"]; ok {
		opts = append(opts, WithUT1(ut1))
		delete(fields, "ut1")
	}
	if ls, ok := fields["ls"]; ok {
		opts = append(opts, WithLeapSecond(ls != 0))
		delete(fields, "ls")
	}
	delete(fields, "ly")
	if len(fields) > 0 {
		for k := range fields {
			return Minute{}, fmt.Errorf("unknown field %q", k)
		}
	}
	return p.NewMinute(year, days, hour, min, opts...)
}
