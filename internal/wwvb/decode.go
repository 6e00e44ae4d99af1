package wwvb

// DecodeAM parses a received amplitude channel back into a Minute. It
// returns ok=false for any protocol violation: a wrong fixed marker or
// zero, inconsistent UT1 sign bits, an invalid BCD digit, or an
// out-of-range field. Corrupted reception is routine, so no error values
// are produced.
func (p Policy) DecodeAM(t *Timecode) (Minute, bool) {
	if len(t.AM) < 60 {
		return Minute{}, false
	}
	for _, i := range amMarkPositions {
		if t.AM[i] != AmpMark {
			return Minute{}, false
		}
	}
	if t.AM[59] != AmpMark {
		return Minute{}, false
	}
	for _, i := range amZeroPositions {
		if t.AM[i] != AmpZero {
			return Minute{}, false
		}
	}
	// The redundant UT1 sign bits must agree: 36 and 38 carry the sign
	// and 37 its complement.
	if t.AM[36] == t.AM[37] || t.AM[36] != t.AM[38] {
		return Minute{}, false
	}
	min, ok := t.getAMBCD(1, 2, 3, 5, 6, 7, 8)
	if !ok || min >= 60 {
		return Minute{}, false
	}
	hour, ok := t.getAMBCD(12, 13, 15, 16, 17, 18)
	if !ok || hour >= 24 {
		return Minute{}, false
	}
	days, ok := t.getAMBCD(22, 23, 25, 26, 27, 28, 30, 31, 32, 33)
	if !ok || days < 1 {
		return Minute{}, false
	}
	absUT1, ok := t.getAMBCD(40, 41, 42, 43)
	if !ok {
		return Minute{}, false
	}
	ut1 := absUT1 * 100
	if t.AM[38] != AmpOne {
		ut1 = -ut1
	}
	year, ok := t.getAMBCD(45, 46, 47, 48, 50, 51, 52, 53)
	if !ok {
		return Minute{}, false
	}
	ly := t.AM[55] == AmpOne
	if days > 366 || (!ly && days > 365) {
		return Minute{}, false
	}
	ls := t.AM[56] == AmpOne
	dst, ok := t.getAMBCD(57, 58)
	if !ok {
		return Minute{}, false
	}
	m, err := p.NewMinute(year, days, hour, min,
		WithDST(dst), WithUT1(ut1), WithLeapSecond(ls), WithLeapYear(ly))
	if err != nil {
		return Minute{}, false
	}
	return m, true
}
