package wwvb

import "strings"

// Timecode holds the two parallel symbol channels for one transmitted
// minute. Both channels have the same length, 59, 60 or 61 slots; slots
// not yet written hold the Unset sentinel.
type Timecode struct {
	AM    []AmplitudeSymbol
	Phase []PhaseSymbol
}

// NewTimecode returns a Timecode of the given length with every slot unset.
func NewTimecode(size int) *Timecode {
	t := &Timecode{
		AM:    make([]AmplitudeSymbol, size),
		Phase: make([]PhaseSymbol, size),
	}
	for i := range t.AM {
		t.AM[i] = AmpUnset
		t.Phase[i] = PhaseUnset
	}
	return t
}

// putAMBCD writes v into the amplitude channel as BCD, one bit per listed
// position, MSB first. Positions beyond the BCD width of v get zeros.
func (t *Timecode) putAMBCD(v int, positions ...int) {
	for i := 0; i < len(positions); i++ {
		p := positions[len(positions)-1-i]
		digit := v
		for d := 0; d < i/4; d++ {
			digit /= 10
		}
		if (digit%10)>>(i%4)&1 != 0 {
			t.AM[p] = AmpOne
		} else {
			t.AM[p] = AmpZero
		}
	}
}

// getAMBCD reads the listed positions, MSB first, as a BCD number. Any
// 4-bit group that decodes to a digit above 9 is a decode failure.
func (t *Timecode) getAMBCD(positions ...int) (int, bool) {
	result, base := 0, 1
	for i := 0; i < len(positions); i += 4 {
		digit := 0
		for j := 0; j < 4 && i+j < len(positions); j++ {
			p := positions[len(positions)-1-(i+j)]
			if t.AM[p] == AmpOne {
				digit |= 1 << j
			}
		}
		if digit > 9 {
			return 0, false
		}
		result += digit * base
		base *= 10
	}
	return result, true
}

// putPMBit writes a single phase bit.
func (t *Timecode) putPMBit(i int, v bool) {
	if v {
		t.Phase[i] = PhaseOne
	} else {
		t.Phase[i] = PhaseZero
	}
}

// putPMBin writes an n-bit binary number into the phase channel starting
// at position st, MSB first.
func (t *Timecode) putPMBin(st, n, v int) {
	for i := 0; i < n; i++ {
		t.putPMBit(st+i, extractBit(v, n-i-1))
	}
}

func renderAM(s AmplitudeSymbol, charset []string) string {
	if s == AmpUnset {
		return "?"
	}
	return charset[s]
}

// ToAMString renders the amplitude channel with a 3-entry charset.
func (t *Timecode) ToAMString(charset []string) string {
	var b strings.Builder
	for _, s := range t.AM {
		b.WriteString(renderAM(s, charset))
	}
	return b.String()
}

// ToPMString renders the phase channel with a 3-entry charset.
func (t *Timecode) ToPMString(charset []string) string {
	var b strings.Builder
	for _, s := range t.Phase {
		if s == PhaseUnset {
			b.WriteString("?")
		} else {
			b.WriteString(charset[s])
		}
	}
	return b.String()
}

// ToBothString renders both channels interleaved with a 6-entry charset.
func (t *Timecode) ToBothString(charset []string) string {
	var b strings.Builder
	for i, s := range t.AM {
		p := t.Phase[i]
		if s == AmpUnset || p == PhaseUnset {
			b.WriteString("?")
			continue
		}
		b.WriteString(charset[int(s)+int(p)*3])
	}
	return b.String()
}

// String renders the amplitude channel in the default style.
func (t *Timecode) String() string {
	return t.ToAMString(Styles["default"])
}

// ParseAMString converts a '0'/'1'/'2' string into a Timecode with only
// the amplitude channel filled.
func ParseAMString(s string) (*Timecode, bool) {
	t := NewTimecode(len(s))
	for i := 0; i < len(s); i++ {
		sym, ok := ParseAmplitude(s[i])
		if !ok {
			return nil, false
		}
		t.AM[i] = sym
	}
	return t, true
}
