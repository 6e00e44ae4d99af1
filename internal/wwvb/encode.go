package wwvb

// Fixed amplitude-channel structure: marker seconds and always-zero
// seconds. Position 59 (and 60, in a 61-second minute) also carries a
// marker.
var (
	amMarkPositions = []int{0, 9, 19, 29, 39, 49}
	amZeroPositions = []int{4, 10, 11, 14, 20, 21, 24, 34, 35, 44, 54}
)

// Phase-channel sync words. SYNC_T identifies a time signal; SYNC_M
// would identify a message signal, none of which are defined by NIST.
const (
	syncT = 0x768
	syncM = 0x1A3A
)

// dstLsTable is the 5-bit dst/leap-second word of the regular phase
// payload, indexed by dst | leapSecCode<<2.
var dstLsTable = [16]int{
	0b01000, 0b10101, 0b10110, 0b00011,
	0b01000, 0b10101, 0b10110, 0b00011,
	0b00100, 0b01110, 0b10000, 0b01101,
	0b11001, 0b11100, 0b11010, 0b11111,
}

// mocBits lists, in transmission order, which bit of the minute of
// century each regular phase payload position carries. Bit 0 is sent
// twice.
var mocBits = [...]struct{ pos, bit int }{
	{18, 25}, {19, 0}, {20, 24}, {21, 23}, {22, 22}, {23, 21},
	{24, 20}, {25, 19}, {26, 18}, {27, 17}, {28, 16},
	{30, 15}, {31, 14}, {32, 13}, {33, 12}, {34, 11}, {35, 10},
	{36, 9}, {37, 8}, {38, 7},
	{40, 6}, {41, 5}, {42, 4}, {43, 3}, {44, 2}, {45, 1}, {46, 0},
}

// fillAMTimecode writes the amplitude channel: the fixed marker/zero
// skeleton and the BCD-packed time fields.
func (m Minute) fillAMTimecode(t *Timecode) {
	for _, i := range amMarkPositions {
		t.AM[i] = AmpMark
	}
	if len(t.AM) > 59 {
		t.AM[59] = AmpMark
	}
	if len(t.AM) > 60 {
		t.AM[60] = AmpMark
	}
	for _, i := range amZeroPositions {
		t.AM[i] = AmpZero
	}
	t.putAMBCD(m.min, 1, 2, 3, 5, 6, 7, 8)
	t.putAMBCD(m.hour, 12, 13, 15, 16, 17, 18)
	t.putAMBCD(m.days, 22, 23, 25, 26, 27, 28, 30, 31, 32, 33)
	// The UT1 sign is triple-redundant: 36 and 38 carry the sign, 37 its
	// complement.
	ut1Sign := m.ut1 >= 0
	t.AM[36] = amBit(ut1Sign)
	t.AM[37] = amBit(!ut1Sign)
	t.AM[38] = amBit(ut1Sign)
	abs := m.ut1
	if abs < 0 {
		abs = -abs
	}
	t.putAMBCD(abs/100, 40, 41, 42, 43)
	// Only the low two digits of the year are transmitted.
	t.putAMBCD(m.year%100, 45, 46, 47, 48, 50, 51, 52, 53)
	t.AM[55] = amBit(m.ly)
	t.AM[56] = amBit(m.ls)
	t.putAMBCD(m.dst, 57, 58)
}

func amBit(b bool) AmplitudeSymbol {
	if b {
		return AmpOne
	}
	return AmpZero
}

// fillPMTimecode writes the phase channel. Minutes 10..15 and 40..45
// carry the extended six-minute code; all others carry the regular
// payload.
func (m Minute) fillPMTimecode(t *Timecode) {
	if (m.min >= 10 && m.min < 16) || (m.min >= 40 && m.min < 46) {
		m.fillPMTimecodeExtended(t)
	} else {
		m.fillPMTimecodeRegular(t)
	}
}

// fillPMTimecodeExtended writes one minute's 60-bit window of the
// 360-bit extended synchronization sequence: a 127-bit LFSR slice, the
// fixed timing word, and the slice reversed. The slice offset depends on
// the half hour, the DST code, and the hour band. (The offsets are one
// less than Table 11's, because the LFSR sequence here is zero-based.)
func (m Minute) fillPMTimecodeExtended(t *Timecode) {
	seqno := m.min / 30 * 2
	switch m.dst {
	case 0:
	case 3:
		seqno++
	case 2:
		switch {
		case m.hour < 4:
		case m.hour < 11:
			seqno += 90
		default:
			seqno++
		}
	default: // dst == 1
		switch {
		case m.hour < 4:
			seqno++
		case m.hour < 11:
			seqno += 91
		}
	}

	info := lfsrSeq[seqno : seqno+127]
	full := make([]byte, 0, 360)
	full = append(full, info...)
	full = append(full, fixedTimingWord...)
	for i := len(info) - 1; i >= 0; i-- {
		full = append(full, info[i])
	}

	offset := m.min % 10 * 60
	for i := 0; i < 60; i++ {
		t.putPMBit(i, full[offset+i] != 0)
	}
}

// fillPMTimecodeRegular writes the sync word, the Hamming parity and
// bits of the minute of century, the dst/leap-second word, and the
// upcoming-DST code.
func (m Minute) fillPMTimecodeRegular(t *Timecode) {
	t.putPMBin(0, 13, syncT)

	moc := m.MinuteOfCentury()
	dstLs := dstLsTable[m.dst|m.LeapSecCode()<<2]
	dstNext := DSTNext(m.Time(), m.policy.zone())

	t.putPMBin(13, 5, hammingParity(moc))
	for _, mb := range mocBits {
		t.putPMBit(mb.pos, extractBit(moc, mb.bit))
	}
	t.putPMBit(29, false) // Reserved
	t.putPMBit(39, true)  // Reserved
	t.putPMBit(47, extractBit(dstLs, 4))
	t.putPMBit(48, extractBit(dstLs, 3))
	t.putPMBit(49, true) // Notice
	t.putPMBit(50, extractBit(dstLs, 2))
	t.putPMBit(51, extractBit(dstLs, 1))
	t.putPMBit(52, extractBit(dstLs, 0))
	t.putPMBin(53, 6, dstNext)
	if len(t.Phase) > 59 {
		t.putPMBit(59, false)
	}
	if len(t.Phase) > 60 {
		t.putPMBit(60, false)
	}
}
