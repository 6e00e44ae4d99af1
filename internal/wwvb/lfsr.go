package wwvb

// lfsrSeq is the pseudo-random bit sequence used by the extended
// six-minute phase codes. The generator is seeded with seven 1 bits and
// each new bit is x[-7] ^ x[-6] ^ x[-5] ^ x[-2]; 255 bits are kept so
// that any 127-bit window can be sliced directly.
var lfsrSeq = makeLFSRSeq()

func makeLFSRSeq() []byte {
	x := make([]byte, 7, 255)
	for i := range x {
		x[i] = 1
	}
	for len(x) < 255 {
		n := len(x)
		x = append(x, x[n-7]^x[n-6]^x[n-5]^x[n-2])
	}
	return x
}

// fixedTimingWord is the 106-bit timing word between the forward and
// reversed information sequences of an extended code [Table 12].
var fixedTimingWord = makeFixedTimingWord()

func makeFixedTimingWord() []byte {
	const w = "1101000111" +
		"0101100101" +
		"1001101110" +
		"0011000010" +
		"1101001110" +
		"1001010100" +
		"0010111000" +
		"1011010110" +
		"1101111111" +
		"1000000100" +
		"100100"
	out := make([]byte, len(w))
	for i := 0; i < len(w); i++ {
		out[i] = w[i] - '0'
	}
	return out
}
