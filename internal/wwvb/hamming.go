package wwvb

// Parity bit index tables for the 26-bit minute-of-century value carried
// by the phase channel [Enhanced WWVB Broadcast Format 4.3]. Each parity
// bit is the XOR of 15 fixed source bits.
var hammingWeight = [5][15]int{
	{23, 21, 20, 17, 16, 15, 14, 13, 9, 8, 6, 5, 4, 2, 0},
	{24, 22, 21, 18, 17, 16, 15, 14, 10, 9, 7, 6, 5, 3, 1},
	{25, 23, 22, 19, 18, 17, 16, 15, 11, 10, 8, 7, 6, 4, 2},
	{24, 21, 19, 18, 15, 14, 13, 12, 11, 7, 6, 4, 3, 2, 0},
	{25, 22, 20, 19, 16, 15, 14, 13, 12, 8, 7, 5, 4, 3, 1},
}

// extractBit reports bit p of v.
func extractBit(v, p int) bool {
	return (v>>p)&1 != 0
}

// hammingParity computes the 5 parity bits of a 26-bit value such as the
// minute of the century.
func hammingParity(value int) int {
	parity := 0
	for i := 4; i >= 0; i-- {
		bit := 0
		for j := 0; j < 15; j++ {
			if extractBit(value, hammingWeight[i][j]) {
				bit ^= 1
			}
		}
		parity = parity<<1 | bit
	}
	return parity
}
