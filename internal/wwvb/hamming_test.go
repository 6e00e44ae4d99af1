package wwvb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHammingParity checks the 5-bit parity of known minute-of-century
// values.
func TestHammingParity(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  int
	}{
		{"zero", 0, 0},
		{"one", 1, 9},
		{"all ones", 1<<26 - 1, 31},
		{"mid 2012", 6578970, 18},
		{"late 2021", 11550150, 15},
		{"epoch 1900 1998", 52068956, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hammingParity(tt.value))
		})
	}
}

func TestExtractBit(t *testing.T) {
	// Bit 0 is the LSB.
	assert.True(t, extractBit(0b1010, 1))
	assert.False(t, extractBit(0b1010, 0))
	assert.True(t, extractBit(0b1010, 3))
	assert.False(t, extractBit(0b1010, 25))
}

// TestLFSRSequence checks the generator output against the tap
// definition x[-7]^x[-6]^x[-5]^x[-2] with an all-ones seed.
func TestLFSRSequence(t *testing.T) {
	require.Len(t, lfsrSeq, 255)
	const prefix = "111111100110110101010001"
	for i := 0; i < len(prefix); i++ {
		assert.Equal(t, prefix[i]-'0', lfsrSeq[i], "bit %d", i)
	}
	// The recurrence must hold over the whole sequence.
	for i := 7; i < len(lfsrSeq); i++ {
		want := lfsrSeq[i-7] ^ lfsrSeq[i-6] ^ lfsrSeq[i-5] ^ lfsrSeq[i-2]
		require.Equal(t, want, lfsrSeq[i], "bit %d", i)
	}
}

func TestFixedTimingWord(t *testing.T) {
	require.Len(t, fixedTimingWord, 106)
	for i, b := range fixedTimingWord {
		require.True(t, b == 0 || b == 1, "bit %d", i)
	}
}
