package wwvb

// Amplitude channel symbols. A WWVB second carries one of three
// amplitude-modulated values; MARK is the frame/minute synchronization
// symbol.
type AmplitudeSymbol int8

const (
	AmpUnset AmplitudeSymbol = iota - 1
	AmpZero
	AmpOne
	AmpMark
)

// Phase channel symbols. The phase-modulated sub-channel is binary.
type PhaseSymbol int8

const (
	PhaseUnset PhaseSymbol = iota - 1
	PhaseZero
	PhaseOne
)

// Styles are the character mappings used to render symbol strings. A
// 3-entry style renders one channel (indexed by the amplitude or phase
// value); a 6-entry style renders both channels interleaved, indexed by
// am + pm*3. The mapping is presentation only, not part of the protocol.
var Styles = map[string][]string{
	"default":  {"0", "1", "2"},
	"duration": {"2", "5", "8"},
	"cradek":   {"0", "1", "-"},
	"bar":      {"▟█", "▄█", "▄▟"},
	"sextant":  {"🬍🬎", "🬋🬎", "🬋🬍", "🬩🬹", "🬋🬹", "🬋🬩"},
}

// ParseAmplitude converts a '0'/'1'/'2' character to an amplitude symbol.
func ParseAmplitude(c byte) (AmplitudeSymbol, bool) {
	switch c {
	case '0':
		return AmpZero, true
	case '1':
		return AmpOne, true
	case '2':
		return AmpMark, true
	}
	return AmpUnset, false
}
