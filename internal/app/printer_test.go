package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gowwvb/internal/iers"
	"gowwvb/internal/wwvb"
)

const (
	july4AM30 = "201100000200010011120001010002011000101201000000120010010112"
	july4AM31 = "201100001200010011120001010002011000101201000000120010010112"
	july4PM30 = "001110110100010010000011001000011000110100110100010110110110"
)

func july4Minute(t *testing.T) wwvb.Minute {
	t.Helper()
	p := wwvb.Policy{DUT1: iers.Default()}
	m, err := p.NewMinute(2012, 186, 17, 30)
	require.NoError(t, err)
	return m
}

func TestPrintTimecodes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTimecodes(july4Minute(t), 2, "amplitude", "default", &buf))
	want := "WWVB timecode: year=2012 days=186 hour=17 min=30 dst=3 ut1=400 ly=1 ls=0\n" +
		"2012-186 17:30  " + july4AM30 + "\n" +
		"2012-186 17:31  " + july4AM31 + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintTimecodesPhase(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTimecodes(july4Minute(t), 1, "phase", "default", &buf))
	want := "WWVB timecode: year=2012 days=186 hour=17 min=30 dst=3 ut1=400 ly=1 ls=0 --channel=phase\n" +
		"2012-186 17:30  " + july4PM30 + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintTimecodesBoth(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTimecodes(july4Minute(t), 1, "both", "default", &buf))
	pad := strings.Repeat(" ", len("2012-186 17:30 "))
	want := "WWVB timecode: year=2012 days=186 hour=17 min=30 dst=3 ut1=400 ly=1 ls=0 --channel=both\n" +
		"2012-186 17:30  " + july4AM30 + "\n" +
		pad + " " + july4PM30 + "\n\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintTimecodesHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	m := july4Minute(t)
	require.NoError(t, PrintTimecodes(m, 1, "amplitude", "default", &buf))
	header, _, ok := strings.Cut(buf.String(), "\n")
	require.True(t, ok)
	parsed, err := wwvb.Policy{DUT1: iers.Default()}.Parse(header)
	require.NoError(t, err)
	assert.Equal(t, m.String(), parsed.String())
}

func TestPrintTimecodesUnknownStyle(t *testing.T) {
	var buf bytes.Buffer
	err := PrintTimecodes(july4Minute(t), 1, "amplitude", "pretty", &buf)
	assert.ErrorContains(t, err, "pretty")
	assert.Empty(t, buf.String())
}

func TestPrintTimecodesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTimecodesJSON(july4Minute(t), 1, "both", &buf))
	want := `[{"year":2012,"days":186,"hour":17,"minute":30,` +
		`"amplitude":"` + july4AM30 + `","phase":"` + july4PM30 + `"}]` + "\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, PrintTimecodesJSON(july4Minute(t), 1, "amplitude", &buf))
	assert.NotContains(t, buf.String(), `"phase"`, "unrequested channels are omitted")
}
