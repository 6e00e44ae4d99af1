package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gowwvb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("zone: UTC\nminutes: 3\nstyle: cradek\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Zone)
	assert.Equal(t, 3, cfg.Minutes)
	assert.Equal(t, "cradek", cfg.Style)
	assert.Equal(t, DefaultChannel, cfg.Channel, "unset keys keep their defaults")
	assert.True(t, cfg.IERS, "flag-only settings are not read from the file")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("minutes: [oops\n"), 0o644))
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestGenerateForcedDUT1(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Minutes = 1
	cfg.IERS = false
	cfg.DUT1 = -300
	cfg.DUT1Set = true

	var buf bytes.Buffer
	require.NoError(t, Generate(cfg, []int{2012, 186, 17, 30}, &buf, NewLogger(false)))
	want := "WWVB timecode: year=2012 days=186 hour=17 min=30 dst=3 ut1=-300 ly=1 ls=0\n" +
		"2012-186 17:30  201100000200010011120001010002011000010200110000120010010112\n"
	assert.Equal(t, want, buf.String())
}

func TestGenerateLeapSecondDefaultUT1(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Minutes = 1
	cfg.IERS = false
	cfg.LeapSecond = 1
	cfg.LeapSet = true

	// A forced leap second without an explicit offset implies ut1=-500.
	var buf bytes.Buffer
	require.NoError(t, Generate(cfg, []int{2012, 186, 17, 30}, &buf, NewLogger(false)))
	want := "WWVB timecode: year=2012 days=186 hour=17 min=30 dst=3 ut1=-500 ly=1 ls=1\n" +
		"2012-186 17:30  201100000200010011120001010002011000010201010000120010011112\n"
	assert.Equal(t, want, buf.String())
}

func TestGenerateCalendarTimespec(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Minutes = 1

	var byDay, byDate bytes.Buffer
	require.NoError(t, Generate(cfg, []int{2012, 186, 17, 30}, &byDay, NewLogger(false)))
	require.NoError(t, Generate(cfg, []int{2012, 7, 4, 17, 30}, &byDate, NewLogger(false)))
	assert.Equal(t, byDay.String(), byDate.String())
}

func TestGenerateBadTimespec(t *testing.T) {
	cfg := DefaultConfig()
	var buf bytes.Buffer
	err := Generate(cfg, []int{2012, 186, 17}, &buf, NewLogger(false))
	assert.ErrorContains(t, err, "timespec")
}

func TestGenerateBadZone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Zone = "Mars/Olympus_Mons"
	var buf bytes.Buffer
	err := Generate(cfg, []int{2012, 186, 17, 30}, &buf, NewLogger(false))
	assert.ErrorContains(t, err, "Mars/Olympus_Mons")
}

func TestDecode(t *testing.T) {
	const am = "201100000200010011120001010002011000101201000000120010010112"
	cfg := DefaultConfig()

	var buf bytes.Buffer
	require.NoError(t, Decode(cfg, []string{am}, &buf, NewLogger(false)))
	want := am + "\n" +
		"year=2012 days=186 hour=17 min=30 dst=3 ut1=400 ly=1 ls=0\n"
	assert.Equal(t, want, buf.String())
}

func TestDecodeInvalidSymbol(t *testing.T) {
	cfg := DefaultConfig()
	var buf bytes.Buffer
	err := Decode(cfg, []string{"2103x"}, &buf, NewLogger(false))
	assert.ErrorContains(t, err, "invalid symbol")
}
