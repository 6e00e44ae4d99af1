package app

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"gowwvb/internal/iers"
	"gowwvb/internal/wwvb"
)

// NewLogger builds the application logger.
func NewLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

// policy builds the minute-construction policy from the configuration.
func policy(cfg Config, logger *logrus.Logger) (wwvb.Policy, error) {
	p := wwvb.Policy{Epoch: cfg.Epoch}
	if cfg.Zone != "" && cfg.Zone != DefaultZone {
		zone, err := time.LoadLocation(cfg.Zone)
		if err != nil {
			return p, fmt.Errorf("failed to load zone %q: %w", cfg.Zone, err)
		}
		p.Zone = zone
	}
	if cfg.IERS {
		p.DUT1 = iers.Embedded(logger)
	}
	return p, nil
}

// Generate prints cfg.Minutes timecodes starting at the minute named by
// timespec: "year yday hour minute", "year month day hour minute", or
// empty for the current UTC minute.
func Generate(cfg Config, timespec []int, out io.Writer, logger *logrus.Logger) error {
	p, err := policy(cfg, logger)
	if err != nil {
		return err
	}

	var opts []wwvb.Option
	if !cfg.IERS {
		ut1 := cfg.DUT1
		if !cfg.DUT1Set {
			ut1 = -500 * cfg.LeapSecond
		}
		opts = append(opts, wwvb.WithUT1(ut1), wwvb.WithLeapSecond(cfg.LeapSecond != 0))
	}

	var year, yday, hour, minute int
	switch len(timespec) {
	case 0:
		now := time.Now().UTC()
		year, yday, hour, minute = now.Year(), now.YearDay(), now.Hour(), now.Minute()
	case 4:
		year, yday, hour, minute = timespec[0], timespec[1], timespec[2], timespec[3]
	case 5:
		d := time.Date(timespec[0], time.Month(timespec[1]), timespec[2], 0, 0, 0, 0, time.UTC)
		year, yday = d.Year(), d.YearDay()
		hour, minute = timespec[3], timespec[4]
	default:
		return fmt.Errorf("expected 4 or 5 timespec arguments, got %d", len(timespec))
	}

	w, err := p.NewMinute(year, yday, hour, minute, opts...)
	if err != nil {
		return err
	}
	if cfg.JSON {
		return PrintTimecodesJSON(w, cfg.Minutes, cfg.Channel, out)
	}
	return PrintTimecodes(w, cfg.Minutes, cfg.Channel, cfg.Style, out)
}

// Decode feeds symbol strings ('0'/'1'/'2' per second) through the
// streaming receiver and prints a transcript for every minute that
// decodes.
func Decode(cfg Config, symbols []string, out io.Writer, logger *logrus.Logger) error {
	p, err := policy(cfg, logger)
	if err != nil {
		return err
	}
	receiver := wwvb.NewReceiver(logger)
	// Prime the boundary hunt so input may begin directly at second 0.
	receiver.Feed(wwvb.AmpMark)
	for _, s := range symbols {
		for i := 0; i < len(s); i++ {
			sym, ok := wwvb.ParseAmplitude(s[i])
			if !ok {
				return fmt.Errorf("invalid symbol %q", s[i])
			}
			tc := receiver.Feed(sym)
			if tc == nil {
				continue
			}
			fmt.Fprintln(out, tc)
			if m, ok := p.DecodeAM(tc); ok {
				fmt.Fprintln(out, m)
			}
		}
	}
	return nil
}
