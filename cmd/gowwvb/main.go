package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"gowwvb/internal/app"
)

func main() {
	cfg := app.DefaultConfig()
	var configPath string
	var showVersion bool
	var noIERS bool
	var negativeLeap, noLeap bool

	rootCmd := &cobra.Command{
		Use:   "gowwvb [timespec...]",
		Short: "WWVB timecode generator",
		Long: `Generate WWVB timecodes for a range of minutes.

TIMESPEC is "year yday hour minute" or "year month day hour minute";
with no timespec the current UTC minute is used. DUT1 and leap second
data come from the embedded IERS table unless forced with --dut1 or the
leap second flags.

Example usage:
  gowwvb --minutes 2 --channel both 2012 186 17 30`,
		Args: cobra.MaximumNArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				app.ShowVersion()
				return nil
			}
			if configPath != "" {
				fileCfg, err := app.LoadConfig(configPath)
				if err != nil {
					return err
				}
				// Explicitly set flags win over the config file.
				if !cmd.Flags().Changed("minutes") {
					cfg.Minutes = fileCfg.Minutes
				}
				if !cmd.Flags().Changed("style") {
					cfg.Style = fileCfg.Style
				}
				if !cmd.Flags().Changed("channel") {
					cfg.Channel = fileCfg.Channel
				}
				if !cmd.Flags().Changed("zone") {
					cfg.Zone = fileCfg.Zone
				}
				cfg.Epoch = fileCfg.Epoch
			}
			cfg.IERS = !noIERS
			cfg.DUT1Set = cmd.Flags().Changed("dut1")
			cfg.LeapSet = cmd.Flags().Changed("leap-second") || negativeLeap || noLeap
			if negativeLeap {
				cfg.LeapSecond = -1
			} else if noLeap {
				cfg.LeapSecond = 0
			}
			// Forcing DUT1 or a leap second implies bare (non-IERS) minutes.
			if cfg.DUT1Set || cfg.LeapSet {
				cfg.IERS = false
			}
			timespec, err := parseTimespec(args)
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Verbose)
			return app.Generate(cfg, timespec, os.Stdout, logger)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.IntVarP(&cfg.Minutes, "minutes", "m", app.DefaultMinutes, "Number of minutes to show")
	flags.StringVar(&cfg.Style, "style", app.DefaultStyle, "Style of output (default, duration, cradek, bar, sextant)")
	flags.StringVar(&cfg.Channel, "channel", app.DefaultChannel, "Modulation to show (amplitude, phase, both)")
	flags.StringVarP(&cfg.Zone, "zone", "z", app.DefaultZone, "Zone for the broadcast DST bits")
	flags.BoolVarP(&noIERS, "no-iers", "I", false, "Do not use IERS data for DUT1 and leap seconds")
	flags.IntVarP(&cfg.DUT1, "dut1", "d", 0, "Force the DUT1 value, in ms (implies --no-iers)")
	flags.IntVarP(&cfg.LeapSecond, "leap-second", "s", 0, "Force a leap second at the end of the GMT month: 1 positive, -1 negative (implies --no-iers)")
	flags.BoolVarP(&negativeLeap, "negative-leap-second", "n", false, "Force a negative leap second (implies --no-iers)")
	flags.BoolVarP(&noLeap, "no-leap-second", "S", false, "Force no leap second (implies --no-iers)")
	flags.BoolVar(&cfg.JSON, "json", false, "Emit timecodes as JSON")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose logging")
	flags.BoolVar(&showVersion, "version", false, "Show version information")

	decodeCmd := &cobra.Command{
		Use:   "decode [symbols...]",
		Short: "Decode amplitude symbol strings",
		Long: `Feed strings of received amplitude symbols ('0', '1', '2' for zero,
one, mark) through the streaming receiver and print every minute that
decodes.

The receiver is primed with one boundary mark, so input may begin
directly at second 0 of a minute: a single 60-symbol string decodes
without the preceding minute's closing mark.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := app.NewLogger(cfg.Verbose)
			return app.Decode(cfg, args, os.Stdout, logger)
		},
	}
	decodeCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.AddCommand(decodeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseTimespec(args []string) ([]int, error) {
	if len(args) != 0 && len(args) != 4 && len(args) != 5 {
		return nil, fmt.Errorf("expected 4 or 5 timespec arguments, got %d", len(args))
	}
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid timespec value %q: %w", a, err)
		}
		out = append(out, n)
	}
	return out, nil
}
