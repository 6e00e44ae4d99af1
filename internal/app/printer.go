package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gowwvb/internal/wwvb"
)

// PrintTimecodes writes a labelled run of timecodes starting at w. The
// header line is a transcript understood by Policy.Parse, so printed
// output can be fed back in.
func PrintTimecodes(w wwvb.Minute, minutes int, channel, style string, out io.Writer) error {
	channelText := ""
	if channel != "amplitude" {
		channelText = " --channel=" + channel
	}
	styleText := ""
	if style != "default" {
		styleText = " --style=" + style
	}
	styleChars, ok := wwvb.Styles[style]
	if !ok {
		return fmt.Errorf("unknown style %q", style)
	}

	fmt.Fprintf(out, "WWVB timecode: %s%s%s\n", w, channelText, styleText)
	for i := 0; i < minutes; i++ {
		pfx := fmt.Sprintf("%04d-%03d %02d:%02d ", w.Year(), w.Days(), w.Hour(), w.Min())
		tc := w.AsTimecode()
		if len(styleChars) == 6 {
			fmt.Fprintf(out, "%s %s\n\n", pfx, tc.ToBothString(styleChars))
		} else {
			if channel == "amplitude" || channel == "both" {
				fmt.Fprintf(out, "%s %s\n", pfx, tc.ToAMString(styleChars))
				pfx = strings.Repeat(" ", len(pfx))
			}
			if channel == "phase" || channel == "both" {
				fmt.Fprintf(out, "%s %s\n", pfx, tc.ToPMString(styleChars))
			}
			if channel == "both" {
				fmt.Fprintln(out)
			}
		}
		w = w.NextMinute()
	}
	return nil
}

type timecodeJSON struct {
	Year      int    `json:"year"`
	Days      int    `json:"days"`
	Hour      int    `json:"hour"`
	Minute    int    `json:"minute"`
	Amplitude string `json:"amplitude,omitempty"`
	Phase     string `json:"phase,omitempty"`
}

// PrintTimecodesJSON writes a run of timecodes as a JSON array.
func PrintTimecodesJSON(w wwvb.Minute, minutes int, channel string, out io.Writer) error {
	result := make([]timecodeJSON, 0, minutes)
	for i := 0; i < minutes; i++ {
		entry := timecodeJSON{
			Year:   w.Year(),
			Days:   w.Days(),
			Hour:   w.Hour(),
			Minute: w.Min(),
		}
		tc := w.AsTimecode()
		if channel == "amplitude" || channel == "both" {
			entry.Amplitude = tc.ToAMString(wwvb.Styles["default"])
		}
		if channel == "phase" || channel == "both" {
			entry.Phase = tc.ToPMString(wwvb.Styles["default"])
		}
		result = append(result, entry)
		w = w.NextMinute()
	}
	enc := json.NewEncoder(out)
	return enc.Encode(result)
}
