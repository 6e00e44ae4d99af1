package wwvb

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Receiver states. The machine hunts for the two consecutive markers
// that bracket a minute boundary, then accumulates 60 symbols while
// checking the fixed marker/zero structure of the frame.
type receiverState int

const (
	stateUnsynced receiverState = iota + 1
	stateOneMark
	stateTwoMarks
	stateInMinute
)

// Positions checked while a minute is being accumulated. The always-zero
// set omits position 24, which only the full-minute decoder enforces.
var (
	recvMark = [61]bool{0: true, 9: true, 19: true, 29: true, 39: true, 49: true, 59: true}
	recvZero = [61]bool{4: true, 10: true, 11: true, 14: true, 20: true, 21: true, 34: true, 35: true, 44: true, 54: true}
)

// Receiver is the live-reception state machine. Feed it one amplitude
// symbol per second; a candidate minute is returned whenever 60 symbols
// consistent with the frame structure have accumulated. Any structure
// violation resynchronizes the machine without losing the marker
// sequence in progress. A Receiver is not safe for concurrent use.
type Receiver struct {
	logger *logrus.Logger
	state  receiverState
	minute []AmplitudeSymbol
}

// NewReceiver creates a Receiver. A nil logger disables diagnostics.
func NewReceiver(logger *logrus.Logger) *Receiver {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}
	return &Receiver{
		logger: logger,
		state:  stateUnsynced,
		minute: make([]AmplitudeSymbol, 0, 61),
	}
}

// Feed advances the state machine with one received symbol. When a full
// candidate minute has been received it is returned as a Timecode with
// the amplitude channel filled; otherwise Feed returns nil. Feed never
// fails: noise only ever causes resynchronization.
func (r *Receiver) Feed(value AmplitudeSymbol) *Timecode {
	switch r.state {
	case stateUnsynced:
		r.minute = r.minute[:0]
		if value == AmpMark {
			r.state = stateOneMark
		}

	case stateOneMark:
		if value == AmpMark {
			r.state = stateTwoMarks
		} else {
			r.state = stateUnsynced
		}

	case stateTwoMarks:
		if value != AmpMark {
			r.minute = append(r.minute[:0], AmpMark, value)
			r.state = stateInMinute
		}

	default: // stateInMinute
		idx := len(r.minute)
		r.minute = append(r.minute, value)
		switch {
		case recvMark[idx] != (value == AmpMark):
			// A marker out of place. The preceding symbol may have been
			// the true minute boundary, so fall back to the matching
			// marker-hunt state instead of all the way to unsynced.
			r.logger.WithFields(logrus.Fields{
				"position": idx,
				"symbol":   value,
			}).Debug("marker mismatch, resynchronizing")
			if r.minute[len(r.minute)-2] == AmpMark {
				r.state = stateTwoMarks
			} else {
				r.state = stateOneMark
			}
		case recvZero[idx] && value != AmpZero:
			r.logger.WithFields(logrus.Fields{
				"position": idx,
				"symbol":   value,
			}).Debug("nonzero in fixed-zero position, resynchronizing")
			r.state = stateUnsynced
		case idx == 59:
			t := NewTimecode(60)
			copy(t.AM, r.minute)
			r.minute = r.minute[:0]
			// The closing marker doubles as the first marker of the
			// next minute's boundary.
			r.state = stateOneMark
			return t
		}
	}
	return nil
}

// String describes the receiver state, mostly for debugging.
func (r *Receiver) String() string {
	return fmt.Sprintf("<Receiver %d %d>", r.state, len(r.minute))
}
