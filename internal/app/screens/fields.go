package screens

import "github.com/rook-computer/bigclock/internal/render/segment"

// MaxSecondsBucket is the number of indicator boxes at the end of a minute.
const MaxSecondsBucket = 5

// Fields are the display values derived from one clock reading.
type Fields struct {
	Hour12     int
	HourTens   segment.Digit
	HourOnes   segment.Digit
	MinuteTens segment.Digit
	MinuteOnes segment.Digit
	PM         bool
	// SecondsBucket is how many indicator boxes are drawn.
	SecondsBucket int
}

func (f Fields) AM() bool { return !f.PM }

// Hour12 converts a 0-23 hour to 1-12.
func Hour12(h24 int) int {
	h := h24 % 12
	if h == 0 {
		h = 12
	}
	return h
}

// SecondsBucket groups the second of the minute into tens, clamped to 0..5.
func SecondsBucket(second int) int {
	n := second / 10
	if n > MaxSecondsBucket {
		n = MaxSecondsBucket
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Derive computes the fields for hour h24, minute m and second s.
func Derive(h24, m, s int) Fields {
	h12 := Hour12(h24)
	// No leading zero on single digit hours.
	tens := segment.Digit(h12 / 10)
	if tens == 0 {
		tens = segment.Blank
	}
	return Fields{
		Hour12:        h12,
		HourTens:      tens,
		HourOnes:      segment.Digit(h12 % 10),
		MinuteTens:    segment.Digit(m / 10),
		MinuteOnes:    segment.Digit(m % 10),
		PM:            h24 >= 12,
		SecondsBucket: SecondsBucket(s),
	}
}
