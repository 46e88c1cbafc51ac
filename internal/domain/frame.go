package domain

const (
	// MaxFrames is the number of frames in a game.
	MaxFrames = 10

	// MaxPins is the number of pins standing at the start of a frame.
	MaxPins = 10
)

// Kind classifies a frame for bonus lookahead.
type Kind int

const (
	KindOpen Kind = iota
	KindSpare
	KindStrike
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindSpare:
		return "spare"
	case KindStrike:
		return "strike"
	default:
		return "unknown"
	}
}

// Frame is a scoring unit derived from the roll log.
// Frames are values; they are never stored apart from the rolls they came from.
type Frame struct {
	// Number is the 1-based position of the frame in the game
	Number int

	// FirstRoll is the pins knocked down by the first throw
	FirstRoll int

	// SecondRoll is 0 for a strike in frames 1-9 or when not yet thrown
	SecondRoll int

	// ThirdRoll is only used by the tenth frame
	ThirdRoll int
}

// IsStrike reports whether the first roll knocked down every pin.
func (f Frame) IsStrike() bool {
	return f.FirstRoll == MaxPins
}

// IsSpare reports whether the first two rolls cleared the pins with a
// nonzero second roll.
func (f Frame) IsSpare() bool {
	return f.FirstRoll+f.SecondRoll == MaxPins && f.SecondRoll != 0
}

// Kind returns the frame classification. A tenth frame of 10,0 is a strike.
func (f Frame) Kind() Kind {
	switch {
	case f.IsStrike():
		return KindStrike
	case f.IsSpare():
		return KindSpare
	default:
		return KindOpen
	}
}

// Pins returns the frame's own pin total, without bonus.
func (f Frame) Pins() int {
	return f.FirstRoll + f.SecondRoll + f.ThirdRoll
}

// IsTenth reports whether this is the final frame.
func (f Frame) IsTenth() bool {
	return f.Number == MaxFrames
}
