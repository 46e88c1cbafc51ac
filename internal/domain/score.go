package domain

// FrameScore is one row of a scorecard.
type FrameScore struct {
	Frame Frame

	// Bonus is what later frames add to this one
	Bonus int

	// Cumulative is the running total through this frame
	Cumulative int
}

// Score returns the base pins of every frame plus strike and spare bonuses.
// The tenth frame's extra rolls are counted in its own pins, and its bonus
// lookahead finds no following frame.
func Score(frames []Frame) int {
	base, bonus := 0, 0
	for i, f := range frames {
		base += f.Pins()
		bonus += Bonus(frames, i)
	}
	return base + bonus
}

// Bonus returns the bonus frame i earns from the frames after it.
func Bonus(frames []Frame, i int) int {
	f := frames[i]
	switch {
	case f.IsSpare():
		if i+1 < len(frames) {
			return frames[i+1].FirstRoll
		}
		return 0
	case f.IsStrike():
		if i+1 >= len(frames) {
			return 0
		}
		next := frames[i+1]
		bonus := next.FirstRoll
		if next.IsStrike() && i+2 < len(frames) {
			bonus += frames[i+2].FirstRoll
		} else {
			bonus += next.SecondRoll
		}
		return bonus
	default:
		return 0
	}
}

// Scorecard returns a running total per frame. The last row's Cumulative
// equals Score(frames).
func Scorecard(frames []Frame) []FrameScore {
	card := make([]FrameScore, 0, len(frames))
	total := 0
	for i, f := range frames {
		b := Bonus(frames, i)
		total += f.Pins() + b
		card = append(card, FrameScore{Frame: f, Bonus: b, Cumulative: total})
	}
	return card
}
