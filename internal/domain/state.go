package domain

// State represents whether a roll log accepts more rolls.
type State int

const (
	StateInProgress State = iota
	StateComplete
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateInProgress:
		return "InProgress"
	case StateComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// consumeFrames walks rolls the way DeriveFrames does for frames 1-9,
// counting a strike as one roll and anything else as two. It returns the
// number of frames walked and the index just past them.
func consumeFrames(rolls []int) (frames, next int) {
	for frames < MaxFrames-1 && next < len(rolls) {
		if rolls[next] == MaxPins {
			next++
		} else {
			next += 2
		}
		frames++
	}
	return frames, next
}

// TenthFrameStart returns the index of the tenth frame's first roll, and
// false if nine frames have not been walked yet. The index may equal
// len(rolls) when the tenth frame has not started, or exceed it by one when
// the ninth frame is still waiting for its second roll.
func TenthFrameStart(rolls []int) (int, bool) {
	frames, next := consumeFrames(rolls)
	return next, frames == MaxFrames-1
}

// GameState reports whether the roll log describes a finished game.
func GameState(rolls []int) State {
	start, ok := TenthFrameStart(rolls)
	if !ok {
		return StateInProgress
	}
	remaining := len(rolls) - start
	if remaining < 2 {
		return StateInProgress
	}
	first, second := rolls[start], rolls[start+1]
	deservesThird := first == MaxPins || first+second == MaxPins
	if deservesThird && remaining < 3 {
		return StateInProgress
	}
	return StateComplete
}

// CurrentFrame returns the 1-based frame the next roll belongs to. It stays
// at MaxFrames once the tenth frame is reached, including after completion.
func CurrentFrame(rolls []int) int {
	frames, next := consumeFrames(rolls)
	if next > len(rolls) {
		// last walked frame is still waiting for its second roll
		return frames
	}
	return frames + 1
}
