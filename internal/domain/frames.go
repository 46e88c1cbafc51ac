package domain

// DeriveFrames groups rolls into frames, left to right.
//
// Frames 1-9 take one roll for a strike and two otherwise; a trailing
// frame missing its second roll is not derived. Once nine frames exist the
// remaining rolls (up to three) form the tenth frame and derivation stops.
func DeriveFrames(rolls []int) []Frame {
	frames := make([]Frame, 0, MaxFrames)
	i := 0
	for i < len(rolls) {
		if len(frames) == MaxFrames-1 {
			frames = append(frames, tenthFrame(rolls[i:]))
			break
		}
		n := len(frames) + 1
		if rolls[i] == MaxPins {
			frames = append(frames, Frame{Number: n, FirstRoll: MaxPins})
			i++
			continue
		}
		if i+1 >= len(rolls) {
			break
		}
		frames = append(frames, Frame{Number: n, FirstRoll: rolls[i], SecondRoll: rolls[i+1]})
		i += 2
	}
	return frames
}

func tenthFrame(rest []int) Frame {
	f := Frame{Number: MaxFrames}
	if len(rest) > 0 {
		f.FirstRoll = rest[0]
	}
	if len(rest) > 1 {
		f.SecondRoll = rest[1]
	}
	if len(rest) > 2 {
		f.ThirdRoll = rest[2]
	}
	return f
}
