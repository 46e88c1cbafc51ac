package domain

import (
	"errors"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		rolls []int
		want  int
	}{
		{"all gutters", repeat(0, 20), 0},
		{"single pin", concat([]int{1}, repeat(0, 19)), 1},
		{"spare bonus", concat([]int{5, 5, 3}, repeat(0, 17)), 16},
		{"ten across two frames is not a spare", concat([]int{0, 4, 6, 3}, repeat(0, 16)), 13},
		{"two spares", concat([]int{7, 3, 4, 6, 5}, repeat(0, 15)), 34},
		{"strike bonus", concat([]int{10, 3, 6}, repeat(0, 16)), 28},
		{"two strikes", concat([]int{10, 10, 4, 2}, repeat(0, 14)), 46},
		{"perfect game", repeat(10, 12), 300},
		{"all spares", repeat(5, 21), 150},
		{"tenth frame spare", concat(repeat(4, 18), []int{5, 5, 7}), 89},
		{"unfinished game", []int{10, 7, 2}, 28},
		{"strike before unfinished frame", []int{10, 7}, 10},
		{"nothing rolled", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(DeriveFrames(tt.rolls)); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScorecard(t *testing.T) {
	card := Scorecard(DeriveFrames([]int{10, 7, 2}))
	if len(card) != 2 {
		t.Fatalf("len(card) = %d, want 2", len(card))
	}
	if card[0].Bonus != 9 || card[0].Cumulative != 19 {
		t.Errorf("card[0] = %+v, want bonus 9 cumulative 19", card[0])
	}
	if card[1].Bonus != 0 || card[1].Cumulative != 28 {
		t.Errorf("card[1] = %+v, want bonus 0 cumulative 28", card[1])
	}
}

func TestScorecard_MatchesScore(t *testing.T) {
	games := [][]int{
		repeat(10, 12),
		repeat(5, 21),
		concat([]int{10, 10, 4, 2}, repeat(0, 14)),
		concat(repeat(4, 18), []int{5, 5, 7}),
	}
	for _, rolls := range games {
		frames := DeriveFrames(rolls)
		card := Scorecard(frames)
		if got, want := card[len(card)-1].Cumulative, Score(frames); got != want {
			t.Errorf("scorecard total = %d, Score() = %d for %v", got, want, rolls)
		}
	}
}

func TestRollError(t *testing.T) {
	err := error(&RollError{Pins: 11, Frame: 1, Err: ErrInvalidPins})

	if !errors.Is(err, ErrInvalidPins) {
		t.Error("RollError does not unwrap to ErrInvalidPins")
	}
	if errors.Is(err, ErrGameComplete) {
		t.Error("RollError unexpectedly matches ErrGameComplete")
	}
	want := "roll 11 in frame 1: bowling: pins must be between 0 and 10"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
