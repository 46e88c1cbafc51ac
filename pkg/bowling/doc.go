// Package bowling scores ten-pin bowling games.
//
// A [Game] records rolls one at a time and derives frames, completion and
// score from that roll log whenever they are asked for.
//
// # Basic Usage
//
//	g := bowling.NewGame()
//	for _, pins := range []int{10, 7, 2} {
//	    if err := g.Roll(pins); err != nil {
//	        return err
//	    }
//	}
//	fmt.Println(g.Score()) // 28
//
// # Errors
//
// [Game.Roll] rejects a pin count outside [0,10] with an error matching
// [ErrInvalidPins], and any roll after the tenth frame is finished with an
// error matching [ErrGameComplete]. The range check runs first. Both come
// wrapped in a [*RollError]:
//
//	if errors.Is(err, bowling.ErrGameComplete) { ... }
//
// # Concurrency
//
// A Game is not safe for concurrent use. Guard Roll and Score with your
// own lock if a game is shared between goroutines.
//
// # Version
//
// Current version: 1.0.0
package bowling
