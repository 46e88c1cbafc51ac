// Package domain contains the scoring core for tenpin.
//
// This package has no dependencies on infrastructure concerns (logging,
// flags, files) and contains only the rules of ten-pin bowling as pure
// functions over an ordered roll log.
//
// # Entities
//
//   - [Frame]: a derived grouping of one, two or three rolls
//   - [State]: whether a roll log describes a finished game
//   - [FrameScore]: one row of a scorecard with its bonus and running total
//
// # Derivation
//
// Nothing here keeps incremental state. [DeriveFrames], [GameState] and
// [Score] are recomputed from the roll log on every call, so the roll log
// stays the single source of truth.
package domain
