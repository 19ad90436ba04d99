package srs

// Params defines the tunable constants of the scheduling algorithm.
//
// The ease adjustments implement a binary-signal simplification of SM-2:
// with only correct/incorrect grading the quality-weighted term collapses to
// a constant bonus, so the general formula is not carried here.
type Params struct {
	// InitialEaseFactor is assigned on a card's first recorded answer.
	InitialEaseFactor float64

	// MinEaseFactor is the floor below which the ease factor never drops.
	MinEaseFactor float64

	// CorrectEaseBonus is added to the ease factor on a correct answer.
	CorrectEaseBonus float64

	// IncorrectEasePenalty is subtracted from the ease factor on an
	// incorrect answer.
	IncorrectEasePenalty float64

	// FirstIntervalDays is the interval assigned on a card's first recorded
	// answer, and the reset value after any incorrect answer.
	FirstIntervalDays int

	// SecondIntervalDays is the interval assigned when a card at the first
	// interval is answered correctly.
	SecondIntervalDays int
}

// DefaultParams returns the standard algorithm parameters.
func DefaultParams() Params {
	return Params{
		InitialEaseFactor:    2.5,
		MinEaseFactor:        1.3,
		CorrectEaseBonus:     0.1,
		IncorrectEasePenalty: 0.2,
		FirstIntervalDays:    1,
		SecondIntervalDays:   6,
	}
}
