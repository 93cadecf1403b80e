// Package poker provides the card primitives shared by the rest of the
// module: cards, a shuffled deck, the hand evaluator and starting-hand
// notation.
//
// Evaluate accepts five to seven distinct cards and returns the best
// five-card HandRank. HandRank values are totally ordered: category first,
// then a tie-break vector of ranks. Equal ranks split the pot.
//
//	hr, err := poker.Evaluate(poker.MustParseCards("As Ah Kd Kc Qd 2h 3s"))
//	// hr.String() == "Two Pair, Aces and Kings"
//
// Decks take an explicit *rand.Rand so hands can be replayed from a seed.
package poker
