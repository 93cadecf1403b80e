// Package game implements a heads-up hand as an externally driven state
// machine.
//
// A State seats exactly two players. Each hand walks through
//
//	StartHand -> PostBlinds -> DealFlop -> DealTurn -> DealRiver -> Showdown
//
// and every step is triggered by the caller. A street called out of order
// returns ErrInvalidStreetTransition and leaves the state unchanged.
//
// # Basic Usage
//
//	s, _ := game.New([]game.PlayerID{"alice", "bob"}, game.WithRNG(rng))
//	_ = s.StartHand()
//	_ = s.PostBlinds()
//	_ = s.ApplyAction("alice", game.Call, 0)
//	_ = s.ApplyAction("bob", game.Check, 0)
//	_, _ = s.Advance() // flop
//
// Betting follows a simplified contract. Blinds are fixed, each player acts
// once per street, and bet sizing is not validated. Deciders see a View of the
// state and return an action; PlayHand drives a whole hand that way.
//
// # Stacks
//
// Under the default StackPolicyAllIn a debit larger than a stack is clamped,
// putting the player all in. StackPolicyReject fails the action instead.
// Stacks never go negative.
//
// # Deterministic Testing
//
// Inject a seeded *rand.Rand with WithRNG, or script the deck entirely with
// WithDeck and poker.NewDeckFromCards.
package game
