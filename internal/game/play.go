package game

import "fmt"

// PlayHand runs one complete hand with the simplified betting contract: the
// blinds are posted, then each player acts once per street in seat order
// before the next street is dealt.
func PlayHand(s *State, deciders map[PlayerID]Decider) (*Result, error) {
	for _, p := range s.players {
		if deciders[p] == nil {
			return nil, fmt.Errorf("%w: no decider for %q", ErrNotFound, p)
		}
	}
	if err := s.StartHand(); err != nil {
		return nil, err
	}
	if err := s.PostBlinds(); err != nil {
		return nil, err
	}

	for !s.IsComplete() {
		for _, p := range s.players {
			if _, err := s.Decide(p, deciders[p]); err != nil {
				return nil, err
			}
			if s.IsComplete() {
				break
			}
		}
		if s.IsComplete() {
			break
		}
		if _, err := s.Advance(); err != nil {
			return nil, err
		}
	}

	res, _ := s.Result()
	return res, nil
}
