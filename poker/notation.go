package poker

// StartingHand is a two-card holding in short-hand form, without specific
// suits: "AKs", "QJo" or "99". High is never below Low.
type StartingHand struct {
	High   Rank
	Low    Rank
	Suited bool
}

// ParseStartingHand parses short-hand notation. A repeated rank ("99") is a
// pocket pair. Two distinct ranks must be followed by 's' (suited) or 'o'
// (offsuit). Ranks are upper case or digits; anything else is rejected whole.
func ParseStartingHand(s string) (StartingHand, error) {
	runes := []rune(s)
	switch len(runes) {
	case 2:
		r1, ok1 := parseNotationRank(runes[0])
		r2, ok2 := parseNotationRank(runes[1])
		if !ok1 || !ok2 {
			return StartingHand{}, &ParseError{Input: s, Reason: "unknown rank"}
		}
		if r1 != r2 {
			return StartingHand{}, &ParseError{Input: s, Reason: "two distinct ranks need an s or o suffix"}
		}
		return StartingHand{High: r1, Low: r2}, nil
	case 3:
		r1, ok1 := parseNotationRank(runes[0])
		r2, ok2 := parseNotationRank(runes[1])
		if !ok1 || !ok2 {
			return StartingHand{}, &ParseError{Input: s, Reason: "unknown rank"}
		}
		if r1 == r2 {
			return StartingHand{}, &ParseError{Input: s, Reason: "a pair cannot be suited or offsuit"}
		}
		var suited bool
		switch runes[2] {
		case 's':
			suited = true
		case 'o':
		default:
			return StartingHand{}, &ParseError{Input: s, Reason: "suffix must be s or o"}
		}
		if r2 > r1 {
			r1, r2 = r2, r1
		}
		return StartingHand{High: r1, Low: r2, Suited: suited}, nil
	}
	return StartingHand{}, &ParseError{Input: s, Reason: "expected forms like AKs, QJo or 99"}
}

func parseNotationRank(c rune) (Rank, bool) {
	for i := range len(rankChars) {
		if rune(rankChars[i]) == c {
			return Rank(i), true
		}
	}
	return 0, false
}

// StartingHandOf returns the short-hand form of two hole cards.
func StartingHandOf(c1, c2 Card) StartingHand {
	high, low := c1.Rank(), c2.Rank()
	if low > high {
		high, low = low, high
	}
	return StartingHand{High: high, Low: low, Suited: high != low && c1.Suit() == c2.Suit()}
}

// Pair reports whether the hand is a pocket pair.
func (h StartingHand) Pair() bool { return h.High == h.Low }

// Gap returns the rank distance between the two cards.
func (h StartingHand) Gap() int { return int(h.High) - int(h.Low) }

// Cards returns one concrete holding for the hand: hearts and diamonds for
// pairs and offsuit hands, two hearts for suited hands.
func (h StartingHand) Cards() [2]Card {
	if h.Suited {
		return [2]Card{NewCard(h.High, Hearts), NewCard(h.Low, Hearts)}
	}
	return [2]Card{NewCard(h.High, Hearts), NewCard(h.Low, Diamonds)}
}

// String returns the notation, e.g. "AKs", "QJo" or "99".
func (h StartingHand) String() string {
	if h.Pair() {
		return h.High.String() + h.Low.String()
	}
	if h.Suited {
		return h.High.String() + h.Low.String() + "s"
	}
	return h.High.String() + h.Low.String() + "o"
}
