package poker

// HoleCardCategory is a coarse preflop strength bucket.
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
)

// Categorize buckets a starting hand:
// Premium (JJ+, AK), Strong (TT, AQ, AJ), Medium (77-99, suited broadway),
// Weak (22-66, suited connectors and one-gappers), Trash (everything else).
func Categorize(h StartingHand) HoleCardCategory {
	switch {
	case h.Pair() && h.High >= Jack:
		return CategoryPremium
	case h.High == Ace && h.Low == King:
		return CategoryPremium
	case h.Pair() && h.High == Ten:
		return CategoryStrong
	case h.High == Ace && (h.Low == Queen || h.Low == Jack):
		return CategoryStrong
	case h.Pair() && h.High >= Seven:
		return CategoryMedium
	case h.Suited && h.Low >= Ten:
		return CategoryMedium
	case h.Pair():
		return CategoryWeak
	case h.Suited && h.Gap() <= 2:
		return CategoryWeak
	}
	return CategoryTrash
}

// CategorizeHoleCards buckets two concrete hole cards.
func CategorizeHoleCards(c1, c2 Card) HoleCardCategory {
	return Categorize(StartingHandOf(c1, c2))
}
