package service

// Similarity tiers shown next to each match
const (
	TierExcellent = "excellent"
	TierGood      = "good"
	TierModerate  = "moderate"
	TierLow       = "low"
)

// TierFor buckets a percentage similarity
func TierFor(similarity float64) string {
	switch {
	case similarity >= 90:
		return TierExcellent
	case similarity >= 75:
		return TierGood
	case similarity >= 60:
		return TierModerate
	default:
		return TierLow
	}
}
