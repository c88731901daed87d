// Package scoring contains the pure derivation layer of the credit
// platform: credit arithmetic, level tiers, leaderboard ranking,
// aggregate statistics, the ROI model and the composite credit score.
// Every function takes plain entity snapshots and has no side effects.
package scoring

// ConversionRate is the number of credits awarded per documented hour saved
const ConversionRate = 10

// CreditsFromTimeSaved converts saved minutes into credits, flooring to
// avoid over-crediting fractional hours. Negative input yields zero.
func CreditsFromTimeSaved(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return minutes * ConversionRate / 60
}
