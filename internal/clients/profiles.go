package clients

import (
	"github.com/synthbank-dev/synthbank/internal/model"
	"github.com/synthbank-dev/synthbank/internal/rng"
)

// profileWeights are the configured percentages per credit profile, in
// model.Profiles order. The last bucket absorbs the rounding remainder.
var profileWeights = []int{20, 40, 30, 10}

// ProfileCounts splits n client slots into per-profile bucket sizes.
// Each of the first buckets gets floor(n * weight / 100); the last bucket
// takes whatever remains, so the counts always sum to n exactly.
func ProfileCounts(n int) map[model.CreditProfile]int {
	counts := make(map[model.CreditProfile]int, len(model.Profiles))
	assigned := 0
	for i, p := range model.Profiles[:len(model.Profiles)-1] {
		c := n * profileWeights[i] / 100
		counts[p] = c
		assigned += c
	}
	counts[model.Profiles[len(model.Profiles)-1]] = n - assigned
	return counts
}

// AssignProfiles builds the label sequence for n client slots: exact
// bucket counts per ProfileCounts, randomly permuted so the profile does
// not correlate with generation order.
func AssignProfiles(src *rng.Source, n int) []model.CreditProfile {
	counts := ProfileCounts(n)
	labels := make([]model.CreditProfile, 0, n)
	for _, p := range model.Profiles {
		for i := 0; i < counts[p]; i++ {
			labels = append(labels, p)
		}
	}
	src.Shuffle(len(labels), func(i, j int) {
		labels[i], labels[j] = labels[j], labels[i]
	})
	return labels
}

// profileRanges maps each credit profile to its correlated numeric
// bands. Score and savings bounds are inclusive; the debt ratio is drawn
// uniformly from [DebtRatioLo, DebtRatioHi).
type profileRange struct {
	ScoreLo, ScoreHi     int
	DebtRatioLo          float64
	DebtRatioHi          float64
	SavingsLo, SavingsHi int
}

var profileRanges = map[model.CreditProfile]profileRange{
	model.ProfileExcellent: {750, 850, 0.00, 0.20, 5_000_000, 50_000_000},
	model.ProfileGood:      {650, 749, 0.20, 0.40, 1_000_000, 20_000_000},
	model.ProfileFair:      {550, 649, 0.40, 0.60, 0, 5_000_000},
	model.ProfilePoor:      {300, 549, 0.60, 0.80, 0, 2_000_000},
}
