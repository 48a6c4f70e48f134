package clients

import (
	"fmt"
	"strings"

	"github.com/synthbank-dev/synthbank/internal/model"
)

// Summary describes a generated client set for the completion report.
type Summary struct {
	Total     int
	ByProfile map[model.CreditProfile]int
}

// Summarize tallies a client set by credit profile.
func Summarize(set []model.Client) Summary {
	s := Summary{Total: len(set), ByProfile: make(map[model.CreditProfile]int)}
	for _, c := range set {
		s.ByProfile[c.CreditProfile]++
	}
	return s
}

// String renders the summary in profile-distribution order.
func (s Summary) String() string {
	parts := make([]string, 0, len(model.Profiles))
	for _, p := range model.Profiles {
		parts = append(parts, fmt.Sprintf("%s=%d", p, s.ByProfile[p]))
	}
	return fmt.Sprintf("%d clients (%s)", s.Total, strings.Join(parts, ", "))
}
