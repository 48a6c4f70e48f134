package clients

import (
	"fmt"
	"time"

	"github.com/synthbank-dev/synthbank/internal/id"
	"github.com/synthbank-dev/synthbank/internal/model"
)

// ValidationError describes a single invariant violation in a generated
// client set.
type ValidationError struct {
	Invariant   int
	ClientID    string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.ClientID, e.Description)
}

// Validate enforces the client-set invariants. These should never fire
// for a correct generator; they exist to catch regressions before an
// artifact is written.
func Validate(set []model.Client, now func() time.Time) []ValidationError {
	var errs []ValidationError

	// Invariant 1: realized profile counts match the configured proportions.
	want := ProfileCounts(len(set))
	got := make(map[model.CreditProfile]int)
	for _, c := range set {
		got[c.CreditProfile]++
	}
	for _, p := range model.Profiles {
		if got[p] != want[p] {
			errs = append(errs, ValidationError{
				Invariant:   1,
				ClientID:    string(p),
				Description: fmt.Sprintf("expected %d clients with profile %s, got %d", want[p], p, got[p]),
			})
		}
	}

	// Invariant 2: id, national ID, and email are pairwise distinct.
	seenIDs := make(map[string]string, len(set))
	seenCedulas := make(map[string]string, len(set))
	seenEmails := make(map[string]string, len(set))
	for _, c := range set {
		if prev, dup := seenIDs[c.ID]; dup {
			errs = append(errs, ValidationError{
				Invariant:   2,
				ClientID:    c.ID,
				Description: fmt.Sprintf("duplicate id %q, first issued to %s", c.ID, prev),
			})
		} else {
			seenIDs[c.ID] = c.ID
		}

		if prev, dup := seenCedulas[c.NationalID]; dup {
			errs = append(errs, ValidationError{
				Invariant:   2,
				ClientID:    c.ID,
				Description: fmt.Sprintf("duplicate national ID %q, first issued to %s", c.NationalID, prev),
			})
		} else {
			seenCedulas[c.NationalID] = c.ID
		}

		if prev, dup := seenEmails[c.Email]; dup {
			errs = append(errs, ValidationError{
				Invariant:   2,
				ClientID:    c.ID,
				Description: fmt.Sprintf("duplicate email %q, first issued to %s", c.Email, prev),
			})
		} else {
			seenEmails[c.Email] = c.ID
		}
	}

	for _, c := range set {
		ranges, ok := profileRanges[c.CreditProfile]
		if !ok {
			errs = append(errs, ValidationError{
				Invariant:   3,
				ClientID:    c.ID,
				Description: fmt.Sprintf("unknown credit profile %q", c.CreditProfile),
			})
			continue
		}

		// Invariant 3: score and savings inside the profile's bands.
		if c.CreditScore < ranges.ScoreLo || c.CreditScore > ranges.ScoreHi {
			errs = append(errs, ValidationError{
				Invariant:   3,
				ClientID:    c.ID,
				Description: fmt.Sprintf("score %d outside [%d,%d] for profile %s", c.CreditScore, ranges.ScoreLo, ranges.ScoreHi, c.CreditProfile),
			})
		}
		if c.SavingsBalance < ranges.SavingsLo || c.SavingsBalance > ranges.SavingsHi {
			errs = append(errs, ValidationError{
				Invariant:   3,
				ClientID:    c.ID,
				Description: fmt.Sprintf("savings %d outside [%d,%d] for profile %s", c.SavingsBalance, ranges.SavingsLo, ranges.SavingsHi, c.CreditProfile),
			})
		}

		// Invariant 4: debt inside the profile's ratio band, capped at 80%
		// of income. The lower bound allows for integer truncation.
		if c.MonthlyIncome > 0 {
			ratio := float64(c.CurrentDebt) / float64(c.MonthlyIncome)
			floor := ranges.DebtRatioLo - 1.0/float64(c.MonthlyIncome)
			if ratio < floor || ratio > ranges.DebtRatioHi || ratio > maxDebtRatio {
				errs = append(errs, ValidationError{
					Invariant:   4,
					ClientID:    c.ID,
					Description: fmt.Sprintf("debt ratio %.4f outside [%.2f,%.2f] for profile %s", ratio, ranges.DebtRatioLo, ranges.DebtRatioHi, c.CreditProfile),
				})
			}
		}

		// Invariant 5: tenure bounded by working years since age 18.
		age, ageErr := ageOf(c.BirthDate, now())
		if ageErr != nil {
			errs = append(errs, ValidationError{
				Invariant:   5,
				ClientID:    c.ID,
				Description: ageErr.Error(),
			})
		} else if c.EmploymentYears < 0 || c.EmploymentYears > max(0, min(maxTenure, age-18)) {
			errs = append(errs, ValidationError{
				Invariant:   5,
				ClientID:    c.ID,
				Description: fmt.Sprintf("tenure %d exceeds bound for age %d", c.EmploymentYears, age),
			})
		}

		// Invariant 6: well-formed client ID.
		if _, _, idErr := id.ParseClientID(c.ID); idErr != nil {
			errs = append(errs, ValidationError{
				Invariant:   6,
				ClientID:    c.ID,
				Description: idErr.Error(),
			})
		}
	}

	return errs
}

func ageOf(birthDate string, now time.Time) (int, error) {
	bd, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0, fmt.Errorf("parsing birth date %q: %w", birthDate, err)
	}
	return int(now.Sub(bd).Hours() / 24 / 365), nil
}
