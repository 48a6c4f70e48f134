package clients

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/synthbank-dev/synthbank/internal/id"
	"github.com/synthbank-dev/synthbank/internal/model"
	"github.com/synthbank-dev/synthbank/internal/rng"
)

const (
	nationalIDLo = 1_000_000_000  // 10-digit national IDs
	nationalIDHi = 10_000_000_000 // exclusive

	incomeLo = 1_500_000
	incomeHi = 20_000_000

	maxDebtRatio = 0.80
	maxTenure    = 30
	minAge       = 24
	maxAge       = 64
)

// Generator produces synthetic client records from an injected random
// source and clock. Same seed and generation date, same output.
type Generator struct {
	src *rng.Source
	now func() time.Time
}

// NewGenerator creates a client Generator. now is used for the batch
// generation date and for age calculations; pass time.Now outside tests.
func NewGenerator(src *rng.Source, now func() time.Time) *Generator {
	return &Generator{src: src, now: now}
}

// Generate produces count client records. National IDs are sampled
// without replacement up front, so an impossible count fails before any
// record is built.
func (g *Generator) Generate(count int) ([]model.Client, error) {
	if count <= 0 {
		return nil, fmt.Errorf("client count must be positive, got %d", count)
	}

	genDate := g.now()

	profiles := AssignProfiles(g.src, count)

	cedulas, err := g.src.SampleUniqueInts(nationalIDLo, nationalIDHi, count)
	if err != nil {
		return nil, fmt.Errorf("sampling national IDs: %w", err)
	}

	usedEmails := make(map[string]bool, count)

	out := make([]model.Client, 0, count)
	for i := 0; i < count; i++ {
		profile := profiles[i]

		first := firstNames[g.src.IntN(len(firstNames))]
		last := lastNames[g.src.IntN(len(lastNames))]

		email := g.makeEmail(first, last, i+1, usedEmails)
		birthDate, age := g.randomBirthdate()

		income := g.src.IntBetween(incomeLo, incomeHi)
		ranges := profileRanges[profile]

		debtRatio := ranges.DebtRatioLo + g.src.Float64()*(ranges.DebtRatioHi-ranges.DebtRatioLo)
		debt := int(min(debtRatio*float64(income), maxDebtRatio*float64(income)))

		maxTenureYears := max(0, min(maxTenure, age-18))

		out = append(out, model.Client{
			ID:              id.FormatClientID(genDate, i+1),
			NationalID:      strconv.FormatInt(cedulas[i], 10),
			FullName:        first + " " + last,
			Email:           email,
			Phone:           g.makePhone(),
			BirthDate:       birthDate,
			City:            g.chooseCity(),
			MonthlyIncome:   income,
			EmploymentType:  g.chooseEmployment(),
			EmploymentYears: g.src.IntBetween(0, maxTenureYears),
			CreditProfile:   profile,
			CurrentDebt:     debt,
			SavingsBalance:  g.src.IntBetween(ranges.SavingsLo, ranges.SavingsHi),
			CreditScore:     g.src.IntBetween(ranges.ScoreLo, ranges.ScoreHi),
		})
	}

	return out, nil
}

// makeEmail composes first.last@domain, lowercased. On collision with a
// previously issued email the 1-based slot number disambiguates.
func (g *Generator) makeEmail(first, last string, slot int, used map[string]bool) string {
	base := strings.ToLower(first + "." + last)
	domain := emailDomains[g.src.IntN(len(emailDomains))]
	email := base + "@" + domain
	if used[email] {
		email = fmt.Sprintf("%s%d@%s", base, slot, domain)
	}
	used[email] = true
	return email
}

// makePhone returns a local mobile number formatted "+57 3XX XXX XXXX".
func (g *Generator) makePhone() string {
	num := "3" + g.src.Digits(9)
	return fmt.Sprintf("+57 %s %s %s", num[0:3], num[3:6], num[6:10])
}

// randomBirthdate draws birthdates until the resulting age (in 365-day
// years as of the injected clock) lands in [24, 64]. Days stop at 28 so
// every month is valid.
func (g *Generator) randomBirthdate() (string, int) {
	for {
		year := g.src.IntBetween(1960, 2000)
		month := g.src.IntBetween(1, 12)
		day := g.src.IntBetween(1, 28)
		bd := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		age := int(g.now().Sub(bd).Hours() / 24 / 365)
		if age >= minAge && age <= maxAge {
			return bd.Format("2006-01-02"), age
		}
	}
}

func (g *Generator) chooseCity() string {
	r := g.src.Float64()
	switch {
	case r < 0.40:
		return "Bogotá"
	case r < 0.60:
		return "Medellín"
	case r < 0.75:
		return "Cali"
	default:
		return otherCities[g.src.IntN(len(otherCities))]
	}
}

func (g *Generator) chooseEmployment() model.EmploymentType {
	r := g.src.Float64()
	switch {
	case r < 0.70:
		return model.EmploymentSalaried
	case r < 0.90:
		return model.EmploymentIndependent
	default:
		return model.EmploymentRetired
	}
}
