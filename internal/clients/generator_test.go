package clients

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthbank-dev/synthbank/internal/model"
	"github.com/synthbank-dev/synthbank/internal/rng"
)

func fixedNow() time.Time {
	return time.Date(2025, 12, 3, 10, 30, 0, 0, time.UTC)
}

func generateSet(t *testing.T, seed int64, count int) []model.Client {
	t.Helper()
	set, err := NewGenerator(rng.New(seed), fixedNow).Generate(count)
	require.NoError(t, err)
	require.Len(t, set, count)
	return set
}

func TestGenerateValidates(t *testing.T) {
	set := generateSet(t, 42, 1000)
	errs := Validate(set, fixedNow)
	assert.Empty(t, errs)
}

func TestGenerateDeterministic(t *testing.T) {
	a := generateSet(t, 42, 200)
	b := generateSet(t, 42, 200)
	assert.Equal(t, a, b)
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := generateSet(t, 1, 50)
	b := generateSet(t, 2, 50)
	assert.NotEqual(t, a, b)
}

func TestGenerateIDs(t *testing.T) {
	set := generateSet(t, 42, 25)
	assert.Equal(t, "CLT-20251203-0001", set[0].ID)
	assert.Equal(t, "CLT-20251203-0025", set[24].ID)
}

func TestNationalIDFormat(t *testing.T) {
	set := generateSet(t, 42, 100)
	seen := make(map[string]bool)
	for _, c := range set {
		require.Len(t, c.NationalID, 10, "national ID %q", c.NationalID)
		assert.False(t, seen[c.NationalID])
		seen[c.NationalID] = true
	}
}

func TestPhoneFormat(t *testing.T) {
	phoneRe := regexp.MustCompile(`^\+57 3\d{2} \d{3} \d{4}$`)
	for _, c := range generateSet(t, 42, 100) {
		assert.Regexp(t, phoneRe, c.Phone)
	}
}

func TestEmailFormat(t *testing.T) {
	for _, c := range generateSet(t, 42, 100) {
		assert.Equal(t, strings.ToLower(c.Email), c.Email)
		at := strings.Index(c.Email, "@")
		require.Positive(t, at)
		assert.Contains(t, emailDomains, c.Email[at+1:])
	}
}

func TestEmailDisambiguation(t *testing.T) {
	// With 20 first names and 15 last names, 1000 slots guarantee base
	// collisions; every issued email must still be unique.
	set := generateSet(t, 42, 1000)
	seen := make(map[string]bool, len(set))
	suffixed := 0
	for _, c := range set {
		require.False(t, seen[c.Email], "duplicate email %s", c.Email)
		seen[c.Email] = true
		local := c.Email[:strings.Index(c.Email, "@")]
		if strings.IndexFunc(local, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0 {
			suffixed++
		}
	}
	assert.Positive(t, suffixed, "expected some disambiguation suffixes in 1000 clients")
}

func TestAgeWindow(t *testing.T) {
	for _, c := range generateSet(t, 42, 300) {
		age, err := ageOf(c.BirthDate, fixedNow())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, age, 24)
		assert.LessOrEqual(t, age, 64)
	}
}

func TestTenureBound(t *testing.T) {
	for _, c := range generateSet(t, 42, 300) {
		age, err := ageOf(c.BirthDate, fixedNow())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c.EmploymentYears, 0)
		assert.LessOrEqual(t, c.EmploymentYears, max(0, min(30, age-18)))
	}
}

func TestCorrelatedRanges(t *testing.T) {
	for _, c := range generateSet(t, 42, 1000) {
		ranges := profileRanges[c.CreditProfile]
		assert.GreaterOrEqual(t, c.CreditScore, ranges.ScoreLo, "client %s", c.ID)
		assert.LessOrEqual(t, c.CreditScore, ranges.ScoreHi, "client %s", c.ID)
		assert.GreaterOrEqual(t, c.SavingsBalance, ranges.SavingsLo, "client %s", c.ID)
		assert.LessOrEqual(t, c.SavingsBalance, ranges.SavingsHi, "client %s", c.ID)
		assert.LessOrEqual(t, float64(c.CurrentDebt), 0.8*float64(c.MonthlyIncome), "client %s", c.ID)
	}
}

func TestGenerateRejectsNonPositiveCount(t *testing.T) {
	_, err := NewGenerator(rng.New(42), fixedNow).Generate(0)
	require.Error(t, err)
}

func TestDocumentRoundTrip(t *testing.T) {
	set := generateSet(t, 42, 10)

	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, set))

	// Accented Spanish text stays literal in the artifact.
	assert.NotContains(t, buf.String(), `\u`)

	got, err := ReadDocument(&buf)
	require.NoError(t, err)
	assert.Equal(t, set, got)
}

func TestSummary(t *testing.T) {
	set := generateSet(t, 42, 1000)
	s := Summarize(set)
	assert.Equal(t, 1000, s.Total)
	assert.Equal(t, 200, s.ByProfile[model.ProfileExcellent])
	assert.Contains(t, s.String(), "Excelente=200")
	assert.Contains(t, s.String(), "Malo=100")
}
