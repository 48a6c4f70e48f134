package clients

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthbank-dev/synthbank/internal/model"
)

func invariants(errs []ValidationError) map[int]bool {
	got := make(map[int]bool)
	for _, e := range errs {
		got[e.Invariant] = true
	}
	return got
}

func TestValidateCleanSet(t *testing.T) {
	set := generateSet(t, 99, 100)
	assert.Empty(t, Validate(set, fixedNow))
}

func TestValidateDistributionMismatch(t *testing.T) {
	set := generateSet(t, 99, 100)
	// Flip one profile; counts no longer match and ranges break too.
	set[0].CreditProfile = flipProfile(set[0].CreditProfile)
	errs := Validate(set, fixedNow)
	require.NotEmpty(t, errs)
	assert.True(t, invariants(errs)[1])
}

func TestValidateDuplicateEmail(t *testing.T) {
	set := generateSet(t, 99, 100)
	set[1].Email = set[0].Email
	errs := Validate(set, fixedNow)
	require.NotEmpty(t, errs)
	assert.True(t, invariants(errs)[2])
}

func TestValidateDuplicateNationalID(t *testing.T) {
	set := generateSet(t, 99, 100)
	set[2].NationalID = set[0].NationalID
	assert.True(t, invariants(Validate(set, fixedNow))[2])
}

func TestValidateScoreOutOfBand(t *testing.T) {
	set := generateSet(t, 99, 100)
	set[0].CreditScore = 900
	assert.True(t, invariants(Validate(set, fixedNow))[3])
}

func TestValidateDebtOverCap(t *testing.T) {
	set := generateSet(t, 99, 100)
	set[0].CurrentDebt = set[0].MonthlyIncome
	assert.True(t, invariants(Validate(set, fixedNow))[4])
}

func TestValidateTenureTooLong(t *testing.T) {
	set := generateSet(t, 99, 100)
	set[0].EmploymentYears = 60
	assert.True(t, invariants(Validate(set, fixedNow))[5])
}

func TestValidateMalformedID(t *testing.T) {
	set := generateSet(t, 99, 100)
	set[0].ID = "CLIENT-1"
	assert.True(t, invariants(Validate(set, fixedNow))[6])
}

func flipProfile(p model.CreditProfile) model.CreditProfile {
	if p == model.ProfileExcellent {
		return model.ProfilePoor
	}
	return model.ProfileExcellent
}
