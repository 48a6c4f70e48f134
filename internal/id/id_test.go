package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatClientID(t *testing.T) {
	day := time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "CLT-20251203-0001", FormatClientID(day, 1))
	assert.Equal(t, "CLT-20251203-1000", FormatClientID(day, 1000))
}

func TestFormatTransactionID(t *testing.T) {
	day := time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "TRX-20231205-00001", FormatTransactionID(day, 1))
	assert.Equal(t, "TRX-20231205-00014", FormatTransactionID(day, 14))
}

func TestParseClientID(t *testing.T) {
	day, seq, err := ParseClientID("CLT-20251203-0042")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC), day)
	assert.Equal(t, 42, seq)
}

func TestParseTransactionID(t *testing.T) {
	day, seq, err := ParseTransactionID("TRX-20231205-00644")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC), day)
	assert.Equal(t, 644, seq)
}

func TestParseRejectsWrongPrefix(t *testing.T) {
	_, _, err := ParseClientID("TRX-20231205-00001")
	require.Error(t, err)

	_, _, err = ParseTransactionID("CLT-20231205-0001")
	require.Error(t, err)
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{"", "CLT", "CLT-20251203", "CLT-notadate-0001", "CLT-20251203-xyz"}
	for _, c := range cases {
		_, _, err := ParseClientID(c)
		assert.Error(t, err, "input %q", c)
	}
}

func TestRoundTrip(t *testing.T) {
	day := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	gotDay, gotSeq, err := ParseTransactionID(FormatTransactionID(day, 13))
	require.NoError(t, err)
	assert.Equal(t, day, gotDay)
	assert.Equal(t, 13, gotSeq)
}
