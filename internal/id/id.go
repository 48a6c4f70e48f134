package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dayFormat = "20060102"

// FormatClientID returns a client ID like "CLT-20251203-0001". The date
// namespaces the batch; seq is the 1-based slot within the batch.
func FormatClientID(genDate time.Time, seq int) string {
	return fmt.Sprintf("CLT-%s-%04d", genDate.Format(dayFormat), seq)
}

// FormatTransactionID returns a transaction ID like "TRX-20251203-00001".
// seq is the 1-based dense sequence within the transaction's day.
func FormatTransactionID(day time.Time, seq int) string {
	return fmt.Sprintf("TRX-%s-%05d", day.Format(dayFormat), seq)
}

// ParseClientID parses "CLT-YYYYMMDD-NNNN" into its date and sequence.
func ParseClientID(s string) (time.Time, int, error) {
	return parse(s, "CLT")
}

// ParseTransactionID parses "TRX-YYYYMMDD-NNNNN" into its date and sequence.
func ParseTransactionID(s string) (time.Time, int, error) {
	return parse(s, "TRX")
}

func parse(s, prefix string) (time.Time, int, error) {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 || parts[0] != prefix {
		return time.Time{}, 0, fmt.Errorf("invalid %s ID format: %q", prefix, s)
	}

	day, err := time.Parse(dayFormat, parts[1])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid date in ID %q: %w", s, err)
	}

	seq, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid sequence in ID %q: %w", s, err)
	}

	return day, seq, nil
}
