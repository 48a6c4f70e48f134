package transactions

import (
	"fmt"
	"time"

	"github.com/synthbank-dev/synthbank/internal/accounts"
	"github.com/synthbank-dev/synthbank/internal/id"
	"github.com/synthbank-dev/synthbank/internal/model"
)

// ValidationError describes a single invariant violation in a generated
// transaction sequence.
type ValidationError struct {
	Invariant     int
	TransactionID string
	Description   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.TransactionID, e.Description)
}

// Validate enforces the transaction invariants against the requested
// total and the cap configuration. It is a regression check: a correct
// scheduler never trips it.
func Validate(txs []model.Transaction, total int, registry *accounts.Registry, dailyCap int) []ValidationError {
	var errs []ValidationError

	// Invariant 1: exact total.
	if len(txs) != total {
		errs = append(errs, ValidationError{
			Invariant:   1,
			Description: fmt.Sprintf("generated %d transactions, requested %d", len(txs), total),
		})
	}

	type dayKey string
	dayOf := func(t time.Time) dayKey { return dayKey(t.Format("20060102")) }

	perDay := make(map[dayKey]int)
	var dayOrder []dayKey
	for _, tx := range txs {
		d := dayOf(tx.Timestamp)
		if perDay[d] == 0 {
			dayOrder = append(dayOrder, d)
		}
		perDay[d]++
	}

	// Invariant 2: per-day counts differ by at most 1 and sum to total.
	minCount, maxCount, sum := -1, 0, 0
	for _, d := range dayOrder {
		c := perDay[d]
		sum += c
		if minCount < 0 || c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
	}
	if len(dayOrder) > 0 && maxCount-minCount > 1 {
		errs = append(errs, ValidationError{
			Invariant:   2,
			Description: fmt.Sprintf("per-day counts range from %d to %d, spread exceeds 1", minCount, maxCount),
		})
	}
	if sum != len(txs) {
		errs = append(errs, ValidationError{
			Invariant:   2,
			Description: fmt.Sprintf("per-day counts sum to %d, want %d", sum, len(txs)),
		})
	}

	// Invariant 3: dense per-day sequences starting at 1, encoded in IDs.
	seqSeen := make(map[dayKey]map[int]bool)
	for _, tx := range txs {
		day, seq, err := id.ParseTransactionID(tx.ID)
		if err != nil {
			errs = append(errs, ValidationError{
				Invariant:     3,
				TransactionID: tx.ID,
				Description:   err.Error(),
			})
			continue
		}
		d := dayOf(day)
		if seqSeen[d] == nil {
			seqSeen[d] = make(map[int]bool)
		}
		if seqSeen[d][seq] {
			errs = append(errs, ValidationError{
				Invariant:     3,
				TransactionID: tx.ID,
				Description:   fmt.Sprintf("duplicate sequence %d on day %s", seq, d),
			})
		}
		seqSeen[d][seq] = true
	}
	for d, seen := range seqSeen {
		for i := 1; i <= len(seen); i++ {
			if !seen[i] {
				errs = append(errs, ValidationError{
					Invariant:   3,
					Description: fmt.Sprintf("day %s missing sequence %d in 1..%d", d, i, len(seen)),
				})
			}
		}
	}

	for _, tx := range txs {
		// Invariant 4: transfers have a distinct destination, everything
		// else has none.
		if tx.IsTransfer() {
			if tx.Destination == "" {
				errs = append(errs, ValidationError{
					Invariant:     4,
					TransactionID: tx.ID,
					Description:   "transfer without destination account",
				})
			} else if tx.Destination == tx.Origin {
				errs = append(errs, ValidationError{
					Invariant:     4,
					TransactionID: tx.ID,
					Description:   fmt.Sprintf("transfer from %s to itself", tx.Origin),
				})
			}
		} else if tx.Destination != "" {
			errs = append(errs, ValidationError{
				Invariant:     4,
				TransactionID: tx.ID,
				Description:   fmt.Sprintf("%s carries destination %s", tx.Type, tx.Destination),
			})
		}

		// Invariant 5: accounts come from the registry.
		if !registry.Exists(tx.Origin) {
			errs = append(errs, ValidationError{
				Invariant:     5,
				TransactionID: tx.ID,
				Description:   fmt.Sprintf("unknown origin account %q", tx.Origin),
			})
		}
		if tx.Destination != "" && !registry.Exists(tx.Destination) {
			errs = append(errs, ValidationError{
				Invariant:     5,
				TransactionID: tx.ID,
				Description:   fmt.Sprintf("unknown destination account %q", tx.Destination),
			})
		}

		// Invariant 6: amount inside the type's band, two decimal places.
		bounds := amountRanges[tx.Type]
		f, _ := tx.Amount.Float64()
		if f < bounds[0] || f > bounds[1] {
			errs = append(errs, ValidationError{
				Invariant:     6,
				TransactionID: tx.ID,
				Description:   fmt.Sprintf("amount %s outside [%.0f,%.0f] for %s", tx.Amount, bounds[0], bounds[1], tx.Type),
			})
		}
		if tx.Amount.Exponent() < -2 {
			errs = append(errs, ValidationError{
				Invariant:     6,
				TransactionID: tx.ID,
				Description:   fmt.Sprintf("amount %s has more than 2 decimal places", tx.Amount),
			})
		}

		// Invariant 7: rejected outcomes only for transfers and withdrawals.
		if tx.Status == model.StatusRejected && tx.Type != model.TypeTransfer && tx.Type != model.TypeWithdrawal {
			errs = append(errs, ValidationError{
				Invariant:     7,
				TransactionID: tx.ID,
				Description:   fmt.Sprintf("%s cannot be %s", tx.Type, tx.Status),
			})
		}
	}

	// Invariant 8: the cap is a soft limit. Replay each day in order; a
	// transaction may push an account past the cap only when every
	// alternative was already at cap at the moment it was placed.
	dayCounts := make(map[dayKey]map[string]int)
	for _, tx := range txs {
		d := dayOf(tx.Timestamp)
		if dayCounts[d] == nil {
			dayCounts[d] = make(map[string]int)
		}
		counts := dayCounts[d]
		if counts[tx.Origin] >= dailyCap && anyUnderCap(registry, counts, dailyCap, "") {
			errs = append(errs, ValidationError{
				Invariant:     8,
				TransactionID: tx.ID,
				Description:   fmt.Sprintf("origin %s pushed past cap %d on day %s while under-cap accounts remained", tx.Origin, dailyCap, d),
			})
		}
		if tx.Destination != "" {
			if counts[tx.Destination] >= dailyCap && anyUnderCap(registry, counts, dailyCap, tx.Origin) {
				errs = append(errs, ValidationError{
					Invariant:     8,
					TransactionID: tx.ID,
					Description:   fmt.Sprintf("destination %s pushed past cap %d on day %s while under-cap accounts remained", tx.Destination, dailyCap, d),
				})
			}
			counts[tx.Destination]++
		}
		counts[tx.Origin]++
	}

	// Invariant 9: timestamps non-decreasing within each day.
	var prev model.Transaction
	for i, tx := range txs {
		if i > 0 && dayOf(prev.Timestamp) == dayOf(tx.Timestamp) && tx.Timestamp.Before(prev.Timestamp) {
			errs = append(errs, ValidationError{
				Invariant:     9,
				TransactionID: tx.ID,
				Description:   fmt.Sprintf("timestamp %s precedes %s", tx.Timestamp.Format(timestampFormat), prev.Timestamp.Format(timestampFormat)),
			})
		}
		prev = tx
	}

	return errs
}

// anyUnderCap reports whether some registry account other than exclude
// is still below the per-day limit.
func anyUnderCap(registry *accounts.Registry, counts map[string]int, limit int, exclude string) bool {
	for _, a := range registry.All() {
		if a != exclude && counts[a] < limit {
			return true
		}
	}
	return false
}
