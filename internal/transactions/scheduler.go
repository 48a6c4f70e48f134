package transactions

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/synthbank-dev/synthbank/internal/accounts"
	"github.com/synthbank-dev/synthbank/internal/id"
	"github.com/synthbank-dev/synthbank/internal/model"
	"github.com/synthbank-dev/synthbank/internal/rng"
)

const secondsPerDay = 86400

// Scheduler spreads a fixed transaction total across a date range while
// holding a soft per-account daily cap. It owns all per-day account
// counters; nothing here is shared or concurrent.
type Scheduler struct {
	src      *rng.Source
	registry *accounts.Registry
	dailyCap int
}

// NewScheduler creates a Scheduler over the given account registry.
func NewScheduler(src *rng.Source, registry *accounts.Registry, dailyCap int) *Scheduler {
	return &Scheduler{src: src, registry: registry, dailyCap: dailyCap}
}

// SplitAcrossDays splits total across days as evenly as possible: every
// day gets floor(total/days), and the first total%days days get one
// extra. The counts always sum to total.
func SplitAcrossDays(total, days int) []int {
	base := total / days
	remainder := total % days
	counts := make([]int, days)
	for d := range counts {
		counts[d] = base
		if d < remainder {
			counts[d]++
		}
	}
	return counts
}

// timestampFor places the j-th transaction (0-indexed) of a count-sized
// day at an evenly spaced offset plus a sub-minute jitter derived from
// j, so timestamps are distinct and non-decreasing without being
// exactly periodic. On dense days the jitter is reduced below the slot
// width; offsets then stay strictly increasing and never cross
// midnight.
func timestampFor(day time.Time, j, count int) time.Time {
	slot := int64(secondsPerDay) / int64(count+1)
	spacing := int64(j+1) * secondsPerDay / int64(count+1)
	jitter := int64(j*97) % 59
	if slot < 60 {
		if slot <= 1 {
			jitter = 0
		} else {
			jitter %= slot
		}
	}
	return day.Add(time.Duration(spacing+jitter) * time.Second)
}

// Schedule produces the full ordered transaction sequence for the
// inclusive date range. The start and end dates are taken at midnight;
// the range length in days drives the per-day split.
func (s *Scheduler) Schedule(total int, start, end time.Time) ([]model.Transaction, error) {
	if total <= 0 {
		return nil, fmt.Errorf("transaction total must be positive, got %d", total)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s before start date %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	if s.registry.Len() < 2 {
		return nil, fmt.Errorf("need at least 2 accounts for transfers, have %d", s.registry.Len())
	}

	days := int(end.Sub(start).Hours()/24) + 1
	perDay := SplitAcrossDays(total, days)

	out := make([]model.Transaction, 0, total)
	for dayIdx, count := range perDay {
		day := start.AddDate(0, 0, dayIdx)
		load := accounts.NewDayLoad()

		for j := 0; j < count; j++ {
			out = append(out, s.buildTransaction(day, j, count, load))
		}
	}

	return out, nil
}

// buildTransaction derives one transaction from five uniform draws:
// type, status, channel, amount (reused for the destination offset),
// and origin index, always in that order so the draw sequence is
// stable for a given seed.
func (s *Scheduler) buildTransaction(day time.Time, j, count int, load *accounts.DayLoad) model.Transaction {
	seq := j + 1
	ts := timestampFor(day, j, count)

	rType := s.src.Float64()
	rStatus := s.src.Float64()
	rChannel := s.src.Float64()
	rAmount := s.src.Float64()
	rOrigin := s.src.Float64()

	typ := pickType(rType)
	origin, originIdx := s.pickOrigin(load, rOrigin)

	destination := ""
	if typ == model.TypeTransfer {
		destination = s.pickDestination(load, origin, originIdx, rAmount)
		load.Increment(destination)
	}
	load.Increment(origin)

	return model.Transaction{
		ID:          id.FormatTransactionID(day, seq),
		Timestamp:   ts,
		Origin:      origin,
		Destination: destination,
		Type:        typ,
		Amount:      amountFor(typ, rAmount),
		Status:      statusFor(typ, rStatus),
		Channel:     pickChannel(rChannel),
		Description: descriptionFor(typ, origin, destination),
	}
}

// pickOrigin selects the origin account: a pseudo-random candidate,
// probed cyclically past accounts at cap, then the first under-cap
// account in registration order. If every account is saturated the
// candidate is kept anyway; the cap is a soft preference and no
// transaction is ever dropped.
func (s *Scheduler) pickOrigin(load *accounts.DayLoad, r float64) (string, int) {
	n := s.registry.Len()
	idx := int(r * float64(n))
	if idx >= n {
		idx = n - 1
	}

	for attempts := 0; load.AtCap(s.registry.At(idx), s.dailyCap) && attempts < n; attempts++ {
		idx = (idx + 1) % n
	}

	if load.AtCap(s.registry.At(idx), s.dailyCap) {
		for i := 0; i < n; i++ {
			if !load.AtCap(s.registry.At(i), s.dailyCap) {
				return s.registry.At(i), i
			}
		}
	}

	return s.registry.At(idx), idx
}

// pickDestination selects a transfer destination distinct from origin,
// under the same probe-then-fallback rule. Distinctness is a hard
// constraint; the cap is not.
func (s *Scheduler) pickDestination(load *accounts.DayLoad, origin string, originIdx int, r float64) string {
	n := s.registry.Len()
	idx := (originIdx + 1 + int(r*float64(n-1))) % n

	dest := s.registry.At(idx)
	for attempts := 0; (dest == origin || load.AtCap(dest, s.dailyCap)) && attempts < n; attempts++ {
		idx = (idx + 1) % n
		dest = s.registry.At(idx)
	}

	if dest == origin || load.AtCap(dest, s.dailyCap) {
		for _, a := range s.registry.All() {
			if a != origin && !load.AtCap(a, s.dailyCap) {
				return a
			}
		}
		// Every other account is at cap: take the first distinct one and
		// exceed the cap rather than lose the transfer.
		for _, a := range s.registry.All() {
			if a != origin {
				return a
			}
		}
	}

	return dest
}

func pickType(r float64) model.TransactionType {
	switch {
	case r < 0.40:
		return model.TypeTransfer
	case r < 0.65:
		return model.TypeDeposit
	case r < 0.85:
		return model.TypeWithdrawal
	default:
		return model.TypeServicePayment
	}
}

func pickChannel(r float64) model.Channel {
	switch {
	case r < 0.50:
		return model.ChannelMobileApp
	case r < 0.80:
		return model.ChannelWeb
	case r < 0.95:
		return model.ChannelATM
	default:
		return model.ChannelBranch
	}
}

// amountRanges are the [low, high] amount bounds per transaction type.
var amountRanges = map[model.TransactionType][2]float64{
	model.TypeTransfer:       {10_000, 5_000_000},
	model.TypeDeposit:        {20_000, 10_000_000},
	model.TypeWithdrawal:     {10_000, 3_000_000},
	model.TypeServicePayment: {5_000, 500_000},
}

func amountFor(typ model.TransactionType, r float64) decimal.Decimal {
	bounds := amountRanges[typ]
	return decimal.NewFromFloat(bounds[0] + r*(bounds[1]-bounds[0])).Round(2)
}

// statusFor derives the settlement outcome. Transfers and withdrawals
// can be rejected (5%) or pending (10%); deposits and service payments
// only go pending (10%).
func statusFor(typ model.TransactionType, r float64) model.TransactionStatus {
	if typ == model.TypeTransfer || typ == model.TypeWithdrawal {
		switch {
		case r < 0.05:
			return model.StatusRejected
		case r < 0.15:
			return model.StatusPending
		default:
			return model.StatusSuccessful
		}
	}
	if r < 0.10 {
		return model.StatusPending
	}
	return model.StatusSuccessful
}

func descriptionFor(typ model.TransactionType, origin, destination string) string {
	switch typ {
	case model.TypeTransfer:
		return fmt.Sprintf("Transferencia de %s a %s", origin, destination)
	case model.TypeDeposit:
		return fmt.Sprintf("Depósito en cuenta %s", origin)
	case model.TypeWithdrawal:
		return fmt.Sprintf("Retiro en efectivo desde %s", origin)
	default:
		return fmt.Sprintf("Pago de servicio desde %s", origin)
	}
}
