package transactions

import (
	"fmt"
	"strings"

	"github.com/synthbank-dev/synthbank/internal/model"
)

var typeOrder = []model.TransactionType{
	model.TypeTransfer, model.TypeDeposit, model.TypeWithdrawal, model.TypeServicePayment,
}

// Summary describes a generated transaction sequence for the completion
// report.
type Summary struct {
	Total  int
	Days   int
	ByType map[model.TransactionType]int
}

// Summarize tallies a transaction sequence by type and day.
func Summarize(txs []model.Transaction) Summary {
	s := Summary{Total: len(txs), ByType: make(map[model.TransactionType]int)}
	days := make(map[string]bool)
	for _, tx := range txs {
		s.ByType[tx.Type]++
		days[tx.Timestamp.Format("20060102")] = true
	}
	s.Days = len(days)
	return s
}

// String renders the summary in type-distribution order.
func (s Summary) String() string {
	parts := make([]string, 0, len(typeOrder))
	for _, typ := range typeOrder {
		parts = append(parts, fmt.Sprintf("%s=%d", typ, s.ByType[typ]))
	}
	return fmt.Sprintf("%d transactions over %d days (%s)", s.Total, s.Days, strings.Join(parts, ", "))
}
