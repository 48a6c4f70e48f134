package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies an account movement.
type TransactionType string

const (
	TypeTransfer       TransactionType = "TRANSFERENCIA"
	TypeDeposit        TransactionType = "DEPOSITO"
	TypeWithdrawal     TransactionType = "RETIRO"
	TypeServicePayment TransactionType = "PAGO_SERVICIO"
)

// Channel is the customer-facing channel a transaction came through.
type Channel string

const (
	ChannelMobileApp Channel = "APP_MOVIL"
	ChannelWeb       Channel = "WEB"
	ChannelATM       Channel = "CAJERO"
	ChannelBranch    Channel = "SUCURSAL"
)

// TransactionStatus is the settlement outcome of a transaction.
type TransactionStatus string

const (
	StatusSuccessful TransactionStatus = "EXITOSA"
	StatusPending    TransactionStatus = "PENDIENTE"
	StatusRejected   TransactionStatus = "RECHAZADA"
)

// Transaction is one synthetic account movement. Destination is empty
// for everything except transfers.
type Transaction struct {
	ID          string
	Timestamp   time.Time
	Origin      string
	Destination string
	Type        TransactionType
	Amount      decimal.Decimal
	Status      TransactionStatus
	Channel     Channel
	Description string
}

// IsTransfer reports whether the transaction moves money between two
// accounts and therefore carries a destination.
func (t Transaction) IsTransfer() bool {
	return t.Type == TypeTransfer
}
