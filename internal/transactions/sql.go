package transactions

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/synthbank-dev/synthbank/internal/model"
)

// Table is the target table for the generated INSERT statements.
const Table = "transacciones"

// insertColumns is the explicit ordered column list every statement names.
const insertColumns = "id_transaccion, fecha_hora, id_cuenta_origen, id_cuenta_destino, tipo_transaccion, monto, estado, canal, descripcion"

const timestampFormat = "2006-01-02 15:04:05"

// MarshalInsert renders one transaction as a single INSERT statement.
// String fields are single-quoted, a missing destination becomes NULL,
// and the amount carries exactly two decimal places.
func MarshalInsert(tx model.Transaction) string {
	destination := "NULL"
	if tx.Destination != "" {
		destination = quote(tx.Destination)
	}

	values := strings.Join([]string{
		quote(tx.ID),
		quote(tx.Timestamp.Format(timestampFormat)),
		quote(tx.Origin),
		destination,
		quote(string(tx.Type)),
		tx.Amount.StringFixed(2),
		quote(string(tx.Status)),
		quote(string(tx.Channel)),
		quote(tx.Description),
	}, ", ")

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);", Table, insertColumns, values)
}

// WriteScript writes one INSERT per transaction, one statement per
// line, newline-joined with no trailing blank line.
func WriteScript(w io.Writer, txs []model.Transaction) error {
	for i, tx := range txs {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("writing script: %w", err)
			}
		}
		if _, err := io.WriteString(w, MarshalInsert(tx)); err != nil {
			return fmt.Errorf("writing statement %d: %w", i+1, err)
		}
	}
	return nil
}

// Save writes the INSERT script to path.
func Save(path string, txs []model.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating script file: %w", err)
	}
	defer f.Close()

	return WriteScript(f, txs)
}

func quote(s string) string {
	return "'" + s + "'"
}
