package clients

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/synthbank-dev/synthbank/internal/model"
)

// WriteDocument writes the complete client set as a 2-space-indented
// JSON array. Non-ASCII text is written literally, not escaped.
func WriteDocument(w io.Writer, clients []model.Client) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(clients); err != nil {
		return fmt.Errorf("encoding client document: %w", err)
	}
	return nil
}

// Save writes the client document to path.
func Save(path string, clients []model.Client) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating client document: %w", err)
	}
	defer f.Close()

	return WriteDocument(f, clients)
}

// ReadDocument reads a client document back from a reader.
func ReadDocument(r io.Reader) ([]model.Client, error) {
	var out []model.Client
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding client document: %w", err)
	}
	return out, nil
}
