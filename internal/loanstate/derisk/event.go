package derisk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Event is a contract event as served by the DeRisk data API.
type Event struct {
	ID              Number   `json:"id"`
	BlockNumber     int64    `json:"block_number"`
	FromAddress     string   `json:"from_address"`
	KeyName         string   `json:"key_name"`
	Keys            []string `json:"keys"`
	Data            []string `json:"data"`
	TransactionHash string   `json:"transaction_hash"`
	Timestamp       Number   `json:"timestamp"`
}

// Number is a non-negative integer the API encodes either as a JSON number or as a decimal string.
type Number uint64

// UnmarshalJSON accepts 42, "42" and null.
func (n *Number) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		*n = 0
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		raw = []byte(s)
	}
	v, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("parse number %q: %w", raw, err)
	}
	*n = Number(v)
	return nil
}
