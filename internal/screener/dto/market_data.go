package dto

import (
	"encoding/json"
)

// StocksResponse is the upstream snapshot envelope. Rows stay raw so a bad row
// can be dropped without losing the rest of the snapshot.
type StocksResponse struct {
	Success bool              `json:"success"`
	Data    []json.RawMessage `json:"data"`
}

// StockResponse is the upstream per-symbol envelope. Data stays raw so it can be
// passed through untouched and decoded separately.
type StockResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}
