package amqp

import (
	"encoding/json"
	"time"
)

// CellEditMessage announces that one spreadsheet cell was overwritten.
// Consumers re-read the affected row; the message carries the edit, not
// the row state, so stale deliveries are harmless.
type CellEditMessage struct {
	Row       int       `json:"row"`   // zero-based data row, header excluded
	Field     string    `json:"field"` // canonical field key, e.g. "categorie"
	Value     string    `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

func NewCellEditMessage(row int, field, value string) *CellEditMessage {
	return &CellEditMessage{
		Row:       row,
		Field:     field,
		Value:     value,
		Timestamp: time.Now().UTC(),
	}
}

func (m *CellEditMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func CellEditMessageFromJSON(data []byte) (*CellEditMessage, error) {
	var msg CellEditMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
