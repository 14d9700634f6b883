package dto

import (
	"bytes"
	"encoding/json"
)

// ShipmentResponse is the JSON form of a shipment. Missing eta and courier are null.
type ShipmentResponse struct {
	ID       string  `json:"id"`
	Status   string  `json:"status"`
	ETA      *string `json:"eta"`
	Courier  *string `json:"courier"`
	Progress int     `json:"progress"`
	Color    string  `json:"color"`
}

// ShipmentRequest is accepted by create and update.
type ShipmentRequest struct {
	ID       *string          `json:"id"`
	Status   *string          `json:"status"`
	ETA      Nullable[string] `json:"eta"`
	Courier  Nullable[string] `json:"courier"`
	Progress *int             `json:"progress"`
	Color    *string          `json:"color"`
}

// Nullable records whether a key was present in the request body, so that
// an explicit null can be told apart from an omitted field.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON is only invoked for keys present in the body, null included.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}
