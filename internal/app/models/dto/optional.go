package dto

import (
	"bytes"
	"encoding/json"
)

// OptionalInt64 distinguishes an absent JSON field from an explicit null
// or value. Dynamic UPDATE builders append a column only when Set is true.
type OptionalInt64 struct {
	Set   bool
	Value *int64
}

// UnmarshalJSON implements json.Unmarshaler; it only runs when the field
// is present in the body.
func (o *OptionalInt64) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	// Zero from a cleared form field means "no reference", as the source
	// frontend sends
	if v == 0 {
		o.Value = nil
		return nil
	}
	o.Value = &v
	return nil
}

// MarshalJSON implements json.Marshaler
func (o OptionalInt64) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
