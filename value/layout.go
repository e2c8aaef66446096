package value

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/goccy/sqlvalue/types"
)

// ValueLayout is the JSON representation of a Value. Header names the kind
// and Body carries the text form parsed back by that kind's DataType.
type ValueLayout struct {
	Header types.AttributeKind `json:"header"`
	Body   string              `json:"body"`
}

func (v *Value) layout() (*ValueLayout, error) {
	switch v.kind {
	case types.Float:
		// keep every digit, ToString rounds
		f := math.Float32frombits(v.bits)
		return &ValueLayout{Header: v.kind, Body: strconv.FormatFloat(float64(f), 'g', -1, 32)}, nil
	case types.Integer, types.Boolean, types.Text, types.Date:
		body, err := Lookup(v.kind).ToString(v)
		if err != nil {
			return nil, err
		}
		return &ValueLayout{Header: v.kind, Body: body}, nil
	}
	return nil, nil
}

// MarshalJSON encodes v as {"header":"<kind>","body":"<text>"}, or null when
// v is Undefined.
func (v *Value) MarshalJSON() ([]byte, error) {
	layout, err := v.layout()
	if err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}
	if layout == nil {
		return []byte("null"), nil
	}
	return json.Marshal(layout)
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		v.Reset()
		return nil
	}
	var layout ValueLayout
	if err := json.Unmarshal(b, &layout); err != nil {
		return fmt.Errorf("failed to get value layout: %w", err)
	}
	if !layout.Header.IsValid() {
		return invalidArgumentf("unexpected value header %s", layout.Header)
	}
	decoded, err := Parse(layout.Header, layout.Body)
	if err != nil {
		return fmt.Errorf("failed to decode %s value: %w", layout.Header, err)
	}
	v.MoveFrom(decoded)
	return nil
}
