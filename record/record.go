// Package record lays out a row of Values as a fixed-width byte record, the
// way a page store hands column fields to the value layer.
package record

import (
	"fmt"

	"github.com/goccy/sqlvalue/internal/calendar"
	"github.com/goccy/sqlvalue/types"
	"github.com/goccy/sqlvalue/value"
)

type Column struct {
	Name  string
	Kind  types.AttributeKind
	Width int
}

// Schema is an ordered list of columns with precomputed field offsets.
type Schema struct {
	Columns []*Column
	offsets []int
	size    int
}

// NewSchema validates cols and computes their offsets. Scalar columns always
// take types.FixedWidth bytes; a Text column must declare a positive width.
func NewSchema(cols ...*Column) (*Schema, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("record: schema has no columns")
	}
	s := &Schema{
		Columns: cols,
		offsets: make([]int, len(cols)),
	}
	names := make(map[string]struct{}, len(cols))
	for i, col := range cols {
		if col.Name == "" {
			return nil, fmt.Errorf("record: column %d has no name", i)
		}
		if _, exists := names[col.Name]; exists {
			return nil, fmt.Errorf("record: duplicate column %s", col.Name)
		}
		names[col.Name] = struct{}{}
		if !col.Kind.IsValid() {
			return nil, fmt.Errorf("record: column %s has unexpected kind %s", col.Name, col.Kind)
		}
		switch col.Kind {
		case types.Text:
			if col.Width <= 0 {
				return nil, fmt.Errorf("record: text column %s requires a positive width", col.Name)
			}
		default:
			if col.Width != 0 && col.Width != types.FixedWidth {
				return nil, fmt.Errorf("record: %s column %s must be %d bytes wide", col.Kind, col.Name, types.FixedWidth)
			}
			col.Width = types.FixedWidth
		}
		s.offsets[i] = s.size
		s.size += col.Width
	}
	return s, nil
}

// Size is the byte length of one encoded row.
func (s *Schema) Size() int { return s.size }

// Offset returns the position of column i inside a record.
func (s *Schema) Offset(i int) int { return s.offsets[i] }

// NewRow returns one Value per column, prepared to receive field data:
// scalar columns carry their kind and text columns a zero-filled buffer of
// the column width.
func (s *Schema) NewRow() []*value.Value {
	row := make([]*value.Value, len(s.Columns))
	for i, col := range s.Columns {
		v := value.New()
		if col.Kind == types.Text {
			v.SetEmptyString(col.Width)
		} else {
			v.SetKind(col.Kind)
		}
		row[i] = v
	}
	return row
}

// Encode writes row as one record. Text shorter than its column is padded
// with NUL bytes.
func (s *Schema) Encode(row []*value.Value) ([]byte, error) {
	if len(row) != len(s.Columns) {
		return nil, fmt.Errorf("record: expected %d values but got %d", len(s.Columns), len(row))
	}
	buf := make([]byte, s.size)
	for i, col := range s.Columns {
		v := row[i]
		if v == nil || v.Kind() != col.Kind {
			return nil, fmt.Errorf("record: column %s expects %s value but got %s", col.Name, col.Kind, kindOf(v))
		}
		data := v.Bytes()
		if len(data) > col.Width {
			return nil, fmt.Errorf("record: value of length %d exceeds column %s width %d", len(data), col.Name, col.Width)
		}
		copy(buf[s.offsets[i]:], data)
	}
	return buf, nil
}

// Decode reads one record. Each Value owns a copy of its field, so buf may be
// reused once Decode returns.
func (s *Schema) Decode(buf []byte) ([]*value.Value, error) {
	if len(buf) < s.size {
		return nil, fmt.Errorf("record: expected %d bytes but got %d", s.size, len(buf))
	}
	row := s.NewRow()
	for i, col := range s.Columns {
		off := s.offsets[i]
		field := buf[off : off+col.Width]
		row[i].SetData(field, col.Width)
		if col.Kind == types.Date && !calendar.IsValidCode(row[i].GetDate()) {
			return nil, fmt.Errorf("record: column %s holds invalid date code %d", col.Name, row[i].GetDate())
		}
	}
	return row, nil
}

func kindOf(v *value.Value) types.AttributeKind {
	if v == nil {
		return types.Undefined
	}
	return v.Kind()
}
