// Package fixture loads typed table fixtures from YAML or JSON files and
// parses their cells into Values.
package fixture

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/goccy/sqlvalue/record"
	"github.com/goccy/sqlvalue/types"
	"github.com/goccy/sqlvalue/value"
)

// Table is a fixture table as written in YAML or JSON.
type Table struct {
	ID      string    `yaml:"id" json:"id" validate:"required"`
	Columns []*Column `yaml:"columns" json:"columns" validate:"required,dive"`
	Data    Data      `yaml:"data" json:"data"`
}

type Data []map[string]interface{}

type Column struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	Type string `yaml:"type" json:"type" validate:"kind"`

	// Width is only meaningful for text columns. Zero means the longest
	// value in the table data.
	Width int `yaml:"width" json:"width" validate:"gte=0"`
}

// LoadedTable is a fixture table whose cells were parsed into Values.
type LoadedTable struct {
	ID     string
	Schema *record.Schema
	Rows   [][]*value.Value
}

// Records encodes every row with the table schema.
func (t *LoadedTable) Records() ([][]byte, error) {
	records := make([][]byte, 0, len(t.Rows))
	for i, row := range t.Rows {
		buf, err := t.Schema.Encode(row)
		if err != nil {
			return nil, fmt.Errorf("failed to encode row %d of %s: %w", i, t.ID, err)
		}
		records = append(records, buf)
	}
	return records, nil
}

func (t *Table) load() (*LoadedTable, error) {
	kinds := make([]types.AttributeKind, len(t.Columns))
	for i, col := range t.Columns {
		kind, err := types.KindFromName(col.Type)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col.Name, err)
		}
		kinds[i] = kind
	}
	rows := make([][]*value.Value, 0, len(t.Data))
	for rowIdx, data := range t.Data {
		row := make([]*value.Value, len(t.Columns))
		for i, col := range t.Columns {
			cell, exists := data[col.Name]
			if !exists || cell == nil {
				return nil, fmt.Errorf("row %d: missing value for column %s", rowIdx, col.Name)
			}
			lit, err := literal(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", rowIdx, col.Name, err)
			}
			v, err := value.Parse(kinds[i], lit)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", rowIdx, col.Name, err)
			}
			row[i] = v
		}
		if len(data) > len(t.Columns) {
			return nil, fmt.Errorf("row %d: found %d values for %d columns", rowIdx, len(data), len(t.Columns))
		}
		rows = append(rows, row)
	}
	cols := make([]*record.Column, len(t.Columns))
	for i, col := range t.Columns {
		width := col.Width
		if kinds[i] == types.Text {
			longest := maxLength(rows, i)
			if width == 0 {
				width = longest
			}
			if longest > width {
				return nil, fmt.Errorf("column %s: value of length %d exceeds width %d", col.Name, longest, width)
			}
		}
		cols[i] = &record.Column{Name: col.Name, Kind: kinds[i], Width: width}
	}
	schema, err := record.NewSchema(cols...)
	if err != nil {
		return nil, err
	}
	return &LoadedTable{ID: t.ID, Schema: schema, Rows: rows}, nil
}

func maxLength(rows [][]*value.Value, col int) int {
	width := 1
	for _, row := range rows {
		if l := row[col].Length(); l > width {
			width = l
		}
	}
	return width
}

// literal renders a decoded YAML or JSON scalar in the text form understood
// by value.Parse.
func literal(cell interface{}) (string, error) {
	switch v := cell.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	case time.Time:
		return v.Format("2006-01-02"), nil
	}
	return "", fmt.Errorf("unexpected cell type %T", cell)
}
