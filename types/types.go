package types

import (
	"fmt"
	"strings"
)

// AttributeKind is the closed set of SQL scalar kinds a Value can hold.
type AttributeKind int

const (
	Undefined AttributeKind = iota
	Integer
	Float
	Boolean
	Text
	Date
)

// Kinds lists every defined kind except Undefined.
var Kinds = []AttributeKind{Integer, Float, Boolean, Text, Date}

// FixedWidth is the encoded width of the inline scalar kinds.
const FixedWidth = 4

var kindNames = [...]string{
	Undefined: "undefined",
	Integer:   "ints",
	Float:     "floats",
	Boolean:   "booleans",
	Text:      "chars",
	Date:      "dates",
}

func (k AttributeKind) String() string {
	if k < Undefined || int(k) >= len(kindNames) {
		return fmt.Sprintf("AttributeKind(%d)", int(k))
	}
	return kindNames[k]
}

// IsValid reports whether k is one of the defined kinds (Undefined excluded).
func (k AttributeKind) IsValid() bool {
	return k > Undefined && int(k) < len(kindNames)
}

// Width returns the fixed encoded width of k, or 0 for Text and Undefined,
// whose width is given by the column definition.
func (k AttributeKind) Width() int {
	switch k {
	case Integer, Float, Boolean, Date:
		return FixedWidth
	}
	return 0
}

func (k AttributeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *AttributeKind) UnmarshalText(b []byte) error {
	kind, err := KindFromName(string(b))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// KindFromName resolves canonical kind names and common SQL type aliases.
func KindFromName(name string) (AttributeKind, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "INTS", "INT", "INTEGER":
		return Integer, nil
	case "FLOATS", "FLOAT", "REAL", "DOUBLE":
		return Float, nil
	case "BOOLEANS", "BOOL", "BOOLEAN":
		return Boolean, nil
	case "CHARS", "CHAR", "VARCHAR", "TEXT", "STRING":
		return Text, nil
	case "DATES", "DATE":
		return Date, nil
	case "UNDEFINED":
		return Undefined, nil
	}
	return Undefined, fmt.Errorf("unknown attribute kind %q", name)
}
