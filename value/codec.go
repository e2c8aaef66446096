package value

import (
	"encoding/binary"

	"github.com/goccy/sqlvalue/internal/logger"
	"github.com/goccy/sqlvalue/types"
	"go.uber.org/zap"
)

// Bytes returns the fixed-width encoding of v: 4 little-endian bytes for the
// scalar kinds (Date shares the Integer layout) and a copy of the text for
// Text. Undefined encodes to nil.
func (v *Value) Bytes() []byte {
	switch v.kind {
	case types.Integer, types.Float, types.Boolean, types.Date:
		b := make([]byte, types.FixedWidth)
		binary.LittleEndian.PutUint32(b, v.bits)
		return b
	case types.Text:
		src := v.textBytes()
		if src == nil {
			return nil
		}
		b := make([]byte, len(src))
		copy(b, src)
		return b
	}
	return nil
}

// SetData decodes raw according to the kind already set on v. It is the
// storage ingestion path: the caller sets the column kind first, then hands
// over the fixed-width field. Text reads at most length bytes up to the
// first NUL.
func (v *Value) SetData(raw []byte, length int) {
	switch v.kind {
	case types.Text:
		v.SetString(raw, length)
	case types.Integer, types.Float, types.Date:
		if len(raw) < types.FixedWidth {
			logger.Default().Warn("short data for fixed width type", zap.Stringer("type", v.kind), zap.Int("length", len(raw)))
			return
		}
		v.setScalar(v.kind, binary.LittleEndian.Uint32(raw))
	case types.Boolean:
		if len(raw) < types.FixedWidth {
			logger.Default().Warn("short data for fixed width type", zap.Stringer("type", v.kind), zap.Int("length", len(raw)))
			return
		}
		v.SetBoolean(binary.LittleEndian.Uint32(raw) != 0)
	default:
		logger.Default().Warn("unknown data type", zap.Stringer("type", v.kind))
	}
}

// SetKind prepares v for SetData. It drops any current content.
func (v *Value) SetKind(kind types.AttributeKind) {
	v.Reset()
	v.kind = kind
	if kind.Width() > 0 {
		v.length = kind.Width()
	}
}
