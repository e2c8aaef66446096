package value

import (
	"bytes"
	"math"
	"strings"

	"github.com/goccy/sqlvalue/internal/logger"
	"github.com/goccy/sqlvalue/types"
	"go.uber.org/zap"
)

// noCopy makes go vet report Values copied by assignment.
// Use Clone or Move instead.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// textBuffer is the payload of a Text value. An ownedBuffer was allocated by
// the Value and is dropped on reset; a borrowedBuffer belongs to the caller.
type textBuffer interface {
	bytes() []byte
	owned() bool
}

type ownedBuffer []byte

func (b ownedBuffer) bytes() []byte { return b }
func (ownedBuffer) owned() bool     { return true }

type borrowedBuffer []byte

func (b borrowedBuffer) bytes() []byte { return b }
func (borrowedBuffer) owned() bool     { return false }

// Value is a single SQL scalar. The zero Value is Undefined.
//
// Integer, Float, Boolean and Date share one 32-bit inline slot, laid out the
// same way as the fixed-width encoding returned by Bytes. Text holds a buffer.
// A Value is not safe for concurrent mutation.
type Value struct {
	_      noCopy
	kind   types.AttributeKind
	length int
	bits   uint32
	text   textBuffer
}

func New() *Value {
	return &Value{}
}

func NewInt(v int32) *Value {
	ret := &Value{}
	ret.SetInt(v)
	return ret
}

func NewFloat(v float32) *Value {
	ret := &Value{}
	ret.SetFloat(v)
	return ret
}

func NewBoolean(v bool) *Value {
	ret := &Value{}
	ret.SetBoolean(v)
	return ret
}

func NewString(s string) *Value {
	ret := &Value{}
	ret.SetStringValue(s)
	return ret
}

// NewBytes copies b into an owned text buffer. A nil b yields a Text value without payload.
func NewBytes(b []byte) *Value {
	ret := &Value{}
	ret.SetString(b, 0)
	return ret
}

// NewDate stores a date code without validation.
func NewDate(code int32) *Value {
	ret := &Value{}
	ret.SetDate(code)
	return ret
}

// NewDateFromString parses s as a date literal.
// The result is Undefined when s is not a valid date.
func NewDateFromString(s string) *Value {
	ret := &Value{}
	ret.SetDateString(s)
	return ret
}

func (v *Value) Kind() types.AttributeKind { return v.kind }

// Length is the byte length of the active representation.
func (v *Value) Length() int { return v.length }

// Owns reports whether v holds a buffer it allocated itself.
func (v *Value) Owns() bool {
	return v.text != nil && v.text.owned()
}

// Borrowed reports whether v references a caller-owned buffer.
func (v *Value) Borrowed() bool {
	return v.text != nil && !v.text.owned()
}

func (v *Value) textBytes() []byte {
	if v.text == nil {
		return nil
	}
	return v.text.bytes()
}

// Reset releases any owned buffer and returns v to Undefined.
// A borrowed buffer is only forgotten, never modified.
func (v *Value) Reset() {
	v.kind = types.Undefined
	v.length = 0
	v.bits = 0
	v.text = nil
}

func (v *Value) setScalar(kind types.AttributeKind, bits uint32) {
	v.Reset()
	v.kind = kind
	v.bits = bits
	v.length = types.FixedWidth
}

func (v *Value) SetInt(val int32) {
	v.setScalar(types.Integer, uint32(val))
}

func (v *Value) SetFloat(val float32) {
	v.setScalar(types.Float, math.Float32bits(val))
}

func (v *Value) SetBoolean(val bool) {
	var bits uint32
	if val {
		bits = 1
	}
	v.setScalar(types.Boolean, bits)
}

// SetDate stores code as is. Callers that read codes from untrusted input
// must check them with calendar.IsValidCode first.
func (v *Value) SetDate(code int32) {
	v.setScalar(types.Date, uint32(code))
}

// SetDateString parses s with the date type. On failure v becomes Undefined.
func (v *Value) SetDateString(s string) {
	code, err := dateType.StrToDate(s)
	if err != nil {
		v.Reset()
		return
	}
	v.SetDate(code)
}

// SetString copies s into an owned buffer. When n > 0 at most n bytes are
// taken, and the copy always stops at the first NUL byte. A nil s leaves a
// Text value with no payload.
func (v *Value) SetString(s []byte, n int) {
	v.Reset()
	v.kind = types.Text
	if s == nil {
		return
	}
	if n > 0 && n < len(s) {
		s = s[:n]
	}
	if i := bytes.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	buf := make([]byte, len(s))
	copy(buf, s)
	v.text = ownedBuffer(buf)
	v.length = len(buf)
}

func (v *Value) SetStringValue(s string) {
	v.Reset()
	v.kind = types.Text
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	v.text = ownedBuffer(s)
	v.length = len(s)
}

// SetBorrowedString makes v reference b without copying it. The caller keeps
// ownership of b and must keep it unchanged while v refers to it.
func (v *Value) SetBorrowedString(b []byte) {
	v.Reset()
	v.kind = types.Text
	if b == nil {
		return
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	v.text = borrowedBuffer(b)
	v.length = len(b)
}

// SetEmptyString allocates an owned zero-filled buffer of exactly n bytes,
// as used by fixed-width text columns.
func (v *Value) SetEmptyString(n int) {
	v.Reset()
	v.kind = types.Text
	if n < 0 {
		n = 0
	}
	v.text = ownedBuffer(make([]byte, n))
	v.length = n
}

// SetValue copies the logical content of other through the setter of its kind.
func (v *Value) SetValue(other *Value) {
	if v == other {
		return
	}
	switch other.kind {
	case types.Integer:
		v.SetInt(other.GetInt())
	case types.Float:
		v.SetFloat(other.GetFloat())
	case types.Boolean:
		v.SetBoolean(other.GetBoolean())
	case types.Text:
		v.SetString(other.textBytes(), 0)
	case types.Date:
		v.SetDate(other.GetDate())
	default:
		logger.Default().Warn("set value from undefined value")
		v.Reset()
	}
}

// Clone returns a deep copy of v. Text is always copied into an owned buffer.
func (v *Value) Clone() *Value {
	ret := &Value{}
	ret.copyFrom(v)
	return ret
}

// CopyFrom replaces v with a deep copy of other.
func (v *Value) CopyFrom(other *Value) {
	if v == other {
		return
	}
	v.Reset()
	v.copyFrom(other)
}

func (v *Value) copyFrom(other *Value) {
	v.kind = other.kind
	v.length = other.length
	v.bits = other.bits
	if other.text != nil {
		src := other.text.bytes()
		buf := make([]byte, len(src))
		copy(buf, src)
		v.text = ownedBuffer(buf)
	}
}

// Move transfers the content of v, buffer included, into a new Value and
// leaves v Undefined with zero length.
func (v *Value) Move() *Value {
	ret := &Value{}
	ret.take(v)
	return ret
}

// MoveFrom releases v's own content and takes over other's; other is left
// Undefined with zero length.
func (v *Value) MoveFrom(other *Value) {
	if v == other {
		return
	}
	v.Reset()
	v.take(other)
}

func (v *Value) take(other *Value) {
	v.kind = other.kind
	v.length = other.length
	v.bits = other.bits
	v.text = other.text
	other.Reset()
}

// Compare orders v against other using the DataType of v's kind.
// It panics if the kinds differ.
func (v *Value) Compare(other *Value) int {
	return Lookup(v.kind).Compare(v, other)
}

// ToString formats v with the DataType of its kind, or returns "" when the
// kind cannot be formatted.
func (v *Value) ToString() string {
	s, err := Lookup(v.kind).ToString(v)
	if err != nil {
		logger.Default().Warn(
			"failed to convert value to string",
			zap.Stringer("type", v.kind),
			zap.Error(err),
		)
		return ""
	}
	return s
}

func (v *Value) String() string {
	return v.ToString()
}
