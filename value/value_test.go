package value

import (
	"testing"

	"github.com/goccy/sqlvalue/types"
	"github.com/google/go-cmp/cmp"
)

func TestZeroValue(t *testing.T) {
	var v Value
	if v.Kind() != types.Undefined {
		t.Fatalf("expected undefined but got %s", v.Kind())
	}
	if v.Length() != 0 || v.Owns() || v.Borrowed() {
		t.Fatal("zero value must hold nothing")
	}
	if got := v.ToString(); got != "" {
		t.Fatalf("expected empty string but got %q", got)
	}
}

func TestSetScalar(t *testing.T) {
	v := New()
	v.SetInt(-42)
	if v.Kind() != types.Integer || v.Length() != 4 || v.GetInt() != -42 {
		t.Fatalf("unexpected integer state: %s %d %d", v.Kind(), v.Length(), v.GetInt())
	}
	v.SetFloat(1.25)
	if v.Kind() != types.Float || v.Length() != 4 || v.GetFloat() != 1.25 {
		t.Fatalf("unexpected float state: %s %d %f", v.Kind(), v.Length(), v.GetFloat())
	}
	v.SetBoolean(true)
	if v.Kind() != types.Boolean || v.Length() != 4 || !v.GetBoolean() {
		t.Fatalf("unexpected boolean state: %s %d %v", v.Kind(), v.Length(), v.GetBoolean())
	}
	v.SetDate(20240229)
	if v.Kind() != types.Date || v.Length() != 4 || v.GetDate() != 20240229 {
		t.Fatalf("unexpected date state: %s %d %d", v.Kind(), v.Length(), v.GetDate())
	}
}

func TestSetString(t *testing.T) {
	t.Run("copy", func(t *testing.T) {
		src := []byte("hello")
		v := New()
		v.SetString(src, 0)
		src[0] = 'j'
		if got := v.GetString(); got != "hello" {
			t.Fatalf("value must own a copy: got %q", got)
		}
		if !v.Owns() || v.Length() != 5 {
			t.Fatalf("unexpected state owns=%v length=%d", v.Owns(), v.Length())
		}
	})
	t.Run("truncate", func(t *testing.T) {
		v := New()
		v.SetString([]byte("hello world"), 5)
		if got := v.GetString(); got != "hello" || v.Length() != 5 {
			t.Fatalf("got %q (%d)", got, v.Length())
		}
	})
	t.Run("stop at nul", func(t *testing.T) {
		v := New()
		v.SetString([]byte{'a', 'b', 0, 0, 0}, 5)
		if got := v.GetString(); got != "ab" || v.Length() != 2 {
			t.Fatalf("got %q (%d)", got, v.Length())
		}
	})
	t.Run("nil", func(t *testing.T) {
		v := NewInt(1)
		v.SetString(nil, 0)
		if v.Kind() != types.Text || v.Length() != 0 || v.Owns() {
			t.Fatalf("unexpected state %s %d %v", v.Kind(), v.Length(), v.Owns())
		}
		if v.GetBoolean() {
			t.Fatal("text without payload must be false")
		}
	})
	t.Run("empty string", func(t *testing.T) {
		v := New()
		v.SetEmptyString(8)
		if v.Kind() != types.Text || v.Length() != 8 || !v.Owns() {
			t.Fatalf("unexpected state %s %d %v", v.Kind(), v.Length(), v.Owns())
		}
		if diff := cmp.Diff(make([]byte, 8), v.Bytes()); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})
}

func TestBorrowedString(t *testing.T) {
	page := []byte("borrowed\x00\x00")
	v := New()
	v.SetBorrowedString(page)
	if !v.Borrowed() || v.Owns() {
		t.Fatal("expected borrowed buffer")
	}
	if got := v.GetString(); got != "borrowed" || v.Length() != 8 {
		t.Fatalf("got %q (%d)", got, v.Length())
	}

	clone := v.Clone()
	if !clone.Owns() {
		t.Fatal("clone of a borrowed value must own its buffer")
	}
	page[0] = 'B'
	if got := clone.GetString(); got != "borrowed" {
		t.Fatalf("clone must not alias the borrowed page: %q", got)
	}
	if got := v.GetString(); got != "Borrowed" {
		t.Fatalf("borrowed value must see the caller's bytes: %q", got)
	}

	v.Reset()
	if string(page[:8]) != "Borrowed" {
		t.Fatal("reset must not touch a borrowed buffer")
	}
}

func TestOverwriteReleasesBuffer(t *testing.T) {
	v := NewString("text payload")
	if !v.Owns() {
		t.Fatal("expected owned buffer")
	}
	v.SetInt(7)
	if v.Owns() || v.text != nil {
		t.Fatal("overwriting with a scalar must release the buffer")
	}
	if v.Kind() != types.Integer || v.Length() != 4 {
		t.Fatalf("unexpected state %s %d", v.Kind(), v.Length())
	}

	v.SetInt(1)
	v.SetStringValue("abc")
	first := v.text
	v.SetStringValue("defg")
	if v.GetString() != "defg" || v.Length() != 4 {
		t.Fatalf("unexpected text %q", v.GetString())
	}
	if string(first.bytes()) != "abc" {
		t.Fatal("previous buffer must not be reused for the new text")
	}
}

func TestCloneIsDeep(t *testing.T) {
	src := NewString("shared")
	dst := src.Clone()
	dst.text.bytes()[0] = 'S'
	if src.GetString() != "shared" {
		t.Fatalf("clone aliases its source: %q", src.GetString())
	}
	if dst.GetString() != "Shared" {
		t.Fatalf("unexpected clone content %q", dst.GetString())
	}

	scalar := NewFloat(2.5)
	if got := scalar.Clone(); got.Kind() != types.Float || got.GetFloat() != 2.5 {
		t.Fatalf("unexpected scalar clone %s %f", got.Kind(), got.GetFloat())
	}
}

func TestCopyFrom(t *testing.T) {
	dst := NewString("old")
	src := NewString("new")
	dst.CopyFrom(src)
	if dst.GetString() != "new" || src.GetString() != "new" {
		t.Fatalf("unexpected copy %q %q", dst.GetString(), src.GetString())
	}
	dst.CopyFrom(dst)
	if dst.GetString() != "new" {
		t.Fatal("self copy must be a no-op")
	}
}

func TestMove(t *testing.T) {
	src := NewString("moved text")
	buf := src.text
	dst := src.Move()
	if src.Owns() || src.Length() != 0 || src.Kind() != types.Undefined {
		t.Fatalf("moved-from value must be empty: %s %d %v", src.Kind(), src.Length(), src.Owns())
	}
	if !dst.Owns() || dst.GetString() != "moved text" {
		t.Fatalf("unexpected destination %q", dst.GetString())
	}
	if &dst.text.bytes()[0] != &buf.bytes()[0] {
		t.Fatal("move must transfer the buffer, not copy it")
	}
	// reusing the moved-from value must leave the destination intact
	src.SetStringValue("reused")
	src.Reset()
	if dst.GetString() != "moved text" {
		t.Fatalf("destination changed after source reuse: %q", dst.GetString())
	}
}

func TestMoveFrom(t *testing.T) {
	dst := NewString("previous")
	src := NewString("incoming")
	dst.MoveFrom(src)
	if dst.GetString() != "incoming" || src.Kind() != types.Undefined || src.Owns() {
		t.Fatalf("unexpected move %q %s", dst.GetString(), src.Kind())
	}
	dst.MoveFrom(dst)
	if dst.GetString() != "incoming" {
		t.Fatal("self move must be a no-op")
	}

	borrowed := New()
	borrowed.SetBorrowedString([]byte("page"))
	dst.MoveFrom(borrowed)
	if !dst.Borrowed() {
		t.Fatal("move must keep the borrowed case")
	}
}

func TestSetValue(t *testing.T) {
	for _, src := range []*Value{
		NewInt(3),
		NewFloat(-1.5),
		NewBoolean(true),
		NewString("abc"),
		NewDate(20240101),
	} {
		t.Run(src.Kind().String(), func(t *testing.T) {
			dst := NewString("to be replaced")
			dst.SetValue(src)
			if dst.Kind() != src.Kind() {
				t.Fatalf("expected %s but got %s", src.Kind(), dst.Kind())
			}
			if dst.Compare(src) != 0 {
				t.Fatalf("%s != %s", dst, src)
			}
		})
	}
	t.Run("undefined", func(t *testing.T) {
		dst := NewInt(1)
		dst.SetValue(New())
		if dst.Kind() != types.Undefined {
			t.Fatalf("unexpected kind %s", dst.Kind())
		}
	})
}

func TestSetDateString(t *testing.T) {
	v := NewString("x")
	v.SetDateString("2024-02-29")
	if v.Kind() != types.Date || v.GetDate() != 20240229 {
		t.Fatalf("unexpected date %s %d", v.Kind(), v.GetDate())
	}
	v.SetDateString("2023-02-29")
	if v.Kind() != types.Undefined || v.Length() != 0 {
		t.Fatalf("invalid date must leave an undefined value: %s %d", v.Kind(), v.Length())
	}
	if got := NewDateFromString("not a date"); got.Kind() != types.Undefined {
		t.Fatalf("unexpected kind %s", got.Kind())
	}
}

func TestGetInt(t *testing.T) {
	for _, test := range []struct {
		name     string
		value    *Value
		expected int32
	}{
		{"integer", NewInt(12), 12},
		{"float truncates", NewFloat(3.9), 3},
		{"negative float truncates", NewFloat(-3.9), -3},
		{"true", NewBoolean(true), 1},
		{"false", NewBoolean(false), 0},
		{"numeric text", NewString("123"), 123},
		{"leading spaces", NewString("  -45"), -45},
		{"trailing garbage", NewString("12abc"), 12},
		{"not a number", NewString("not a number"), 0},
		{"empty text", NewString(""), 0},
		{"date", NewDate(20240101), 20240101},
		{"undefined", New(), 0},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := test.value.GetInt(); got != test.expected {
				t.Fatalf("got %d; want %d", got, test.expected)
			}
		})
	}
}

func TestGetFloat(t *testing.T) {
	for _, test := range []struct {
		name     string
		value    *Value
		expected float32
	}{
		{"float", NewFloat(2.5), 2.5},
		{"integer", NewInt(-2), -2},
		{"true", NewBoolean(true), 1},
		{"numeric text", NewString("1.5"), 1.5},
		{"exponent", NewString("2e3xyz"), 2000},
		{"leading dot", NewString(".5"), 0.5},
		{"not a number", NewString("abc"), 0},
		{"undefined", New(), 0},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := test.value.GetFloat(); got != test.expected {
				t.Fatalf("got %f; want %f", got, test.expected)
			}
		})
	}
}

func TestGetBoolean(t *testing.T) {
	var noPayload Value
	noPayload.SetString(nil, 0)
	for _, test := range []struct {
		name     string
		value    *Value
		expected bool
	}{
		{"true", NewBoolean(true), true},
		{"false", NewBoolean(false), false},
		{"nonzero integer", NewInt(-1), true},
		{"zero integer", NewInt(0), false},
		{"float above epsilon", NewFloat(0.01), true},
		{"float below epsilon", NewFloat(1e-8), false},
		{"numeric text", NewString("2.5"), true},
		{"zero text", NewString("0"), true},
		{"word", NewString("false"), true},
		{"no payload", &noPayload, false},
		{"undefined", New(), false},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := test.value.GetBoolean(); got != test.expected {
				t.Fatalf("got %v; want %v", got, test.expected)
			}
		})
	}
}

func TestGetDateOnOtherKinds(t *testing.T) {
	for _, v := range []*Value{NewInt(20240101), NewString("2024-01-01"), New()} {
		if got := v.GetDate(); got != 0 {
			t.Fatalf("GetDate on %s returned %d", v.Kind(), got)
		}
	}
}

func TestCompareMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched kinds")
		}
	}()
	NewInt(20240101).Compare(NewDate(20240101))
}
