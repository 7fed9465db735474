package bytebuffer

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// a field is something that can be written to a buffer and read back
type field struct {
	name  string
	width int
	write func(b *ByteBuffer)
	read  func(b *ByteBuffer, advance bool) (interface{}, error)
	want  interface{}
}

func fields() []field {
	return []field{
		{"uint8", 1,
			func(b *ByteBuffer) { b.WriteUint8(0xab) },
			func(b *ByteBuffer, a bool) (interface{}, error) { return b.ReadUint8(a) },
			uint8(0xab)},
		{"bytes", 3,
			func(b *ByteBuffer) { b.WriteBytes([]byte{7, 8, 9}) },
			func(b *ByteBuffer, a bool) (interface{}, error) { return b.ReadBytes(3, a) },
			[]byte{7, 8, 9}},
		{"int16", 2,
			func(b *ByteBuffer) { b.WriteInt16(math.MinInt16) },
			func(b *ByteBuffer, a bool) (interface{}, error) { return b.ReadInt16(a) },
			int16(math.MinInt16)},
		{"int32", 4,
			func(b *ByteBuffer) { b.WriteInt32(-123456789) },
			func(b *ByteBuffer, a bool) (interface{}, error) { return b.ReadInt32(a) },
			int32(-123456789)},
		{"bool", 1,
			func(b *ByteBuffer) { b.WriteBool(true) },
			func(b *ByteBuffer, a bool) (interface{}, error) { return b.ReadBool(a) },
			true},
		{"int64", 8,
			func(b *ByteBuffer) { b.WriteInt64(math.MaxInt64) },
			func(b *ByteBuffer, a bool) (interface{}, error) { return b.ReadInt64(a) },
			int64(math.MaxInt64)},
		{"float32", 4,
			func(b *ByteBuffer) { b.WriteFloat32(-3.75) },
			func(b *ByteBuffer, a bool) (interface{}, error) { return b.ReadFloat32(a) },
			float32(-3.75)},
		{"string", 4 + 6,
			func(b *ByteBuffer) { b.WriteString("gö ok") },
			func(b *ByteBuffer, a bool) (interface{}, error) { return b.ReadString(a) },
			"gö ok"},
		{"vector2", 8,
			func(b *ByteBuffer) { b.WriteVector2(Vector2{1.5, -2}) },
			func(b *ByteBuffer, a bool) (interface{}, error) { return b.ReadVector2(a) },
			Vector2{1.5, -2}},
		{"vector3", 12,
			func(b *ByteBuffer) { b.WriteVector3(Vector3{0.1, 0.2, 0.3}) },
			func(b *ByteBuffer, a bool) (interface{}, error) { return b.ReadVector3(a) },
			Vector3{0.1, 0.2, 0.3}},
		{"quaternion", 16,
			func(b *ByteBuffer) { b.WriteQuaternion(Quaternion{0, 0, 0, 1}) },
			func(b *ByteBuffer, a bool) (interface{}, error) { return b.ReadQuaternion(a) },
			Quaternion{0, 0, 0, 1}},
		{"color", 16,
			func(b *ByteBuffer) { b.WriteColor(Color{1, 0.5, 0.25, 1}) },
			func(b *ByteBuffer, a bool) (interface{}, error) { return b.ReadColor(a) },
			Color{1, 0.5, 0.25, 1}},
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range fields() {
		b := NewByteBuffer(0)
		f.write(b)

		if b.Len() != f.width {
			t.Errorf("%v: expected to write %v bytes, wrote %v", f.name, f.width, b.Len())
		}

		v, err := f.read(b, true)
		if err != nil {
			t.Errorf("%v: %v", f.name, err)
			continue
		}

		if diff := cmp.Diff(f.want, v); diff != "" {
			t.Errorf("%v: mismatch (-want +got):\n%s", f.name, diff)
		}

		if b.Pos() != f.width || b.Remaining() != 0 {
			t.Errorf("%v: expected position %v, got %v", f.name, f.width, b.Pos())
		}
	}
}

func TestOrderPreservation(t *testing.T) {
	fs := fields()
	b := NewByteBuffer(0)

	for _, f := range fs {
		f.write(b)
	}

	last := b.Pos()
	for _, f := range fs {
		v, err := f.read(b, true)
		if err != nil {
			t.Fatalf("%v: %v", f.name, err)
		}

		if diff := cmp.Diff(f.want, v); diff != "" {
			t.Errorf("%v: mismatch (-want +got):\n%s", f.name, diff)
		}

		if b.Pos() < last {
			t.Errorf("%v: position went back from %v to %v", f.name, last, b.Pos())
		}
		last = b.Pos()

		if b.Remaining()+b.Pos() != b.Len() {
			t.Errorf("%v: length accounting broken", f.name)
		}
	}

	if b.Remaining() != 0 {
		t.Errorf("expected everything to be read, %v remaining", b.Remaining())
	}
}

func TestPeek(t *testing.T) {
	for _, f := range fields() {
		b := NewByteBuffer(0)
		b.WriteUint8(0)
		f.write(b)
		b.MustSetPos(1)

		v, err := f.read(b, false)
		if err != nil {
			t.Errorf("%v: %v", f.name, err)
			continue
		}

		if b.Pos() != 1 {
			t.Errorf("%v: peek moved the position to %v", f.name, b.Pos())
		}

		again, err := f.read(b, true)
		if err != nil {
			t.Errorf("%v: %v", f.name, err)
			continue
		}

		if diff := cmp.Diff(v, again); diff != "" {
			t.Errorf("%v: peeked and read values differ (-peek +read):\n%s", f.name, diff)
		}
	}
}

func TestUnderrun(t *testing.T) {
	for _, f := range fields() {
		b := NewByteBuffer(0)

		_, err := f.read(b, true)
		if errors.Cause(err) != ErrUnderrun {
			t.Errorf("%v: expected underrun, got %v", f.name, err)
		}

		if !IsUnderrun(err) {
			t.Errorf("%v: IsUnderrun(%v) is false", f.name, err)
		}
	}
}

func TestTruncatedRead(t *testing.T) {
	for _, f := range fields() {
		if f.width == 1 {
			continue
		}

		full := NewByteBuffer(0)
		f.write(full)
		b := NewByteBufferSlice(full.Bytes()[:f.width-1])

		_, err := f.read(b, true)
		if errors.Cause(err) != ErrTruncatedRead {
			t.Errorf("%v: expected truncated read, got %v", f.name, err)
		}

		if !IsUnderrun(err) {
			t.Errorf("%v: IsUnderrun(%v) is false", f.name, err)
		}

		if b.Pos() != 0 {
			t.Errorf("%v: failed read moved the position to %v", f.name, b.Pos())
		}
	}
}

func TestFloatBits(t *testing.T) {
	cases := []float32{
		0,
		float32(math.Copysign(0, -1)),
		math.MaxFloat32,
		math.SmallestNonzeroFloat32,
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		math.Float32frombits(0x7fc00001),
	}

	b := NewByteBuffer(0)
	for _, c := range cases {
		b.WriteFloat32(c)
	}

	for _, c := range cases {
		v, err := b.ReadFloat32(true)
		if err != nil {
			t.Fatal(err)
		}

		if math.Float32bits(v) != math.Float32bits(c) {
			t.Errorf("expected bits %x, got %x", math.Float32bits(c), math.Float32bits(v))
		}
	}
}

func TestReadBoolValues(t *testing.T) {
	b := NewByteBufferSlice([]byte{0, 1, 2})

	for _, e := range []bool{false, true, false} {
		v, err := b.ReadBool(true)
		if err != nil {
			t.Fatal(err)
		}

		if v != e {
			t.Errorf("expected %v, got %v", e, v)
		}
	}
}

func TestReadStringErrors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		err  error
	}{
		{"negative length", []byte{0xff, 0xff, 0xff, 0xff, 'a'}, ErrInvalidEncoding},
		{"short body", []byte{5, 0, 0, 0, 'a', 'b'}, ErrTruncatedRead},
		{"short prefix", []byte{1, 0}, ErrTruncatedRead},
		{"invalid utf-8", []byte{2, 0, 0, 0, 0xc3, 0x28}, ErrInvalidEncoding},
		{"empty", nil, ErrUnderrun},
	}

	for _, c := range cases {
		b := NewByteBufferSlice(c.data)

		_, err := b.ReadString(true)
		if errors.Cause(err) != c.err {
			t.Errorf("%v: expected %v, got %v", c.name, c.err, err)
		}

		if b.Pos() != 0 {
			t.Errorf("%v: failed read moved the position to %v", c.name, b.Pos())
		}
	}
}

func TestReadEmptyString(t *testing.T) {
	b := NewByteBuffer(0)
	b.WriteString("")
	b.WriteString("x")

	if s := b.MustReadString(true); s != "" {
		t.Errorf("expected empty string, got %q", s)
	}

	if s := b.MustReadString(true); s != "x" {
		t.Errorf("expected x, got %q", s)
	}
}

func TestReadBytesBounds(t *testing.T) {
	b := NewByteBufferSlice([]byte{1, 2})

	if _, err := b.ReadBytes(-1, true); errors.Cause(err) != ErrRangeOutOfBounds {
		t.Errorf("expected out of range for a negative count, got %v", err)
	}

	v, err := b.ReadBytes(0, true)
	if err != nil || len(v) != 0 || b.Pos() != 0 {
		t.Errorf("expected an empty read, got %v, %v at %v", v, err, b.Pos())
	}

	if _, err := b.ReadBytes(3, true); errors.Cause(err) != ErrTruncatedRead {
		t.Errorf("expected truncated read, got %v", err)
	}

	b.MustSetPos(2)
	if _, err := b.ReadBytes(0, true); errors.Cause(err) != ErrUnderrun {
		t.Errorf("expected underrun for an empty read at the end, got %v", err)
	}
}

func TestReadAfterWrite(t *testing.T) {
	b := NewByteBuffer(0)
	b.WriteInt32(1)

	if v := b.MustReadInt32(true); v != 1 {
		t.Fatalf("expected 1, got %v", v)
	}

	if _, err := b.ReadInt32(true); errors.Cause(err) != ErrUnderrun {
		t.Fatalf("expected underrun, got %v", err)
	}

	b.WriteInt32(2)
	if v := b.MustReadInt32(true); v != 2 {
		t.Errorf("read did not observe the latest write, got %v", v)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected MustReadInt64 to panic on an empty buffer")
		}

		if err, ok := r.(error); !ok || errors.Cause(err) != ErrUnderrun {
			t.Errorf("expected an underrun panic, got %v", r)
		}
	}()

	NewByteBuffer(0).MustReadInt64(true)
}
