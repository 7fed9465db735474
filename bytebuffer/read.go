package bytebuffer

import (
	"math"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// every read takes an advance flag, when it is false the value is returned
// without moving the read position. A read that fails never moves it

// view returns the n bytes at the read position, without copying
func (b *ByteBuffer) view(op string, n int) ([]byte, error) {
	r := b.Remaining()
	if r == 0 {
		return nil, errors.Wrapf(ErrUnderrun, "%s at %d", op, b.pos)
	}

	if r < n {
		return nil, errors.Wrapf(ErrTruncatedRead, "%s at %d needs %d bytes, %d remaining", op, b.pos, n, r)
	}

	return b.buffer[b.pos : b.pos+n], nil
}

func (b *ByteBuffer) consume(n int, advance bool) {
	if advance {
		b.pos += n
	}
}

// ReadUint8 reads a single byte
func (b *ByteBuffer) ReadUint8(advance bool) (uint8, error) {
	v, err := b.view("uint8", ByteLength)
	if err != nil {
		return 0, err
	}

	b.consume(ByteLength, advance)
	return v[0], nil
}

// ReadBytes reads n raw bytes, the returned slice is a copy
func (b *ByteBuffer) ReadBytes(n int, advance bool) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrRangeOutOfBounds, "bytes at %d, negative count %d", b.pos, n)
	}

	if b.Remaining() == 0 {
		return nil, errors.Wrapf(ErrUnderrun, "bytes at %d", b.pos)
	}

	if n == 0 {
		return []byte{}, nil
	}

	v, err := b.view("bytes", n)
	if err != nil {
		return nil, err
	}

	b.consume(n, advance)
	return append([]byte(nil), v...), nil
}

// ReadInt16 reads an int16
func (b *ByteBuffer) ReadInt16(advance bool) (int16, error) {
	v, err := b.view("int16", Int16Length)
	if err != nil {
		return 0, err
	}

	b.consume(Int16Length, advance)
	return int16(byteOrder.Uint16(v)), nil
}

// ReadInt32 reads an int32
func (b *ByteBuffer) ReadInt32(advance bool) (int32, error) {
	v, err := b.view("int32", Int32Length)
	if err != nil {
		return 0, err
	}

	b.consume(Int32Length, advance)
	return int32(byteOrder.Uint32(v)), nil
}

// ReadInt64 reads an int64
func (b *ByteBuffer) ReadInt64(advance bool) (int64, error) {
	v, err := b.view("int64", Int64Length)
	if err != nil {
		return 0, err
	}

	b.consume(Int64Length, advance)
	return int64(byteOrder.Uint64(v)), nil
}

// ReadBool reads a single byte, only 1 is true
func (b *ByteBuffer) ReadBool(advance bool) (bool, error) {
	v, err := b.view("bool", BoolLength)
	if err != nil {
		return false, err
	}

	b.consume(BoolLength, advance)
	return v[0] == 1, nil
}

// ReadFloat32 reads a float32
func (b *ByteBuffer) ReadFloat32(advance bool) (float32, error) {
	v, err := b.view("float32", Float32Length)
	if err != nil {
		return 0, err
	}

	b.consume(Float32Length, advance)
	return math.Float32frombits(byteOrder.Uint32(v)), nil
}

// ReadString reads an int32 byte length and that many bytes of utf-8
//
// with advance set to false neither the length nor the body is consumed
func (b *ByteBuffer) ReadString(advance bool) (string, error) {
	p, err := b.view("string length", StringPrefixLength)
	if err != nil {
		return "", err
	}

	l := int(int32(byteOrder.Uint32(p)))
	if l < 0 {
		return "", errors.Wrapf(ErrInvalidEncoding, "string at %d has negative length %d", b.pos, l)
	}

	r := b.Remaining() - StringPrefixLength
	if r < l {
		return "", errors.Wrapf(ErrTruncatedRead, "string at %d needs %d bytes, %d remaining", b.pos, l, r)
	}

	start := b.pos + StringPrefixLength
	body := b.buffer[start : start+l]
	if !utf8.Valid(body) {
		return "", errors.Wrapf(ErrInvalidEncoding, "string at %d is not valid utf-8", b.pos)
	}

	b.consume(StringPrefixLength+l, advance)
	return string(body), nil
}

// ReadVector2 reads X and Y
func (b *ByteBuffer) ReadVector2(advance bool) (Vector2, error) {
	v, err := b.view("vector2", Vector2Length)
	if err != nil {
		return Vector2{}, err
	}

	b.consume(Vector2Length, advance)
	return Vector2{X: floatAt(v, 0), Y: floatAt(v, 1)}, nil
}

// ReadVector3 reads X, Y and Z
func (b *ByteBuffer) ReadVector3(advance bool) (Vector3, error) {
	v, err := b.view("vector3", Vector3Length)
	if err != nil {
		return Vector3{}, err
	}

	b.consume(Vector3Length, advance)
	return Vector3{X: floatAt(v, 0), Y: floatAt(v, 1), Z: floatAt(v, 2)}, nil
}

// ReadQuaternion reads X, Y, Z and W
func (b *ByteBuffer) ReadQuaternion(advance bool) (Quaternion, error) {
	v, err := b.view("quaternion", QuaternionLength)
	if err != nil {
		return Quaternion{}, err
	}

	b.consume(QuaternionLength, advance)
	return Quaternion{X: floatAt(v, 0), Y: floatAt(v, 1), Z: floatAt(v, 2), W: floatAt(v, 3)}, nil
}

// ReadColor reads R, G, B and A
func (b *ByteBuffer) ReadColor(advance bool) (Color, error) {
	v, err := b.view("color", ColorLength)
	if err != nil {
		return Color{}, err
	}

	b.consume(ColorLength, advance)
	return Color{R: floatAt(v, 0), G: floatAt(v, 1), B: floatAt(v, 2), A: floatAt(v, 3)}, nil
}

func floatAt(data []byte, i int) float32 {
	return math.Float32frombits(byteOrder.Uint32(data[i*Float32Length:]))
}
