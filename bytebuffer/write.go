package bytebuffer

import (
	"encoding/binary"
	"math"
)

// little endian on every host, values never go through the native layout
var byteOrder = binary.LittleEndian

// widths of the fixed size values
const (
	ByteLength       = 1
	BoolLength       = 1
	Int16Length      = 2
	Int32Length      = 4
	Int64Length      = 8
	Float32Length    = 4
	Vector2Length    = 2 * Float32Length
	Vector3Length    = 3 * Float32Length
	QuaternionLength = 4 * Float32Length
	ColorLength      = 4 * Float32Length

	// StringPrefixLength is the size of the byte count preceding a string
	StringPrefixLength = Int32Length
)

// Write appends data to the buffer, it never fails and exists so a ByteBuffer
// can be used as an io.Writer
func (b *ByteBuffer) Write(data []byte) (int, error) {
	b.WriteBytes(data)
	return len(data), nil
}

// WriteByte appends a single byte, the error is always nil
func (b *ByteBuffer) WriteByte(val byte) error {
	b.WriteUint8(val)
	return nil
}

// WriteUint8 appends a single byte
func (b *ByteBuffer) WriteUint8(val uint8) {
	b.grow(ByteLength)[0] = val
}

// WriteBytes appends raw bytes without any length prefix
func (b *ByteBuffer) WriteBytes(val []byte) {
	copy(b.grow(len(val)), val)
}

// WriteInt16 appends an int16
func (b *ByteBuffer) WriteInt16(val int16) {
	byteOrder.PutUint16(b.grow(Int16Length), uint16(val))
}

// WriteInt32 appends an int32
func (b *ByteBuffer) WriteInt32(val int32) {
	byteOrder.PutUint32(b.grow(Int32Length), uint32(val))
}

// WriteInt64 appends an int64
func (b *ByteBuffer) WriteInt64(val int64) {
	byteOrder.PutUint64(b.grow(Int64Length), uint64(val))
}

// WriteBool appends a bool as a single 0 or 1 byte
func (b *ByteBuffer) WriteBool(val bool) {
	var v uint8
	if val {
		v = 1
	}
	b.WriteUint8(v)
}

// WriteFloat32 appends a float32
func (b *ByteBuffer) WriteFloat32(val float32) {
	byteOrder.PutUint32(b.grow(Float32Length), math.Float32bits(val))
}

// WriteString appends the byte length of val as an int32, then its bytes
func (b *ByteBuffer) WriteString(val string) {
	b.WriteInt32(int32(len(val)))
	copy(b.grow(len(val)), val)
}

// WriteVector2 appends X and Y
func (b *ByteBuffer) WriteVector2(val Vector2) {
	putFloats(b.grow(Vector2Length), val.X, val.Y)
}

// WriteVector3 appends X, Y and Z
func (b *ByteBuffer) WriteVector3(val Vector3) {
	putFloats(b.grow(Vector3Length), val.X, val.Y, val.Z)
}

// WriteQuaternion appends X, Y, Z and W
func (b *ByteBuffer) WriteQuaternion(val Quaternion) {
	putFloats(b.grow(QuaternionLength), val.X, val.Y, val.Z, val.W)
}

// WriteColor appends R, G, B and A
func (b *ByteBuffer) WriteColor(val Color) {
	putFloats(b.grow(ColorLength), val.R, val.G, val.B, val.A)
}

func putFloats(dst []byte, vals ...float32) {
	for i, v := range vals {
		byteOrder.PutUint32(dst[i*Float32Length:], math.Float32bits(v))
	}
}
