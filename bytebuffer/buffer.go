// Package bytebuffer implements a growable little endian byte buffer with a
// read cursor, used to encode and decode network messages field by field
//
// bytes.Buffer almost works, but reading from it discards the consumed bytes
// and there is no way to look at a value without consuming it, or to step
// back and replay part of a message. Here the write side always appends to the
// end of the storage, while the read side walks a cursor over the same
// storage, so a message can be built, inspected, trimmed and re-read
//
// all multi-byte values use little endian byte order, strings are written as an
// int32 byte length followed by the utf-8 bytes
package bytebuffer

import "io"

// Buffer defines an abstraction for an object that appends binary values at
// its end and reads them back from a cursor
type Buffer interface {
	io.Writer
	io.ByteWriter
	io.Closer

	Pos() int
	SetPos(int) error
	Skip(int) error
	Len() int
	Remaining() int
	Bytes() []byte
	RemainingBytes() []byte
	DeleteRange(start, length int) error
	Clear()

	WriteUint8(uint8)
	WriteBytes([]byte)
	WriteInt16(int16)
	WriteInt32(int32)
	WriteInt64(int64)
	WriteBool(bool)
	WriteFloat32(float32)
	WriteString(string)
	WriteVector2(Vector2)
	WriteVector3(Vector3)
	WriteQuaternion(Quaternion)
	WriteColor(Color)

	ReadUint8(advance bool) (uint8, error)
	ReadBytes(n int, advance bool) ([]byte, error)
	ReadInt16(advance bool) (int16, error)
	ReadInt32(advance bool) (int32, error)
	ReadInt64(advance bool) (int64, error)
	ReadBool(advance bool) (bool, error)
	ReadFloat32(advance bool) (float32, error)
	ReadString(advance bool) (string, error)
	ReadVector2(advance bool) (Vector2, error)
	ReadVector3(advance bool) (Vector3, error)
	ReadQuaternion(advance bool) (Quaternion, error)
	ReadColor(advance bool) (Color, error)
}

// Vector2 is a pair of floats, written as 8 bytes
type Vector2 struct {
	X, Y float32
}

// Vector3 is a triple of floats, written as 12 bytes
type Vector3 struct {
	X, Y, Z float32
}

// Quaternion is a rotation, written as 16 bytes in X, Y, Z, W order
type Quaternion struct {
	X, Y, Z, W float32
}

// Color is an RGBA color, it shares the 16 byte layout of Quaternion
type Color struct {
	R, G, B, A float32
}
