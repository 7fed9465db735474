package bytebuffer

// Must variants of the reads, for callers that already checked Remaining and
// treat a failure as a programming error

// MustReadUint8 panics if ReadUint8 fails
func (b *ByteBuffer) MustReadUint8(advance bool) uint8 {
	v, err := b.ReadUint8(advance)
	if err != nil {
		panic(err)
	}
	return v
}

// MustReadInt16 panics if ReadInt16 fails
func (b *ByteBuffer) MustReadInt16(advance bool) int16 {
	v, err := b.ReadInt16(advance)
	if err != nil {
		panic(err)
	}
	return v
}

// MustReadInt32 panics if ReadInt32 fails
func (b *ByteBuffer) MustReadInt32(advance bool) int32 {
	v, err := b.ReadInt32(advance)
	if err != nil {
		panic(err)
	}
	return v
}

// MustReadInt64 panics if ReadInt64 fails
func (b *ByteBuffer) MustReadInt64(advance bool) int64 {
	v, err := b.ReadInt64(advance)
	if err != nil {
		panic(err)
	}
	return v
}

// MustReadBool panics if ReadBool fails
func (b *ByteBuffer) MustReadBool(advance bool) bool {
	v, err := b.ReadBool(advance)
	if err != nil {
		panic(err)
	}
	return v
}

// MustReadFloat32 panics if ReadFloat32 fails
func (b *ByteBuffer) MustReadFloat32(advance bool) float32 {
	v, err := b.ReadFloat32(advance)
	if err != nil {
		panic(err)
	}
	return v
}

// MustReadString panics if ReadString fails
func (b *ByteBuffer) MustReadString(advance bool) string {
	v, err := b.ReadString(advance)
	if err != nil {
		panic(err)
	}
	return v
}

// MustReadVector2 panics if ReadVector2 fails
func (b *ByteBuffer) MustReadVector2(advance bool) Vector2 {
	v, err := b.ReadVector2(advance)
	if err != nil {
		panic(err)
	}
	return v
}

// MustReadVector3 panics if ReadVector3 fails
func (b *ByteBuffer) MustReadVector3(advance bool) Vector3 {
	v, err := b.ReadVector3(advance)
	if err != nil {
		panic(err)
	}
	return v
}

// MustReadQuaternion panics if ReadQuaternion fails
func (b *ByteBuffer) MustReadQuaternion(advance bool) Quaternion {
	v, err := b.ReadQuaternion(advance)
	if err != nil {
		panic(err)
	}
	return v
}

// MustReadColor panics if ReadColor fails
func (b *ByteBuffer) MustReadColor(advance bool) Color {
	v, err := b.ReadColor(advance)
	if err != nil {
		panic(err)
	}
	return v
}
