package bytebuffer

// EncodeInt32 returns the 4 little endian bytes of val
func EncodeInt32(val int32) []byte {
	b := make([]byte, Int32Length)
	byteOrder.PutUint32(b, uint32(val))
	return b
}

// EncodeString returns val the way WriteString writes it, an int32 byte
// length followed by the bytes
func EncodeString(val string) []byte {
	return Concat(EncodeInt32(int32(len(val))), []byte(val))
}

// Concat returns a new slice holding a followed by b
func Concat(a, b []byte) []byte {
	c := make([]byte, len(a)+len(b))
	copy(c, a)
	copy(c[len(a):], b)
	return c
}
