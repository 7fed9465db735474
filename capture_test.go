package netbuf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/netbuf/netbuf/bytebuffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureRoundTrip(t *testing.T) {
	dir, err := os.MkdirTemp("", "netbuf-capture")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	loc := filepath.Join(dir, "nested", "message.bin")

	b := bytebuffer.NewByteBuffer(0)
	b.WriteInt32(42)
	b.WriteString("hi")
	b.WriteVector3(bytebuffer.Vector3{X: 1, Y: 2, Z: 3})
	b.MustReadInt32(true)

	require.NoError(t, WriteCapture(loc, b))

	info, err := os.Stat(loc)
	require.NoError(t, err)
	assert.Equal(t, int64(b.Len()), info.Size())

	r, err := ReadCapture(loc)
	require.NoError(t, err)
	assert.Equal(t, b.Bytes(), r.Bytes())
	assert.Equal(t, 0, r.Pos())

	assert.Equal(t, int32(42), r.MustReadInt32(true))
	assert.Equal(t, "hi", r.MustReadString(true))
	assert.Equal(t, bytebuffer.Vector3{X: 1, Y: 2, Z: 3}, r.MustReadVector3(true))
	assert.Equal(t, 0, r.Remaining())
}

func TestCaptureOverwrite(t *testing.T) {
	dir, err := os.MkdirTemp("", "netbuf-capture")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	loc := filepath.Join(dir, "message.bin")

	long := bytebuffer.NewByteBufferSlice(make([]byte, 100))
	require.NoError(t, WriteCapture(loc, long))

	short := bytebuffer.NewByteBufferSlice([]byte{1, 2, 3})
	require.NoError(t, WriteCapture(loc, short))

	r, err := ReadCapture(loc)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, r.Bytes())
}

func TestCaptureEmpty(t *testing.T) {
	dir, err := os.MkdirTemp("", "netbuf-capture")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	loc := filepath.Join(dir, "empty.bin")
	require.NoError(t, WriteCapture(loc, bytebuffer.NewByteBuffer(0)))

	r, err := ReadCapture(loc)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
}

func TestReadCaptureMissing(t *testing.T) {
	_, err := ReadCapture(filepath.Join(os.TempDir(), "netbuf-missing-capture.bin"))
	assert.Error(t, err)
}

func TestCaptureLocation(t *testing.T) {
	loc, err := CaptureLocation("session")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(CurrentConfig().CaptureDir, "session"), loc)

	_, err = CaptureLocation("a" + string(os.PathSeparator) + "b")
	assert.Error(t, err)

	_, err = CaptureLocation("")
	assert.Error(t, err)
}
