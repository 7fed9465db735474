package netbuf

import (
	"os"
	"path"
	"strings"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/netbuf/netbuf/bytebuffer"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CaptureLocation returns the path of the capture file called name inside the
// configured capture directory
func CaptureLocation(name string) (string, error) {
	if name == "" || strings.ContainsRune(name, os.PathSeparator) {
		return "", errors.Errorf("invalid capture name %q", name)
	}

	return path.Join(config.CaptureDir, name), nil
}

// WriteCapture stores everything written to b, regardless of its read
// position, in the file at loc, replacing it if it exists
func WriteCapture(loc string, b bytebuffer.Buffer) (err error) {
	data := b.Bytes()

	if err = os.MkdirAll(path.Dir(loc), 0700); err != nil {
		return errors.Wrap(err, "creating capture directory")
	}

	f, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "opening capture file")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "closing capture file")
		}
	}()

	if len(data) == 0 {
		return nil
	}

	if err = f.Truncate(int64(len(data))); err != nil {
		return errors.Wrap(err, "sizing capture file")
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return errors.Wrap(err, "mapping capture file")
	}

	copy(m, data)

	if err = m.Flush(); err != nil {
		_ = m.Unmap()
		return errors.Wrap(err, "flushing capture file")
	}

	if err = m.Unmap(); err != nil {
		return errors.Wrap(err, "unmapping capture file")
	}

	if logging {
		logger.Named("capture").Info("wrote capture",
			zap.String("location", loc),
			zap.Int("length", len(data)),
		)
	}

	return nil
}

// ReadCapture loads the capture file at loc into a new buffer, positioned at
// its start
func ReadCapture(loc string) (*bytebuffer.ByteBuffer, error) {
	f, err := os.Open(loc)
	if err != nil {
		return nil, errors.Wrap(err, "opening capture file")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "reading capture file size")
	}

	// an empty file cannot be mapped
	if info.Size() == 0 {
		return bytebuffer.NewByteBuffer(0), nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrap(err, "mapping capture file")
	}
	defer m.Unmap()

	b := bytebuffer.NewByteBufferSlice(m)

	if logging {
		logger.Named("capture").Info("read capture",
			zap.String("location", loc),
			zap.Int("length", b.Len()),
		)
	}

	return b, nil
}
