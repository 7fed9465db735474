// Package bufdump decodes the contents of a bytebuffer against a list of
// field kinds, for looking at captured messages
//
// the reading is implemented here, the cli lives in cmd/netbufdump
//
// ```
// go get github.com/netbuf/netbuf/bufdump/cmd/netbufdump
// ```
package bufdump

import (
	"strconv"
	"strings"

	"github.com/netbuf/netbuf/bytebuffer"
	"github.com/pkg/errors"
)

// Kind is the type of a field in a layout
type Kind int

// values for Kind
const (
	Uint8Kind Kind = iota
	BytesKind
	Int16Kind
	Int32Kind
	Int64Kind
	BoolKind
	Float32Kind
	StringKind
	Vector2Kind
	Vector3Kind
	QuaternionKind
	ColorKind
)

var kindNames = map[string]Kind{
	"u8":    Uint8Kind,
	"bytes": BytesKind,
	"i16":   Int16Kind,
	"i32":   Int32Kind,
	"i64":   Int64Kind,
	"bool":  BoolKind,
	"f32":   Float32Kind,
	"str":   StringKind,
	"vec2":  Vector2Kind,
	"vec3":  Vector3Kind,
	"quat":  QuaternionKind,
	"color": ColorKind,
}

func (k Kind) String() string {
	for n, v := range kindNames {
		if v == k {
			return n
		}
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Field is a single entry of a layout, Size is only used by BytesKind
type Field struct {
	Kind Kind
	Size int
}

func (f Field) String() string {
	if f.Kind == BytesKind {
		return "bytes:" + strconv.Itoa(f.Size)
	}
	return f.Kind.String()
}

// ParseLayout parses a comma separated list of field kinds, like
// "i32,str,bytes:16,bool"
func ParseLayout(s string) ([]Field, error) {
	parts := strings.Split(s, ",")
	layout := make([]Field, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		name, size := p, ""
		if i := strings.IndexByte(p, ':'); i >= 0 {
			name, size = p[:i], p[i+1:]
		}

		k, ok := kindNames[name]
		if !ok {
			return nil, errors.Errorf("unknown field kind %q", p)
		}

		f := Field{Kind: k}
		if k == BytesKind {
			n, err := strconv.Atoi(size)
			if err != nil || n < 1 {
				return nil, errors.Errorf("bytes field %q needs a positive size, like bytes:16", p)
			}
			f.Size = n
		} else if size != "" {
			return nil, errors.Errorf("field %q does not take a size", p)
		}

		layout = append(layout, f)
	}

	return layout, nil
}

// Read decodes a single field at the read position of b
func Read(b bytebuffer.Buffer, f Field, advance bool) (interface{}, error) {
	switch f.Kind {
	case Uint8Kind:
		return b.ReadUint8(advance)
	case BytesKind:
		return b.ReadBytes(f.Size, advance)
	case Int16Kind:
		return b.ReadInt16(advance)
	case Int32Kind:
		return b.ReadInt32(advance)
	case Int64Kind:
		return b.ReadInt64(advance)
	case BoolKind:
		return b.ReadBool(advance)
	case Float32Kind:
		return b.ReadFloat32(advance)
	case StringKind:
		return b.ReadString(advance)
	case Vector2Kind:
		return b.ReadVector2(advance)
	case Vector3Kind:
		return b.ReadVector3(advance)
	case QuaternionKind:
		return b.ReadQuaternion(advance)
	case ColorKind:
		return b.ReadColor(advance)
	}

	return nil, errors.Errorf("unknown field kind %v", f.Kind)
}

// Value is a decoded field and the position it was read from
type Value struct {
	Offset int
	Field  Field
	Val    interface{}
}

// Dump reads the layout from b repeatedly until b is exhausted
//
// a buffer that ends exactly between two fields is not an error, one that
// ends inside a field returns the values read so far along with the error.
// A pass over the layout that reads no bytes stops the dump with an error
func Dump(b bytebuffer.Buffer, layout []Field) ([]Value, error) {
	if len(layout) == 0 {
		return nil, errors.New("empty layout")
	}

	var vals []Value
	start := b.Pos()
	for i := 0; b.Remaining() > 0; i++ {
		f := layout[i%len(layout)]
		off := b.Pos()

		if i > 0 && i%len(layout) == 0 {
			if off == start {
				return vals, errors.Errorf("layout %v does not consume any bytes", layout)
			}
			start = off
		}

		v, err := Read(b, f, true)
		if err != nil {
			return vals, errors.Wrapf(err, "field %d (%v)", i, f)
		}

		vals = append(vals, Value{off, f, v})
	}

	return vals, nil
}
