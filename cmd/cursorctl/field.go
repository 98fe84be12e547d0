package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/joshuapare/bytecursor/pkg/cursor"
)

// Field types understood by peek and poke.
const (
	typeU8    = "u8"
	typeU16   = "u16"
	typeU24   = "u24"
	typeU32   = "u32"
	typeU64   = "u64"
	typeBytes = "bytes"
	typeCStr  = "cstr"
	typeUTF8  = "utf8"
)

// fieldValue is the decoded form of one field.
// Value is a uint64 for integer types, a hex string for bytes and the decoded
// text for utf8 and cstr.
type fieldValue struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Next   int    `json:"next"`
	Value  any    `json:"value"`
}

func (f fieldValue) String() string {
	switch v := f.Value.(type) {
	case uint64:
		return fmt.Sprintf("%d (0x%X)", v, v)
	case string:
		if f.Type == typeBytes {
			return v
		}
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}

// lookupEncoding resolves a WHATWG encoding label such as "windows-1252" or
// "latin1". Empty means UTF-8.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}

// readField decodes one field of the given type at the cursor and advances
// past it. n is the byte count for bytes and utf8 fields.
func readField(c *cursor.Cursor, typ string, le bool, n int, enc encoding.Encoding) (fieldValue, error) {
	typ = strings.ToLower(typ)
	f := fieldValue{Type: typ, Offset: c.Offset()}
	var err error
	switch typ {
	case typeU8:
		var v uint8
		v, err = c.ReadUint8()
		f.Value = uint64(v)
	case typeU16:
		var v uint16
		v, err = c.ReadUint16(le)
		f.Value = uint64(v)
	case typeU24:
		var v uint32
		v, err = c.ReadUint24(le)
		f.Value = uint64(v)
	case typeU32:
		var v uint32
		v, err = c.ReadUint32(le)
		f.Value = uint64(v)
	case typeU64:
		f.Value, err = c.ReadUint64(le)
	case typeBytes:
		var b []byte
		b, err = c.Read(n)
		f.Value = hex.EncodeToString(b)
	case typeUTF8:
		f.Value, err = c.ReadUTF8(n)
	case typeCStr:
		f.Value, err = c.ReadNulledString(enc)
	default:
		return f, fmt.Errorf("unknown field type %q", typ)
	}
	if err != nil {
		return f, err
	}
	f.Next = c.Offset()
	return f, nil
}

// writeField encodes value as the given type at the cursor and advances past
// it. Integers accept any strconv base prefix (0x, 0o, 0b).
func writeField(c *cursor.Cursor, typ string, le bool, value string, enc encoding.Encoding) error {
	parse := func(bits int) (uint64, error) {
		v, err := strconv.ParseUint(value, 0, bits)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", typ, value, err)
		}
		return v, nil
	}

	switch strings.ToLower(typ) {
	case typeU8:
		v, err := parse(8)
		if err != nil {
			return err
		}
		return c.WriteUint8(uint8(v))
	case typeU16:
		v, err := parse(16)
		if err != nil {
			return err
		}
		return c.WriteUint16(uint16(v), le)
	case typeU24:
		// Parsed as 32 bits so the cursor's own 24-bit range check applies.
		v, err := parse(32)
		if err != nil {
			return err
		}
		return c.WriteUint24(uint32(v), le)
	case typeU32:
		v, err := parse(32)
		if err != nil {
			return err
		}
		return c.WriteUint32(uint32(v), le)
	case typeU64:
		v, err := parse(64)
		if err != nil {
			return err
		}
		return c.WriteUint64(v, le)
	case typeBytes:
		b, err := hex.DecodeString(value)
		if err != nil {
			return fmt.Errorf("invalid hex %q: %w", value, err)
		}
		return c.Write(b)
	case typeUTF8:
		_, err := c.WriteUTF8(value)
		return err
	case typeCStr:
		return c.WriteNulledString(value, enc)
	default:
		return fmt.Errorf("unknown field type %q", typ)
	}
}
