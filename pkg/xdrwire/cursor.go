package xdrwire

import (
	"encoding/binary"
	"math"
)

// Cursor reads an XDR-encoded byte buffer sequentially. Every generated
// DecodeXDR method takes one; it never constructs its own.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps data for reading. data is not copied; the caller must
// not mutate it while decoding is in progress.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Remaining reports how many bytes are left to read.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, errTruncated()
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err
}

func (c *Cursor) ReadUint64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (c *Cursor) ReadInt64() (int64, error) {
	v, err := c.ReadUint64()
	return int64(v), err
}

// ReadBool enforces §6/§7's InvalidBool: only the canonical 0/1 encoding
// is accepted, matching the decode-error taxonomy the emitter relies on.
func (c *Cursor) ReadBool() (bool, error) {
	v, err := c.ReadUint32()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errInvalidBool(int64(v))
	}
}

func (c *Cursor) ReadFloat32() (float32, error) {
	v, err := c.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (c *Cursor) ReadFloat64() (float64, error) {
	v, err := c.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// readPad consumes the zero-padding following an n-byte opaque payload.
// A non-zero pad byte is reported as TrailingPadNonZero (§8's resolved
// Open Question: this decoder rejects rather than silently accepting).
func (c *Cursor) readPad(n int) error {
	pad := padLen(n)
	if pad == 0 {
		return nil
	}
	b, err := c.take(pad)
	if err != nil {
		return err
	}
	for _, p := range b {
		if p != 0 {
			return errTrailingPad()
		}
	}
	return nil
}

// ReadOpaqueFixed reads exactly n bytes plus their padding, with no
// length prefix.
func (c *Cursor) ReadOpaqueFixed(n int) ([]byte, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	out := append([]byte(nil), b...)
	if err := c.readPad(n); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadOpaqueVar reads a uint32 length prefix followed by that many bytes
// and their padding. max <= 0 means no declared cap. A length exceeding
// max fails with OversizedArray.
func (c *Cursor) ReadOpaqueVar(max int64) ([]byte, error) {
	n, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	if max > 0 && int64(n) > max {
		return nil, errOversized(max, int64(n))
	}
	return c.ReadOpaqueFixed(int(n))
}

// ReadString reads the variable-length opaque framing into a string.
func (c *Cursor) ReadString(max int64) (string, error) {
	b, err := c.ReadOpaqueVar(max)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadArrayLen reads a variable-array element count, enforcing max the
// same way ReadOpaqueVar does for byte arrays.
func (c *Cursor) ReadArrayLen(max int64) (int, error) {
	n, err := c.ReadUint32()
	if err != nil {
		return 0, err
	}
	if max > 0 && int64(n) > max {
		return 0, errOversized(max, int64(n))
	}
	return int(n), nil
}
