package xdrwire

import "testing"

func TestCursorTruncatedInput(t *testing.T) {
	c := NewCursor([]byte{0, 0})
	if _, err := c.ReadUint32(); err == nil {
		t.Fatal("expected TruncatedInput error, got nil")
	} else if de, ok := err.(*DecodeError); !ok || de.Kind != TruncatedInput {
		t.Errorf("expected TruncatedInput, got %v", err)
	}
}

func TestCursorInvalidBool(t *testing.T) {
	w := NewWriter()
	w.WriteUint32(2)
	c := NewCursor(w.Bytes())
	if _, err := c.ReadBool(); err == nil {
		t.Fatal("expected InvalidBool error, got nil")
	} else if de, ok := err.(*DecodeError); !ok || de.Kind != InvalidBool {
		t.Errorf("expected InvalidBool, got %v", err)
	}
}

func TestCursorOversizedArray(t *testing.T) {
	w := NewWriter()
	w.WriteOpaqueVar([]byte{1, 2, 3, 4, 5})
	c := NewCursor(w.Bytes())
	if _, err := c.ReadOpaqueVar(3); err == nil {
		t.Fatal("expected OversizedArray error, got nil")
	} else if de, ok := err.(*DecodeError); !ok || de.Kind != OversizedArray || de.Limit != 3 || de.Observed != 5 {
		t.Errorf("expected OversizedArray(3, 5), got %v", err)
	}
}

func TestCursorTrailingPadNonZero(t *testing.T) {
	// 3 data bytes followed by a non-zero pad byte instead of the
	// required zero.
	c := NewCursor([]byte{1, 2, 3, 0xFF})
	if _, err := c.ReadOpaqueFixed(3); err == nil {
		t.Fatal("expected TrailingPadNonZero error, got nil")
	} else if de, ok := err.(*DecodeError); !ok || de.Kind != TrailingPadNonZero {
		t.Errorf("expected TrailingPadNonZero, got %v", err)
	}
}

func TestCursorFloat64RoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteFloat64(3.25)
	c := NewCursor(w.Bytes())
	v, err := c.ReadFloat64()
	if err != nil {
		t.Fatalf("ReadFloat64: %v", err)
	}
	if v != 3.25 {
		t.Errorf("expected 3.25, got %v", v)
	}
}

func TestCursorInt64RoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteInt64(-12345)
	c := NewCursor(w.Bytes())
	v, err := c.ReadInt64()
	if err != nil {
		t.Fatalf("ReadInt64: %v", err)
	}
	if v != -12345 {
		t.Errorf("expected -12345, got %d", v)
	}
}
