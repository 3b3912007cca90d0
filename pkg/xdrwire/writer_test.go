package xdrwire

import "testing"

func TestWriterUint32Padding(t *testing.T) {
	w := NewWriter()
	w.WriteUint32(1)
	if got := w.Bytes(); len(got) != 4 {
		t.Fatalf("expected 4 bytes, got %d", len(got))
	}
}

func TestWriterOpaqueFixedPadsToFour(t *testing.T) {
	w := NewWriter()
	w.WriteOpaqueFixed([]byte{1, 2, 3})
	got := w.Bytes()
	if len(got) != 4 {
		t.Fatalf("expected padded length 4, got %d", len(got))
	}
	if got[3] != 0 {
		t.Errorf("expected zero pad byte, got %d", got[3])
	}
}

func TestWriterOpaqueVarIncludesLengthPrefix(t *testing.T) {
	w := NewWriter()
	w.WriteOpaqueVar([]byte{9, 9})
	got := w.Bytes()
	if len(got) != 8 { // 4-byte length prefix + 2 data bytes + 2 pad bytes
		t.Fatalf("expected 8 bytes, got %d", len(got))
	}
	if got[3] != 2 {
		t.Errorf("expected length prefix 2, got %d", got[3])
	}
}

func TestWriterStringRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteString("hi")
	c := NewCursor(w.Bytes())
	s, err := c.ReadString(0)
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if s != "hi" {
		t.Errorf("expected %q, got %q", "hi", s)
	}
	if c.Remaining() != 0 {
		t.Errorf("expected cursor fully consumed, %d bytes left", c.Remaining())
	}
}

func TestWriterBoolRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteBool(true)
	w.WriteBool(false)
	c := NewCursor(w.Bytes())
	tv, err := c.ReadBool()
	if err != nil || !tv {
		t.Fatalf("expected true, got %v, %v", tv, err)
	}
	fv, err := c.ReadBool()
	if err != nil || fv {
		t.Fatalf("expected false, got %v, %v", fv, err)
	}
}

func TestPadLen(t *testing.T) {
	cases := map[int]int{0: 0, 1: 3, 2: 2, 3: 1, 4: 0, 5: 3}
	for n, want := range cases {
		if got := padLen(n); got != want {
			t.Errorf("padLen(%d) = %d, want %d", n, got, want)
		}
	}
}
