package osc

import (
	"bytes"
	"testing"
)

func TestParsePaddedString(t *testing.T) {
	for _, tt := range []struct {
		buf     []byte
		want    string
		wantN   int
		wantErr bool
	}{
		{[]byte{'t', 'e', 's', 't', 's', 't', 'r', 'i', 'n', 'g', 0, 0}, "teststring", 12, false},
		{[]byte{'t', 'e', 's', 't', 'e', 'r', 's', 0}, "testers", 8, false},
		{[]byte{'t', 'e', 's', 't', 's', 0, 0, 0}, "tests", 8, false},
		{[]byte{'t', 'e', 's', 0, 0, 0, 0, 0}, "tes", 4, false},
		{[]byte{'t', 'e', 's', 't'}, "", 0, true}, // no terminator
	} {
		got, n, err := parsePaddedString(tt.buf)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: parsePaddedString() error = %v, wantErr %v", tt.buf, err, tt.wantErr)
			continue
		}
		if n != tt.wantN {
			t.Errorf("%q: field length = %d, want %d", tt.buf, n, tt.wantN)
		}
		if got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.buf, got, tt.want)
		}
	}
}

func TestParseBlob(t *testing.T) {
	blob, n, err := parseBlob([]byte{0, 0, 0, 5, 1, 2, 3, 4, 5, 0, 0, 0})
	if err != nil {
		t.Fatalf("parseBlob() error = %v", err)
	}
	if n != 12 {
		t.Errorf("field length = %d, want 12", n)
	}
	if !bytes.Equal(blob, []byte{1, 2, 3, 4, 5}) {
		t.Errorf("payload = %v, want [1 2 3 4 5]", blob)
	}

	// Length prefix running past the buffer.
	if _, _, err := parseBlob([]byte{0, 0, 0, 9, 1, 2, 3, 4}); err == nil {
		t.Error("parseBlob() accepted a length running past the buffer")
	}
}

func TestParseBlobCopies(t *testing.T) {
	data := []byte{0, 0, 0, 2, 7, 8, 0, 0}
	blob, _, err := parseBlob(data)
	if err != nil {
		t.Fatalf("parseBlob() error = %v", err)
	}
	data[4] = 0
	if blob[0] != 7 {
		t.Error("parseBlob() aliases the input buffer")
	}
}

func TestPacketWriterOverflow(t *testing.T) {
	w := packetWriter{buf: make([]byte, 8)}
	w.writeString("/a")
	if w.overflowed() {
		t.Fatal("writer overflowed inside capacity")
	}
	w.writeUint32(1)
	w.writeUint32(2)
	if !w.overflowed() {
		t.Fatal("writer did not report cursor past the buffer")
	}
	if w.n != 12 {
		t.Errorf("cursor = %d, want 12", w.n)
	}
}
