package osc

import (
	"bytes"
	"encoding/binary"
	"io"
)

////
// De/Encoding functions
////

// packetWriter writes wire fields into a fixed pre-sized buffer,
// advancing a single cursor. Writes that would run past the buffer are
// dropped but the cursor keeps advancing, so the caller can detect an
// undersized buffer from n alone instead of silently truncating.
// Padding bytes are never written: the buffer comes zeroed from make.
type packetWriter struct {
	buf []byte
	n   int
}

func (w *packetWriter) overflowed() bool {
	return w.n > len(w.buf)
}

// writeString writes str as a NUL-terminated string zero-padded to the
// next 4-byte boundary.
func (w *packetWriter) writeString(str string) {
	if w.n+len(str) <= len(w.buf) {
		copy(w.buf[w.n:], str)
	}
	n := len(str) + 1
	w.n += n + padBytesNeeded(n)
}

// writeBlob writes the big-endian length prefix followed by the data,
// zero-padded to the next 4-byte boundary.
func (w *packetWriter) writeBlob(data []byte) {
	w.writeUint32(uint32(len(data)))
	if w.n+len(data) <= len(w.buf) {
		copy(w.buf[w.n:], data)
	}
	w.n += len(data) + padBytesNeeded(len(data))
}

func (w *packetWriter) writeUint32(v uint32) {
	if w.n+bit32Size <= len(w.buf) {
		binary.BigEndian.PutUint32(w.buf[w.n:], v)
	}
	w.n += bit32Size
}

func (w *packetWriter) writeUint64(v uint64) {
	if w.n+bit64Size <= len(w.buf) {
		binary.BigEndian.PutUint64(w.buf[w.n:], v)
	}
	w.n += bit64Size
}

// parsePaddedString reads a padded string from the given slice and
// returns the string and the number of bytes the field occupies.
func parsePaddedString(data []byte) (string, int, error) {
	pos := bytes.IndexByte(data, 0)
	if pos == -1 {
		return "", 0, io.ErrUnexpectedEOF
	}
	return string(data[:pos]), pos + 1 + padBytesNeeded(pos+1), nil
}

// parseBlob reads an OSC blob from the given slice and returns a copy
// of the payload and the number of bytes the field occupies, padding
// included.
func parseBlob(data []byte) ([]byte, int, error) {
	if len(data) < bit32Size {
		return nil, 0, io.ErrUnexpectedEOF
	}
	blobLen := int(binary.BigEndian.Uint32(data[:bit32Size]))
	data = data[bit32Size:]

	if blobLen < 0 || blobLen > len(data) {
		return nil, 0, io.ErrUnexpectedEOF
	}

	buf := make([]byte, blobLen)
	copy(buf, data)
	return buf, bit32Size + blobLen + padBytesNeeded(blobLen), nil
}
