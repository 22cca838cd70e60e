// Package stream carries OSC packets over byte-stream transports. A
// stream has no datagram boundaries, so each packet is wrapped in SLIP
// framing (RFC 1055): an END byte closes every frame and END/ESC bytes
// inside the packet are escaped. The codec itself lives in the osc
// package; this package only frames, deframes, and moves bytes.
package stream

import (
	"bufio"
	"io"
)

const (
	frameEnd    = 0xC0
	frameEsc    = 0xDB
	frameEscEnd = 0xDC
	frameEscEsc = 0xDD
)

// Frame wraps a packet in SLIP framing: a leading END byte (flushing
// any line noise on the receiver side), the escaped payload, and a
// closing END byte.
func Frame(packet []byte) []byte {
	out := make([]byte, 0, len(packet)+8)
	out = append(out, frameEnd)

	for _, b := range packet {
		switch b {
		case frameEnd:
			out = append(out, frameEsc, frameEscEnd)
		case frameEsc:
			out = append(out, frameEsc, frameEscEsc)
		default:
			out = append(out, b)
		}
	}

	return append(out, frameEnd)
}

// readFrame pulls one complete frame's payload from r, unescaping as
// it goes. Empty frames (back-to-back END bytes) are skipped. It
// returns an error only when the underlying reader does.
func readFrame(r *bufio.Reader) ([]byte, error) {
	var out []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && len(out) > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}

		switch b {
		case frameEnd:
			if len(out) > 0 {
				return out, nil
			}
			// Empty frame, keep scanning.
		case frameEsc:
			esc, err := r.ReadByte()
			if err != nil {
				if err == io.EOF {
					return nil, io.ErrUnexpectedEOF
				}
				return nil, err
			}
			switch esc {
			case frameEscEnd:
				out = append(out, frameEnd)
			case frameEscEsc:
				out = append(out, frameEsc)
			default:
				// Tolerate a stray escape the way most SLIP stacks
				// do: pass the byte through.
				out = append(out, esc)
			}
		default:
			out = append(out, b)
		}
	}
}
