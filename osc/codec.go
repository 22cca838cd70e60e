package osc

import (
	"encoding/binary"
	"math"
	"strings"
	"unicode/utf8"
)

// Options configure the encoders. The zero value encodes non-integer
// Numbers as float32 and allocates no slack.
type Options struct {
	// Oversize is extra capacity added to Fast.Encode's size estimate.
	// The sizing pass assumes one byte per character; multi-byte text
	// needs either enough Oversize to cover the difference or the
	// EncodeChecked variant.
	Oversize int

	// Doubles encodes non-integer Number arguments as float64 instead
	// of float32.
	Doubles bool
}

// Codec encodes and decodes OSC messages. Fast and Reference implement
// it; both produce identical bytes and identical parses for all valid
// input, which the test suite asserts across both directions.
type Codec interface {
	Encode(m *Message) ([]byte, error)
	Decode(data []byte) (*Message, error)
}

// Fast is the offset-arithmetic codec: it sizes the packet up front,
// allocates once, and writes wire fields directly into the buffer.
// This is the path Message.MarshalBinary and the package-level
// Encode/Decode use.
type Fast struct {
	Options
}

// Verify that both codecs implement Codec.
var (
	_ Codec = Fast{}
	_ Codec = Reference{}
)

// Encode encodes the message into a single pre-sized buffer. The
// sizing pass counts one byte per character; feeding it multi-byte
// text without Options.Oversize fails with a capacity error rather
// than producing a truncated packet. EncodeChecked sizes exactly and
// never needs Oversize.
func (c Fast) Encode(m *Message) ([]byte, error) {
	size, err := c.measure(m, false)
	if err != nil {
		return nil, err
	}
	return c.write(m, make([]byte, size+c.Oversize))
}

// EncodeChecked encodes like Encode but sizes every string by its true
// byte length before allocating. It costs an extra pass over the text
// and is roughly half the speed of Encode; in exchange it handles
// multi-byte text without any Oversize margin.
func (c Fast) EncodeChecked(m *Message) ([]byte, error) {
	size, err := c.measure(m, true)
	if err != nil {
		return nil, err
	}
	return c.write(m, make([]byte, size))
}

// measure validates the message and returns the packet size in bytes.
// With exact set, strings are sized by byte length; otherwise by rune
// count, which undercounts multi-byte text.
func (c Fast) measure(m *Message, exact bool) (int, error) {
	strLen := utf8.RuneCountInString
	if exact {
		strLen = func(s string) int { return len(s) }
	}

	if !strings.HasPrefix(m.Address, "/") {
		return 0, encodeError("address does not start with '/'", m.Address, m.Arguments)
	}
	if strings.IndexByte(m.Address, 0) != -1 {
		return 0, encodeError("address contains a NUL byte", m.Address, m.Arguments)
	}

	size := AlignUp4(strLen(m.Address) + 1)
	size += AlignUp4(len(m.Arguments) + 2) // ',' + one tag per argument + NUL

	for _, arg := range m.Arguments {
		switch t := arg.(type) {
		case String:
			if strings.IndexByte(string(t), 0) != -1 {
				return 0, encodeError("string argument contains a NUL byte", m.Address, m.Arguments)
			}
			size += AlignUp4(strLen(string(t)) + 1)
		case Int32, Float32:
			size += bit32Size
		case Float64:
			size += bit64Size
		case Bool:
			// Carried by the type tag alone.
		case Blob:
			size += bit32Size + AlignUp4(len(t))
		case Number:
			if t.wireTag(c.Doubles) == TypeFloat64 {
				size += bit64Size
			} else {
				size += bit32Size
			}
		default:
			return 0, encodeError("nil argument", m.Address, m.Arguments)
		}
	}

	return size, nil
}

// write fills buf with the wire form of m and trims it to the bytes
// actually written. buf must come zeroed; padding is never written.
func (c Fast) write(m *Message, buf []byte) ([]byte, error) {
	tags := make([]byte, 0, len(m.Arguments)+1)
	tags = append(tags, ',')
	for _, arg := range m.Arguments {
		tags = append(tags, byte(arg.wireTag(c.Doubles)))
	}

	w := packetWriter{buf: buf}
	w.writeString(m.Address)
	w.writeString(string(tags))

	for _, arg := range m.Arguments {
		switch t := arg.(type) {
		case String:
			w.writeString(string(t))
		case Int32:
			w.writeUint32(uint32(t))
		case Float32:
			w.writeUint32(math.Float32bits(float32(t)))
		case Float64:
			w.writeUint64(math.Float64bits(float64(t)))
		case Bool:
			// No payload.
		case Blob:
			w.writeBlob(t)
		case Number:
			switch t.wireTag(c.Doubles) {
			case TypeInt32:
				w.writeUint32(uint32(int32(t)))
			case TypeFloat64:
				w.writeUint64(math.Float64bits(float64(t)))
			default:
				w.writeUint32(math.Float32bits(float32(t)))
			}
		}
	}

	if w.overflowed() {
		return nil, encodeError("message does not fit the sized buffer", m.Address, m.Arguments)
	}
	return buf[:w.n], nil
}

// Decode parses a single complete packet. Strings and blobs are copied
// out of data; the result does not alias it.
func (c Fast) Decode(data []byte) (*Message, error) {
	if len(data)%bit32Size != 0 {
		return nil, decodeError("packet length is not a multiple of 4", data)
	}
	if len(data) < minPacketSize {
		return nil, decodeError("packet is shorter than 8 bytes", data)
	}

	addr, n, err := parsePaddedString(data)
	if err != nil {
		return nil, decodeError("unterminated address string", data)
	}
	if !strings.HasPrefix(addr, "/") {
		return nil, decodeError("address does not start with '/'", data)
	}
	rest := data[n:]

	tags, n, err := parsePaddedString(rest)
	if err != nil {
		return nil, decodeError("unterminated type tag string", data)
	}
	if !strings.HasPrefix(tags, ",") {
		return nil, decodeError("type tag string does not start with ','", data)
	}
	rest = rest[n:]

	var args []Argument
	if len(tags) > 1 {
		args = make([]Argument, 0, len(tags)-1)
	}
	for i := 1; i < len(tags); i++ {
		switch TypeTag(tags[i]) {
		case TypeInt32:
			if len(rest) < bit32Size {
				return nil, decodeError("truncated int32 argument", data)
			}
			args = append(args, Int32(binary.BigEndian.Uint32(rest)))
			rest = rest[bit32Size:]

		case TypeFloat32:
			if len(rest) < bit32Size {
				return nil, decodeError("truncated float32 argument", data)
			}
			args = append(args, Float32(math.Float32frombits(binary.BigEndian.Uint32(rest))))
			rest = rest[bit32Size:]

		case TypeFloat64:
			if len(rest) < bit64Size {
				return nil, decodeError("truncated float64 argument", data)
			}
			args = append(args, Float64(math.Float64frombits(binary.BigEndian.Uint64(rest))))
			rest = rest[bit64Size:]

		case TypeString:
			str, n, err := parsePaddedString(rest)
			if err != nil {
				return nil, decodeError("unterminated string argument", data)
			}
			args = append(args, String(str))
			rest = rest[n:]

		case TypeBlob:
			buf, n, err := parseBlob(rest)
			if err != nil {
				return nil, decodeError("truncated blob argument", data)
			}
			args = append(args, Blob(buf))
			rest = rest[n:]

		case TypeTrue:
			args = append(args, Bool(true))

		case TypeFalse:
			args = append(args, Bool(false))

		default:
			// Unknown tags are skipped without consuming payload, for
			// compatibility with peers that emit tags outside this
			// set. If the tag did carry payload this desynchronizes
			// every later argument in the message.
		}
	}

	return &Message{Address: addr, Arguments: args}, nil
}

// Encode encodes an address and argument list with the Fast codec and
// default options.
func Encode(addr string, args ...Argument) ([]byte, error) {
	return Fast{}.Encode(&Message{Address: addr, Arguments: args})
}

// Decode parses a single complete packet with the Fast codec.
func Decode(data []byte) (*Message, error) {
	return Fast{}.Decode(data)
}
