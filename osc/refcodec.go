package osc

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
)

// Reference is the simple codec: a bytes.Buffer cursor that pulls the
// packet byte by byte on decode and a growable buffer on encode. It
// favors obviousness over speed and serves as the oracle the Fast
// codec is cross-checked against.
type Reference struct {
	Options
}

// Encode encodes the message by appending to growable buffers: one for
// the argument payloads, assembled after the address and type tag
// string once every argument has been mapped to its tag.
func (c Reference) Encode(m *Message) ([]byte, error) {
	if !strings.HasPrefix(m.Address, "/") {
		return nil, encodeError("address does not start with '/'", m.Address, m.Arguments)
	}
	if strings.IndexByte(m.Address, 0) != -1 {
		return nil, encodeError("address contains a NUL byte", m.Address, m.Arguments)
	}

	tags := []byte{','}
	payload := new(bytes.Buffer)

	for _, arg := range m.Arguments {
		switch t := arg.(type) {
		case String:
			if strings.IndexByte(string(t), 0) != -1 {
				return nil, encodeError("string argument contains a NUL byte", m.Address, m.Arguments)
			}
			tags = append(tags, byte(TypeString))
			writeBufPaddedString(string(t), payload)

		case Int32:
			tags = append(tags, byte(TypeInt32))
			binary.Write(payload, binary.BigEndian, int32(t))

		case Float32:
			tags = append(tags, byte(TypeFloat32))
			binary.Write(payload, binary.BigEndian, float32(t))

		case Float64:
			tags = append(tags, byte(TypeFloat64))
			binary.Write(payload, binary.BigEndian, float64(t))

		case Bool:
			tags = append(tags, byte(t.wireTag(false)))

		case Blob:
			tags = append(tags, byte(TypeBlob))
			binary.Write(payload, binary.BigEndian, uint32(len(t)))
			payload.Write(t)
			for i := 0; i < padBytesNeeded(len(t)); i++ {
				payload.WriteByte(0)
			}

		case Number:
			tag := t.wireTag(c.Doubles)
			tags = append(tags, byte(tag))
			switch tag {
			case TypeInt32:
				binary.Write(payload, binary.BigEndian, int32(t))
			case TypeFloat64:
				binary.Write(payload, binary.BigEndian, float64(t))
			default:
				binary.Write(payload, binary.BigEndian, float32(t))
			}

		default:
			return nil, encodeError("nil argument", m.Address, m.Arguments)
		}
	}

	data := new(bytes.Buffer)
	writeBufPaddedString(m.Address, data)
	writeBufPaddedString(string(tags), data)
	data.Write(payload.Bytes())

	return data.Bytes(), nil
}

// Decode parses a single complete packet with a sequential cursor.
func (c Reference) Decode(data []byte) (*Message, error) {
	if len(data)%bit32Size != 0 {
		return nil, decodeError("packet length is not a multiple of 4", data)
	}
	if len(data) < minPacketSize {
		return nil, decodeError("packet is shorter than 8 bytes", data)
	}

	r := bytes.NewBuffer(data)

	addr, err := readPaddedString(r)
	if err != nil {
		return nil, decodeError("unterminated address string", data)
	}
	if !strings.HasPrefix(addr, "/") {
		return nil, decodeError("address does not start with '/'", data)
	}

	tags, err := readPaddedString(r)
	if err != nil {
		return nil, decodeError("unterminated type tag string", data)
	}
	if !strings.HasPrefix(tags, ",") {
		return nil, decodeError("type tag string does not start with ','", data)
	}

	var args []Argument
	if len(tags) > 1 {
		args = make([]Argument, 0, len(tags)-1)
	}
	for i := 1; i < len(tags); i++ {
		switch TypeTag(tags[i]) {
		case TypeInt32:
			v, err := readUint32(r)
			if err != nil {
				return nil, decodeError("truncated int32 argument", data)
			}
			args = append(args, Int32(v))

		case TypeFloat32:
			v, err := readUint32(r)
			if err != nil {
				return nil, decodeError("truncated float32 argument", data)
			}
			args = append(args, Float32(math.Float32frombits(v)))

		case TypeFloat64:
			v, err := readUint64(r)
			if err != nil {
				return nil, decodeError("truncated float64 argument", data)
			}
			args = append(args, Float64(math.Float64frombits(v)))

		case TypeString:
			str, err := readPaddedString(r)
			if err != nil {
				return nil, decodeError("unterminated string argument", data)
			}
			args = append(args, String(str))

		case TypeBlob:
			length, err := readUint32(r)
			if err != nil || int(length) > r.Len() {
				return nil, decodeError("truncated blob argument", data)
			}
			buf := make([]byte, 0, length)
			for j := 0; j < int(length); j++ {
				b, _ := r.ReadByte()
				buf = append(buf, b)
			}
			for j := 0; j < padBytesNeeded(int(length)); j++ {
				r.ReadByte()
			}
			args = append(args, Blob(buf))

		case TypeTrue:
			args = append(args, Bool(true))

		case TypeFalse:
			args = append(args, Bool(false))

		default:
			// Unknown tags are skipped without consuming payload, the
			// same policy as the Fast codec. See the note there.
		}
	}

	return &Message{Address: addr, Arguments: args}, nil
}

// writeBufPaddedString appends str with a NUL terminator and zero
// padding to the next 4-byte boundary.
func writeBufPaddedString(str string, b *bytes.Buffer) {
	b.WriteString(str)
	for i := 0; i < PadLen(len(str), 1); i++ {
		b.WriteByte(0)
	}
}

// readPaddedString consumes a NUL-terminated string and its padding.
func readPaddedString(r *bytes.Buffer) (string, error) {
	str, err := r.ReadString(0)
	if err != nil {
		return "", err
	}
	str = str[:len(str)-1]
	for i := 0; i < padBytesNeeded(len(str)+1); i++ {
		if _, err := r.ReadByte(); err != nil {
			return "", err
		}
	}
	return str, nil
}

// readUint32 pulls four bytes in network order, one at a time.
func readUint32(r *bytes.Buffer) (uint32, error) {
	var v uint32
	for i := 0; i < bit32Size; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		v = v<<8 | uint32(b)
	}
	return v, nil
}

// readUint64 pulls eight bytes in network order, one at a time.
func readUint64(r *bytes.Buffer) (uint64, error) {
	var v uint64
	for i := 0; i < bit64Size; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		v = v<<8 | uint64(b)
	}
	return v, nil
}
