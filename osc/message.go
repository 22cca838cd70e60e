package osc

import (
	"fmt"
	"reflect"
	"strings"
)

// Message represents a single OSC message. An OSC message consists of
// an OSC address pattern and zero or more arguments.
type Message struct {
	Address   string
	Arguments []Argument
}

// NewMessage returns a new Message. The address parameter is the OSC address.
func NewMessage(addr string, args ...Argument) *Message {
	return &Message{Address: addr, Arguments: args}
}

// Append appends the given arguments to the arguments list.
func (m *Message) Append(args ...Argument) {
	m.Arguments = append(m.Arguments, args...)
}

// Equals returns true if the given OSC Message `msg` has the same
// address and arguments as the current one.
func (m *Message) Equals(msg *Message) bool {
	return reflect.DeepEqual(m, msg)
}

// Clear clears the OSC address and all arguments.
func (m *Message) Clear() {
	m.Address = ""
	m.Arguments = m.Arguments[:0]
}

// CountArguments returns the number of arguments.
func (m *Message) CountArguments() int {
	return len(m.Arguments)
}

// TypeTags returns the type tag string under default options,
// including the leading comma.
func (m *Message) TypeTags() string {
	tags := make([]byte, 0, len(m.Arguments)+1)
	tags = append(tags, ',')
	for _, arg := range m.Arguments {
		tags = append(tags, byte(ToTypeTag(arg)))
	}
	return string(tags)
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.Address)
	b.WriteByte(' ')
	b.WriteString(m.TypeTags())

	for _, arg := range m.Arguments {
		switch t := arg.(type) {
		case String, Int32, Float32, Float64, Number:
			fmt.Fprintf(&b, " %v", t)
		case Bool:
			fmt.Fprintf(&b, " %t", bool(t))
		case Blob:
			b.WriteString(" blob")
		}
	}

	return b.String()
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
// using the Fast codec with default options.
func (m *Message) MarshalBinary() ([]byte, error) {
	return Fast{}.Encode(m)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
// using the Fast codec.
func (m *Message) UnmarshalBinary(data []byte) error {
	msg, err := Fast{}.Decode(data)
	if err != nil {
		return err
	}
	*m = *msg
	return nil
}
