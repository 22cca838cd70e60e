package osc

import "fmt"

// Error is a protocol-level encode or decode failure. Alongside the
// reason it carries the offending address and argument list (encode
// side) or the raw packet bytes (decode side), so a caller can log or
// reproduce the failure. The codec never recovers from one internally.
type Error struct {
	Msg       string
	Address   string
	Arguments []Argument
	Packet    []byte
}

func (e *Error) Error() string {
	switch {
	case e.Packet != nil:
		return fmt.Sprintf("osc: %s (packet: % x)", e.Msg, e.Packet)
	case e.Address != "":
		return fmt.Sprintf("osc: %s (address %q, %d arguments)", e.Msg, e.Address, len(e.Arguments))
	default:
		return "osc: " + e.Msg
	}
}

// encodeError builds an Error for a message that cannot be encoded.
func encodeError(msg string, addr string, args []Argument) *Error {
	return &Error{Msg: msg, Address: addr, Arguments: args}
}

// decodeError builds an Error for a packet that cannot be decoded.
func decodeError(msg string, packet []byte) *Error {
	return &Error{Msg: msg, Packet: packet}
}
