package osc

const (
	bit32Size = 4
	bit64Size = 8

	// minPacketSize is the shortest legal packet: the address "/"
	// padded to 4 bytes followed by the empty type tag string ","
	// padded to 4 bytes.
	minPacketSize = 8
)

////
// Utility and helper functions
////

// AlignUp4 returns the smallest multiple of 4 that is >= n.
func AlignUp4(n int) int {
	return (n + 3) &^ 3
}

// PadLen returns the number of padding bytes needed so that
// contentLen+padding is a multiple of 4, with at least minPad bytes of
// padding. OSC strings use minPad=1 (the NUL terminator counts as
// padding), blobs use minPad=0.
func PadLen(contentLen, minPad int) int {
	return (4-(contentLen+minPad)%4)%4 + minPad
}

// padBytesNeeded determines how many bytes are needed to fill up to the
// next 4 byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}
