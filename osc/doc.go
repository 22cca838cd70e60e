// Package osc implements the Open Sound Control 1.0 wire format
// (http://opensoundcontrol.org/spec-1_0.html): encoding an address
// pattern plus a typed argument list into a 32-bit-aligned byte packet,
// and decoding such a packet back.
//
// Supported type tags:
//
//	'i' (int32)
//	'f' (float32)
//	'd' (float64)
//	's' (string)
//	'b' (blob)
//	'T' (true)
//	'F' (false)
//
// Two codecs are provided behind the same interface. Fast computes the
// packet size up front and writes into a single pre-sized buffer;
// Reference is a deliberately simple per-byte implementation kept as
// the oracle Fast is validated against. For all valid input the two
// produce identical bytes.
//
// Bundles, time tags and address pattern dispatch are out of scope;
// transports live in the stream package.
//
// Encoding:
//
//	data, err := osc.Encode("/mixer/gain", osc.Number(0.5), osc.Bool(true))
//
// Decoding:
//
//	msg, err := osc.Decode(data)
package osc
