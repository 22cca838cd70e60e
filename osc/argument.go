package osc

import "math"

// TypeTag identifies the wire type of a single OSC argument.
type TypeTag byte

const (
	TypeString  TypeTag = 's'
	TypeInt32   TypeTag = 'i'
	TypeFloat32 TypeTag = 'f'
	TypeFloat64 TypeTag = 'd'
	TypeBlob    TypeTag = 'b'
	TypeTrue    TypeTag = 'T'
	TypeFalse   TypeTag = 'F'
	TypeInvalid TypeTag = 0
)

// Argument is a single OSC message argument. The concrete types are
// String, Int32, Float32, Float64, Bool, Blob and Number; nothing else
// satisfies the interface.
type Argument interface {
	// wireTag returns the type tag the argument encodes as. Only
	// Number consults doubles; every other variant has a fixed tag.
	wireTag(doubles bool) TypeTag
}

// String is a text argument. It must not contain a NUL byte; the wire
// string is NUL-terminated and an embedded NUL would truncate it.
type String string

// Int32 is a signed 32-bit integer argument.
type Int32 int32

// Float32 is a single-precision float argument.
type Float32 float32

// Float64 is a double-precision float argument.
type Float64 float64

// Bool is a boolean argument. It is carried entirely by its type tag
// ('T' or 'F') and occupies no payload bytes.
type Bool bool

// Blob is an arbitrary byte sequence argument, length-prefixed and
// zero-padded on the wire.
type Blob []byte

// Number is a numeric argument whose wire type is decided at encode
// time: an integer-valued Number encodes as int32, anything else as
// float32, or float64 when the codec's Doubles option is set. Callers
// that need the distinction between "a float holding a whole number"
// and "an integer" should use Int32, Float32 or Float64 directly;
// decoding always produces those explicit types, never Number.
type Number float64

func (String) wireTag(bool) TypeTag  { return TypeString }
func (Int32) wireTag(bool) TypeTag   { return TypeInt32 }
func (Float32) wireTag(bool) TypeTag { return TypeFloat32 }
func (Float64) wireTag(bool) TypeTag { return TypeFloat64 }
func (Blob) wireTag(bool) TypeTag    { return TypeBlob }

func (b Bool) wireTag(bool) TypeTag {
	if b {
		return TypeTrue
	}
	return TypeFalse
}

func (n Number) wireTag(doubles bool) TypeTag {
	f := float64(n)
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return TypeInt32
	}
	if doubles {
		return TypeFloat64
	}
	return TypeFloat32
}

// ToTypeTag returns the OSC type tag the argument encodes as under
// default options. Returns TypeInvalid for a nil argument.
func ToTypeTag(arg Argument) TypeTag {
	if arg == nil {
		return TypeInvalid
	}
	return arg.wireTag(false)
}
