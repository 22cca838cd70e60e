package osc

// Shared test corpus. The raw bytes are hand-assembled from the OSC
// 1.0 wire rules so the tests do not trust either codec to check the
// other's homework.
type testCase struct {
	name    string
	obj     *Message
	raw     []byte
	wantErr bool
}

var messageTestCases = []testCase{
	{
		name: "minimum packet",
		obj:  NewMessage("/a"),
		raw: []byte{
			'/', 'a', 0, 0,
			',', 0, 0, 0,
		},
	},
	{
		name: "int and true",
		obj:  NewMessage("/foo/bar", Int32(5), Bool(true)),
		raw: []byte{
			'/', 'f', 'o', 'o', '/', 'b', 'a', 'r', 0, 0, 0, 0,
			',', 'i', 'T', 0,
			0, 0, 0, 5,
		},
	},
	{
		name: "false",
		obj:  NewMessage("/mute", Bool(false)),
		raw: []byte{
			'/', 'm', 'u', 't', 'e', 0, 0, 0,
			',', 'F', 0, 0,
		},
	},
	{
		name: "string",
		obj:  NewMessage("/s", String("hello")),
		raw: []byte{
			'/', 's', 0, 0,
			',', 's', 0, 0,
			'h', 'e', 'l', 'l', 'o', 0, 0, 0,
		},
	},
	{
		name: "string and blob",
		obj:  NewMessage("/foo", String("baz"), Blob{1, 2, 3, 4, 5}),
		raw: []byte{
			'/', 'f', 'o', 'o', 0, 0, 0, 0,
			',', 's', 'b', 0,
			'b', 'a', 'z', 0,
			0, 0, 0, 5,
			1, 2, 3, 4, 5, 0, 0, 0,
		},
	},
	{
		name: "empty blob",
		obj:  NewMessage("/b", Blob{}),
		raw: []byte{
			'/', 'b', 0, 0,
			',', 'b', 0, 0,
			0, 0, 0, 0,
		},
	},
	{
		name: "float32",
		obj:  NewMessage("/gain", Float32(0.5)),
		raw: []byte{
			'/', 'g', 'a', 'i', 'n', 0, 0, 0,
			',', 'f', 0, 0,
			0x3f, 0, 0, 0,
		},
	},
	{
		name: "float64",
		obj:  NewMessage("/gain", Float64(0.25)),
		raw: []byte{
			'/', 'g', 'a', 'i', 'n', 0, 0, 0,
			',', 'd', 0, 0,
			0x3f, 0xd0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		name: "negative int",
		obj:  NewMessage("/x", Int32(-1)),
		raw: []byte{
			'/', 'x', 0, 0,
			',', 'i', 0, 0,
			0xff, 0xff, 0xff, 0xff,
		},
	},
	{
		name: "mixed",
		obj: NewMessage("/synth/1/osc",
			Int32(123456789), String("saw"), Float32(-2.5), Bool(true), Bool(false)),
		raw: []byte{
			'/', 's', 'y', 'n', 't', 'h', '/', '1', '/', 'o', 's', 'c', 0, 0, 0, 0,
			',', 'i', 's', 'f', 'T', 'F', 0, 0,
			0x07, 0x5b, 0xcd, 0x15,
			's', 'a', 'w', 0,
			0xc0, 0x20, 0, 0,
		},
	},
}
