package stream

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name   string
		packet []byte
	}{
		{"plain", []byte{'/', 'a', 0, 0, ',', 0, 0, 0}},
		{"contains END", []byte{frameEnd, 1, 2, frameEnd}},
		{"contains ESC", []byte{frameEsc, frameEsc}},
		{"both specials", []byte{frameEnd, frameEsc, frameEnd, frameEsc}},
		{"single byte", []byte{0x7f}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			framed := Frame(tt.packet)
			got, err := readFrame(bufio.NewReader(bytes.NewReader(framed)))
			require.NoError(t, err)
			assert.Equal(t, tt.packet, got)
		})
	}
}

func TestFrameEscaping(t *testing.T) {
	framed := Frame([]byte{1, frameEnd, 2})
	assert.Equal(t, []byte{frameEnd, 1, frameEsc, frameEscEnd, 2, frameEnd}, framed)

	framed = Frame([]byte{frameEsc})
	assert.Equal(t, []byte{frameEnd, frameEsc, frameEscEsc, frameEnd}, framed)
}

func TestReadFrameSkipsEmptyFrames(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{frameEnd, frameEnd, frameEnd})
	buf.Write(Frame([]byte{1, 2, 3}))

	got, err := readFrame(bufio.NewReader(&buf))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestReadFrameMultiple(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(Frame([]byte{1}))
	buf.Write(Frame([]byte{2, frameEnd}))
	r := bufio.NewReader(&buf)

	got, err := readFrame(r)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, got)

	got, err = readFrame(r)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, frameEnd}, got)

	_, err = readFrame(r)
	assert.Equal(t, io.EOF, err)
}

func TestReadFrameTruncated(t *testing.T) {
	// Stream ends mid-frame: that is an unexpected EOF, not a frame.
	r := bufio.NewReader(bytes.NewReader([]byte{frameEnd, 1, 2}))
	_, err := readFrame(r)
	assert.Equal(t, io.ErrUnexpectedEOF, err)
}
