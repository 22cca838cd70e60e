package stream

import (
	"bufio"
	"io"
	"net"
	"sync"

	"github.com/osckit/oscwire/osc"
)

// Conn sends and receives OSC messages over a single byte stream. One
// Conn owns one deframing cursor, so Recv must not be called
// concurrently; Send is safe from multiple goroutines.
type Conn struct {
	rw    io.ReadWriter
	br    *bufio.Reader
	codec osc.Fast

	wmu sync.Mutex
}

// NewConn wraps an existing byte stream. opts configure the encoder
// used by Send.
func NewConn(rw io.ReadWriter, opts osc.Options) *Conn {
	return &Conn{
		rw:    rw,
		br:    bufio.NewReader(rw),
		codec: osc.Fast{Options: opts},
	}
}

// Dial connects to a TCP peer and wraps the connection.
func Dial(addr string, opts osc.Options) (*Conn, error) {
	c, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return NewConn(c, opts), nil
}

// Send encodes the message and writes it as one frame. Encode errors
// are returned as-is; nothing is written for a message that does not
// encode.
func (c *Conn) Send(m *osc.Message) error {
	data, err := c.codec.Encode(m)
	if err != nil {
		return err
	}

	c.wmu.Lock()
	defer c.wmu.Unlock()
	_, err = c.rw.Write(Frame(data))
	return err
}

// Recv blocks until one complete frame arrives and returns the decoded
// message. A frame that does not decode is not consumed further; the
// protocol error is returned for the caller to act on.
func (c *Conn) Recv() (*osc.Message, error) {
	data, err := readFrame(c.br)
	if err != nil {
		return nil, err
	}
	return c.codec.Decode(data)
}

// Close closes the underlying stream if it is closable.
func (c *Conn) Close() error {
	if closer, ok := c.rw.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
