package stream

import (
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/osckit/oscwire/osc"
)

// Handler receives decoded OSC messages.
type Handler interface {
	HandleMessage(msg *osc.Message)
}

// HandlerFunc implements the Handler interface for a bare function.
type HandlerFunc func(msg *osc.Message)

// HandleMessage calls itself with the given OSC Message.
func (f HandlerFunc) HandleMessage(msg *osc.Message) {
	f(msg)
}

// Server accepts stream connections and delivers every decoded message
// to Handler. Each connection runs one serial receive loop, so a
// single peer's messages arrive in the order they were sent. A
// connection that produces a malformed packet is logged and dropped;
// the peer is expected to reconnect with a sane encoder.
type Server struct {
	Addr    string
	Handler Handler

	// Options configure the codec used for the connections.
	Options osc.Options

	// Log receives connection lifecycle and protocol errors. Nil
	// disables logging.
	Log *zerolog.Logger
}

// ListenAndServe listens on Addr and serves incoming connections.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	return s.Serve(ln)
}

// Serve accepts connections from the given listener and serves each on
// its own goroutine until the listener fails.
func (s *Server) Serve(ln net.Listener) error {
	log := s.logger()

	var tempDelay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				if tempDelay == 0 {
					tempDelay = 5 * time.Millisecond
				} else {
					tempDelay *= 2
				}
				if max := 1 * time.Second; tempDelay > max {
					tempDelay = max
				}
				time.Sleep(tempDelay)
				continue
			}
			return err
		}
		tempDelay = 0

		log.Debug().Stringer("peer", conn.RemoteAddr()).Msg("connection accepted")
		go s.serveConn(conn)
	}
}

func (s *Server) serveConn(conn net.Conn) {
	log := s.logger()
	defer conn.Close()

	c := NewConn(conn, s.Options)
	for {
		msg, err := c.Recv()
		if err != nil {
			if _, ok := err.(*osc.Error); ok {
				log.Warn().Err(err).Stringer("peer", conn.RemoteAddr()).Msg("malformed packet, dropping connection")
			} else {
				log.Debug().Err(err).Stringer("peer", conn.RemoteAddr()).Msg("connection closed")
			}
			return
		}
		s.Handler.HandleMessage(msg)
	}
}

func (s *Server) logger() zerolog.Logger {
	if s.Log == nil {
		return zerolog.Nop()
	}
	return *s.Log
}
