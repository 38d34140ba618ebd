// Package proxy accepts client connections on the impersonated compositor
// socket and relays each of them to the real compositor through the filter
// state machine.
package proxy

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"wlmitm/pkg/config"
	wlerrors "wlmitm/pkg/errors"
	"wlmitm/pkg/logger"
	"wlmitm/pkg/state"
	"wlmitm/pkg/wire"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrConnectionAborted reports a connection torn down by a Terminate
// verdict.
var ErrConnectionAborted = errors.New("proxy: connection aborted by filter")

// Server owns the listening socket and spawns one relay per client.
type Server struct {
	cfg      *config.Config
	listener *wire.Conn

	listenPath   string
	upstreamPath string
}

// NewServer binds the listening socket. The pre-existing socket file, if
// any, is removed first.
func NewServer(cfg *config.Config) (*Server, error) {
	listenPath := cfg.ListenSocketPath()
	upstreamPath := cfg.UpstreamSocketPath()

	listener, err := wire.Listen(listenPath)
	if err != nil {
		return nil, wlerrors.SocketError("failed to bind listening socket", err)
	}

	logger.Info().
		Str("listen", listenPath).
		Str("upstream", upstreamPath).
		Msg("Proxy listening")

	return &Server{
		cfg:          cfg,
		listener:     listener,
		listenPath:   listenPath,
		upstreamPath: upstreamPath,
	}, nil
}

// Serve accepts connections until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.listener.Shutdown()
		s.listener.Close()
	}()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return wlerrors.SocketError("accept failed", err)
		}

		connID := uuid.New().String()
		logger.Info().Str("conn", connID).Msg("Accepted new client")
		go s.handleConn(conn, connID)
	}
}

// Close removes the socket file; the listener itself is torn down by
// Serve when its context ends.
func (s *Server) Close() {
	os.Remove(s.listenPath)
}

// handleConn dials the real compositor and relays both directions until
// one of them ends.
func (s *Server) handleConn(down *wire.Conn, connID string) {
	log := logger.GetLogger().With().Str("conn", connID).Logger()

	up, err := wire.Dial(s.upstreamPath)
	if err != nil {
		log.Error().Err(err).Str("upstream", s.upstreamPath).Msg("Failed to connect to upstream compositor")
		down.Close()
		return
	}

	st := state.New(s.cfg, connID)

	downReader := wire.NewMsgReader(down)
	upReader := wire.NewMsgReader(up)
	downWriter := &lockedWriter{w: wire.NewMsgWriter(down)}
	upWriter := &lockedWriter{w: wire.NewMsgWriter(up)}

	// Either direction ending wakes the other out of its blocking receive.
	shutdownBoth := func() {
		down.Shutdown()
		up.Shutdown()
	}

	var g errgroup.Group
	g.Go(func() error {
		defer shutdownBoth()
		return s.relayRequests(st, downReader, upWriter, downWriter)
	})
	g.Go(func() error {
		defer shutdownBoth()
		return s.relayEvents(st, upReader, downWriter)
	})

	err = g.Wait()

	// Dropping the sockets and decoder queues releases every fd still in
	// flight on this connection.
	downReader.Close()
	upReader.Close()
	down.Close()
	up.Close()

	switch {
	case err == nil:
		log.Info().Msg("Connection closed")
	case errors.Is(err, ErrConnectionAborted):
		log.Warn().Msg("Connection aborted by filter")
	default:
		log.Error().Err(err).Msg("Connection failed")
	}
}

// relayRequests pumps the client-to-server direction.
func (s *Server) relayRequests(st *state.State, reader *wire.MsgReader, up, down *lockedWriter) error {
	for {
		raw, err := reader.ReadMsg()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		verdict, parsed := st.OnRequest(raw)
		if parsed != nil {
			reader.ReturnFDs(raw.SplitFDs(parsed.NumConsumedFDs()))
		}

		switch verdict.Kind {
		case state.VerdictAllowed:
			if err := up.WriteMsg(raw); err != nil {
				return err
			}

		case state.VerdictFiltered:
			raw.Close()

		case state.VerdictRejected:
			offendingID := parsed.ObjectID()
			raw.Close()
			if err := down.WriteMsg(state.RejectionError(offendingID, verdict.ErrorCode)); err != nil {
				return err
			}

		case state.VerdictTerminate:
			raw.Close()
			return ErrConnectionAborted
		}
	}
}

// relayEvents pumps the server-to-client direction.
func (s *Server) relayEvents(st *state.State, reader *wire.MsgReader, down *lockedWriter) error {
	for {
		raw, err := reader.ReadMsg()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		verdict, parsed := st.OnEvent(raw)
		if parsed != nil {
			reader.ReturnFDs(raw.SplitFDs(parsed.NumConsumedFDs()))
		}

		switch verdict.Kind {
		case state.VerdictAllowed:
			if err := down.WriteMsg(raw); err != nil {
				return err
			}

		case state.VerdictFiltered:
			raw.Close()

		default:
			raw.Close()
			return ErrConnectionAborted
		}
	}
}

// lockedWriter serialises frame writes: the event relay and the rejection
// path of the request relay share the client-bound writer.
type lockedWriter struct {
	mu sync.Mutex
	w  *wire.MsgWriter
}

func (l *lockedWriter) WriteMsg(msg *wire.RawMsg) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.WriteMsg(msg)
}
