package wire

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// readBufSize is the receive size per recvmsg. Wayland messages are small;
// one page comfortably holds a burst of them.
const readBufSize = 4096

// oobBufSize leaves room for a control message carrying a batch of
// SCM_RIGHTS descriptors.
const oobBufSize = 256

// Conn is a connected Unix stream socket carrying Wayland traffic.
// It wraps a raw descriptor so messages can be sent and received together
// with their SCM_RIGHTS ancillary payloads.
type Conn struct {
	fd int
}

// Dial connects to the Unix socket at path.
func Dial(path string) (*Conn, error) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("wire: socket: %w", err)
	}
	if err := unix.Connect(fd, &unix.SockaddrUnix{Name: path}); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("wire: connect %s: %w", path, err)
	}
	return &Conn{fd: fd}, nil
}

// Listen binds and listens on the Unix socket at path, removing a
// pre-existing socket file first.
func Listen(path string) (*Conn, error) {
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("wire: unlink existing socket %s: %w", path, err)
		}
	}

	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("wire: socket: %w", err)
	}
	if err := unix.Bind(fd, &unix.SockaddrUnix{Name: path}); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("wire: bind %s: %w", path, err)
	}
	if err := unix.Listen(fd, unix.SOMAXCONN); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("wire: listen %s: %w", path, err)
	}
	return &Conn{fd: fd}, nil
}

// Accept waits for and returns the next connection on a listening socket.
func (c *Conn) Accept() (*Conn, error) {
	for {
		fd, _, err := unix.Accept(c.fd)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("wire: accept: %w", err)
		}
		unix.CloseOnExec(fd)
		return &Conn{fd: fd}, nil
	}
}

// Fd returns the underlying descriptor.
func (c *Conn) Fd() int {
	return c.fd
}

// Shutdown disables further sends and receives, waking any goroutine
// blocked in Recvmsg.
func (c *Conn) Shutdown() {
	unix.Shutdown(c.fd, unix.SHUT_RDWR)
}

// Close closes the socket.
func (c *Conn) Close() error {
	return unix.Close(c.fd)
}

// recvChunk performs one receive, returning stream bytes and any
// descriptors delivered via SCM_RIGHTS. A zero-length result with no
// descriptors signals EOF.
func (c *Conn) recvChunk(buf, oob []byte) (data []byte, fds []int, err error) {
	for {
		n, oobn, _, _, err := unix.Recvmsg(c.fd, buf, oob, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("wire: recvmsg: %w", err)
		}

		if oobn > 0 {
			fds, err = parseRights(oob[:oobn])
			if err != nil {
				return nil, nil, err
			}
		}
		return buf[:n], fds, nil
	}
}

// parseRights extracts SCM_RIGHTS descriptors from socket control messages.
func parseRights(oob []byte) ([]int, error) {
	scms, err := unix.ParseSocketControlMessage(oob)
	if err != nil {
		return nil, fmt.Errorf("wire: parse control message: %w", err)
	}

	var fds []int
	for _, scm := range scms {
		if scm.Header.Level != unix.SOL_SOCKET || scm.Header.Type != unix.SCM_RIGHTS {
			continue
		}
		got, err := unix.ParseUnixRights(&scm)
		if err != nil {
			return nil, fmt.Errorf("wire: parse unix rights: %w", err)
		}
		fds = append(fds, got...)
	}
	return fds, nil
}

// MsgReader frames complete messages out of one direction of a connection.
type MsgReader struct {
	conn *Conn
	dec  *Decoder
	buf  []byte
	oob  []byte
}

// NewMsgReader returns a MsgReader over conn.
func NewMsgReader(conn *Conn) *MsgReader {
	return &MsgReader{
		conn: conn,
		dec:  NewDecoder(),
		buf:  make([]byte, readBufSize),
		oob:  make([]byte, oobBufSize),
	}
}

// ReadMsg blocks until one complete message is available and returns it.
// It returns io.EOF on a clean end of stream and io.ErrUnexpectedEOF when
// the peer hangs up mid-message.
func (r *MsgReader) ReadMsg() (*RawMsg, error) {
	for {
		msg, err := r.dec.TryDecode()
		if err != nil {
			return nil, err
		}
		if msg != nil {
			return msg, nil
		}

		data, fds, err := r.conn.recvChunk(r.buf, r.oob)
		if err != nil {
			return nil, err
		}
		if len(data) == 0 && len(fds) == 0 {
			if r.dec.Buffered() > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, io.EOF
		}
		r.dec.Push(data, fds)
	}
}

// ReturnFDs hands unconsumed descriptors back to the framing queue so the
// next message sees them in original order.
func (r *MsgReader) ReturnFDs(fds []int) {
	r.dec.ReturnFDs(fds)
}

// Close releases buffered state including unattributed descriptors.
func (r *MsgReader) Close() {
	r.dec.Close()
}

// MsgWriter writes messages to one direction of a connection, in order,
// each to completion before the next.
type MsgWriter struct {
	conn *Conn
}

// NewMsgWriter returns a MsgWriter over conn.
func NewMsgWriter(conn *Conn) *MsgWriter {
	return &MsgWriter{conn: conn}
}

// WriteMsg sends msg, carrying partial writes across calls to Sendmsg.
// File descriptors ride only the first write of a message; the local
// copies are closed once the kernel has duplicated them. WriteMsg consumes
// the message regardless of outcome.
func (w *MsgWriter) WriteMsg(msg *RawMsg) error {
	defer msg.Close()

	buf := msg.Bytes()
	fds := msg.FDs()

	written := 0
	for written < len(buf) {
		var oob []byte
		if written == 0 && len(fds) > 0 {
			oob = unix.UnixRights(fds...)
		}

		n, err := unix.SendmsgN(w.conn.fd, buf[written:], oob, nil, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("wire: sendmsg: %w", err)
		}
		written += n
	}

	return nil
}
