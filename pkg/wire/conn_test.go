package wire

import (
	"bytes"
	"io"
	"testing"

	"golang.org/x/sys/unix"
)

func socketPair(t *testing.T) (*Conn, *Conn) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		t.Fatalf("socketpair: %v", err)
	}
	return &Conn{fd: fds[0]}, &Conn{fd: fds[1]}
}

func TestMsgReaderWriterRoundTrip(t *testing.T) {
	a, b := socketPair(t)
	defer a.Close()
	defer b.Close()

	frames := []*RawMsg{
		NewMsgBuilder().PutUint32(2).Build(1, 1),
		NewMsgBuilder().PutUint32(5).PutString("wl_compositor").PutUint32(4).Build(2, 0),
		NewMsgBuilder().Build(7, 3),
	}
	var want [][]byte
	for _, f := range frames {
		want = append(want, append([]byte{}, f.Bytes()...))
	}

	w := NewMsgWriter(a)
	for _, f := range frames {
		if err := w.WriteMsg(f); err != nil {
			t.Fatalf("WriteMsg: %v", err)
		}
	}
	a.Shutdown()

	r := NewMsgReader(b)
	defer r.Close()
	for i := range want {
		msg, err := r.ReadMsg()
		if err != nil {
			t.Fatalf("ReadMsg %d: %v", i, err)
		}
		if !bytes.Equal(msg.Bytes(), want[i]) {
			t.Errorf("frame %d = %x, want %x", i, msg.Bytes(), want[i])
		}
	}

	if _, err := r.ReadMsg(); err != io.EOF {
		t.Errorf("after shutdown ReadMsg err = %v, want io.EOF", err)
	}
}

func TestMsgWriterPassesFDs(t *testing.T) {
	a, b := socketPair(t)
	defer a.Close()
	defer b.Close()

	var pipeFDs [2]int
	if err := unix.Pipe(pipeFDs[:]); err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer unix.Close(pipeFDs[0])

	// A create_pool-shaped message: new_id, fd, size.
	msg := NewMsgBuilder().
		PutUint32(10).
		PutFD(pipeFDs[1]).
		PutInt32(4096).
		Build(4, 0)

	if err := NewMsgWriter(a).WriteMsg(msg); err != nil {
		t.Fatalf("WriteMsg: %v", err)
	}

	r := NewMsgReader(b)
	defer r.Close()
	got, err := r.ReadMsg()
	if err != nil {
		t.Fatalf("ReadMsg: %v", err)
	}
	fds := got.TakeFDs()
	if len(fds) != 1 {
		t.Fatalf("received %d fds, want 1", len(fds))
	}

	// The duplicated descriptor must still be the write end of the pipe.
	if _, err := unix.Write(fds[0], []byte("ping")); err != nil {
		t.Fatalf("write through received fd: %v", err)
	}
	unix.Close(fds[0])

	buf := make([]byte, 16)
	n, err := unix.Read(pipeFDs[0], buf)
	if err != nil {
		t.Fatalf("read from pipe: %v", err)
	}
	if string(buf[:n]) != "ping" {
		t.Errorf("pipe carried %q, want \"ping\"", buf[:n])
	}
}

func TestMsgReaderUnexpectedEOF(t *testing.T) {
	a, b := socketPair(t)
	defer a.Close()
	defer b.Close()

	// Send a truncated frame: header says 16 bytes, only 12 arrive.
	frame := NewMsgBuilder().PutUint32(1).PutUint32(2).Build(1, 0).Bytes()
	if _, err := unix.Write(a.fd, frame[:12]); err != nil {
		t.Fatalf("write: %v", err)
	}
	a.Shutdown()

	r := NewMsgReader(b)
	defer r.Close()
	if _, err := r.ReadMsg(); err != io.ErrUnexpectedEOF {
		t.Errorf("ReadMsg err = %v, want io.ErrUnexpectedEOF", err)
	}
}
