// Package wire implements the Wayland wire format: message framing with
// ancillary file descriptor bookkeeping, and the primitive argument
// encodings used by the generated protocol parsers and builders.
package wire

import (
	"encoding/binary"
	"errors"
	"unicode/utf8"

	"golang.org/x/sys/unix"
)

// HeaderSize is the size of a Wayland message header in bytes
// (object ID + packed length/opcode).
const HeaderSize = 8

// MaxMessageSize is the largest representable message: the length field is
// 16 bits and includes the header.
const MaxMessageSize = 0xFFFF

var (
	ErrMessageTooSmall = errors.New("wire: message length smaller than header")
	ErrMessageUnaligned = errors.New("wire: message length not a multiple of 4")
	ErrInvalidString   = errors.New("wire: invalid string argument")
	ErrInvalidArray    = errors.New("wire: invalid array argument")
	ErrUnexpectedEnd   = errors.New("wire: unexpected end of payload")
	ErrNoFD            = errors.New("wire: no file descriptor available")
)

// Wayland messages are encoded in the native byte order of the machine;
// both peers are local by definition.
var nativeEndian = binary.NativeEndian

// Fixed is a signed 24.8 fixed-point number.
type Fixed int32

// Float returns the Fixed value as a float64.
func (f Fixed) Float() float64 {
	return float64(f) / 256.0
}

// FixedFromFloat converts a float64 to Fixed.
func FixedFromFloat(v float64) Fixed {
	return Fixed(v * 256.0)
}

// RawMsg is one complete message as read off the wire: the full buffer
// including the 8-byte header, plus every file descriptor that had been
// received but not yet attributed when the message was framed.
//
// The message owns its fds; Close releases any that are still attached.
type RawMsg struct {
	ObjectID uint32
	Length   uint16
	Opcode   uint16

	buf []byte
	fds []int
}

// NewRawMsg frames a message from header fields, an argument payload and
// optional file descriptors. Used by generated builders and tests.
func NewRawMsg(objectID uint32, opcode uint16, args []byte, fds []int) *RawMsg {
	length := HeaderSize + len(args)
	buf := make([]byte, length)
	nativeEndian.PutUint32(buf[0:4], objectID)
	nativeEndian.PutUint32(buf[4:8], uint32(length)<<16|uint32(opcode))
	copy(buf[HeaderSize:], args)

	return &RawMsg{
		ObjectID: objectID,
		Length:   uint16(length),
		Opcode:   opcode,
		buf:      buf,
		fds:      fds,
	}
}

// Payload returns the argument bytes, excluding the header.
func (m *RawMsg) Payload() []byte {
	return m.buf[HeaderSize:]
}

// Bytes returns the full wire representation including the header.
func (m *RawMsg) Bytes() []byte {
	return m.buf
}

// FDs returns the file descriptors owned by this message.
func (m *RawMsg) FDs() []int {
	return m.fds
}

// TakeFDs detaches and returns all owned file descriptors. The caller
// assumes ownership; Close will no longer touch them.
func (m *RawMsg) TakeFDs() []int {
	fds := m.fds
	m.fds = nil
	return fds
}

// SplitFDs keeps the first n owned descriptors on the message and
// detaches the rest, returning them so they can be handed back to the
// decoder for the frames that follow.
func (m *RawMsg) SplitFDs(n int) (surplus []int) {
	if n >= len(m.fds) {
		return nil
	}
	surplus = m.fds[n:]
	m.fds = m.fds[:n]
	return surplus
}

// Close closes any file descriptors still owned by the message.
func (m *RawMsg) Close() {
	for _, fd := range m.fds {
		unix.Close(fd)
	}
	m.fds = nil
}

// Decoder accumulates bytes and file descriptors arriving from a stream
// socket and frames them into RawMsgs. File descriptors are not demarcated
// by message boundaries on the wire, so a decoded message takes ownership
// of every descriptor queued at the time of framing; consumers return any
// surplus via ReturnFDs.
type Decoder struct {
	buf []byte
	fds []int
}

// NewDecoder returns an empty Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Push appends stream bytes and received file descriptors to the decoder.
func (d *Decoder) Push(data []byte, fds []int) {
	d.buf = append(d.buf, data...)
	d.fds = append(d.fds, fds...)
}

// Buffered returns the number of bytes awaiting framing.
func (d *Decoder) Buffered() int {
	return len(d.buf)
}

// PendingFDs returns the number of unattributed file descriptors.
func (d *Decoder) PendingFDs() int {
	return len(d.fds)
}

// TryDecode frames one message if a complete one is buffered. It returns
// (nil, nil) when more bytes are needed. A framed message takes ownership
// of all queued file descriptors.
func (d *Decoder) TryDecode() (*RawMsg, error) {
	if len(d.buf) < HeaderSize {
		return nil, nil
	}

	lenAndOpcode := nativeEndian.Uint32(d.buf[4:8])
	msgLen := int(lenAndOpcode >> 16)
	if msgLen < HeaderSize {
		return nil, ErrMessageTooSmall
	}
	if msgLen%4 != 0 {
		return nil, ErrMessageUnaligned
	}
	if len(d.buf) < msgLen {
		return nil, nil
	}

	buf := make([]byte, msgLen)
	copy(buf, d.buf[:msgLen])
	d.buf = d.buf[msgLen:]

	fds := d.fds
	d.fds = nil

	return &RawMsg{
		ObjectID: nativeEndian.Uint32(buf[0:4]),
		Length:   uint16(msgLen),
		Opcode:   uint16(lenAndOpcode & 0xFFFF),
		buf:      buf,
		fds:      fds,
	}, nil
}

// ReturnFDs pushes unconsumed file descriptors back to the front of the
// queue, preserving their original arrival order.
func (d *Decoder) ReturnFDs(fds []int) {
	if len(fds) == 0 {
		return
	}
	d.fds = append(append(make([]int, 0, len(fds)+len(d.fds)), fds...), d.fds...)
}

// Close closes every unattributed file descriptor and drops buffered bytes.
func (d *Decoder) Close() {
	for _, fd := range d.fds {
		unix.Close(fd)
	}
	d.fds = nil
	d.buf = nil
}

// ArgReader decodes the typed arguments of a RawMsg payload in order,
// tracking how many of the message's file descriptors it consumes.
type ArgReader struct {
	msg    *RawMsg
	offset int
	fdIdx  int
}

// NewArgReader returns an ArgReader positioned at the start of the payload.
func NewArgReader(msg *RawMsg) *ArgReader {
	return &ArgReader{msg: msg}
}

// ConsumedFDs returns how many file descriptors have been read so far.
func (r *ArgReader) ConsumedFDs() int {
	return r.fdIdx
}

// Remaining returns the number of unread payload bytes.
func (r *ArgReader) Remaining() int {
	return len(r.msg.Payload()) - r.offset
}

func (r *ArgReader) word() (uint32, error) {
	payload := r.msg.Payload()
	if r.offset+4 > len(payload) {
		return 0, ErrUnexpectedEnd
	}
	v := nativeEndian.Uint32(payload[r.offset:])
	r.offset += 4
	return v, nil
}

// Int32 reads a signed 32-bit integer argument.
func (r *ArgReader) Int32() (int32, error) {
	v, err := r.word()
	return int32(v), err
}

// Uint32 reads an unsigned 32-bit integer argument. object, new_id and
// enum arguments share this encoding.
func (r *ArgReader) Uint32() (uint32, error) {
	return r.word()
}

// Fixed reads a 24.8 fixed-point argument.
func (r *ArgReader) Fixed() (Fixed, error) {
	v, err := r.word()
	return Fixed(v), err
}

// String reads a length-prefixed, NUL-terminated, 4-byte-padded string
// argument. The bytes are copied out of the frame.
func (r *ArgReader) String() (string, error) {
	length, err := r.word()
	if err != nil {
		return "", err
	}
	if length == 0 {
		// Null string; encodes as a bare zero length.
		return "", nil
	}

	payload := r.msg.Payload()
	padded := alignUp(int(length))
	if int(length) > MaxMessageSize || r.offset+padded > len(payload) {
		return "", ErrInvalidString
	}
	if payload[r.offset+int(length)-1] != 0 {
		return "", ErrInvalidString
	}

	data := payload[r.offset : r.offset+int(length)-1]
	if !utf8.Valid(data) {
		return "", ErrInvalidString
	}

	r.offset += padded
	return string(data), nil
}

// Array reads a length-prefixed, 4-byte-padded byte array argument.
// The bytes are copied out of the frame.
func (r *ArgReader) Array() ([]byte, error) {
	length, err := r.word()
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return nil, nil
	}

	payload := r.msg.Payload()
	padded := alignUp(int(length))
	if int(length) > MaxMessageSize || r.offset+padded > len(payload) {
		return nil, ErrInvalidArray
	}

	data := make([]byte, length)
	copy(data, payload[r.offset:])
	r.offset += padded
	return data, nil
}

// FD consumes one file descriptor from the message's ancillary queue.
// It contributes nothing to the payload.
func (r *ArgReader) FD() (int, error) {
	if r.fdIdx >= len(r.msg.fds) {
		return -1, ErrNoFD
	}
	fd := r.msg.fds[r.fdIdx]
	r.fdIdx++
	return fd, nil
}

// MsgBuilder constructs a message payload argument by argument, collecting
// file descriptors in a sidecar list, then frames the result.
type MsgBuilder struct {
	args []byte
	fds  []int
}

// NewMsgBuilder returns an empty MsgBuilder.
func NewMsgBuilder() *MsgBuilder {
	return &MsgBuilder{}
}

// PutInt32 appends a signed 32-bit integer.
func (b *MsgBuilder) PutInt32(v int32) *MsgBuilder {
	b.args = nativeEndian.AppendUint32(b.args, uint32(v))
	return b
}

// PutUint32 appends an unsigned 32-bit integer. object, new_id and enum
// arguments share this encoding.
func (b *MsgBuilder) PutUint32(v uint32) *MsgBuilder {
	b.args = nativeEndian.AppendUint32(b.args, v)
	return b
}

// PutFixed appends a 24.8 fixed-point number.
func (b *MsgBuilder) PutFixed(v Fixed) *MsgBuilder {
	b.args = nativeEndian.AppendUint32(b.args, uint32(v))
	return b
}

// PutString appends a length-prefixed, NUL-terminated string padded to a
// 4-byte boundary.
func (b *MsgBuilder) PutString(s string) *MsgBuilder {
	length := len(s) + 1
	b.args = nativeEndian.AppendUint32(b.args, uint32(length))
	b.args = append(b.args, s...)
	b.args = append(b.args, 0)
	for i := 0; i < paddingFor(length); i++ {
		b.args = append(b.args, 0)
	}
	return b
}

// PutArray appends a length-prefixed byte array padded to a 4-byte boundary.
func (b *MsgBuilder) PutArray(data []byte) *MsgBuilder {
	b.args = nativeEndian.AppendUint32(b.args, uint32(len(data)))
	b.args = append(b.args, data...)
	for i := 0; i < paddingFor(len(data)); i++ {
		b.args = append(b.args, 0)
	}
	return b
}

// PutNewIDUnknown appends the interface-less new_id form: interface name,
// version, then the id. Only wl_registry.bind uses this encoding.
func (b *MsgBuilder) PutNewIDUnknown(iface string, version uint32, id uint32) *MsgBuilder {
	b.PutString(iface)
	b.PutUint32(version)
	b.PutUint32(id)
	return b
}

// PutFD queues a file descriptor to ride with the message.
func (b *MsgBuilder) PutFD(fd int) *MsgBuilder {
	b.fds = append(b.fds, fd)
	return b
}

// Build frames the collected arguments into a RawMsg.
func (b *MsgBuilder) Build(objectID uint32, opcode uint16) *RawMsg {
	return NewRawMsg(objectID, opcode, b.args, b.fds)
}

func alignUp(n int) int {
	return (n + 3) &^ 3
}

func paddingFor(n int) int {
	return (4 - n%4) % 4
}
