package wire

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestFixedConversion(t *testing.T) {
	tests := []struct {
		name  string
		float float64
	}{
		{"zero", 0.0},
		{"positive integer", 42.0},
		{"negative integer", -42.0},
		{"positive fraction", 3.5},
		{"negative fraction", -3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixed := FixedFromFloat(tt.float)
			got := fixed.Float()

			epsilon := 0.004 // 24.8 fixed has ~0.004 precision
			if diff := got - tt.float; diff < -epsilon || diff > epsilon {
				t.Errorf("FixedFromFloat(%v).Float() = %v, want %v", tt.float, got, tt.float)
			}
		})
	}
}

func TestBuilderString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{
			name:  "empty",
			input: "",
			expected: []byte{
				0x01, 0x00, 0x00, 0x00, // length = 1 (just the NUL)
				0x00, 0x00, 0x00, 0x00, // NUL + padding
			},
		},
		{
			name:  "abc",
			input: "abc",
			expected: []byte{
				0x04, 0x00, 0x00, 0x00, // length = 4, no padding needed
				0x61, 0x62, 0x63, 0x00,
			},
		},
		{
			name:  "hello",
			input: "hello",
			expected: []byte{
				0x06, 0x00, 0x00, 0x00, // length = 6 incl. NUL
				0x68, 0x65, 0x6C, 0x6C,
				0x6F, 0x00, 0x00, 0x00, // NUL + 2 pad bytes
			},
		},
		{
			name:  "four chars",
			input: "abcd",
			expected: []byte{
				0x05, 0x00, 0x00, 0x00, // length = 5 incl. NUL
				0x61, 0x62, 0x63, 0x64,
				0x00, 0x00, 0x00, 0x00, // NUL + 3 pad bytes
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := NewMsgBuilder().PutString(tt.input).Build(1, 0)
			if !bytes.Equal(msg.Payload(), tt.expected) {
				t.Errorf("PutString(%q) payload = %x, want %x", tt.input, msg.Payload(), tt.expected)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	// Lengths covering every padding class mod 4.
	inputs := []string{"", "a", "ab", "abc", "abcd", "hello", "hello wayland"}

	for _, in := range inputs {
		msg := NewMsgBuilder().PutString(in).PutUint32(7).Build(3, 9)

		r := NewArgReader(msg)
		got, err := r.String()
		if err != nil {
			t.Fatalf("String() for %q: %v", in, err)
		}
		if got != in {
			t.Errorf("round trip of %q gave %q", in, got)
		}
		// The trailing uint32 must still be readable: padding was consumed
		// exactly.
		v, err := r.Uint32()
		if err != nil {
			t.Fatalf("Uint32() after string %q: %v", in, err)
		}
		if v != 7 {
			t.Errorf("trailing uint32 after %q = %d, want 7", in, v)
		}
		if r.Remaining() != 0 {
			t.Errorf("%d bytes left after %q", r.Remaining(), in)
		}
	}
}

func TestStringWireSize(t *testing.T) {
	// "hello" is 6 bytes including NUL, padded to 8; with the length word
	// the argument occupies exactly 12 payload bytes.
	msg := NewMsgBuilder().PutString("hello").Build(1, 0)
	if len(msg.Payload()) != 12 {
		t.Errorf("payload size = %d, want 12", len(msg.Payload()))
	}
}

func TestArrayRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"one byte", []byte{0xAA}},
		{"four bytes", []byte{1, 2, 3, 4}},
		{"five bytes", []byte{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := NewMsgBuilder().PutArray(tt.input).PutInt32(-1).Build(1, 0)

			r := NewArgReader(msg)
			got, err := r.Array()
			if err != nil {
				t.Fatalf("Array(): %v", err)
			}
			if !bytes.Equal(got, tt.input) {
				t.Errorf("round trip gave %x, want %x", got, tt.input)
			}
			v, err := r.Int32()
			if err != nil {
				t.Fatalf("Int32() after array: %v", err)
			}
			if v != -1 {
				t.Errorf("trailing int32 = %d, want -1", v)
			}
		})
	}
}

func TestIntRoundTrip(t *testing.T) {
	msg := NewMsgBuilder().
		PutInt32(-123456).
		PutUint32(0xDEADBEEF).
		PutFixed(FixedFromFloat(3.5)).
		Build(42, 7)

	if msg.ObjectID != 42 || msg.Opcode != 7 {
		t.Fatalf("header = (%d, %d), want (42, 7)", msg.ObjectID, msg.Opcode)
	}

	r := NewArgReader(msg)
	i, err := r.Int32()
	if err != nil || i != -123456 {
		t.Errorf("Int32() = %d, %v", i, err)
	}
	u, err := r.Uint32()
	if err != nil || u != 0xDEADBEEF {
		t.Errorf("Uint32() = %x, %v", u, err)
	}
	f, err := r.Fixed()
	if err != nil || f.Float() != 3.5 {
		t.Errorf("Fixed() = %v, %v", f, err)
	}
}

func TestInvalidUTF8String(t *testing.T) {
	b := NewMsgBuilder()
	b.PutUint32(3) // length incl. NUL
	b.args = append(b.args, 0xFF, 0xFE, 0x00, 0x00)
	msg := b.Build(1, 0)

	if _, err := NewArgReader(msg).String(); err == nil {
		t.Error("expected error for invalid UTF-8 string")
	}
}

func TestStringOverrun(t *testing.T) {
	b := NewMsgBuilder()
	b.PutUint32(64) // claims more bytes than the payload holds
	b.args = append(b.args, 'h', 'i', 0, 0)
	msg := b.Build(1, 0)

	if _, err := NewArgReader(msg).String(); err == nil {
		t.Error("expected error for string overrunning payload")
	}
}

func TestDecoderWholeMessage(t *testing.T) {
	src := NewMsgBuilder().PutUint32(5).Build(2, 1)

	d := NewDecoder()
	d.Push(src.Bytes(), nil)

	msg, err := d.TryDecode()
	if err != nil {
		t.Fatalf("TryDecode: %v", err)
	}
	if msg == nil {
		t.Fatal("TryDecode returned no message")
	}
	if msg.ObjectID != 2 || msg.Opcode != 1 || msg.Length != 12 {
		t.Errorf("decoded header = (%d, %d, %d), want (2, 1, 12)", msg.ObjectID, msg.Opcode, msg.Length)
	}
	if d.Buffered() != 0 {
		t.Errorf("%d bytes left in decoder", d.Buffered())
	}
}

func TestDecoderChunkedDelivery(t *testing.T) {
	// The same frame sequence must decode identically regardless of how
	// the bytes are chopped up.
	frames := [][]byte{
		NewMsgBuilder().PutUint32(1).Build(1, 0).Bytes(),
		NewMsgBuilder().PutString("wl_compositor").PutUint32(4).Build(2, 0).Bytes(),
		NewMsgBuilder().Build(3, 2).Bytes(),
	}
	var stream []byte
	for _, f := range frames {
		stream = append(stream, f...)
	}

	for _, chunkSize := range []int{1, 2, 3, 5, 7, 8, 64, len(stream)} {
		d := NewDecoder()
		var decoded []*RawMsg

		for off := 0; off < len(stream); off += chunkSize {
			end := off + chunkSize
			if end > len(stream) {
				end = len(stream)
			}
			d.Push(stream[off:end], nil)
			for {
				msg, err := d.TryDecode()
				if err != nil {
					t.Fatalf("chunk size %d: TryDecode: %v", chunkSize, err)
				}
				if msg == nil {
					break
				}
				decoded = append(decoded, msg)
			}
		}

		if len(decoded) != len(frames) {
			t.Fatalf("chunk size %d: decoded %d frames, want %d", chunkSize, len(decoded), len(frames))
		}
		for i, msg := range decoded {
			if !bytes.Equal(msg.Bytes(), frames[i]) {
				t.Errorf("chunk size %d: frame %d = %x, want %x", chunkSize, i, msg.Bytes(), frames[i])
			}
		}
	}
}

func TestDecoderRejectsBadLength(t *testing.T) {
	tests := []struct {
		name   string
		length uint32
	}{
		{"shorter than header", 4},
		{"zero", 0},
		{"unaligned", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 12)
			binary.LittleEndian.PutUint32(buf[0:4], 1)
			binary.LittleEndian.PutUint32(buf[4:8], tt.length<<16)

			d := NewDecoder()
			d.Push(buf, nil)
			if _, err := d.TryDecode(); err == nil {
				t.Error("expected error for bad message length")
			}
		})
	}
}

func TestDecoderFDAttribution(t *testing.T) {
	// Two frames arrive in one chunk together with one descriptor: the
	// first frame owns it, the second decodes with none.
	first := NewMsgBuilder().PutUint32(10).Build(4, 0).Bytes()
	second := NewMsgBuilder().PutUint32(11).Build(4, 1).Bytes()

	d := NewDecoder()
	d.Push(append(append([]byte{}, first...), second...), []int{1001})

	msg1, err := d.TryDecode()
	if err != nil || msg1 == nil {
		t.Fatalf("first TryDecode: %v, %v", msg1, err)
	}
	if len(msg1.FDs()) != 1 || msg1.FDs()[0] != 1001 {
		t.Fatalf("first frame fds = %v, want [1001]", msg1.FDs())
	}

	// The parser consumed the fd; nothing comes back.
	if surplus := msg1.SplitFDs(1); surplus != nil {
		t.Errorf("surplus after consuming the only fd = %v, want none", surplus)
	}

	msg2, err := d.TryDecode()
	if err != nil || msg2 == nil {
		t.Fatalf("second TryDecode: %v, %v", msg2, err)
	}
	if len(msg2.FDs()) != 0 {
		t.Errorf("second frame fds = %v, want none", msg2.FDs())
	}
	msg1.TakeFDs()
	msg2.TakeFDs()
}

func TestDecoderReturnFDs(t *testing.T) {
	// Surplus descriptors return to the front of the queue in their
	// original order.
	frame := NewMsgBuilder().Build(1, 0).Bytes()

	d := NewDecoder()
	d.Push(frame, []int{1001, 1002, 1003})

	msg, err := d.TryDecode()
	if err != nil || msg == nil {
		t.Fatalf("TryDecode: %v, %v", msg, err)
	}

	// The message consumed one fd; the remaining two go back.
	surplus := msg.SplitFDs(1)
	if len(surplus) != 2 {
		t.Fatalf("surplus = %v, want two fds", surplus)
	}
	d.ReturnFDs(surplus)
	d.Push(nil, []int{1004})

	d.Push(frame, nil)
	msg2, err := d.TryDecode()
	if err != nil || msg2 == nil {
		t.Fatalf("second TryDecode: %v, %v", msg2, err)
	}
	fds := msg2.TakeFDs()
	if len(fds) != 3 || fds[0] != 1002 || fds[1] != 1003 || fds[2] != 1004 {
		t.Errorf("second frame fds = %v, want [1002 1003 1004]", fds)
	}
	msg.TakeFDs()
}

func TestPutNewIDUnknown(t *testing.T) {
	// The interface-less new_id form is the string/version/id triple.
	got := NewMsgBuilder().PutNewIDUnknown("wl_seat", 9, 10).Build(2, 0)
	want := NewMsgBuilder().PutString("wl_seat").PutUint32(9).PutUint32(10).Build(2, 0)

	if !bytes.Equal(got.Bytes(), want.Bytes()) {
		t.Errorf("PutNewIDUnknown = %x, want %x", got.Bytes(), want.Bytes())
	}
}

func TestRawMsgRoundTrip(t *testing.T) {
	src := NewMsgBuilder().
		PutUint32(6).
		PutString("wl_forbidden").
		PutUint32(1).
		Build(2, 0)

	d := NewDecoder()
	d.Push(src.Bytes(), nil)
	got, err := d.TryDecode()
	if err != nil || got == nil {
		t.Fatalf("TryDecode: %v, %v", got, err)
	}
	if !bytes.Equal(got.Bytes(), src.Bytes()) {
		t.Errorf("decode(encode(msg)) = %x, want %x", got.Bytes(), src.Bytes())
	}
}
