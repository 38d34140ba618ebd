package proxy

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"wlmitm/pkg/config"
	"wlmitm/pkg/objects"
	"wlmitm/pkg/proto"
	"wlmitm/pkg/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHarness stands up a fake compositor, the proxy in front of it, and
// one connected client.
type testHarness struct {
	client   *wire.Conn
	upstream *wire.Conn

	clientReader   *wire.MsgReader
	upstreamReader *wire.MsgReader

	cancel context.CancelFunc
	served chan struct{}
	server *Server
}

func newHarness(t *testing.T, filterToml string) *testHarness {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)

	configPath := filepath.Join(dir, "config.toml")
	content := "[socket]\nlisten = \"mitm.sock\"\nupstream = \"upstream.sock\"\n" + filterToml
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)

	compositor, err := wire.Listen(filepath.Join(dir, "upstream.sock"))
	require.NoError(t, err)
	t.Cleanup(func() { compositor.Close() })

	server, err := NewServer(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan struct{})
	go func() {
		defer close(served)
		_ = server.Serve(ctx)
	}()

	client, err := wire.Dial(cfg.ListenSocketPath())
	require.NoError(t, err)

	upstream, err := compositor.Accept()
	require.NoError(t, err)

	h := &testHarness{
		client:         client,
		upstream:       upstream,
		clientReader:   wire.NewMsgReader(client),
		upstreamReader: wire.NewMsgReader(upstream),
		cancel:         cancel,
		served:         served,
		server:         server,
	}
	t.Cleanup(h.close)
	return h
}

func (h *testHarness) close() {
	h.cancel()
	<-h.served
	h.server.Close()
	h.clientReader.Close()
	h.upstreamReader.Close()
	h.client.Close()
	h.upstream.Close()
}

// readWithDeadline guards against a stuck relay wedging the test run.
func readWithDeadline(t *testing.T, r *wire.MsgReader) (*wire.RawMsg, error) {
	t.Helper()

	type result struct {
		msg *wire.RawMsg
		err error
	}
	ch := make(chan result, 1)
	go func() {
		msg, err := r.ReadMsg()
		ch <- result{msg, err}
	}()

	select {
	case res := <-ch:
		return res.msg, res.err
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a message")
		return nil, nil
	}
}

func registryLookup() proto.ObjectLookup {
	r := objects.NewRegistry()
	r.Record(2, proto.WlRegistry)
	return r
}

func TestProxyFiltersDisallowedGlobals(t *testing.T) {
	h := newHarness(t, `
[filter]
allowed_globals = ["wl_compositor"]
`)

	// Client asks for the registry; the request must reach the compositor
	// byte for byte.
	sent := proto.NewWlDisplayGetRegistryRequest(1, 2).Build()
	wantBytes := append([]byte{}, sent.Bytes()...)
	require.NoError(t, wire.NewMsgWriter(h.client).WriteMsg(sent))

	got, err := readWithDeadline(t, h.upstreamReader)
	require.NoError(t, err)
	assert.Equal(t, wantBytes, got.Bytes())

	// The compositor advertises an allowed global, a forbidden one, and a
	// trailing marker event.
	upWriter := wire.NewMsgWriter(h.upstream)
	require.NoError(t, upWriter.WriteMsg(proto.NewWlRegistryGlobalEvent(2, 5, "wl_compositor", 4).Build()))
	require.NoError(t, upWriter.WriteMsg(proto.NewWlRegistryGlobalEvent(2, 6, "wl_forbidden", 1).Build()))
	require.NoError(t, upWriter.WriteMsg(proto.NewWlRegistryGlobalRemoveEvent(2, 99).Build()))

	// The client sees the allowed global...
	msg, err := readWithDeadline(t, h.clientReader)
	require.NoError(t, err)
	parsed, err := proto.DecodeEvent(registryLookup(), msg)
	require.NoError(t, err)
	global, ok := parsed.(*proto.WlRegistryGlobalEvent)
	require.True(t, ok, "first client message is %T", parsed)
	assert.Equal(t, "wl_compositor", global.Interface)

	// ...then immediately the marker: the forbidden global never arrives.
	msg, err = readWithDeadline(t, h.clientReader)
	require.NoError(t, err)
	parsed, err = proto.DecodeEvent(registryLookup(), msg)
	require.NoError(t, err)
	remove, ok := parsed.(*proto.WlRegistryGlobalRemoveEvent)
	require.True(t, ok, "second client message is %T", parsed)
	assert.Equal(t, uint32(99), remove.Name)
}

func TestProxyTerminatesOnForbiddenBind(t *testing.T) {
	h := newHarness(t, `
[filter]
allowed_globals = ["wl_compositor"]
`)

	clientWriter := wire.NewMsgWriter(h.client)
	require.NoError(t, clientWriter.WriteMsg(proto.NewWlDisplayGetRegistryRequest(1, 2).Build()))

	got, err := readWithDeadline(t, h.upstreamReader)
	require.NoError(t, err)
	require.Equal(t, uint32(1), got.ObjectID)

	upWriter := wire.NewMsgWriter(h.upstream)
	require.NoError(t, upWriter.WriteMsg(proto.NewWlRegistryGlobalEvent(2, 6, "wl_forbidden", 1).Build()))

	// Binding the global that was filtered away tears the connection down;
	// nothing further reaches the compositor.
	require.NoError(t, clientWriter.WriteMsg(proto.NewWlRegistryBindRequest(2, 6, "wl_forbidden", 1, 10).Build()))

	_, err = readWithDeadline(t, h.upstreamReader)
	require.Error(t, err)

	_, err = readWithDeadline(t, h.clientReader)
	require.Error(t, err)
}

func TestProxyRejectSynthesisReachesClient(t *testing.T) {
	h := newHarness(t, `
[filter]
allowed_globals = ["wl_compositor", "zwlr_screencopy_manager_v1", "wl_output"]

[[filter.requests]]
interface = "zwlr_screencopy_manager_v1"
requests = ["capture_output"]
action = "block"
block_type = "reject"
error_code = 3
`)

	clientWriter := wire.NewMsgWriter(h.client)
	require.NoError(t, clientWriter.WriteMsg(proto.NewWlDisplayGetRegistryRequest(1, 2).Build()))
	_, err := readWithDeadline(t, h.upstreamReader)
	require.NoError(t, err)

	// Advertise and bind the screencopy manager so the client can issue
	// the filtered request.
	upWriter := wire.NewMsgWriter(h.upstream)
	require.NoError(t, upWriter.WriteMsg(proto.NewWlRegistryGlobalEvent(2, 7, "zwlr_screencopy_manager_v1", 3).Build()))
	_, err = readWithDeadline(t, h.clientReader)
	require.NoError(t, err)

	require.NoError(t, clientWriter.WriteMsg(proto.NewWlRegistryBindRequest(2, 7, "zwlr_screencopy_manager_v1", 3, 20).Build()))
	_, err = readWithDeadline(t, h.upstreamReader)
	require.NoError(t, err)

	require.NoError(t, clientWriter.WriteMsg(proto.NewZwlrScreencopyManagerV1CaptureOutputRequest(20, 21, 0, 0).Build()))

	// The client receives the fabricated wl_display.error; the compositor
	// receives nothing for the rejected request.
	msg, err := readWithDeadline(t, h.clientReader)
	require.NoError(t, err)

	lookup := objects.NewRegistry()
	parsed, err := proto.DecodeEvent(lookup, msg)
	require.NoError(t, err)
	errEv, ok := parsed.(*proto.WlDisplayErrorEvent)
	require.True(t, ok, "client received %T", parsed)
	assert.Equal(t, uint32(20), errEv.ObjectId)
	assert.Equal(t, uint32(3), errEv.Code)
	assert.Equal(t, "Rejected by wl-mitm", errEv.Message)
}

func TestProxyCleanClientDisconnect(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, wire.NewMsgWriter(h.client).WriteMsg(proto.NewWlDisplayGetRegistryRequest(1, 2).Build()))
	_, err := readWithDeadline(t, h.upstreamReader)
	require.NoError(t, err)

	// Client hangs up; the proxy closes the upstream side too.
	h.client.Shutdown()

	_, err = readWithDeadline(t, h.upstreamReader)
	assert.Equal(t, io.EOF, err)
}
