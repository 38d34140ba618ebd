package state

import (
	"os"
	"path/filepath"
	"testing"

	"wlmitm/pkg/config"
	"wlmitm/pkg/objects"
	"wlmitm/pkg/proto"
	"wlmitm/pkg/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, body string) *config.Config {
	t.Helper()
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[socket]\nlisten = \"wayland-mitm\"\nupstream = \"wayland-0\"\n" + body
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	return cfg
}

// newSession runs the get_registry handshake so globals can be advertised.
func newSession(t *testing.T, cfg *config.Config) *State {
	t.Helper()
	st := New(cfg, "test")

	verdict, _ := st.OnRequest(proto.NewWlDisplayGetRegistryRequest(1, 2).Build())
	require.Equal(t, VerdictAllowed, verdict.Kind)
	return st
}

func TestGlobalFiltering(t *testing.T) {
	cfg := testConfig(t, `
[filter]
allowed_globals = ["wl_compositor"]
`)
	st := newSession(t, cfg)

	// Allowed global passes and is recorded.
	verdict, _ := st.OnEvent(proto.NewWlRegistryGlobalEvent(2, 5, "wl_compositor", 4).Build())
	assert.Equal(t, VerdictAllowed, verdict.Kind)
	typ, ok := st.Objects().LookupGlobal(5)
	require.True(t, ok)
	assert.Equal(t, proto.WlCompositor, typ)

	// An interface outside the generated set is hidden.
	verdict, _ = st.OnEvent(proto.NewWlRegistryGlobalEvent(2, 6, "wl_forbidden", 1).Build())
	assert.Equal(t, VerdictFiltered, verdict.Kind)
	_, ok = st.Objects().LookupGlobal(6)
	assert.False(t, ok)

	// A known interface missing from allowed_globals is hidden too.
	verdict, _ = st.OnEvent(proto.NewWlRegistryGlobalEvent(2, 7, "wl_shm", 1).Build())
	assert.Equal(t, VerdictFiltered, verdict.Kind)

	// global_remove erases the bookkeeping.
	verdict, _ = st.OnEvent(proto.NewWlRegistryGlobalRemoveEvent(2, 5).Build())
	assert.Equal(t, VerdictAllowed, verdict.Kind)
	_, ok = st.Objects().LookupGlobal(5)
	assert.False(t, ok)
}

func TestBindFilteredGlobalTerminates(t *testing.T) {
	cfg := testConfig(t, `
[filter]
allowed_globals = ["wl_compositor"]
`)
	st := newSession(t, cfg)

	verdict, _ := st.OnEvent(proto.NewWlRegistryGlobalEvent(2, 6, "wl_forbidden", 1).Build())
	require.Equal(t, VerdictFiltered, verdict.Kind)

	// The client tries to bind the global it should never have seen.
	verdict, _ = st.OnRequest(proto.NewWlRegistryBindRequest(2, 6, "wl_forbidden", 1, 10).Build())
	assert.Equal(t, VerdictTerminate, verdict.Kind)
}

func TestBindInterfaceMismatchTerminates(t *testing.T) {
	cfg := testConfig(t, `
[filter]
allowed_globals = ["wl_compositor"]
`)
	st := newSession(t, cfg)

	verdict, _ := st.OnEvent(proto.NewWlRegistryGlobalEvent(2, 5, "wl_compositor", 4).Build())
	require.Equal(t, VerdictAllowed, verdict.Kind)

	verdict, _ = st.OnRequest(proto.NewWlRegistryBindRequest(2, 5, "wl_shm", 1, 10).Build())
	assert.Equal(t, VerdictTerminate, verdict.Kind)
}

func TestBindRecordsObject(t *testing.T) {
	cfg := testConfig(t, `
[filter]
allowed_globals = ["wl_compositor"]
`)
	st := newSession(t, cfg)

	verdict, _ := st.OnEvent(proto.NewWlRegistryGlobalEvent(2, 5, "wl_compositor", 4).Build())
	require.Equal(t, VerdictAllowed, verdict.Kind)

	verdict, _ = st.OnRequest(proto.NewWlRegistryBindRequest(2, 5, "wl_compositor", 4, 10).Build())
	require.Equal(t, VerdictAllowed, verdict.Kind)

	typ, ok := st.Objects().Lookup(10)
	require.True(t, ok)
	assert.Equal(t, proto.WlCompositor, typ)
}

func TestBlockRejectRule(t *testing.T) {
	cfg := testConfig(t, `
[filter]
allowed_globals = ["zwlr_screencopy_manager_v1"]

[[filter.requests]]
interface = "zwlr_screencopy_manager_v1"
requests = ["capture_output"]
action = "block"
block_type = "reject"
error_code = 3
`)
	st := New(cfg, "test")
	st.Objects().Record(20, proto.ZwlrScreencopyManagerV1)
	st.Objects().Record(22, proto.WlOutput)

	verdict, parsed := st.OnRequest(
		proto.NewZwlrScreencopyManagerV1CaptureOutputRequest(20, 21, 0, 22).Build())
	require.Equal(t, VerdictRejected, verdict.Kind)
	assert.Equal(t, uint32(3), verdict.ErrorCode)
	assert.Equal(t, uint32(20), parsed.ObjectID())
}

func TestBlockIgnoreRule(t *testing.T) {
	cfg := testConfig(t, `
[[filter.requests]]
interface = "zwlr_screencopy_manager_v1"
requests = ["capture_output"]
action = "block"
`)
	st := New(cfg, "test")
	st.Objects().Record(20, proto.ZwlrScreencopyManagerV1)
	st.Objects().Record(22, proto.WlOutput)

	verdict, _ := st.OnRequest(
		proto.NewZwlrScreencopyManagerV1CaptureOutputRequest(20, 21, 0, 22).Build())
	assert.Equal(t, VerdictFiltered, verdict.Kind)

	// Unlisted requests on the same interface go through.
	verdict, _ = st.OnRequest(proto.NewZwlrScreencopyManagerV1DestroyRequest(20).Build())
	assert.Equal(t, VerdictAllowed, verdict.Kind)
}

func TestRejectionErrorFrame(t *testing.T) {
	raw := RejectionError(20, 3)

	parsed, err := proto.DecodeEvent(registryWithDisplay(), raw)
	require.NoError(t, err)

	errEv, ok := parsed.(*proto.WlDisplayErrorEvent)
	require.True(t, ok)
	assert.Equal(t, uint32(1), errEv.ObjectID())
	assert.Equal(t, uint32(20), errEv.ObjectId)
	assert.Equal(t, uint32(3), errEv.Code)
	assert.Equal(t, RejectionMessage, errEv.Message)
}

func registryWithDisplay() *objects.Registry {
	return objects.NewRegistry()
}

func TestAskCmdAllow(t *testing.T) {
	cfg := testConfig(t, `
[exec]
ask_cmd = "/bin/true"

[[filter.requests]]
interface = "zwlr_screencopy_manager_v1"
requests = ["capture_output"]
action = "ask"
desc = "capture your screen"
`)
	st := New(cfg, "test")
	st.Objects().Record(20, proto.ZwlrScreencopyManagerV1)
	st.Objects().Record(22, proto.WlOutput)

	verdict, _ := st.OnRequest(
		proto.NewZwlrScreencopyManagerV1CaptureOutputRequest(20, 21, 0, 22).Build())
	assert.Equal(t, VerdictAllowed, verdict.Kind)
}

func TestAskCmdDeny(t *testing.T) {
	cfg := testConfig(t, `
[exec]
ask_cmd = "/bin/false"

[[filter.requests]]
interface = "zwlr_screencopy_manager_v1"
requests = ["capture_output"]
action = "ask"
block_type = "reject"
error_code = 7
`)
	st := New(cfg, "test")
	st.Objects().Record(20, proto.ZwlrScreencopyManagerV1)
	st.Objects().Record(22, proto.WlOutput)

	verdict, _ := st.OnRequest(
		proto.NewZwlrScreencopyManagerV1CaptureOutputRequest(20, 21, 0, 22).Build())
	require.Equal(t, VerdictRejected, verdict.Kind)
	assert.Equal(t, uint32(7), verdict.ErrorCode)
}

func TestAskWithoutCmdBlocks(t *testing.T) {
	cfg := testConfig(t, `
[[filter.requests]]
interface = "zwlr_screencopy_manager_v1"
requests = ["capture_output"]
action = "ask"
`)
	st := New(cfg, "test")
	st.Objects().Record(20, proto.ZwlrScreencopyManagerV1)
	st.Objects().Record(22, proto.WlOutput)

	verdict, _ := st.OnRequest(
		proto.NewZwlrScreencopyManagerV1CaptureOutputRequest(20, 21, 0, 22).Build())
	assert.Equal(t, VerdictFiltered, verdict.Kind)
}

func TestAskCmdEnvironment(t *testing.T) {
	// The helper sees the focused toplevel's metadata and the message JSON.
	script := filepath.Join(t.TempDir(), "ask.sh")
	require.NoError(t, os.WriteFile(script, []byte(`#!/bin/sh
[ "$1" = "zwlr_screencopy_manager_v1" ] || exit 1
[ "$2" = "capture_output" ] || exit 1
[ "$3" = "capture your screen" ] || exit 1
[ "$WL_MITM_LAST_TOPLEVEL_TITLE" = "editor" ] || exit 1
[ "$WL_MITM_LAST_TOPLEVEL_APP_ID" = "org.example.editor" ] || exit 1
[ -n "$WL_MITM_MSG_JSON" ] || exit 1
exit 0
`), 0755))

	cfg := testConfig(t, `
[exec]
ask_cmd = "`+script+`"

[[filter.requests]]
interface = "zwlr_screencopy_manager_v1"
requests = ["capture_output"]
action = "ask"
desc = "capture your screen"
`)
	st := New(cfg, "test")
	seedFocusedToplevel(t, st)
	st.Objects().Record(20, proto.ZwlrScreencopyManagerV1)
	st.Objects().Record(22, proto.WlOutput)

	verdict, _ := st.OnRequest(
		proto.NewZwlrScreencopyManagerV1CaptureOutputRequest(20, 21, 0, 22).Build())
	assert.Equal(t, VerdictAllowed, verdict.Kind)
}

// seedFocusedToplevel drives the real request/event sequence a client uses
// to map a window, then focuses it.
func seedFocusedToplevel(t *testing.T, st *State) {
	t.Helper()
	st.Objects().Record(3, proto.WlCompositor)
	st.Objects().Record(6, proto.XdgWmBase)
	st.Objects().Record(30, proto.WlPointer)

	verdict, _ := st.OnRequest(proto.NewWlCompositorCreateSurfaceRequest(3, 10).Build())
	require.Equal(t, VerdictAllowed, verdict.Kind)
	verdict, _ = st.OnRequest(proto.NewXdgWmBaseGetXdgSurfaceRequest(6, 11, 10).Build())
	require.Equal(t, VerdictAllowed, verdict.Kind)
	verdict, _ = st.OnRequest(proto.NewXdgSurfaceGetToplevelRequest(11, 12).Build())
	require.Equal(t, VerdictAllowed, verdict.Kind)
	verdict, _ = st.OnRequest(proto.NewXdgToplevelSetTitleRequest(12, "editor").Build())
	require.Equal(t, VerdictAllowed, verdict.Kind)
	verdict, _ = st.OnRequest(proto.NewXdgToplevelSetAppIdRequest(12, "org.example.editor").Build())
	require.Equal(t, VerdictAllowed, verdict.Kind)

	verdict, _ = st.OnEvent(proto.NewWlPointerEnterEvent(30, 1, 10, 0, 0).Build())
	require.Equal(t, VerdictAllowed, verdict.Kind)

	last, ok := st.Objects().LastToplevel()
	require.True(t, ok)
	require.Equal(t, uint32(12), last)
}

func TestNotifyRuleAllows(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "notified")
	script := filepath.Join(t.TempDir(), "notify.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\ntouch "+marker+"\n"), 0755))

	cfg := testConfig(t, `
[exec]
notify_cmd = "`+script+`"

[[filter.requests]]
interface = "zwlr_screencopy_manager_v1"
requests = ["capture_output"]
action = "notify"
`)
	st := New(cfg, "test")
	st.Objects().Record(20, proto.ZwlrScreencopyManagerV1)
	st.Objects().Record(22, proto.WlOutput)

	verdict, _ := st.OnRequest(
		proto.NewZwlrScreencopyManagerV1CaptureOutputRequest(20, 21, 0, 22).Build())
	assert.Equal(t, VerdictAllowed, verdict.Kind)
}

func TestHalfDestroyedRequestTerminates(t *testing.T) {
	cfg := testConfig(t, "")
	st := New(cfg, "test")
	st.Objects().Record(3, proto.WlSurface)

	verdict, _ := st.OnRequest(proto.NewWlSurfaceDestroyRequest(3).Build())
	require.Equal(t, VerdictAllowed, verdict.Kind)
	require.True(t, st.Objects().IsHalfDestroyed(3))

	// Events on the half-destroyed object still flow.
	st.Objects().Record(40, proto.WlOutput)
	verdict, _ = st.OnEvent(proto.NewWlSurfaceEnterEvent(3, 40).Build())
	assert.Equal(t, VerdictAllowed, verdict.Kind)

	// A further request on it is a protocol violation.
	verdict, _ = st.OnRequest(proto.NewWlSurfaceCommitRequest(3).Build())
	assert.Equal(t, VerdictTerminate, verdict.Kind)
}

func TestDeleteIdCompletesDestruction(t *testing.T) {
	cfg := testConfig(t, "")
	st := New(cfg, "test")
	st.Objects().Record(3, proto.WlSurface)

	verdict, _ := st.OnRequest(proto.NewWlSurfaceDestroyRequest(3).Build())
	require.Equal(t, VerdictAllowed, verdict.Kind)

	verdict, _ = st.OnEvent(proto.NewWlDisplayDeleteIdEvent(1, 3).Build())
	require.Equal(t, VerdictAllowed, verdict.Kind)

	assert.False(t, st.Objects().Known(3))
}

func TestIdReuseTerminates(t *testing.T) {
	cfg := testConfig(t, "")
	st := newSession(t, cfg)

	// A second get_registry re-using id 2 collides.
	verdict, _ := st.OnRequest(proto.NewWlDisplayGetRegistryRequest(1, 2).Build())
	assert.Equal(t, VerdictTerminate, verdict.Kind)
}

func TestUnknownRequestTerminates(t *testing.T) {
	cfg := testConfig(t, "")
	st := New(cfg, "test")

	raw := wire.NewMsgBuilder().Build(1, 99)
	verdict, parsed := st.OnRequest(raw)
	assert.Equal(t, VerdictTerminate, verdict.Kind)
	assert.Nil(t, parsed)
}

func TestFDAccounting(t *testing.T) {
	cfg := testConfig(t, "")
	st := New(cfg, "test")
	st.Objects().Record(4, proto.WlShm)

	raw := proto.NewWlShmCreatePoolRequest(4, 10, 1001, 4096).Build()
	verdict, parsed := st.OnRequest(raw)
	require.Equal(t, VerdictAllowed, verdict.Kind)
	assert.Equal(t, 1, parsed.NumConsumedFDs())
	raw.TakeFDs()

	// The next frame carries no fd and must parse cleanly.
	verdict, parsed = st.OnRequest(proto.NewWlShmPoolResizeRequest(10, 8192).Build())
	require.Equal(t, VerdictAllowed, verdict.Kind)
	assert.Zero(t, parsed.NumConsumedFDs())
}

func TestDryRunCoercion(t *testing.T) {
	cfg := testConfig(t, `
[filter]
allowed_globals = []
dry_run = true

[[filter.requests]]
interface = "zwlr_screencopy_manager_v1"
requests = ["capture_output"]
action = "block"
block_type = "reject"
error_code = 3
`)
	st := newSession(t, cfg)

	// A global that would be filtered is let through.
	verdict, _ := st.OnEvent(proto.NewWlRegistryGlobalEvent(2, 5, "wl_compositor", 4).Build())
	assert.Equal(t, VerdictAllowed, verdict.Kind)

	// A blocked request is let through.
	st.Objects().Record(20, proto.ZwlrScreencopyManagerV1)
	st.Objects().Record(22, proto.WlOutput)
	verdict, _ = st.OnRequest(
		proto.NewZwlrScreencopyManagerV1CaptureOutputRequest(20, 21, 0, 22).Build())
	assert.Equal(t, VerdictAllowed, verdict.Kind)

	// Terminate is never coerced.
	verdict, _ = st.OnRequest(proto.NewWlRegistryBindRequest(2, 99, "wl_forbidden", 1, 50).Build())
	assert.Equal(t, VerdictTerminate, verdict.Kind)
}

func TestEventDestructorRemovesObject(t *testing.T) {
	cfg := testConfig(t, "")
	st := New(cfg, "test")
	st.Objects().Record(8, proto.WlCallback)

	verdict, _ := st.OnEvent(proto.NewWlCallbackDoneEvent(8, 0).Build())
	require.Equal(t, VerdictAllowed, verdict.Kind)

	assert.False(t, st.Objects().Known(8))
}

func TestLiveHalfDestroyedDisjointAfterTransitions(t *testing.T) {
	cfg := testConfig(t, "")
	st := New(cfg, "test")
	st.Objects().Record(3, proto.WlSurface)

	st.OnRequest(proto.NewWlSurfaceDestroyRequest(3).Build())
	require.True(t, st.Objects().IsHalfDestroyed(3))

	st.OnEvent(proto.NewWlDisplayDeleteIdEvent(1, 3).Build())
	assert.False(t, st.Objects().IsHalfDestroyed(3))
	assert.False(t, st.Objects().Known(3))
}
