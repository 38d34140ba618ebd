package proto

import (
	"encoding/json"
	"errors"
	"testing"

	"wlmitm/pkg/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapLookup map[uint32]ObjectType

func (m mapLookup) Lookup(id uint32) (ObjectType, bool) {
	t, ok := m[id]
	return t, ok
}

func TestLookupInterface(t *testing.T) {
	typ, ok := LookupInterface("wl_registry")
	require.True(t, ok)
	assert.Equal(t, "wl_registry", typ.Interface())
	assert.Equal(t, WlRegistry, typ)

	_, ok = LookupInterface("wl_bogus")
	assert.False(t, ok)
}

func TestObjectTypeIdentity(t *testing.T) {
	assert.Equal(t, WlDisplay, WlDisplay)
	assert.NotEqual(t, WlDisplay, WlRegistry)

	// A second singleton with the same name is a different type; identity
	// is by singleton, not by string.
	other := NewObjectType("wl_display")
	assert.True(t, WlDisplay != other)
}

func TestDecodeEventRoundTrip(t *testing.T) {
	ev := NewWlRegistryGlobalEvent(2, 5, "wl_compositor", 4)
	raw := ev.Build()

	objects := mapLookup{2: WlRegistry}
	parsed, err := DecodeEvent(objects, raw)
	require.NoError(t, err)

	global, ok := parsed.(*WlRegistryGlobalEvent)
	require.True(t, ok, "parsed message has type %T", parsed)
	assert.Equal(t, uint32(5), global.Name)
	assert.Equal(t, "wl_compositor", global.Interface)
	assert.Equal(t, uint32(4), global.Version)
	assert.Equal(t, uint32(2), global.ObjectID())
	assert.Equal(t, Event, global.MsgType())
	assert.Equal(t, "global", global.MsgName())
	assert.False(t, global.IsDestructor())
	assert.Empty(t, global.CreatedObjects())
	assert.Zero(t, global.NumConsumedFDs())
}

func TestDecodeRequestRoundTrip(t *testing.T) {
	req := NewWlDisplayGetRegistryRequest(1, 2)
	raw := req.Build()

	parsed, err := DecodeRequest(mapLookup{1: WlDisplay}, raw)
	require.NoError(t, err)

	getRegistry, ok := parsed.(*WlDisplayGetRegistryRequest)
	require.True(t, ok)
	assert.Equal(t, uint32(2), getRegistry.Registry)

	created := getRegistry.CreatedObjects()
	require.Len(t, created, 1)
	assert.Equal(t, uint32(2), created[0].ID)
	assert.Equal(t, WlRegistry, created[0].Type)
}

func TestBindRequestTripleEncoding(t *testing.T) {
	req := NewWlRegistryBindRequest(2, 6, "wl_forbidden", 1, 10)
	raw := req.Build()

	parsed, err := DecodeRequest(mapLookup{2: WlRegistry}, raw)
	require.NoError(t, err)

	bind, ok := parsed.(*WlRegistryBindRequest)
	require.True(t, ok)
	assert.Equal(t, uint32(6), bind.Name)
	assert.Equal(t, "wl_forbidden", bind.IdInterface)
	assert.Equal(t, uint32(1), bind.IdVersion)
	assert.Equal(t, uint32(10), bind.Id)

	// The interface-less new_id never contributes to CreatedObjects; the
	// state machine resolves the type through the advertised global.
	assert.Empty(t, bind.CreatedObjects())
}

func TestFDConsumption(t *testing.T) {
	req := NewWlShmCreatePoolRequest(4, 10, 1001, 4096)
	raw := req.Build()
	require.Len(t, raw.FDs(), 1)

	parsed, err := DecodeRequest(mapLookup{4: WlShm}, raw)
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.NumConsumedFDs())

	pool, ok := parsed.(*WlShmCreatePoolRequest)
	require.True(t, ok)
	assert.Equal(t, 1001, pool.Fd)
	assert.Equal(t, int32(4096), pool.Size)
	raw.TakeFDs()
}

func TestFDMissingIsMalformed(t *testing.T) {
	// A create_pool frame with no descriptor attached cannot parse.
	raw := wire.NewMsgBuilder().PutUint32(10).PutInt32(4096).Build(4, 0)

	_, err := DecodeRequest(mapLookup{4: WlShm}, raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestArrayArgument(t *testing.T) {
	keys := []byte{1, 0, 0, 0, 38, 0, 0, 0}
	ev := NewWlKeyboardEnterEvent(9, 77, 3, keys)
	raw := ev.Build()

	parsed, err := DecodeEvent(mapLookup{9: WlKeyboard}, raw)
	require.NoError(t, err)

	enter, ok := parsed.(*WlKeyboardEnterEvent)
	require.True(t, ok)
	assert.Equal(t, uint32(77), enter.Serial)
	assert.Equal(t, uint32(3), enter.Surface)
	assert.Equal(t, keys, enter.Keys)
}

func TestDestructorFlag(t *testing.T) {
	destroy := NewWlSurfaceDestroyRequest(3)
	assert.True(t, destroy.IsDestructor())

	commit := NewWlSurfaceCommitRequest(3)
	assert.False(t, commit.IsDestructor())

	// wl_callback.done is a destructor on the event side.
	done := NewWlCallbackDoneEvent(8, 0)
	assert.True(t, done.IsDestructor())
}

func TestDecodeUnknownOpcode(t *testing.T) {
	raw := wire.NewMsgBuilder().Build(2, 99)

	_, err := DecodeEvent(mapLookup{2: WlRegistry}, raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknown))
}

func TestDecodeUnknownObject(t *testing.T) {
	raw := wire.NewMsgBuilder().Build(55, 0)

	_, err := DecodeRequest(mapLookup{}, raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknown))
}

func TestDecodeMalformedPayload(t *testing.T) {
	// wl_registry.global with a truncated payload.
	raw := wire.NewMsgBuilder().PutUint32(5).Build(2, 0)

	_, err := DecodeEvent(mapLookup{2: WlRegistry}, raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestMessageJSON(t *testing.T) {
	ev := NewWlRegistryGlobalEvent(2, 5, "wl_compositor", 4)

	data, err := MessageJSON(ev)
	require.NoError(t, err)

	var decoded struct {
		Interface string         `json:"interface"`
		Message   string         `json:"message"`
		MsgType   string         `json:"msg_type"`
		ObjectID  uint32         `json:"object_id"`
		Args      map[string]any `json:"args"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "wl_registry", decoded.Interface)
	assert.Equal(t, "global", decoded.Message)
	assert.Equal(t, "event", decoded.MsgType)
	assert.Equal(t, uint32(2), decoded.ObjectID)
	assert.Equal(t, "wl_compositor", decoded.Args["interface"])
	assert.Equal(t, float64(5), decoded.Args["name"])
}

func TestErrorEventBuild(t *testing.T) {
	ev := NewWlDisplayErrorEvent(1, 10, 3, "Rejected by wl-mitm")
	raw := ev.Build()

	assert.Equal(t, uint32(1), raw.ObjectID)
	assert.Equal(t, uint16(0), raw.Opcode)

	parsed, err := DecodeEvent(mapLookup{1: WlDisplay}, raw)
	require.NoError(t, err)

	errEv, ok := parsed.(*WlDisplayErrorEvent)
	require.True(t, ok)
	assert.Equal(t, uint32(10), errEv.ObjectId)
	assert.Equal(t, uint32(3), errEv.Code)
	assert.Equal(t, "Rejected by wl-mitm", errEv.Message)
}
