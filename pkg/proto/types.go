// Package proto models parsed Wayland messages. The per-protocol message
// structs, parsers and builders in the generated_*.go files are produced by
// the protogen generator from protocol XML; this file holds the hand-written
// core they register into.
package proto

//go:generate go run wlmitm/cmd/wlmitm protogen -o . ../../protocols/wayland.xml ../../protocols/xdg-shell.xml ../../protocols/wlr-screencopy-unstable-v1.xml ../../protocols/wlr-data-control-unstable-v1.xml ../../protocols/virtual-keyboard-unstable-v1.xml ../../protocols/wlr-virtual-pointer-unstable-v1.xml

import (
	"errors"
	"fmt"

	"wlmitm/pkg/wire"
)

// MsgType distinguishes the two message directions.
type MsgType int

const (
	// Request flows client to server.
	Request MsgType = iota
	// Event flows server to client.
	Event
)

func (t MsgType) String() string {
	switch t {
	case Request:
		return "request"
	case Event:
		return "event"
	default:
		return fmt.Sprintf("MsgType(%d)", int(t))
	}
}

// interfaceDesc backs an ObjectType singleton.
type interfaceDesc struct {
	name string
}

// ObjectType identifies a Wayland interface. Each known interface has one
// process-wide singleton, so equality is identity and values are cheap map
// keys. The set is open: generated protocol files register additional types
// at init time.
type ObjectType struct {
	desc *interfaceDesc
}

// NewObjectType mints the singleton for the named interface. Only generated
// code and tests call this.
func NewObjectType(name string) ObjectType {
	return ObjectType{desc: &interfaceDesc{name: name}}
}

// Interface returns the interface's textual name, e.g. "wl_registry".
func (t ObjectType) Interface() string {
	if t.desc == nil {
		return ""
	}
	return t.desc.name
}

// IsValid reports whether t names a real interface (the zero value does not).
func (t ObjectType) IsValid() bool {
	return t.desc != nil
}

// NewObject is one (id, interface) pair created by a message.
type NewObject struct {
	ID   uint32
	Type ObjectType
}

// ParsedMessage is the uniform view the filter state machine has of any
// decoded message. Concrete generated types are reached with a type switch.
type ParsedMessage interface {
	// ObjectID is the object this message acts upon.
	ObjectID() uint32
	// Opcode within the interface and direction.
	Opcode() uint16
	// MsgType is the direction this message flows.
	MsgType() MsgType
	// ObjectType is the interface of the target object.
	ObjectType() ObjectType
	// MsgName is the request or event name, e.g. "get_registry".
	MsgName() string
	// IsDestructor reports whether this message destroys its target object.
	IsDestructor() bool
	// CreatedObjects lists (id, interface) pairs this message creates.
	// new_id arguments without a fixed interface are not included; the only
	// such message in the core set, wl_registry.bind, is handled on its own.
	CreatedObjects() []NewObject
	// NumConsumedFDs is how many ancillary descriptors parsing consumed,
	// so surplus descriptors can be returned to the decoder.
	NumConsumedFDs() int
	// Args returns the argument values for the JSON form handed to helper
	// commands.
	Args() map[string]any
}

// Builder is implemented by constructable messages that can frame
// themselves back into wire form.
type Builder interface {
	Build() *wire.RawMsg
}

// MsgDescriptor is the static metadata shared by every instance of one
// generated message type.
type MsgDescriptor struct {
	Type       ObjectType
	MsgType    MsgType
	Opcode     uint16
	Name       string
	Destructor bool
}

// msgBase carries the per-instance half of ParsedMessage; generated
// message structs embed it.
type msgBase struct {
	desc     *MsgDescriptor
	objectID uint32
	fds      int
	created  []NewObject
}

func newMsgBase(desc *MsgDescriptor, objectID uint32) msgBase {
	return msgBase{desc: desc, objectID: objectID}
}

func (b *msgBase) ObjectID() uint32             { return b.objectID }
func (b *msgBase) Opcode() uint16               { return b.desc.Opcode }
func (b *msgBase) MsgType() MsgType             { return b.desc.MsgType }
func (b *msgBase) ObjectType() ObjectType       { return b.desc.Type }
func (b *msgBase) MsgName() string              { return b.desc.Name }
func (b *msgBase) IsDestructor() bool           { return b.desc.Destructor }
func (b *msgBase) CreatedObjects() []NewObject  { return b.created }
func (b *msgBase) NumConsumedFDs() int          { return b.fds }

var (
	// ErrMalformed reports a message whose payload does not match its
	// declared argument list.
	ErrMalformed = errors.New("proto: malformed message")
	// ErrUnknown reports a message with no generated parser for its
	// (interface, opcode, direction) triple.
	ErrUnknown = errors.New("proto: unknown message")
)

// ObjectLookup resolves an object id to its interface. Implemented by the
// per-connection object registry.
type ObjectLookup interface {
	Lookup(id uint32) (ObjectType, bool)
}

// ParserFunc decodes a raw frame into a concrete parsed message.
type ParserFunc func(msg *wire.RawMsg) (ParsedMessage, error)

type msgKey struct {
	typ    ObjectType
	opcode uint16
}

var (
	eventParsers   = map[msgKey]ParserFunc{}
	requestParsers = map[msgKey]ParserFunc{}
	knownTypes     = map[string]ObjectType{}
)

// registerInterface records the singleton for a generated interface.
func registerInterface(name string, t ObjectType) {
	knownTypes[name] = t
}

// registerEvent installs the parser for one (interface, opcode) event.
func registerEvent(t ObjectType, opcode uint16, fn ParserFunc) {
	eventParsers[msgKey{typ: t, opcode: opcode}] = fn
}

// registerRequest installs the parser for one (interface, opcode) request.
func registerRequest(t ObjectType, opcode uint16, fn ParserFunc) {
	requestParsers[msgKey{typ: t, opcode: opcode}] = fn
}

// LookupInterface resolves a textual interface name to its singleton.
func LookupInterface(name string) (ObjectType, bool) {
	t, ok := knownTypes[name]
	return t, ok
}

// DecodeEvent parses a server-to-client frame against the target object's
// interface. It returns ErrUnknown when no parser covers the triple and
// ErrMalformed (wrapped) when the payload does not decode.
func DecodeEvent(objects ObjectLookup, msg *wire.RawMsg) (ParsedMessage, error) {
	return decode(objects, msg, eventParsers)
}

// DecodeRequest parses a client-to-server frame against the target object's
// interface.
func DecodeRequest(objects ObjectLookup, msg *wire.RawMsg) (ParsedMessage, error) {
	return decode(objects, msg, requestParsers)
}

func decode(objects ObjectLookup, msg *wire.RawMsg, parsers map[msgKey]ParserFunc) (ParsedMessage, error) {
	objType, ok := objects.Lookup(msg.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%w: no object %d", ErrUnknown, msg.ObjectID)
	}

	fn, ok := parsers[msgKey{typ: objType, opcode: msg.Opcode}]
	if !ok {
		return nil, fmt.Errorf("%w: %s opcode %d", ErrUnknown, objType.Interface(), msg.Opcode)
	}

	parsed, err := fn(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s opcode %d: %v", ErrMalformed, objType.Interface(), msg.Opcode, err)
	}
	return parsed, nil
}
