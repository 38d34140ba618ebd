// Package state holds the per-connection filter state machine: it consumes
// parsed messages from both directions, maintains the object registry, and
// decides what happens to every frame.
package state

import (
	"sync"

	"wlmitm/pkg/config"
	"wlmitm/pkg/logger"
	"wlmitm/pkg/objects"
	"wlmitm/pkg/proto"
	"wlmitm/pkg/wire"

	"github.com/rs/zerolog"
)

// RejectionMessage is the text carried by fabricated wl_display.error
// events.
const RejectionMessage = "Rejected by wl-mitm"

// VerdictKind is the state machine's decision for one message.
type VerdictKind int

const (
	// VerdictAllowed forwards the frame unchanged.
	VerdictAllowed VerdictKind = iota
	// VerdictFiltered silently drops the frame.
	VerdictFiltered
	// VerdictRejected drops the request and sends a fabricated
	// wl_display.error back to the client.
	VerdictRejected
	// VerdictTerminate tears the connection down.
	VerdictTerminate
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictAllowed:
		return "allowed"
	case VerdictFiltered:
		return "filtered"
	case VerdictRejected:
		return "rejected"
	case VerdictTerminate:
		return "terminate"
	default:
		return "unknown"
	}
}

// Verdict pairs a decision with the protocol error code used when the
// decision is VerdictRejected.
type Verdict struct {
	Kind      VerdictKind
	ErrorCode uint32
}

func Allowed() Verdict            { return Verdict{Kind: VerdictAllowed} }
func Filtered() Verdict           { return Verdict{Kind: VerdictFiltered} }
func Rejected(code uint32) Verdict { return Verdict{Kind: VerdictRejected, ErrorCode: code} }
func Terminate() Verdict          { return Verdict{Kind: VerdictTerminate} }

// State is the filter state machine of one proxied connection. Both relay
// directions feed it; registry access is serialised internally. Helper
// commands run outside the lock so an ask in one direction never stalls
// the other.
type State struct {
	mu      sync.Mutex
	cfg     *config.Config
	objects *objects.Registry
	log     zerolog.Logger
}

// New returns a state machine over a fresh object registry. connID tags
// every log line this connection produces.
func New(cfg *config.Config, connID string) *State {
	return &State{
		cfg:     cfg,
		objects: objects.NewRegistry(),
		log:     logger.GetLogger().With().Str("conn", connID).Logger(),
	}
}

// Objects exposes the registry for tests.
func (s *State) Objects() *objects.Registry {
	return s.objects
}

// RejectionError fabricates the wl_display.error event sent to the client
// when one of its requests is rejected.
func RejectionError(offendingID, code uint32) *wire.RawMsg {
	ev := proto.NewWlDisplayErrorEvent(objects.DisplayObjectID, offendingID, code, RejectionMessage)
	return ev.Build()
}

// registerCreated records every object a message creates, terminating on
// id reuse.
func (s *State) registerCreated(parsed proto.ParsedMessage) bool {
	for _, created := range parsed.CreatedObjects() {
		if s.objects.Known(created.ID) {
			s.log.Error().
				Uint32("obj_id", created.ID).
				Str("interface", created.Type.Interface()).
				Msg("Message creates an object id that is already in use")
			return false
		}
		s.objects.Record(created.ID, created.Type)
	}
	return true
}

// OnEvent runs the server-to-client pipeline for one raw frame. The
// returned parsed message is nil when decoding failed.
func (s *State) OnEvent(raw *wire.RawMsg) (Verdict, proto.ParsedMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parsed, err := proto.DecodeEvent(s.objects, raw)
	if err != nil {
		// Unknown events may carry unaccounted fds, throwing off fd
		// attribution for every later message.
		s.log.Error().Err(err).Uint32("obj_id", raw.ObjectID).Msg("Failed to decode event")
		return Terminate(), nil
	}

	if s.cfg.Logging.LogAllEvents {
		s.log.Info().
			Str("interface", parsed.ObjectType().Interface()).
			Str("event", parsed.MsgName()).
			Uint32("obj_id", parsed.ObjectID()).
			Msg("event")
	}

	if !s.registerCreated(parsed) {
		return Terminate(), parsed
	}

	if parsed.IsDestructor() {
		s.objects.Remove(parsed.ObjectID(), false)
	}

	verdict := s.handleEvent(parsed)

	if verdict.Kind != VerdictAllowed && verdict.Kind != VerdictTerminate && s.cfg.Filter.DryRun {
		s.log.Info().
			Str("interface", parsed.ObjectType().Interface()).
			Str("event", parsed.MsgName()).
			Str("verdict", verdict.Kind.String()).
			Msg("dry_run: would have blocked this event")
		verdict = Allowed()
	}

	return verdict, parsed
}

func (s *State) handleEvent(parsed proto.ParsedMessage) Verdict {
	switch ev := parsed.(type) {
	case *proto.WlRegistryGlobalEvent:
		t, known := proto.LookupInterface(ev.Interface)
		if !known {
			s.log.Info().
				Str("interface", ev.Interface).
				Uint32("name", ev.Name).
				Msg("Hiding unknown global from client")
			return Filtered()
		}
		if !s.cfg.GlobalAllowed(ev.Interface) {
			s.log.Info().
				Str("interface", ev.Interface).
				Uint32("name", ev.Name).
				Msg("Hiding disallowed global from client")
			return Filtered()
		}
		s.objects.RecordGlobal(ev.Name, t)
		return Allowed()

	case *proto.WlRegistryGlobalRemoveEvent:
		s.objects.RemoveGlobal(ev.Name)
		return Allowed()

	case *proto.WlDisplayDeleteIdEvent:
		s.objects.Remove(ev.Id, false)
		return Allowed()

	case *proto.WlPointerEnterEvent:
		s.noteFocus(ev.Surface)
		return Allowed()

	case *proto.WlKeyboardEnterEvent:
		s.noteFocus(ev.Surface)
		return Allowed()

	case *proto.WlTouchDownEvent:
		s.noteFocus(ev.Surface)
		return Allowed()

	default:
		return Allowed()
	}
}

// noteFocus records the toplevel behind a focused surface, if the client
// has built the surface → xdg_surface → xdg_toplevel chain we track.
func (s *State) noteFocus(surface uint32) {
	if toplevel, ok := s.objects.ToplevelForSurface(surface); ok {
		s.objects.SetLastToplevel(toplevel)
	}
}

// OnRequest runs the client-to-server pipeline for one raw frame. Any ask
// helper runs after the registry work, without holding the lock.
func (s *State) OnRequest(raw *wire.RawMsg) (Verdict, proto.ParsedMessage) {
	s.mu.Lock()
	parsed, verdict, rule, env := s.processRequest(raw)
	s.mu.Unlock()

	if rule != nil {
		verdict = s.applyRule(rule, parsed, env)
	}

	if verdict.Kind != VerdictAllowed && verdict.Kind != VerdictTerminate && s.cfg.Filter.DryRun {
		s.log.Info().
			Str("interface", parsed.ObjectType().Interface()).
			Str("request", parsed.MsgName()).
			Str("verdict", verdict.Kind.String()).
			Msg("dry_run: would have blocked this request")
		verdict = Allowed()
	}

	return verdict, parsed
}

// processRequest performs decoding, registry bookkeeping and rule lookup
// under the lock. When a rule applies, the returned verdict is provisional
// and applyRule decides the real one.
func (s *State) processRequest(raw *wire.RawMsg) (proto.ParsedMessage, Verdict, *config.FilterRule, helperEnv) {
	parsed, err := proto.DecodeRequest(s.objects, raw)
	if err != nil {
		s.log.Error().Err(err).Uint32("obj_id", raw.ObjectID).Msg("Failed to decode request")
		return nil, Terminate(), nil, helperEnv{}
	}

	if s.cfg.Logging.LogAllRequests {
		s.log.Info().
			Str("interface", parsed.ObjectType().Interface()).
			Str("request", parsed.MsgName()).
			Uint32("obj_id", parsed.ObjectID()).
			Msg("request")
	}

	if s.objects.IsHalfDestroyed(parsed.ObjectID()) {
		s.log.Error().
			Uint32("obj_id", parsed.ObjectID()).
			Str("interface", parsed.ObjectType().Interface()).
			Msg("Client sent a request on an object it has already destroyed")
		return parsed, Terminate(), nil, helperEnv{}
	}

	if !s.registerCreated(parsed) {
		return parsed, Terminate(), nil, helperEnv{}
	}

	if parsed.IsDestructor() {
		s.objects.Remove(parsed.ObjectID(), true)
	}

	switch req := parsed.(type) {
	case *proto.WlRegistryBindRequest:
		t, ok := s.objects.LookupGlobal(req.Name)
		if !ok || t.Interface() != req.IdInterface {
			s.log.Error().
				Uint32("name", req.Name).
				Str("interface", req.IdInterface).
				Msg("Client tried to bind a global that was never advertised with this interface")
			return parsed, Terminate(), nil, helperEnv{}
		}
		s.log.Debug().
			Str("interface", req.IdInterface).
			Uint32("obj_id", req.Id).
			Msg("Client binding global")
		s.objects.Record(req.Id, t)

	case *proto.XdgWmBaseGetXdgSurfaceRequest:
		s.objects.SetXdgSurface(req.Surface, req.Id)

	case *proto.XdgSurfaceGetToplevelRequest:
		s.objects.SetToplevel(req.ObjectID(), req.Id)

	case *proto.XdgToplevelSetTitleRequest:
		if info, ok := s.objects.ToplevelInfo(req.ObjectID()); ok {
			info.Title = req.Title
		}

	case *proto.XdgToplevelSetAppIdRequest:
		if info, ok := s.objects.ToplevelInfo(req.ObjectID()); ok {
			info.AppID = req.AppId
		}
	}

	rule := s.cfg.FindRule(parsed.ObjectType().Interface(), parsed.MsgName())
	if rule == nil {
		return parsed, Allowed(), nil, helperEnv{}
	}
	return parsed, Allowed(), rule, s.snapshotHelperEnv()
}

// blockedVerdict maps a matched rule to the verdict used when the request
// does not go through.
func blockedVerdict(rule *config.FilterRule) Verdict {
	if rule.BlockType == config.BlockTypeReject {
		return Rejected(rule.ErrorCode)
	}
	return Filtered()
}

// applyRule resolves a matched rule to the final verdict, running any
// helper command. Lock is not held here.
func (s *State) applyRule(rule *config.FilterRule, parsed proto.ParsedMessage, env helperEnv) Verdict {
	iface := parsed.ObjectType().Interface()
	method := parsed.MsgName()

	switch rule.Action {
	case config.ActionBlock:
		s.log.Info().
			Str("interface", iface).
			Str("request", method).
			Str("block_type", string(rule.BlockType)).
			Msg("Blocked request")
		return blockedVerdict(rule)

	case config.ActionAsk:
		if s.cfg.Exec.AskCmd == "" {
			s.log.Warn().
				Str("interface", iface).
				Str("request", method).
				Msg("Rule says ask but no ask_cmd configured; blocking")
			return blockedVerdict(rule)
		}
		if s.runHelper(s.cfg.Exec.AskCmd, rule, parsed, env) {
			s.log.Info().
				Str("interface", iface).
				Str("request", method).
				Msg("Request allowed by ask_cmd")
			return Allowed()
		}
		s.log.Info().
			Str("interface", iface).
			Str("request", method).
			Str("block_type", string(rule.BlockType)).
			Msg("Request denied by ask_cmd")
		return blockedVerdict(rule)

	case config.ActionNotify:
		if s.cfg.Exec.NotifyCmd != "" {
			s.spawnHelper(s.cfg.Exec.NotifyCmd, rule, parsed, env)
		}
		return Allowed()

	default:
		return Allowed()
	}
}
