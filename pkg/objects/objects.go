// Package objects tracks the per-connection Wayland object namespace:
// which ids are alive, which are mid-destruction, which globals have been
// advertised, and the side-channel associations between surfaces, xdg
// surfaces and toplevels.
package objects

import "wlmitm/pkg/proto"

// DisplayObjectID is the fixed id of wl_display on every connection.
const DisplayObjectID uint32 = 1

// ClientIDMax is the upper bound of the client-allocated id range.
// Ids above it are allocated by the server.
const ClientIDMax uint32 = 0xFEFFFFFF

// ToplevelInfo caches what a toplevel has told us about itself.
type ToplevelInfo struct {
	Title string
	AppID string
}

// Registry is the object table of one proxied connection. It is not
// safe for concurrent use; the connection's state machine serialises
// access.
type Registry struct {
	live          map[uint32]proto.ObjectType
	halfDestroyed map[uint32]proto.ObjectType
	globals       map[uint32]proto.ObjectType

	// One side table per annotation kind.
	xdgSurfaces  map[uint32]uint32 // wl_surface id -> xdg_surface id
	toplevels    map[uint32]uint32 // xdg_surface id -> xdg_toplevel id
	toplevelInfo map[uint32]*ToplevelInfo

	lastToplevel uint32 // 0 = none seen yet
}

// NewRegistry returns a registry seeded with wl_display at id 1.
func NewRegistry() *Registry {
	r := &Registry{
		live:          make(map[uint32]proto.ObjectType),
		halfDestroyed: make(map[uint32]proto.ObjectType),
		globals:       make(map[uint32]proto.ObjectType),
		xdgSurfaces:   make(map[uint32]uint32),
		toplevels:     make(map[uint32]uint32),
		toplevelInfo:  make(map[uint32]*ToplevelInfo),
	}
	r.live[DisplayObjectID] = proto.WlDisplay
	return r
}

// IsServerID reports whether id falls in the server-allocated range.
func IsServerID(id uint32) bool {
	return id > ClientIDMax
}

// Record inserts id as a live object of the given interface, dropping any
// stale annotations a previous holder of the id left behind.
func (r *Registry) Record(id uint32, t proto.ObjectType) {
	r.live[id] = t
	delete(r.halfDestroyed, id)
	r.clearExtensions(id)
}

// Lookup resolves id to its interface, considering both live and
// half-destroyed objects: events still arrive on the latter.
func (r *Registry) Lookup(id uint32) (proto.ObjectType, bool) {
	if t, ok := r.live[id]; ok {
		return t, true
	}
	if t, ok := r.halfDestroyed[id]; ok {
		return t, true
	}
	return proto.ObjectType{}, false
}

// Known reports whether id is present in either the live or the
// half-destroyed table.
func (r *Registry) Known(id uint32) bool {
	_, ok := r.Lookup(id)
	return ok
}

// IsHalfDestroyed reports whether the client has destroyed id but the
// server has not yet acknowledged with wl_display.delete_id.
func (r *Registry) IsHalfDestroyed(id uint32) bool {
	_, ok := r.halfDestroyed[id]
	return ok
}

// Remove deletes id from the namespace. A client-initiated destruction of
// a client-range id only half-destroys it: the server may still emit
// events on it until delete_id. Everything else drops outright.
func (r *Registry) Remove(id uint32, fromClient bool) {
	if fromClient && !IsServerID(id) {
		if t, ok := r.live[id]; ok {
			delete(r.live, id)
			r.halfDestroyed[id] = t
		}
		return
	}

	delete(r.live, id)
	delete(r.halfDestroyed, id)
	r.clearExtensions(id)
}

// RecordGlobal remembers an advertised global that passed the filter.
func (r *Registry) RecordGlobal(name uint32, t proto.ObjectType) {
	r.globals[name] = t
}

// LookupGlobal resolves a global name to the interface it was advertised
// with.
func (r *Registry) LookupGlobal(name uint32) (proto.ObjectType, bool) {
	t, ok := r.globals[name]
	return t, ok
}

// RemoveGlobal forgets an advertised global.
func (r *Registry) RemoveGlobal(name uint32) {
	delete(r.globals, name)
}

func (r *Registry) clearExtensions(id uint32) {
	delete(r.xdgSurfaces, id)
	delete(r.toplevels, id)
	delete(r.toplevelInfo, id)
	if r.lastToplevel == id {
		r.lastToplevel = 0
	}
}

// SetXdgSurface associates a wl_surface with the xdg_surface created for
// it.
func (r *Registry) SetXdgSurface(surface, xdgSurface uint32) {
	r.xdgSurfaces[surface] = xdgSurface
}

// XdgSurface returns the xdg_surface associated with a wl_surface.
func (r *Registry) XdgSurface(surface uint32) (uint32, bool) {
	id, ok := r.xdgSurfaces[surface]
	return id, ok
}

// SetToplevel associates an xdg_surface with the xdg_toplevel assigned to
// its role, seeding an empty info cache for the toplevel.
func (r *Registry) SetToplevel(xdgSurface, toplevel uint32) {
	r.toplevels[xdgSurface] = toplevel
	r.toplevelInfo[toplevel] = &ToplevelInfo{}
}

// Toplevel returns the xdg_toplevel associated with an xdg_surface.
func (r *Registry) Toplevel(xdgSurface uint32) (uint32, bool) {
	id, ok := r.toplevels[xdgSurface]
	return id, ok
}

// ToplevelInfo returns the mutable info cache of a toplevel, if one has
// been seeded.
func (r *Registry) ToplevelInfo(toplevel uint32) (*ToplevelInfo, bool) {
	info, ok := r.toplevelInfo[toplevel]
	return info, ok
}

// ToplevelForSurface resolves wl_surface → xdg_surface → xdg_toplevel.
func (r *Registry) ToplevelForSurface(surface uint32) (uint32, bool) {
	xdgSurface, ok := r.xdgSurfaces[surface]
	if !ok {
		return 0, false
	}
	toplevel, ok := r.toplevels[xdgSurface]
	return toplevel, ok
}

// SetLastToplevel records the most recently focused toplevel.
func (r *Registry) SetLastToplevel(toplevel uint32) {
	r.lastToplevel = toplevel
}

// LastToplevel returns the most recently focused toplevel.
func (r *Registry) LastToplevel() (uint32, bool) {
	if r.lastToplevel == 0 {
		return 0, false
	}
	return r.lastToplevel, true
}
