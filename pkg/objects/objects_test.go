package objects

import (
	"testing"

	"wlmitm/pkg/proto"
)

func TestNewRegistrySeedsDisplay(t *testing.T) {
	r := NewRegistry()

	typ, ok := r.Lookup(DisplayObjectID)
	if !ok {
		t.Fatal("wl_display not seeded at id 1")
	}
	if typ != proto.WlDisplay {
		t.Errorf("id 1 is %q, want wl_display", typ.Interface())
	}
}

func TestRecordAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Record(2, proto.WlRegistry)

	typ, ok := r.Lookup(2)
	if !ok || typ != proto.WlRegistry {
		t.Errorf("Lookup(2) = %v, %v; want wl_registry", typ, ok)
	}
	if _, ok := r.Lookup(3); ok {
		t.Error("Lookup(3) should fail for unknown id")
	}
}

func TestTwoPhaseDestruction(t *testing.T) {
	r := NewRegistry()
	r.Record(3, proto.WlSurface)

	// Client destroys a client-range id: the object half-destroys.
	r.Remove(3, true)

	if !r.IsHalfDestroyed(3) {
		t.Fatal("client-range id should be half-destroyed after client removal")
	}
	// Events still decode against the old type.
	typ, ok := r.Lookup(3)
	if !ok || typ != proto.WlSurface {
		t.Errorf("half-destroyed Lookup(3) = %v, %v; want wl_surface", typ, ok)
	}

	// delete_id finishes the destruction.
	r.Remove(3, false)
	if r.IsHalfDestroyed(3) {
		t.Error("id still half-destroyed after server acknowledgement")
	}
	if _, ok := r.Lookup(3); ok {
		t.Error("id still resolvable after full destruction")
	}
}

func TestServerRangeDestructionIsImmediate(t *testing.T) {
	r := NewRegistry()
	serverID := uint32(0xFF000001)
	r.Record(serverID, proto.WlCallback)

	r.Remove(serverID, true)

	if r.IsHalfDestroyed(serverID) {
		t.Error("server-range id should never half-destroy")
	}
	if _, ok := r.Lookup(serverID); ok {
		t.Error("server-range id still resolvable after removal")
	}
}

func TestLiveAndHalfDestroyedDisjoint(t *testing.T) {
	r := NewRegistry()
	r.Record(5, proto.WlSurface)
	r.Remove(5, true)

	// Re-recording the id (new object, same id) must leave it in exactly
	// one table.
	r.Record(5, proto.WlRegion)
	if r.IsHalfDestroyed(5) {
		t.Error("id present in both live and half-destroyed")
	}
	typ, ok := r.Lookup(5)
	if !ok || typ != proto.WlRegion {
		t.Errorf("Lookup(5) = %v, %v; want wl_region", typ, ok)
	}
}

func TestGlobals(t *testing.T) {
	r := NewRegistry()
	r.RecordGlobal(7, proto.WlCompositor)

	typ, ok := r.LookupGlobal(7)
	if !ok || typ != proto.WlCompositor {
		t.Errorf("LookupGlobal(7) = %v, %v; want wl_compositor", typ, ok)
	}

	r.RemoveGlobal(7)
	if _, ok := r.LookupGlobal(7); ok {
		t.Error("global still resolvable after removal")
	}
}

func TestToplevelChain(t *testing.T) {
	r := NewRegistry()
	r.Record(10, proto.WlSurface)
	r.Record(11, proto.XdgSurface)
	r.Record(12, proto.XdgToplevel)

	r.SetXdgSurface(10, 11)
	r.SetToplevel(11, 12)

	toplevel, ok := r.ToplevelForSurface(10)
	if !ok || toplevel != 12 {
		t.Fatalf("ToplevelForSurface(10) = %d, %v; want 12", toplevel, ok)
	}

	info, ok := r.ToplevelInfo(12)
	if !ok {
		t.Fatal("toplevel info not seeded")
	}
	info.Title = "editor"
	info.AppID = "org.example.editor"

	r.SetLastToplevel(12)
	last, ok := r.LastToplevel()
	if !ok || last != 12 {
		t.Errorf("LastToplevel() = %d, %v; want 12", last, ok)
	}

	again, _ := r.ToplevelInfo(12)
	if again.Title != "editor" || again.AppID != "org.example.editor" {
		t.Errorf("toplevel info lost: %+v", again)
	}
}

func TestRemoveClearsExtensions(t *testing.T) {
	r := NewRegistry()
	r.Record(10, proto.WlSurface)
	r.Record(12, proto.XdgToplevel)
	r.SetXdgSurface(10, 11)
	r.SetToplevel(11, 12)
	r.SetLastToplevel(12)

	r.Remove(12, false)

	if _, ok := r.ToplevelInfo(12); ok {
		t.Error("toplevel info survived removal")
	}
	if _, ok := r.LastToplevel(); ok {
		t.Error("last toplevel still set after its removal")
	}
}

func TestIsServerID(t *testing.T) {
	tests := []struct {
		id     uint32
		server bool
	}{
		{1, false},
		{0xFEFFFFFF, false},
		{0xFF000000, true},
		{0xFFFFFFFF, true},
	}

	for _, tt := range tests {
		if got := IsServerID(tt.id); got != tt.server {
			t.Errorf("IsServerID(%#x) = %v, want %v", tt.id, got, tt.server)
		}
	}
}
