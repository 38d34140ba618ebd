package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	t.Setenv("WAYLAND_DISPLAY", "")

	path := writeConfig(t, `
[socket]
listen = "wayland-mitm"
upstream = "wayland-0"

[logging]
log_all_requests = true
log_level = "debug"

[exec]
ask_cmd = "/usr/bin/wl-ask"

[filter]
allowed_globals = ["wl_compositor", "wl_shm"]
dry_run = false

[[filter.requests]]
interface = "zwlr_screencopy_manager_v1"
requests = ["capture_output", "capture_output_region"]
action = "ask"
desc = "capture your screen"
block_type = "reject"
error_code = 3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Socket.Listen != "wayland-mitm" {
		t.Errorf("Expected listen 'wayland-mitm', got '%s'", cfg.Socket.Listen)
	}
	if !cfg.Logging.LogAllRequests {
		t.Error("Expected log_all_requests to be true")
	}
	if cfg.Logging.LogLevel != "debug" {
		t.Errorf("Expected log_level 'debug', got '%s'", cfg.Logging.LogLevel)
	}
	if cfg.Exec.AskCmd != "/usr/bin/wl-ask" {
		t.Errorf("Expected ask_cmd '/usr/bin/wl-ask', got '%s'", cfg.Exec.AskCmd)
	}
	if !cfg.GlobalAllowed("wl_compositor") {
		t.Error("Expected wl_compositor to be allowed")
	}
	if cfg.GlobalAllowed("zwlr_screencopy_manager_v1") {
		t.Error("Expected zwlr_screencopy_manager_v1 to not be allowed")
	}

	rule := cfg.FindRule("zwlr_screencopy_manager_v1", "capture_output")
	if rule == nil {
		t.Fatal("Expected a rule for zwlr_screencopy_manager_v1.capture_output")
	}
	if rule.Action != ActionAsk {
		t.Errorf("Expected action ask, got %q", rule.Action)
	}
	if rule.BlockType != BlockTypeReject {
		t.Errorf("Expected block_type reject, got %q", rule.BlockType)
	}
	if rule.ErrorCode != 3 {
		t.Errorf("Expected error_code 3, got %d", rule.ErrorCode)
	}
	if cfg.FindRule("zwlr_screencopy_manager_v1", "destroy") != nil {
		t.Error("Expected no rule for zwlr_screencopy_manager_v1.destroy")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	t.Setenv("WAYLAND_DISPLAY", "wayland-7")

	path := writeConfig(t, `
[socket]
listen = "wayland-mitm"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Socket.Upstream != "wayland-7" {
		t.Errorf("Expected upstream from WAYLAND_DISPLAY, got '%s'", cfg.Socket.Upstream)
	}
	if cfg.Logging.LogLevel != "info" {
		t.Errorf("Expected default log_level 'info', got '%s'", cfg.Logging.LogLevel)
	}
}

func TestLoad_DefaultUpstreamFallback(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	t.Setenv("WAYLAND_DISPLAY", "")

	path := writeConfig(t, `
[socket]
listen = "wayland-mitm"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Socket.Upstream != "wayland-1" {
		t.Errorf("Expected fallback upstream 'wayland-1', got '%s'", cfg.Socket.Upstream)
	}
}

func TestLoad_SamePathRejected(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	path := writeConfig(t, `
[socket]
listen = "wayland-0"
upstream = "wayland-0"
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for identical listen/upstream paths")
	}
}

func TestLoad_BadAction(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	path := writeConfig(t, `
[socket]
listen = "wayland-mitm"

[[filter.requests]]
interface = "wl_shm"
requests = ["create_pool"]
action = "explode"
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for unknown action")
	}
}

func TestLoad_DefaultBlockType(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	path := writeConfig(t, `
[socket]
listen = "wayland-mitm"

[[filter.requests]]
interface = "wl_shm"
requests = ["create_pool"]
action = "block"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	rule := cfg.FindRule("wl_shm", "create_pool")
	if rule == nil {
		t.Fatal("Expected a rule for wl_shm.create_pool")
	}
	if rule.BlockType != BlockTypeIgnore {
		t.Errorf("Expected default block_type ignore, got %q", rule.BlockType)
	}
}

func TestSocketPathResolution(t *testing.T) {
	tests := []struct {
		name       string
		runtimeDir string
		socket     string
		expected   string
	}{
		{"relative", "/run/user/1234", "wayland-0", "/run/user/1234/wayland-0"},
		{"absolute", "/run/user/1234", "/tmp/wl.sock", "/tmp/wl.sock"},
		{"no runtime dir", "", "wayland-0", "/run/user/1000/wayland-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_RUNTIME_DIR", tt.runtimeDir)
			got := resolveSocketPath(tt.socket)
			if got != tt.expected {
				t.Errorf("resolveSocketPath(%q) = %q, want %q", tt.socket, got, tt.expected)
			}
		})
	}
}
