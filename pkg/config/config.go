package config

import (
	"fmt"
	"os"
	"path/filepath"

	"wlmitm/pkg/errors"

	"github.com/BurntSushi/toml"
)

const (
	DefaultConfigPath     = "config.toml"
	defaultRuntimeDir     = "/run/user/1000"
	defaultUpstreamSocket = "wayland-1"
)

// FilterAction is what to do when a request matches a filter rule.
type FilterAction string

const (
	// ActionBlock unconditionally blocks the request.
	ActionBlock FilterAction = "block"
	// ActionAsk runs exec.ask_cmd and blocks the request unless it exits 0.
	ActionAsk FilterAction = "ask"
	// ActionNotify runs exec.notify_cmd fire-and-forget and allows the request.
	ActionNotify FilterAction = "notify"
)

// BlockType selects how a blocked request is reflected back to the client.
type BlockType string

const (
	// BlockTypeIgnore silently drops the request.
	BlockTypeIgnore BlockType = "ignore"
	// BlockTypeReject drops the request and fabricates a wl_display.error
	// event carrying ErrorCode.
	BlockTypeReject BlockType = "reject"
)

// Config holds the complete proxy configuration.
type Config struct {
	Socket  SocketConfig  `toml:"socket"`
	Logging LoggingConfig `toml:"logging"`
	Exec    ExecConfig    `toml:"exec"`
	Filter  FilterConfig  `toml:"filter"`
}

type SocketConfig struct {
	Listen   string `toml:"listen"`
	Upstream string `toml:"upstream"`
}

type LoggingConfig struct {
	LogAllRequests bool   `toml:"log_all_requests"`
	LogAllEvents   bool   `toml:"log_all_events"`
	LogLevel       string `toml:"log_level"`
}

type ExecConfig struct {
	AskCmd    string `toml:"ask_cmd"`
	NotifyCmd string `toml:"notify_cmd"`
}

type FilterConfig struct {
	AllowedGlobals []string      `toml:"allowed_globals"`
	DryRun         bool          `toml:"dry_run"`
	Requests       []FilterRule  `toml:"requests"`

	// Derived lookup structures, built by Load.
	allowedGlobals map[string]struct{}
	rulesByIface   map[string][]*FilterRule
}

// FilterRule matches a set of requests on one interface to an action.
type FilterRule struct {
	Interface string       `toml:"interface"`
	Requests  []string     `toml:"requests"`
	Action    FilterAction `toml:"action"`
	Desc      string       `toml:"desc"`
	BlockType BlockType    `toml:"block_type"`
	ErrorCode uint32       `toml:"error_code"`

	requests map[string]struct{}
}

// Matches reports whether the rule covers the given request name.
func (r *FilterRule) Matches(request string) bool {
	_, ok := r.requests[request]
	return ok
}

// Load reads, parses and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeFileOperation, "failed to read config file", err)
	}

	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	buildIndexes(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Socket.Upstream == "" {
		cfg.Socket.Upstream = defaultUpstream()
	}
	if cfg.Logging.LogLevel == "" {
		cfg.Logging.LogLevel = "info"
	}
	for i := range cfg.Filter.Requests {
		if cfg.Filter.Requests[i].BlockType == "" {
			cfg.Filter.Requests[i].BlockType = BlockTypeIgnore
		}
	}
}

func defaultUpstream() string {
	if display := os.Getenv("WAYLAND_DISPLAY"); display != "" {
		return display
	}
	return defaultUpstreamSocket
}

func validate(cfg *Config) error {
	if cfg.Socket.Listen == "" {
		return errors.ConfigError("socket.listen not configured")
	}

	if cfg.ListenSocketPath() == cfg.UpstreamSocketPath() {
		return errors.ValidationError(
			fmt.Sprintf("listen and upstream sockets resolve to the same path %q", cfg.ListenSocketPath()))
	}

	for i := range cfg.Filter.Requests {
		r := &cfg.Filter.Requests[i]
		if r.Interface == "" {
			return errors.ConfigError("filter rule without an interface")
		}
		switch r.Action {
		case ActionBlock, ActionAsk, ActionNotify:
		default:
			return errors.ConfigError(
				fmt.Sprintf("filter rule for %s has unknown action %q", r.Interface, r.Action))
		}
		switch r.BlockType {
		case BlockTypeIgnore, BlockTypeReject:
		default:
			return errors.ConfigError(
				fmt.Sprintf("filter rule for %s has unknown block_type %q", r.Interface, r.BlockType))
		}
	}

	return nil
}

func buildIndexes(cfg *Config) {
	cfg.Filter.allowedGlobals = make(map[string]struct{}, len(cfg.Filter.AllowedGlobals))
	for _, g := range cfg.Filter.AllowedGlobals {
		cfg.Filter.allowedGlobals[g] = struct{}{}
	}

	cfg.Filter.rulesByIface = make(map[string][]*FilterRule)
	for i := range cfg.Filter.Requests {
		r := &cfg.Filter.Requests[i]
		r.requests = make(map[string]struct{}, len(r.Requests))
		for _, name := range r.Requests {
			r.requests[name] = struct{}{}
		}
		cfg.Filter.rulesByIface[r.Interface] = append(cfg.Filter.rulesByIface[r.Interface], r)
	}
}

// GlobalAllowed reports whether advertisement of the given interface is
// permitted by filter.allowed_globals.
func (c *Config) GlobalAllowed(interfaceName string) bool {
	_, ok := c.Filter.allowedGlobals[interfaceName]
	return ok
}

// FindRule returns the first filter rule covering (interface, request),
// or nil when the request is unfiltered.
func (c *Config) FindRule(interfaceName, request string) *FilterRule {
	for _, r := range c.Filter.rulesByIface[interfaceName] {
		if r.Matches(request) {
			return r
		}
	}
	return nil
}

// ListenSocketPath resolves socket.listen against XDG_RUNTIME_DIR.
func (c *Config) ListenSocketPath() string {
	return resolveSocketPath(c.Socket.Listen)
}

// UpstreamSocketPath resolves socket.upstream against XDG_RUNTIME_DIR.
func (c *Config) UpstreamSocketPath() string {
	return resolveSocketPath(c.Socket.Upstream)
}

func resolveSocketPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		runtimeDir = defaultRuntimeDir
	}
	return filepath.Join(runtimeDir, p)
}
