package state

import (
	"os"
	"os/exec"

	"wlmitm/pkg/config"
	"wlmitm/pkg/proto"
)

// Environment variables passed to ask/notify helper commands.
const (
	EnvMsgJSON          = "WL_MITM_MSG_JSON"
	EnvLastToplevelTitle = "WL_MITM_LAST_TOPLEVEL_TITLE"
	EnvLastToplevelAppID = "WL_MITM_LAST_TOPLEVEL_APP_ID"
)

// helperEnv is a snapshot of the focus-dependent context handed to helper
// commands, captured under the state lock so the helper sees the focus as
// of the request.
type helperEnv struct {
	haveToplevel bool
	title        string
	appID        string
}

func (s *State) snapshotHelperEnv() helperEnv {
	toplevel, ok := s.objects.LastToplevel()
	if !ok {
		return helperEnv{}
	}
	info, ok := s.objects.ToplevelInfo(toplevel)
	if !ok {
		return helperEnv{}
	}
	return helperEnv{haveToplevel: true, title: info.Title, appID: info.AppID}
}

// buildHelper prepares the helper invocation: positional arguments are
// (interface, method, description), context rides in the environment.
func (s *State) buildHelper(cmdPath string, rule *config.FilterRule, parsed proto.ParsedMessage, env helperEnv) *exec.Cmd {
	cmd := exec.Command(cmdPath, parsed.ObjectType().Interface(), parsed.MsgName(), rule.Desc)
	cmd.Env = os.Environ()

	if msgJSON, err := proto.MessageJSON(parsed); err == nil {
		cmd.Env = append(cmd.Env, EnvMsgJSON+"="+string(msgJSON))
	} else {
		s.log.Warn().Err(err).Msg("Failed to serialize message for helper command")
	}

	if env.haveToplevel {
		cmd.Env = append(cmd.Env,
			EnvLastToplevelTitle+"="+env.title,
			EnvLastToplevelAppID+"="+env.appID)
	}

	return cmd
}

// runHelper runs the command to completion and reports whether it allowed
// the request. A command that cannot be spawned or dies on a signal counts
// as a denial.
func (s *State) runHelper(cmdPath string, rule *config.FilterRule, parsed proto.ParsedMessage, env helperEnv) bool {
	cmd := s.buildHelper(cmdPath, rule, parsed, env)
	if err := cmd.Run(); err != nil {
		if _, isExit := err.(*exec.ExitError); !isExit {
			s.log.Error().Err(err).Str("cmd", cmdPath).Msg("Failed to run helper command")
		}
		return false
	}
	return true
}

// spawnHelper starts the command fire-and-forget.
func (s *State) spawnHelper(cmdPath string, rule *config.FilterRule, parsed proto.ParsedMessage, env helperEnv) {
	cmd := s.buildHelper(cmdPath, rule, parsed, env)
	if err := cmd.Start(); err != nil {
		s.log.Error().Err(err).Str("cmd", cmdPath).Msg("Failed to spawn helper command")
		return
	}
	go func() {
		// Reap the child; the exit status of a notify helper is irrelevant.
		_ = cmd.Wait()
	}()
}
