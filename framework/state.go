package framework

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/oss-tutor/npmtutor/common"
	"github.com/oss-tutor/npmtutor/engine"
)

// State is the interface for application session state.
type State interface {
	Ctx() (context.Context, context.CancelFunc)
	Label() string
	Process(cmd string) (State, error)
	Close()
	SetNext(state State)
	Suggestions(input string) map[string]string
	SetupCommands()
	IsEnding() bool
}

// SetupFunc function type for setup commands.
type SetupFunc func()

// CmdState wraps a cobra command tree as State. Tutor states embed it for
// their meta commands and override Process for answer handling.
type CmdState struct {
	label     string
	RootCmd   *cobra.Command
	nextState State
	signal    <-chan os.Signal

	SetupFn func()
}

// NewCmdState returns a CmdState with provided label.
func NewCmdState(label string) *CmdState {
	return &CmdState{
		label: label,
	}
}

// SetLabel updates label value.
func (s *CmdState) SetLabel(label string) {
	s.label = label
}

// UpdateState installs the command tree built from state methods.
func (s *CmdState) UpdateState(cmd *cobra.Command, state State, fn SetupFunc) {
	s.MergeFunctionCommands(cmd, state)
	s.RootCmd = cmd
	s.SetupFn = fn
}

// Ctx returns context which bind to sigint handler.
func (s *CmdState) Ctx() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer cancel()
		select {
		case <-s.signal:
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

// SetupCommands perform command setup & reset.
func (s *CmdState) SetupCommands() {
	if s.SetupFn != nil {
		s.SetupFn()
	}
}

// MergeFunctionCommands parses all member methods for provided state and add it into cmd.
func (s *CmdState) MergeFunctionCommands(cmd *cobra.Command, state State) {
	items := parseFunctionCommands(state)
	for _, item := range items {
		target := cmd
		for _, kw := range item.kws {
			node, _, err := target.Find([]string{kw})
			if err != nil || (node != nil && node.Use == "") {
				newNode := &cobra.Command{Use: kw}
				target.AddCommand(newNode)
				node = newNode
			}
			target = node
		}
		target.AddCommand(item.cmd)
	}
}

// Label returns the display label for current cli.
func (s *CmdState) Label() string {
	return s.label
}

// Suggestions returns meta commands matching the typed prefix.
func (s *CmdState) Suggestions(input string) map[string]string {
	result := make(map[string]string)
	if s.RootCmd == nil || strings.Contains(strings.TrimSpace(input), " ") {
		return result
	}
	prefix := strings.TrimSpace(input)
	for _, cmd := range s.RootCmd.Commands() {
		name := strings.Split(cmd.Use, " ")[0]
		if strings.HasPrefix(name, prefix) {
			result[name] = cmd.Short
		}
	}
	return result
}

// Process is the main entry for processing meta commands.
func (s *CmdState) Process(cmd string) (State, error) {
	// quote-aware splitting so meta commands accept quoted values
	args := engine.Tokenize(cmd)

	target, _, err := s.RootCmd.Find(args)
	if err == nil && target != nil {
		defer target.SetArgs(nil)
	}

	signal.Reset(syscall.SIGINT)
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT)
	s.signal = c

	s.RootCmd.SetArgs(args)
	err = s.RootCmd.Execute()
	signal.Reset(syscall.SIGINT)

	if errors.Is(err, common.ExitErr) {
		return s.nextState, common.ExitErr
	}
	if err != nil {
		return s, err
	}
	if s.nextState != nil {
		nextState := s.nextState
		s.nextState = nil
		if _, ok := nextState.(*ExitState); ok {
			return nextState, common.ExitErr
		}
		return nextState, nil
	}

	return s, nil
}

// SetNext simple method to set next state.
func (s *CmdState) SetNext(state State) {
	s.nextState = state
}

// NextState returns the pending next state if any.
func (s *CmdState) NextState() State {
	return s.nextState
}

// Close empty method to implement State.
func (s *CmdState) Close() {}

// IsEnding returns false for regular states.
func (s *CmdState) IsEnding() bool { return false }

// ExitState simple exit state.
type ExitState struct {
	CmdState
}

// SetupCommands setups the command.
// also called after each command run to reset flag values.
func (s *ExitState) SetupCommands() {}

// IsEnding returns true for exit State
func (s *ExitState) IsEnding() bool { return true }
