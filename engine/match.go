package engine

import "github.com/samber/lo"

// MatchResult is the verdict of comparing two parsed commands.
type MatchResult struct {
	Matches bool   `json:"matches"`
	Reason  string `json:"reason,omitempty"`
}

// Divergence reasons reported to the user.
const (
	ReasonInvalidCommand  = "invalid command"
	ReasonDifferentCmd    = "different command"
	ReasonParamCount      = "different number of parameters"
	ReasonParamNames      = "different parameters"
	ReasonPositionalCount = "different number of packages"
	ReasonPositionalNames = "different package names"
)

// shortcutCommands are interchangeable with `run <name>` in both directions.
var shortcutCommands = []string{"test", "start", "stop", "restart"}

// Match decides whether two parsed commands denote the same operation,
// short-circuiting on the first point of divergence.
func Match(expected, actual ParsedCommand) MatchResult {
	if !expected.Valid || !actual.Valid {
		return MatchResult{Reason: ReasonInvalidCommand}
	}

	// lifecycle shortcut equivalence wins over every other check
	if isShortcutRun(expected, actual) || isRunShortcut(expected, actual) {
		return MatchResult{Matches: true}
	}

	if expected.CommandName() != actual.CommandName() {
		return MatchResult{Reason: ReasonDifferentCmd}
	}

	if len(expected.Flags) != len(actual.Flags) {
		return MatchResult{Reason: ReasonParamCount}
	}
	if !lo.Every(expected.Flags, actual.Flags) {
		return MatchResult{Reason: ReasonParamNames}
	}

	if len(expected.Positionals) != len(actual.Positionals) {
		return MatchResult{Reason: ReasonPositionalCount}
	}
	if !sameMultiset(expected.Positionals, actual.Positionals) {
		return MatchResult{Reason: ReasonPositionalNames}
	}

	return MatchResult{Matches: true}
}

// isShortcutRun reports expected being a shortcut command while actual spells
// it as `run <name>`.
func isShortcutRun(expected, actual ParsedCommand) bool {
	name := expected.CommandName()
	return lo.Contains(shortcutCommands, name) &&
		actual.CommandName() == "run" &&
		lo.Contains(actual.Positionals, name)
}

// isRunShortcut is the symmetric direction, expected spelled as `run <name>`
// with a single positional naming a shortcut command.
func isRunShortcut(expected, actual ParsedCommand) bool {
	if expected.CommandName() != "run" || len(expected.Positionals) != 1 {
		return false
	}
	name := expected.Positionals[0]
	return lo.Contains(shortcutCommands, name) && actual.CommandName() == name
}

func sameMultiset(a, b []string) bool {
	want := lo.CountValues(a)
	got := lo.CountValues(b)
	if len(want) != len(got) {
		return false
	}
	for v, n := range want {
		if got[v] != n {
			return false
		}
	}
	return true
}
