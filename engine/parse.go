package engine

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/oss-tutor/npmtutor/catalog"
)

// DefaultProgram is the program name token stripped from input lines.
const DefaultProgram = "npm"

// ErrorKind tags the structural parse failures.
type ErrorKind int

const (
	// ErrorNone marks a valid parse result.
	ErrorNone ErrorKind = iota
	// ErrorEmptyCommand indicates the input tokenized to nothing.
	ErrorEmptyCommand
	// ErrorMissingCommand indicates only the program name was present.
	ErrorMissingCommand
	// ErrorUnknownCommand indicates the command token matched no catalog entry.
	ErrorUnknownCommand
)

// ParsedCommand is the structured result of parsing one input line.
// It is a fresh value per Parse call with no state beyond its fields.
type ParsedCommand struct {
	Valid   bool
	Command *catalog.CommandSpec
	// Flags holds canonical flag names, deduplicated, in first-seen order.
	Flags []string
	// Positionals holds non-flag tokens in input order.
	Positionals []string

	ErrKind    ErrorKind
	ErrMessage string
}

// CommandName returns the canonical command name, empty when invalid.
func (p ParsedCommand) CommandName() string {
	if p.Command == nil {
		return ""
	}
	return p.Command.Name
}

func invalidCommand(kind ErrorKind, msg string) ParsedCommand {
	return ParsedCommand{ErrKind: kind, ErrMessage: msg}
}

// Parse parses a raw user-typed line against the catalog, stripping a leading
// "npm" program token if present.
func Parse(input string, cat *catalog.Catalog) ParsedCommand {
	return ParseProgram(input, cat, DefaultProgram)
}

// ParseProgram is Parse with a configurable program name literal.
func ParseProgram(input string, cat *catalog.Catalog, program string) ParsedCommand {
	tokens := Tokenize(input)
	if len(tokens) == 0 {
		return invalidCommand(ErrorEmptyCommand, "empty command")
	}
	if strings.EqualFold(tokens[0], program) {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return invalidCommand(ErrorMissingCommand, fmt.Sprintf("missing command after %q", program))
	}

	spec, ok := cat.Resolve(tokens[0])
	if !ok {
		return invalidCommand(ErrorUnknownCommand, fmt.Sprintf("unknown command %q", tokens[0]))
	}

	var flags []string
	var positionals []string
	rest := tokens[1:]
	for i := 0; i < len(rest); i++ {
		token := rest[i]
		if !strings.HasPrefix(token, "-") {
			positionals = append(positionals, token)
			continue
		}

		if idx := strings.Index(token, "="); idx >= 0 {
			// embedded value form, the value is not modeled for matching
			name, _ := spec.ResolveFlag(token[:idx])
			flags = append(flags, name)
			continue
		}

		name, known := spec.ResolveFlag(token)
		flags = append(flags, name)
		if !known {
			// unknown flags are recorded verbatim, permissive policy
			continue
		}
		param, _ := spec.Parameter(name)
		// a value-requiring flag followed by another flag-like token behaves
		// as if the value were omitted; the next token classifies on its own
		if param.RequiresValue && i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
			i++
		}
	}

	return ParsedCommand{
		Valid:       true,
		Command:     spec,
		Flags:       lo.Uniq(flags),
		Positionals: positionals,
	}
}
