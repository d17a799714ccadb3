package catalog

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrDuplicateCommand indicates two command specs share a name or alias.
	ErrDuplicateCommand = errors.New("duplicate command name or alias")
	// ErrDuplicateParameter indicates two parameters of one command share a flag spelling.
	ErrDuplicateParameter = errors.New("duplicate parameter name or alias")
)

// ParameterSpec describes one flag a command accepts.
type ParameterSpec struct {
	// Name is the canonical flag spelling, e.g. "--save-dev".
	Name string `yaml:"name"`
	// Aliases are alternate spellings resolving to Name, e.g. "-D".
	Aliases []string `yaml:"aliases"`
	// RequiresValue marks flags that consume the following token as value.
	RequiresValue bool `yaml:"requiresValue"`
	Description   string `yaml:"description"`
}

// CommandSpec describes one command, its aliases and accepted parameters.
// Specs are immutable once the catalog is built.
type CommandSpec struct {
	// Name is the canonical command identifier, e.g. "install".
	Name        string          `yaml:"name"`
	Aliases     []string        `yaml:"aliases"`
	Description string          `yaml:"description"`
	Parameters  []ParameterSpec `yaml:"parameters"`
	// MockOutput is the canned output shown when a task is solved.
	MockOutput string `yaml:"mockOutput"`
}

// ResolveFlag maps a flag spelling to its canonical parameter name.
// Lookup is case-insensitive, canonical names take precedence over aliases.
// The second return reports whether the flag is declared for this command.
func (s *CommandSpec) ResolveFlag(flag string) (string, bool) {
	for i := range s.Parameters {
		if strings.EqualFold(s.Parameters[i].Name, flag) {
			return s.Parameters[i].Name, true
		}
	}
	for i := range s.Parameters {
		for _, alias := range s.Parameters[i].Aliases {
			if strings.EqualFold(alias, flag) {
				return s.Parameters[i].Name, true
			}
		}
	}
	return flag, false
}

// Parameter returns the parameter spec for a canonical flag name.
func (s *CommandSpec) Parameter(name string) (*ParameterSpec, bool) {
	for i := range s.Parameters {
		if s.Parameters[i].Name == name {
			return &s.Parameters[i], true
		}
	}
	return nil, false
}

// Catalog is the read-only lookup table of command specs.
// Built once, safe for concurrent use afterwards.
type Catalog struct {
	commands []*CommandSpec
	byName   map[string]*CommandSpec
	byAlias  map[string]*CommandSpec
}

// New builds a catalog from specs, validating that command names and aliases
// stay disjoint across the whole table and that parameter spellings stay
// disjoint within each command.
func New(specs []*CommandSpec) (*Catalog, error) {
	c := &Catalog{
		commands: specs,
		byName:   make(map[string]*CommandSpec),
		byAlias:  make(map[string]*CommandSpec),
	}
	for _, spec := range specs {
		key := strings.ToLower(spec.Name)
		if _, ok := c.byName[key]; ok {
			return nil, errors.Wrapf(ErrDuplicateCommand, "command %q", spec.Name)
		}
		if _, ok := c.byAlias[key]; ok {
			return nil, errors.Wrapf(ErrDuplicateCommand, "command %q", spec.Name)
		}
		c.byName[key] = spec
		for _, alias := range spec.Aliases {
			akey := strings.ToLower(alias)
			if _, ok := c.byName[akey]; ok {
				return nil, errors.Wrapf(ErrDuplicateCommand, "alias %q of command %q", alias, spec.Name)
			}
			if _, ok := c.byAlias[akey]; ok {
				return nil, errors.Wrapf(ErrDuplicateCommand, "alias %q of command %q", alias, spec.Name)
			}
			c.byAlias[akey] = spec
		}
		if err := validateParameters(spec); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func validateParameters(spec *CommandSpec) error {
	seen := make(map[string]struct{})
	for _, param := range spec.Parameters {
		spellings := append([]string{param.Name}, param.Aliases...)
		for _, spelling := range spellings {
			key := strings.ToLower(spelling)
			if _, ok := seen[key]; ok {
				return errors.Wrapf(ErrDuplicateParameter, "flag %q of command %q", spelling, spec.Name)
			}
			seen[key] = struct{}{}
		}
	}
	return nil
}

// Resolve maps a command token to its spec. Canonical names win over aliases,
// both compared case-insensitively.
func (c *Catalog) Resolve(name string) (*CommandSpec, bool) {
	key := strings.ToLower(name)
	if spec, ok := c.byName[key]; ok {
		return spec, true
	}
	if spec, ok := c.byAlias[key]; ok {
		return spec, true
	}
	return nil, false
}

// Commands returns all specs in declaration order.
func (c *Catalog) Commands() []*CommandSpec {
	return c.commands
}
