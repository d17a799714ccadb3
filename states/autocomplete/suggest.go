package autocomplete

import (
	"strings"

	"github.com/oss-tutor/npmtutor/catalog"
)

// SuggestCatalogCommands returns suggestions for a partially typed answer
// line: command names while the command is still being typed, then the
// resolved command's flags. Keys are suggestion texts, values descriptions.
func SuggestCatalogCommands(input string, program string, cat *catalog.Catalog) map[string]string {
	comps := parseInput(input)
	if len(comps) == 0 {
		return map[string]string{}
	}

	target := comps[len(comps)-1]
	leading := comps[:len(comps)-1]

	// a leading program name token is not a command
	if len(leading) > 0 && strings.EqualFold(leading[0].tag, program) {
		leading = leading[1:]
	} else if len(leading) == 0 && strings.EqualFold(target.tag, program) {
		return map[string]string{program: "program name"}
	}

	var spec *catalog.CommandSpec
	for _, c := range leading {
		if c.cType != compWord {
			continue
		}
		if resolved, ok := cat.Resolve(c.tag); ok && spec == nil {
			spec = resolved
		}
	}

	if spec == nil {
		return suggestCommands(target, cat)
	}
	return suggestFlags(target, spec)
}

func suggestCommands(target comp, cat *catalog.Catalog) map[string]string {
	result := make(map[string]string)
	if target.cType == compFlag {
		return result
	}
	for _, spec := range cat.Commands() {
		if strings.HasPrefix(spec.Name, target.tag) || target.cType == compAll {
			result[spec.Name] = spec.Description
		}
		for _, alias := range spec.Aliases {
			if target.tag != "" && strings.HasPrefix(alias, target.tag) {
				result[alias] = spec.Description
			}
		}
	}
	return result
}

func suggestFlags(target comp, spec *catalog.CommandSpec) map[string]string {
	result := make(map[string]string)
	if target.cType != compFlag && target.raw != "" {
		return result
	}
	for i := range spec.Parameters {
		param := &spec.Parameters[i]
		if target.raw == "" || strings.HasPrefix(param.Name, target.raw) {
			result[param.Name] = param.Description
		}
	}
	return result
}
