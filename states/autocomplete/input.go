package autocomplete

import (
	"strings"

	"github.com/samber/lo"
)

// parseInput splits the partially typed line into components, flagging
// whether the trailing component is still being typed.
func parseInput(input string) []comp {
	isEndBlank := strings.HasSuffix(input, " ")

	parts := lo.Filter(strings.Split(input, " "), func(part string, _ int) bool {
		return part != ""
	})

	comps := make([]comp, 0, len(parts))
	currentFlagValue := false

	for _, part := range parts {
		// next part is a flag value, attach to last comp
		if currentFlagValue {
			comps[len(comps)-1].value = part
			currentFlagValue = false
			continue
		}
		if strings.HasPrefix(part, "-") {
			raw := strings.TrimLeft(part, "-")
			if tag, value, found := strings.Cut(raw, "="); found {
				comps = append(comps, comp{
					raw:   part,
					tag:   tag,
					value: value,
					cType: compFlag,
				})
			} else {
				currentFlagValue = true
				comps = append(comps, comp{
					raw:   part,
					tag:   raw,
					cType: compFlag,
				})
			}
			continue
		}
		comps = append(comps, comp{
			raw:   part,
			tag:   part,
			cType: compWord,
		})
	}

	// add empty comp if end with space, it becomes the suggestion target
	if isEndBlank {
		comps = append(comps, comp{cType: compWord})
	}

	return comps
}
