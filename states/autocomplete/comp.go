package autocomplete

type compType int

const (
	compAll compType = iota
	compWord
	compFlag
)

// comp is one parsed component of the line being typed.
type comp struct {
	// raw is the complete value before component parsing
	raw string
	// tag is the command or positional word, or the flag name without dashes
	tag string
	// value is the flag value if any
	value string
	// cType marks the comp as word or flag
	cType compType
}
