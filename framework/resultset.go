package framework

import "encoding/json"

type Format int32

const (
	FormatDefault Format = iota + 1
	FormatJSON
	FormatTable
)

var name2Format = map[string]Format{
	"default": FormatDefault,
	"json":    FormatJSON,
	"table":   FormatTable,
}

// ResultSet is the interface for command result set.
type ResultSet interface {
	PrintAs(Format) string
	Entities() any
}

// PresetResultSet implements Stringer and "memorize" output format.
type PresetResultSet struct {
	ResultSet
	format Format
}

func (rs *PresetResultSet) String() string {
	if rs.format < FormatDefault {
		return rs.PrintAs(FormatDefault)
	}
	return rs.PrintAs(rs.format)
}

func NewPresetResultSet(rs ResultSet, format Format) *PresetResultSet {
	return &PresetResultSet{
		ResultSet: rs,
		format:    format,
	}
}

// NameFormat name to format mapping tool function.
func NameFormat(name string) Format {
	f, ok := name2Format[name]
	if !ok {
		return FormatDefault
	}
	return f
}

// MarshalJSON is a helper function for JSON serialization.
// It returns a pretty-printed JSON string of the given value.
func MarshalJSON(v any) string {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(bs)
}
