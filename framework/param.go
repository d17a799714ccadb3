package framework

// CmdParam is the interface definition for command parameter.
type CmdParam interface {
	ParseArgs(args []string) error
	Desc() (string, string)
}

// ParamBase implements CmdParam for commands without positional args.
type ParamBase struct{}

func (pb ParamBase) ParseArgs(args []string) error {
	return nil
}

func (pb ParamBase) Desc() (string, string) {
	return "", ""
}
