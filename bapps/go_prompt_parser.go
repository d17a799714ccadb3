package bapps

import (
	"os"
	"os/exec"

	"github.com/c-bata/go-prompt"
)

// tutorInputParser wraps prompt.PosixParser to change TearDown behavior.
type tutorInputParser struct {
	*prompt.PosixParser
}

// TearDown should be called after stopping input
func (t *tutorInputParser) TearDown() error {
	t.PosixParser.TearDown()
	rawModeOff := exec.Command("/bin/stty", "-raw", "echo")
	rawModeOff.Stdin = os.Stdin
	_ = rawModeOff.Run()
	rawModeOff.Wait()
	return nil
}

func newTutorInputParser() *tutorInputParser {
	return &tutorInputParser{
		PosixParser: prompt.NewStandardInputParser(),
	}
}
