package states

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oss-tutor/npmtutor/engine"
	"github.com/oss-tutor/npmtutor/framework"
	"github.com/oss-tutor/npmtutor/states/autocomplete"
	"github.com/oss-tutor/npmtutor/tasks"
)

// TaskState runs one lesson: lines resolving as catalog commands are judged
// as answers, everything else falls through to meta commands.
type TaskState struct {
	*framework.CmdState

	home     *HomeState
	lesson   tasks.Lesson
	tasks    []tasks.Task
	current  int
	progress *tasks.Progress

	correct func(format string, a ...any)
	wrong   func(format string, a ...any)
}

// NewTaskState returns a task state for the lesson, shuffled per config.
func NewTaskState(home *HomeState, lesson tasks.Lesson) *TaskState {
	state := &TaskState{
		CmdState: framework.NewCmdState(fmt.Sprintf("lesson %d", lesson.ID)),
		home:     home,
		lesson:   lesson,
		tasks:    lesson.OrderedTasks(home.config.ShuffleTasks),
		progress: &tasks.Progress{},
	}
	if home.config.DisableColor {
		state.correct = func(format string, a ...any) { fmt.Printf(format+"\n", a...) }
		state.wrong = state.correct
	} else {
		state.correct = color.Green
		state.wrong = color.Red
	}
	state.SetupFn = func() {
		cmd := &cobra.Command{}
		state.UpdateState(cmd, state, state.SetupFn)
	}
	state.SetupCommands()
	return state
}

// ShowTask prints the current task prompt.
func (s *TaskState) ShowTask() {
	task := s.tasks[s.current]
	fmt.Printf("\nTask %d/%d: %s\n", s.current+1, len(s.tasks), task.Prompt)
}

// Process judges answer lines through the engine before meta command handling.
func (s *TaskState) Process(line string) (framework.State, error) {
	trimmed := strings.TrimSpace(line)
	if s.isAnswer(trimmed) {
		s.judge(trimmed)
		if s.done() {
			return s.finish(), nil
		}
		return s, nil
	}
	return s.CmdState.Process(line)
}

// isAnswer reports whether the line should be judged instead of dispatched
// as a meta command: either prefixed with the program name or resolving to a
// catalog command.
func (s *TaskState) isAnswer(line string) bool {
	tokens := engine.Tokenize(line)
	if len(tokens) == 0 {
		return false
	}
	if strings.EqualFold(tokens[0], s.home.config.ProgramName) {
		return true
	}
	_, ok := s.home.catalog.Resolve(tokens[0])
	return ok
}

func (s *TaskState) judge(line string) {
	task := s.tasks[s.current]
	cat := s.home.catalog
	program := s.home.config.ProgramName

	expected := engine.ParseProgram(task.Expected, cat, program)
	actual := engine.ParseProgram(line, cat, program)

	result := engine.Match(expected, actual)
	s.progress.RecordAnswer(result.Matches)

	if !result.Matches {
		reason := result.Reason
		if !actual.Valid {
			reason = actual.ErrMessage
		}
		s.wrong("✗ Not quite: %s", reason)
		return
	}

	s.correct("✓ Correct!")
	if output := actual.Command.MockOutput; output != "" {
		fmt.Println(output)
	}
	s.current++
	if !s.done() {
		s.ShowTask()
	}
}

func (s *TaskState) done() bool {
	return s.current >= len(s.tasks)
}

func (s *TaskState) finish() framework.State {
	s.correct("\nLesson %d complete!", s.lesson.ID)
	fmt.Println(s.progress.Table())
	return s.home
}

// Suggestions offers catalog commands and flags while answering.
func (s *TaskState) Suggestions(input string) map[string]string {
	result := autocomplete.SuggestCatalogCommands(input, s.home.config.ProgramName, s.home.catalog)
	for k, v := range s.CmdState.Suggestions(input) {
		result[k] = v
	}
	return result
}

type hintParam struct {
	framework.ParamBase `use:"hint" desc:"show a hint for the current task"`
}

// HintCommand prints the task hint.
func (s *TaskState) HintCommand(ctx context.Context, _ *hintParam) {
	task := s.tasks[s.current]
	if task.Hint == "" {
		fmt.Println("no hint for this task")
		return
	}
	fmt.Println("hint:", task.Hint)
}

type skipParam struct {
	framework.ParamBase `use:"skip" desc:"skip the current task"`
}

// SkipCommand moves past the current task, revealing the reference command.
func (s *TaskState) SkipCommand(ctx context.Context, _ *skipParam) {
	task := s.tasks[s.current]
	s.progress.RecordSkip()
	fmt.Println("skipped, reference command was:", task.Expected)
	s.current++
	if s.done() {
		s.SetNext(s.finish())
		return
	}
	s.ShowTask()
}

type progressParam struct {
	framework.ParamBase `use:"progress" desc:"show progress for this lesson"`
}

// ProgressCommand prints the session progress table.
func (s *TaskState) ProgressCommand(ctx context.Context, _ *progressParam) {
	fmt.Println(s.progress.Table())
}

type quitLessonParam struct {
	framework.ParamBase `use:"quit-lesson" desc:"abandon the lesson and return home"`
}

// QuitLessonCommand returns to the home state.
func (s *TaskState) QuitLessonCommand(ctx context.Context, _ *quitLessonParam) {
	s.SetNext(s.home)
}

type taskExitParam struct {
	framework.ParamBase `use:"exit" desc:"close the tutor"`
}

// ExitCommand moves to the ending state.
func (s *TaskState) ExitCommand(ctx context.Context, _ *taskExitParam) {
	s.SetNext(&framework.ExitState{})
}
