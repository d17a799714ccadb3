package states

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/oss-tutor/npmtutor/catalog"
	"github.com/oss-tutor/npmtutor/common"
	"github.com/oss-tutor/npmtutor/configs"
	"github.com/oss-tutor/npmtutor/engine"
	"github.com/oss-tutor/npmtutor/framework"
	"github.com/oss-tutor/npmtutor/tasks"
)

// HomeState is the lesson browsing state.
type HomeState struct {
	*framework.CmdState

	config  *configs.Config
	catalog *catalog.Catalog
	lessons []tasks.Lesson
}

// NewHomeState returns the home state with meta commands installed.
func NewHomeState(config *configs.Config, cat *catalog.Catalog, lessons []tasks.Lesson) *HomeState {
	state := &HomeState{
		CmdState: framework.NewCmdState("npmtutor"),
		config:   config,
		catalog:  cat,
		lessons:  lessons,
	}
	state.SetupFn = func() {
		cmd := &cobra.Command{}
		state.UpdateState(cmd, state, state.SetupFn)
	}
	state.SetupCommands()
	return state
}

type lessonsParam struct {
	framework.ParamBase `use:"lessons" desc:"list available lessons"`
	Filter              string `name:"filter" default:"" desc:"boolean expression over ID, Title, Difficulty, TaskCount"`
	Format              string `name:"format" default:"table" desc:"output format, table or json"`
}

// LessonsCommand lists lessons, optionally filtered by expression.
func (s *HomeState) LessonsCommand(ctx context.Context, p *lessonsParam) (*framework.PresetResultSet, error) {
	lessons := s.lessons
	if p.Filter != "" {
		filtered, err := tasks.Filter(lessons, p.Filter)
		if err != nil {
			return nil, err
		}
		lessons = filtered
	}
	return framework.NewPresetResultSet(&lessonList{lessons: lessons}, framework.NameFormat(p.Format)), nil
}

type startLessonParam struct {
	framework.ParamBase `use:"start-lesson" desc:"start practicing a lesson"`
	Lesson              int64 `name:"lesson" default:"1" desc:"lesson id to start"`
}

// StartLessonCommand switches into the task state for the chosen lesson.
func (s *HomeState) StartLessonCommand(ctx context.Context, p *startLessonParam) error {
	lesson, ok := lo.Find(s.lessons, func(l tasks.Lesson) bool { return int64(l.ID) == p.Lesson })
	if !ok {
		return fmt.Errorf("lesson %d not found, try `lessons`", p.Lesson)
	}
	next := NewTaskState(s, lesson)
	fmt.Printf("Lesson %d: %s — %s\n", lesson.ID, lesson.Title, lesson.Description)
	next.ShowTask()
	s.SetNext(next)
	return nil
}

type checkParam struct {
	framework.ParamBase `use:"check" desc:"check two commands for equivalence"`
	Expected            string `name:"expected" default:"" desc:"reference command"`
	Actual              string `name:"actual" default:"" desc:"command to verify"`
}

// CheckCommand exposes the equivalence engine directly.
func (s *HomeState) CheckCommand(ctx context.Context, p *checkParam) error {
	result := engine.Match(
		engine.ParseProgram(p.Expected, s.catalog, s.config.ProgramName),
		engine.ParseProgram(p.Actual, s.catalog, s.config.ProgramName),
	)
	if result.Matches {
		fmt.Println("equivalent")
		return nil
	}
	fmt.Println("not equivalent:", result.Reason)
	return nil
}

type versionParam struct {
	framework.ParamBase `use:"version" desc:"print version"`
}

// VersionCommand prints the tutor version.
func (s *HomeState) VersionCommand(ctx context.Context, _ *versionParam) {
	fmt.Println("npmtutor version", common.Version.String())
}

type exitParam struct {
	framework.ParamBase `use:"exit" desc:"close the tutor"`
}

// ExitCommand moves to the ending state.
func (s *HomeState) ExitCommand(ctx context.Context, _ *exitParam) {
	s.SetNext(&framework.ExitState{})
}

// lessonList renders lessons as table or JSON.
type lessonList struct {
	lessons []tasks.Lesson
}

func (l *lessonList) Entities() any {
	return l.lessons
}

func (l *lessonList) PrintAs(format framework.Format) string {
	switch format {
	case framework.FormatJSON:
		return framework.MarshalJSON(l.lessons)
	default:
		return tasks.LessonTable(l.lessons)
	}
}
