package tasks

import (
	"github.com/cockroachdb/errors"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type lessonEnv struct {
	ID         int
	Title      string
	Difficulty int
	TaskCount  int
}

// Filter evaluates a boolean expression over each lesson and keeps the ones
// matching, e.g. `Difficulty <= 2` or `TaskCount > 3`.
func Filter(lessons []Lesson, expression string) ([]Lesson, error) {
	program, err := expr.Compile(expression, expr.Env(lessonEnv{}), expr.AsBool())
	if err != nil {
		return nil, errors.Wrapf(err, "invalid filter expression %q", expression)
	}

	var result []Lesson
	for _, lesson := range lessons {
		keep, err := runFilter(program, lesson)
		if err != nil {
			return nil, err
		}
		if keep {
			result = append(result, lesson)
		}
	}
	return result, nil
}

func runFilter(program *vm.Program, lesson Lesson) (bool, error) {
	env := lessonEnv{
		ID:         lesson.ID,
		Title:      lesson.Title,
		Difficulty: lesson.Difficulty,
		TaskCount:  len(lesson.Tasks),
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false, errors.Wrap(err, "failed to evaluate filter expression")
	}
	keep, ok := out.(bool)
	if !ok {
		return false, errors.New("filter expression is not boolean")
	}
	return keep, nil
}
