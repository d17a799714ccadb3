package tasks

import "github.com/samber/lo"

// Task is one exercise: a prompt shown to the user and the reference command
// an answer is judged against.
type Task struct {
	Prompt   string `yaml:"prompt"`
	Expected string `yaml:"expected"`
	Hint     string `yaml:"hint"`
}

// Lesson groups ordered tasks under a topic.
type Lesson struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Difficulty  int    `yaml:"difficulty"`
	Tasks       []Task `yaml:"tasks"`
}

// OrderedTasks returns the lesson tasks, shuffled when requested.
// The lesson itself is never mutated.
func (l Lesson) OrderedTasks(shuffle bool) []Task {
	if !shuffle {
		return l.Tasks
	}
	return lo.Shuffle(append([]Task(nil), l.Tasks...))
}
