package tasks

import (
	_ "embed"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/oss-tutor/npmtutor/catalog"
	"github.com/oss-tutor/npmtutor/engine"
)

//go:embed lessons.yaml
var lessonData []byte

type lessonFile struct {
	Lessons []Lesson `yaml:"lessons"`
}

// Load parses the built-in lesson set and validates that every reference
// command parses cleanly against the catalog.
func Load(cat *catalog.Catalog) ([]Lesson, error) {
	return loadYAML(lessonData, cat)
}

func loadYAML(data []byte, cat *catalog.Catalog) ([]Lesson, error) {
	var file lessonFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal lesson data")
	}
	if len(file.Lessons) == 0 {
		return nil, errors.New("lesson data contains no lessons")
	}
	for _, lesson := range file.Lessons {
		if len(lesson.Tasks) == 0 {
			return nil, errors.Newf("lesson %d (%s) has no tasks", lesson.ID, lesson.Title)
		}
		for _, task := range lesson.Tasks {
			parsed := engine.Parse(task.Expected, cat)
			if !parsed.Valid {
				return nil, errors.Newf("lesson %d task %q has unparseable reference command %q: %s",
					lesson.ID, task.Prompt, task.Expected, parsed.ErrMessage)
			}
		}
	}
	return file.Lessons, nil
}
