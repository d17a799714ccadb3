package tasks

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// Progress tracks per-session answer statistics.
type Progress struct {
	Attempted  int
	Correct    int
	Skipped    int
	Streak     int
	BestStreak int
}

// RecordAnswer updates counters for one judged answer.
func (p *Progress) RecordAnswer(correct bool) {
	p.Attempted++
	if correct {
		p.Correct++
		p.Streak++
		if p.Streak > p.BestStreak {
			p.BestStreak = p.Streak
		}
		return
	}
	p.Streak = 0
}

// RecordSkip updates counters for a skipped task.
func (p *Progress) RecordSkip() {
	p.Skipped++
	p.Streak = 0
}

// Table renders the progress counters as an ASCII table.
func (p *Progress) Table() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Attempted", "Correct", "Skipped", "Streak", "Best Streak"})
	t.AppendRow(table.Row{p.Attempted, p.Correct, p.Skipped, p.Streak, p.BestStreak})
	return t.Render()
}

// LessonTable renders lessons as an ASCII table for the lessons listing.
func LessonTable(lessons []Lesson) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"ID", "Title", "Difficulty", "Tasks", "Description"})
	for _, lesson := range lessons {
		t.AppendRow(table.Row{lesson.ID, lesson.Title, lesson.Difficulty, len(lesson.Tasks), lesson.Description})
	}
	return t.Render()
}
