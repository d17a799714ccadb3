package states

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oss-tutor/npmtutor/catalog"
	"github.com/oss-tutor/npmtutor/common"
	"github.com/oss-tutor/npmtutor/configs"
	"github.com/oss-tutor/npmtutor/tasks"
)

func newHome(t *testing.T) *HomeState {
	t.Helper()
	cat, err := catalog.LoadDefault()
	require.NoError(t, err)
	lessons, err := tasks.Load(cat)
	require.NoError(t, err)
	config := &configs.Config{
		WorkspacePath: t.TempDir(),
		ProgramName:   "npm",
		DisableColor:  true,
	}
	return NewHomeState(config, cat, lessons)
}

func TestHomeMetaCommands(t *testing.T) {
	home := newHome(t)

	t.Run("lessons", func(t *testing.T) {
		next, err := home.Process("lessons")
		require.NoError(t, err)
		assert.Equal(t, home, next)
		home.SetupCommands()
	})

	t.Run("lessons with filter", func(t *testing.T) {
		next, err := home.Process("lessons --filter \"Difficulty <= 1\"")
		require.NoError(t, err)
		assert.Equal(t, home, next)
		home.SetupCommands()
	})

	t.Run("check equivalent", func(t *testing.T) {
		next, err := home.Process(`check --expected "npm install lodash --save-dev" --actual "npm i -D lodash"`)
		require.NoError(t, err)
		assert.Equal(t, home, next)
		home.SetupCommands()
	})

	t.Run("unknown meta command", func(t *testing.T) {
		_, err := home.Process("frobnicate")
		assert.Error(t, err)
		home.SetupCommands()
	})

	t.Run("exit", func(t *testing.T) {
		next, err := home.Process("exit")
		assert.ErrorIs(t, err, common.ExitErr)
		assert.True(t, next.IsEnding())
	})
}

func TestLessonFlow(t *testing.T) {
	home := newHome(t)

	next, err := home.Process("start-lesson --lesson 1")
	require.NoError(t, err)
	taskState, ok := next.(*TaskState)
	require.True(t, ok)
	taskState.SetupCommands()

	t.Run("wrong answer stays on task", func(t *testing.T) {
		next, err := taskState.Process("npm install express")
		require.NoError(t, err)
		assert.Equal(t, taskState, next.(*TaskState))
		assert.Equal(t, 1, taskState.progress.Attempted)
		assert.Equal(t, 0, taskState.progress.Correct)
		assert.Equal(t, 0, taskState.current)
	})

	t.Run("correct answer advances", func(t *testing.T) {
		// lesson 1 task 1 reference is `npm install lodash`
		next, err := taskState.Process("npm i lodash")
		require.NoError(t, err)
		assert.Equal(t, taskState, next.(*TaskState))
		assert.Equal(t, 2, taskState.progress.Attempted)
		assert.Equal(t, 1, taskState.progress.Correct)
		assert.Equal(t, 1, taskState.current)
	})

	t.Run("hint is a meta command", func(t *testing.T) {
		next, err := taskState.Process("hint")
		require.NoError(t, err)
		assert.Equal(t, taskState, next.(*TaskState))
		taskState.SetupCommands()
	})

	t.Run("skip reveals and advances", func(t *testing.T) {
		before := taskState.current
		next, err := taskState.Process("skip")
		require.NoError(t, err)
		assert.Equal(t, taskState, next.(*TaskState))
		assert.Equal(t, before+1, taskState.current)
		assert.Equal(t, 1, taskState.progress.Skipped)
		taskState.SetupCommands()
	})

	t.Run("exit emits the exit sentinel", func(t *testing.T) {
		next, err := taskState.Process("exit")
		assert.ErrorIs(t, err, common.ExitErr)
		assert.True(t, next.IsEnding())
		taskState.SetupCommands()
	})

	t.Run("quit-lesson returns home", func(t *testing.T) {
		next, err := taskState.Process("quit-lesson")
		require.NoError(t, err)
		assert.Equal(t, home, next.(*HomeState))
	})
}

func TestIsAnswer(t *testing.T) {
	home := newHome(t)
	lesson := home.lessons[0]
	taskState := NewTaskState(home, lesson)

	assert.True(t, taskState.isAnswer("npm install lodash"))
	assert.True(t, taskState.isAnswer("install lodash"))
	assert.True(t, taskState.isAnswer("npm")) // judged, yields missing command
	assert.False(t, taskState.isAnswer("hint"))
	assert.False(t, taskState.isAnswer("skip"))
	assert.False(t, taskState.isAnswer(""))
}

func TestTaskSuggestions(t *testing.T) {
	home := newHome(t)
	taskState := NewTaskState(home, home.lessons[0])

	suggestions := taskState.Suggestions("npm ins")
	assert.Contains(t, suggestions, "install")

	suggestions = taskState.Suggestions("hi")
	assert.Contains(t, suggestions, "hint")
}
