package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oss-tutor/npmtutor/catalog"
)

// makeCatalog builds a small synthetic catalog for parser tests.
func makeCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]*catalog.CommandSpec{
		{
			Name:    "install",
			Aliases: []string{"i", "add"},
			Parameters: []catalog.ParameterSpec{
				{Name: "--save-dev", Aliases: []string{"-D"}},
				{Name: "--global", Aliases: []string{"-g"}},
				{Name: "--registry", RequiresValue: true},
			},
		},
		{
			Name:    "init",
			Parameters: []catalog.ParameterSpec{
				{Name: "--yes", Aliases: []string{"-y"}},
				{Name: "--init-author-name", RequiresValue: true},
			},
		},
		{Name: "run", Aliases: []string{"run-script"}},
		{Name: "test", Aliases: []string{"t"}},
		{Name: "start"},
		{Name: "stop"},
		{Name: "restart"},
	})
	require.NoError(t, err)
	return cat
}

func TestParseErrors(t *testing.T) {
	cat := makeCatalog(t)

	t.Run("empty input", func(t *testing.T) {
		result := Parse("", cat)
		assert.False(t, result.Valid)
		assert.Equal(t, ErrorEmptyCommand, result.ErrKind)
		assert.NotEmpty(t, result.ErrMessage)
	})

	t.Run("program name only", func(t *testing.T) {
		result := Parse("npm", cat)
		assert.False(t, result.Valid)
		assert.Equal(t, ErrorMissingCommand, result.ErrKind)
	})

	t.Run("program name case insensitive", func(t *testing.T) {
		result := Parse("NPM", cat)
		assert.False(t, result.Valid)
		assert.Equal(t, ErrorMissingCommand, result.ErrKind)
	})

	t.Run("unknown command", func(t *testing.T) {
		result := Parse("npm frobnicate", cat)
		assert.False(t, result.Valid)
		assert.Equal(t, ErrorUnknownCommand, result.ErrKind)
		assert.Contains(t, result.ErrMessage, "frobnicate")
	})
}

func TestParseCommandResolution(t *testing.T) {
	cat := makeCatalog(t)

	t.Run("canonical", func(t *testing.T) {
		result := Parse("npm install lodash", cat)
		require.True(t, result.Valid)
		assert.Equal(t, "install", result.CommandName())
		assert.Equal(t, []string{"lodash"}, result.Positionals)
	})

	t.Run("alias any case", func(t *testing.T) {
		result := Parse("npm ADD lodash", cat)
		require.True(t, result.Valid)
		assert.Equal(t, "install", result.CommandName())
	})

	t.Run("program prefix optional", func(t *testing.T) {
		result := Parse("install lodash", cat)
		require.True(t, result.Valid)
		assert.Equal(t, "install", result.CommandName())
	})
}

func TestParseFlags(t *testing.T) {
	cat := makeCatalog(t)

	t.Run("alias normalized to canonical", func(t *testing.T) {
		result := Parse("npm i -D lodash", cat)
		require.True(t, result.Valid)
		assert.Equal(t, []string{"--save-dev"}, result.Flags)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		result := Parse("npm install -D --save-dev lodash", cat)
		require.True(t, result.Valid)
		assert.Equal(t, []string{"--save-dev"}, result.Flags)
	})

	t.Run("unknown flags recorded verbatim", func(t *testing.T) {
		result := Parse("npm install --frob lodash", cat)
		require.True(t, result.Valid)
		assert.Equal(t, []string{"--frob"}, result.Flags)
		assert.Equal(t, []string{"lodash"}, result.Positionals)
	})

	t.Run("embedded value contributes flag only", func(t *testing.T) {
		result := Parse(`npm init --init-author-name="John Doe"`, cat)
		require.True(t, result.Valid)
		assert.Equal(t, []string{"--init-author-name"}, result.Flags)
		assert.Empty(t, result.Positionals)
	})

	t.Run("value consumption", func(t *testing.T) {
		result := Parse("npm install --registry https://example.com lodash", cat)
		require.True(t, result.Valid)
		assert.Equal(t, []string{"--registry"}, result.Flags)
		assert.Equal(t, []string{"lodash"}, result.Positionals)
	})

	t.Run("value-requiring flag before another flag", func(t *testing.T) {
		// the would-be value is flag-like, so it classifies on its own
		result := Parse("npm install --registry -g lodash", cat)
		require.True(t, result.Valid)
		assert.Equal(t, []string{"--registry", "--global"}, result.Flags)
		assert.Equal(t, []string{"lodash"}, result.Positionals)
	})

	t.Run("value-requiring flag at end of input", func(t *testing.T) {
		result := Parse("npm install lodash --registry", cat)
		require.True(t, result.Valid)
		assert.Equal(t, []string{"--registry"}, result.Flags)
		assert.Equal(t, []string{"lodash"}, result.Positionals)
	})

	t.Run("boolean flag does not consume value", func(t *testing.T) {
		result := Parse("npm install -g lodash", cat)
		require.True(t, result.Valid)
		assert.Equal(t, []string{"--global"}, result.Flags)
		assert.Equal(t, []string{"lodash"}, result.Positionals)
	})
}

func TestParsePositionals(t *testing.T) {
	cat := makeCatalog(t)

	result := Parse("npm install lodash express body-parser", cat)
	require.True(t, result.Valid)
	assert.Equal(t, []string{"lodash", "express", "body-parser"}, result.Positionals)
}
