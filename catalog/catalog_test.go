package catalog

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpecs() []*CommandSpec {
	return []*CommandSpec{
		{
			Name:    "install",
			Aliases: []string{"i", "add"},
			Parameters: []ParameterSpec{
				{Name: "--save-dev", Aliases: []string{"-D"}},
				{Name: "--registry", RequiresValue: true},
			},
		},
		{
			Name:    "run",
			Aliases: []string{"run-script"},
		},
	}
}

func TestCatalogResolve(t *testing.T) {
	cat, err := New(testSpecs())
	require.NoError(t, err)

	t.Run("canonical name", func(t *testing.T) {
		spec, ok := cat.Resolve("install")
		assert.True(t, ok)
		assert.Equal(t, "install", spec.Name)
	})

	t.Run("alias", func(t *testing.T) {
		spec, ok := cat.Resolve("add")
		assert.True(t, ok)
		assert.Equal(t, "install", spec.Name)
	})

	t.Run("case insensitive", func(t *testing.T) {
		spec, ok := cat.Resolve("InStAll")
		assert.True(t, ok)
		assert.Equal(t, "install", spec.Name)

		spec, ok = cat.Resolve("RUN-SCRIPT")
		assert.True(t, ok)
		assert.Equal(t, "run", spec.Name)
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := cat.Resolve("frobnicate")
		assert.False(t, ok)
	})
}

func TestResolveFlag(t *testing.T) {
	cat, err := New(testSpecs())
	require.NoError(t, err)
	install, _ := cat.Resolve("install")

	t.Run("canonical flag", func(t *testing.T) {
		name, ok := install.ResolveFlag("--save-dev")
		assert.True(t, ok)
		assert.Equal(t, "--save-dev", name)
	})

	t.Run("flag alias", func(t *testing.T) {
		name, ok := install.ResolveFlag("-D")
		assert.True(t, ok)
		assert.Equal(t, "--save-dev", name)
	})

	t.Run("flag alias case insensitive", func(t *testing.T) {
		name, ok := install.ResolveFlag("-d")
		assert.True(t, ok)
		assert.Equal(t, "--save-dev", name)
	})

	t.Run("unknown flag returned verbatim", func(t *testing.T) {
		name, ok := install.ResolveFlag("--frob")
		assert.False(t, ok)
		assert.Equal(t, "--frob", name)
	})
}

func TestCatalogValidation(t *testing.T) {
	t.Run("duplicate command alias", func(t *testing.T) {
		_, err := New([]*CommandSpec{
			{Name: "install", Aliases: []string{"i"}},
			{Name: "init", Aliases: []string{"I"}},
		})
		assert.True(t, errors.Is(err, ErrDuplicateCommand))
	})

	t.Run("alias colliding with canonical name", func(t *testing.T) {
		_, err := New([]*CommandSpec{
			{Name: "install"},
			{Name: "setup", Aliases: []string{"Install"}},
		})
		assert.True(t, errors.Is(err, ErrDuplicateCommand))
	})

	t.Run("duplicate parameter alias", func(t *testing.T) {
		_, err := New([]*CommandSpec{
			{
				Name: "install",
				Parameters: []ParameterSpec{
					{Name: "--save-dev", Aliases: []string{"-D"}},
					{Name: "--dist", Aliases: []string{"-d"}},
				},
			},
		})
		assert.True(t, errors.Is(err, ErrDuplicateParameter))
	})
}

func TestLoadDefault(t *testing.T) {
	cat, err := LoadDefault()
	require.NoError(t, err)

	install, ok := cat.Resolve("i")
	require.True(t, ok)
	assert.Equal(t, "install", install.Name)
	assert.NotEmpty(t, install.MockOutput)

	name, ok := install.ResolveFlag("-D")
	assert.True(t, ok)
	assert.Equal(t, "--save-dev", name)

	registry, ok := install.Parameter("--registry")
	require.True(t, ok)
	assert.True(t, registry.RequiresValue)

	for _, shortcut := range []string{"test", "start", "stop", "restart", "run"} {
		_, ok := cat.Resolve(shortcut)
		assert.True(t, ok, "catalog misses %s", shortcut)
	}
}
