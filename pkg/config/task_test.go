package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/buildlocale/pkg/builder"
	"github.com/dmitrymomot/buildlocale/pkg/config"
	"github.com/dmitrymomot/buildlocale/pkg/locale"
)

const sampleTask = `
options:
  dest: dist
  filterLocale: [en, fr]
  prefix: rel
targets:
  web:
    src:
      - src/web/**/*.locale.json
      - "!src/web/legacy/**"
    options:
      namespace: true
      stripNamespaceBase: src/
  admin:
    src: src/admin/*.locale.json
    options:
      dest: dist/admin
      sufix: v2
      filterLocale: []
`

func ptr[T any](v T) *T { return &v }

func TestParseTask(t *testing.T) {
	t.Parallel()

	task, err := config.ParseTask([]byte(sampleTask))
	require.NoError(t, err)

	require.Len(t, task.Targets, 2)
	assert.Equal(t, "web", task.Targets[0].Name)
	assert.Equal(t, "admin", task.Targets[1].Name)
	assert.Equal(t, config.StringList{"src/web/**/*.locale.json", "!src/web/legacy/**"}, task.Targets[0].Src)
	assert.Equal(t, config.StringList{"src/admin/*.locale.json"}, task.Targets[1].Src)
	assert.Equal(t, []string{"en", "fr"}, task.Options.FilterLocale)
}

func TestParseTask_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "options: [unclosed"},
		{"targets is a list", "targets:\n  - web\n"},
		{"duplicate target", "targets:\n  web: {}\n  web: {}\n"},
		{"src is a mapping", "targets:\n  web:\n    src: {a: b}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.ParseTask([]byte(tt.data))
			require.ErrorIs(t, err, config.ErrInvalidTaskFile)
		})
	}
}

func TestTask_Resolve(t *testing.T) {
	t.Parallel()

	task, err := config.ParseTask([]byte(sampleTask))
	require.NoError(t, err)

	t.Run("target options override task options", func(t *testing.T) {
		t.Parallel()
		web, err := task.Target("web")
		require.NoError(t, err)

		opts, err := task.Resolve(web, config.Options{})
		require.NoError(t, err)
		assert.Equal(t, builder.Options{
			Dest:               "dist",
			FilterLocale:       []locale.Code{"en", "fr"},
			Prefix:             "rel",
			Namespace:          true,
			StripNamespaceBase: "src/",
		}, opts)
	})

	t.Run("sufix alias and empty whitelist", func(t *testing.T) {
		t.Parallel()
		admin, err := task.Target("admin")
		require.NoError(t, err)

		opts, err := task.Resolve(admin, config.Options{})
		require.NoError(t, err)
		assert.Equal(t, "dist/admin", opts.Dest)
		assert.Equal(t, "v2", opts.Suffix)
		assert.Empty(t, opts.FilterLocale)
	})

	t.Run("overrides win", func(t *testing.T) {
		t.Parallel()
		web, err := task.Target("web")
		require.NoError(t, err)

		opts, err := task.Resolve(web, config.Options{
			Dest:      ptr("out"),
			Suffix:    ptr("beta"),
			Namespace: ptr(false),
			Force:     ptr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "out", opts.Dest)
		assert.Equal(t, "beta", opts.Suffix)
		assert.False(t, opts.Namespace)
		assert.True(t, opts.Force)
	})

	t.Run("unknown target", func(t *testing.T) {
		t.Parallel()
		_, err := task.Target("mobile")
		require.ErrorIs(t, err, config.ErrTargetNotFound)
	})
}

func TestOptions_Build(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		opts, err := config.Options{}.Build()
		require.NoError(t, err)
		assert.Equal(t, builder.DefaultOptions(), opts)
	})

	t.Run("suffix wins over sufix", func(t *testing.T) {
		t.Parallel()
		opts, err := config.Options{Suffix: ptr("a"), Sufix: ptr("b")}.Build()
		require.NoError(t, err)
		assert.Equal(t, "a", opts.Suffix)
	})

	t.Run("invalid locale in filter", func(t *testing.T) {
		t.Parallel()
		_, err := config.Options{FilterLocale: []string{"en", "english"}}.Build()
		require.ErrorIs(t, err, config.ErrInvalidOptions)
		require.ErrorIs(t, err, locale.ErrInvalidCode)
	})
}

func TestLoadTask(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "buildlocale.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleTask), 0o600))

		task, err := config.LoadTask(path)
		require.NoError(t, err)
		assert.Len(t, task.Targets, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := config.LoadTask(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, config.ErrTaskFileNotFound)
	})
}
