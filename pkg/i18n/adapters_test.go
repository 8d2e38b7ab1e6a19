package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrform/pkg/i18n"
)

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	t.Run("merges yaml files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"translations/a.yaml": {Data: []byte("en:\n  a: A\npt:\n  a: PA\n")},
			"translations/b.yml":  {Data: []byte("en:\n  b: B\n")},
			"translations/c.txt":  {Data: []byte("ignored")},
		}
		data, err := i18n.NewFSAdapter(fsys, "translations").Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"a": "A", "b": "B"}, data["en"])
		assert.Equal(t, map[string]any{"a": "PA"}, data["pt"])
	})

	t.Run("no yaml files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"translations/readme.md": {Data: []byte("#")}}
		_, err := i18n.NewFSAdapter(fsys, "translations").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(fstest.MapFS{}, "nope").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"t/a.yaml": {Data: []byte("en: [unclosed")}}
		_, err := i18n.NewFSAdapter(fsys, "t").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("language value is not a map", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"t/a.yaml": {Data: []byte("en: hello\n")}}
		_, err := i18n.NewFSAdapter(fsys, "t").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(fstest.MapFS{}, ".").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})
}

func TestMapAdapterNil(t *testing.T) {
	t.Parallel()
	data, err := (&i18n.MapAdapter{}).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data)
}
