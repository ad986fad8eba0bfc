package main_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/tabgenie"
	main "github.com/fwojciec/tabgenie/cmd/tabgenie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tabgenie.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("uses defaults without a config file", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.LoadConfig("", nil)

		require.NoError(t, err)
		def := main.DefaultConfig()
		assert.Equal(t, def.DataDir, cfg.DataDir)
		assert.Equal(t, def.Concurrency, cfg.Concurrency)
		assert.Equal(t, tabgenie.LinearOptions{Style: tabgenie.Style2D, Props: tabgenie.PropsAll}, cfg.LinearOptions())
	})

	t.Run("reads the config file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "data_dir: /srv/tables\nmax_examples: 50\nlinearization_style: structure\nprops_mode: factual\n")

		cfg, err := main.LoadConfig(path, nil)

		require.NoError(t, err)
		assert.Equal(t, "/srv/tables", cfg.DataDir)
		assert.Equal(t, 50, cfg.MaxExamples)
		assert.Equal(t, tabgenie.LinearOptions{Style: tabgenie.StyleMarkers, Props: tabgenie.PropsFactual}, cfg.LinearOptions())
	})

	t.Run("flags override the config file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "data_dir: /srv/tables\ndb_path: /srv/tabgenie.db\n")

		cfg, err := main.LoadConfig(path, map[string]any{"data_dir": "/tmp/tables", "verbose": true})

		require.NoError(t, err)
		assert.Equal(t, "/tmp/tables", cfg.DataDir)
		assert.Equal(t, "/srv/tabgenie.db", cfg.DBPath)
		assert.True(t, cfg.Verbose)
	})

	t.Run("rejects unknown linearization styles", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "linearization_style: yaml\n")

		_, err := main.LoadConfig(path, nil)

		assert.Equal(t, tabgenie.EINVALID, tabgenie.ErrorCode(err))
	})

	t.Run("fails on a missing config file", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)

		assert.ErrorContains(t, err, "error reading config file")
	})
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("TABGENIE_CONCURRENCY", "3")
	t.Setenv("TABGENIE_DEFAULT_DATASET", "webnlg")

	path := writeConfig(t, "concurrency: 16\n")

	cfg, err := main.LoadConfig(path, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Concurrency)
	assert.Equal(t, "webnlg", cfg.DefaultDataset)
}
