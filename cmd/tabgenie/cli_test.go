package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/tabgenie/cmd/tabgenie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commands = []string{"info", "show", "export", "build", "note", "favourite"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range commands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ParsesTableArguments(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"show", "totto", "dev", "3", "--format", "linear", "--edit", "2=x", "--cells", "1,2"})

	require.NoError(t, err)
	assert.Equal(t, "totto-dev-3", cli.Show.Key().String())
	assert.Equal(t, "linear", cli.Show.Format)
	assert.Equal(t, map[int]string{2: "x"}, cli.Show.Edit)
	assert.Equal(t, []int{1, 2}, cli.Show.Cells)
}

func TestCLI_RejectsUnknownSplit(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"show", "totto", "validation", "0"})

	assert.Error(t, err)
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range commands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "Flags:")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(), nil, stdout, &bytes.Buffer{})

	assert.ErrorContains(t, err, "no command specified")
	assert.Contains(t, stdout.String(), "Usage:")
	assert.Nil(t, m.DB)
}

func TestMain_Run_HelpWithoutCreatingDB(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "tabgenie.db")
	m := main.NewMain()

	err := m.Run(context.Background(), []string{"help", "--db", dbPath}, &bytes.Buffer{}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Nil(t, m.DB)
	assert.NoFileExists(t, dbPath)
}
