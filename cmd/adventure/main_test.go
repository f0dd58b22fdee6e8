// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"code.hybscloud.com/free/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
		assert.NotEmpty(t, cmd.Short, "command %s", cmd.Name())
	}
	for _, want := range []string{"play", "tui", "replay"} {
		assert.True(t, names[want], "missing command %s", want)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, playCmd.Flags().Lookup("script"))
	assert.NotNil(t, replayCmd.Flags().Lookup("choices"))
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		configPath, playScript, replayChoices = "", "", ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestReplayCommand(t *testing.T) {
	out, err := execute(t, "", "replay", "--choices", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "> Say no.")
}

func TestReplayCommandExhausted(t *testing.T) {
	out, err := execute(t, "", "replay", "--choices", "1")
	require.Error(t, err)
	assert.Contains(t, out, "> Say yes and enter the supermarket.")
}

func TestPlayCommandStdin(t *testing.T) {
	out, err := execute(t, "2\n", "play")
	require.NoError(t, err)
	assert.Contains(t, out, "Your options are:\n1: Say yes and enter the supermarket.\n2: Say no.\n")
	assert.Contains(t, out, "it's going to be your problem.")
}

func TestRootFollowsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frontend: console\n"), 0o600))

	out, err := execute(t, "2\n", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Say no.")
}

func TestDetectFrontendPipes(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()
	assert.Equal(t, config.FrontendConsole, detectFrontend(r, w))
}
