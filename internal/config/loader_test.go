// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
frontend: console
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FrontendConsole, cfg.Frontend)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Log.Format)
	assert.Equal(t, OutputDiscard, cfg.Log.Output, "unset keys keep defaults")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "frontend: console\n")
	t.Setenv("ADVENTURE_FRONTEND", "tui")
	t.Setenv("ADVENTURE_LOG_OUTPUT", "stderr")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FrontendTUI, cfg.Frontend)
	assert.Equal(t, OutputStderr, cfg.Log.Output)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadTooLarge(t *testing.T) {
	path := writeConfig(t, "frontend: console\n# "+strings.Repeat("x", maxConfigFileSize)+"\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadInvalid(t *testing.T) {
	path := writeConfig(t, "frontend: web\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)

	path = writeConfig(t, "log:\n  format: xml\n")
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "frontend", envKey("ADVENTURE_FRONTEND"))
	assert.Equal(t, "log.level", envKey("ADVENTURE_LOG_LEVEL"))
}
