// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"code.hybscloud.com/free/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewDiscard(t *testing.T) {
	logger, closeFn, err := New(config.Default().Log)
	require.NoError(t, err)
	logger.Info("dropped")
	assert.NoError(t, closeFn())
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adventure.log")
	logger, closeFn, err := New(config.LogConfig{Level: "debug", Format: config.FormatJSON, Output: path})
	require.NoError(t, err)

	logger.Debug("hello")
	require.NoError(t, logger.Sync())
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Contains(t, entry, "ts")
}

func TestNewInvalidLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud", Format: config.FormatJSON, Output: config.OutputDiscard})
	assert.Error(t, err)
}
