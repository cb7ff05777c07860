package log

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })
	return logs
}

func TestCategoryField(t *testing.T) {
	logs := observe(t)

	Info(CatRender, "Rendered surface", "surface", "time", "value", 1407)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "render", fields["cat"])
	assert.Equal(t, "time", fields["surface"])
	assert.Equal(t, int64(1407), fields["value"])
	assert.Equal(t, "Rendered surface", entries[0].Message)
}

func TestLevels(t *testing.T) {
	logs := observe(t)

	Debug(CatTick, "d")
	Warn(CatTick, "w")
	Error(CatTick, "e")
	ErrorErr(CatConfig, "failed", errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[3].ContextMap()["error"])
}

func TestSafeGo_RecoversPanic(t *testing.T) {
	logs := observe(t)

	SafeGo(CatUI, "panicker", func() { panic("oops") })

	require.Eventually(t, func() bool {
		return logs.FilterMessage("Recovered panic in goroutine").Len() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestInit_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "soroban.log")

	closeFn, err := Init(path, "debug")
	require.NoError(t, err)

	Info(CatConfig, "hello")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), `"cat":"config"`)
}

func TestInit_BadLevel(t *testing.T) {
	_, err := Init(filepath.Join(t.TempDir(), "x.log"), "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing log level")
}

// openFDs returns the paths of the files this process holds open.
func openFDs(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skip("no /proc/self/fd on this platform")
	}
	var paths []string
	for _, e := range entries {
		if target, err := os.Readlink(filepath.Join("/proc/self/fd", e.Name())); err == nil {
			paths = append(paths, target)
		}
	}
	return paths
}

func TestInit_CloseReleasesFile(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	path := filepath.Join(dir, "soroban.log")

	closeFn, err := Init(path, "info")
	require.NoError(t, err)
	assert.Contains(t, openFDs(t), path)

	Info(CatUI, "before close")
	require.NoError(t, closeFn())
	assert.NotContains(t, openFDs(t), path)

	Info(CatUI, "after close")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "before close")
	assert.NotContains(t, string(data), "after close")
}
