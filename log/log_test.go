package log

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("invalid level", func(t *testing.T) {
		_, _, err := NewLogger(Config{Environment: EnvironmentDevelopment, Level: "verbose", Outputs: []string{"stderr"}})
		require.ErrorContains(t, err, "error on setting log level")
	})

	t.Run("production writes json to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "depositkit.log")
		sugared, level, err := NewLogger(Config{Environment: EnvironmentProduction, Level: "info", Outputs: []string{path}})
		require.NoError(t, err)
		require.Equal(t, "info", level.String())

		logger := &Logger{x: sugared}
		logger.WithFields("module", "test").Infow("deposit sent", "txHash", "0x01")
		logger.Debug("not written")
		require.NoError(t, sugared.Sync())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(content), `"msg":"deposit sent"`)
		require.Contains(t, string(content), `"module":"test"`)
		require.Contains(t, string(content), `"txHash":"0x01"`)
		require.NotContains(t, string(content), "not written")
	})
}

func TestWithFields(t *testing.T) {
	root := GetDefaultLogger()
	child := WithFields("module", "deposit")
	require.NotNil(t, child)
	require.NotSame(t, root, child)
	require.NotNil(t, child.GetSugaredLogger())
}

func TestAppendStackTraceMaybeArgs(t *testing.T) {
	args := appendStackTraceMaybeArgs([]interface{}{"no error here", 1})
	require.Len(t, args, 2)

	args = appendStackTraceMaybeArgs([]interface{}{"failed:", errors.New("boom")})
	require.Len(t, args, 3)
	trace, ok := args[2].(string)
	require.True(t, ok)
	require.Contains(t, trace, "log_test.go")
}

func TestAppendStackTraceMaybeKV(t *testing.T) {
	require.Equal(t, "msg", appendStackTraceMaybeKV("msg", []interface{}{"key", "value"}))

	msg := appendStackTraceMaybeKV("deposit failed", []interface{}{"err", errors.New("boom")})
	require.Contains(t, msg, "deposit failed: boom")
}
