package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/surrealdb/surrealhttp.go/pkg/logger"
)

func TestLog(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	templogger, err := logger.New().FromBuffer(buff).Make()
	require.NoError(t, err)
	require.NotNil(t, templogger)
	require.Equal(t, 0, buff.Len())

	templogger.Logger.Info().Msg("Test")
	require.Contains(t, buff.String(), "Test")
}

func TestLogFromPath(t *testing.T) {
	path := t.TempDir() + "/client.log"
	templogger, err := logger.New().FromPath(path).Make()
	require.NoError(t, err)
	require.NotNil(t, templogger.LogFile)
	defer templogger.LogFile.Close()

	templogger.Logger.Info().Msg("Test")

	info, err := templogger.LogFile.Stat()
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
