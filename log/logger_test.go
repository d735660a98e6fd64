package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now = time.Now().Unix()
	err = fmt.Errorf("error message")
)

// Fatal Fatalf is not test
func TestLogger(t *testing.T) {
	SetLogger(6, false, true)
	defer SetOutput(os.Stdout)

	var buf bytes.Buffer
	SetOutput(&buf)

	WithFields("timestamp", now, "err", err).Tracef("test WithFields Tracef at %v", now)
	WithFields("timestamp", now, "err", err).Debugf("test WithFields Debugf at %v", now)
	WithFields("timestamp", now, "err", err).Infof("test WithFields Infof at %v", now)
	assert.Panics(t, func() { WithFields("timestamp", now, "err", err).Panicf("test WithFields Panicf at %v", now) }, "not panic")

	Trace("test Trace", "timestamp", now, "err", err)
	Debug("test Debug", "timestamp", now, "err", err)
	Info("test Info", "timestamp", now, "err", err)
	Warn("test Warn", "timestamp", now, "err", err)
	Error("test Error", "timestamp", now, "err", err)
	Tracef("test Tracef, timestamp=%v err=%v", now, err)
	Debugf("test Debugf, timestamp=%v err=%v", now, err)
	Infof("test Infof, timestamp=%v err=%v", now, err)
	Warnf("test Warnf, timestamp=%v err=%v", now, err)
	Errorf("test Errorf, timestamp=%v err=%v", now, err)
	Println("test Println", "timestamp", now)
	Printf("test Printf, timestamp=%v", now)

	assert.Panics(t, func() { Panic("test Panic", "timestamp", now, "err", err) }, "not panic")
	assert.Contains(t, buf.String(), "test Warn")
	assert.True(t, IsDebugEnabled())
}

func TestJSONFormat(t *testing.T) {
	defer SetLogger(4, false, false)
	defer SetOutput(os.Stdout)

	var buf bytes.Buffer
	SetLogger(4, true, false)
	SetOutput(&buf)
	assert.True(t, JSONFormat)

	Info("decoded", "field", "Amount", 7)
	Debug("hidden at info level")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "decoded", line["msg"])
	assert.Equal(t, "Amount", line["field"])
	assert.False(t, IsDebugEnabled())
}

func TestSetLogFile(t *testing.T) {
	defer SetOutput(os.Stdout)

	logFile := filepath.Join(t.TempDir(), "xrpltools.log")
	require.NoError(t, SetLogFile(logFile, time.Hour, 24*time.Hour))
	Warn("written to rotated file", "file", logFile)

	matches, globErr := filepath.Glob(logFile + ".*")
	require.NoError(t, globErr)
	assert.NotEmpty(t, matches)
}
