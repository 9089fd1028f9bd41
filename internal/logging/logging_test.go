package logging_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hbjs97/cswap/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestGetLogger_SameModuleSameLogger(t *testing.T) {
	a := logging.GetLogger("test-same")
	b := logging.GetLogger("test-same")
	assert.Same(t, a, b)
}

func TestSetLevel_AppliesToExistingLoggers(t *testing.T) {
	prev := logging.Level()
	t.Cleanup(func() { logging.SetLevel(prev) })

	lg := logging.GetLogger("test-level")
	logging.SetLevel(log.DebugLevel)
	assert.Equal(t, log.DebugLevel, lg.GetLevel())
	assert.Equal(t, log.DebugLevel, logging.Level())
}

func TestSetOutput_RedirectsMessages(t *testing.T) {
	prev := logging.Level()
	t.Cleanup(func() { logging.SetLevel(prev) })

	var buf bytes.Buffer
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.SetOutput(os.Stderr) })

	logging.SetLevel(log.InfoLevel)
	logging.GetLogger("test-output").Info("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "test-output")
}
