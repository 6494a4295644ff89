package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sgaunet/dateutil/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestNoLogger(t *testing.T) {
	log := logger.NoLogger()

	assert.NotNil(t, log, "NoLogger should not return nil")

	assert.NotPanics(t, func() {
		log.Debug("This is a debug message")
		log.Info("This is an info message")
		log.Warn("This is a warning message")
		log.Error("This is an error message")
	}, "NoLogger methods should not panic")
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		logLevel  string
		wantDebug bool
		wantInfo  bool
		wantError bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"INFO", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, true},
		{"", false, true, true}, // Default case
		{"verbose", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.NewLogger(&buf, tt.logLevel)
			assert.NotNil(t, log, "NewLogger should not return nil")

			log.Debug("debug-marker")
			log.Info("info-marker")
			log.Error("error-marker")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug-marker"), out)
			assert.Equal(t, tt.wantInfo, strings.Contains(out, "info-marker"), out)
			assert.Equal(t, tt.wantError, strings.Contains(out, "error-marker"), out)
		})
	}
}

func TestLevels(t *testing.T) {
	assert.Equal(t, []string{"debug", "info", "warn", "error"}, logger.Levels())
}
