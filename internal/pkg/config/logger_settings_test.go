//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{
			name:          "valid console logger",
			settings:      &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole},
			expectedError: false,
		},
		{
			name: "valid file logger with rotation",
			settings: &LoggerSettings{
				LogLevel: LogLevelDebug, LogType: LogTypeFile,
				FilePath: "/var/log/smartfitter/api.log", MaxSize: 10, MaxBackups: 3, MaxAge: 28,
			},
			expectedError: false,
		},
		{
			name:          "missing log level",
			settings:      &LoggerSettings{LogType: LogTypeConsole},
			expectedError: true,
		},
		{
			name:          "invalid log type",
			settings:      &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"},
			expectedError: true,
		},
		{
			name: "file logger missing file path",
			settings: &LoggerSettings{
				LogLevel: LogLevelInfo, LogType: LogTypeFile, MaxSize: 10, MaxBackups: 3, MaxAge: 28,
			},
			expectedError: true,
		},
		{
			name: "file logger missing rotation limits",
			settings: &LoggerSettings{
				LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "/tmp/api.log",
			},
			expectedError: true,
		},
		{
			name: "file logger pointed at a directory",
			settings: &LoggerSettings{
				LogLevel: LogLevelInfo, LogType: LogTypeFile,
				FilePath: "/var/log/smartfitter/", MaxSize: 10, MaxBackups: 3, MaxAge: 28,
			},
			expectedError: true,
		},
		{
			name: "file logger max size too large",
			settings: &LoggerSettings{
				LogLevel: LogLevelInfo, LogType: LogTypeFile,
				FilePath: "/tmp/api.log", MaxSize: 101, MaxBackups: 3, MaxAge: 28,
			},
			expectedError: true,
		},
		{
			name: "console logger ignores rotation settings",
			settings: &LoggerSettings{
				LogLevel: LogLevelWarning, LogType: LogTypeConsole, FilePath: "/tmp/api.log",
			},
			expectedError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerSettings_ApplyDefaults(t *testing.T) {
	t.Run("file logger gets path and rotation", func(t *testing.T) {
		s := &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile}
		s.ApplyDefaults()

		assert.Equal(t, DefaultLogFilePath, s.FilePath)
		assert.Equal(t, DefaultLogMaxSizeMB, s.MaxSize)
		assert.Equal(t, DefaultLogMaxBackups, s.MaxBackups)
		assert.Equal(t, DefaultLogMaxAgeDays, s.MaxAge)
		require.NoError(t, s.Validate())
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		s := &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "/srv/sf/api.log", MaxSize: 5}
		s.ApplyDefaults()

		assert.Equal(t, "/srv/sf/api.log", s.FilePath)
		assert.Equal(t, 5, s.MaxSize)
		assert.Equal(t, DefaultLogMaxBackups, s.MaxBackups)
	})

	t.Run("console logger untouched", func(t *testing.T) {
		s := &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole}
		s.ApplyDefaults()

		assert.Empty(t, s.FilePath)
		assert.Zero(t, s.MaxSize)
	})
}
