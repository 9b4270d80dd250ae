package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// File logger defaults, applied when log_type is file and the value is unset.
// The path is relative to the API's working directory.
const (
	DefaultLogFilePath   = "logs/smartfitter.log"
	DefaultLogMaxSizeMB  = 50
	DefaultLogMaxBackups = 5
	DefaultLogMaxAgeDays = 30
)

// LoggerSettings selects console or rotating file output for the API and CLI.
// Rotation fields only apply to the file logger.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size" validate:"required_if=LogType file,gte=0,lte=100"`
	MaxBackups int    `mapstructure:"max_backups" validate:"required_if=LogType file,gte=0,lte=10"`
	MaxAge     int    `mapstructure:"max_age" validate:"required_if=LogType file,gte=0,lte=365"`
}

// ApplyDefaults fills the file path and rotation limits a file logger left
// unset. Console settings are not touched.
func (s *LoggerSettings) ApplyDefaults() {
	if s.LogType != LogTypeFile {
		return
	}
	if s.FilePath == "" {
		s.FilePath = DefaultLogFilePath
	}
	if s.MaxSize == 0 {
		s.MaxSize = DefaultLogMaxSizeMB
	}
	if s.MaxBackups == 0 {
		s.MaxBackups = DefaultLogMaxBackups
	}
	if s.MaxAge == 0 {
		s.MaxAge = DefaultLogMaxAgeDays
	}
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType == LogTypeFile && strings.HasSuffix(s.FilePath, string(os.PathSeparator)) {
		return fmt.Errorf("logger file_path %q must name a file, not a directory", s.FilePath)
	}
	return nil
}
