package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Level nivel de severidad del log
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger escribe logs con niveles a un archivo y a stdout
type Logger struct {
	file  *os.File
	out   *log.Logger
	level Level
}

// New crea un logger que escribe en filePath y en stdout.
// level acepta: debug, info, warn, error.
func New(filePath, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("logger: failed to create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: failed to open log file: %w", err)
	}

	return &Logger{
		file:  file,
		out:   log.New(io.MultiWriter(os.Stdout, file), "", log.LstdFlags),
		level: lvl,
	}, nil
}

func parseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("logger: unknown log level %q", level)
	}
}

func (l *Logger) write(lvl Level, prefix, format string, v ...interface{}) {
	if lvl < l.level {
		return
	}
	l.out.Printf(prefix+" "+format, v...)
}

// Debug escribe un log de nivel DEBUG
func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, "[DEBUG]", format, v...)
}

// Info escribe un log de nivel INFO
func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, "[INFO]", format, v...)
}

// Warn escribe un log de nivel WARN
func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, "[WARN]", format, v...)
}

// Error escribe un log de nivel ERROR
func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, "[ERROR]", format, v...)
}

// Fatal escribe un log de nivel FATAL y termina el proceso
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.out.Printf("[FATAL] "+format, v...)
	l.Close()
	os.Exit(1)
}

// Close cierra el archivo de log
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
