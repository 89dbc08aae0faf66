package recovery

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

type RestoreLogger struct {
	mu     sync.Mutex
	level  LogLevel
	logger *log.Logger
	file   *os.File
}

func NewRestoreLogger(logFile string, debug bool) *RestoreLogger {
	level := LevelInfo
	if debug {
		level = LevelDebug
	}

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err == nil {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err == nil {
				return &RestoreLogger{
					level:  level,
					file:   f,
					logger: log.New(io.MultiWriter(f, os.Stdout), "", 0),
				}
			}
		}
	}

	return &RestoreLogger{level: level, logger: log.New(os.Stdout, "", 0)}
}

func (l *RestoreLogger) log(level LogLevel, levelStr, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Printf("%s [RESTORE %s] %s", timestamp, levelStr, msg)
}

func (l *RestoreLogger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, "DEBUG", format, args...)
}

func (l *RestoreLogger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, "INFO ", format, args...)
}

func (l *RestoreLogger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, "WARN ", format, args...)
}

func (l *RestoreLogger) Error(format string, args ...interface{}) {
	l.log(LevelError, "ERROR", format, args...)
}

func (l *RestoreLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
