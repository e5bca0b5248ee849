package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorGray   = "\033[90m"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

var levelColors = [...]string{ColorGray, ColorBlue, ColorYellow, ColorRed, ColorPurple}

func (l LogLevel) String() string {
	if l < DEBUG || l > FATAL {
		return "UNKNOWN"
	}
	return levelNames[l]
}

type coloredLogger struct {
	mu      sync.RWMutex
	verbose bool
	color   bool
	writers [FATAL + 1]io.Writer
	loggers [FATAL + 1]*log.Logger
	exit    func(int)
}

var std = newColoredLogger(os.Stdout)

func newColoredLogger(w io.Writer) *coloredLogger {
	cl := &coloredLogger{color: true, exit: os.Exit}
	for level := DEBUG; level <= FATAL; level++ {
		cl.setWriter(level, w)
	}
	return cl
}

func (cl *coloredLogger) setWriter(level LogLevel, w io.Writer) {
	cl.writers[level] = w
	cl.loggers[level] = log.New(w, "", 0)
}

func SetVerbose(verbose bool) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.verbose = verbose
}

func IsVerbose() bool {
	std.mu.RLock()
	defer std.mu.RUnlock()
	return std.verbose
}

// SetColor toggles ANSI colour codes in the output.
func SetColor(color bool) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.color = color
}

func SetWriterForAll(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	for level := DEBUG; level <= FATAL; level++ {
		std.setWriter(level, w)
	}
}

// AddWriterForAll tees every level into w as well as the current writer.
func AddWriterForAll(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	for level := DEBUG; level <= FATAL; level++ {
		std.setWriter(level, io.MultiWriter(std.writers[level], w))
	}
}

func (cl *coloredLogger) format(level LogLevel, message string) string {
	timestamp := time.Now().Format("06-01-02 15:04:05")
	if !cl.color {
		return fmt.Sprintf("[%s] %-5s %s", timestamp, level, message)
	}
	return fmt.Sprintf(
		"%s[%s]%s %s%-5s%s %s",
		ColorGray, timestamp, ColorReset,
		levelColors[level], level, ColorReset,
		message,
	)
}

func (cl *coloredLogger) log(level LogLevel, format string, args ...interface{}) {
	cl.mu.RLock()
	if level == DEBUG && !cl.verbose {
		cl.mu.RUnlock()
		return
	}
	logger := cl.loggers[level]
	line := cl.format(level, fmt.Sprintf(format, args...))
	exit := cl.exit
	cl.mu.RUnlock()

	logger.Println(line)

	if level == FATAL {
		exit(1)
	}
}

func Debug(format string, args ...interface{}) {
	std.log(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	std.log(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	std.log(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	std.log(ERROR, format, args...)
}

func Fatal(format string, args ...interface{}) {
	std.log(FATAL, format, args...)
}
