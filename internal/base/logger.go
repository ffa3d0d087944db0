package base

import (
	"context"
	"fmt"
	"github.com/fatih/color"
	"github.com/half-nothing/simple-launch/internal/interfaces/global"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const LevelFatal = slog.Level(12)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgCyan),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
	LevelFatal:      color.New(color.FgHiRed, color.Bold),
}

func levelName(level slog.Level) string {
	if level >= LevelFatal {
		return "FATAL"
	}
	return level.String()
}

// consoleHandler writes "time [LEVEL] message key=value" lines with a coloured level
type consoleHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
}

func newConsoleHandler(writer io.Writer, level slog.Leveler) *consoleHandler {
	return &consoleHandler{mu: &sync.Mutex{}, writer: writer, level: level}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder
	sb.WriteString(record.Time.Format("2006-01-02 15:04:05.000"))
	sb.WriteString(" ")
	name := fmt.Sprintf("[%-5s]", levelName(record.Level))
	if c, ok := levelColors[record.Level]; ok {
		name = c.Sprint(name)
	}
	sb.WriteString(name)
	sb.WriteString(" ")
	sb.WriteString(record.Message)
	for _, attr := range h.attrs {
		writeAttr(&sb, "", attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&sb, h.group, attr)
		return true
	})
	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, sb.String())
	return err
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

func writeAttr(sb *strings.Builder, group string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := qualify(group, attr.Key)
	if attr.Value.Kind() == slog.KindGroup {
		for _, child := range attr.Value.Group() {
			writeAttr(sb, key, child)
		}
		return
	}
	sb.WriteString(" ")
	sb.WriteString(key)
	sb.WriteString("=")
	sb.WriteString(attr.Value.String())
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handler := *h
	handler.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	handler.attrs = append(handler.attrs, h.attrs...)
	for _, attr := range attrs {
		handler.attrs = append(handler.attrs, slog.Attr{Key: qualify(h.group, attr.Key), Value: attr.Value})
	}
	return &handler
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	handler := *h
	handler.group = qualify(h.group, name)
	return &handler
}

type Logger struct {
	level  *slog.LevelVar
	writer io.Writer
	logger *slog.Logger
}

func NewLogger() *Logger {
	return NewLoggerWithWriter(os.Stdout)
}

func NewLoggerWithWriter(writer io.Writer) *Logger {
	level := &slog.LevelVar{}
	return &Logger{
		level:  level,
		writer: writer,
		logger: slog.New(newConsoleHandler(writer, level)),
	}
}

func (l *Logger) Init(debug bool) {
	if debug {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}
	slog.SetDefault(l.logger)
	l.DebugF("Debug mode enabled")
}

type LoggerShutdownCallback struct {
	writer io.Writer
}

func (lc *LoggerShutdownCallback) Invoke(_ context.Context) error {
	if file, ok := lc.writer.(*os.File); ok && file != os.Stdout && file != os.Stderr {
		return file.Close()
	}
	return nil
}

func (l *Logger) ShutdownCallback() global.Callable {
	return &LoggerShutdownCallback{writer: l.writer}
}

func (l *Logger) Debug(msg string, v ...interface{}) { l.logger.Debug(msg, v...) }

func (l *Logger) DebugF(msg string, v ...interface{}) { l.logger.Debug(fmt.Sprintf(msg, v...)) }

func (l *Logger) Info(msg string, v ...interface{}) { l.logger.Info(msg, v...) }

func (l *Logger) InfoF(msg string, v ...interface{}) { l.logger.Info(fmt.Sprintf(msg, v...)) }

func (l *Logger) Warn(msg string, v ...interface{}) { l.logger.Warn(msg, v...) }

func (l *Logger) WarnF(msg string, v ...interface{}) { l.logger.Warn(fmt.Sprintf(msg, v...)) }

func (l *Logger) Error(msg string, v ...interface{}) { l.logger.Error(msg, v...) }

func (l *Logger) ErrorF(msg string, v ...interface{}) { l.logger.Error(fmt.Sprintf(msg, v...)) }

func (l *Logger) Fatal(msg string, v ...interface{}) {
	l.logger.Log(context.Background(), LevelFatal, msg, v...)
}

func (l *Logger) FatalF(msg string, v ...interface{}) {
	l.logger.Log(context.Background(), LevelFatal, fmt.Sprintf(msg, v...))
}
