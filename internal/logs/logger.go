package logs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

type Options struct {
	// Level is one of debug, info, warn or error. Empty means warn.
	Level string
	// Terminal receives human-readable text records. Nil disables the text handler.
	Terminal io.Writer
	// File, when set, receives JSON records at debug level regardless of Level.
	File string
}

// Logger owns the handlers built by New. Close releases the log file, if any.
type Logger struct {
	*slog.Logger
	level  *slog.LevelVar
	closer io.Closer
}

var isSystemdService = detectSystemdService

func New(opts Options) (*Logger, error) {
	level := new(slog.LevelVar)
	parsed, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	level.Set(parsed)

	var handlers []slog.Handler
	underSystemd := isSystemdService()

	var terminalHandler slog.Handler
	if opts.Terminal != nil && !underSystemd {
		terminalHandler = slog.NewTextHandler(opts.Terminal, &slog.HandlerOptions{Level: level})
		handlers = append(handlers, terminalHandler)
	}

	var closer io.Closer
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		closer = file
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if underSystemd {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			if terminalHandler != nil {
				record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
				record.Add("error", err)
				_ = terminalHandler.Handle(context.Background(), record)
			}
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	return &Logger{
		Logger: slog.New(&Handler{Handler: slogmulti.Fanout(handlers...)}),
		level:  level,
		closer: closer,
	}, nil
}

// SetLevel changes the terminal and journal level at runtime.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", raw)
	}
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}

func detectSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
