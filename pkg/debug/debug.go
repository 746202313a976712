package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger atomic.Pointer[zap.Logger]
	once   sync.Once

	// mu guards the cores below and the files closed by Close.
	mu         sync.Mutex
	configured zapcore.Core
	name       string
	debugCore  zapcore.Core
	files      []*lumberjack.Logger
)

// Options configures the process-wide logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json or console
	Name   string

	// File, when set, receives a JSON copy of every entry and is rotated by size.
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// Initialize builds the process-wide logger writing to console. Only the first
// call has an effect. A debug file opened by Init, before or after, keeps
// receiving every entry alongside it.
func Initialize(opts Options, console zapcore.WriteSyncer) {
	once.Do(func() {
		level := zap.NewAtomicLevel()
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			level.SetLevel(zap.InfoLevel)
		}

		cores := []zapcore.Core{zapcore.NewCore(encoder(opts.Format), console, level)}
		mu.Lock()
		defer mu.Unlock()
		if opts.File != "" {
			w := rotated(opts.File, opts.MaxSize, opts.MaxBackups, opts.MaxAge, opts.Compress)
			files = append(files, w)
			cores = append(cores, zapcore.NewCore(encoder("json"), zapcore.AddSync(w), level))
		}
		configured = zapcore.NewTee(cores...)
		name = opts.Name
		rebuild()
	})
}

// Init sends debug logging to the file at path, rotated by lumberjack.
// If path is empty, uses "debug.log" in the current directory. Only the first
// call opens a file.
func Init(path string) error {
	if path == "" {
		path = "debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if debugCore != nil {
		return nil
	}
	w := rotated(path, 10, 3, 0, false)
	files = append(files, w)
	debugCore = zapcore.NewCore(encoder("json"), zapcore.AddSync(w), zap.DebugLevel)
	rebuild()
	return nil
}

func rotated(path string, size, backups, age int, compress bool) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    size,
		MaxBackups: backups,
		MaxAge:     age,
		Compress:   compress,
	}
}

// rebuild stores a logger teeing the configured and debug cores. Callers hold mu.
func rebuild() {
	var cores []zapcore.Core
	if configured != nil {
		cores = append(cores, configured)
	}
	if debugCore != nil {
		cores = append(cores, debugCore)
	}
	l := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel))
	if name != "" {
		l = l.Named(name)
	}
	logger.Store(l)
}

func encoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	if format == "console" {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(cfg)
}

// Logger returns the process-wide logger, or a nop logger before
// initialization.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}

// Sync flushes buffered entries, ignoring the errors stdout and stderr return
// on platforms where they cannot be synced.
func Sync() {
	l := logger.Load()
	if l == nil {
		return
	}
	if err := l.Sync(); err != nil {
		msg := err.Error()
		if !strings.Contains(msg, "sync /dev/std") &&
			!strings.Contains(msg, "invalid argument") &&
			!strings.Contains(msg, "inappropriate ioctl") {
			fmt.Fprintln(os.Stderr, "error: failed to sync logger:", err)
		}
	}
}

// Close flushes the logger and closes any log files it opened.
func Close() error {
	Sync()
	mu.Lock()
	defer mu.Unlock()

	var err error
	for _, f := range files {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	files = nil
	return err
}

// ResetForTest drops the logger so the next Initialize takes effect. Tests only.
func ResetForTest() {
	_ = Close()
	mu.Lock()
	configured, debugCore, name = nil, nil, ""
	mu.Unlock()
	logger.Store(nil)
	once = sync.Once{}
}

