package debug

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "BOXLAYOUT_DEBUG"

var (
	out     io.Writer
	logFile *os.File
	mu      sync.Mutex
	envOnce sync.Once
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "boxlayout-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "boxlayout-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	out = f
	return nil
}

// SetOutput routes debug messages to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	envOnce.Do(func() {})
	out = w
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	out = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// fromEnv opens the log named by EnvVar the first time logging is consulted.
// Caller must hold mu.
func fromEnv() {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" && out == nil {
			initLocked(path)
		}
	})
}

// Enabled reports whether debug messages are written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	fromEnv()
	return out != nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	fromEnv()
	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%s] %s\n", timestamp, msg)
	if logFile != nil {
		logFile.Sync()
	}
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}

// Float formats a length for log output, printing NaN as "undefined".
func Float(v float64) string {
	if math.IsNaN(v) {
		return "undefined"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
