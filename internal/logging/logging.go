// internal/logging/logging.go
// Package logging routes the standard logger to stderr and an optional log file.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init sends log output to stderr and, when logPath is set, appends it to
// that file. Parent directories are created as needed. Stdout is left to
// command output.
func Init(logPath string) error {
	return initWriters(os.Stderr, logPath)
}

func initWriters(console io.Writer, logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	if console != nil {
		writers = append(writers, console)
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create log directory: %w", err)
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = file
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// FileOnly sends log output to the log file alone, or nowhere when no file
// is open, until the returned func restores the previous writer. Full-screen
// terminal programs use it so log lines do not draw over the screen.
func FileOnly() (restore func()) {
	mu.Lock()
	defer mu.Unlock()

	prev := log.Writer()
	if logFile != nil {
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}
	return func() { log.SetOutput(prev) }
}

// Close releases the log file and restores stderr output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// LogEvent logs a formatted message.
func LogEvent(format string, args ...any) {
	log.Println(fmt.Sprintf(format, args...))
}

// LogRequest logs one served HTTP request.
func LogRequest(method, path, requestID string, status int, elapsed time.Duration) {
	log.Println(buildRequestMessage(method, path, requestID, status, elapsed))
}

// LogSelection logs the selection a render was built from.
func LogSelection(source string, selection any) {
	src := strings.TrimSpace(source)
	if src == "" {
		src = "unknown"
	}
	log.Printf("[SELECTION] source=%s selection=%s", src, formatPayload(selection))
}

func buildRequestMessage(method, path, requestID string, status int, elapsed time.Duration) string {
	m := strings.ToUpper(strings.TrimSpace(method))
	if m == "" {
		m = "-"
	}
	p := strings.TrimSpace(path)
	if p == "" {
		p = "/"
	}
	id := strings.TrimSpace(requestID)
	if id == "" {
		id = "none"
	}
	parts := []string{
		"[HTTP]",
		fmt.Sprintf("method=%s", m),
		fmt.Sprintf("path=%s", p),
		fmt.Sprintf("status=%d", status),
		fmt.Sprintf("elapsed=%s", elapsed.Round(time.Microsecond)),
		fmt.Sprintf("request_id=%s", id),
	}
	return strings.Join(parts, " ")
}

func formatPayload(payload any) string {
	switch v := payload.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(v) == "" {
			return `""`
		}
		return v
	case []byte:
		if len(v) == 0 {
			return "[]"
		}
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
