package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "snake-pit.log"
	maxLogSize  = 10 * 1024 * 1024
)

// SetupLogging points the standard logger at logs/snake-pit.log when debug
// is on and discards everything otherwise; the screen belongs to the
// frontend. A log bigger than maxLogSize is renamed with a timestamp
// first. The caller closes the returned file, which is nil when logging
// is off. On error the logger is left discarding.
func SetupLogging(debug bool) (*os.File, error) {
	log.SetOutput(io.Discard)
	if !debug {
		return nil, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir,
			fmt.Sprintf("snake-pit-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, fmt.Errorf("rotating log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
