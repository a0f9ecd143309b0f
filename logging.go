package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "snake.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging discards log output unless debug is set, in which case it
// appends to logs/snake.log, rotating a file that grew past maxLogSize.
// The frontend owns stdout and stderr while the game runs.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "[APP] [WARN] creating %s: %v\n", logDir, err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("snake-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "[APP] [WARN] rotating %s: %v\n", logPath, err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[APP] [WARN] opening %s: %v\n", logPath, err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// bufferEarlyLogs holds log output produced before setupLogging knows
// where it should go
func bufferEarlyLogs() *bytes.Buffer {
	early := &bytes.Buffer{}
	log.SetOutput(early)
	return early
}

// flushEarlyLogs replays buffered lines into the configured output
func flushEarlyLogs(early *bytes.Buffer) {
	if early == nil {
		return
	}
	if w := log.Writer(); w != io.Discard {
		_, _ = w.Write(early.Bytes())
	}
	early.Reset()
}
