package ui

import (
	"log/slog"
	"sync"
)

// Announcer receives accessibility status messages.
type Announcer interface {
	Announce(message string)
}

// AnnouncerFunc adapts a function to Announcer.
type AnnouncerFunc func(message string)

func (f AnnouncerFunc) Announce(message string) { f(message) }

// LiveRegion is the terminal equivalent of an ARIA live region: it keeps the
// latest announcement for the status line and mirrors it to the log.
type LiveRegion struct {
	mu      sync.Mutex
	message string
	count   int
	logger  *slog.Logger
}

func NewLiveRegion(logger *slog.Logger) *LiveRegion {
	if logger == nil {
		logger = slog.Default()
	}
	return &LiveRegion{logger: logger}
}

func (lr *LiveRegion) Announce(message string) {
	lr.mu.Lock()
	lr.message = message
	lr.count++
	lr.mu.Unlock()
	lr.logger.Info("announce", "message", message)
}

// Message returns the latest announcement, or "" once cleared.
func (lr *LiveRegion) Message() string {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.message
}

// Count is incremented on every announcement.
func (lr *LiveRegion) Count() int {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.count
}

// ClearIf clears the message if no announcement happened since count.
func (lr *LiveRegion) ClearIf(count int) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	if lr.count == count {
		lr.message = ""
	}
}

// announce delivers message without letting a misbehaving announcer
// interrupt the caller.
func announce(a Announcer, logger *slog.Logger, message string) {
	if a == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("announcer panicked", "message", message, "panic", r)
		}
	}()
	a.Announce(message)
}
