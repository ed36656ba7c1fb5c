package ui

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiveRegion(t *testing.T) {
	var buf bytes.Buffer
	lr := NewLiveRegion(slog.New(slog.NewTextHandler(&buf, nil)))

	assert.Empty(t, lr.Message())
	assert.Equal(t, 0, lr.Count())

	lr.Announce("Loading characters from page 1")
	assert.Equal(t, "Loading characters from page 1", lr.Message())
	assert.Equal(t, 1, lr.Count())
	assert.Contains(t, buf.String(), "Loading characters from page 1")

	lr.Announce("Loaded 20 characters on page 1 of 42")
	lr.ClearIf(1)
	assert.Equal(t, "Loaded 20 characters on page 1 of 42", lr.Message(), "stale clear must not wipe a newer message")

	lr.ClearIf(2)
	assert.Empty(t, lr.Message())
}

func TestAnnounce_RecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	boom := AnnouncerFunc(func(string) { panic("screen reader gone") })

	assert.NotPanics(t, func() { announce(boom, logger, "hello") })
	assert.Contains(t, buf.String(), "announcer panicked")

	assert.NotPanics(t, func() { announce(nil, logger, "hello") })
}
