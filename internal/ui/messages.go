package ui

import (
	"time"

	"caid/internal/content"
)

// Bubble Tea messages
type loadedMsg struct {
	snap     content.Snapshot
	degraded bool
	err      error
}

// execReadyMsg fires once the simulated processing delay has elapsed.
type execReadyMsg struct{}

// websiteReadyMsg fires after the delay that precedes the website view.
type websiteReadyMsg struct{}

type inquiryResultMsg struct {
	receipt content.InquiryReceipt
	err     error
}

type trackedMsg struct {
	command string
	err     error
}

// periodic tick for status bar time
type tickMsg time.Time
