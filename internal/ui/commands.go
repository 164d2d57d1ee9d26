package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"caid/internal/client"
	"caid/internal/content"
)

const (
	// execDelay is the simulated processing time of every command.
	execDelay = 300 * time.Millisecond
	// websiteDelay separates the website command output from the view switch.
	websiteDelay = 500 * time.Millisecond
	// requestTimeout bounds every backend call made by the TUI.
	requestTimeout = 10 * time.Second
)

func loadCmd(src client.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		snap, degraded, err := client.Load(ctx, src)
		return loadedMsg{snap: snap, degraded: degraded, err: err}
	}
}

func execDelayCmd() tea.Cmd {
	return tea.Tick(execDelay, func(time.Time) tea.Msg { return execReadyMsg{} })
}

func websiteDelayCmd() tea.Cmd {
	return tea.Tick(websiteDelay, func(time.Time) tea.Msg { return websiteReadyMsg{} })
}

// trackCmd reports an executed command. Failures are only logged.
func trackCmd(b Backend, t content.CommandTrack) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return trackedMsg{command: t.Command, err: b.TrackCommand(ctx, t)}
	}
}

func submitInquiryCmd(b Backend, in content.InquiryCreate) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		r, err := b.CreateInquiry(ctx, in)
		return inquiryResultMsg{receipt: r, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}
