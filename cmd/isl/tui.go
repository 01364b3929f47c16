package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	translation "github.com/srinithi0406/ISL/core"
	"github.com/srinithi0406/ISL/core/events"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	stateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	glossStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	interimStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

type eventMsg struct {
	event events.Event
}

type sessionReadyMsg struct {
	session *translation.LiveSession
}

type sessionEndedMsg struct{}

type liveModel struct {
	session *translation.LiveSession

	viewport viewport.Model
	ready    bool

	state       events.State
	interim     string
	currentClip string
	lines       []string
	err         error
}

func newLiveModel() liveModel {
	return liveModel{state: events.StateIdle}
}

func (m liveModel) Init() tea.Cmd {
	return nil
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.session != nil {
				m.session.HardStop()
			}
			return m, tea.Quit
		case "s":
			if m.session != nil {
				m.session.Stop()
			}
		}

	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.refreshContent()

	case sessionReadyMsg:
		m.session = msg.session
		m.state = msg.session.State()

	case sessionEndedMsg:
		return m, tea.Quit

	case eventMsg:
		m.applyEvent(msg.event)
		m.refreshContent()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *liveModel) applyEvent(event events.Event) {
	switch typedEvent := event.(type) {
	case events.TranscriptInterim:
		m.interim = typedEvent.Transcript
	case events.TranscriptFinal:
		m.interim = ""
		m.lines = append(m.lines, "you: "+typedEvent.Transcript)
	case events.SentenceReordered:
		m.lines = append(m.lines, glossStyle.Render("isl: "+typedEvent.TokenText()))
	case events.ClipPlayed:
		m.currentClip = typedEvent.Key
	case events.PlaybackDrained:
		m.currentClip = ""
	case events.SessionStateChanged:
		m.state = typedEvent.State
	case events.SessionFailed:
		m.err = typedEvent.Err
	}
}

func (m *liveModel) refreshContent() {
	if !m.ready {
		return
	}

	var builder strings.Builder
	for _, line := range m.lines {
		builder.WriteString(wordwrap.String(line, m.viewport.Width))
		builder.WriteString("\n")
	}
	if m.interim != "" {
		builder.WriteString(interimStyle.Render(wordwrap.String("... "+m.interim, m.viewport.Width)))
		builder.WriteString("\n")
	}
	m.viewport.SetContent(builder.String())
	m.viewport.GotoBottom()
}

func (m liveModel) View() string {
	if !m.ready {
		return "starting..."
	}

	header := titleStyle.Render("ISL live translation") + "  " + stateStyle.Render(string(m.state))
	if m.session != nil {
		texts, clips := m.session.QueueDepths()
		header += helpStyle.Render(fmt.Sprintf("  queued: %d chunks, %d clips", texts, clips))
	}
	if m.currentClip != "" {
		header += "  " + glossStyle.Render("playing: "+m.currentClip)
	}

	footer := helpStyle.Render("s: stop listening and drain  q: quit")
	if m.err != nil {
		footer = errorStyle.Render("error: "+m.err.Error()) + "\n" + footer
	}

	return fmt.Sprintf("%s\n\n%s\n%s", header, m.viewport.View(), footer)
}

// runLiveTUI starts a live session and mirrors its events into a terminal
// UI. The session is stopped when the UI exits, whichever way it exits.
func runLiveTUI(ctx context.Context, translator *translation.Translator) error {
	program := tea.NewProgram(newLiveModel(), tea.WithAltScreen(), tea.WithContext(ctx))

	session, err := translator.StartLive(ctx, translation.WithEventHandler(func(event events.Event) {
		program.Send(eventMsg{event: event})
	}))
	if err != nil {
		return err
	}
	program.Send(sessionReadyMsg{session: session})

	go func() {
		<-session.Done()
		program.Send(sessionEndedMsg{})
	}()

	_, err = program.Run()
	session.HardStop()
	return err
}
