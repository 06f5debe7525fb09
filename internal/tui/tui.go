// Package tui provides a Bubble Tea terminal user interface for the
// downloader.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pcouy/inha-downloader/internal/config"
	"github.com/pcouy/inha-downloader/internal/download"
	"github.com/pcouy/inha-downloader/internal/ranges"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#C7923E")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateFetching
	StateDownloading
	StateComplete
	StateError
)

// focusable input fields on the entry screen.
const (
	focusURL = iota
	focusRange
	focusCount
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state      State
	urlInput   textinput.Model
	rangeInput textinput.Model
	focus      int
	spinner    spinner.Model
	progress   progress.Model
	settings   *config.Settings
	logs       []LogEntry
	albumName  string
	pageCount  int
	err        error

	ctx    context.Context
	cancel context.CancelFunc

	manager *download.Manager
	pages   []int
	events  chan download.ProgressEvent

	processed int
	requested int
	received  int64

	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	url := textinput.New()
	url.Placeholder = "https://bibliotheque-numerique.inha.fr/viewer/12148"
	url.Focus()
	url.CharLimit = 300
	url.Width = 64

	rng := textinput.New()
	rng.Placeholder = "all pages, or e.g. 1-3,5,7,10-15"
	rng.CharLimit = 120
	rng.Width = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#C7923E"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:      StateInput,
		urlInput:   url,
		rangeInput: rng,
		spinner:    sp,
		progress:   prog,
		settings:   config.DefaultSettings(),
		logs:       make([]LogEntry, 0),
		ctx:        ctx,
		cancel:     cancel,
		events:     make(chan download.ProgressEvent, 64),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent for each manager progress event.
	ProgressMsg struct {
		Event download.ProgressEvent
	}

	// FetchDoneMsg is sent when the album page has been parsed and the
	// range resolved.
	FetchDoneMsg struct {
		Manager   *download.Manager
		AlbumName string
		PageCount int
		Pages     []int
		Err       error
	}

	// DownloadDoneMsg is sent when the download loop ends.
	DownloadDoneMsg struct {
		Err error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateDownloading || m.state == StateFetching {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "tab", "shift+tab":
			if m.state == StateInput {
				m.focus = (m.focus + 1) % focusCount
				if m.focus == focusURL {
					m.urlInput.Focus()
					m.rangeInput.Blur()
				} else {
					m.urlInput.Blur()
					m.rangeInput.Focus()
				}
			}

		case "enter":
			if m.state == StateInput && m.urlInput.Value() != "" {
				m.state = StateFetching
				return m, tea.Batch(m.fetchAlbum(), m.spinner.Tick, m.listenForEvents())
			}

		case "ctrl+s":
			if m.state == StateInput {
				m.settings.SkipExisting = !m.settings.SkipExisting
			}

		case "ctrl+r":
			if m.state == StateInput {
				m.settings.ResizeImages = !m.settings.ResizeImages
			}

		case "ctrl+f":
			if m.state == StateInput {
				m.settings.WriteManifest = !m.settings.WriteManifest
			}

		case "ctrl+v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new download
				m.state = StateInput
				m.logs = nil
				m.albumName = ""
				m.pageCount = 0
				m.err = nil
				m.manager = nil
				m.pages = nil
				m.processed = 0
				m.requested = 0
				m.received = 0
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.urlInput.SetValue("")
				m.focus = focusURL
				m.urlInput.Focus()
				m.rangeInput.Blur()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		// Re-arm the listener so the next buffered event gets delivered.
		cmds = append(cmds, m.listenForEvents())
		if msg.Event.Level != download.LevelVerbose || m.verbose {
			m.logs = append(m.logs, LogEntry{
				Message: msg.Event.Message,
				Level:   msg.Event.Level,
			})
			// Keep only the last 10 logs
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
		}

	case FetchDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.manager = msg.Manager
			m.albumName = msg.AlbumName
			m.pageCount = msg.PageCount
			m.pages = msg.Pages
			m.state = StateDownloading
			cmds = append(cmds, m.startDownload(), m.tickProgress())
		}

	case DownloadDoneMsg:
		if m.manager != nil {
			m.processed, m.requested, m.received = m.manager.GetProgress()
		}
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateDownloading {
			m.processed, m.requested, m.received = m.manager.GetProgress()

			var percent float64
			if m.requested > 0 {
				percent = float64(m.processed) / float64(m.requested)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text inputs
	if m.state == StateInput {
		var cmd tea.Cmd
		if m.focus == focusURL {
			m.urlInput, cmd = m.urlInput.Update(msg)
		} else {
			m.rangeInput, cmd = m.rangeInput.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// sendEvent buffers a manager progress event for the UI loop.
//
// The send never blocks the download loop: when the buffer is full the event
// is dropped, which only loses log lines, never state transitions.
func (m Model) sendEvent(event download.ProgressEvent) {
	select {
	case m.events <- event:
	default:
	}
}

// listenForEvents waits for the next buffered progress event and delivers it
// as a ProgressMsg. The ProgressMsg handler re-arms it.
func (m Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		return ProgressMsg{Event: <-m.events}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("INHA Album Downloader"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Download page scans from bibliotheque-numerique.inha.fr"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateFetching:
		b.WriteString(m.viewFetching())
	case StateDownloading:
		b.WriteString(m.viewDownloading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Album URL:"))
	b.WriteString("\n")
	b.WriteString(m.urlInput.View())
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Pages:"))
	b.WriteString("\n")
	b.WriteString(m.rangeInput.View())
	b.WriteString("\n\n")

	check := func(on bool) string {
		if on {
			return "[x]"
		}
		return "[ ]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Skip existing files (ctrl+s)\n", check(m.settings.SkipExisting)))
	b.WriteString(fmt.Sprintf("  %s Resize images to %dpx (ctrl+r)\n", check(m.settings.ResizeImages), m.settings.MaxImageSize))
	b.WriteString(fmt.Sprintf("  %s Write manifest.json (ctrl+f)\n", check(m.settings.WriteManifest)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+v)\n", check(m.verbose)))

	return b.String()
}

func (m Model) viewFetching() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Fetching album info..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewDownloading() string {
	var b strings.Builder

	b.WriteString(successStyle.Render(fmt.Sprintf("%s (%d pages, %d requested)", m.albumName, m.pageCount, len(m.pages))))
	b.WriteString("\n\n")

	var percent float64
	if m.requested > 0 {
		percent = float64(m.processed) / float64(m.requested)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Pages: %d/%d | Downloaded: %.2f MB",
		m.processed,
		m.requested,
		float64(m.received)/1024/1024,
	)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	box := boxStyle.Render(fmt.Sprintf(
		"Download complete\n\n"+
			"Album: %s\n"+
			"Pages: %d\n"+
			"Size: %.2f MB",
		m.albumName,
		m.processed,
		float64(m.received)/1024/1024,
	))
	return box
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • tab: switch field • esc: quit"
	case StateFetching, StateDownloading:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new download • q: quit"
	}
	return ""
}

// fetchAlbum fetches the album page and resolves the page range.
func (m *Model) fetchAlbum() tea.Cmd {
	url := m.urlInput.Value()
	rangeSpec := strings.TrimSpace(m.rangeInput.Value())
	settings := m.settings
	ctx := m.ctx

	return func() tea.Msg {
		manager := download.NewManager(settings, m.sendEvent, nil)

		if err := manager.Initialize(ctx, url); err != nil {
			return FetchDoneMsg{Err: err}
		}

		album := manager.Album()
		var pages []int
		if rangeSpec == "" {
			pages = ranges.Full(album.PageCount())
		} else {
			var err error
			pages, err = ranges.Parse(rangeSpec, album.PageCount())
			if err != nil {
				return FetchDoneMsg{Err: err}
			}
		}

		return FetchDoneMsg{
			Manager:   manager,
			AlbumName: album.Title,
			PageCount: album.PageCount(),
			Pages:     pages,
		}
	}
}

// startDownload runs the download loop in the background.
func (m *Model) startDownload() tea.Cmd {
	manager := m.manager
	pages := m.pages
	ctx := m.ctx

	return func() tea.Msg {
		if manager == nil {
			return DownloadDoneMsg{Err: fmt.Errorf("no manager")}
		}
		return DownloadDoneMsg{Err: manager.DownloadPages(ctx, pages)}
	}
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
