// Package tui provides a Bubble Tea terminal user interface for
// organize-my-beats.
package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"organizemybeats/internal/config"
	"organizemybeats/internal/model"
	"organizemybeats/internal/organizer"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
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

	yearStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateOrganizing
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   organizer.ProgressLevel
}

// eventBuffer collects engine progress events across goroutines; the
// UI drains it on its tick.
type eventBuffer struct {
	mu     sync.Mutex
	events []organizer.ProgressEvent
}

func (b *eventBuffer) Append(event organizer.ProgressEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *eventBuffer) Drain() []organizer.ProgressEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state       State
	sourceInput textinput.Model
	destInput   textinput.Model
	focused     int
	spinner     spinner.Model
	progress    progress.Model
	settings    *config.Settings
	logs        []LogEntry
	err         error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	// Engine and its buffered events
	engine *organizer.Engine
	events *eventBuffer
	result *model.Result

	// Options
	overwrite   bool
	unknownYear bool
	verbose     bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	settings := config.DefaultSettings()

	source := textinput.New()
	source.Placeholder = "/path/to/music"
	source.Focus()
	source.CharLimit = 500
	source.Width = 60

	dest := textinput.New()
	dest.Placeholder = settings.DestinationPath
	dest.CharLimit = 500
	dest.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:       StateInput,
		sourceInput: source,
		destInput:   dest,
		spinner:     sp,
		progress:    prog,
		settings:    settings,
		unknownYear: settings.UnknownYearFolder,
		logs:        make([]LogEntry, 0),
		events:      &eventBuffer{},
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// OrganizeDoneMsg is sent when the run finishes.
	OrganizeDoneMsg struct {
		Result *model.Result
		Err    error
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
			if m.state == StateOrganizing {
				m.cancel()
			}

		case "tab", "shift+tab":
			if m.state == StateInput {
				m.focused = (m.focused + 1) % 2
				if m.focused == 0 {
					m.sourceInput.Focus()
					m.destInput.Blur()
				} else {
					m.destInput.Focus()
					m.sourceInput.Blur()
				}
				return m, nil
			}

		case "ctrl+o":
			if m.state == StateInput {
				m.overwrite = !m.overwrite
			}

		case "ctrl+u":
			if m.state == StateInput {
				m.unknownYear = !m.unknownYear
			}

		case "ctrl+v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "enter":
			if m.state == StateInput && m.sourceInput.Value() != "" {
				m.state = StateOrganizing
				m.logs = nil
				cfg := m.settings.ToConfig(m.sourceInput.Value(), m.destInput.Value())
				cfg.Overwrite = m.overwrite
				cfg.UnknownYear = m.unknownYear
				m.engine = organizer.NewEngine(cfg, m.events.Append)
				return m, tea.Batch(m.startOrganize(), m.tickProgress(), m.spinner.Tick)
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.result = nil
				m.engine = nil
				m.events = &eventBuffer{}
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.sourceInput.Focus()
				m.destInput.Blur()
				m.focused = 0
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case OrganizeDoneMsg:
		m.drainEvents()
		m.result = msg.Result
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else if msg.Result != nil && msg.Result.Aborted {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.engine != nil && m.state == StateOrganizing {
			m.drainEvents()

			processed, total := m.engine.Progress()
			var percent float64
			if total > 0 {
				percent = float64(processed) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text inputs
	if m.state == StateInput {
		var cmd tea.Cmd
		m.sourceInput, cmd = m.sourceInput.Update(msg)
		cmds = append(cmds, cmd)
		m.destInput, cmd = m.destInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// drainEvents moves buffered engine events into the visible log tail.
func (m *Model) drainEvents() {
	for _, event := range m.events.Drain() {
		if event.Level == organizer.LevelVerbose && !m.verbose {
			continue
		}
		m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
	}
	// Keep only last 10 logs
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 Organize My Beats"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Sort your music into year folders"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateOrganizing:
		b.WriteString(m.viewOrganizing())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Source directory:"))
	b.WriteString("\n")
	b.WriteString(m.sourceInput.View())
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Destination directory:"))
	b.WriteString("\n")
	b.WriteString(m.destInput.View())
	b.WriteString("\n\n")

	overwriteCheck := "[ ]"
	if m.overwrite {
		overwriteCheck = "[×]"
	}
	unknownCheck := "[ ]"
	if m.unknownYear {
		unknownCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Overwrite existing files (ctrl+o)\n", overwriteCheck))
	b.WriteString(fmt.Sprintf("  %s Unknown Year folder (ctrl+u)\n", unknownCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+v)\n", verboseCheck))

	return b.String()
}

func (m Model) viewOrganizing() string {
	var b strings.Builder

	processed, total := int32(0), int32(0)
	if m.engine != nil {
		processed, total = m.engine.Progress()
	}

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Organizing..."))
	b.WriteString("\n\n")

	var percent float64
	if total > 0 {
		percent = float64(processed) / float64(total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", processed, total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	stats := model.Stats{}
	if m.result != nil {
		stats = m.result.Stats
	}

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Organization Complete!\n\n"+
			"Processed: %d\n"+
			"Copied: %d\n"+
			"Skipped: %d\n"+
			"Errors: %d",
		stats.Total,
		stats.Copied,
		stats.Skipped,
		stats.Errors,
	))
	b.WriteString(box)
	b.WriteString("\n\n")

	if len(stats.Years) > 0 {
		b.WriteString(subtitleStyle.Render("Files by year:"))
		b.WriteString("\n")
		for _, year := range sortedYears(stats.Years) {
			b.WriteString(yearStyle.Render(fmt.Sprintf("  %s: %d", year, stats.Years[year])))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
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
		case organizer.LevelError:
			style = errorStyle
			prefix = "✗"
		case organizer.LevelWarning:
			style = warningStyle
			prefix = "!"
		case organizer.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case organizer.LevelInfo:
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
		return "enter: start • tab: next field • ctrl+o/u/v: toggle options • esc: quit"
	case StateOrganizing:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// startOrganize runs the engine in the background.
func (m *Model) startOrganize() tea.Cmd {
	engine := m.engine
	ctx := m.ctx
	return func() tea.Msg {
		if engine == nil {
			return OrganizeDoneMsg{Err: fmt.Errorf("no engine")}
		}
		result, err := engine.Organize(ctx)
		return OrganizeDoneMsg{Result: result, Err: err}
	}
}

func sortedYears(years map[string]int) []string {
	keys := make([]string, 0, len(years))
	for year := range years {
		keys = append(keys, year)
	}
	// Newest first, Unknown Year last
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == model.UnknownYearFolder {
			return false
		}
		if keys[j] == model.UnknownYearFolder {
			return true
		}
		return keys[i] > keys[j]
	})
	return keys
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
