package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/bubbles/textarea"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/unowned-ai/reflections/pkg/insights"
	"github.com/unowned-ai/reflections/pkg/journal"
	"github.com/unowned-ai/reflections/pkg/logging"
	"github.com/unowned-ai/reflections/pkg/share"
	"github.com/unowned-ai/reflections/pkg/themes"
)

const (
	viewEntry = iota
	viewDashboard
)

// Entry form fields in focus order
const (
	fieldDate = iota
	fieldMood
	fieldLabel
	fieldPast
	fieldFuture
	fieldReflection
	fieldCount
)

const (
	msgSaved        = "Journal Entry Saved."
	msgEmptyEntry   = "Please enter at least a mood or a reflection."
	msgShared       = "Reflection copied to clipboard."
	msgConfirmClear = "Are you sure you want to delete all entries? This cannot be undone."
)

// Options wires the TUI to its collaborators.
type Options struct {
	Store     *journal.Store
	Extractor *themes.Extractor
	Sharer    share.Sharer
	Logger    *logging.Logger
	// ExportDir receives dashboard exports. Defaults to the working directory.
	ExportDir string
	Now       func() time.Time
}

type model struct {
	store     *journal.Store
	extractor *themes.Extractor
	sharer    share.Sharer
	logger    *logging.Logger
	exportDir string
	now       func() time.Time

	view  int // viewEntry or viewDashboard
	focus int // Focused entry form field

	width  int // Current terminal width (for layout)
	height int // Current terminal height

	dateInput       textinput.Model
	labelInput      textinput.Model
	pastInput       textarea.Model
	futureInput     textarea.Model
	reflectionInput textarea.Model
	mood            int

	status      string
	statusLevel int // TextStatusColorize status: 1 ok, 2 error

	clearing      bool
	clearYesFocus bool // "Yes" highlighted in the clear confirmation

	quitting bool
}

func newTextarea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetHeight(textareaHeight)
	return ta
}

// Initialize TUI model
func initModel(opts Options) model {
	if opts.Extractor == nil {
		opts.Extractor = themes.New()
	}
	if opts.Sharer == nil {
		opts.Sharer = share.Clipboard{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	draft := journal.NewDraft(opts.Now())

	date := textinput.New()
	date.Placeholder = journal.DateLayout
	date.CharLimit = len(journal.DateLayout)
	date.SetValue(draft.Date)
	date.Focus()

	label := textinput.New()
	label.Placeholder = "e.g. Hopeful, Tired, Calm"
	label.CharLimit = 64

	return model{
		store:     opts.Store,
		extractor: opts.Extractor,
		sharer:    opts.Sharer,
		logger:    opts.Logger.Named("tui"),
		exportDir: opts.ExportDir,
		now:       opts.Now,

		view:  viewEntry,
		focus: fieldDate,

		dateInput:       date,
		labelInput:      label,
		pastInput:       newTextarea("Things I'm grateful for..."),
		futureInput:     newTextarea("Things I hope for..."),
		reflectionInput: newTextarea("What's on your mind?"),
		mood:            draft.Mood,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// draft collects the form into an unvalidated entry draft.
func (m model) draft() journal.Draft {
	return journal.Draft{
		Date:       strings.TrimSpace(m.dateInput.Value()),
		Mood:       m.mood,
		MoodLabel:  m.labelInput.Value(),
		Past:       m.pastInput.Value(),
		Future:     m.futureInput.Value(),
		Reflection: m.reflectionInput.Value(),
	}
}

func (m *model) setStatus(text string, level int) {
	m.status = text
	m.statusLevel = level
}

// Move focus to field, blurring the previous one
func (m *model) focusField(field int) tea.Cmd {
	m.dateInput.Blur()
	m.labelInput.Blur()
	m.pastInput.Blur()
	m.futureInput.Blur()
	m.reflectionInput.Blur()

	m.focus = (field + fieldCount) % fieldCount
	switch m.focus {
	case fieldDate:
		return m.dateInput.Focus()
	case fieldLabel:
		return m.labelInput.Focus()
	case fieldPast:
		return m.pastInput.Focus()
	case fieldFuture:
		return m.futureInput.Focus()
	case fieldReflection:
		return m.reflectionInput.Focus()
	}
	return nil
}

func (m *model) resize(width, height int) {
	m.width = width
	m.height = height

	inner := width - bordersAndPaddingWidth
	if inner < 10 {
		inner = 10
	}
	m.dateInput.Width = inner
	m.labelInput.Width = inner
	m.pastInput.SetWidth(inner)
	m.futureInput.SetWidth(inner)
	m.reflectionInput.SetWidth(inner)
}

// Processes events like window resize, action results, and key presses
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case savedMsg:
		m.setStatus(msgSaved, 1)
		m.labelInput.Reset()
		m.pastInput.Reset()
		m.futureInput.Reset()
		m.reflectionInput.Reset()
		return m, nil

	case clearedMsg:
		m.setStatus("All entries deleted.", 1)
		return m, nil

	case sharedMsg:
		m.setStatus(msgShared, 1)
		return m, nil

	case exportedMsg:
		m.setStatus("Exported to "+msg.path, 1)
		return m, nil

	case actionErrMsg:
		m.logger.Debug(context.Background(), "action failed", zap.Error(msg.err))
		if errors.Is(msg.err, journal.ErrEmptyEntry) {
			m.setStatus(msgEmptyEntry, 2)
		} else {
			m.setStatus(msg.err.Error(), 2)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.clearing {
			return m.updateClearConfirm(msg)
		}
		if msg.Type == tea.KeyTab {
			m.status = ""
			if m.view == viewEntry {
				m.view = viewDashboard
				return m, nil
			}
			m.view = viewEntry
			return m, m.focusField(m.focus)
		}
		if m.view == viewDashboard {
			return m.updateDashboard(msg)
		}
		return m.updateEntry(msg)
	}

	return m, nil
}

func (m model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return m, saveEntry(m.store, m.draft())
	case "ctrl+y":
		return m, shareDraft(m.sharer, m.draft())
	case "ctrl+d":
		url, ok := insights.DefineURL(m.labelInput.Value())
		if !ok {
			m.setStatus("Enter a mood label to look it up.", 2)
			return m, nil
		}
		m.setStatus("Define: "+url, 0)
		return m, nil
	case "ctrl+n", "shift+down":
		return m, m.focusField(m.focus + 1)
	case "ctrl+p", "shift+up":
		return m, m.focusField(m.focus - 1)
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldDate:
		if msg.Type == tea.KeyEnter {
			return m, m.focusField(m.focus + 1)
		}
		m.dateInput, cmd = m.dateInput.Update(msg)
	case fieldMood:
		switch msg.String() {
		case "left", "h", "-":
			if m.mood > journal.MinMood {
				m.mood--
			}
		case "right", "l", "+":
			if m.mood < journal.MaxMood {
				m.mood++
			}
		case "enter", "down":
			return m, m.focusField(m.focus + 1)
		case "up":
			return m, m.focusField(m.focus - 1)
		}
	case fieldLabel:
		if msg.Type == tea.KeyEnter {
			return m, m.focusField(m.focus + 1)
		}
		m.labelInput, cmd = m.labelInput.Update(msg)
	case fieldPast:
		m.pastInput, cmd = m.pastInput.Update(msg)
	case fieldFuture:
		m.futureInput, cmd = m.futureInput.Update(msg)
	case fieldReflection:
		m.reflectionInput, cmd = m.reflectionInput.Update(msg)
	}
	return m, cmd
}

func (m model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "e":
		return m, exportEntries(m.store, m.exportDir, m.now())
	case "x":
		if m.store.Len() == 0 {
			m.setStatus(insights.EmptyJournalHint, 0)
			return m, nil
		}
		m.clearing = true
		m.clearYesFocus = false
	}
	return m, nil
}

func (m model) updateClearConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "down", "left", "right", "k", "j":
		m.clearYesFocus = !m.clearYesFocus
	case "y":
		m.clearing = false
		return m, clearEntries(m.store)
	case "n", "esc":
		m.clearing = false
	case "enter":
		m.clearing = false
		if m.clearYesFocus {
			return m, clearEntries(m.store)
		}
	}
	return m, nil
}

// Assembles the UI string for each frame
func (m model) View() string {
	if m.quitting {
		return "Closing the journal. See you tomorrow.\n"
	}

	width := m.width
	if width == 0 {
		width = 80
	}

	tabs := []string{"Entry", "Dashboard"}
	for i, tab := range tabs {
		if i == m.view {
			tabs[i] = selectedStyle.Render(" " + tab + " ")
		} else {
			tabs[i] = inactiveStyle.Render(" " + tab + " ")
		}
	}
	titleBar := titleStyle.Width(width).Render("Reflections - daily journal")
	tabBar := strings.Join(tabs, " ")

	var body, footerText string
	if m.view == viewDashboard {
		body = m.dashboardView(width)
		footerText = "tab to write • e to export • x to clear all • q to quit"
	} else {
		body = m.entryView()
		footerText = "tab for dashboard • ctrl+n/ctrl+p next/prev field • ←/→ mood • ctrl+s save • ctrl+y share • ctrl+d define • ctrl+c quit"
	}

	status := ""
	if m.status != "" {
		status = "\n" + TextStatusColorize(m.status, m.statusLevel) + "\n"
	}
	footerBar := footerStyle.Width(width).Render(footerText)

	return titleBar + "\n" + tabBar + "\n\n" + body + "\n" + status + "\n" + footerBar
}

func (m model) fieldHeader(field int, title string) string {
	pointer := generateLinePointer(m.focus == field, 2)
	style := labelStyle
	if m.focus == field {
		style = subtitleStyle
	}
	return pointer + style.Render(title) + "\n"
}

func (m model) entryView() string {
	var b strings.Builder

	b.WriteString(m.fieldHeader(fieldDate, "Date"))
	b.WriteString(m.dateInput.View() + "\n\n")

	b.WriteString(m.fieldHeader(fieldMood, "Mood"))
	b.WriteString(moodBar(m.mood, m.focus == fieldMood) + "\n\n")

	b.WriteString(m.fieldHeader(fieldLabel, "Mood label"))
	b.WriteString(m.labelInput.View() + "\n\n")

	b.WriteString(m.fieldHeader(fieldPast, "Past: things I'm grateful for"))
	b.WriteString(m.pastInput.View() + "\n\n")

	b.WriteString(m.fieldHeader(fieldFuture, "Future: things I hope for"))
	b.WriteString(m.futureInput.View() + "\n\n")

	b.WriteString(m.fieldHeader(fieldReflection, "Reflection"))
	b.WriteString(m.reflectionInput.View() + "\n")

	return b.String()
}

func (m model) dashboardView(width int) string {
	if m.clearing {
		return subtitleStyle.Render("Clear journal") + "\n\n" +
			textStyle.Render(msgConfirmClear) + "\n\n" +
			confirmOptions(m.clearYesFocus) + "\n\n" +
			footerStyle.Render("(enter to confirm, esc to cancel, up/down to switch)")
	}

	entries := m.store.All()
	if len(entries) == 0 {
		return subtitleStyle.Render(insights.EmptyJournalTitle) + "\n\n" +
			inactiveStyle.Render(insights.EmptyJournalHint) + "\n"
	}

	inner := width - bordersAndPaddingWidth
	if inner < 10 {
		inner = 10
	}
	panel := panelStyle.Width(width - 2)

	trend := panel.Render(subtitleStyle.Render("Mood trend") + "\n" + moodTrendChart(insights.MoodTrend(entries), inner))
	cloud := panel.Render(subtitleStyle.Render("Themes") + "\n" + themeCloud(m.extractor.Extract(entries), inner))
	recent := panel.Render(subtitleStyle.Render("Recent logs") + "\n" + recentLogs(insights.Recent(entries, insights.RecentLimit)))

	return lipgloss.JoinVertical(lipgloss.Left, trend, cloud, recent)
}

// moodTrendChart draws a sparkline of the most recent points that fit,
// with the first and last date labels underneath.
func moodTrendChart(points []insights.TrendPoint, width int) string {
	if len(points) > width {
		points = points[len(points)-width:]
	}

	spark := sparkline.New(len(points), sparklineHeight)
	for _, p := range points {
		spark.Push(float64(p.Mood))
	}
	spark.Draw()

	first, last := points[0].Label, points[len(points)-1].Label
	axis := first
	if len(points) > 1 {
		gap := len(points) - len(first) - len(last)
		if gap < 1 {
			gap = 1
		}
		axis = first + strings.Repeat(" ", gap) + last
	}
	return sparkStyle.Render(spark.View()) + "\n" + inactiveStyle.Render(axis)
}

// themeCloud lays weighted words out in wrapped lines.
func themeCloud(stats []themes.WordStat, width int) string {
	if len(stats) == 0 {
		return inactiveStyle.Render(insights.EmptyThemes)
	}

	var lines []string
	var line strings.Builder
	lineLen := 0
	for _, ws := range stats {
		n := len([]rune(ws.Text))
		if lineLen > 0 && lineLen+1+n > width {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteString(" ")
			lineLen++
		}
		line.WriteString(cloudWordStyle(insights.Weight(ws.Value)).Render(ws.Text))
		lineLen += n
	}
	lines = append(lines, line.String())
	return strings.Join(lines, "\n")
}

func recentLogs(logs []insights.RecentLog) string {
	var b strings.Builder
	for i, log := range logs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", inactiveStyle.Render(log.Date), labelStyle.Render(log.Title)))
		b.WriteString(textStyle.Render(log.Preview) + "\n")
	}
	return b.String()
}

// Create and start the Bubble Tea TUI
func ShowTUI(opts Options) error {
	if opts.Store == nil {
		return errors.New("tui: a journal store is required")
	}
	p := tea.NewProgram(initModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
