// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"bytes"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/sahilm/fuzzy"

	"github.com/bureau-foundation/console"
	"github.com/bureau-foundation/console/lineedit"
	"github.com/bureau-foundation/console/menu"
)

// defaultWidth is assumed until the first WindowSizeMsg arrives.
const defaultWidth = 80

// chromeLines is the fixed vertical space around the scrollback
// viewport: header, separator, input line, completion bar, status bar.
const chromeLines = 5

// wheelScrollLines is how many viewport lines one mouse wheel tick
// scrolls.
const wheelScrollLines = 3

// Model is the top-level bubbletea model for the console TUI. It owns
// a [console.Session] writing into an in-memory transcript; completed
// lines from the input field are handed to the session through
// InputLine, and the transcript is drained into the scrollback
// viewport after every dispatch. The session's own prompt is
// suppressed because the input field draws it.
type Model struct {
	session    *console.Session
	transcript *bytes.Buffer

	promptFunc console.PromptFunc
	theme      Theme
	styles     styles

	input    textinput.Model
	viewport viewport.Model

	// Everything the session has written, before width-wrapping.
	scrollback *bytes.Buffer

	history     *lineedit.History
	historyPath string

	// historyIndex equals history.Len() while the live line is being
	// edited; stash holds the live line during recall.
	historyIndex int
	stash        string

	// Completion state. candidates holds the current menu's command
	// words plus the builtins; matches is the fuzzy ranking of the
	// command word being typed.
	candidates   []string
	matches      fuzzy.Matches
	tabActive    bool
	tabIndex     int
	preTabText   string
	preTabCursor int

	// Transient status-line message from log records or dispatch
	// failures; empty shows the keyboard help text.
	status      string
	statusLevel slog.Level

	logHandler *LogHandler

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	quitting bool
}

// NewModel creates a model over the tree rooted at root. The session
// starts immediately: the root menu's entry hook fires and its output
// becomes the first scrollback content.
func NewModel(root *menu.Menu, options ...Option) (Model, error) {
	settings := newSettings()
	for _, option := range options {
		option(&settings)
	}

	transcript := &bytes.Buffer{}
	sessionOptions := []console.Option{
		// The input field draws the prompt; the session must not write
		// its own copy into the transcript.
		console.WithPrompt(func([]string) string { return "" }),
		console.WithRootExit(console.RootExitClose),
	}
	if settings.logger != nil {
		sessionOptions = append(sessionOptions, console.WithLogger(settings.logger))
	}
	if settings.handlerContext != nil {
		sessionOptions = append(sessionOptions, console.WithContext(settings.handlerContext))
	}
	session, err := console.New(root, transcript, sessionOptions...)
	if err != nil {
		return Model{}, err
	}

	renderer := lipgloss.NewRenderer(settings.colorOutput)
	if settings.profileSet {
		renderer = lipgloss.NewRenderer(settings.colorOutput, termenv.WithProfile(settings.profile))
		// Renderer.ColorProfile() re-detects from the environment
		// unless the profile is also set explicitly.
		renderer.SetColorProfile(settings.profile)
	}

	input := textinput.New()
	input.Focus()
	input.CharLimit = console.DefaultLineCapacity
	input.Width = defaultWidth

	model := Model{
		session:      session,
		transcript:   transcript,
		promptFunc:   settings.prompt,
		theme:        settings.theme,
		styles:       newStyles(renderer, settings.theme),
		input:        input,
		scrollback:   &bytes.Buffer{},
		history:      settings.history,
		historyPath:  settings.historyPath,
		historyIndex: settings.history.Len(),
		logHandler:   settings.logHandler,
	}
	model.syncPrompt()

	if settings.banner != "" {
		model.scrollback.WriteString(settings.banner + "\n")
	}
	if err := session.Start(); err != nil {
		return Model{}, err
	}
	model.drainTranscript()
	model.refreshCandidates()
	return model, nil
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.MouseMsg:
		switch message.Button {
		case tea.MouseButtonWheelUp:
			model.viewport.LineUp(wheelScrollLines)
		case tea.MouseButtonWheelDown:
			model.viewport.LineDown(wheelScrollLines)
		}
		return model, nil

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.viewport.Width = message.Width
		viewportHeight := message.Height - chromeLines
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		model.viewport.Height = viewportHeight
		model.sizeInput()
		model.syncViewport()
		return model, nil

	case logMsg:
		model.status = message.Summary
		model.statusLevel = message.Level
		return model, tea.Tick(statusFadeDelay, func(time.Time) tea.Msg {
			return statusFadeMsg{}
		})

	case statusFadeMsg:
		model.status = ""
		return model, nil
	}

	// Cursor blink and other component messages.
	var command tea.Cmd
	model.input, command = model.input.Update(message)
	return model, command
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyCtrlC:
		if model.input.Value() == "" {
			model.quitting = true
			return model, tea.Quit
		}
		model.input.SetValue("")
		model.tabActive = false
		model.historyIndex = model.history.Len()
		model.refreshMatches()
		return model, nil

	case tea.KeyCtrlD:
		if model.input.Value() == "" {
			model.quitting = true
			return model, tea.Quit
		}
		return model, nil

	case tea.KeyEnter:
		if model.tabActive && len(model.matches) > 0 {
			// Lock in the cycled candidate without dispatching.
			model.tabActive = false
			model.refreshMatches()
			return model, nil
		}
		return model.submitLine()

	case tea.KeyTab:
		return model.handleTab(false)

	case tea.KeyShiftTab:
		return model.handleTab(true)

	case tea.KeyUp:
		return model.historyPrevious()

	case tea.KeyDown:
		return model.historyNext()

	case tea.KeyPgUp:
		model.viewport.HalfViewUp()
		return model, nil

	case tea.KeyPgDown:
		model.viewport.HalfViewDown()
		return model, nil

	case tea.KeyCtrlL:
		model.scrollback.Reset()
		model.syncViewport()
		return model, nil

	case tea.KeyEsc:
		if model.tabActive {
			model.tabActive = false
			model.input.SetValue(model.preTabText)
			model.input.SetCursor(model.preTabCursor)
			model.refreshMatches()
		}
		return model, nil

	case tea.KeyRunes, tea.KeySpace:
		// A space locks the cycled candidate and moves on to argument
		// text; any other rune detaches from cycling and edits.
		model.tabActive = false
		model.historyIndex = model.history.Len()
		var command tea.Cmd
		model.input, command = model.input.Update(message)
		model.refreshMatches()
		return model, command
	}

	// Backspace, delete, cursor movement: edit the line in place.
	model.tabActive = false
	model.historyIndex = model.history.Len()
	var command tea.Cmd
	model.input, command = model.input.Update(message)
	model.refreshMatches()
	return model, command
}

// submitLine hands the input line to the session, echoes it into the
// scrollback, and drains whatever the dispatch wrote.
func (model Model) submitLine() (tea.Model, tea.Cmd) {
	line := model.input.Value()
	model.input.SetValue("")
	model.tabActive = false

	if strings.TrimSpace(line) == "" {
		model.refreshMatches()
		return model, nil
	}

	echo := model.styles.prompt.Render(model.promptText()) + model.styles.command.Render(line)
	model.scrollback.WriteString(echo + "\n")
	model.history.Append(line)
	model.historyIndex = model.history.Len()
	model.stash = ""

	var commands []tea.Cmd
	if err := model.session.InputLine(line); err != nil {
		model.status = err.Error()
		model.statusLevel = slog.LevelError
		commands = append(commands, tea.Tick(statusFadeDelay, func(time.Time) tea.Msg {
			return statusFadeMsg{}
		}))
	}
	model.drainTranscript()
	model.syncPrompt()
	model.refreshCandidates()
	model.refreshMatches()

	if model.session.Closed() {
		model.quitting = true
		commands = append(commands, tea.Quit)
	}
	return model, tea.Batch(commands...)
}

// handleTab starts or advances candidate cycling. A single match
// completes immediately with a separating space.
func (model Model) handleTab(reverse bool) (tea.Model, tea.Cmd) {
	if len(model.matches) == 0 {
		return model, nil
	}

	if len(model.matches) == 1 {
		model.replaceCommandWord(model.matches[0].Str, true)
		model.tabActive = false
		model.matches = nil
		return model, nil
	}

	if model.tabActive {
		if reverse {
			model.tabIndex--
			if model.tabIndex < 0 {
				model.tabIndex = len(model.matches) - 1
			}
		} else {
			model.tabIndex++
			if model.tabIndex >= len(model.matches) {
				model.tabIndex = 0
			}
		}
	} else {
		model.tabActive = true
		model.preTabText = model.input.Value()
		model.preTabCursor = model.input.Position()
		if reverse {
			model.tabIndex = len(model.matches) - 1
		} else {
			model.tabIndex = 0
		}
	}

	model.replaceCommandWord(model.matches[model.tabIndex].Str, false)
	return model, nil
}

// replaceCommandWord swaps the command word (everything before the
// first whitespace) for the replacement, leaving argument text in
// place. When confirmed and no arguments follow, a separating space is
// appended so typing continues with the next token.
func (model *Model) replaceCommandWord(replacement string, confirmed bool) {
	value := model.input.Value()
	rest := ""
	if index := strings.IndexAny(value, " \t"); index >= 0 {
		rest = value[index:]
	}
	if confirmed && rest == "" {
		replacement += " "
	}
	model.input.SetValue(replacement + rest)
	model.input.SetCursor(len(replacement))
}

func (model Model) historyPrevious() (tea.Model, tea.Cmd) {
	if model.historyIndex == 0 || model.history.Len() == 0 {
		return model, nil
	}
	if model.historyIndex == model.history.Len() {
		model.stash = model.input.Value()
	}
	model.historyIndex--
	model.showHistoryEntry(model.history.Entry(model.historyIndex))
	return model, nil
}

func (model Model) historyNext() (tea.Model, tea.Cmd) {
	if model.historyIndex >= model.history.Len() {
		return model, nil
	}
	model.historyIndex++
	if model.historyIndex == model.history.Len() {
		model.showHistoryEntry(model.stash)
	} else {
		model.showHistoryEntry(model.history.Entry(model.historyIndex))
	}
	return model, nil
}

func (model *Model) showHistoryEntry(line string) {
	model.tabActive = false
	model.input.SetValue(line)
	model.input.SetCursor(len(line))
	model.refreshMatches()
}

// refreshCandidates rebuilds the completion candidate list from the
// current menu's command words plus the builtins.
func (model *Model) refreshCandidates() {
	current := model.session.Current()
	words := make([]string, 0, len(current.Items)+2)
	for _, item := range current.Items {
		words = append(words, item.Command)
	}
	words = append(words, "help", "exit")
	model.candidates = words
}

// refreshMatches recomputes the fuzzy ranking for the command word.
// Completion applies to the first whitespace-delimited word only, and
// only while the cursor is inside it; a word that already equals its
// sole candidate needs no bar.
func (model *Model) refreshMatches() {
	if !model.tabActive {
		model.tabIndex = 0
	}

	value := model.input.Value()
	word := value
	if index := strings.IndexAny(value, " \t"); index >= 0 {
		if model.input.Position() > index {
			model.matches = nil
			return
		}
		word = value[:index]
	}
	if word == "" {
		model.matches = nil
		return
	}

	model.matches = fuzzy.Find(word, model.candidates)
	if len(model.matches) == 1 && model.matches[0].Str == word {
		model.matches = nil
	}
}

// drainTranscript moves anything the session wrote into the scrollback
// and scrolls the viewport to the newest output.
func (model *Model) drainTranscript() {
	if model.transcript.Len() > 0 {
		model.scrollback.Write(model.transcript.Bytes())
		model.transcript.Reset()
	}
	model.syncViewport()
}

// syncViewport re-wraps the scrollback at the current width and pins
// the viewport to the bottom.
func (model *Model) syncViewport() {
	if !model.ready {
		return
	}
	content := strings.TrimRight(model.scrollback.String(), "\n")
	if content != "" {
		content = lipgloss.NewStyle().Width(model.width).Render(content)
	}
	model.viewport.SetContent(content)
	model.viewport.GotoBottom()
}

// syncPrompt re-renders the input prompt from the session's menu path
// and resizes the text area to the remaining width.
func (model *Model) syncPrompt() {
	model.input.Prompt = model.styles.prompt.Render(model.promptText())
	model.sizeInput()
}

func (model *Model) sizeInput() {
	if !model.ready {
		return
	}
	width := model.width - ansi.StringWidth(model.promptText()) - 2
	if width < 1 {
		width = 1
	}
	model.input.Width = width
}

func (model Model) promptText() string {
	return model.promptFunc(model.session.Path())
}

// View implements tea.Model.
func (model Model) View() string {
	if model.quitting {
		return ""
	}
	if !model.ready {
		return "Loading..."
	}

	sections := []string{
		model.renderHeader(),
		model.viewport.View(),
		model.styles.border.Render(strings.Repeat("─", model.width)),
		model.input.View(),
		model.renderCompletionBar(),
		model.renderStatus(),
	}
	return strings.Join(sections, "\n")
}

func (model Model) renderHeader() string {
	header := model.styles.header.Render(" console ") +
		model.styles.path.Render(strings.Join(model.session.Path(), "/"))
	if ansi.StringWidth(header) > model.width {
		header = ansi.Truncate(header, model.width, "…")
	}
	return header
}

// renderCompletionBar builds the single-line candidate bar, ellipsized
// to the terminal width. The candidate selected while tab-cycling is
// rendered inverted.
func (model Model) renderCompletionBar() string {
	if len(model.matches) == 0 {
		return ""
	}

	const separator = "  "
	ellipsis := model.styles.help.Render("...")
	ellipsisWidth := ansi.StringWidth(ellipsis)

	var bar strings.Builder
	used := 0
	for index, match := range model.matches {
		selected := model.tabActive && index == model.tabIndex
		rendered := model.renderCandidate(match, selected)

		entryWidth := ansi.StringWidth(rendered)
		if index > 0 {
			entryWidth += len(separator)
		}
		if used+entryWidth+ellipsisWidth > model.width && index > 0 {
			bar.WriteString(separator)
			bar.WriteString(ellipsis)
			break
		}

		if index > 0 {
			bar.WriteString(separator)
		}
		bar.WriteString(rendered)
		used += entryWidth
	}
	return bar.String()
}

// renderCandidate renders one candidate with its matched characters
// highlighted.
func (model Model) renderCandidate(match fuzzy.Match, selected bool) string {
	base := model.styles.candidate
	highlight := model.styles.match
	if selected {
		base = model.styles.selected
		highlight = model.styles.selectedMatch
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, index := range match.MatchedIndexes {
		matched[index] = true
	}

	var rendered strings.Builder
	for index, r := range match.Str {
		if matched[index] {
			rendered.WriteString(highlight.Render(string(r)))
		} else {
			rendered.WriteString(base.Render(string(r)))
		}
	}
	return rendered.String()
}

func (model Model) renderStatus() string {
	if model.status != "" {
		style := model.styles.help
		switch {
		case model.statusLevel >= slog.LevelError:
			style = model.styles.errorStatus
		case model.statusLevel >= slog.LevelWarn:
			style = model.styles.warnStatus
		}
		return style.Render(" " + model.status)
	}
	return model.styles.help.Render(" tab complete  ↑↓ history  pgup/pgdn scroll  ctrl+l clear  ctrl+d quit")
}
