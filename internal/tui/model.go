// Package tui provides the Bubble Tea device simulator and drill screens.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/verte-zerg/speechdrill/internal/clock"
	"github.com/verte-zerg/speechdrill/internal/device"
	"github.com/verte-zerg/speechdrill/internal/drill"
	"github.com/verte-zerg/speechdrill/internal/gesture"
	"github.com/verte-zerg/speechdrill/internal/model"
)

type screen int

const (
	screenIntro screen = iota
	screenLog
	screenAdd
	screenArtic
	screenMode
	screenPractice
	screenGame
)

const (
	tabReaction = iota
	tabRecall
)

// Roster is the patient storage the TUI needs.
type Roster interface {
	AddPatient(ctx context.Context, p model.Patient) (model.Patient, error)
	ListPatients(ctx context.Context) ([]model.Patient, error)
	DeletePatient(ctx context.Context, id string) error
}

// loopMsg carries a fired scheduler callback onto the Update goroutine.
type loopMsg func()

// drillView is what a drill screen shows.
type drillView struct {
	clock    string
	prompt   string
	feedback string
	word     string
	score    int
	state    drill.State
}

// Model implements the Bubble Tea application.
type Model struct {
	cfg    model.Config
	roster Roster
	logger *zap.Logger
	loop   *clock.Loop
	sched  clock.Scheduler
	origin time.Time
	now    func() time.Time

	width  int
	height int

	screen  screen
	errMsg  string
	notice  string
	gesture model.Gesture

	device   device.Simulator
	detector *gesture.Detector

	patients      []model.Patient
	patientCursor int
	patient       *model.Patient
	soundCursor   int
	sound         string

	addInputs []textinput.Model
	addIndex  int

	practice     *drill.Practice
	practiceView drillView
	practiceSecs textinput.Model

	gameTab      int
	reaction     *drill.Reaction
	reactionView drillView
	reactionSecs textinput.Model
	recall       *drill.WordRecall
	recallView   drillView
	recallSecs   textinput.Model
	recallWords  textarea.Model
	editingWords bool

	help help.Model
	keys keyMap
}

// NewModel constructs the application model. roster may be nil, in which
// case the patient screens show an empty roster.
func NewModel(cfg model.Config, roster Roster, logger *zap.Logger) *Model {
	loop := clock.NewLoop(16)
	m := newModel(cfg, roster, logger, loop)
	m.loop = loop
	return m
}

func newModel(cfg model.Config, roster Roster, logger *zap.Logger, sched clock.Scheduler) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(cfg.Sounds) == 0 {
		cfg.Sounds = []string{"La"}
	}
	m := &Model{
		cfg:    cfg,
		roster: roster,
		logger: logger,
		sched:  sched,
		origin: time.Now(),
		now:    time.Now,
		help:   help.New(),
		keys:   newKeyMap(),
	}
	m.detector = gesture.New(sched,
		gesture.WithLogger(logger.Named("gesture")),
		gesture.OnDouble(func() {
			m.gesture = model.GestureDouble
			m.navigate(screenPractice)
		}),
		gesture.OnTriple(func() {
			m.gesture = model.GestureTriple
			m.navigate(screenGame)
		}),
	)
	m.initInputs()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForLoop()
}

func (m *Model) waitForLoop() tea.Cmd {
	if m.loop == nil {
		return nil
	}
	events := m.loop.Events()
	return func() tea.Msg {
		return loopMsg(<-events)
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInputs()
		return m, nil
	case loopMsg:
		msg()
		return m, m.waitForLoop()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Close()
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenAdd:
		return m.updateAdd(msg)
	case screenGame:
		if m.editingWords {
			return m.updateWords(msg)
		}
	}
	m.errMsg = ""
	if msg.String() == "b" {
		m.pressButton()
		return m, nil
	}
	switch m.screen {
	case screenIntro:
		return m.updateIntro(msg)
	case screenLog:
		return m.updateLog(msg)
	case screenArtic:
		return m.updateArtic(msg)
	case screenMode:
		return m.updateMode(msg)
	case screenPractice:
		return m.updatePractice(msg)
	case screenGame:
		return m.updateGame(msg)
	}
	return m, nil
}

// pressButton feeds the device button into the gesture detector.
func (m *Model) pressButton() {
	m.gesture = m.detector.RecordPress(m.now().Sub(m.origin))
}

// navigate switches screens. Drill controllers are created on entry and
// discarded on exit so no timer outlives its screen.
func (m *Model) navigate(to screen) {
	if m.screen == to {
		return
	}
	m.leave(m.screen)
	m.logger.Debug("navigate", zap.Int("from", int(m.screen)), zap.Int("to", int(to)))
	m.screen = to
	m.notice = ""
	switch to {
	case screenLog:
		m.loadPatients()
	case screenAdd:
		m.resetAddForm()
	case screenPractice:
		m.enterPractice()
	case screenGame:
		m.enterGame()
	}
}

func (m *Model) leave(from screen) {
	switch from {
	case screenPractice:
		if m.practice != nil {
			m.practice.Stop()
			m.practice = nil
		}
	case screenGame:
		if m.reaction != nil {
			m.reaction.Stop()
			m.reaction = nil
		}
		if m.recall != nil {
			m.recall.Stop()
			m.recall = nil
		}
		m.editingWords = false
		m.recallWords.Blur()
	}
}

func (m *Model) stopDrills() {
	m.leave(screenPractice)
	m.leave(screenGame)
	m.detector.Reset()
}

// Close stops every drill and releases the scheduler loop. It is safe to
// call more than once.
func (m *Model) Close() {
	m.stopDrills()
	if m.loop != nil {
		m.loop.Close()
	}
}

func (m *Model) setErr(err error) {
	if err == nil {
		m.errMsg = ""
		return
	}
	m.errMsg = err.Error()
	if !isValidation(err) {
		m.logger.Error("action failed", zap.Error(err))
	}
}

func isValidation(err error) bool {
	return errors.Is(err, drill.ErrNotReady) ||
		errors.Is(err, drill.ErrEmptyWordList) ||
		errors.Is(err, drill.ErrRunning) ||
		errors.Is(err, device.ErrNotConnected)
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.screen {
	case screenIntro:
		body = m.viewIntro()
	case screenLog:
		body = m.viewLog()
	case screenAdd:
		body = m.viewAdd()
	case screenArtic:
		body = m.viewArtic()
	case screenMode:
		body = m.viewMode()
	case screenPractice:
		body = m.viewPractice()
	case screenGame:
		body = m.viewGame()
	}
	lines := []string{body, ""}
	if m.notice != "" {
		lines = append(lines, noticeStyle.Render(m.notice))
	}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}
	lines = append(lines, m.renderFooter())
	out := strings.Join(lines, "\n")
	if m.width > 0 && m.height > 0 {
		return fitLines(out, m.width, m.height)
	}
	return out
}

func (m *Model) renderFooter() string {
	status := fmt.Sprintf("device: %s  gesture: %s", connectedLabel(m.device.Connected()), m.gesture)
	return footerStyle.Render(status) + "\n" + m.help.ShortHelpView(m.keys.forScreen(m))
}

func connectedLabel(connected bool) string {
	if connected {
		return "connected"
	}
	return "disconnected"
}
