package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/speechdrill/internal/drill"
	"github.com/verte-zerg/speechdrill/internal/session"
)

func newWordsArea() textarea.Model {
	area := textarea.New()
	area.Placeholder = "One word per line"
	area.ShowLineNumbers = false
	area.SetHeight(6)
	area.SetWidth(40)
	return area
}

// applyEvent folds a controller event into a view.
func applyEvent(v *drillView, ev drill.Event) {
	v.state = ev.State
	switch ev.Kind {
	case drill.EventTick:
		v.clock = ev.Clock
	case drill.EventScore:
		v.score = ev.Score
	case drill.EventFeedback:
		v.feedback = ev.Text
	case drill.EventWord:
		v.word = ev.Word
	case drill.EventPrompt:
		v.prompt = ev.Text
	}
}

func (m *Model) drillLogger(name string) *zap.Logger {
	return m.logger.Named(name)
}

func (m *Model) enterPractice() {
	m.practiceView = drillView{clock: session.FormatClock(0)}
	m.practice = drill.NewPractice(m.sched,
		drill.WithLogger(m.drillLogger("practice")),
		drill.WithSink(func(ev drill.Event) { applyEvent(&m.practiceView, ev) }),
	)
}

func (m *Model) enterGame() {
	m.reactionView = drillView{clock: session.FormatClock(0)}
	m.recallView = drillView{clock: session.FormatClock(0)}
	m.reaction = drill.NewReaction(m.sched,
		drill.WithLogger(m.drillLogger("reaction")),
		drill.WithSink(func(ev drill.Event) { applyEvent(&m.reactionView, ev) }),
	)
	m.recall = drill.NewWordRecall(m.sched,
		drill.WithLogger(m.drillLogger("recall")),
		drill.WithSink(func(ev drill.Event) { applyEvent(&m.recallView, ev) }),
	)
	if len(m.cfg.SeedWords) > 0 && strings.TrimSpace(m.recallWords.Value()) == "" {
		m.recallWords.SetValue(strings.Join(m.cfg.SeedWords, "\n"))
	}
}

// updateDigits forwards digit and deletion keys to a seconds input. It
// reports whether the key was consumed.
func updateDigits(input *textinput.Model, msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		value := input.Value()
		if value != "" {
			input.SetValue(value[:len(value)-1])
			input.CursorEnd()
		}
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if !unicode.IsDigit(r) {
				return false
			}
		}
		if input.CharLimit > 0 && len(input.Value())+len(msg.Runes) > input.CharLimit {
			return true
		}
		input.SetValue(input.Value() + string(msg.Runes))
		input.CursorEnd()
		return true
	}
	return false
}

func (m *Model) updatePractice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.practice == nil {
		return m, nil
	}
	if updateDigits(&m.practiceSecs, msg) {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Start):
		m.practice.Start(m.sound, m.practiceSecs.Value())
	case key.Matches(msg, m.keys.Stop):
		m.practice.Stop()
	case key.Matches(msg, m.keys.Correct):
		m.practice.Correct()
	case key.Matches(msg, m.keys.Wrong):
		m.practice.Wrong()
	case key.Matches(msg, m.keys.Shutdown):
		m.practice.Shutdown()
		farewell := m.practiceView.feedback
		m.navigate(screenIntro)
		m.notice = farewell
	case key.Matches(msg, m.keys.Back):
		m.navigate(screenMode)
	}
	return m, nil
}

func (m *Model) viewPractice() string {
	v := m.practiceView
	lines := []string{
		titleStyle.Render("Practice mode"),
		m.practiceSecs.View(),
		clockStyle.Render(v.clock) + "  " + mutedStyle.Render(v.state.String()),
	}
	if v.prompt != "" {
		lines = append(lines, wordStyle.Render(v.prompt))
	}
	lines = append(lines, fmt.Sprintf("Correct: %d", v.score))
	if v.feedback != "" {
		lines = append(lines, noticeStyle.Render(v.feedback))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.reaction == nil || m.recall == nil {
		return m, nil
	}
	if key.Matches(msg, m.keys.Tab) {
		m.gameTab = (m.gameTab + 1) % 2
		return m, nil
	}
	if key.Matches(msg, m.keys.Back) {
		m.navigate(screenMode)
		return m, nil
	}
	if m.gameTab == tabReaction {
		return m.updateReaction(msg)
	}
	return m.updateRecall(msg)
}

func (m *Model) updateReaction(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if updateDigits(&m.reactionSecs, msg) {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Ready):
		m.setErr(m.reaction.Ready())
	case key.Matches(msg, m.keys.Start):
		m.setErr(m.reaction.Start(m.reactionSecs.Value()))
	case key.Matches(msg, m.keys.Stop):
		m.reaction.Stop()
	case key.Matches(msg, m.keys.Touch):
		m.reaction.Touch()
	}
	return m, nil
}

func (m *Model) updateRecall(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if updateDigits(&m.recallSecs, msg) {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.EditWords):
		if m.recall.Running() {
			m.setErr(drill.ErrRunning)
			return m, nil
		}
		m.editingWords = true
		return m, m.recallWords.Focus()
	case key.Matches(msg, m.keys.Ready):
		m.setErr(m.recall.Ready(m.recallWords.Value()))
	case key.Matches(msg, m.keys.Start):
		m.setErr(m.recall.Start(m.recallSecs.Value()))
	case key.Matches(msg, m.keys.Stop):
		m.recall.Stop()
	case key.Matches(msg, m.keys.Correct):
		m.recall.Correct()
	case key.Matches(msg, m.keys.Wrong):
		m.recall.Wrong()
	}
	return m, nil
}

func (m *Model) updateWords(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.editingWords = false
		m.recallWords.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.recallWords, cmd = m.recallWords.Update(msg)
	return m, cmd
}

func (m *Model) renderTabs() string {
	tabs := []string{"Reaction", "Word recall"}
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		if i == m.gameTab {
			parts = append(parts, activeTabStyle.Render(tab))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) viewGame() string {
	var panel string
	if m.gameTab == tabReaction {
		v := m.reactionView
		lines := []string{
			m.reactionSecs.View(),
			clockStyle.Render(v.clock) + "  " + mutedStyle.Render(v.state.String()),
			fmt.Sprintf("Points: %d", v.score),
		}
		if v.feedback != "" {
			lines = append(lines, noticeStyle.Render(v.feedback))
		}
		panel = strings.Join(lines, "\n")
	} else {
		v := m.recallView
		lines := []string{
			m.recallSecs.View(),
			m.recallWords.View(),
			clockStyle.Render(v.clock) + "  " + mutedStyle.Render(v.state.String()),
		}
		if v.word != "" {
			lines = append(lines, wordStyle.Render(truncate(v.word, 40)))
		}
		lines = append(lines, fmt.Sprintf("Score: %d", v.score))
		if v.feedback != "" {
			lines = append(lines, noticeStyle.Render(v.feedback))
		}
		panel = strings.Join(lines, "\n")
	}
	return titleStyle.Render("Game mode") + "\n" + m.renderTabs() + "\n" + cardStyle.Render(panel)
}
