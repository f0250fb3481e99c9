package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/speechdrill/internal/model"
)

const nameColumn = 24

func (m *Model) updateIntro(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Connect):
		m.device.Connect()
	case key.Matches(msg, m.keys.Disconnect):
		m.device.Disconnect()
	case key.Matches(msg, m.keys.Touch):
		m.setErr(m.device.ToggleTouch())
	case key.Matches(msg, m.keys.Next):
		if err := m.device.RequireConnected(); err != nil {
			m.errMsg = "Please connect the device before proceeding."
			return m, nil
		}
		m.navigate(screenLog)
	}
	return m, nil
}

func (m *Model) viewIntro() string {
	lights := m.device.Lights()
	panel := strings.Join([]string{
		titleStyle.Render("Device simulator"),
		fmt.Sprintf("%s red  %s yellow  %s green",
			renderLight("red", lights.Red),
			renderLight("yellow", lights.Yellow),
			renderLight("green", lights.Green),
		),
		mutedStyle.Render("Press the device button twice for practice, three times for games."),
	}, "\n")
	return cardStyle.Render(panel)
}

func (m *Model) loadPatients() {
	m.patients = nil
	if m.roster == nil {
		return
	}
	patients, err := m.roster.ListPatients(context.Background())
	if err != nil {
		m.setErr(fmt.Errorf("failed to load patients: %w", err))
		return
	}
	m.patients = patients
	if m.patientCursor >= len(patients) {
		m.patientCursor = max(0, len(patients)-1)
	}
}

func (m *Model) updateLog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.patientCursor > 0 {
			m.patientCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.patientCursor < len(m.patients)-1 {
			m.patientCursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.navigate(screenAdd)
		return m, m.setAddIndex(0)
	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()
	case key.Matches(msg, m.keys.Next):
		if len(m.patients) == 0 {
			return m, nil
		}
		p := m.patients[m.patientCursor]
		m.patient = &p
		m.navigate(screenArtic)
	case key.Matches(msg, m.keys.Back):
		m.navigate(screenIntro)
	}
	return m, nil
}

func (m *Model) deleteSelected() {
	if m.roster == nil || len(m.patients) == 0 {
		return
	}
	p := m.patients[m.patientCursor]
	if err := m.roster.DeletePatient(context.Background(), p.ID); err != nil {
		m.setErr(fmt.Errorf("failed to remove patient: %w", err))
		return
	}
	m.notice = fmt.Sprintf("Removed %s", p.Name)
	m.loadPatients()
}

func (m *Model) viewLog() string {
	lines := []string{titleStyle.Render("Patients")}
	if len(m.patients) == 0 {
		lines = append(lines, cardStyle.Render("No patients yet. Press a to add a patient."))
		return strings.Join(lines, "\n")
	}
	for i, p := range m.patients {
		row := fmt.Sprintf("%s  Age %-3d  %s", padRight(p.Name, nameColumn), p.Age, truncate(p.Problem, 40))
		if i == m.patientCursor {
			lines = append(lines, selectStyle.Render("> "+row))
		} else {
			lines = append(lines, "  "+row)
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) initInputs() {
	m.addInputs = []textinput.Model{
		newInput("Name: ", "", 64),
		newInput("Age: ", "", 3),
		newInput("Problem: ", "", 128),
	}
	m.practiceSecs = newInput("Seconds: ", m.cfg.PracticeSeconds, 4)
	m.reactionSecs = newInput("Seconds: ", m.cfg.GameSeconds, 4)
	m.recallSecs = newInput("Seconds: ", m.cfg.GameSeconds, 4)
	m.recallWords = newWordsArea()
}

func newInput(prompt, value string, limit int) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = limit
	input.SetValue(value)
	return input
}

func (m *Model) resizeInputs() {
	width := max(20, m.width-4)
	for i := range m.addInputs {
		m.addInputs[i].Width = width - lipgloss.Width(m.addInputs[i].Prompt)
	}
	m.recallWords.SetWidth(min(width, 60))
}

func (m *Model) resetAddForm() {
	for i := range m.addInputs {
		m.addInputs[i].SetValue("")
	}
}

func (m *Model) setAddIndex(idx int) tea.Cmd {
	count := len(m.addInputs)
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.addIndex = idx
	var cmd tea.Cmd
	for i := range m.addInputs {
		if i == m.addIndex {
			cmd = m.addInputs[i].Focus()
		} else {
			m.addInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.errMsg = ""
		m.navigate(screenLog)
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, m.setAddIndex(m.addIndex + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.setAddIndex(m.addIndex - 1)
	case tea.KeyEnter:
		if err := m.submitPatient(); err != nil {
			m.setErr(err)
			return m, nil
		}
		m.errMsg = ""
		m.navigate(screenLog)
		return m, nil
	}
	var cmd tea.Cmd
	m.addInputs[m.addIndex], cmd = m.addInputs[m.addIndex].Update(msg)
	return m, cmd
}

func (m *Model) submitPatient() error {
	ageText := strings.TrimSpace(m.addInputs[1].Value())
	age := 0
	if ageText != "" {
		v, err := strconv.Atoi(ageText)
		if err != nil {
			return fmt.Errorf("age must be a number")
		}
		age = v
	}
	p := model.Patient{
		Name:    m.addInputs[0].Value(),
		Age:     age,
		Problem: m.addInputs[2].Value(),
	}
	if m.roster == nil {
		return fmt.Errorf("patient roster is unavailable")
	}
	saved, err := m.roster.AddPatient(context.Background(), p)
	if err != nil {
		return fmt.Errorf("failed to add patient: %w", err)
	}
	m.notice = fmt.Sprintf("Added %s", saved.Name)
	return nil
}

func (m *Model) viewAdd() string {
	lines := []string{titleStyle.Render("Add patient")}
	for _, input := range m.addInputs {
		lines = append(lines, input.View())
	}
	return strings.Join(lines, "\n")
}

func (m *Model) updateArtic(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.soundCursor > 0 {
			m.soundCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.soundCursor < len(m.cfg.Sounds)-1 {
			m.soundCursor++
		}
	case key.Matches(msg, m.keys.Next):
		m.sound = m.cfg.Sounds[m.soundCursor]
		m.navigate(screenMode)
	case key.Matches(msg, m.keys.Back):
		m.navigate(screenLog)
	}
	return m, nil
}

func (m *Model) viewArtic() string {
	name := "Unknown"
	if m.patient != nil {
		name = m.patient.Name
	}
	chips := make([]string, 0, len(m.cfg.Sounds))
	for i, s := range m.cfg.Sounds {
		if i == m.soundCursor {
			chips = append(chips, activeTabStyle.Render(s))
		} else {
			chips = append(chips, inactiveTabStyle.Render(s))
		}
	}
	return titleStyle.Render("Patient: "+truncate(name, nameColumn)) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m *Model) updateMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Practice):
		m.navigate(screenPractice)
	case key.Matches(msg, m.keys.Game):
		m.navigate(screenGame)
	case key.Matches(msg, m.keys.Back):
		m.navigate(screenArtic)
	}
	return m, nil
}

func (m *Model) viewMode() string {
	sound := m.sound
	if sound == "" {
		sound = "none"
	}
	return titleStyle.Render("Articulation: "+sound) + "\n" +
		mutedStyle.Render("p: practice mode   g: game mode")
}
