// Package tui is the interactive check-in screen: today's habits with their
// progress, driven by the status engine.
package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitctl/internal/checkins"
	"github.com/julianstephens/habitctl/internal/habits"
	"github.com/julianstephens/habitctl/internal/models"
	"github.com/julianstephens/habitctl/internal/status"
	"github.com/julianstephens/habitctl/internal/storage"
)

type sessionState int

const (
	stateList sessionState = iota
	stateAddHabit
)

type habitFormModel struct {
	Name     string
	Schedule string
	Period   string
	Target   string
}

type Model struct {
	store        storage.Provider
	today        string
	state        sessionState
	rows         []status.TodayRow
	cursor       int
	showArchived bool
	keys         KeyMap
	help         help.Model
	form         *huh.Form
	habitForm    *habitFormModel
	err          error
	quitting     bool
}

func NewModel(store storage.Provider, today string) Model {
	m := Model{
		store: store,
		today: today,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	m.err = m.reload()
	return m
}

func (m *Model) reload() error {
	db, err := m.store.Load()
	if err != nil {
		return err
	}
	snap := status.Build(db, status.Params{Date: m.today, IncludeArchived: m.showArchived})
	m.rows = snap.Today.Habits
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return nil
}

func (m *Model) adjustCheckin(delta int) error {
	if len(m.rows) == 0 {
		return nil
	}
	row := m.rows[m.cursor]
	err := m.store.Update(func(db *models.DB) error {
		if delta > 0 {
			_, err := checkins.Add(db, row.ID, m.today, delta)
			return err
		}
		return checkins.Set(db, row.ID, m.today, 0)
	})
	if err != nil {
		return err
	}
	return m.reload()
}

func (m *Model) newHabitForm() *huh.Form {
	m.habitForm = &habitFormModel{Schedule: "everyday", Period: "day", Target: "1"}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&m.habitForm.Name),
		huh.NewInput().Title("Schedule").
			Description("everyday, weekdays, weekends or mon,tue,...").
			Value(&m.habitForm.Schedule),
		huh.NewSelect[string]().Title("Period").
			Options(huh.NewOption("per day", "day"), huh.NewOption("per week", "week")).
			Value(&m.habitForm.Period),
		huh.NewInput().Title("Target").Value(&m.habitForm.Target),
	))
}

func (m *Model) submitHabitForm() error {
	target, err := strconv.Atoi(m.habitForm.Target)
	if err != nil {
		target = -1
	}
	err = m.store.Update(func(db *models.DB) error {
		id := habits.NextID(db)
		h, err := habits.New(id, habits.NewParams{
			Name:            m.habitForm.Name,
			SchedulePattern: m.habitForm.Schedule,
			Period:          m.habitForm.Period,
			Target:          target,
			Today:           m.today,
		})
		if err != nil {
			return err
		}
		db.Habits = append(db.Habits, h)
		return nil
	})
	if err != nil {
		return err
	}
	return m.reload()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateAddHabit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Checkin):
			m.err = m.adjustCheckin(1)
		case key.Matches(msg, m.keys.Clear):
			m.err = m.adjustCheckin(0)
		case key.Matches(msg, m.keys.Archived):
			m.showArchived = !m.showArchived
			m.err = m.reload()
		case key.Matches(msg, m.keys.Add):
			m.state = stateAddHabit
			m.form = m.newHabitForm()
			return m, m.form.Init()
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = stateList
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.err = m.submitHabitForm()
		m.state = stateList
		m.form = nil
	}
	return m, cmd
}
