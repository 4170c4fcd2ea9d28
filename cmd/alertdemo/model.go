package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/alertsheet"
	"github.com/agiangrant/alertsheet/alert"
	"github.com/agiangrant/alertsheet/internal/term"
	"github.com/agiangrant/alertsheet/presentation"
	"github.com/agiangrant/alertsheet/retained"
)

const frameInterval = time.Second / 60

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#8D99AE")).
	Padding(0, 1)

type model struct {
	controller *alertsheet.Controller
	presenter  *presentation.Presenter
	registry   *retained.AnimationRegistry
	dispatcher *retained.EventDispatcher
	renderer   *term.Renderer
	safeBottom float32

	cols, rows int
	ticking    bool
	animating  bool
	started    bool
	selected   string
	status     string
}

func newModel(style alert.VisualStyle, title, message string, actions []*alert.Action, behaviors alert.Behaviors, safeBottom float32) *model {
	renderer := term.NewRenderer(term.DefaultOptions())
	opts := renderer.Options()
	retained.SetMeasureTextWidthFunc(opts.MeasureTextWidth)

	registry := retained.NewAnimationRegistry()
	presenter := presentation.NewPresenter(retained.Screen{}, registry)

	m := &model{
		controller: alertsheet.New(title, message, style),
		presenter:  presenter,
		registry:   registry,
		dispatcher: retained.NewEventDispatcher(presenter.Container()),
		renderer:   renderer,
		safeBottom: safeBottom,
	}
	registry.OnActiveChange(func(active bool) { m.animating = active })
	m.controller.SetBehaviors(behaviors)
	for _, a := range actions {
		a.Handler = func(a *alert.Action) {
			m.selected = a.Title
			m.status = fmt.Sprintf("selected %q", a.Title)
		}
		if err := m.controller.AddAction(a); err != nil {
			m.status = err.Error()
		}
	}
	presenter.OnStateChange = func(from, to presentation.State) {
		if m.status == "" || to != presentation.StateIdle {
			m.status = to.String()
		}
	}
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		opts := m.renderer.Options()
		m.presenter.SetScreen(retained.Screen{
			Width:    float32(m.cols) * opts.CellWidth,
			Height:   float32(m.rows-1) * opts.CellHeight,
			SafeArea: retained.SafeAreaInsets{Bottom: m.safeBottom},
		})
		if !m.started {
			m.started = true
			m.present()
		}
		return m, m.animate()

	case frameMsg:
		m.registry.Tick(time.Time(msg))
		if m.animating {
			return m, frame()
		}
		m.ticking = false
		return m, nil

	case tea.MouseMsg:
		m.dispatchMouse(msg)
		return m, m.animate()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter", " ":
			m.present()
		case "esc":
			if err := m.controller.Dismiss(nil); err != nil {
				m.status = err.Error()
			}
		}
		return m, m.animate()
	}
	return m, nil
}

func (m *model) present() {
	if err := m.controller.Present(m.presenter, nil); err != nil {
		m.status = err.Error()
	}
}

// animate starts the frame loop if an animation is waiting for ticks.
func (m *model) animate() tea.Cmd {
	if m.ticking || !m.animating {
		return nil
	}
	m.ticking = true
	return frame()
}

func (m *model) dispatchMouse(msg tea.MouseMsg) {
	opts := m.renderer.Options()
	e := retained.PointerEvent{
		X: (float32(msg.X) + 0.5) * opts.CellWidth,
		Y: (float32(msg.Y) + 0.5) * opts.CellHeight,
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		e.Phase = retained.PointerDown
	case tea.MouseActionMotion:
		e.Phase = retained.PointerMove
	case tea.MouseActionRelease:
		e.Phase = retained.PointerUp
	default:
		return
	}
	m.dispatcher.Dispatch(e)
}

func (m *model) View() string {
	if m.cols == 0 || m.rows == 0 {
		return ""
	}
	body := m.renderer.Render(m.presenter.Container(), m.cols, m.rows-1)
	status := statusStyle.Render(fmt.Sprintf("%s  ·  enter present  ·  esc dismiss  ·  q quit", m.status))
	return body + "\n" + status
}
