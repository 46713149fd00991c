// Package teaui hosts the Bubble Tea program for the semana TUI.
package teaui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/semana/pkg/api"
	"tableflip.dev/semana/pkg/store"
	"tableflip.dev/semana/pkg/task"
	"tableflip.dev/semana/pkg/tui/components/authform"
	"tableflip.dev/semana/pkg/tui/components/banner"
	"tableflip.dev/semana/pkg/tui/components/bottombar"
	"tableflip.dev/semana/pkg/tui/components/taskdetail"
	"tableflip.dev/semana/pkg/tui/components/taskform"
	"tableflip.dev/semana/pkg/tui/components/weekgrid"
	"tableflip.dev/semana/pkg/tui/events"
	"tableflip.dev/semana/pkg/tui/theme"
)

type mode int

const (
	modeWeek mode = iota
	modeForm
	modeDetail
	modeAuth
	modeHelp
)

// Model contains UI state.
type Model struct {
	store  *store.Store
	ctx    context.Context
	cancel context.CancelFunc
	mode   mode

	grid   *weekgrid.Model
	form   *taskform.Model
	detail *taskdetail.Model
	auth   *authform.Model
	banner banner.Model
	bottom bottombar.Model

	termWidth  int
	termHeight int

	watchCh <-chan store.Event

	theme theme.Theme
}

// messages
type errMsg struct{ err error }
type resultMsg struct{ result store.Result }
type sessionRestoredMsg struct{}
type watchStartedMsg struct {
	ch <-chan store.Event
}
type watchEventMsg struct {
	event store.Event
}
type watchStoppedMsg struct{}

// New creates a new UI model backed by the store.
func New(s *store.Store) *Model {
	th := theme.Default()
	now := time.Now()
	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		store:  s,
		ctx:    ctx,
		cancel: cancel,
		mode:   modeWeek,
		grid:   weekgrid.New("grid", th.Grid, now),
		form:   taskform.New("form", th.Modal, nil),
		detail: taskdetail.New("detail", th.Modal),
		auth:   authform.New("auth", th.Modal),
		banner: banner.New(th.Header),
		bottom: bottombar.New(th.Footer),
		theme:  th,
	}
	m.grid.SetFocused(true)
	m.updateBottomContext()
	return m
}

// Init restores any persisted session and starts loading.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.restoreSessionCmd(), startWatchCmd(m.ctx, m.store))
}

func (m *Model) restoreSessionCmd() tea.Cmd {
	return func() tea.Msg {
		m.store.RestoreSession()
		return sessionRestoredMsg{}
	}
}

func (m *Model) refreshTasksCmd() tea.Cmd {
	return func() tea.Msg {
		return resultMsg{result: m.store.GetTasks(m.ctx)}
	}
}

func startWatchCmd(ctx context.Context, s *store.Store) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		// Cross-process session sync is best effort; the UI works without it.
		_ = s.WatchSession(ctx)
		return watchStartedMsg{ch: s.Events()}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) handleWatchEvent(ev store.Event, cmds *[]tea.Cmd) {
	switch ev.Type {
	case store.EventSessionInvalidated:
		m.mode = modeWeek
		m.grid.SetFocused(true)
		m.grid.SetTasks(nil)
		m.bottom.SetSession("")
		m.bottom.SetAlert(events.AlertInfo, "Sesión cerrada")
	case store.EventSessionChanged:
		m.syncSessionSegment()
		*cmds = append(*cmds, m.refreshTasksCmd())
	case store.EventTasksChanged:
		m.grid.SetTasks(m.store.Tasks())
	}
	m.updateBottomContext()
}

func (m *Model) syncSessionSegment() {
	if u := m.store.User(); u != nil {
		m.bottom.SetSession(u.Name)
	} else {
		m.bottom.SetSession("")
	}
}

func (m *Model) updateBottomContext() {
	switch m.mode {
	case modeForm:
		m.bottom.SetHelp("enter/ctrl+s guardar · esc cancelar")
	case modeDetail:
		m.bottom.SetHelp("d eliminar · esc volver")
	case modeAuth:
		if m.auth.Mode() == events.AuthSignup {
			m.bottom.SetHelp("enter continuar · esc volver")
		} else {
			m.bottom.SetHelp("enter entrar · esc volver")
		}
	case modeHelp:
		m.bottom.SetHelp("esc volver")
	default:
		if m.store != nil && m.store.LoggedIn() {
			m.bottom.SetHelp("←↑↓→ mover · enter abrir · n nueva · [ ] semana · L salir · q salir")
		} else {
			m.bottom.SetHelp("i iniciar sesión · s crear cuenta · q salir")
		}
	}
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch m.mode {
	case modeHelp:
		return m.handleHelpKey(msg)
	case modeForm:
		return m.handleFormKey(msg, cmds)
	case modeDetail:
		return m.handleDetailKey(msg, cmds)
	case modeAuth:
		return m.handleAuthKey(msg, cmds)
	default:
		return m.handleWeekKey(msg, cmds)
	}
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case "q", "esc", "?":
		m.setMode(modeWeek)
		return true
	}
	return false
}

func (m *Model) handleWeekKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "q", "ctrl+c":
		m.stopProgram(cmds)
		return true
	case "?":
		m.setMode(modeHelp)
		return true
	case "r":
		*cmds = append(*cmds, m.refreshTasksCmd())
		return true
	case "i":
		if !m.store.LoggedIn() {
			m.auth.Open(events.AuthLogin)
			m.setMode(modeAuth)
			return true
		}
	case "s":
		if !m.store.LoggedIn() {
			m.auth.Open(events.AuthSignup)
			m.setMode(modeAuth)
			return true
		}
	case "n":
		if m.store.LoggedIn() {
			m.form.Open(m.grid.CursorDate(), m.grid.CursorStart())
			m.setMode(modeForm)
		} else {
			m.bottom.SetAlert(events.AlertError, "No hay sesión activa")
		}
		return true
	case "L":
		if m.store.LoggedIn() {
			res := m.store.Logout()
			m.showResult(res)
			m.grid.SetTasks(nil)
			m.syncSessionSegment()
			m.updateBottomContext()
		}
		return true
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	return true
}

func (m *Model) handleFormKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	if msg.String() == "esc" {
		m.setMode(modeWeek)
		return true
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	return true
}

func (m *Model) handleDetailKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	if msg.String() == "esc" {
		m.setMode(modeWeek)
		return true
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	return true
}

func (m *Model) handleAuthKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	if msg.String() == "esc" {
		m.setMode(modeWeek)
		return true
	}
	var cmd tea.Cmd
	m.auth, cmd = m.auth.Update(msg)
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	return true
}

func (m *Model) setMode(to mode) {
	m.mode = to
	m.grid.SetFocused(to == modeWeek)
	m.bottom.ClearAlert()
	m.updateBottomContext()
}

func (m *Model) stopProgram(cmds *[]tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	*cmds = append(*cmds, tea.Quit)
}

func (m *Model) showResult(res store.Result) {
	if res.Message == "" {
		return
	}
	level := events.AlertError
	if res.Success {
		level = events.AlertSuccess
	}
	m.bottom.SetAlert(level, res.Message)
}

// Update routes messages to the active surface.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.grid.SetWidth(msg.Width)
	case errMsg:
		m.bottom.SetAlert(events.AlertError, msg.err.Error())
	case sessionRestoredMsg:
		m.syncSessionSegment()
		m.updateBottomContext()
		if m.store.LoggedIn() {
			cmds = append(cmds, m.refreshTasksCmd())
		}
	case resultMsg:
		m.bottom.ClearAlert()
		if m.mode == modeAuth && m.store.LoggedIn() {
			m.setMode(modeWeek)
			cmds = append(cmds, m.refreshTasksCmd())
		}
		m.showResult(msg.result)
		m.grid.SetTasks(m.store.Tasks())
		m.syncSessionSegment()
		m.updateBottomContext()
	case watchStartedMsg:
		m.watchCh = msg.ch
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(msg.event, &cmds)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.watchCh = nil
	case events.AlertMsg:
		m.bottom.SetAlert(msg.Level, msg.Text)
	case events.DateSelectMsg:
		if m.store.LoggedIn() {
			m.form.Open(msg.Date, msg.Start)
			m.setMode(modeForm)
		} else {
			m.bottom.SetAlert(events.AlertError, "No hay sesión activa")
		}
	case events.TaskSelectMsg:
		m.detail.Open(msg.Task)
		m.setMode(modeDetail)
	case events.TaskSubmitMsg:
		m.setMode(modeWeek)
		m.bottom.SetAlert(events.AlertInfo, "Cargando...")
		cmds = append(cmds, m.createTaskCmd(msg.Draft, msg.ImagePath))
	case events.TaskDeleteMsg:
		m.setMode(modeWeek)
		m.bottom.SetAlert(events.AlertInfo, "Cargando...")
		cmds = append(cmds, m.deleteTaskCmd(msg.ID))
	case events.AuthSubmitMsg:
		m.bottom.SetAlert(events.AlertInfo, "Cargando...")
		cmds = append(cmds, m.submitAuthCmd(msg))
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) createTaskCmd(d task.Draft, imagePath string) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{result: m.store.CreateTask(m.ctx, d, imagePath)}
	}
}

func (m *Model) deleteTaskCmd(id int) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{result: m.store.DeleteTask(m.ctx, id)}
	}
}

func (m *Model) submitAuthCmd(msg events.AuthSubmitMsg) tea.Cmd {
	return func() tea.Msg {
		if msg.Mode == events.AuthSignup {
			res := m.store.Signup(m.ctx, signupProfile(msg))
			if !res.Success {
				return resultMsg{result: res}
			}
			// A fresh account goes straight into a session.
			return resultMsg{result: m.store.Login(m.ctx, msg.Email, msg.Clave)}
		}
		return resultMsg{result: m.store.Login(m.ctx, msg.Email, msg.Clave)}
	}
}

// View renders the full screen.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())

	switch m.mode {
	case modeForm:
		sections = append(sections, m.form.View())
	case modeDetail:
		sections = append(sections, m.detail.View())
	case modeAuth:
		sections = append(sections, m.auth.View())
	case modeHelp:
		sections = append(sections, m.renderHelp())
	default:
		sections = append(sections, m.grid.View())
	}

	if footer, _ := m.bottom.View(); footer != "" {
		sections = append(sections, footer)
	}

	return strings.Join(sections, "\n\n")
}

func (m *Model) renderHeader() string {
	parts := []string{m.theme.Header.Brand.Render("semana"), m.banner.View()}
	if u := m.store.User(); u != nil {
		parts = append(parts, m.theme.Header.Avatar.Render(u.Initials()))
	}
	return m.theme.Header.Bar.Render(strings.Join(parts, "  "))
}

func (m *Model) renderHelp() string {
	lines := []string{
		m.theme.Modal.Title.Render("Atajos"),
		"",
		"←↑↓→ / hjkl  mover el cursor",
		"enter        abrir la tarea o crear en el hueco",
		"n            nueva tarea",
		"[ ]          semana anterior / siguiente",
		"t            volver a hoy",
		"r            recargar tareas",
		"i / s        iniciar sesión / crear cuenta",
		"L            cerrar sesión",
		"q            salir",
	}
	return m.theme.Modal.Frame.Render(strings.Join(lines, "\n"))
}

func signupProfile(msg events.AuthSubmitMsg) api.Profile {
	return api.Profile{
		Name:  msg.Name,
		Email: msg.Email,
		Phone: msg.Phone,
		Clave: msg.Clave,
	}
}

// Run launches the interactive TUI program.
func Run(s *store.Store) error {
	p := tea.NewProgram(New(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
