package teaui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/semana/pkg/api"
	"tableflip.dev/semana/pkg/store"
	"tableflip.dev/semana/pkg/task"
	"tableflip.dev/semana/pkg/timeutil"
	"tableflip.dev/semana/pkg/tui/events"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func testBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"token":   "tok-1",
			"usuario": map[string]string{"nombre": "Ada Lovelace", "email": "ada@example.com"},
		})
	})
	mux.HandleFunc("/tareas", func(w http.ResponseWriter, r *http.Request) {
		// Dated today so the task lands on the week currently shown.
		json.NewEncoder(w).Encode(map[string]any{
			"tareas": []task.Task{
				{ID: 1, Title: "Reunión", Date: timeutil.Today(time.Now()), Start: "09:00", End: "10:00"},
			},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testModel(t *testing.T) *Model {
	t.Helper()
	srv := testBackend(t)
	s := store.New(api.New(srv.URL), nil, nil)
	m := New(s)
	m.termWidth = 100
	m.termHeight = 30
	m.grid.SetWidth(100)
	return m
}

// drain runs a command tree and feeds every produced message back into Update.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	switch batch := msg.(type) {
	case tea.BatchMsg:
		for _, c := range batch {
			drain(t, m, c)
		}
	default:
		if msg == nil {
			return
		}
		_, next := m.Update(msg)
		drain(t, m, next)
	}
}

func TestViewLoggedOutShowsAuthHints(t *testing.T) {
	m := testModel(t)

	view := stripANSI(m.View())
	if !strings.Contains(view, "semana") {
		t.Fatalf("expected brand in header; view=%q", view)
	}
	if !strings.Contains(view, "iniciar sesión") {
		t.Fatalf("expected auth hint in footer; view=%q", view)
	}
}

func TestLoginKeyOpensAuthForm(t *testing.T) {
	m := testModel(t)

	m.Update(tea.KeyPressMsg{Text: "i", Code: 'i'})
	if m.mode != modeAuth {
		t.Fatalf("expected auth mode, got %v", m.mode)
	}
	if m.auth.Mode() != events.AuthLogin {
		t.Fatalf("expected login variant, got %v", m.auth.Mode())
	}

	view := stripANSI(m.View())
	if !strings.Contains(view, "Iniciar sesión") {
		t.Fatalf("expected login form title; view=%q", view)
	}
}

func TestAuthHelpOnlyListsLiveBindings(t *testing.T) {
	m := testModel(t)

	// Letter keys feed the focused text input while the form is open, so the
	// footer must not advertise single-letter shortcuts here.
	m.Update(tea.KeyPressMsg{Text: "i", Code: 'i'})
	view := stripANSI(m.View())
	if strings.Contains(view, "crear cuenta") {
		t.Fatalf("login form help must not offer a mode-switch letter; view=%q", view)
	}
	if !strings.Contains(view, "enter entrar") {
		t.Fatalf("expected submit hint; view=%q", view)
	}

	// Typing 's' lands in the field instead of switching forms.
	m.Update(tea.KeyPressMsg{Text: "s", Code: 's'})
	if m.mode != modeAuth || m.auth.Mode() != events.AuthLogin {
		t.Fatalf("expected to stay on the login form, got mode=%v auth=%v", m.mode, m.auth.Mode())
	}
}

func TestAuthSubmitLogsInAndLoadsTasks(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(events.AuthSubmitMsg{
		Mode:  events.AuthLogin,
		Email: "ada@example.com",
		Clave: "secreto",
	})
	drain(t, m, cmd)
	drain(t, m, m.refreshTasksCmd())

	if !m.store.LoggedIn() {
		t.Fatal("expected a live session after login")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "AL") {
		t.Fatalf("expected user initials in header; view=%q", view)
	}
	if !strings.Contains(view, "Reunión") {
		t.Fatalf("expected loaded task on the grid; view=%q", view)
	}
}

func TestNewTaskWithoutSessionAlerts(t *testing.T) {
	m := testModel(t)

	m.Update(tea.KeyPressMsg{Text: "n", Code: 'n'})
	if m.mode != modeWeek {
		t.Fatalf("expected to stay on the week view, got %v", m.mode)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "No hay sesión activa") {
		t.Fatalf("expected session alert; view=%q", view)
	}
}

func TestDateSelectOpensFormWhenLoggedIn(t *testing.T) {
	m := testModel(t)
	drain(t, m, m.submitAuthCmd(events.AuthSubmitMsg{
		Mode:  events.AuthLogin,
		Email: "ada@example.com",
		Clave: "secreto",
	}))

	m.Update(events.DateSelectMsg{Date: "2025-06-13", Start: "09:00"})
	if m.mode != modeForm {
		t.Fatalf("expected form mode, got %v", m.mode)
	}
	d := m.form.Draft()
	if d.Date != "2025-06-13" || d.Start != "09:00" {
		t.Fatalf("expected preset slot, got %+v", d)
	}
}

func TestTaskSelectOpensDetail(t *testing.T) {
	m := testModel(t)

	m.Update(events.TaskSelectMsg{Task: task.Task{ID: 3, Title: "Gimnasio"}})
	if m.mode != modeDetail {
		t.Fatalf("expected detail mode, got %v", m.mode)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "Gimnasio") {
		t.Fatalf("expected task title in detail; view=%q", view)
	}
}

func TestEscapeClosesOverlay(t *testing.T) {
	m := testModel(t)

	m.Update(tea.KeyPressMsg{Text: "i", Code: 'i'})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.mode != modeWeek {
		t.Fatalf("expected week mode after esc, got %v", m.mode)
	}
}

func TestLogoutClearsSessionAndGrid(t *testing.T) {
	m := testModel(t)
	drain(t, m, m.submitAuthCmd(events.AuthSubmitMsg{
		Mode:  events.AuthLogin,
		Email: "ada@example.com",
		Clave: "secreto",
	}))
	drain(t, m, m.refreshTasksCmd())

	m.Update(tea.KeyPressMsg{Text: "L", Code: 'L'})
	if m.store.LoggedIn() {
		t.Fatal("expected logged out store")
	}
	view := stripANSI(m.View())
	if strings.Contains(view, "Reunión") {
		t.Fatalf("expected tasks cleared from the grid; view=%q", view)
	}
	if !strings.Contains(view, "Sesión cerrada") {
		t.Fatalf("expected logout message; view=%q", view)
	}
}

func TestAlertMessageReachesFooter(t *testing.T) {
	m := testModel(t)

	m.Update(events.AlertMsg{Level: events.AlertError, Text: "Error al crear tarea"})
	view := stripANSI(m.View())
	if !strings.Contains(view, "Error al crear tarea") {
		t.Fatalf("expected alert in footer; view=%q", view)
	}
}
