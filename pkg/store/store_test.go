package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/semana/pkg/api"
	"tableflip.dev/semana/pkg/media"
	"tableflip.dev/semana/pkg/session"
	"tableflip.dev/semana/pkg/tag"
	"tableflip.dev/semana/pkg/task"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string     { return t.path }
func (t testConfig) BackendURL() string   { return "" }
func (t testConfig) UploadURL() string    { return "" }
func (t testConfig) UploadPreset() string { return "" }

func testStorage(t *testing.T) session.Storage {
	t.Helper()
	s, err := session.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load session storage: %v", err)
	}
	return s
}

// backend is a minimal in-memory stand-in for the planner API.
type backend struct {
	t       *testing.T
	tasks   []task.Task
	nextID  int
	fail    map[string]int // "METHOD path" -> status
	failMsg string
	hits    int
}

func newBackend(t *testing.T) *backend {
	return &backend{t: t, nextID: 1, fail: map[string]int{}}
}

func (b *backend) serve() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.hits++
		key := r.Method + " " + r.URL.Path
		for pattern, status := range b.fail {
			if strings.HasPrefix(key, pattern) {
				w.WriteHeader(status)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": b.failMsg})
				return
			}
		}
		switch {
		case key == "POST /login":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"token":   "tok-123",
				"usuario": map[string]any{"idUsuario": 1, "nombre": "Ada Lovelace", "email": "ada@example.com"},
			})
		case key == "POST /usuario":
			_ = json.NewEncoder(w).Encode(map[string]string{"mensaje": "ok"})
		case key == "GET /tareas":
			_ = json.NewEncoder(w).Encode(map[string]any{"tareas": b.tasks})
		case key == "POST /tarea":
			var d task.Draft
			if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
				b.t.Fatalf("decode draft: %v", err)
			}
			created := task.Task{ID: b.nextID, Title: d.Title, Description: d.Description,
				Date: d.Date, Start: d.Start, End: d.End, Tag: d.Tag, ImageURL: d.ImageURL}
			b.nextID++
			b.tasks = append(b.tasks, created)
			_ = json.NewEncoder(w).Encode(map[string]any{"tarea": created})
		case strings.HasPrefix(key, "DELETE /tarea/"):
			_ = json.NewEncoder(w).Encode(map[string]string{"mensaje": "eliminada"})
		default:
			http.NotFound(w, r)
		}
	}))
}

func draft() task.Draft {
	return task.Draft{Title: "Reunión", Date: "2025-06-11", Start: "09:00", End: "10:00", Tag: tag.Trabajo}
}

func TestLoginThenTasks(t *testing.T) {
	b := newBackend(t)
	b.tasks = []task.Task{{ID: 7, Title: "Gimnasio", Date: "2025-06-11", Start: "18:00", End: "19:00", Tag: tag.Salud}}
	srv := b.serve()
	defer srv.Close()

	s := New(api.New(srv.URL), testStorage(t), nil)
	if res := s.Login(context.Background(), "ada@example.com", "secreto"); !res.Success {
		t.Fatalf("login failed: %q", res.Message)
	}
	if !s.LoggedIn() {
		t.Fatal("expected logged-in store")
	}
	if u := s.User(); u == nil || u.Name != "Ada Lovelace" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if res := s.GetTasks(context.Background()); !res.Success {
		t.Fatalf("get tasks failed: %q", res.Message)
	}
	if got := s.Tasks(); len(got) != 1 || got[0].Title != "Gimnasio" {
		t.Fatalf("unexpected tasks: %+v", got)
	}
}

func TestLoginFailurePrefersServerMessage(t *testing.T) {
	b := newBackend(t)
	b.fail["POST /login"] = http.StatusUnauthorized
	b.failMsg = "credenciales inválidas"
	srv := b.serve()
	defer srv.Close()

	s := New(api.New(srv.URL), testStorage(t), nil)
	res := s.Login(context.Background(), "ada@example.com", "nope")
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Message != "credenciales inválidas" {
		t.Fatalf("expected server message, got %q", res.Message)
	}
	if s.LoggedIn() {
		t.Fatal("failed login must not leave a session")
	}
}

func TestGetTasksWithoutSessionSkipsNetwork(t *testing.T) {
	b := newBackend(t)
	srv := b.serve()
	defer srv.Close()

	s := New(api.New(srv.URL), testStorage(t), nil)
	res := s.GetTasks(context.Background())
	if res.Success {
		t.Fatal("expected failure without a session")
	}
	if b.hits != 0 {
		t.Fatalf("expected no network round trip, got %d", b.hits)
	}
}

func TestRestoreSessionIdempotent(t *testing.T) {
	storage := testStorage(t)
	if err := storage.Save("tok-123", &task.User{Name: "Ada"}); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	s := New(api.New(""), storage, nil)
	s.RestoreSession()
	if !s.LoggedIn() {
		t.Fatal("expected restored session")
	}
	select {
	case ev := <-s.Events():
		if ev.Type != EventSessionChanged {
			t.Fatalf("unexpected event %v", ev.Type)
		}
	default:
		t.Fatal("expected session changed event")
	}

	// A second restore of the same session emits nothing.
	s.RestoreSession()
	select {
	case ev := <-s.Events():
		t.Fatalf("unexpected event after repeated restore: %v", ev.Type)
	default:
	}
}

func TestLogoutThenRestoreStaysLoggedOut(t *testing.T) {
	b := newBackend(t)
	srv := b.serve()
	defer srv.Close()

	s := New(api.New(srv.URL), testStorage(t), nil)
	if res := s.Login(context.Background(), "ada@example.com", "secreto"); !res.Success {
		t.Fatalf("login failed: %q", res.Message)
	}
	if res := s.Logout(); !res.Success {
		t.Fatalf("logout failed: %q", res.Message)
	}
	s.RestoreSession()
	if s.LoggedIn() {
		t.Fatal("restore after logout must stay logged out")
	}
	if u := s.User(); u != nil {
		t.Fatalf("expected nil user, got %+v", u)
	}
}

func TestCreateTaskAppendsServerEcho(t *testing.T) {
	b := newBackend(t)
	srv := b.serve()
	defer srv.Close()

	s := New(api.New(srv.URL), testStorage(t), nil)
	if res := s.Login(context.Background(), "ada@example.com", "secreto"); !res.Success {
		t.Fatalf("login failed: %q", res.Message)
	}

	if res := s.CreateTask(context.Background(), draft(), ""); !res.Success {
		t.Fatalf("create failed: %q", res.Message)
	}
	got := s.Tasks()
	if len(got) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got))
	}
	if got[0].ID == 0 {
		t.Fatal("expected the server-assigned id on the local task")
	}
}

func TestCreateTaskInvalidDraftSkipsNetwork(t *testing.T) {
	b := newBackend(t)
	srv := b.serve()
	defer srv.Close()

	s := New(api.New(srv.URL), testStorage(t), nil)
	if res := s.Login(context.Background(), "ada@example.com", "secreto"); !res.Success {
		t.Fatalf("login failed: %q", res.Message)
	}
	hits := b.hits

	d := draft()
	d.Title = ""
	if res := s.CreateTask(context.Background(), d, ""); res.Success {
		t.Fatal("expected validation failure")
	}
	if b.hits != hits {
		t.Fatal("invalid draft must not reach the backend")
	}
}

func TestCreateTaskUploadFailureAborts(t *testing.T) {
	b := newBackend(t)
	srv := b.serve()
	defer srv.Close()

	host := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer host.Close()

	s := New(api.New(srv.URL), testStorage(t), media.New(host.URL, "semana"))
	if res := s.Login(context.Background(), "ada@example.com", "secreto"); !res.Success {
		t.Fatalf("login failed: %q", res.Message)
	}

	res := s.CreateTask(context.Background(), draft(), "/definitely/not/a/file.png")
	if res.Success {
		t.Fatal("expected upload failure to abort the save")
	}
	if got := s.Tasks(); len(got) != 0 {
		t.Fatalf("failed save must not touch the list, got %+v", got)
	}
}

func TestDeleteTask(t *testing.T) {
	b := newBackend(t)
	srv := b.serve()
	defer srv.Close()

	s := New(api.New(srv.URL), testStorage(t), nil)
	if res := s.Login(context.Background(), "ada@example.com", "secreto"); !res.Success {
		t.Fatalf("login failed: %q", res.Message)
	}
	if res := s.CreateTask(context.Background(), draft(), ""); !res.Success {
		t.Fatalf("create failed: %q", res.Message)
	}
	id := s.Tasks()[0].ID

	if res := s.DeleteTask(context.Background(), id); !res.Success {
		t.Fatalf("delete failed: %q", res.Message)
	}
	if got := s.Tasks(); len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}

	// Deleting again fails on the backend and leaves the list alone.
	b.fail["DELETE /tarea/"] = http.StatusNotFound
	b.failMsg = "tarea no encontrada"
	res := s.DeleteTask(context.Background(), id)
	if res.Success {
		t.Fatal("expected failure for second delete")
	}
	if res.Message != "tarea no encontrada" {
		t.Fatalf("expected server message, got %q", res.Message)
	}
}

func TestDeleteTaskFailureLeavesList(t *testing.T) {
	b := newBackend(t)
	srv := b.serve()
	defer srv.Close()

	s := New(api.New(srv.URL), testStorage(t), nil)
	if res := s.Login(context.Background(), "ada@example.com", "secreto"); !res.Success {
		t.Fatalf("login failed: %q", res.Message)
	}
	if res := s.CreateTask(context.Background(), draft(), ""); !res.Success {
		t.Fatalf("create failed: %q", res.Message)
	}

	b.fail["DELETE /tarea/"] = http.StatusInternalServerError
	b.failMsg = ""
	res := s.DeleteTask(context.Background(), s.Tasks()[0].ID)
	if res.Success {
		t.Fatal("expected delete failure")
	}
	if res.Message != "Error al eliminar tarea" {
		t.Fatalf("expected fallback message, got %q", res.Message)
	}
	if got := s.Tasks(); len(got) != 1 {
		t.Fatalf("failed delete must leave the list, got %+v", got)
	}
}

func TestLoadingClearedOnEveryExit(t *testing.T) {
	b := newBackend(t)
	b.fail["POST /login"] = http.StatusUnauthorized
	b.failMsg = "credenciales inválidas"
	srv := b.serve()
	defer srv.Close()

	s := New(api.New(srv.URL), testStorage(t), nil)
	if s.Loading() {
		t.Fatal("fresh store must not report loading")
	}
	s.Login(context.Background(), "ada@example.com", "nope")
	if s.Loading() {
		t.Fatal("loading must clear after a failed request")
	}

	delete(b.fail, "POST /login")
	s.Login(context.Background(), "ada@example.com", "secreto")
	if s.Loading() {
		t.Fatal("loading must clear after a successful request")
	}
}

// brokenStorage fails every write, simulating an unwritable session dir.
type brokenStorage struct{}

func (brokenStorage) Load() (string, *task.User, error) { return "", nil, nil }
func (brokenStorage) Save(string, *task.User) error     { return errors.New("disk full") }
func (brokenStorage) Clear() error                      { return errors.New("disk full") }

func (brokenStorage) Watch(context.Context) (<-chan session.Event, error) {
	return nil, errors.New("no watch")
}

func TestLoginReportsSessionSaveFailure(t *testing.T) {
	b := newBackend(t)
	srv := b.serve()
	defer srv.Close()

	s := New(api.New(srv.URL), brokenStorage{}, nil)
	res := s.Login(context.Background(), "ada@example.com", "secreto")
	if !res.Success {
		t.Fatalf("login must still succeed in memory, got %q", res.Message)
	}
	if res.Message != "Sesión iniciada, pero no se pudo guardar la sesión" {
		t.Fatalf("expected persistence warning, got %q", res.Message)
	}
	if !s.LoggedIn() {
		t.Fatal("expected a live in-memory session")
	}
}

func TestRestoreSessionRejectsPartialSession(t *testing.T) {
	b := newBackend(t)
	srv := b.serve()
	defer srv.Close()

	base := t.TempDir()
	storage, err := session.Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load session storage: %v", err)
	}

	s := New(api.New(srv.URL), storage, nil)
	if res := s.Login(context.Background(), "ada@example.com", "secreto"); !res.Success {
		t.Fatalf("login failed: %q", res.Message)
	}

	if err := os.WriteFile(filepath.Join(base, "usuario"), []byte("{nope"), 0o644); err != nil {
		t.Fatalf("corrupt user file: %v", err)
	}

	fresh := New(api.New(srv.URL), storage, nil)
	fresh.RestoreSession()
	if fresh.LoggedIn() {
		t.Fatal("a session with a corrupt user summary must not hydrate")
	}
	if fresh.User() != nil {
		t.Fatalf("expected no user, got %+v", fresh.User())
	}
}
