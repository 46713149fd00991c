// Package store is the client-side state of the weekly planner: the login
// session, the task list, and the operations that mutate them against the
// backend. Every mutating operation answers with a Result whose message is
// already user-facing, so surfaces only need to display it.
package store

import (
	"context"
	"errors"
	"sync"

	"tableflip.dev/semana/pkg/api"
	"tableflip.dev/semana/pkg/media"
	"tableflip.dev/semana/pkg/session"
	"tableflip.dev/semana/pkg/task"
)

// Result reports the outcome of a store operation. Message is user-facing and
// in the backend's language; failures prefer the server-supplied error string
// over a generic fallback.
type Result struct {
	Success bool
	Message string
}

// EventType describes the nature of a store change notification.
type EventType int

const (
	// EventSessionChanged indicates login state changed (login, logout, or a
	// restored session).
	EventSessionChanged EventType = iota

	// EventTasksChanged indicates the task list changed.
	EventTasksChanged

	// EventSessionInvalidated signals the persisted session vanished out from
	// under us, e.g. a logout issued by another process.
	EventSessionInvalidated
)

// Event is emitted on the Events channel after state changes.
type Event struct {
	Type EventType
}

// Store holds the planner state. Construct with New; methods are safe for
// concurrent use.
type Store struct {
	mu       sync.RWMutex
	api      *api.Client
	session  session.Storage
	uploader *media.Uploader

	token   string
	user    *task.User
	tasks   []task.Task
	loading bool

	events chan Event
}

// Load assembles a store from the given config, loading the default config
// when cfg is nil.
func Load(cfg session.Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = session.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	storage, err := session.Load(cfg)
	if err != nil {
		return nil, err
	}
	var uploader *media.Uploader
	if cfg.UploadURL() != "" {
		uploader = media.New(cfg.UploadURL(), cfg.UploadPreset())
	}
	return New(api.New(cfg.BackendURL()), storage, uploader), nil
}

// New assembles a store from its collaborators. uploader may be nil when no
// media host is configured.
func New(client *api.Client, storage session.Storage, uploader *media.Uploader) *Store {
	return &Store{
		api:      client,
		session:  storage,
		uploader: uploader,
		tasks:    []task.Task{},
		events:   make(chan Event, 64),
	}
}

// Events exposes change notifications. The channel is buffered and events are
// dropped rather than blocking a mutating operation, so consumers must treat
// an event as "state changed, re-read it" rather than a delta.
func (s *Store) Events() <-chan Event {
	return s.events
}

func (s *Store) emit(t EventType) {
	select {
	case s.events <- Event{Type: t}:
	default:
	}
}

// Loading reports whether a backend request is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// beginRequest flips the loading flag for the duration of one backend call.
// The returned func clears it on every exit path.
func (s *Store) beginRequest() func() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}
}

// LoggedIn reports whether a token is held.
func (s *Store) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// User returns the logged-in user summary, or nil.
func (s *Store) User() *task.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Tasks returns a snapshot of the task list.
func (s *Store) Tasks() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// RestoreSession loads persisted credentials, if any. It never fails: a
// missing or unreadable session simply leaves the store logged out. The token
// and user summary hydrate together or not at all. Calling it again is a
// no-op for an already-restored session.
func (s *Store) RestoreSession() {
	if s.session == nil {
		return
	}
	token, user, err := s.session.Load()
	if err != nil || token == "" || user == nil {
		return
	}

	s.mu.Lock()
	changed := s.token != token
	s.token = token
	s.user = user
	s.mu.Unlock()

	if changed {
		s.emit(EventSessionChanged)
	}
}

// Login exchanges credentials for a session and persists it.
func (s *Store) Login(ctx context.Context, email, clave string) Result {
	defer s.beginRequest()()

	creds, err := s.api.Login(ctx, email, clave)
	if err != nil {
		return failure(err, "Error al iniciar sesión")
	}

	s.mu.Lock()
	s.token = creds.Token
	u := creds.User
	s.user = &u
	s.tasks = []task.Task{}
	s.mu.Unlock()

	if s.session != nil {
		if err := s.session.Save(creds.Token, &u); err != nil {
			// The in-memory session is live, but it will not survive a restart.
			s.emit(EventSessionChanged)
			return Result{Success: true, Message: "Sesión iniciada, pero no se pudo guardar la sesión"}
		}
	}

	s.emit(EventSessionChanged)
	return Result{Success: true, Message: "Sesión iniciada"}
}

// Signup registers a new user. The backend does not open a session on signup,
// so the caller still needs to log in.
func (s *Store) Signup(ctx context.Context, p api.Profile) Result {
	defer s.beginRequest()()

	if err := s.api.Signup(ctx, p); err != nil {
		return failure(err, "Error al registrar usuario")
	}
	return Result{Success: true, Message: "Usuario registrado"}
}

// Logout drops the session and the task list. It does not call the backend;
// the token is simply forgotten.
func (s *Store) Logout() Result {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.tasks = []task.Task{}
	s.mu.Unlock()

	if s.session != nil {
		if err := s.session.Clear(); err != nil {
			return failure(err, "Error al cerrar sesión")
		}
	}

	s.emit(EventSessionChanged)
	return Result{Success: true, Message: "Sesión cerrada"}
}

// GetTasks refreshes the task list from the backend. Without a token it
// answers immediately without a network round trip.
func (s *Store) GetTasks(ctx context.Context) Result {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token == "" {
		return Result{Message: "No hay sesión activa"}
	}
	defer s.beginRequest()()

	tasks, err := s.api.Tasks(ctx, token)
	if err != nil {
		return failure(err, "Error al obtener tareas")
	}
	if tasks == nil {
		tasks = []task.Task{}
	}

	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()

	s.emit(EventTasksChanged)
	return Result{Success: true}
}

// CreateTask validates the draft, uploads the image when one is attached, and
// posts the draft. The server's echo of the task is appended to the local
// list, so any server-side normalization is reflected immediately.
func (s *Store) CreateTask(ctx context.Context, d task.Draft, imagePath string) Result {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token == "" {
		return Result{Message: "No hay sesión activa"}
	}

	if err := d.Validate(); err != nil {
		return Result{Message: err.Error()}
	}
	defer s.beginRequest()()

	if imagePath != "" {
		if s.uploader == nil {
			return Result{Message: "No hay servidor de imágenes configurado"}
		}
		url, err := s.uploader.Upload(ctx, imagePath)
		if err != nil {
			return failure(err, "Error al subir la imagen")
		}
		d.ImageURL = url
	}

	created, err := s.api.CreateTask(ctx, token, d)
	if err != nil {
		return failure(err, "Error al crear tarea")
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, *created)
	s.mu.Unlock()

	s.emit(EventTasksChanged)
	return Result{Success: true, Message: "Tarea creada"}
}

// DeleteTask removes the task on the backend and, only on success, drops it
// from the local list. A failed delete leaves the list untouched.
func (s *Store) DeleteTask(ctx context.Context, id int) Result {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token == "" {
		return Result{Message: "No hay sesión activa"}
	}

	defer s.beginRequest()()

	if err := s.api.DeleteTask(ctx, token, id); err != nil {
		return failure(err, "Error al eliminar tarea")
	}

	s.mu.Lock()
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.mu.Unlock()

	s.emit(EventTasksChanged)
	return Result{Success: true, Message: "Tarea eliminada"}
}

// WatchSession bridges cross-process session changes into store events until
// ctx is cancelled. A cleared session logs this store out too.
func (s *Store) WatchSession(ctx context.Context) error {
	if s.session == nil {
		return errors.New("store: no session storage to watch")
	}
	ch, err := s.session.Watch(ctx)
	if err != nil {
		return err
	}
	go func() {
		for ev := range ch {
			switch ev.Type {
			case session.EventSessionCleared:
				s.mu.Lock()
				hadToken := s.token != ""
				s.token = ""
				s.user = nil
				s.tasks = []task.Task{}
				s.mu.Unlock()
				if hadToken {
					s.emit(EventSessionInvalidated)
				}
			case session.EventSessionChanged:
				s.RestoreSession()
			}
		}
	}()
	return nil
}

// failure builds a Result from an operation error, preferring the backend's
// own message when one exists.
func failure(err error, fallback string) Result {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return Result{Message: apiErr.Message}
	}
	return Result{Message: fallback}
}
