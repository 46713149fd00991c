package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/semana/pkg/task"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string     { return t.path }
func (t testConfig) BackendURL() string   { return "http://localhost:5000/" }
func (t testConfig) UploadURL() string    { return "" }
func (t testConfig) UploadPreset() string { return "semana" }

func TestSaveLoadClear(t *testing.T) {
	s, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load storage: %v", err)
	}

	token, user, err := s.Load()
	if err != nil {
		t.Fatalf("load empty session: %v", err)
	}
	if token != "" || user != nil {
		t.Fatalf("expected empty session, got %q %+v", token, user)
	}

	ada := &task.User{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com"}
	if err := s.Save("tok-123", ada); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, user, err = s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "tok-123" {
		t.Fatalf("expected token, got %q", token)
	}
	if user == nil || user.Name != "Ada Lovelace" {
		t.Fatalf("expected user summary, got %+v", user)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	token, user, err = s.Load()
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if token != "" || user != nil {
		t.Fatalf("expected cleared session, got %q %+v", token, user)
	}

	// Clearing twice is fine.
	if err := s.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestLoadRejectsPartialSession(t *testing.T) {
	base := t.TempDir()
	s, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load storage: %v", err)
	}
	if err := s.Save("tok-123", &task.User{Name: "Ada"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "usuario"), []byte("{nope"), 0o644); err != nil {
		t.Fatalf("corrupt user file: %v", err)
	}

	token, user, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "" || user != nil {
		t.Fatalf("a corrupt user summary must load as an absent session, got %q %+v", token, user)
	}

	// A token without any user summary is just as partial.
	if err := os.Remove(filepath.Join(base, "usuario")); err != nil {
		t.Fatalf("remove user file: %v", err)
	}
	token, user, err = s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "" || user != nil {
		t.Fatalf("a token without a user must load as an absent session, got %q %+v", token, user)
	}
}

func TestWatchEmitsSessionCleared(t *testing.T) {
	s, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load storage: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := s.Save("tok-123", nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventSessionCleared {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for session cleared event")
		}
	}
}
