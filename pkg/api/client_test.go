package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableflip.dev/semana/pkg/tag"
	"tableflip.dev/semana/pkg/task"
)

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["email"] != "ada@example.com" || body["clave"] != "secreto" {
			t.Errorf("unexpected credentials: %v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":   "tok-123",
			"usuario": map[string]any{"idUsuario": 1, "nombre": "Ada Lovelace", "email": "ada@example.com"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	creds, err := c.Login(context.Background(), "ada@example.com", "secreto")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if creds.Token != "tok-123" || creds.User.Name != "Ada Lovelace" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestLoginServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "credenciales inválidas"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "ada@example.com", "nope")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Message != "credenciales inválidas" {
		t.Fatalf("expected server message, got %q", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", apiErr.StatusCode)
	}
}

func TestTasksSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("unexpected auth header %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"tareas": []task.Task{{ID: 1, Title: "Reunión", Date: "2025-06-11", Start: "09:00", End: "10:00", Tag: tag.Trabajo}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	tasks, err := c.Tasks(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Reunión" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

func TestCreateTaskReturnsServerEcho(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var d task.Draft
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			t.Fatalf("decode draft: %v", err)
		}
		// The server normalizes the title; clients must keep the echo.
		_ = json.NewEncoder(w).Encode(map[string]any{
			"tarea": task.Task{ID: 42, Title: "Reunión (equipo)", Date: d.Date, Start: d.Start, End: d.End, Tag: d.Tag},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	created, err := c.CreateTask(context.Background(), "tok", task.Draft{Title: "Reunión", Date: "2025-06-11", Start: "09:00", End: "10:00", Tag: tag.Trabajo})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 42 || created.Title != "Reunión (equipo)" {
		t.Fatalf("expected server echo, got %+v", created)
	}
}

func TestDeleteTaskNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone fishing", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.DeleteTask(context.Background(), "tok", 9)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", apiErr.StatusCode)
	}
	// No JSON error payload: Error() falls back to the status code.
	if apiErr.Error() == "" {
		t.Fatal("expected non-empty error text")
	}
}

func TestUnconfiguredBaseURL(t *testing.T) {
	c := New("")
	if _, err := c.Tasks(context.Background(), "tok"); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}
