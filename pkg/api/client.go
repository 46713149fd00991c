// Package api implements the REST client for the weekly-planning backend.
//
// The backend exposes Spanish-named endpoints: POST login, POST usuario
// (signup), GET tareas, POST tarea, DELETE tarea/{id}. All bodies are JSON
// and failures carry a JSON {"error": string} payload.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tableflip.dev/semana/pkg/task"
)

// Error is a normalized backend failure. Message prefers the server-supplied
// error string and falls back to the HTTP status text.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// Client talks to the backend. The zero value is not usable; construct with
// New.
type Client struct {
	base string
	http *http.Client
}

// New creates a client for the given base URL. A trailing slash is ensured so
// endpoint paths can be appended directly.
func New(baseURL string) *Client {
	base := strings.TrimSpace(baseURL)
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &Client{
		base: base,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Credentials is the successful login payload.
type Credentials struct {
	Token string    `json:"token"`
	User  task.User `json:"usuario"`
}

// Profile is the registration payload.
type Profile struct {
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Phone string `json:"telefono"`
	Clave string `json:"clave"`
}

// Login exchanges credentials for a token and user summary.
func (c *Client) Login(ctx context.Context, email, clave string) (*Credentials, error) {
	body := map[string]string{"email": email, "clave": clave}
	var out Credentials
	if err := c.do(ctx, http.MethodPost, "login", "", body, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, &Error{Message: "la respuesta del servidor no incluye token"}
	}
	return &out, nil
}

// Signup registers a new user. The backend confirms without a session, so
// callers must log in afterwards.
func (c *Client) Signup(ctx context.Context, p Profile) error {
	return c.do(ctx, http.MethodPost, "usuario", "", p, nil)
}

// Tasks fetches the authenticated user's full task list.
func (c *Client) Tasks(ctx context.Context, token string) ([]task.Task, error) {
	var out struct {
		Tasks []task.Task `json:"tareas"`
	}
	if err := c.do(ctx, http.MethodGet, "tareas", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

// CreateTask posts a draft and returns the server's canonical task, which is
// what callers must append to their local list.
func (c *Client) CreateTask(ctx context.Context, token string, d task.Draft) (*task.Task, error) {
	var out struct {
		Task task.Task `json:"tarea"`
	}
	if err := c.do(ctx, http.MethodPost, "tarea", token, d, &out); err != nil {
		return nil, err
	}
	return &out.Task, nil
}

// DeleteTask removes the task with the given id.
func (c *Client) DeleteTask(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("tarea/%d", id), token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	if c.base == "" {
		return &Error{Message: "backend URL is not configured"}
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Message: serverError(data)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: "respuesta del servidor inválida"}
	}
	return nil
}

// serverError extracts the backend's {"error": ...} string, if any.
func serverError(data []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Error
}
