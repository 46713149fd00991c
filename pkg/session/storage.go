// Package session persists the login session (token plus user summary) on
// disk so the planner survives restarts, and watches it for cross-process
// changes such as a logout issued from another terminal.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/semana/pkg/task"
)

const (
	keyToken = "token"
	keyUser  = "usuario"
)

// Storage defines the persistence contract for the login session.
type Storage interface {
	Load() (token string, user *task.User, err error)
	Save(token string, user *task.User) error
	Clear() error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Storage backed by diskv using the provided config.
func Load(cfg Config) (Storage, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &storage{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 64 * 1024,
	}), basePath: basePath}, nil
}

type storage struct {
	d        *diskv.Diskv
	basePath string
}

// Load reads the stored session. A missing session is not an error; both
// return values are zero. The token and user summary hydrate together: a
// missing or unparsable user summary makes the whole session load as absent,
// so a partial session never reaches the caller.
func (s *storage) Load() (string, *task.User, error) {
	tok, err := s.d.Read(keyToken)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, nil
		}
		return "", nil, err
	}
	token := string(tok)
	if token == "" {
		return "", nil, nil
	}

	data, err := s.d.Read(keyUser)
	if err != nil || len(data) == 0 {
		return "", nil, nil
	}
	u := task.User{}
	if err := json.Unmarshal(data, &u); err != nil {
		return "", nil, nil
	}
	return token, &u, nil
}

// Save writes the token and user summary in lockstep.
func (s *storage) Save(token string, user *task.User) error {
	if token == "" {
		return errors.New("session: token required")
	}
	if err := s.d.Write(keyToken, []byte(token)); err != nil {
		return err
	}
	if user == nil {
		return s.d.Erase(keyUser)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.d.Write(keyUser, data)
}

// Clear removes both keys. Clearing an absent session is a no-op.
func (s *storage) Clear() error {
	for _, key := range []string{keyToken, keyUser} {
		if err := s.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}
