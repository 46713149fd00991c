// Package task defines the task and user models exchanged with the backend.
package task

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/semana/pkg/tag"
	"tableflip.dev/semana/pkg/timeutil"
)

// Task is a time-boxed entry on the weekly calendar. Field names mirror the
// backend wire contract, which is Spanish-named.
type Task struct {
	ID          int     `json:"idTarea"`
	Title       string  `json:"titulo"`
	Description string  `json:"descripcion,omitempty"`
	Date        string  `json:"fecha"`
	Start       string  `json:"horaInicio"`
	End         string  `json:"horaFin"`
	Tag         tag.Tag `json:"etiqueta"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// Draft is the client-side shape of a task before the backend assigns an id.
type Draft struct {
	Title       string  `json:"titulo"`
	Description string  `json:"descripcion"`
	Date        string  `json:"fecha"`
	Start       string  `json:"horaInicio"`
	End         string  `json:"horaFin"`
	Tag         tag.Tag `json:"etiqueta"`
	ImageURL    string  `json:"imageUrl"`
}

// Validate checks the draft satisfies the invariants the backend does not
// enforce: required fields and end strictly after start on the same date.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("task title is required")
	}
	if _, err := timeutil.ParseDate(d.Date); err != nil {
		return fmt.Errorf("invalid task date: %w", err)
	}
	start, err := timeutil.ParseClock(d.Start)
	if err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}
	end, err := timeutil.ParseClock(d.End)
	if err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}
	if !start.Before(end) {
		return fmt.Errorf("end time must be after start time")
	}
	return nil
}

// StartsAt returns the task's start as a full timestamp in the local zone.
func (t Task) StartsAt() (time.Time, error) {
	return at(t.Date, t.Start)
}

// EndsAt returns the task's end as a full timestamp in the local zone.
func (t Task) EndsAt() (time.Time, error) {
	return at(t.Date, t.End)
}

func at(date, clock string) (time.Time, error) {
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	c, err := timeutil.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(c.Minutes()) * time.Minute), nil
}

// User is the profile summary kept alongside the session token.
type User struct {
	ID    int    `json:"idUsuario,omitempty"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Phone string `json:"telefono,omitempty"`
}

// Initials derives the one- or two-letter avatar label from the user's name.
func (u User) Initials() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return "U"
	}
	initials := make([]rune, 0, 2)
	for _, f := range fields {
		initials = append(initials, []rune(strings.ToUpper(f))[0])
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}
