package task

import (
	"encoding/json"
	"testing"

	"tableflip.dev/semana/pkg/tag"
)

func TestDraftValidate(t *testing.T) {
	valid := Draft{
		Title: "Reunión",
		Date:  "2025-06-11",
		Start: "09:00",
		End:   "10:00",
		Tag:   tag.Trabajo,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Draft)
	}{
		{"missing title", func(d *Draft) { d.Title = "  " }},
		{"bad date", func(d *Draft) { d.Date = "mañana" }},
		{"bad start", func(d *Draft) { d.Start = "9am" }},
		{"bad end", func(d *Draft) { d.End = "" }},
		{"end before start", func(d *Draft) { d.End = "08:00" }},
		{"end equals start", func(d *Draft) { d.End = "09:00" }},
	}
	for _, tc := range cases {
		d := valid
		tc.mutate(&d)
		if err := d.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestTaskWireNames(t *testing.T) {
	raw := `{"idTarea":7,"titulo":"Gimnasio","fecha":"2025-06-11","horaInicio":"18:00","horaFin":"19:00","etiqueta":"Salud","imageUrl":"https://img.example/x.png"}`
	var got Task
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != 7 || got.Title != "Gimnasio" || got.Tag != tag.Salud {
		t.Fatalf("unexpected task: %+v", got)
	}
	start, err := got.StartsAt()
	if err != nil {
		t.Fatalf("StartsAt: %v", err)
	}
	if start.Hour() != 18 || start.Day() != 11 {
		t.Fatalf("unexpected start %v", start)
	}
}

func TestUserInitials(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "AL"},
		{"ada", "A"},
		{"álvaro pérez", "ÁP"},
		{"", "U"},
		{"Juan Carlos Ortega", "JC"},
	}
	for _, tc := range cases {
		u := User{Name: tc.name}
		if got := u.Initials(); got != tc.want {
			t.Errorf("Initials(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
