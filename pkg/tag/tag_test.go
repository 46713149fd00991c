package tag

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    Tag
		wantErr bool
	}{
		{in: "Trabajo", want: Trabajo},
		{in: "trabajo", want: Trabajo},
		{in: "work", want: Trabajo},
		{in: " salud ", want: Salud},
		{in: "d", want: Descanso},
		{in: "siesta", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBorderDerivation(t *testing.T) {
	for _, tg := range All() {
		bg := tg.Background()
		border := tg.Border()
		if border == bg {
			t.Errorf("%s: border should differ from background %s", tg, bg)
		}
		if len(border) != 7 || border[0] != '#' {
			t.Errorf("%s: border %q is not a hex color", tg, border)
		}
	}
}

func TestUnknownTagFallsBack(t *testing.T) {
	unknown := Tag("Siesta")
	if unknown.Valid() {
		t.Fatal("unexpected valid tag")
	}
	if unknown.Background() == "" {
		t.Fatal("unknown tag should still have a background color")
	}
}
