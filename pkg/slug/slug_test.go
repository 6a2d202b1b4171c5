package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Medalla Light", "medalla-light"},
		{"Piña Colada", "pina-colada"},
		{"Café con Leche", "cafe-con-leche"},
		{"Ron Añejo 8", "ron-anejo-8"},
		{"  Sangría!!  ", "sangria"},
		{"---", "item"},
		{"", "item"},
		{"UPPER case", "upper-case"},
		{"a  b   c", "a-b-c"},
		{"straße", "strasse"},
	}
	for _, tc := range tests {
		if got := Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMakeUnique(t *testing.T) {
	taken := map[string]bool{"medalla": true, "medalla-2": true}
	exists := func(s string) bool { return taken[s] }

	if got := MakeUnique("Heineken", exists); got != "heineken" {
		t.Errorf("free slug = %q, want heineken", got)
	}
	if got := MakeUnique("Medalla", exists); got != "medalla-3" {
		t.Errorf("colliding slug = %q, want medalla-3", got)
	}
}
