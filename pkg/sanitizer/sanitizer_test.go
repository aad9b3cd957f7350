package sanitizer

import "testing"

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Tanaka", "Tanaka"},
		{"surrounding whitespace", "  Tanaka  ", "Tanaka"},
		{"internal whitespace collapsed", "Tanaka \t  Yuki", "Tanaka Yuki"},
		{"control characters stripped", "Tana\x00ka\x1f", "Tanaka"},
		{"whitespace controls become spaces", "Tana\x00ka\nYuki", "Tanaka Yuki"},
		{"case preserved", "O'Brien", "O'Brien"},
		{"empty", "", ""},
		{"only whitespace", "   \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.input); got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeMemo(t *testing.T) {
	got := SanitizeMemo("  Window seat,\nplease  ")
	want := "Window seat, please"
	if got != want {
		t.Errorf("SanitizeMemo = %q, want %q", got, want)
	}
}

func TestSanitizeMenuLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Lavender Salt", "lavender salt"},
		{"  GREEN TEA ", "green tea"},
		{"yuzu\tsoda", "yuzu soda"},
	}

	for _, tt := range tests {
		if got := SanitizeMenuLabel(tt.input); got != tt.want {
			t.Errorf("SanitizeMenuLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
