package models

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "Oakdell", "oakdell"},
		{"two words", "Oakdell Village", "oakdell-village"},
		{"whitespace run", "Dark   Souls\tKeep", "dark-souls-keep"},
		{"surrounding whitespace", "  Oakdell  ", "oakdell"},
		{"already lowercase", "oakdell", "oakdell"},
		{"punctuation passes through", "King's Rest", "king's-rest"},
		{"non-latin passes through", "Épée Château", "épée-château"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
