package styles

import (
	"testing"

	"github.com/turkosaurus/multiverse/internal/types"
)

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		class types.StatusClass
		want  string
	}{
		{types.ClassAlive, "●"},
		{types.ClassDead, "✗"},
		{types.ClassUnknown, "?"},
		{"", "?"},
	}
	for _, tt := range tests {
		if got := StatusIcon(tt.class); got != tt.want {
			t.Errorf("StatusIcon(%q) = %q, want %q", tt.class, got, tt.want)
		}
	}
}

func TestStatusStyle(t *testing.T) {
	s := DefaultStyles()
	tests := []struct {
		class types.StatusClass
		want  any
	}{
		{types.ClassAlive, ColorGreen},
		{types.ClassDead, ColorRed},
		{types.ClassUnknown, ColorGray},
	}
	for _, tt := range tests {
		got := s.StatusStyle(tt.class).GetForeground()
		if got != tt.want {
			t.Errorf("StatusStyle(%q) foreground = %v, want %v", tt.class, got, tt.want)
		}
	}
}
