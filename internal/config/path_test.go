package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	t.Setenv("PAISA_TEST_DIR", "/srv/data")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "absolute untouched", in: "/var/lib/paisa", want: "/var/lib/paisa"},
		{name: "tilde", in: "~/paisa.json", want: filepath.Join(home, "paisa.json")},
		{name: "bare tilde", in: "~", want: home},
		{name: "env var", in: "$PAISA_TEST_DIR/paisa.db", want: "/srv/data/paisa.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.in); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultDirsHonorXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	if got := DefaultConfigDir(); got != "/tmp/xdg-config/paisa" {
		t.Errorf("DefaultConfigDir() = %q", got)
	}
	if got := DefaultDataDir(); got != "/tmp/xdg-data/paisa" {
		t.Errorf("DefaultDataDir() = %q", got)
	}
}
