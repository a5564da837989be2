package logger

import "testing"

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"development", "production", "test", ""} {
		log, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		log.With("mode", mode).Info("logger ready", "ok", true)
		log.Sync()
	}
}
