package config

import (
	"testing"
	"time"
)

func TestSessionDurationDefault(t *testing.T) {
	cfg := Load()
	if cfg.SessionDuration != 7*24*time.Hour {
		t.Errorf("Default session duration = %v, want %v", cfg.SessionDuration, 7*24*time.Hour)
	}
}

func TestSessionDurationFromEnv(t *testing.T) {
	t.Setenv("SESSION_DURATION_HOURS", "48")
	cfg := Load()
	if cfg.SessionDuration != 48*time.Hour {
		t.Errorf("Session duration = %v, want %v", cfg.SessionDuration, 48*time.Hour)
	}
}

func TestSessionDurationIgnoresGarbage(t *testing.T) {
	t.Setenv("SESSION_DURATION_HOURS", "soon")
	cfg := Load()
	if cfg.SessionDuration != 7*24*time.Hour {
		t.Errorf("Session duration = %v, want the default", cfg.SessionDuration)
	}
}
