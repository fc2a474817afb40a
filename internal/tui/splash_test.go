package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultSplashConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultSplashConfig()

	t.Run("dimensions are 62x19", func(t *testing.T) {
		t.Parallel()
		if cfg.Width != 62 || cfg.Height != 19 {
			t.Errorf("DefaultSplashConfig() = %dx%d, want 62x19", cfg.Width, cfg.Height)
		}
	})

	t.Run("orbit fits the frame", func(t *testing.T) {
		t.Parallel()
		if 2*cfg.OrbitRadX >= float64(cfg.Width) || 2*cfg.OrbitRadY >= float64(cfg.Height) {
			t.Errorf("orbit %vx%v does not fit %dx%d", cfg.OrbitRadX, cfg.OrbitRadY, cfg.Width, cfg.Height)
		}
	})

	t.Run("FPS and orbits are positive", func(t *testing.T) {
		t.Parallel()
		if cfg.FPS <= 0 || cfg.Orbits <= 0 {
			t.Errorf("FPS = %d, Orbits = %v, want both > 0", cfg.FPS, cfg.Orbits)
		}
	})
}

func TestNewSplash(t *testing.T) {
	t.Parallel()

	s := NewSplash(DefaultSplashConfig())
	if s.Done() {
		t.Error("NewSplash should not be done initially")
	}
	if want := int(DefaultSplashConfig().Orbits * 80); s.totalFrames != want {
		t.Errorf("totalFrames = %d, want %d", s.totalFrames, want)
	}
	if s.Init() == nil {
		t.Error("Init() should return a tick command")
	}
}

func TestSplashView(t *testing.T) {
	t.Parallel()

	t.Run("draws sun and planet", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultSplashConfig()
		cfg.ShowTitle = false
		view := NewSplash(cfg).View()
		if !strings.Contains(view, "@") {
			t.Error("View() should contain the sun's core")
		}
		if !strings.Contains(view, "O") {
			t.Error("View() should contain the planet")
		}
	})

	t.Run("frame height", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultSplashConfig()
		cfg.ShowTitle = false
		view := NewSplash(cfg).View()
		if got := strings.Count(view, "\n"); got != cfg.Height {
			t.Errorf("View() has %d lines, want %d", got, cfg.Height)
		}
	})

	t.Run("title toggles", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultSplashConfig()
		if !strings.Contains(NewSplash(cfg).View(), "A  S  T  R  O") {
			t.Error("View() should contain the spaced title")
		}
		cfg.ShowTitle = false
		if strings.Contains(NewSplash(cfg).View(), "A  S  T  R  O") {
			t.Error("View() should omit the title when ShowTitle is false")
		}
	})
}

func TestSplashPlanetPassesBehindSun(t *testing.T) {
	t.Parallel()

	cfg := DefaultSplashConfig()
	cfg.OrbitRadX = 0
	cfg.OrbitRadY = 0
	cfg.ShowTitle = false
	s := NewSplash(cfg)

	// With a zero orbit the planet sits on the sun: in front at angle 0 and
	// hidden on the far side.
	if !strings.Contains(s.renderFrame(0.5), "O") {
		t.Error("planet in front of the sun should be visible")
	}
	if strings.Contains(s.renderFrame(-0.5), "O") {
		t.Error("planet behind the sun should be hidden")
	}
}

func TestSplashDone(t *testing.T) {
	t.Parallel()

	t.Run("keypress ends the splash", func(t *testing.T) {
		t.Parallel()
		s, _ := NewSplash(DefaultSplashConfig()).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
		if !s.Done() {
			t.Error("keypress should set Done()")
		}
	})

	t.Run("completes after enough ticks", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultSplashConfig()
		cfg.Orbits = 0.1
		s := NewSplash(cfg)
		for range s.totalFrames + 20 {
			s, _ = s.Update(splashTickMsg{})
			if s.Done() {
				return
			}
		}
		t.Error("splash should be done after enough ticks")
	})

	t.Run("ticks stop once done", func(t *testing.T) {
		t.Parallel()
		s, _ := NewSplash(DefaultSplashConfig()).Update(tea.KeyMsg{Type: tea.KeyEnter})
		if _, cmd := s.Update(splashTickMsg{}); cmd != nil {
			t.Error("a finished splash should not schedule more ticks")
		}
	})
}

func TestSplashAngleSettles(t *testing.T) {
	t.Parallel()

	s := NewSplash(DefaultSplashConfig())
	s.frame = s.totalFrames
	if got := s.currentAngle(); got != 0 {
		t.Errorf("currentAngle() at rest = %v, want 0", got)
	}
	s.frame = s.totalFrames / 2
	if got := s.currentAngle(); got <= 0 {
		t.Errorf("currentAngle() mid-flight = %v, want > 0", got)
	}
}
