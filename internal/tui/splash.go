package tui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SplashConfig controls the orbit splash animation.
type SplashConfig struct {
	Width     int
	Height    int
	OrbitRadX float64
	OrbitRadY float64
	FPS       int
	Orbits    float64 // revolutions before the planet comes to rest
	ShowTitle bool
}

// DefaultSplashConfig returns the launch splash: 62×19, one and a half
// orbits, settling with an ease-out curve.
func DefaultSplashConfig() SplashConfig {
	return SplashConfig{
		Width:     62,
		Height:    19,
		OrbitRadX: 22,
		OrbitRadY: 6,
		FPS:       30,
		Orbits:    1.5,
		ShowTitle: true,
	}
}

var (
	styleSplashSunCore  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fff2b0")).Bold(true)
	styleSplashSunInner = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c542"))
	styleSplashSunOuter = lipgloss.NewStyle().Foreground(lipgloss.Color("#c07a28"))
	styleSplashPlanet   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6fb3ff")).Bold(true)
	styleSplashHalo     = lipgloss.NewStyle().Foreground(lipgloss.Color("#3a6aa8"))
	styleSplashTrack    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2a3250"))
	styleSplashSpace    = lipgloss.NewStyle().Foreground(lipgloss.Color("#182038"))
	styleSplashTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7a8cc0"))
)

// SplashModel is a sun with one planet circling it, decelerating to rest.
// Any key skips it.
type SplashModel struct {
	cfg         SplashConfig
	frame       int
	totalFrames int
	done        bool
}

// splashTickMsg drives the animation frame clock.
type splashTickMsg time.Time

// NewSplash creates a SplashModel configured by cfg.
func NewSplash(cfg SplashConfig) SplashModel {
	return SplashModel{
		cfg:         cfg,
		totalFrames: int(cfg.Orbits * 80),
	}
}

// Init starts the animation tick.
func (s SplashModel) Init() tea.Cmd { return s.tick() }

// Done reports whether the animation has finished, either by settling (plus
// a short hold) or because a key was pressed.
func (s SplashModel) Done() bool { return s.done }

func (s SplashModel) tick() tea.Cmd {
	fps := max(s.cfg.FPS, 1)
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return splashTickMsg(t)
	})
}

// Update handles tick and key messages.
func (s SplashModel) Update(msg tea.Msg) (SplashModel, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		s.done = true
		return s, nil
	case splashTickMsg:
		if s.done {
			return s, nil
		}
		s.frame++
		if s.frame >= s.totalFrames+15 {
			s.done = true
			return s, nil
		}
		return s, s.tick()
	}
	return s, nil
}

// View renders the current frame.
func (s SplashModel) View() string {
	return s.renderFrame(s.currentAngle())
}

// currentAngle eases from a full sweep down to rest at the planet's
// starting position on the right of the sun.
func (s SplashModel) currentAngle() float64 {
	if s.done || s.frame >= s.totalFrames || s.totalFrames == 0 {
		return 0
	}
	progress := float64(s.frame) / float64(s.totalFrames)
	eased := 1 - math.Pow(1-progress, 3)
	return eased * s.cfg.Orbits * 2 * math.Pi
}

// Cell kinds, painted back to front.
const (
	splashSpace = iota
	splashTrack
	splashSunOuter
	splashSunInner
	splashSunCore
	splashHalo
	splashPlanet
)

func (s SplashModel) renderFrame(angle float64) string {
	w, h := s.cfg.Width, s.cfg.Height
	cx, cy := float64(w)/2, float64(h)/2-1

	grid := make([][]rune, h)
	kind := make([][]int, h)
	for y := range h {
		grid[y] = make([]rune, w)
		kind[y] = make([]int, w)
		for x := range w {
			grid[y][x] = ' '
			if (x*7+y*13)%53 == 0 {
				grid[y][x] = '.'
			}
		}
	}

	set := func(x, y int, r rune, k int) {
		if x >= 0 && x < w && y >= 0 && y < h {
			grid[y][x] = r
			kind[y][x] = k
		}
	}

	for a := 0.0; a < 2*math.Pi; a += math.Pi / 48 {
		set(int(math.Round(cx+s.cfg.OrbitRadX*math.Cos(a))),
			int(math.Round(cy+s.cfg.OrbitRadY*math.Sin(a))), '·', splashTrack)
	}

	px := cx + s.cfg.OrbitRadX*math.Cos(angle)
	py := cy + s.cfg.OrbitRadY*math.Sin(angle)
	// The planet passes behind the sun on the far half of its orbit.
	behind := math.Sin(angle) < 0
	if behind {
		s.stampPlanet(set, px, py)
	}
	for y := range h {
		for x := range w {
			d := splashDist(float64(x), float64(y), cx, cy)
			switch {
			case d < 1.5:
				set(x, y, '@', splashSunCore)
			case d < 3.5:
				set(x, y, '*', splashSunInner)
			case d < 6:
				set(x, y, ':', splashSunOuter)
			}
		}
	}
	if !behind {
		s.stampPlanet(set, px, py)
	}

	var sb strings.Builder
	for y := range h {
		for x := range w {
			sb.WriteString(splashStyle(kind[y][x]).Render(string(grid[y][x])))
		}
		sb.WriteRune('\n')
	}

	if s.cfg.ShowTitle {
		title := "A  S  T  R  O  N  E  X  U  S"
		pad := max((w-len(title))/2, 0)
		sb.WriteString(styleSplashTitle.Render(strings.Repeat(" ", pad) + title))
		sb.WriteRune('\n')
	}
	return sb.String()
}

func (s SplashModel) stampPlanet(set func(x, y int, r rune, k int), px, py float64) {
	ix, iy := int(math.Round(px)), int(math.Round(py))
	for _, d := range [][2]int{{-2, 0}, {2, 0}, {-1, -1}, {0, -1}, {1, -1}, {-1, 1}, {0, 1}, {1, 1}} {
		set(ix+d[0], iy+d[1], '·', splashHalo)
	}
	set(ix-1, iy, 'O', splashPlanet)
	set(ix, iy, 'O', splashPlanet)
	set(ix+1, iy, 'O', splashPlanet)
}

func splashStyle(kind int) lipgloss.Style {
	switch kind {
	case splashTrack:
		return styleSplashTrack
	case splashSunOuter:
		return styleSplashSunOuter
	case splashSunInner:
		return styleSplashSunInner
	case splashSunCore:
		return styleSplashSunCore
	case splashHalo:
		return styleSplashHalo
	case splashPlanet:
		return styleSplashPlanet
	}
	return styleSplashSpace
}

// splashDist stretches the vertical axis to compensate for tall cells.
func splashDist(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := (y1 - y2) * 2.1
	return math.Sqrt(dx*dx + dy*dy)
}
