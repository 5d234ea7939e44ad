package timepanel

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// ScrollBehavior selects how a programmatic scroll reaches its target.
type ScrollBehavior int

const (
	ScrollInstant ScrollBehavior = iota
	ScrollSmooth
)

const (
	scrollFPS       = 60
	springFrequency = 8.0
	springDamping   = 1.0
)

var frameInterval = time.Second / scrollFPS

// scrollFrameMsg advances one smooth scroll animation.
type scrollFrameMsg struct {
	col Column
	gen uint64
}

// scrollContainer holds the live scroll offset of one column.
type scrollContainer struct {
	col    Column
	offset int
	max    int

	target    int
	pos       float64
	vel       float64
	animating bool
	gen       uint64
	spring    harmonica.Spring
}

func newScrollContainer(col Column) *scrollContainer {
	return &scrollContainer{
		col:    col,
		spring: harmonica.NewSpring(harmonica.FPS(scrollFPS), springFrequency, springDamping),
	}
}

func (s *scrollContainer) clamp(v int) int {
	if v < 0 {
		return 0
	}
	if s.max > 0 && v > s.max {
		return s.max
	}
	return v
}

// setOffset moves the container as a user drag would. Any running animation
// is dropped. Returns true if the offset changed.
func (s *scrollContainer) setOffset(v int) bool {
	v = s.clamp(v)
	s.stop()
	if v == s.offset {
		return false
	}
	s.offset = v
	s.pos = float64(v)
	return true
}

func (s *scrollContainer) stop() {
	if s.animating {
		s.animating = false
		s.gen++
	}
	s.vel = 0
}

// scrollTo starts a programmatic scroll. Smooth scrolls return the first
// animation frame.
func (s *scrollContainer) scrollTo(distance int, behavior ScrollBehavior) tea.Cmd {
	distance = s.clamp(distance)
	if behavior == ScrollInstant {
		s.stop()
		s.offset = distance
		s.pos = float64(distance)
		s.target = distance
		return nil
	}
	s.gen++
	s.target = distance
	s.pos = float64(s.offset)
	s.animating = true
	return s.nextFrame()
}

func (s *scrollContainer) nextFrame() tea.Cmd {
	col, gen := s.col, s.gen
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return scrollFrameMsg{col: col, gen: gen}
	})
}

// step advances the animation by one frame. It returns whether the visible
// offset moved and the next frame, if any.
func (s *scrollContainer) step(gen uint64) (bool, tea.Cmd) {
	if !s.animating || gen != s.gen {
		return false, nil
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, float64(s.target))
	next := int(math.Round(s.pos))
	settled := math.Abs(s.pos-float64(s.target)) < 0.5 && math.Abs(s.vel) < 0.5
	if settled {
		next = s.target
		s.animating = false
		s.vel = 0
	}
	moved := next != s.offset
	s.offset = next
	if settled {
		return moved, nil
	}
	return moved, s.nextFrame()
}
