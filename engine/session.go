package engine

import "time"

// CameraMode selects how the view follows the controlled marble
type CameraMode uint8

const (
	CameraFollow CameraMode = iota
	CameraChase
	CameraOverview

	cameraModeCount
)

func (m CameraMode) String() string {
	switch m {
	case CameraFollow:
		return "follow"
	case CameraChase:
		return "chase"
	case CameraOverview:
		return "overview"
	}
	return "unknown"
}

// Session is the state of the current level attempt
type Session struct {
	LevelIndex  int
	LevelName   string
	Description string
	Origin      time.Time // Platform motion and run duration are measured from here
	Floor       float64
	Score       int
	Complete    bool
	CompletedAt time.Time
	Camera      CameraMode
	Menu        bool
}

// NewSession starts in the menu
func NewSession() *Session {
	return &Session{Menu: true}
}

// Reset starts a fresh attempt at a level; camera mode persists
func (s *Session) Reset(index int, name, description string, origin time.Time, floor float64) {
	camera := s.Camera
	*s = Session{
		LevelIndex:  index,
		LevelName:   name,
		Description: description,
		Origin:      origin,
		Floor:       floor,
		Camera:      camera,
	}
}

// Elapsed returns seconds since level origin
func (s *Session) Elapsed(now time.Time) float64 {
	return now.Sub(s.Origin).Seconds()
}

func (s *Session) AddScore(n int) {
	s.Score += n
}

// MarkComplete latches completion, true only on the first call of an attempt
func (s *Session) MarkComplete(now time.Time) bool {
	if s.Complete {
		return false
	}
	s.Complete = true
	s.CompletedAt = now
	return true
}

// CycleCamera advances to the next camera mode
func (s *Session) CycleCamera() CameraMode {
	s.Camera = (s.Camera + 1) % cameraModeCount
	return s.Camera
}
