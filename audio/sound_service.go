package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/core"
	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/service"
)

// SoundService synthesizes every game sound into one beep mixer
// A missing audio device disables the service; calls then play nothing
type SoundService struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	rate    beep.SampleRate
	volume  float64
	rolls   map[core.Entity]*rollVoice
	impacts map[string]time.Time
	now     func() time.Time
	log     zerolog.Logger

	muted    atomic.Bool
	disabled atomic.Bool
	running  bool
}

var (
	_ Player          = (*SoundService)(nil)
	_ Muter           = (*SoundService)(nil)
	_ service.Service = (*SoundService)(nil)
)

func NewSoundService() *SoundService {
	return &SoundService{
		mixer:   &beep.Mixer{},
		rate:    beep.SampleRate(parameter.AudioSampleRate),
		volume:  1,
		rolls:   make(map[core.Entity]*rollVoice),
		impacts: make(map[string]time.Time),
		now:     time.Now,
		log:     zerolog.Nop(),
	}
}

func (s *SoundService) Name() string {
	return "audio"
}

func (s *SoundService) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: bool muted, args[1]: float64 master volume, args[2]: zerolog.Logger
func (s *SoundService) Init(args ...any) error {
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok {
			s.muted.Store(muted)
		}
	}
	if len(args) > 1 {
		if vol, ok := args[1].(float64); ok && vol >= 0 {
			s.volume = min(vol, 1)
		}
	}
	if len(args) > 2 {
		if log, ok := args[2].(zerolog.Logger); ok {
			s.log = log
		}
	}
	return nil
}

// Start opens the speaker; failure disables audio without an error
func (s *SoundService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || s.disabled.Load() {
		return nil
	}

	if err := speaker.Init(s.rate, s.rate.N(parameter.AudioBufferDuration)); err != nil {
		s.disabled.Store(true)
		s.log.Warn().Err(err).Msg("Audio device unavailable, sound disabled")
		return nil
	}
	speaker.Play(s.mixer)
	s.running = true
	s.log.Info().Int("rate", int(s.rate)).Msg("Audio started")
	return nil
}

func (s *SoundService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	s.running = false
	clear(s.rolls)
	return nil
}

// IsEnabled reports whether a device was opened
func (s *SoundService) IsEnabled() bool {
	return !s.disabled.Load()
}

func (s *SoundService) IsMuted() bool {
	return s.muted.Load()
}

// ToggleMute flips mute and returns the new state; muting fades every roll out
func (s *SoundService) ToggleMute() bool {
	muted := !s.muted.Load()
	s.muted.Store(muted)
	if muted {
		s.mu.Lock()
		for id, v := range s.rolls {
			v.stop()
			delete(s.rolls, id)
		}
		s.mu.Unlock()
	}
	s.log.Info().Bool("muted", muted).Msg("Audio mute toggled")
	return muted
}

// play adds a one-shot to the mixer unless muted or at the voice cap
func (s *SoundService) play(st beep.Streamer) bool {
	if s.muted.Load() || s.disabled.Load() {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	if s.mixer.Len() >= parameter.AudioMaxVoices {
		return false
	}
	s.mixer.Add(st)
	return true
}

func (s *SoundService) Impact(velocity, radius float64, material component.Material, key string) {
	now := s.now()
	s.mu.Lock()
	if last, ok := s.impacts[key]; ok && now.Sub(last) < parameter.ImpactCooldown {
		s.mu.Unlock()
		return
	}
	s.impacts[key] = now
	s.mu.Unlock()

	s.play(impactSound(velocity, radius, material, s.rate, s.volume))
}

func (s *SoundService) RollStart(id core.Entity, radius float64, material component.Material, speed float64) {
	if s.muted.Load() || s.disabled.Load() {
		return
	}
	s.mu.Lock()
	v, ok := s.rolls[id]
	if !ok {
		v = newRollVoice(s.rate)
		s.rolls[id] = v
	}
	s.mu.Unlock()

	v.set(rollFrequency(material, speed), rollVolume(speed)*s.volume)
	if !ok {
		speaker.Lock()
		s.mixer.Add(v)
		speaker.Unlock()
	}
}

func (s *SoundService) RollUpdate(id core.Entity, radius float64, material component.Material, speed float64) {
	s.mu.Lock()
	v, ok := s.rolls[id]
	s.mu.Unlock()
	if !ok {
		s.RollStart(id, radius, material, speed)
		return
	}
	v.set(rollFrequency(material, speed), rollVolume(speed)*s.volume)
}

func (s *SoundService) RollStop(id core.Entity) {
	s.mu.Lock()
	v, ok := s.rolls[id]
	delete(s.rolls, id)
	s.mu.Unlock()
	if ok {
		v.stop()
	}
}

func (s *SoundService) GoalChime() {
	s.play(goalChime(s.rate, s.volume))
}

func (s *SoundService) BoostWhoosh() {
	s.play(whooshSound(s.rate, s.volume))
}

func (s *SoundService) CollectChime() {
	s.play(collectChime(s.rate, s.volume))
}
