package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/parameter"
)

// impactSound is a short pitched knock with a noise click on top
func impactSound(speed, radius float64, m component.Material, rate beep.SampleRate, master float64) beep.Streamer {
	t := toneOf(m)
	d := parameter.ImpactSoundDuration

	body := NewEnvelope(NewOscillator(impactFrequency(m, radius), d, t.wave, rate), d,
		parameter.ImpactSoundAttack, parameter.ImpactSoundRelease, rate)
	click := NewEnvelope(NewOscillator(0, d/3, WaveNoise, rate), d/3, 0, d/3, rate)

	mixed := beep.Mix(
		newVolume(body, 1-t.noise),
		newVolume(click, t.noise),
	)
	return newVolume(mixed, impactVolume(speed)*master)
}

// chimeNote is one bell partial pair
func chimeNote(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	fund := NewEnvelope(NewOscillator(freq, d, WaveSine, rate), d, parameter.ChimeAttack, parameter.ChimeRelease, rate)
	over := NewEnvelope(NewOscillator(freq*2, d, WaveSine, rate), d, parameter.ChimeAttack, parameter.ChimeRelease/2, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

// goalChime rises through a major triad (C6 E6 G6)
func goalChime(rate beep.SampleRate, master float64) beep.Streamer {
	note := parameter.GoalChimeDuration / 3
	return newVolume(beep.Seq(
		chimeNote(1046.50, note, rate),
		chimeNote(1318.51, note, rate),
		chimeNote(1567.98, note, rate),
	), 0.6*master)
}

// collectChime is a two-note coin blip (B5 E6)
func collectChime(rate beep.SampleRate, master float64) beep.Streamer {
	note := parameter.CollectChimeDuration / 2
	return newVolume(beep.Seq(
		chimeNote(987.77, note, rate),
		chimeNote(1318.51, note, rate),
	), 0.5*master)
}

// whooshSound sweeps a tone downward under filtered air noise
func whooshSound(rate beep.SampleRate, master float64) beep.Streamer {
	d := parameter.WhooshDuration
	sweep := NewEnvelope(NewSweep(parameter.WhooshStartFrequency, parameter.WhooshEndFrequency, d, WaveSine, rate),
		d, d/6, d/2, rate)
	air := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, d/3, d/2, rate)
	return newVolume(beep.Mix(newVolume(sweep, 0.5), newVolume(air, 0.25)), master)
}
