package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/balloon-math/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// RampType defines how a frequency sweep moves between its endpoints
type RampType int

const (
	RampLinear RampType = iota
	RampExponential
)

// oscillator generates raw audio waves with an optional frequency sweep
type oscillator struct {
	from     float64
	to       float64
	sweep    int // Samples over which the frequency moves from -> to
	ramp     RampType
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, duration, RampLinear, wave, rate)
}

// NewSweep creates an oscillator whose frequency moves from -> to over sweep, then holds
func NewSweep(from, to float64, sweep, duration time.Duration, ramp RampType, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
		sweep:    max(rate.N(sweep), 1),
		ramp:     ramp,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// freq returns the instantaneous frequency at the current position
func (o *oscillator) freq() float64 {
	if o.from == o.to || o.position >= o.sweep {
		return o.to
	}
	t := float64(o.position) / float64(o.sweep)
	if o.ramp == RampExponential && o.from > 0 && o.to > 0 {
		return o.from * math.Pow(o.to/o.from, t)
	}
	return o.from + (o.to-o.from)*t
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq() / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePopSound generates a falling sine chirp
func CreatePopSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(400, 100, constants.PopSoundDuration, constants.PopSoundDuration, RampExponential, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.PopSoundDuration, constants.PopSoundAttack, constants.PopSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundPop))
}

// CreateCorrectSound generates a rising triangle C5 -> G5
func CreateCorrectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(523.25, 783.99, constants.CorrectSoundSweep, constants.CorrectSoundDuration, RampExponential, WaveTriangle, rate)
	shaped := NewEnvelope(osc, constants.CorrectSoundDuration, constants.CorrectSoundAttack, constants.CorrectSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundCorrect))
}

// CreateWrongSound generates a low falling sawtooth buzz
func CreateWrongSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(150, 100, constants.WrongSoundDuration, constants.WrongSoundDuration, RampLinear, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.WrongSoundDuration, constants.WrongSoundAttack, constants.WrongSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundWrong))
}

// CreateClickSound generates a short UI tick
func CreateClickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(800, constants.ClickSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.ClickSoundDuration, constants.ClickSoundAttack, constants.ClickSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundClick))
}

// winNotes is a C major arpeggio
var winNotes = [...]float64{523, 659, 783, 1046}

// CreateWinSound generates overlapping arpeggio notes started one step apart
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	voices := make([]beep.Streamer, 0, len(winNotes))
	for i, freq := range winNotes {
		osc := NewOscillator(freq, constants.WinSoundNoteTail, WaveSine, rate)
		shaped := NewEnvelope(osc, constants.WinSoundNoteTail, constants.WinSoundAttack, constants.WinSoundRelease, rate)
		offset := beep.Silence(rate.N(time.Duration(i) * constants.WinSoundNoteDuration))
		voices = append(voices, beep.Seq(offset, shaped))
	}

	return newVolume(beep.Mix(voices...), cfg.volume(SoundWin))
}

// CreateLoseSound generates a slow falling sine
func CreateLoseSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(300, 100, constants.LoseSoundDuration, constants.LoseSoundDuration, RampLinear, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.LoseSoundDuration, constants.LoseSoundAttack, constants.LoseSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundLose))
}

// GetSoundEffect returns the streamer for the given sound, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundPop:
		return CreatePopSound(cfg)
	case SoundCorrect:
		return CreateCorrectSound(cfg)
	case SoundWrong:
		return CreateWrongSound(cfg)
	case SoundClick:
		return CreateClickSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	case SoundLose:
		return CreateLoseSound(cfg)
	default:
		return nil
	}
}
