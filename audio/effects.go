package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/zhuyin-fighter/constants"
	"github.com/lixenwraith/zhuyin-fighter/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
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
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
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

// NewEnvelope creates an attack/release envelope over duration
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
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is one shaped oscillator segment
func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, constants.ToneAttack, constants.ToneRelease, rate)
}

// melody plays equal-length notes back to back over total
func melody(total time.Duration, wave WaveType, rate beep.SampleRate, freqs ...float64) beep.Streamer {
	step := total / time.Duration(len(freqs))
	parts := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		parts[i] = note(f, step, wave, rate)
	}
	return beep.Seq(parts...)
}

// NewTone builds the finite streamer for a feedback tone, nil for unknown tones
func NewTone(tone core.Tone, rate beep.SampleRate) beep.Streamer {
	switch tone {
	case core.ToneCorrect:
		// C6 then E6
		return melody(constants.CorrectToneDuration, WaveSine, rate, 1046.50, 1318.51)
	case core.ToneWrong:
		return newVolume(note(110, constants.WrongToneDuration, WaveSaw, rate), 0.6)
	case core.ToneWin:
		// C5 E5 G5 C6 arpeggio
		return melody(constants.WinToneDuration, WaveSquare, rate, 523.25, 659.25, 783.99, 1046.50)
	case core.ToneLose:
		return newVolume(melody(constants.LoseToneDuration, WaveSaw, rate, 392.00, 261.63), 0.6)
	case core.ToneShoot:
		return newVolume(note(0, constants.ShootToneDuration, WaveNoise, rate), 0.4)
	case core.ToneAck:
		return note(constants.AckToneFreq, constants.AckToneDuration, WaveSine, rate)
	default:
		return nil
	}
}

// NewFallbackVoice stands in for a missing clip with a pitch unique to the catalog slot
// Phrases use negative slots below the symbol range
func NewFallbackVoice(slot int, rate beep.SampleRate) beep.Streamer {
	freq := constants.FallbackVoiceBaseFreq * math.Pow(constants.FallbackVoiceStep, float64(slot))
	return note(freq, constants.FallbackVoiceDuration, WaveSine, rate)
}
