package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/zhuyin-fighter/constants"
	"github.com/lixenwraith/zhuyin-fighter/core"
	"github.com/lixenwraith/zhuyin-fighter/symbol"
)

// drain streams s to exhaustion, returning the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Stream() = %d, %v; want 100, true", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestOscillatorDuration verifies the oscillator stops after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	got, _ := drain(t, NewOscillator(440, 10*time.Millisecond, WaveSaw, rate))
	if want := rate.N(10 * time.Millisecond); got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}
}

// TestEnvelopeAttackPhase verifies the envelope ramps up from silence
func TestEnvelopeAttackPhase(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // Constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("streamed %d samples, want 100", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", samples[0][0])
	}
	if samples[5][0] != 0.5 {
		t.Errorf("mid-attack sample = %f, want 0.5", samples[5][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain sample = %f, want 1", samples[50][0])
	}
	if samples[99][0] >= 0.2 {
		t.Errorf("release tail = %f, want near silence", samples[99][0])
	}
}

// TestNewTone verifies every feedback tone is finite and audible
func TestNewTone(t *testing.T) {
	durations := map[core.Tone]time.Duration{
		core.ToneCorrect: constants.CorrectToneDuration,
		core.ToneWrong:   constants.WrongToneDuration,
		core.ToneWin:     constants.WinToneDuration,
		core.ToneLose:    constants.LoseToneDuration,
		core.ToneShoot:   constants.ShootToneDuration,
		core.ToneAck:     constants.AckToneDuration,
	}
	for tone := core.Tone(0); tone < core.ToneCount; tone++ {
		t.Run(tone.String(), func(t *testing.T) {
			s := NewTone(tone, sampleRate)
			if s == nil {
				t.Fatal("no streamer")
			}
			n, peak := drain(t, s)
			want := sampleRate.N(durations[tone])
			if math.Abs(float64(n-want)) > 8 {
				t.Errorf("length %d samples, want about %d", n, want)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak amplitude %f out of range", peak)
			}
		})
	}
}

// TestNewToneInvalid verifies unknown tones produce nothing
func TestNewToneInvalid(t *testing.T) {
	if s := NewTone(core.Tone(999), sampleRate); s != nil {
		t.Error("Expected nil streamer for invalid tone")
	}
}

// TestFallbackVoiceDistinctPitch verifies each catalog slot gets its own pitch
func TestFallbackVoiceDistinctPitch(t *testing.T) {
	rate := beep.SampleRate(8000)
	crossings := make(map[int]int)
	for slot := 1; slot <= symbol.Count; slot += 12 {
		s := NewFallbackVoice(slot, rate)
		buf := make([][2]float64, rate.N(constants.FallbackVoiceDuration))
		n, _ := s.Stream(buf)

		zc := 0
		for i := 1; i < n; i++ {
			if (buf[i-1][0] < 0) != (buf[i][0] < 0) {
				zc++
			}
		}
		for other, c := range crossings {
			if c == zc {
				t.Errorf("slots %d and %d share a pitch", other, slot)
			}
		}
		crossings[slot] = zc
	}
}

// TestNewVolumeZero verifies zero volume produces silence
func TestNewVolumeZero(t *testing.T) {
	s := newVolume(NewOscillator(440, 10*time.Millisecond, WaveSine, sampleRate), 0)
	if _, peak := drain(t, s); peak != 0 {
		t.Errorf("Expected silence, peak %f", peak)
	}
}
