// Package audio plays feedback tones and spoken symbol clips through the beep speaker
package audio

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/zhuyin-fighter/constants"
	"github.com/lixenwraith/zhuyin-fighter/core"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager owns the speaker mixer and plays fire-and-forget tones
// Every method is a silent no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	log         *slog.Logger
}

// NewSoundManager creates a new sound manager with a linear master volume in [0, 1]
func NewSoundManager(volume float64, muted bool, log *slog.Logger) *SoundManager {
	if log == nil {
		log = slog.Default()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		muted:  muted,
		log:    log.With("component", "audio"),
	}
}

// Initialize sets up the audio system
// Failure leaves the manager silent; callers log and continue
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBufferLength)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info("speaker ready", "rate", int(sampleRate))
	return nil
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and releases the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles all output
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play starts a feedback tone without waiting for it
func (sm *SoundManager) Play(tone core.Tone) {
	s := NewTone(tone, sampleRate)
	if s == nil {
		sm.log.Warn("unknown tone", "tone", int(tone))
		return
	}
	sm.play(s)
}

// play mixes s at master volume, returns false when nothing will be heard
func (sm *SoundManager) play(s beep.Streamer) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(s, sm.volume))
	speaker.Unlock()
	return true
}
