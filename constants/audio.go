package constants

import "time"

// Speaker
const (
	AudioSampleRate     = 48000
	SpeakerBufferLength = 100 * time.Millisecond
)

// Tone timing
const (
	CorrectToneDuration = 300 * time.Millisecond
	WrongToneDuration   = 300 * time.Millisecond
	WinToneDuration     = 600 * time.Millisecond
	LoseToneDuration    = 500 * time.Millisecond
	ShootToneDuration   = 300 * time.Millisecond
	AckToneDuration     = 250 * time.Millisecond
	ToneAttack          = 5 * time.Millisecond
	ToneRelease         = 60 * time.Millisecond
)

// Voice fallback tones when a clip is missing
const (
	FallbackVoiceDuration = 500 * time.Millisecond
	FallbackVoiceBaseFreq = 330.0
	FallbackVoiceStep     = 1.0594630943592953 // Semitone ratio
	AckToneFreq           = 660.0
)
