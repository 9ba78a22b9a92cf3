package arcade

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/zhuyin-fighter/constants"
	"github.com/lixenwraith/zhuyin-fighter/core"
	"github.com/lixenwraith/zhuyin-fighter/symbol"
)

// voiceStepTimeout abandons an utterance whose completion never arrives
const voiceStepTimeout = 5 * time.Second

// voiceStep is one entry of a spoken sequence; exactly one field is meaningful
type voiceStep struct {
	speak func() <-chan error
	pause time.Duration
	tone  core.Tone
	play  bool
}

// voiceQueue sequences utterances without blocking the tick
// Completion channels are polled once per tick
type voiceQueue struct {
	voice core.Pronouncer
	tones core.ToneService
	log   *slog.Logger

	steps   []voiceStep
	current <-chan error
	waited  time.Duration
	pause   time.Duration
}

func newVoiceQueue(voice core.Pronouncer, tones core.ToneService, log *slog.Logger) *voiceQueue {
	return &voiceQueue{voice: voice, tones: tones, log: log}
}

// interrupt drops queued steps and silences the utterance in progress
func (q *voiceQueue) interrupt() {
	if q.current != nil {
		q.voice.Stop()
	}
	q.steps = q.steps[:0]
	q.current = nil
	q.waited = 0
	q.pause = 0
}

// prompt replaces anything queued with "find <symbol>"
func (q *voiceQueue) prompt(s symbol.Symbol) {
	q.interrupt()
	q.steps = append(q.steps,
		voiceStep{speak: func() <-chan error { return q.voice.Phrase(core.PhraseFind) }},
		voiceStep{speak: func() <-chan error { return q.voice.Pronounce(s) }},
	)
}

// correct replaces anything queued with "this is <symbol>" and a closing chime
func (q *voiceQueue) correct(s symbol.Symbol) {
	q.interrupt()
	q.steps = append(q.steps,
		voiceStep{speak: func() <-chan error { return q.voice.Phrase(core.PhraseThisIs) }},
		voiceStep{speak: func() <-chan error { return q.voice.Pronounce(s) }},
		voiceStep{pause: constants.CorrectionAckDelay},
		voiceStep{tone: core.ToneAck, play: true},
	)
}

// busy reports whether anything is playing or queued
func (q *voiceQueue) busy() bool {
	return q.current != nil || q.pause > 0 || len(q.steps) > 0
}

// poll advances the sequence by dt without blocking
func (q *voiceQueue) poll(dt time.Duration) {
	if q.current != nil {
		select {
		case err := <-q.current:
			if err != nil {
				q.log.Warn("utterance failed", "error", err)
			}
			q.current = nil
		default:
			q.waited += dt
			if q.waited < voiceStepTimeout {
				return
			}
			q.log.Warn("utterance timed out", "after", q.waited)
			q.voice.Stop()
			q.current = nil
		}
	}

	if q.pause > 0 {
		q.pause -= dt
		if q.pause > 0 {
			return
		}
		q.pause = 0
	}

	for len(q.steps) > 0 {
		step := q.steps[0]
		q.steps = q.steps[1:]

		switch {
		case step.speak != nil:
			ch := step.speak()
			if ch == nil {
				continue
			}
			q.current = ch
			q.waited = 0
			return
		case step.pause > 0:
			q.pause = step.pause
			return
		case step.play:
			q.tones.Play(step.tone)
		}
	}
}
