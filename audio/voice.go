package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/zhuyin-fighter/core"
	"github.com/lixenwraith/zhuyin-fighter/symbol"
)

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio: speaker not initialized")
	ErrUnknownSymbol  = errors.New("audio: symbol not in catalog")
	ErrInterrupted    = errors.New("audio: utterance interrupted")
)

// utterance tracks one playing clip and reports its end exactly once
type utterance struct {
	ctrl *beep.Ctrl
	done chan error
	once sync.Once
}

func (u *utterance) finish(err error) {
	u.once.Do(func() { u.done <- err })
}

// Voice speaks symbols and prompt phrases from mp3 clips in a directory
// Clips are named by 1-based catalog index (01.mp3) or phrase name (find.mp3)
// A missing or broken clip is replaced by a synthesized tone so completion always arrives
type Voice struct {
	sm  *SoundManager
	dir string
	log *slog.Logger

	cacheMu sync.Mutex
	cache   map[string]*beep.Buffer // nil entry marks a clip known to be unusable

	mu      sync.Mutex
	current *utterance
}

// NewVoice creates a voice reading clips from dir and playing through sm
func NewVoice(sm *SoundManager, dir string, log *slog.Logger) *Voice {
	if log == nil {
		log = slog.Default()
	}
	return &Voice{
		sm:    sm,
		dir:   dir,
		log:   log.With("component", "voice"),
		cache: make(map[string]*beep.Buffer),
	}
}

// Pronounce plays the clip for s, the channel receives once playback ends
func (v *Voice) Pronounce(s symbol.Symbol) <-chan error {
	idx, ok := symbol.Index(s)
	if !ok {
		return core.Completed(fmt.Errorf("%w: %q", ErrUnknownSymbol, s.String()))
	}
	return v.say(ClipName(idx), idx)
}

// Phrase plays a fixed prompt phrase
func (v *Voice) Phrase(p core.Phrase) <-chan error {
	return v.say(p.String()+".mp3", -12+int(p))
}

// Stop silences the current utterance, its channel receives ErrInterrupted
func (v *Voice) Stop() {
	v.mu.Lock()
	u := v.current
	v.current = nil
	v.mu.Unlock()

	if u == nil {
		return
	}
	if v.sm.Initialized() {
		speaker.Lock()
		u.ctrl.Streamer = nil
		speaker.Unlock()
	}
	u.finish(ErrInterrupted)
}

// ClipName returns the file name for a 1-based catalog index
func ClipName(idx int) string {
	return fmt.Sprintf("%02d.mp3", idx)
}

func (v *Voice) say(name string, fallbackSlot int) <-chan error {
	if !v.sm.Initialized() {
		return core.Completed(ErrNotInitialized)
	}

	var s beep.Streamer
	if buf := v.clip(name); buf != nil {
		s = buf.Streamer(0, buf.Len())
		if rate := buf.Format().SampleRate; rate != sampleRate {
			s = beep.Resample(4, rate, sampleRate, s)
		}
	} else {
		s = NewFallbackVoice(fallbackSlot, sampleRate)
	}

	v.Stop()

	u := &utterance{done: make(chan error, 1)}
	u.ctrl = &beep.Ctrl{Streamer: beep.Seq(s, beep.Callback(func() { u.finish(nil) }))}

	v.mu.Lock()
	v.current = u
	v.mu.Unlock()

	if !v.sm.play(u.ctrl) {
		// Muted, nothing will drain the stream
		u.finish(nil)
	}
	return u.done
}

// clip returns the decoded clip, loading it on first use
func (v *Voice) clip(name string) *beep.Buffer {
	v.cacheMu.Lock()
	defer v.cacheMu.Unlock()

	if buf, ok := v.cache[name]; ok {
		return buf
	}

	buf, err := loadClip(filepath.Join(v.dir, name))
	if err != nil {
		v.log.Warn("clip unavailable, using fallback tone", "clip", name, "error", err)
	}
	v.cache[name] = buf
	return buf
}

// Preload decodes every symbol and phrase clip, returning how many were found
func (v *Voice) Preload() int {
	found := 0
	for i := 1; i <= symbol.Count; i++ {
		if v.clip(ClipName(i)) != nil {
			found++
		}
	}
	for p := core.Phrase(0); p < core.PhraseCount; p++ {
		if v.clip(p.String()+".mp3") != nil {
			found++
		}
	}
	return found
}

func loadClip(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open clip: %w", err)
	}

	stream, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	defer stream.Close()

	buf := beep.NewBuffer(format)
	buf.Append(stream)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return buf, nil
}
