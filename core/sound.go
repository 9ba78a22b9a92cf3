package core

import "github.com/lixenwraith/zhuyin-fighter/symbol"

//go:generate go tool mockgen -destination=./mocks/sound_mock.go -package=mocks . Pronouncer,ToneService

// Tone represents the short feedback sounds
type Tone int

const (
	ToneCorrect Tone = iota // Rising sine chirp
	ToneWrong               // Falling saw buzz
	ToneWin                 // Three-step arpeggio
	ToneLose                // Long falling saw
	ToneShoot               // Filtered noise burst, also used for area impacts
	ToneAck                 // Fixed-pitch acknowledgment closing a correction
	ToneCount
)

func (t Tone) String() string {
	switch t {
	case ToneCorrect:
		return "correct"
	case ToneWrong:
		return "wrong"
	case ToneWin:
		return "win"
	case ToneLose:
		return "lose"
	case ToneShoot:
		return "shoot"
	case ToneAck:
		return "ack"
	default:
		return "unknown"
	}
}

// Phrase is a spoken prompt that frames a symbol
type Phrase int

const (
	PhraseFind   Phrase = iota // "請找出" - find this symbol
	PhraseThisIs               // "這是" - this is
	PhraseCount
)

func (p Phrase) String() string {
	switch p {
	case PhraseFind:
		return "find"
	case PhraseThisIs:
		return "this_is"
	default:
		return "unknown"
	}
}

// Pronouncer speaks symbols and phrases
// Each call returns a channel that receives exactly one value (nil or the playback error) when done
// Stop cuts the current utterance short; pending channels still complete
type Pronouncer interface {
	Pronounce(s symbol.Symbol) <-chan error
	Phrase(p Phrase) <-chan error
	Stop()
}

// ToneService plays fire-and-forget feedback tones
type ToneService interface {
	Play(t Tone)
}

// NopToneService discards every tone
type NopToneService struct{}

func (NopToneService) Play(Tone) {}

// NopPronouncer completes every utterance immediately
type NopPronouncer struct{}

func (NopPronouncer) Pronounce(symbol.Symbol) <-chan error { return Completed(nil) }
func (NopPronouncer) Phrase(Phrase) <-chan error           { return Completed(nil) }
func (NopPronouncer) Stop()                                {}

// Completed returns a channel already holding err
func Completed(err error) <-chan error {
	ch := make(chan error, 1)
	ch <- err
	return ch
}
